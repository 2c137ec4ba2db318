package model

import "time"

// Comment is a user's note on a course. UserName is filled from the users
// table and is nil when the author no longer exists.
type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CourseID  int       `json:"course_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UserName  *string   `json:"user_name"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
