package model

// Enrollment links a user to a course and tracks completion
type Enrollment struct {
	ID              int `json:"id"`
	UserID          int `json:"user_id"`
	CourseID        int `json:"course_id"`
	ProgressPercent int `json:"progress_percent"`
}

// EnrollmentWithCourse is one row of a user's course list
type EnrollmentWithCourse struct {
	EnrollmentID    int    `json:"enrollment_id"`
	Course          Course `json:"course"`
	ProgressPercent int    `json:"progress_percent"`
}

type EnrollRequest struct {
	CourseID int `json:"course_id" binding:"required,gt=0,max=2147483647"`
}

// UpdateProgressRequest uses a pointer so that 0 passes "required"
type UpdateProgressRequest struct {
	ProgressPercent *int `json:"progress_percent" binding:"required,min=0,max=100"`
}
