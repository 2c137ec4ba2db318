package model

// Course is a catalog entry. Display metadata is optional.
type Course struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TeacherID   int      `json:"teacher_id"`
	IsPublished bool     `json:"is_published"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
	Price       *string  `json:"price"`
	Level       *string  `json:"level"`
}

// CourseFilters contains optional filters for listing courses
type CourseFilters struct {
	PublishedOnly *bool
}
