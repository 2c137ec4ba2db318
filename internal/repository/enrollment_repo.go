package repository

import (
	"context"
	"errors"
	"fmt"

	"onlearn/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicateEnrollment is returned when (user_id, course_id) already exists
var ErrDuplicateEnrollment = errors.New("enrollment already exists")

// EnrollmentRepository defines operations for enrollment data
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	FindByID(ctx context.Context, id int) (*model.Enrollment, error)
	FindByUserWithCourses(ctx context.Context, userID int) ([]model.EnrollmentWithCourse, error)
	UpdateProgress(ctx context.Context, id int, percent int) error
}

type enrollmentRepository struct {
	db DBTX
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create inserts an enrollment. The UNIQUE (user_id, course_id) constraint
// turns a concurrent double insert into ErrDuplicateEnrollment.
func (r *enrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	sql := `INSERT INTO enrollments (user_id, course_id, progress_percent)
            VALUES ($1, $2, $3)
            ON CONFLICT (user_id, course_id) DO NOTHING
            RETURNING id`
	err := r.db.QueryRow(ctx, sql, e.UserID, e.CourseID, e.ProgressPercent).Scan(&e.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDuplicateEnrollment
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

// FindByID retrieves an enrollment by its ID
func (r *enrollmentRepository) FindByID(ctx context.Context, id int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	sql := `SELECT id, user_id, course_id, progress_percent FROM enrollments WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&e.ID, &e.UserID, &e.CourseID, &e.ProgressPercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find enrollment by ID: %w", err)
	}
	return e, nil
}

// FindByUserWithCourses joins a user's enrollments to their courses. The inner
// join drops enrollments whose course is missing.
func (r *enrollmentRepository) FindByUserWithCourses(ctx context.Context, userID int) ([]model.EnrollmentWithCourse, error) {
	sql := `SELECT e.id, e.progress_percent,
                   c.id, c.title, c.description, c.teacher_id, c.is_published,
                   c.image, c.rating, c.review_count, c.price, c.level
            FROM enrollments e
            JOIN courses c ON c.id = e.course_id
            WHERE e.user_id = $1
            ORDER BY e.id`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments by user: %w", err)
	}
	defer rows.Close()

	result := []model.EnrollmentWithCourse{}
	for rows.Next() {
		var ec model.EnrollmentWithCourse
		c := &ec.Course
		if err := rows.Scan(
			&ec.EnrollmentID, &ec.ProgressPercent,
			&c.ID, &c.Title, &c.Description, &c.TeacherID, &c.IsPublished,
			&c.Image, &c.Rating, &c.ReviewCount, &c.Price, &c.Level,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		result = append(result, ec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return result, nil
}

// UpdateProgress overwrites progress_percent
func (r *enrollmentRepository) UpdateProgress(ctx context.Context, id int, percent int) error {
	sql := `UPDATE enrollments SET progress_percent = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, percent, id)
	if err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
