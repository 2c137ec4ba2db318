package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"onlearn/internal/model"

	"github.com/jackc/pgx/v5"
)

const courseColumns = `id, title, description, teacher_id, is_published, image, rating, review_count, price, level`

// CourseRepository defines read operations for the course catalog
type CourseRepository interface {
	FindAll(ctx context.Context, filters model.CourseFilters) ([]model.Course, error)
	FindByID(ctx context.Context, id int) (*model.Course, error)
}

type courseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) CourseRepository {
	return &courseRepository{db: db}
}

func scanCourse(row pgx.Row, c *model.Course) error {
	return row.Scan(&c.ID, &c.Title, &c.Description, &c.TeacherID, &c.IsPublished,
		&c.Image, &c.Rating, &c.ReviewCount, &c.Price, &c.Level)
}

// FindAll lists courses in storage order, optionally filtered by publication state
func (r *courseRepository) FindAll(ctx context.Context, filters model.CourseFilters) ([]model.Course, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + courseColumns + " FROM courses")
	args := []interface{}{}

	if filters.PublishedOnly != nil {
		queryBuilder.WriteString(" WHERE is_published = $1")
		args = append(args, *filters.PublishedOnly)
	}
	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// FindByID retrieves a course by its ID
func (r *courseRepository) FindByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	sql := "SELECT " + courseColumns + " FROM courses WHERE id = $1"
	if err := scanCourse(r.db.QueryRow(ctx, sql, id), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find course by ID: %w", err)
	}
	return c, nil
}
