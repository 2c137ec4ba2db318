package repository

import (
	"context"
	"errors"
	"fmt"

	"onlearn/internal/model"

	"github.com/jackc/pgx/v5"
)

// CommentRepository defines operations for course comments
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id int) (*model.Comment, error)
	FindByCourse(ctx context.Context, courseID int) ([]model.Comment, error)
	Delete(ctx context.Context, id int) error
}

type commentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db DBTX) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment and fills in its ID
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	sql := `INSERT INTO comments (user_id, course_id, text, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, c.UserID, c.CourseID, c.Text, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByID retrieves a comment without its author name
func (r *commentRepository) FindByID(ctx context.Context, id int) (*model.Comment, error) {
	c := &model.Comment{}
	sql := `SELECT id, user_id, course_id, text, created_at FROM comments WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&c.ID, &c.UserID, &c.CourseID, &c.Text, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment by ID: %w", err)
	}
	return c, nil
}

// FindByCourse returns a course's comments newest first, each with the
// author's name when the author still exists
func (r *commentRepository) FindByCourse(ctx context.Context, courseID int) ([]model.Comment, error) {
	sql := `SELECT c.id, c.user_id, c.course_id, c.text, c.created_at, u.name
            FROM comments c
            LEFT JOIN users u ON u.id = c.user_id
            WHERE c.course_id = $1
            ORDER BY c.id DESC`
	rows, err := r.db.Query(ctx, sql, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments by course: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.CourseID, &c.Text, &c.CreatedAt, &c.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}

// Delete removes a comment from the database
func (r *commentRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM comments WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
