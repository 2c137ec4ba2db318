package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"onlearn/internal/model"
	"onlearn/internal/repository"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment text must not be empty")
)

// CommentService defines operations for course comments
type CommentService interface {
	ListComments(ctx context.Context, courseID int) ([]model.Comment, error)
	CreateComment(ctx context.Context, user *model.User, courseID int, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, user *model.User, commentID int) error
}

type commentService struct {
	repo       repository.CommentRepository
	courseRepo repository.CourseRepository
	now        func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(repo repository.CommentRepository, courseRepo repository.CourseRepository) CommentService {
	return &commentService{repo: repo, courseRepo: courseRepo, now: time.Now}
}

func (s *commentService) ensureCourse(ctx context.Context, courseID int) error {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to find course: %w", err)
	}
	if course == nil {
		return ErrCourseNotFound
	}
	return nil
}

// ListComments returns the course's comments, newest first
func (s *commentService) ListComments(ctx context.Context, courseID int) ([]model.Comment, error) {
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}
	comments, err := s.repo.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments from repo: %w", err)
	}
	return comments, nil
}

func (s *commentService) CreateComment(ctx context.Context, user *model.User, courseID int, text string) (*model.Comment, error) {
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	name := user.Name
	comment := &model.Comment{
		UserID:    user.ID,
		CourseID:  courseID,
		Text:      text,
		CreatedAt: s.now().UTC(),
		UserName:  &name,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment in repo: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment owned by user
func (s *commentService) DeleteComment(ctx context.Context, user *model.User, commentID int) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to find comment for deletion: %w", err)
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != user.ID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) { // deleted concurrently
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment in repo: %w", err)
	}
	return nil
}
