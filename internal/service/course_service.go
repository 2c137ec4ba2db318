package service

import (
	"context"
	"errors"
	"fmt"

	"onlearn/internal/model"
	"onlearn/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService exposes the read-only course catalog
type CourseService interface {
	ListCourses(ctx context.Context, publishedOnly *bool) ([]model.Course, error)
	GetCourse(ctx context.Context, id int) (*model.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

// ListCourses returns every course, or only those whose is_published equals
// *publishedOnly when it is set
func (s *courseService) ListCourses(ctx context.Context, publishedOnly *bool) ([]model.Course, error) {
	courses, err := s.repo.FindAll(ctx, model.CourseFilters{PublishedOnly: publishedOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses from repo: %w", err)
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find course by ID: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}
