package service

import (
	"context"
	"errors"
	"fmt"

	"onlearn/internal/model"
	"onlearn/internal/repository"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("enrollment already exists")
	ErrForbidden          = errors.New("forbidden: user does not have permission for this action")
)

// EnrollmentService defines operations for enrollments
type EnrollmentService interface {
	Enroll(ctx context.Context, user *model.User, courseID int) (*model.Enrollment, error)
	ListMyCourses(ctx context.Context, user *model.User) ([]model.EnrollmentWithCourse, error)
	ListUserCourses(ctx context.Context, userID int) ([]model.EnrollmentWithCourse, error)
	UpdateProgress(ctx context.Context, user *model.User, enrollmentID int, percent int) (*model.Enrollment, error)
}

type enrollmentService struct {
	repo       repository.EnrollmentRepository
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(repo repository.EnrollmentRepository, courseRepo repository.CourseRepository, userRepo repository.UserRepository) EnrollmentService {
	return &enrollmentService{repo: repo, courseRepo: courseRepo, userRepo: userRepo}
}

func (s *enrollmentService) Enroll(ctx context.Context, user *model.User, courseID int) (*model.Enrollment, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course for enrollment: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	enrollment := &model.Enrollment{
		UserID:          user.ID,
		CourseID:        courseID,
		ProgressPercent: 0,
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicateEnrollment) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to create enrollment in repo: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) ListMyCourses(ctx context.Context, user *model.User) ([]model.EnrollmentWithCourse, error) {
	list, err := s.repo.FindByUserWithCourses(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user courses from repo: %w", err)
	}
	return list, nil
}

// ListUserCourses is the staff view of another user's enrollments
func (s *enrollmentService) ListUserCourses(ctx context.Context, userID int) ([]model.EnrollmentWithCourse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.ListMyCourses(ctx, user)
}

// UpdateProgress overwrites progress; it may go down as well as up.
// percent is expected to be validated to [0,100] by the caller.
func (s *enrollmentService) UpdateProgress(ctx context.Context, user *model.User, enrollmentID int, percent int) (*model.Enrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find enrollment for update: %w", err)
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}
	if enrollment.UserID != user.ID { // Only the owner can change progress
		return nil, ErrForbidden
	}

	if err := s.repo.UpdateProgress(ctx, enrollmentID, percent); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to update enrollment in repo: %w", err)
	}
	enrollment.ProgressPercent = percent
	return enrollment, nil
}
