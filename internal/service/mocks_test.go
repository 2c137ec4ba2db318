package service

import (
	"context"

	"onlearn/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockCourseRepo struct{ mock.Mock }

func (m *mockCourseRepo) FindAll(ctx context.Context, filters model.CourseFilters) ([]model.Course, error) {
	args := m.Called(ctx, filters)
	c, _ := args.Get(0).([]model.Course)
	return c, args.Error(1)
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id int) (*model.Course, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Course)
	return c, args.Error(1)
}

type mockEnrollmentRepo struct{ mock.Mock }

func (m *mockEnrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	args := m.Called(ctx, e)
	if len(args) > 1 && args.Error(0) == nil {
		id, _ := args.Get(1).(int)
		e.ID = id
	}
	return args.Error(0)
}

func (m *mockEnrollmentRepo) FindByID(ctx context.Context, id int) (*model.Enrollment, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*model.Enrollment)
	return e, args.Error(1)
}

func (m *mockEnrollmentRepo) FindByUserWithCourses(ctx context.Context, userID int) ([]model.EnrollmentWithCourse, error) {
	args := m.Called(ctx, userID)
	l, _ := args.Get(0).([]model.EnrollmentWithCourse)
	return l, args.Error(1)
}

func (m *mockEnrollmentRepo) UpdateProgress(ctx context.Context, id int, percent int) error {
	return m.Called(ctx, id, percent).Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	if len(args) > 1 && args.Error(0) == nil {
		id, _ := args.Get(1).(int)
		c.ID = id
	}
	return args.Error(0)
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id int) (*model.Comment, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepo) FindByCourse(ctx context.Context, courseID int) ([]model.Comment, error) {
	args := m.Called(ctx, courseID)
	c, _ := args.Get(0).([]model.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
