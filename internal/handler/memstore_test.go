package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"onlearn/internal/model"
	"onlearn/internal/repository"
)

// In-memory repositories used to drive the real services through HTTP.

type memStore struct {
	mu          sync.Mutex
	users       []model.User
	courses     []model.Course
	enrollments []model.Enrollment
	comments    []model.Comment
	nextEnroll  int
	nextComment int
}

func (s *memStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = len(s.users) + 1
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s *memStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByID(ctx context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) deleteUser(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

type memCourses struct{ s *memStore }

func (r memCourses) FindAll(ctx context.Context, filters model.CourseFilters) ([]model.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Course{}
	for _, c := range r.s.courses {
		if filters.PublishedOnly == nil || c.IsPublished == *filters.PublishedOnly {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCourses) FindByID(ctx context.Context, id int) (*model.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.courses {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

type memEnrollments struct{ s *memStore }

func (r memEnrollments) Create(ctx context.Context, e *model.Enrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.enrollments {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return repository.ErrDuplicateEnrollment
		}
	}
	r.s.nextEnroll++
	e.ID = r.s.nextEnroll
	r.s.enrollments = append(r.s.enrollments, *e)
	return nil
}

func (r memEnrollments) FindByID(ctx context.Context, id int) (*model.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.enrollments {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r memEnrollments) FindByUserWithCourses(ctx context.Context, userID int) ([]model.EnrollmentWithCourse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.EnrollmentWithCourse{}
	for _, e := range r.s.enrollments {
		if e.UserID != userID {
			continue
		}
		for _, c := range r.s.courses {
			if c.ID == e.CourseID {
				out = append(out, model.EnrollmentWithCourse{EnrollmentID: e.ID, Course: c, ProgressPercent: e.ProgressPercent})
			}
		}
	}
	return out, nil
}

func (r memEnrollments) UpdateProgress(ctx context.Context, id int, percent int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.enrollments {
		if r.s.enrollments[i].ID == id {
			r.s.enrollments[i].ProgressPercent = percent
			return nil
		}
	}
	return repository.ErrNotFound
}

type memComments struct{ s *memStore }

func (r memComments) Create(ctx context.Context, c *model.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextComment++
	c.ID = r.s.nextComment
	stored := *c
	stored.UserName = nil
	r.s.comments = append(r.s.comments, stored)
	return nil
}

func (r memComments) FindByID(ctx context.Context, id int) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.comments {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r memComments) FindByCourse(ctx context.Context, courseID int) ([]model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Comment{}
	for _, c := range r.s.comments {
		if c.CourseID != courseID {
			continue
		}
		for _, u := range r.s.users {
			if u.ID == c.UserID {
				name := u.Name
				c.UserName = &name
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memComments) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.comments {
		if c.ID == id {
			r.s.comments = append(r.s.comments[:i], r.s.comments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
