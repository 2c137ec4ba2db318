package seed

import (
	"context"
	"fmt"

	"onlearn/internal/model"
	"onlearn/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// DemoPassword is shared by every seeded account
const DemoPassword = "password123"

// DB is the subset of *pgxpool.Pool the seeder needs
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type seedUser struct {
	Name  string
	Email string
	Role  string
}

type seedCourse struct {
	Title       string
	Description string
	Teacher     int // index into users
	Published   bool
	Image       string
	Rating      float64
	ReviewCount int
	Price       string
	Level       string
}

type seedEnrollment struct {
	User     int // index into users
	Course   int // index into courses
	Progress int
}

type seedComment struct {
	User   int
	Course int
	Text   string
}

var users = []seedUser{
	{"Alice Johnson", "alice@example.com", model.RoleStudent},
	{"Bob Smith", "bob@example.com", model.RoleStudent},
	{"Dr. Sarah Williams", "sarah.williams@example.com", model.RoleTeacher},
	{"Prof. Michael Brown", "michael.brown@example.com", model.RoleTeacher},
	{"Admin User", "admin@example.com", model.RoleAdmin},
}

var courses = []seedCourse{
	{"Introduction to Python", "Learn Python basics", 2, true, "python.jpg", 4.8, 1240, "Free", "Beginner"},
	{"Advanced Web Development", "Build modern web applications", 2, true, "webdev.jpg", 4.6, 860, "$49", "Advanced"},
	{"Data Structures and Algorithms", "Master fundamental algorithms", 3, true, "dsa.jpg", 4.7, 1530, "$39", "Intermediate"},
	{"Machine Learning Basics", "Introduction to ML concepts", 3, false, "ml.jpg", 0, 0, "$59", "Intermediate"},
}

var enrollments = []seedEnrollment{
	{User: 0, Course: 0, Progress: 45},
	{User: 0, Course: 1, Progress: 20},
	{User: 1, Course: 0, Progress: 80},
	{User: 1, Course: 2, Progress: 100},
}

var comments = []seedComment{
	{User: 0, Course: 0, Text: "Great introduction, the exercises really helped!"},
	{User: 1, Course: 0, Text: "Clear explanations. Looking forward to the next module."},
}

// Run inserts the demo catalog when the users table is empty. Everything is
// written in one transaction so a failed seed leaves the store untouched.
func Run(ctx context.Context, db DB, logger *logrus.Logger) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		logger.WithField("users", count).Info("store already populated, skipping seed")
		return nil
	}

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	if err := insertAll(ctx, tx, hash); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"users":       len(users),
		"courses":     len(courses),
		"enrollments": len(enrollments),
		"comments":    len(comments),
	}).Info("seeded demo data")
	return nil
}

func insertAll(ctx context.Context, tx pgx.Tx, hash string) error {
	userIDs := make([]int, len(users))
	for i, u := range users {
		if !model.IsValidRole(u.Role) {
			return fmt.Errorf("seed user %s has unknown role %q", u.Email, u.Role)
		}
		err := tx.QueryRow(ctx,
			"INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id",
			u.Name, u.Email, hash, u.Role,
		).Scan(&userIDs[i])
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}

	courseIDs := make([]int, len(courses))
	for i, c := range courses {
		var rating *float64
		var reviews *int
		if c.ReviewCount > 0 {
			rating, reviews = &c.Rating, &c.ReviewCount
		}
		err := tx.QueryRow(ctx,
			`INSERT INTO courses (title, description, teacher_id, is_published, image, rating, review_count, price, level)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			c.Title, c.Description, userIDs[c.Teacher], c.Published, c.Image, rating, reviews, c.Price, c.Level,
		).Scan(&courseIDs[i])
		if err != nil {
			return fmt.Errorf("failed to seed course %q: %w", c.Title, err)
		}
	}

	for _, e := range enrollments {
		if _, err := tx.Exec(ctx,
			"INSERT INTO enrollments (user_id, course_id, progress_percent) VALUES ($1, $2, $3)",
			userIDs[e.User], courseIDs[e.Course], e.Progress,
		); err != nil {
			return fmt.Errorf("failed to seed enrollment: %w", err)
		}
	}

	for _, cm := range comments {
		if _, err := tx.Exec(ctx,
			"INSERT INTO comments (user_id, course_id, text) VALUES ($1, $2, $3)",
			userIDs[cm.User], courseIDs[cm.Course], cm.Text,
		); err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}
	return nil
}
