package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data directly in the
// database, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateEmployee inserts an employee in the given department.
func (f *Fixtures) CreateEmployee(ctx context.Context, first, last, email, department string) models.Employee {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	emp := models.Employee{
		ID:         primitive.NewObjectID(),
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Position:   "Engineer",
		Department: department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("employees").InsertOne(ctx, emp); err != nil {
		f.t.Fatalf("failed to create test employee: %v", err)
	}
	return emp
}

// CreateTask inserts a task assigned to the given employee.
func (f *Fixtures) CreateTask(ctx context.Context, title string, assignee primitive.ObjectID, status, priority string) models.Task {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	task := models.Task{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Assignee:  assignee,
		Status:    status,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}
