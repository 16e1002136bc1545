// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status values.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusDone       = "done"
)

// Task priority values.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// TaskStatuses lists the accepted status values in display order.
var TaskStatuses = []string{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// TaskPriorities lists the accepted priority values in display order.
var TaskPriorities = []string{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// Task is a unit of work assigned to an employee.
//
// NOTE:
//   - Assignee references employees._id. The reference is checked in
//     application code; deleting an employee does not touch its tasks.
//   - DueDate is stored as null when not supplied.
type Task struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Assignee    primitive.ObjectID `bson:"assignee" json:"assignee"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`
	DueDate     *time.Time         `bson:"dueDate" json:"dueDate"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TaskUpdate carries a partial update. Nil fields are left unchanged.
// Assignee is the hex form; the store converts it to an ObjectID.
type TaskUpdate struct {
	Title       *string
	Description *string
	Assignee    *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}
