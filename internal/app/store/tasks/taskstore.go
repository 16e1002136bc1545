// internal/app/store/tasks/taskstore.go
package taskstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidID        = inputval.ErrInvalidID
	ErrInvalidAssignee  = apperr.Invalid("Invalid assignee id")
	ErrAssigneeNotFound = apperr.New(apperr.AssigneeNotFound, "Assignee (employee) not found")
	ErrTitleRequired    = apperr.Invalid("Task title required")
)

// Store persists tasks and checks assignees against the employees
// collection.
type Store struct {
	c         *mongo.Collection
	employees *mongo.Collection
	limits    paging.Limits

	// checkAssigneeOnUpdate makes UpdateByID verify that a new assignee
	// exists, not just that it is well-formed.
	checkAssigneeOnUpdate bool
}

// Option configures a Store.
type Option func(*Store)

// WithLimits sets the page-size bounds used by List.
func WithLimits(l paging.Limits) Option {
	return func(s *Store) { s.limits = l }
}

// WithAssigneeCheckOnUpdate enables the existence check for assignee
// changes in UpdateByID.
func WithAssigneeCheckOnUpdate(on bool) Option {
	return func(s *Store) { s.checkAssigneeOnUpdate = on }
}

// New returns a task store over db's "tasks" collection.
func New(db *mongo.Database, opts ...Option) *Store {
	s := &Store{
		c:         db.Collection("tasks"),
		employees: db.Collection("employees"),
		limits:    paging.DefaultLimits(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ListParams selects a page of tasks. Empty strings mean "no filter".
type ListParams struct {
	Page     int
	Limit    int
	Status   string
	Priority string
	Assignee string
}

// assigneeExists reports whether an employee with the given id exists.
func (s *Store) assigneeExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.employees.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, apperr.FromStore(err, "lookup assignee", nil)
	}
	return true, nil
}

// Create inserts a task after checking that its assignee exists.
// Status and priority default to "todo" and "medium".
func (s *Store) Create(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Assignee.IsZero() {
		return models.Task{}, ErrInvalidAssignee
	}
	task.Title = htmlsanitize.PlainText(task.Title)
	if task.Title == "" {
		return models.Task{}, ErrTitleRequired
	}
	task.Description = htmlsanitize.PlainText(task.Description)

	ok, err := s.assigneeExists(ctx, task.Assignee)
	if err != nil {
		return models.Task{}, err
	}
	if !ok {
		return models.Task{}, ErrAssigneeNotFound
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	task.ID = primitive.NewObjectID()
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if task.DueDate != nil {
		d := task.DueDate.UTC().Truncate(time.Millisecond)
		task.DueDate = &d
	}
	task.CreatedAt = now
	task.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, task); err != nil {
		return models.Task{}, apperr.FromStore(err, "insert task", nil)
	}
	return task, nil
}

// List returns one page of tasks. Status and priority are exact-match
// filters; Assignee must be a well-formed id.
func (s *Store) List(ctx context.Context, p ListParams) (paging.Envelope[models.Task], error) {
	page, limit := s.limits.Normalize(p.Page, p.Limit)

	filter := bson.M{}
	if p.Status != "" {
		filter["status"] = p.Status
	}
	if p.Priority != "" {
		filter["priority"] = p.Priority
	}
	if p.Assignee != "" {
		oid, err := inputval.ParseID(p.Assignee)
		if err != nil {
			return paging.Envelope[models.Task]{}, ErrInvalidAssignee
		}
		filter["assignee"] = oid
	}

	env, err := paging.FindPage[models.Task](ctx, s.c, filter, bson.D{{Key: "_id", Value: 1}}, page, limit)
	if err != nil {
		return paging.Envelope[models.Task]{}, apperr.FromStore(err, "list tasks", nil)
	}
	return env, nil
}

// GetByID returns the task, or nil when none exists.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Task, error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var t models.Task
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, "get task", nil)
	}
	return &t, nil
}

// UpdateByID merges the supplied fields and refreshes updatedAt. It returns
// the updated task, or nil when no task has that id.
func (s *Store) UpdateByID(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{
		"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
	}
	if upd.Title != nil {
		title := htmlsanitize.PlainText(*upd.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		set["title"] = title
	}
	if upd.Description != nil {
		set["description"] = htmlsanitize.PlainText(*upd.Description)
	}
	if upd.Assignee != nil {
		aid, err := inputval.ParseID(*upd.Assignee)
		if err != nil {
			return nil, ErrInvalidAssignee
		}
		if s.checkAssigneeOnUpdate {
			ok, err := s.assigneeExists(ctx, aid)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrAssigneeNotFound
			}
		}
		set["assignee"] = aid
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Priority != nil {
		set["priority"] = *upd.Priority
	}
	if upd.DueDate != nil {
		set["dueDate"] = upd.DueDate.UTC().Truncate(time.Millisecond)
	}

	var t models.Task
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, "update task", nil)
	}
	return &t, nil
}

// DeleteByID removes a task and reports whether one was deleted.
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return false, ErrInvalidID
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, apperr.FromStore(err, "delete task", nil)
	}
	return res.DeletedCount == 1, nil
}
