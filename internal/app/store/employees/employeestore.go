// internal/app/store/employees/employeestore.go
package employeestore

import (
	"context"
	"errors"
	"time"

	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/inputval"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/app/system/search"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidID      = inputval.ErrInvalidID
	ErrDuplicateEmail = apperr.New(apperr.DuplicateKey, "Email already exists")
	ErrInvalidSort    = apperr.Invalid("Invalid sort field")
)

// SortableFields lists the fields List accepts for SortBy.
var SortableFields = []string{
	"firstName",
	"lastName",
	"email",
	"position",
	"department",
	"createdAt",
	"updatedAt",
}

// Store persists employees. Task lookups go through the task store.
type Store struct {
	c      *mongo.Collection
	tasks  *taskstore.Store
	limits paging.Limits
}

// Option configures a Store.
type Option func(*Store)

// WithLimits sets the page-size bounds used by List and ListTasks.
func WithLimits(l paging.Limits) Option {
	return func(s *Store) { s.limits = l }
}

// New returns an employee store. tasks backs ListTasks.
func New(db *mongo.Database, tasks *taskstore.Store, opts ...Option) *Store {
	s := &Store{
		c:      db.Collection("employees"),
		tasks:  tasks,
		limits: paging.DefaultLimits(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ListParams selects a page of employees.
//
// Department is an exact match. Query is a case-insensitive substring
// match against firstName, lastName and email. SortBy must be one of
// SortableFields or empty.
type ListParams struct {
	Page       int
	Limit      int
	Department string
	Query      string
	SortBy     string
}

func (s *Store) Create(ctx context.Context, emp models.Employee) (models.Employee, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	emp.ID = primitive.NewObjectID()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, emp); err != nil {
		return models.Employee{}, apperr.FromStore(err, "insert employee", ErrDuplicateEmail)
	}
	return emp, nil
}

// List returns one page of employees and the total matching count.
func (s *Store) List(ctx context.Context, p ListParams) (paging.Envelope[models.Employee], error) {
	sort := bson.D{{Key: "_id", Value: 1}}
	if p.SortBy != "" {
		if !inputval.IsOneOf(p.SortBy, SortableFields) {
			return paging.Envelope[models.Employee]{}, ErrInvalidSort
		}
		sort = bson.D{{Key: p.SortBy, Value: 1}, {Key: "_id", Value: 1}}
	}

	filter := bson.M{}
	if p.Department != "" {
		filter["department"] = p.Department
	}
	if or := search.AnyField(p.Query, "firstName", "lastName", "email"); or != nil {
		filter["$or"] = or
	}

	page, limit := s.limits.Normalize(p.Page, p.Limit)
	env, err := paging.FindPage[models.Employee](ctx, s.c, filter, sort, page, limit)
	if err != nil {
		return paging.Envelope[models.Employee]{}, apperr.FromStore(err, "list employees", nil)
	}
	return env, nil
}

// GetByID returns the employee, or nil when none exists.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var e models.Employee
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, "get employee", nil)
	}
	return &e, nil
}

// UpdateByID merges the supplied fields and refreshes updatedAt. It returns
// nil when no employee has that id.
func (s *Store) UpdateByID(ctx context.Context, id string, upd models.EmployeeUpdate) (*models.Employee, error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{
		"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
	}
	if upd.FirstName != nil {
		set["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["lastName"] = *upd.LastName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}

	var e models.Employee
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, "update employee", ErrDuplicateEmail)
	}
	return &e, nil
}

// DeleteByID removes the employee and reports whether one was deleted.
// Tasks assigned to the employee are left in place.
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return false, ErrInvalidID
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, apperr.FromStore(err, "delete employee", nil)
	}
	return res.DeletedCount == 1, nil
}

// ListTasks returns a page of tasks assigned to the employee, paged with
// this store's limits. It does not check that the employee exists; an
// unknown id yields an empty page.
func (s *Store) ListTasks(ctx context.Context, id string, page, limit int) (paging.Envelope[models.Task], error) {
	oid, err := inputval.ParseID(id)
	if err != nil {
		return paging.Envelope[models.Task]{}, ErrInvalidID
	}
	page, limit = s.limits.Normalize(page, limit)
	return s.tasks.List(ctx, taskstore.ListParams{
		Page:     page,
		Limit:    limit,
		Assignee: oid.Hex(),
	})
}
