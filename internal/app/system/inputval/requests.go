// internal/app/system/inputval/requests.go
package inputval

import (
	"strings"
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/domain/models"
)

// CreateEmployeeRequest is the POST /api/employees body.
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName" validate:"notblank"`
	LastName   string `json:"lastName" validate:"notblank"`
	Email      string `json:"email" validate:"notblank,contains=@"`
	Position   string `json:"position" validate:"max=50"`
	Department string `json:"department" validate:"max=50"`
}

// UpdateEmployeeRequest is the PATCH /api/employees/{id} body.
// Absent fields are left unchanged.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"firstName" validate:"omitnil,notblank"`
	LastName   *string `json:"lastName" validate:"omitnil,notblank"`
	Email      *string `json:"email" validate:"omitnil,notblank,contains=@"`
	Position   *string `json:"position" validate:"omitnil,max=50"`
	Department *string `json:"department" validate:"omitnil,max=50"`
}

// CreateTaskRequest is the POST /api/tasks body.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"notblank"`
	Description string  `json:"description"`
	Assignee    string  `json:"assignee" validate:"required,objectid"`
	Status      string  `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest is the PATCH /api/tasks/{id} body.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,notblank"`
	Description *string `json:"description"`
	Assignee    *string `json:"assignee" validate:"omitnil,objectid"`
	Status      *string `json:"status" validate:"omitnil,oneof=todo in-progress done"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
}

func init() {
	employeeMsgs := map[string]string{
		"FirstName":  "First name is required",
		"LastName":   "Last name is required",
		"Email":      "Valid email required",
		"Position":   "Position too long",
		"Department": "Department too long",
	}
	RegisterMessages("CreateEmployeeRequest", employeeMsgs)
	RegisterMessages("UpdateEmployeeRequest", employeeMsgs)

	RegisterMessages("CreateTaskRequest", map[string]string{
		"Title":             "Task title required",
		"Assignee.required": "Assignee id required",
		"Assignee.objectid": "Invalid assignee id",
		"Status":            "Invalid status",
		"Priority":          "Invalid priority",
	})
	RegisterMessages("UpdateTaskRequest", map[string]string{
		"Title":    "Task title required",
		"Assignee": "Invalid assignee id",
		"Status":   "Invalid status",
		"Priority": "Invalid priority",
	})
}

// ErrInvalidDueDate is returned for unparseable dueDate values.
var ErrInvalidDueDate = apperr.Invalid("Invalid due date")

// Employee validates the request and returns the model to insert.
func (req *CreateEmployeeRequest) Employee() (models.Employee, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Position = strings.TrimSpace(req.Position)
	req.Department = strings.TrimSpace(req.Department)
	if err := Struct(req); err != nil {
		return models.Employee{}, err
	}
	return models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
	}, nil
}

// Update validates the request and returns the partial update.
func (req *UpdateEmployeeRequest) Update() (models.EmployeeUpdate, error) {
	for _, p := range []*string{req.FirstName, req.LastName, req.Email, req.Position, req.Department} {
		TrimPtr(p)
	}
	if err := Struct(req); err != nil {
		return models.EmployeeUpdate{}, err
	}
	return models.EmployeeUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
	}, nil
}

// Task validates the request and returns the model to insert. Status and
// priority are left empty when absent; the store applies the defaults.
func (req *CreateTaskRequest) Task() (models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Assignee = strings.TrimSpace(req.Assignee)
	if err := Struct(req); err != nil {
		return models.Task{}, err
	}
	assignee, err := ParseID(req.Assignee)
	if err != nil {
		return models.Task{}, apperr.Invalid("Invalid assignee id")
	}
	due, err := parseDue(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    assignee,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     due,
	}, nil
}

// Update validates the request and returns the partial update.
func (req *UpdateTaskRequest) Update() (models.TaskUpdate, error) {
	TrimPtr(req.Title)
	TrimPtr(req.Assignee)
	if err := Struct(req); err != nil {
		return models.TaskUpdate{}, err
	}
	due, err := parseDue(req.DueDate)
	if err != nil {
		return models.TaskUpdate{}, err
	}
	return models.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     due,
	}, nil
}

func parseDue(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, ok := ParseDate(*s)
	if !ok {
		return nil, ErrInvalidDueDate
	}
	return &t, nil
}
