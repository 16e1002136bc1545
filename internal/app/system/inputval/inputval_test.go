package inputval

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
)

func strPtr(s string) *string { return &s }

func TestIsObjectID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"507F1F77BCF86CD799439011", true},
		{"", false},
		{"abc", false},
		{"507f1f77bcf86cd79943901z", false},
		{"507f1f77bcf86cd7994390111", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsObjectID(tt.in); got != tt.want {
				t.Errorf("IsObjectID(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if _, err := ParseID("nope"); err != ErrInvalidID {
		t.Errorf("ParseID(nope) err = %v, want ErrInvalidID", err)
	}
	oid, err := ParseID(" 507f1f77bcf86cd799439011 ")
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if oid.Hex() != "507f1f77bcf86cd799439011" {
		t.Errorf("Hex = %s", oid.Hex())
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-03-01", true, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-03-01T10:30:00Z", true, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-03-01T12:30:00+02:00", true, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"03/01/2025", false, time.Time{}},
		{"", false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsOneOf(t *testing.T) {
	if !IsOneOf("b", []string{"a", "b"}) {
		t.Error("expected b to be allowed")
	}
	if IsOneOf("B", []string{"a", "b"}) {
		t.Error("match must be exact")
	}
}

func TestCreateEmployeeRequest(t *testing.T) {
	long := strings.Repeat("x", 51)

	tests := []struct {
		name    string
		req     CreateEmployeeRequest
		wantMsg string
	}{
		{"valid", CreateEmployeeRequest{FirstName: "Ana", LastName: "Gomez", Email: "ana@x.com"}, ""},
		{"blank first", CreateEmployeeRequest{FirstName: "   ", LastName: "Gomez", Email: "ana@x.com"}, "First name is required"},
		{"missing last", CreateEmployeeRequest{FirstName: "Ana", Email: "ana@x.com"}, "Last name is required"},
		{"missing email", CreateEmployeeRequest{FirstName: "Ana", LastName: "Gomez"}, "Valid email required"},
		{"email without at", CreateEmployeeRequest{FirstName: "Ana", LastName: "Gomez", Email: "ana.x.com"}, "Valid email required"},
		{"long position", CreateEmployeeRequest{FirstName: "Ana", LastName: "Gomez", Email: "ana@x.com", Position: long}, "Position too long"},
		{"long department", CreateEmployeeRequest{FirstName: "Ana", LastName: "Gomez", Email: "ana@x.com", Department: long}, "Department too long"},
		{"position at limit", CreateEmployeeRequest{FirstName: "Ana", LastName: "Gomez", Email: "ana@x.com", Position: strings.Repeat("x", 50)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp, err := tt.req.Employee()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if emp.FirstName != strings.TrimSpace(tt.req.FirstName) {
					t.Errorf("FirstName = %q", emp.FirstName)
				}
				return
			}
			if apperr.KindOf(err) != apperr.InvalidInput {
				t.Fatalf("kind = %v, want InvalidInput (err=%v)", apperr.KindOf(err), err)
			}
			if apperr.Message(err) != tt.wantMsg {
				t.Errorf("message = %q, want %q", apperr.Message(err), tt.wantMsg)
			}
		})
	}
}

func TestCreateEmployeeRequest_Trims(t *testing.T) {
	req := CreateEmployeeRequest{FirstName: "  Ana ", LastName: " Gomez", Email: " ana@x.com ", Department: " HR "}
	emp, err := req.Employee()
	if err != nil {
		t.Fatalf("Employee: %v", err)
	}
	if emp.FirstName != "Ana" || emp.LastName != "Gomez" || emp.Email != "ana@x.com" || emp.Department != "HR" {
		t.Errorf("not trimmed: %+v", emp)
	}
}

func TestUpdateEmployeeRequest(t *testing.T) {
	upd, err := (&UpdateEmployeeRequest{Department: strPtr(" Sales ")}).Update()
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Department == nil || *upd.Department != "Sales" {
		t.Errorf("Department = %v", upd.Department)
	}
	if upd.FirstName != nil || upd.Email != nil {
		t.Error("absent fields must stay nil")
	}

	_, err = (&UpdateEmployeeRequest{Email: strPtr("nope")}).Update()
	if apperr.Message(err) != "Valid email required" {
		t.Errorf("bad email message = %q", apperr.Message(err))
	}

	_, err = (&UpdateEmployeeRequest{FirstName: strPtr("  ")}).Update()
	if apperr.Message(err) != "First name is required" {
		t.Errorf("blank first name message = %q", apperr.Message(err))
	}
}

func TestCreateTaskRequest(t *testing.T) {
	const id = "507f1f77bcf86cd799439011"

	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantMsg string
	}{
		{"valid minimal", CreateTaskRequest{Title: "Write report", Assignee: id}, ""},
		{"valid full", CreateTaskRequest{Title: "Ship", Assignee: id, Status: "in-progress", Priority: "high", DueDate: strPtr("2025-06-01")}, ""},
		{"missing title", CreateTaskRequest{Assignee: id}, "Task title required"},
		{"blank title", CreateTaskRequest{Title: "  ", Assignee: id}, "Task title required"},
		{"missing assignee", CreateTaskRequest{Title: "x"}, "Assignee id required"},
		{"bad assignee", CreateTaskRequest{Title: "x", Assignee: "123"}, "Invalid assignee id"},
		{"bad status", CreateTaskRequest{Title: "x", Assignee: id, Status: "blocked"}, "Invalid status"},
		{"bad priority", CreateTaskRequest{Title: "x", Assignee: id, Priority: "urgent"}, "Invalid priority"},
		{"bad due date", CreateTaskRequest{Title: "x", Assignee: id, DueDate: strPtr("soon")}, "Invalid due date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := tt.req.Task()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if task.Assignee.Hex() != id {
					t.Errorf("Assignee = %s", task.Assignee.Hex())
				}
				return
			}
			if apperr.KindOf(err) != apperr.InvalidInput {
				t.Fatalf("kind = %v, want InvalidInput (err=%v)", apperr.KindOf(err), err)
			}
			if apperr.Message(err) != tt.wantMsg {
				t.Errorf("message = %q, want %q", apperr.Message(err), tt.wantMsg)
			}
		})
	}
}

func TestCreateTaskRequest_NoDueDate(t *testing.T) {
	task, err := (&CreateTaskRequest{Title: "Write report", Assignee: "507f1f77bcf86cd799439011"}).Task()
	if err != nil {
		t.Fatalf("Task: %v", err)
	}
	if task.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", task.DueDate)
	}
	if task.Status != "" || task.Priority != "" {
		t.Error("defaults are applied by the store, not the request")
	}
}

func TestUpdateTaskRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateTaskRequest
		wantMsg string
	}{
		{"empty", UpdateTaskRequest{}, ""},
		{"status", UpdateTaskRequest{Status: strPtr("done")}, ""},
		{"bad status", UpdateTaskRequest{Status: strPtr("later")}, "Invalid status"},
		{"bad priority", UpdateTaskRequest{Priority: strPtr("")}, "Invalid priority"},
		{"bad assignee", UpdateTaskRequest{Assignee: strPtr("xyz")}, "Invalid assignee id"},
		{"blank title", UpdateTaskRequest{Title: strPtr(" ")}, "Task title required"},
		{"bad due", UpdateTaskRequest{DueDate: strPtr("31/12/2025")}, "Invalid due date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Update()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if apperr.Message(err) != tt.wantMsg {
				t.Errorf("message = %q, want %q", apperr.Message(err), tt.wantMsg)
			}
		})
	}
}
