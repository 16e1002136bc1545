package tasks_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/app/features/tasks"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeStore struct {
	byID map[string]models.Task

	created   *models.Task
	createErr error

	listParams taskstore.ListParams
	listErr    error

	lastUpdate models.TaskUpdate
	updateErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: map[string]models.Task{}}
}

func (f *fakeStore) Create(_ context.Context, task models.Task) (models.Task, error) {
	if f.createErr != nil {
		return models.Task{}, f.createErr
	}
	task.ID = primitive.NewObjectID()
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	f.created = &task
	f.byID[task.ID.Hex()] = task
	return task, nil
}

func (f *fakeStore) List(_ context.Context, p taskstore.ListParams) (paging.Envelope[models.Task], error) {
	f.listParams = p
	if f.listErr != nil {
		return paging.Envelope[models.Task]{}, f.listErr
	}
	var out []models.Task
	for _, t := range f.byID {
		out = append(out, t)
	}
	return paging.NewEnvelope(out, 1, 50, int64(len(out))), nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeStore) UpdateByID(_ context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	f.lastUpdate = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	f.byID[id] = t
	return &t, nil
}

func (f *fakeStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeStore) seed(title string) models.Task {
	t := models.Task{
		ID:       primitive.NewObjectID(),
		Title:    title,
		Assignee: primitive.NewObjectID(),
		Status:   models.TaskStatusTodo,
		Priority: models.TaskPriorityLow,
	}
	f.byID[t.ID.Hex()] = t
	return t
}

func newHandler(store tasks.Store) http.Handler {
	return tasks.Routes(tasks.NewHandler(store, zap.NewNop()))
}

func serve(h http.Handler, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreate_Defaults(t *testing.T) {
	store := newFakeStore()
	h := newHandler(store)
	assignee := primitive.NewObjectID()

	rec := serve(h, testutil.NewJSONRequest("POST", "/",
		`{"title":"Write report","assignee":"`+assignee.Hex()+`"}`))
	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"dueDate":null`)

	var got models.Task
	rec.DecodeJSON(t, &got)
	if got.Status != "todo" || got.Priority != "medium" {
		t.Errorf("status/priority = %q/%q, want todo/medium", got.Status, got.Priority)
	}
	if got.Assignee != assignee {
		t.Errorf("Assignee = %s, want %s", got.Assignee.Hex(), assignee.Hex())
	}
}

func TestHandleCreate_DueDate(t *testing.T) {
	store := newFakeStore()
	h := newHandler(store)

	rec := serve(h, testutil.NewJSONRequest("POST", "/",
		`{"title":"Ship","assignee":"`+primitive.NewObjectID().Hex()+`","dueDate":"2026-03-01","status":"in-progress","priority":"high"}`))
	rec.AssertStatus(t, http.StatusCreated)

	if store.created == nil || store.created.DueDate == nil {
		t.Fatal("expected dueDate to reach the store")
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !store.created.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", store.created.DueDate, want)
	}
	if store.created.Status != "in-progress" || store.created.Priority != "high" {
		t.Errorf("status/priority = %q/%q", store.created.Status, store.created.Priority)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	oid := primitive.NewObjectID().Hex()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `[`, "Invalid request body"},
		{"missing title", `{"assignee":"` + oid + `"}`, "Task title required"},
		{"blank title", `{"title":"  ","assignee":"` + oid + `"}`, "Task title required"},
		{"missing assignee", `{"title":"x"}`, "Assignee id required"},
		{"malformed assignee", `{"title":"x","assignee":"abc"}`, "Invalid assignee id"},
		{"bad status", `{"title":"x","assignee":"` + oid + `","status":"blocked"}`, "Invalid status"},
		{"bad priority", `{"title":"x","assignee":"` + oid + `","priority":"urgent"}`, "Invalid priority"},
		{"bad due date", `{"title":"x","assignee":"` + oid + `","dueDate":"tomorrow"}`, "Invalid due date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			h := newHandler(store)

			rec := serve(h, testutil.NewJSONRequest("POST", "/", tt.body))
			rec.AssertError(t, http.StatusBadRequest, tt.want)
			if store.created != nil {
				t.Error("store should not be called on invalid input")
			}
		})
	}
}

func TestHandleCreate_AssigneeNotFound(t *testing.T) {
	store := newFakeStore()
	store.createErr = taskstore.ErrAssigneeNotFound
	h := newHandler(store)

	rec := serve(h, testutil.NewJSONRequest("POST", "/",
		`{"title":"x","assignee":"`+primitive.NewObjectID().Hex()+`"}`))
	rec.AssertError(t, http.StatusBadRequest, "Assignee (employee) not found")
}

func TestServeList_PassesFilters(t *testing.T) {
	store := newFakeStore()
	store.seed("a")
	h := newHandler(store)
	assignee := primitive.NewObjectID().Hex()

	rec := serve(h, testutil.NewRequest("GET", "/?status=done&priority=high&assignee="+assignee+"&page=3&limit=7"))
	rec.AssertStatus(t, http.StatusOK)

	want := taskstore.ListParams{Page: 3, Limit: 7, Status: "done", Priority: "high", Assignee: assignee}
	if store.listParams != want {
		t.Errorf("ListParams = %+v, want %+v", store.listParams, want)
	}
}

func TestServeList_InvalidAssignee(t *testing.T) {
	store := newFakeStore()
	store.listErr = taskstore.ErrInvalidAssignee
	h := newHandler(store)

	rec := serve(h, testutil.NewRequest("GET", "/?assignee=nope"))
	rec.AssertError(t, http.StatusBadRequest, "Invalid assignee id")
}

func TestServeView(t *testing.T) {
	store := newFakeStore()
	task := store.seed("Draft")
	h := newHandler(store)

	rec := serve(h, testutil.NewRequest("GET", "/"+task.ID.Hex()))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"title":"Draft"`)

	rec = serve(h, testutil.NewRequest("GET", "/"+primitive.NewObjectID().Hex()))
	rec.AssertError(t, http.StatusNotFound, "Task not found")

	rec = serve(h, testutil.NewRequest("GET", "/zz"))
	rec.AssertError(t, http.StatusBadRequest, "Invalid id")
}

func TestHandleUpdate(t *testing.T) {
	store := newFakeStore()
	task := store.seed("Draft")
	h := newHandler(store)

	rec := serve(h, testutil.NewJSONRequest("PATCH", "/"+task.ID.Hex(), `{"status":"done"}`))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status":"done"`)
	if store.lastUpdate.Title != nil || store.lastUpdate.Assignee != nil {
		t.Errorf("absent fields should stay nil: %+v", store.lastUpdate)
	}

	rec = serve(h, testutil.NewJSONRequest("PATCH", "/"+task.ID.Hex(), `{"status":"blocked"}`))
	rec.AssertError(t, http.StatusBadRequest, "Invalid status")

	rec = serve(h, testutil.NewJSONRequest("PATCH", "/"+task.ID.Hex(), `{"assignee":"bad"}`))
	rec.AssertError(t, http.StatusBadRequest, "Invalid assignee id")

	rec = serve(h, testutil.NewJSONRequest("PATCH", "/"+primitive.NewObjectID().Hex(), `{"status":"done"}`))
	rec.AssertError(t, http.StatusNotFound, "Task not found")

	store.updateErr = taskstore.ErrAssigneeNotFound
	rec = serve(h, testutil.NewJSONRequest("PATCH", "/"+task.ID.Hex(), `{"assignee":"`+primitive.NewObjectID().Hex()+`"}`))
	rec.AssertError(t, http.StatusBadRequest, "Assignee (employee) not found")
}

func TestHandleDelete(t *testing.T) {
	store := newFakeStore()
	task := store.seed("Draft")
	h := newHandler(store)

	rec := serve(h, testutil.NewRequest("DELETE", "/"+task.ID.Hex()))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"success":true`)

	rec = serve(h, testutil.NewRequest("DELETE", "/"+task.ID.Hex()))
	rec.AssertError(t, http.StatusNotFound, "Task not found")
}
