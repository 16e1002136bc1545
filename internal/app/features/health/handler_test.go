package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/features/health"
	"github.com/dalemusser/taskhub/internal/app/store/gateway"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthBody struct {
	Status  string `json:"status"`
	DB      string `json:"db"`
	Message string `json:"message"`
}

func serve(t *testing.T, p health.Pinger) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	handler := health.NewHandler(p, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_DatabaseConnected(t *testing.T) {
	rec, body := serve(t, pingFunc(func(context.Context) error { return nil }))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	if body.Status != "ok" || body.DB != "connected" {
		t.Errorf("body = %+v, want ok/connected", body)
	}
	if body.Message != "" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestServe_DatabaseDown(t *testing.T) {
	rec, body := serve(t, pingFunc(func(context.Context) error {
		return errors.New("server selection timeout")
	}))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "degraded" || body.DB != "disconnected" {
		t.Errorf("body = %+v, want degraded/disconnected", body)
	}
	if body.Message != "server selection timeout" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestServe_GatewayNotConnected(t *testing.T) {
	gw := gateway.New(gateway.Config{URI: "mongodb://localhost:27017"}, zap.NewNop())

	rec, body := serve(t, gw)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.DB != "disconnected" {
		t.Errorf("db = %q, want disconnected", body.DB)
	}
}

func TestServe_LiveGateway(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gw := gateway.New(gateway.Config{URI: testutil.MongoURI(), Database: db.Name()}, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if _, err := gw.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer gw.Close(ctx)

	rec, body := serve(t, gw)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
}
