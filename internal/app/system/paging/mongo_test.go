package paging_test

import (
	"context"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

type row struct {
	N int `bson:"n"`
}

func seedRows(t *testing.T, n int) (*testutil.Fixtures, context.Context, context.CancelFunc) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()

	docs := make([]any, n)
	for i := range docs {
		docs[i] = bson.M{"n": i}
	}
	if _, err := db.Collection("rows").InsertMany(ctx, docs); err != nil {
		cancel()
		t.Fatalf("seed rows: %v", err)
	}
	return fx, ctx, cancel
}

func TestFindPage(t *testing.T) {
	fx, ctx, cancel := seedRows(t, 7)
	defer cancel()

	env, err := paging.FindPage[row](ctx, fx.DB().Collection("rows"), bson.M{}, bson.D{{Key: "n", Value: 1}}, 2, 3)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if env.Total != 7 || env.TotalPages != 3 || env.Page != 2 {
		t.Errorf("envelope = total %d, pages %d, page %d; want 7, 3, 2", env.Total, env.TotalPages, env.Page)
	}
	if len(env.Data) != 3 || env.Data[0].N != 3 {
		t.Errorf("data = %+v, want rows 3..5", env.Data)
	}
}

func TestFindPage_QueryErrorFailsWholeList(t *testing.T) {
	fx, ctx, cancel := seedRows(t, 3)
	defer cancel()

	env, err := paging.FindPage[row](ctx, fx.DB().Collection("rows"), bson.M{"$bad": 1}, nil, 1, 10)
	if err == nil {
		t.Fatal("expected error for rejected filter")
	}
	if env.Data != nil || env.Total != 0 || env.Page != 0 || env.TotalPages != 0 {
		t.Errorf("expected zero envelope on error, got %+v", env)
	}
}

func TestFindPage_CancelledContext(t *testing.T) {
	fx, _, cancel := seedRows(t, 3)
	defer cancel()

	ctx, stop := context.WithCancel(context.Background())
	stop()

	env, err := paging.FindPage[row](ctx, fx.DB().Collection("rows"), bson.M{}, nil, 1, 10)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if env.Data != nil || env.Total != 0 {
		t.Errorf("expected zero envelope on error, got %+v", env)
	}
}
