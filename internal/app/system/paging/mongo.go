// internal/app/system/paging/mongo.go
package paging

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// FindPage fetches one page of c matching filter and counts all matches
// concurrently. Both calls must succeed; the first error cancels the other
// and is returned, so a partial envelope is never built.
//
// page and limit must already be normalized (see Limits.Normalize).
func FindPage[T any](ctx context.Context, c *mongo.Collection, filter bson.M, sort bson.D, page, limit int) (Envelope[T], error) {
	var (
		rows  []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		find := options.Find().SetSkip(Skip(page, limit)).SetLimit(int64(limit))
		if len(sort) > 0 {
			find.SetSort(sort)
		}
		cur, err := c.Find(gctx, filter, find)
		if err != nil {
			return err
		}
		return cur.All(gctx, &rows)
	})
	g.Go(func() error {
		n, err := c.CountDocuments(gctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return Envelope[T]{}, err
	}

	return NewEnvelope(rows, page, limit, total), nil
}
