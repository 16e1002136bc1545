// internal/app/seed/seed.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/indexes"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// BatchSize is the number of employees sent per InsertMany.
const BatchSize = 500

const duplicateKeyCode = 11000

var (
	firstNames = []string{
		"Alex", "Sam", "Jordan", "Taylor", "Casey", "Riley", "Jamie", "Morgan", "Avery", "Cameron",
		"Evan", "Drew", "Kai", "Noah", "Liam", "Mia", "Ava", "Olivia", "Sophia", "Isabella",
		"Elijah", "James", "Benjamin", "Lucas", "Henry", "Emma", "Charlotte", "Amelia", "Harper", "Ella",
		"Chloe", "Aria", "Lily", "Zoe", "Nora", "Hannah", "Levi", "Owen", "Wyatt", "Miles",
		"Julian", "Leo", "Jack", "Mason", "Ethan", "Grace", "Scarlett", "Victoria", "Layla", "Penelope",
	}
	lastNames = []string{
		"Smith", "Johnson", "Brown", "Williams", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
		"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	}
	positions = []string{
		"Engineer", "Designer", "Product Manager", "QA", "HR",
		"Sales", "Support", "Ops", "Data Analyst", "DevOps",
	}
	departments = []string{
		"Engineering", "Product", "Design", "QA", "HR",
		"Sales", "Support", "Operations", "Data",
	}
)

// Result summarizes a seeding run.
type Result struct {
	Existing int64
	Inserted int
	Batches  int
}

// Generate builds n random employees. Emails are first.last.N@example.com
// with N counting up from offset, so runs with distinct offsets never
// collide.
func Generate(n, offset int, rnd *rand.Rand, now time.Time) []models.Employee {
	now = now.UTC().Truncate(time.Millisecond)
	out := make([]models.Employee, 0, n)
	for i := 0; i < n; i++ {
		fn := firstNames[rnd.IntN(len(firstNames))]
		ln := lastNames[rnd.IntN(len(lastNames))]
		out = append(out, models.Employee{
			ID:         primitive.NewObjectID(),
			FirstName:  fn,
			LastName:   ln,
			Email:      fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(fn), strings.ToLower(ln), offset+i),
			Position:   positions[rnd.IntN(len(positions))],
			Department: departments[rnd.IntN(len(departments))],
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return out
}

// Run tops the employees collection up to target documents. It ensures the
// unique email index first, then inserts in batches of BatchSize. Emails that
// already exist are skipped rather than failing the run.
func Run(ctx context.Context, db *mongo.Database, target int, rnd *rand.Rand, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	coll := db.Collection("employees")

	if err := indexes.EnsureEmployees(ctx, db, logger); err != nil {
		return Result{}, fmt.Errorf("ensure employee indexes: %w", err)
	}
	logger.Info("ensured unique index on employees.email")

	existing, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Result{}, fmt.Errorf("count employees: %w", err)
	}
	res := Result{Existing: existing}
	logger.Info("existing employee count", zap.Int64("count", existing))

	toInsert := target - int(existing)
	if toInsert <= 0 {
		logger.Info("no new employees to insert (target already met)")
		return res, nil
	}

	emps := Generate(toInsert, int(existing), rnd, time.Now())
	for start := 0; start < len(emps); start += BatchSize {
		end := min(start+BatchSize, len(emps))
		docs := make([]any, 0, end-start)
		for _, e := range emps[start:end] {
			docs = append(docs, e)
		}

		_, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
		n := len(docs)
		if err != nil {
			skipped, ok := duplicatesOnly(err)
			if !ok {
				return res, fmt.Errorf("insert batch %d: %w", res.Batches+1, err)
			}
			n -= skipped
			logger.Warn("skipped duplicate emails in batch",
				zap.Int("batch", res.Batches+1), zap.Int("skipped", len(docs)-n))
		}

		res.Batches++
		res.Inserted += n
		logger.Info("inserted batch", zap.Int("batch", res.Batches), zap.Int("inserted", n))
	}

	logger.Info("seeding complete", zap.Int("inserted", res.Inserted))
	return res, nil
}

// duplicatesOnly reports how many documents an unordered insert skipped
// when every write error is a duplicate key. Any other write error, or a
// write concern error, makes ok false.
func duplicatesOnly(err error) (skipped int, ok bool) {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return 0, false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return 0, false
		}
	}
	return len(bwe.WriteErrors), true
}
