// internal/app/system/search/search.go
package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pattern returns a case-insensitive regex matching q literally anywhere in
// a string. Regex metacharacters in q are quoted, so user input can never
// widen the match.
func Pattern(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

// AnyField returns a filter matching documents where any of fields contains
// q. It returns nil for a blank query so callers can skip the clause.
//
//	if f := search.AnyField(q, "firstName", "lastName", "email"); f != nil {
//	    filter["$or"] = f
//	}
func AnyField(q string, fields ...string) bson.A {
	q = strings.TrimSpace(q)
	if q == "" || len(fields) == 0 {
		return nil
	}
	re := Pattern(q)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return or
}
