// internal/app/system/inputval/inputval.go
package inputval

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxLabelLen bounds employee position and department.
const MaxLabelLen = 50

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so fallback messages match what clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return IsObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// messages maps "<Struct>.<Field>.<tag>" (or "<Struct>.<Field>") to the
// client-facing message. Request types register theirs in init.
var messages = map[string]string{}

// RegisterMessages adds client-facing messages for a request struct's
// validation failures. Keys are "Field.tag" or "Field".
func RegisterMessages(structName string, m map[string]string) {
	for k, v := range m {
		messages[structName+"."+k] = v
	}
}

// Struct validates v against its `validate` tags and returns an
// InvalidInput error carrying the first failure's message.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Wrap(apperr.InvalidInput, "Invalid request", err)
	}
	return apperr.Invalid(messageFor(verrs[0]))
}

func messageFor(fe validator.FieldError) string {
	// StructNamespace is "CreateEmployeeRequest.FirstName".
	ns := fe.StructNamespace()
	if m, ok := messages[ns+"."+fe.Tag()]; ok {
		return m
	}
	if m, ok := messages[ns]; ok {
		return m
	}
	return "Invalid " + fe.Field()
}

// IsObjectID reports whether s is a well-formed 24-hex ObjectID.
func IsObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// ErrInvalidID is returned for path ids that are not ObjectIDs.
var ErrInvalidID = apperr.Invalid("Invalid id")

// ParseID converts a path id to an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// IsOneOf reports whether s equals one of allowed.
func IsOneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// TrimPtr trims *p in place when p is non-nil.
func TrimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}
