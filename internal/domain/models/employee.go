// internal/domain/models/employee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a person tasks can be assigned to.
// Email is unique across the collection (uniq_employees_email).
type Employee struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Email      string             `bson:"email" json:"email"`
	Position   string             `bson:"position" json:"position"`
	Department string             `bson:"department" json:"department"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EmployeeUpdate carries a partial update. Nil fields are left unchanged.
type EmployeeUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Position   *string
	Department *string
}
