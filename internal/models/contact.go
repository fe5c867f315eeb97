package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a lead captured from the public contact form. Entries are
// immutable after creation; admins only search and export them.
type Contact struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Phone     string             `json:"phone" bson:"phone" validate:"required"`
	Message   string             `json:"message" bson:"message"`
	Course    string             `json:"course" bson:"course"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ContactSearchFields are the columns the admin free-text search ORs across.
var ContactSearchFields = []string{"name", "email", "phone", "message", "course"}
