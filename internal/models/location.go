package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Location struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName  string             `json:"fullName" bson:"fullName" validate:"required"`
	ShortName string             `json:"shortName" bson:"shortName" validate:"required"`
	Address   string             `json:"address" bson:"address" validate:"required"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
