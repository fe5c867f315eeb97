package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Teacher struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" validate:"required"`
	Address           string             `json:"address" bson:"address" validate:"required"`
	EducationalDetail string             `json:"educationalDetail" bson:"educationalDetail" validate:"required"`
	Description       string             `json:"description" bson:"description"`
	ProfileURL        string             `json:"profile_url" bson:"profile_url"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}
