package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Rating      int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Testimonial string             `json:"testimonial" bson:"testimonial" validate:"required"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
