package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership holds the billable plan terms. Enrollments copy these at signup
// time, so edits here never rewrite history.
type Membership struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BillingPeriodMonth string             `json:"billingPeriodMonth" bson:"billingPeriodMonth" validate:"required"`
	Cost               string             `json:"cost" bson:"cost" validate:"required,numeric"`
	Name               string             `json:"name" bson:"name" validate:"required"`
	NumberOfDaysInWeek string             `json:"numberOfDaysInWeek" bson:"numberOfDaysInWeek" validate:"required"`
	StripePriceID      string             `json:"stripePriceId" bson:"stripePriceId" validate:"required"`
	Type               string             `json:"type" bson:"type" validate:"required"`
	Unit               string             `json:"unit" bson:"unit" validate:"required"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}
