package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProgramStatus string

const (
	ProgramActive   ProgramStatus = "Active"
	ProgramInactive ProgramStatus = "Inactive"
)

type ProgramLocation struct {
	Name       string    `json:"name" bson:"name" validate:"required"`
	StartDate  time.Time `json:"startDate" bson:"startDate" validate:"required"`
	EndDate    time.Time `json:"endDate" bson:"endDate" validate:"required"`
	Instructor string    `json:"instructor" bson:"instructor" validate:"required"`
}

type Program struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PK             string             `json:"pk" bson:"pk" validate:"required,oneof=PROG_SCIENCE PROG_MATH PROG_CODING"`
	CourseName     string             `json:"courseName" bson:"courseName" validate:"required"`
	AgeRange       string             `json:"ageRange" bson:"ageRange" validate:"required"`
	Description    string             `json:"description" bson:"description"`
	HeaderTitle    string             `json:"headerTitle" bson:"headerTitle"`
	ThumbnailImage string             `json:"thumbnailImage" bson:"thumbnailImage"`
	Location       []ProgramLocation  `json:"location" bson:"location"`
	Schedule       bson.M             `json:"schedule" bson:"schedule"` // free-form weekday map
	Program        string             `json:"program" bson:"program"`
	Status         ProgramStatus      `json:"status" bson:"status"`
	MaxEnrollment  int                `json:"maxEnrollment" bson:"maxEnrollment"`
	StartDate      time.Time          `json:"startDate" bson:"startDate"`
	EndDate        time.Time          `json:"endDate" bson:"endDate"`
	InPerson       bool               `json:"inPerson" bson:"inPerson"`
	Remote         bool               `json:"remote" bson:"remote"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
