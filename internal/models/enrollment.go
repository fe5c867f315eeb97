package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FamilyInfo struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	Email   string `json:"email" bson:"email"`
	Name    string `json:"name" bson:"name"`
	State   string `json:"state" bson:"state"`
	Zip     string `json:"zip" bson:"zip"`
}

// MembershipSnapshot is a point-in-time copy of the membership terms taken at
// enrollment. It keeps a live reference via MembershipID but is never
// re-synced when the referenced membership changes.
type MembershipSnapshot struct {
	MembershipID       primitive.ObjectID `json:"membershipId" bson:"membershipId" validate:"required"`
	BillingPeriodMonth int                `json:"billingPeriodMonth" bson:"billingPeriodMonth"`
	Cost               string             `json:"cost" bson:"cost"`
	Name               string             `json:"name" bson:"name"`
	NumberOfDaysInWeek int                `json:"numberOfDaysInWeek" bson:"numberOfDaysInWeek"`
	StripePriceID      string             `json:"stripePriceId" bson:"stripePriceId"`
	Type               string             `json:"type" bson:"type"`
	Unit               string             `json:"unit" bson:"unit"`
}

// Card mirrors the upstream payment source's card token verbatim.
type Card struct {
	AddressZip      string `json:"address_zip,omitempty" bson:"address_zip,omitempty"`
	AddressZipCheck string `json:"address_zip_check,omitempty" bson:"address_zip_check,omitempty"`
	Brand           string `json:"brand" bson:"brand"`
	Country         string `json:"country" bson:"country"`
	CVCCheck        string `json:"cvc_check" bson:"cvc_check"`
	ExpMonth        int    `json:"exp_month" bson:"exp_month"`
	ExpYear         int    `json:"exp_year" bson:"exp_year"`
	Funding         string `json:"funding" bson:"funding"`
	ID              string `json:"id" bson:"id"`
	Last4           string `json:"last4" bson:"last4"`
	Object          string `json:"object" bson:"object"`
}

type PaymentInfo struct {
	Card     Card   `json:"card" bson:"card"`
	ClientIP string `json:"client_ip" bson:"client_ip"`
	Created  int64  `json:"created" bson:"created"`
	ID       string `json:"id" bson:"id"`
	Livemode bool   `json:"livemode" bson:"livemode"`
	Object   string `json:"object" bson:"object"`
	Type     string `json:"type" bson:"type"`
	Used     bool   `json:"used" bson:"used"`
}

type TimeSlot struct {
	From string `json:"from" bson:"from"`
	ID   string `json:"id" bson:"id"`
	To   string `json:"to" bson:"to"`
}

type ScheduleDay struct {
	Disabled bool       `json:"disabled" bson:"disabled"`
	Selected bool       `json:"selected" bson:"selected"`
	WeekDay  string     `json:"weekDay" bson:"weekDay"`
	Time     []TimeSlot `json:"time" bson:"time"`
}

type StudentInfo struct {
	DOB       string `json:"dob" bson:"dob"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Enrollment is created by the external enrollment flow and is read-only
// here. Membership terms and payment details are denormalized snapshots.
type Enrollment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseName     string             `json:"courseName" bson:"courseName" validate:"required"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	FamilyInfo     FamilyInfo         `json:"familyInfo" bson:"familyInfo"`
	Membership     MembershipSnapshot `json:"membership" bson:"membership"`
	PaymentInfo    PaymentInfo        `json:"paymentInfo" bson:"paymentInfo"`
	ProRatedAmount float64            `json:"proRatedAmount" bson:"proRatedAmount"`
	Schedule       []ScheduleDay      `json:"schedule" bson:"schedule"`
	SignupFee      float64            `json:"signupFee" bson:"signupFee"`
	StudentInfo    StudentInfo        `json:"studentInfo" bson:"studentInfo"`
}

// EnrollmentSearchFields are the columns the admin free-text search ORs across.
var EnrollmentSearchFields = []string{
	"courseName",
	"membership.stripePriceId",
	"familyInfo.name",
	"familyInfo.email",
	"studentInfo.firstName",
	"studentInfo.lastName",
	"membership.name",
	"paymentInfo.card.last4",
}
