package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bnb-academy/bnb-backend/internal/export"
	"github.com/bnb-academy/bnb-backend/internal/models"
	"github.com/bnb-academy/bnb-backend/internal/search"
	"github.com/bnb-academy/bnb-backend/internal/validate"
)

var enrollmentCSVHeader = []string{
	"courseName", "studentFirstName", "studentLastName", "familyName",
	"familyEmail", "membershipName", "cost", "signupFee", "proRatedAmount",
	"cardLast4", "createdAt",
}

type EnrollmentHandler struct {
	collection *mongo.Collection
}

func NewEnrollmentHandler(client *mongo.Client, dbName string) *EnrollmentHandler {
	return &EnrollmentHandler{
		collection: client.Database(dbName).Collection("enrollments"),
	}
}

// Create stores an enrollment produced by the external signup flow. The
// membership terms and payment info arrive as snapshots in the payload and
// are persisted verbatim; they are never re-read from the membership later.
func (h *EnrollmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var enrollment models.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&enrollment); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(enrollment); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	enrollment.ID = primitive.NewObjectID()
	enrollment.CreatedAt = time.Now().UTC()

	if _, err := h.collection.InsertOne(ctx, enrollment); err != nil {
		log.Printf("Enrollment insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create enrollment")
		return
	}

	respondJSON(w, http.StatusCreated, enrollment)
}

// List returns a filtered page of enrollments, or the full filtered set as
// CSV when export=csv. Free text matches across course, family, student,
// membership and card-last4 fields; the date range bounds createdAt.
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	params := search.FromRequest(r, "q")
	filter := search.Filter(models.EnrollmentSearchFields, params)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if r.URL.Query().Get("export") == "csv" {
		h.exportCSV(ctx, w, filter)
		return
	}

	cursor, total, err := search.Run(ctx, h.collection, filter, params)
	if err != nil {
		log.Printf("Enrollment search failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	enrollments := []models.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding enrollments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  enrollments,
		"total": total,
	})
}

func (h *EnrollmentHandler) exportCSV(ctx context.Context, w http.ResponseWriter, filter bson.M) {
	cursor, err := search.RunAll(ctx, h.collection, filter)
	if err != nil {
		log.Printf("Enrollment export failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	enrollments := []models.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding enrollments")
		return
	}

	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, []string{
			e.CourseName,
			e.StudentInfo.FirstName,
			e.StudentInfo.LastName,
			e.FamilyInfo.Name,
			e.FamilyInfo.Email,
			e.Membership.Name,
			e.Membership.Cost,
			fmt.Sprintf("%g", e.SignupFee),
			fmt.Sprintf("%g", e.ProRatedAmount),
			e.PaymentInfo.Card.Last4,
			export.Timestamp(e.CreatedAt),
		})
	}

	if err := export.WriteHTTP(w, "enrollments.csv", enrollmentCSVHeader, rows); err != nil {
		log.Printf("Enrollment CSV write failed: %v", err)
	}
}
