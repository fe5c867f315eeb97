package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bnb-academy/bnb-backend/internal/models"
	"github.com/bnb-academy/bnb-backend/internal/validate"
)

// MembershipHandler manages the billable plans. Enrollments keep their own
// snapshot of these terms, so updates here only affect future signups.
type MembershipHandler struct {
	collection *mongo.Collection
}

func NewMembershipHandler(client *mongo.Client, dbName string) *MembershipHandler {
	return &MembershipHandler{
		collection: client.Database(dbName).Collection("memberships"),
	}
}

func (h *MembershipHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching memberships")
		return
	}
	defer cursor.Close(ctx)

	memberships := []models.Membership{}
	if err := cursor.All(ctx, &memberships); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding memberships")
		return
	}

	respondJSON(w, http.StatusOK, memberships)
}

func (h *MembershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var membership models.Membership
	if err := json.NewDecoder(r.Body).Decode(&membership); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(membership); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	membership.ID = primitive.NewObjectID()
	membership.CreatedAt = now
	membership.UpdatedAt = now

	if _, err := h.collection.InsertOne(ctx, membership); err != nil {
		log.Printf("Membership insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating membership")
		return
	}

	respondJSON(w, http.StatusCreated, membership)
}

// Update rewrites a membership identified by the id query parameter.
func (h *MembershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing membership ID")
		return
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	var membership models.Membership
	if err := json.NewDecoder(r.Body).Decode(&membership); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(membership); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"billingPeriodMonth": membership.BillingPeriodMonth,
		"cost":               membership.Cost,
		"name":               membership.Name,
		"numberOfDaysInWeek": membership.NumberOfDaysInWeek,
		"stripePriceId":      membership.StripePriceID,
		"type":               membership.Type,
		"unit":               membership.Unit,
		"updatedAt":          time.Now().UTC(),
	}}

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Membership update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error updating membership")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Membership not found")
		return
	}

	var updated models.Membership
	if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching membership")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a membership identified by the id query parameter.
func (h *MembershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Invalid membership ID")
		return
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting membership")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Membership not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Membership deleted"})
}
