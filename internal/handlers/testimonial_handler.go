package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bnb-academy/bnb-backend/internal/models"
	"github.com/bnb-academy/bnb-backend/internal/validate"
)

type TestimonialHandler struct {
	collection *mongo.Collection
}

func NewTestimonialHandler(client *mongo.Client, dbName string) *TestimonialHandler {
	return &TestimonialHandler{
		collection: client.Database(dbName).Collection("testimonials"),
	}
}

// GetAll retrieves all testimonials, newest first
func (h *TestimonialHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching testimonials")
		return
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding testimonials")
		return
	}

	respondJSON(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var testimonial models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(testimonial); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	testimonial.ID = primitive.NewObjectID()
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now

	if _, err := h.collection.InsertOne(ctx, testimonial); err != nil {
		log.Printf("Testimonial insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating testimonial")
		return
	}

	respondJSON(w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	var testimonial models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(testimonial); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        testimonial.Name,
		"rating":      testimonial.Rating,
		"testimonial": testimonial.Testimonial,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Testimonial update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error updating testimonial")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Testimonial not found")
		return
	}

	var updated models.Testimonial
	if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching testimonial")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting testimonial")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Testimonial not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
