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

type LocationHandler struct {
	collection *mongo.Collection
}

func NewLocationHandler(client *mongo.Client, dbName string) *LocationHandler {
	return &LocationHandler{
		collection: client.Database(dbName).Collection("locations"),
	}
}

// GetAll retrieves all locations, newest first
func (h *LocationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching locations")
		return
	}
	defer cursor.Close(ctx)

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding locations")
		return
	}

	respondJSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var location models.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(location); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	location.ID = primitive.NewObjectID()
	location.CreatedAt = now
	location.UpdatedAt = now

	if _, err := h.collection.InsertOne(ctx, location); err != nil {
		log.Printf("Location insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating location")
		return
	}

	respondJSON(w, http.StatusCreated, location)
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var location models.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(location); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"fullName":  location.FullName,
		"shortName": location.ShortName,
		"address":   location.Address,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Location update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error updating location")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Location not found")
		return
	}

	var updated models.Location
	if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching location")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting location")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Location not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
