package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bnb-academy/bnb-backend/internal/models"
	"github.com/bnb-academy/bnb-backend/internal/storage"
	"github.com/bnb-academy/bnb-backend/internal/validate"
)

const maxUploadSize = 10 << 20

type TeacherHandler struct {
	collection *mongo.Collection
	store      storage.BlobStore
}

func NewTeacherHandler(client *mongo.Client, dbName string, store storage.BlobStore) *TeacherHandler {
	return &TeacherHandler{
		collection: client.Database(dbName).Collection("teachers"),
		store:      store,
	}
}

// Create accepts a multipart form with the teacher fields and an optional
// photo. The photo is uploaded to the blob store first; when the upload
// fails the teacher is not persisted.
func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	teacher := models.Teacher{
		Name:              r.FormValue("name"),
		Address:           r.FormValue("address"),
		EducationalDetail: r.FormValue("educationalDetail"),
		Description:       r.FormValue("description"),
	}

	if err := validate.Struct(teacher); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	url, ok := h.uploadPhoto(ctx, w, r)
	if !ok {
		return
	}
	teacher.ProfileURL = url

	now := time.Now().UTC()
	teacher.ID = primitive.NewObjectID()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now

	if _, err := h.collection.InsertOne(ctx, teacher); err != nil {
		log.Printf("Teacher insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating teacher")
		return
	}

	respondJSON(w, http.StatusCreated, teacher)
}

// GetAll retrieves all teachers, newest first
func (h *TeacherHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching teachers")
		return
	}
	defer cursor.Close(ctx)

	teachers := []models.Teacher{}
	if err := cursor.All(ctx, &teachers); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding teachers")
		return
	}

	respondJSON(w, http.StatusOK, teachers)
}

func (h *TeacherHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var teacher models.Teacher
	if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&teacher); err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(w, http.StatusNotFound, "Teacher not found")
		} else {
			respondError(w, http.StatusInternalServerError, "Error fetching teacher")
		}
		return
	}

	respondJSON(w, http.StatusOK, teacher)
}

// Update replaces the teacher fields. A new photo supersedes the stored
// profile URL; otherwise existingProfileUrl from the form is kept.
func (h *TeacherHandler) Update(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	teacher := models.Teacher{
		Name:              r.FormValue("name"),
		Address:           r.FormValue("address"),
		EducationalDetail: r.FormValue("educationalDetail"),
		Description:       r.FormValue("description"),
	}

	if err := validate.Struct(teacher); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profileURL := r.FormValue("existingProfileUrl")
	if url, ok := h.uploadPhoto(ctx, w, r); !ok {
		return
	} else if url != "" {
		profileURL = url
	}

	update := bson.M{"$set": bson.M{
		"name":              teacher.Name,
		"address":           teacher.Address,
		"educationalDetail": teacher.EducationalDetail,
		"description":       teacher.Description,
		"profile_url":       profileURL,
		"updatedAt":         time.Now().UTC(),
	}}

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Teacher update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error updating teacher")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Teacher not found")
		return
	}

	var updated models.Teacher
	if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching teacher")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting teacher")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Teacher not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Teacher deleted"})
}

// uploadPhoto pushes the "photo" form file to the blob store. It returns
// ("", true) when no file was attached, and writes the error response itself
// when the upload fails.
func (h *TeacherHandler) uploadPhoto(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", true
		}
		respondError(w, http.StatusBadRequest, "No file uploaded or filepath missing")
		return "", false
	}
	defer file.Close()

	url, err := h.store.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("Teacher photo upload failed: %v", err)
		respondError(w, http.StatusBadGateway, "Image upload failed")
		return "", false
	}
	return url, true
}
