package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bnb-academy/bnb-backend/internal/models"
	"github.com/bnb-academy/bnb-backend/internal/search"
	"github.com/bnb-academy/bnb-backend/internal/storage"
	"github.com/bnb-academy/bnb-backend/internal/validate"
)

type ProgramHandler struct {
	collection *mongo.Collection
	store      storage.BlobStore
}

func NewProgramHandler(client *mongo.Client, dbName string, store storage.BlobStore) *ProgramHandler {
	return &ProgramHandler{
		collection: client.Database(dbName).Collection("programs"),
		store:      store,
	}
}

// Create accepts a multipart form: scalar fields as form values, location and
// schedule as embedded JSON, plus an optional thumbnail photo. The thumbnail
// is uploaded first; an upload failure aborts without persisting anything.
func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	program, err := h.programFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(program); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	url, ok := h.uploadThumbnail(ctx, w, r)
	if !ok {
		return
	}
	if url != "" {
		program.ThumbnailImage = url
	}

	now := time.Now().UTC()
	program.ID = primitive.NewObjectID()
	program.CreatedAt = now
	program.UpdatedAt = now

	if _, err := h.collection.InsertOne(ctx, program); err != nil {
		log.Printf("Program insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating program")
		return
	}

	respondJSON(w, http.StatusCreated, program)
}

// GetAll retrieves all programs, newest first
func (h *ProgramHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching programs")
		return
	}
	defer cursor.Close(ctx)

	programs := []models.Program{}
	if err := cursor.All(ctx, &programs); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding programs")
		return
	}

	respondJSON(w, http.StatusOK, programs)
}

// Update rewrites a program identified by the id query parameter.
func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing _id for update")
		return
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	program, err := h.programFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(program); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	set := bson.M{
		"pk":            program.PK,
		"courseName":    program.CourseName,
		"ageRange":      program.AgeRange,
		"description":   program.Description,
		"headerTitle":   program.HeaderTitle,
		"location":      program.Location,
		"schedule":      program.Schedule,
		"program":       program.Program,
		"status":        program.Status,
		"maxEnrollment": program.MaxEnrollment,
		"startDate":     program.StartDate,
		"endDate":       program.EndDate,
		"inPerson":      program.InPerson,
		"remote":        program.Remote,
		"updatedAt":     time.Now().UTC(),
	}

	url, ok := h.uploadThumbnail(ctx, w, r)
	if !ok {
		return
	}
	if url != "" {
		set["thumbnailImage"] = url
	}

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		log.Printf("Program update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error updating program")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Program not found")
		return
	}

	var updated models.Program
	if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching program")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a program identified by the id query parameter.
func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing or invalid ID")
		return
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete program")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Program not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Program deleted successfully"})
}

func (h *ProgramHandler) programFromForm(r *http.Request) (models.Program, error) {
	program := models.Program{
		PK:          r.FormValue("pk"),
		CourseName:  r.FormValue("courseName"),
		AgeRange:    r.FormValue("ageRange"),
		Description: r.FormValue("description"),
		HeaderTitle: r.FormValue("headerTitle"),
		Program:     r.FormValue("program"),
		Status:      models.ProgramStatus(r.FormValue("status")),
		InPerson:    r.FormValue("inPerson") == "true",
		Remote:      r.FormValue("remote") == "true",
	}

	if program.Status == "" {
		program.Status = models.ProgramInactive
	}

	if v := r.FormValue("maxEnrollment"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return program, errInvalidField("maxEnrollment")
		}
		program.MaxEnrollment = n
	}

	if v := r.FormValue("startDate"); v != "" {
		t, err := search.ParseDate(v, false)
		if err != nil {
			return program, errInvalidField("startDate")
		}
		program.StartDate = t
	}
	if v := r.FormValue("endDate"); v != "" {
		t, err := search.ParseDate(v, false)
		if err != nil {
			return program, errInvalidField("endDate")
		}
		program.EndDate = t
	}

	if v := r.FormValue("location"); v != "" {
		if err := json.Unmarshal([]byte(v), &program.Location); err != nil {
			return program, errInvalidField("location")
		}
	}
	program.Schedule = bson.M{}
	if v := r.FormValue("schedule"); v != "" {
		if err := json.Unmarshal([]byte(v), &program.Schedule); err != nil {
			return program, errInvalidField("schedule")
		}
	}

	return program, nil
}

func (h *ProgramHandler) uploadThumbnail(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
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
		log.Printf("Program thumbnail upload failed: %v", err)
		respondError(w, http.StatusBadGateway, "Image upload failed")
		return "", false
	}
	return url, true
}

type fieldError struct{ field string }

func errInvalidField(field string) error { return fieldError{field} }

func (e fieldError) Error() string { return e.field + " is invalid" }
