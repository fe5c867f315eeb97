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

	"github.com/bnb-academy/bnb-backend/internal/export"
	"github.com/bnb-academy/bnb-backend/internal/mailer"
	"github.com/bnb-academy/bnb-backend/internal/models"
	"github.com/bnb-academy/bnb-backend/internal/search"
	"github.com/bnb-academy/bnb-backend/internal/validate"
)

var contactCSVHeader = []string{"name", "email", "phone", "message", "course", "createdAt"}

type ContactHandler struct {
	collection *mongo.Collection
	notifier   mailer.Notifier
}

func NewContactHandler(client *mongo.Client, dbName string, notifier mailer.Notifier) *ContactHandler {
	return &ContactHandler{
		collection: client.Database(dbName).Collection("contacts"),
		notifier:   notifier,
	}
}

// Create handles a public contact-form submission. The acknowledgment email
// is sent off the request path; a send failure never fails the submission.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(contact); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := h.collection.InsertOne(ctx, contact); err != nil {
		log.Printf("Contact insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	go func(to, name string) {
		if err := h.notifier.Send(to, mailer.ContactAckSubject, mailer.ContactAckBody(name)); err != nil {
			log.Printf("Contact acknowledgment to %s failed: %v", to, err)
		}
	}(contact.Email, contact.Name)

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// List returns a filtered page of contact entries, or the full filtered set
// as CSV when export=csv.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	params := search.FromRequest(r, "name")
	filter := search.Filter(models.ContactSearchFields, params)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if r.URL.Query().Get("export") == "csv" {
		h.exportCSV(ctx, w, filter)
		return
	}

	cursor, total, err := search.Run(ctx, h.collection, filter, params)
	if err != nil {
		log.Printf("Contact search failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding contacts")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  contacts,
		"total": total,
	})
}

func (h *ContactHandler) exportCSV(ctx context.Context, w http.ResponseWriter, filter bson.M) {
	cursor, err := search.RunAll(ctx, h.collection, filter)
	if err != nil {
		log.Printf("Contact export failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding contacts")
		return
	}

	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{
			c.Name, c.Email, c.Phone, c.Message, c.Course, export.Timestamp(c.CreatedAt),
		})
	}

	if err := export.WriteHTTP(w, "contacts.csv", contactCSVHeader, rows); err != nil {
		log.Printf("Contact CSV write failed: %v", err)
	}
}
