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
	"golang.org/x/crypto/bcrypt"

	"github.com/bnb-academy/bnb-backend/internal/auth"
	"github.com/bnb-academy/bnb-backend/internal/models"
)

// dummyHash keeps the bcrypt comparison on the unknown-email path so that a
// missing account and a wrong password are indistinguishable to the caller.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// userStore is the subset of *mongo.Collection the auth handler uses.
type userStore interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

type AuthHandler struct {
	users         userStore
	allowRegister bool
	secureCookies bool
}

func NewAuthHandler(client *mongo.Client, dbName string, allowRegister, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		users:         client.Database(dbName).Collection("users"),
		allowRegister: allowRegister,
		secureCookies: secureCookies,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies the credentials and sets the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing credentials")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := h.users.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password))
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("Login lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(user.Email, user.ID.Hex())
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(auth.TokenTTL.Seconds())))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
	})
}

// Logout instructs the client to discard the cookie. The token itself stays
// valid until expiry; the server keeps no revocation list.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out",
	})
}

// Register creates an admin account. Disabled unless ALLOW_REGISTER is set.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.allowRegister {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.User
	err := h.users.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&existing)
	if err == nil {
		respondError(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Register lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     creds.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := h.users.InsertOne(ctx, user); err != nil {
		log.Printf("Register insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered",
	})
}

// GetUsers lists admin accounts. Password hashes never serialize.
func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := h.users.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	}
}
