package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bnb-academy/bnb-backend/internal/config"
	"github.com/bnb-academy/bnb-backend/internal/handlers"
	"github.com/bnb-academy/bnb-backend/internal/mailer"
	"github.com/bnb-academy/bnb-backend/internal/middleware"
	"github.com/bnb-academy/bnb-backend/internal/storage"
)

// SetupRouter wires every endpoint. Admin reads and every state-mutating
// admin endpoint sit behind RequireAuth; public marketing reads, the contact
// form and the external enrollment flow do not.
func SetupRouter(client *mongo.Client, cfg config.Config, store storage.BlobStore, notifier mailer.Notifier) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	authHandler := handlers.NewAuthHandler(client, cfg.DatabaseName, cfg.AllowRegister, cfg.IsProduction())
	contactHandler := handlers.NewContactHandler(client, cfg.DatabaseName, notifier)
	enrollmentHandler := handlers.NewEnrollmentHandler(client, cfg.DatabaseName)
	teacherHandler := handlers.NewTeacherHandler(client, cfg.DatabaseName, store)
	programHandler := handlers.NewProgramHandler(client, cfg.DatabaseName, store)
	locationHandler := handlers.NewLocationHandler(client, cfg.DatabaseName)
	membershipHandler := handlers.NewMembershipHandler(client, cfg.DatabaseName)
	testimonialHandler := handlers.NewTestimonialHandler(client, cfg.DatabaseName)

	// Auth
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.Handle("/api/users", guard(authHandler.GetUsers)).Methods("GET")

	// Contact: public submission, admin listing/export
	router.HandleFunc("/api/contact", contactHandler.Create).Methods("POST")
	router.Handle("/api/contact", guard(contactHandler.List)).Methods("GET")

	// Enrollment: created by the external signup flow, read by admins
	router.HandleFunc("/api/enrollment", enrollmentHandler.Create).Methods("POST")
	router.Handle("/api/enrollment", guard(enrollmentHandler.List)).Methods("GET")

	// Teachers
	router.HandleFunc("/api/teacher", teacherHandler.GetAll).Methods("GET")
	router.Handle("/api/teacher", guard(teacherHandler.Create)).Methods("POST")
	router.HandleFunc("/api/teacher/{id}", teacherHandler.GetByID).Methods("GET")
	router.Handle("/api/teacher/{id}", guard(teacherHandler.Update)).Methods("PUT")
	router.Handle("/api/teacher/{id}", guard(teacherHandler.Delete)).Methods("DELETE")

	// Programs (id passed as a query parameter on mutation)
	router.HandleFunc("/api/program", programHandler.GetAll).Methods("GET")
	router.Handle("/api/program", guard(programHandler.Create)).Methods("POST")
	router.Handle("/api/program", guard(programHandler.Update)).Methods("PUT")
	router.Handle("/api/program", guard(programHandler.Delete)).Methods("DELETE")

	// Locations
	router.HandleFunc("/api/locations", locationHandler.GetAll).Methods("GET")
	router.Handle("/api/locations", guard(locationHandler.Create)).Methods("POST")
	router.Handle("/api/locations/{id}", guard(locationHandler.Update)).Methods("PUT")
	router.Handle("/api/locations/{id}", guard(locationHandler.Delete)).Methods("DELETE")

	// Memberships (id passed as a query parameter on mutation)
	router.HandleFunc("/api/membership", membershipHandler.GetAll).Methods("GET")
	router.Handle("/api/membership", guard(membershipHandler.Create)).Methods("POST")
	router.Handle("/api/membership", guard(membershipHandler.Update)).Methods("PUT")
	router.Handle("/api/membership", guard(membershipHandler.Delete)).Methods("DELETE")

	// Testimonials
	router.HandleFunc("/api/testimonials", testimonialHandler.GetAll).Methods("GET")
	router.Handle("/api/testimonials", guard(testimonialHandler.Create)).Methods("POST")
	router.Handle("/api/testimonials/{id}", guard(testimonialHandler.Update)).Methods("PUT")
	router.Handle("/api/testimonials/{id}", guard(testimonialHandler.Delete)).Methods("DELETE")

	registerPages(router, cfg.WebDir)

	return router
}

// registerPages serves the static site. Both /admin and everything under
// /admin/ sit behind the session gate; a missing or invalid session redirects
// to /login.
func registerPages(router *mux.Router, webDir string) {
	pages := http.FileServer(http.Dir(webDir))
	gated := middleware.AdminPageGate(pages)
	router.Path("/admin").Handler(gated)
	router.PathPrefix("/admin/").Handler(gated)
	router.PathPrefix("/login").Handler(pages)
	router.PathPrefix("/").Handler(pages)
}

func guard(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(h)
}
