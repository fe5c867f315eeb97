package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/bnb-academy/bnb-backend/internal/auth"
	"github.com/bnb-academy/bnb-backend/internal/config"
	"github.com/bnb-academy/bnb-backend/internal/database"
	"github.com/bnb-academy/bnb-backend/internal/mailer"
	"github.com/bnb-academy/bnb-backend/internal/routes"
	"github.com/bnb-academy/bnb-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	auth.Init(cfg.JWTSecret)

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	// Blob store for teacher/program images
	store, err := storage.NewS3Store(context.Background(), cfg.AWSRegion, cfg.AWSBucket)
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}

	// Outbound mail
	notifier := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	// Initialize router
	router := routes.SetupRouter(client, cfg, store, notifier)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	log.Printf("🚀 Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
