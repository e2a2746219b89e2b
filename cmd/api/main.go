package main

import (
	"log"

	"github.com/JWDT/bug-tracker/config"
	"github.com/JWDT/bug-tracker/db"
	"github.com/JWDT/bug-tracker/middleware"
	"github.com/JWDT/bug-tracker/routes"
	"github.com/JWDT/bug-tracker/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Database connection, enum types and migrations
	db.Init()

	// Object store for ticket attachments
	storage.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
