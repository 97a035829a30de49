package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"beaute-shop/config"
	"beaute-shop/middleware"
	"beaute-shop/models"
	"beaute-shop/repositories"
	"beaute-shop/routes"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Running without email:", err)
		mailer = nil
	}

	store := repositories.NewStore()
	store.Seed()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, store, mailer)

	port := ":" + config.AppConfig.Port
	log.Printf("Dev API server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
