package main

import (
	"log"

	"inkwell/config"
	"inkwell/controllers"
	"inkwell/database"
	"inkwell/middleware"
	"inkwell/routes"
	"inkwell/services"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.LoadHTMLGlob(cfg.TemplateGlob)

	tokens := utils.NewTokenManager(cfg.SecretKey)
	sanitizer := utils.NewSanitizer()

	userService := services.NewUserService(db)
	postService := services.NewPostService(db, sanitizer)

	authController := controllers.NewAuthController(userService, tokens)
	postController := controllers.NewPostController(postService)
	pagesController := controllers.NewPagesController()

	routes.SetupRoutes(r, tokens, authController, postController, pagesController)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
