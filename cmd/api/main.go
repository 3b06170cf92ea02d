package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"moviebooks/internal/config"
	"moviebooks/internal/database"
	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
	"moviebooks/internal/domain/user"
	"moviebooks/internal/middleware"
	"moviebooks/internal/upload"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	uploads := upload.NewService(cfg.UploadDir)

	bookRepo := book.NewRepository(db)
	movieRepo := movie.NewRepository(db)
	connRepo := connection.NewRepository(db)
	userRepo := user.NewRepository(db)

	bookService := book.NewService(bookRepo, connRepo)
	bookHandler := book.NewHandler(bookService, uploads)

	movieService := movie.NewService(movieRepo, connRepo)
	movieHandler := movie.NewHandler(movieService, uploads)

	connService := connection.NewService(db, connRepo, bookRepo, movieRepo)
	connHandler := connection.NewHandler(connService, uploads)

	userService := user.NewService(userRepo, bookRepo, movieRepo, connRepo)
	userHandler := user.NewHandler(userService, uploads)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	// Uploaded images are served straight from disk
	r.Static("/images", cfg.UploadDir)

	api := r.Group("/api")
	{
		bookHandler.RegisterRoutes(api)
		movieHandler.RegisterRoutes(api)
		connHandler.RegisterRoutes(api)
		userHandler.RegisterRoutes(api)
	}

	log.Println("MovieBooks API listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
