package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"moviebooks/internal/config"
	"moviebooks/internal/database"
	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
	"moviebooks/internal/domain/user"
	"moviebooks/internal/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (dependents first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM connections")
	db.Exec("DELETE FROM books")
	db.Exec("DELETE FROM movies")
	db.Exec("DELETE FROM users")

	log.Println("Creating books...")
	books := []book.Book{
		{
			ID:     uuid.New().String(),
			Title:  "The Shining",
			Author: "Stephen King",
			Year:   1977,
			Genres: utils.StringList{"Horror"},
			Cover:  "/images/books/the-shining.jpg",
		},
		{
			ID:     uuid.New().String(),
			Title:  "Do Androids Dream of Electric Sheep?",
			Author: "Philip K. Dick",
			Year:   1968,
			Genres: utils.StringList{"Science Fiction"},
			Cover:  "/images/books/do-androids-dream.jpg",
		},
		{
			ID:     uuid.New().String(),
			Title:  "Slaughterhouse-Five",
			Author: "Kurt Vonnegut",
			Year:   1969,
			Genres: utils.StringList{"Science Fiction", "War"},
			Cover:  "/images/books/slaughterhouse-five.jpg",
		},
	}
	for i := range books {
		db.Create(&books[i])
	}

	log.Println("Creating movies...")
	movies := []movie.Movie{
		{
			ID:       uuid.New().String(),
			Title:    "The Shining",
			Year:     1980,
			Director: "Stanley Kubrick",
			Genres:   utils.StringList{"Horror"},
			Poster:   "/images/movies/the-shining.jpg",
			Rating:   5,
		},
		{
			ID:       uuid.New().String(),
			Title:    "Blade Runner",
			Year:     1982,
			Director: "Ridley Scott",
			Genres:   utils.StringList{"Science Fiction", "Noir"},
			Poster:   "/images/movies/blade-runner.jpg",
			Rating:   5,
		},
	}
	for i := range movies {
		db.Create(&movies[i])
	}

	log.Println("Creating connections...")
	conns := []connection.Connection{
		{
			ID:          uuid.New().String(),
			MovieID:     movies[0].ID,
			BookID:      books[0].ID,
			Description: "Jack's typewriter sits next to a copy of the novel in the Overlook lounge.",
			Timestamp:   "0:47:12",
			Screenshot:  "/images/screenshots/the-shining-lounge.jpg",
			Context:     "Set dressing nod to the source material.",
		},
		{
			ID:          uuid.New().String(),
			MovieID:     movies[1].ID,
			BookID:      books[1].ID,
			Description: "Deckard's apartment bookshelf holds a worn paperback of the novel.",
			Timestamp:   "1:12:40",
			Screenshot:  "/images/screenshots/blade-runner-shelf.jpg",
		},
	}
	for i := range conns {
		db.Create(&conns[i])
	}

	log.Println("Creating demo user...")
	demo := user.User{
		ID:       uuid.New().String(),
		Username: "moviebookworm",
		Email:    "demo@moviebooks.dev",
		Name:     "Demo User",
		Bio:      "Spotting books in movies since 1980.",
		Avatar:   user.DefaultAvatar,
	}
	db.Create(&demo)

	db.Create(&user.Favorite{UserID: demo.ID, ItemID: books[0].ID, ItemType: user.ItemTypeBook})
	db.Create(&user.Favorite{UserID: demo.ID, ItemID: movies[1].ID, ItemType: user.ItemTypeMovie})
	db.Create(&user.Favorite{UserID: demo.ID, ItemID: conns[0].ID, ItemType: user.ItemTypeConnection})

	log.Printf("Seed complete: %d books, %d movies, %d connections, 1 user", len(books), len(movies), len(conns))
}
