package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/aos-tools/intake-server/internal/adapters/fillservice"
	sqliteadapter "github.com/aos-tools/intake-server/internal/adapters/sqlite"
	"github.com/aos-tools/intake-server/internal/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	dsn := os.Getenv("DB_PATH")
	if dsn == "" {
		dsn = "intake.db"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fillURL := os.Getenv("FILL_SERVICE_URL")
	if fillURL == "" {
		fillURL = "http://localhost:8000"
	}

	repo, err := sqliteadapter.New(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	filler := fillservice.New(fillURL)
	h := handlers.New(repo, filler)

	log.Printf("AOS intake server running on http://localhost:%s", port)
	log.Printf("Database: %s", dsn)
	log.Printf("Fill service: %s", fillURL)
	if err := http.ListenAndServe(":"+port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
