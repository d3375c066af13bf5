package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/worldquestion/api/internal/adapters/repository/postgres"
	"github.com/worldquestion/api/internal/core/services"
)

// Cron target: archives the active question, promotes the top proposal (or
// the fallback) and rejects the rest, all in one transaction.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbHost := os.Getenv("POSTGRES_HOST")
	dbPort := os.Getenv("POSTGRES_PORT")
	dbUser := os.Getenv("POSTGRES_USER")
	dbPass := os.Getenv("POSTGRES_PASSWORD")
	dbName := os.Getenv("POSTGRES_DB")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	rotator := postgres.NewRotationRepository(db)
	rotationService := services.NewRotationService(rotator)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting weekly question rotation...")

	result, err := rotationService.RotateWeekly(ctx)
	if err != nil {
		log.Fatalf("Error rotating weekly question: %v", err)
	}

	log.Printf("Weekly rotation completed successfully. New question: %q", result.NewQuestion.Text)
}
