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

// Periodic job: recomputes every question's denormalized vote counters from
// the votes ledger, correcting any drift.
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

	tallyRepo := postgres.NewTallyRepository(db)
	reconcileService := services.NewReconcileService(tallyRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting vote counter reconciliation job...")

	if err := reconcileService.ReconcileAll(ctx); err != nil {
		log.Fatalf("Error reconciling counters: %v", err)
	}

	log.Println("Counter reconciliation completed successfully.")
}
