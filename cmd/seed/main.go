package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/worldquestion/api/internal/adapters/repository/postgres"
	"github.com/worldquestion/api/internal/core/domain"
)

type seedQuestion struct {
	question domain.Question
	comments []string
}

func sampleQuestions() []seedQuestion {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []seedQuestion{
		{
			question: domain.Question{
				Text:      "Will artificial intelligence eventually replace human workers in most industries?",
				Category:  domain.CategoryTechnology,
				Tags:      []string{"AI", "automation", "employment"},
				Active:    true,
				Date:      day("2024-01-15"),
				AISummary: "Based on current voting trends, people are more concerned about AI replacing jobs than excited about its potential.",
			},
			comments: []string{
				"Automation already changed my industry twice.",
				"New jobs always appear, they just look different.",
				"Depends entirely on how fast the transition happens.",
			},
		},
		{
			question: domain.Question{
				Text:      "Should humanity prioritize Mars colonization over solving Earth's problems?",
				Category:  domain.CategoryScience,
				Tags:      []string{"space", "mars", "colonization"},
				Date:      day("2024-01-14"),
				AISummary: "Support for Mars colonization shows humanity's desire for exploration despite the practical challenges of space travel.",
			},
		},
		{
			question: domain.Question{
				Text:      "Has social media made the world a better or worse place overall?",
				Category:  domain.CategorySociety,
				Tags:      []string{"social media", "technology", "society"},
				Date:      day("2024-01-13"),
				AISummary: "The majority believe social media has made the world worse, reflecting concerns about its impact on mental health.",
			},
		},
		{
			question: domain.Question{
				Text:      "Should governments implement universal basic income to address automation?",
				Category:  domain.CategoryPolitics,
				Tags:      []string{"UBI", "automation", "economics"},
				Date:      day("2024-01-12"),
				AISummary: "Public opinion is divided on UBI, with cost concerns balanced against the need to address economic inequality.",
			},
		},
		{
			question: domain.Question{
				Text:      "Is climate change the most urgent global crisis facing humanity?",
				Category:  domain.CategoryEnvironment,
				Tags:      []string{"climate change", "environment", "crisis"},
				Date:      day("2024-01-11"),
				AISummary: "Climate change is widely recognized as critical, though opinions vary on its urgency relative to other challenges.",
			},
		},
	}
}

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var existing int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&existing); err != nil {
		log.Fatal(err)
	}
	if existing > 0 {
		log.Printf("Database already has %d questions, skipping seed.", existing)
		return
	}

	questionRepo := postgres.NewQuestionRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	for _, seed := range sampleQuestions() {
		question := seed.question
		question.ID = uuid.New()

		if err := questionRepo.Save(ctx, &question); err != nil {
			log.Fatalf("Failed to seed question %q: %v", question.Text, err)
		}

		for _, content := range seed.comments {
			comment := &domain.Comment{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Content:    content,
				Anonymous:  true,
				VoterIP:    "seed",
			}
			if err := commentRepo.Save(ctx, comment); err != nil {
				log.Fatalf("Failed to seed comment: %v", err)
			}
		}
	}

	log.Printf("Seeded %d questions.", len(sampleQuestions()))
}
