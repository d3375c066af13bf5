package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a question by topic.
type Category string

const (
	CategoryTechnology  Category = "technology"
	CategorySociety     Category = "society"
	CategoryEnvironment Category = "environment"
	CategoryPolitics    Category = "politics"
	CategoryScience     Category = "science"
	CategoryCulture     Category = "culture"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategorySociety, CategoryEnvironment,
		CategoryPolitics, CategoryScience, CategoryCulture:
		return true
	}
	return false
}

// Question is a daily yes/no question. Vote counters are denormalized from
// the votes ledger; TotalVotes is always YesVotes + NoVotes.
type Question struct {
	ID         uuid.UUID  `json:"id"`
	Text       string     `json:"text"`
	Category   Category   `json:"category"`
	Tags       []string   `json:"tags"`
	AISummary  string     `json:"aiSummary,omitempty"`
	Active     bool       `json:"isActive"`
	YesVotes   int64      `json:"yesVotes"`
	NoVotes    int64      `json:"noVotes"`
	TotalVotes int64      `json:"totalVotes"`
	Date       time.Time  `json:"date"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Comments   []Comment  `json:"comments,omitempty"`
}

func (q *Question) YesPercentage() int {
	if q.TotalVotes == 0 {
		return 0
	}
	return int(float64(q.YesVotes)/float64(q.TotalVotes)*100 + 0.5)
}

func (q *Question) NoPercentage() int {
	if q.TotalVotes == 0 {
		return 0
	}
	return int(float64(q.NoVotes)/float64(q.TotalVotes)*100 + 0.5)
}

const QuestionTextMaxLen = 500
