package domain

import (
	"time"

	"github.com/google/uuid"
)

// Choice is a yes/no answer to a question.
type Choice string

const (
	ChoiceYes Choice = "yes"
	ChoiceNo  Choice = "no"
)

func (c Choice) Valid() bool {
	return c == ChoiceYes || c == ChoiceNo
}

// Vote is an append-only ledger entry. The (QuestionID, VoterIP) pair is
// unique; the ledger exists to enforce one vote per identity per question.
type Vote struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Choice     Choice    `json:"choice"`
	VoterIP    string    `json:"voter_ip"`
	UserAgent  string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
