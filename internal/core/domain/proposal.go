package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProposalStatus tracks a proposal through a rotation round. Selected and
// rejected are terminal.
type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalSelected ProposalStatus = "selected"
	ProposalRejected ProposalStatus = "rejected"
)

// Proposal is a user-submitted candidate for a future daily question.
type Proposal struct {
	ID          uuid.UUID      `json:"id"`
	Text        string         `json:"text"`
	Category    Category       `json:"category"`
	Tags        []string       `json:"tags"`
	SubmittedBy string         `json:"submittedBy"`
	SubmitterIP string         `json:"-"`
	UserAgent   string         `json:"-"`
	Votes       int64          `json:"votes"`
	Status      ProposalStatus `json:"status"`
	SubmittedAt time.Time      `json:"submittedAt"`
	SelectedAt  *time.Time     `json:"selectedAt,omitempty"`
	RejectedAt  *time.Time     `json:"rejectedAt,omitempty"`
}

const (
	ProposalTextMinLen = 10
	ProposalTextMaxLen = 500
	SubmitterNameMax   = 50

	// Proposal submissions allowed per identity per rolling 24h window.
	ProposalDailyLimit = 5
)
