package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a free-text reaction to a question. Multiple comments per
// identity are allowed; pinning is an editorial action.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"questionId"`
	Content    string    `json:"content"`
	Anonymous  bool      `json:"isAnonymous"`
	Pinned     bool      `json:"isPinned"`
	VoterIP    string    `json:"-"`
	UserAgent  string    `json:"-"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"timestamp"`
}

const CommentMaxLen = 1000
