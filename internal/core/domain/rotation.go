package domain

// Fallback question activated by a rotation that finds no proposals.
const (
	FallbackQuestionText     = "Should we continue to explore and innovate in technology?"
	FallbackQuestionCategory = CategoryTechnology
)

var FallbackQuestionTags = []string{"innovation", "future", "technology"}

// RotationResult summarizes one rotation run. ArchivedQuestion is nil when no
// question was active, SelectedProposal is nil when the fallback was used.
type RotationResult struct {
	ArchivedQuestion *Question `json:"archivedQuestion,omitempty"`
	NewQuestion      *Question `json:"newQuestion"`
	SelectedProposal *Proposal `json:"selectedProposal,omitempty"`
	RejectedCount    int64     `json:"rejectedProposals"`
}
