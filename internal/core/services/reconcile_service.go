package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/worldquestion/api/internal/core/ports"
)

type reconcileService struct {
	tallyRepo ports.TallyRepository
}

func NewReconcileService(tallyRepo ports.TallyRepository) ports.ReconcileService {
	return &reconcileService{tallyRepo: tallyRepo}
}

// ReconcileAll recomputes every question's denormalized counters from the
// votes ledger, correcting any drift between the two.
func (s *reconcileService) ReconcileAll(ctx context.Context) error {
	ids, err := s.tallyRepo.ListQuestionIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list questions: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(ids))

	for _, id := range ids {
		wg.Add(1)
		go func(qID [16]byte) { // passing ID by value (uuid.UUID is [16]byte) to avoid closure issues
			defer wg.Done()
			if err := s.tallyRepo.RecountVotes(ctx, qID); err != nil {
				errChan <- fmt.Errorf("failed to recount question %s: %w", qID, err)
			}
		}(id)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
