package application

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/bnema/cardsort-cli/internal/domain"
	"github.com/bnema/cardsort-cli/internal/ports"
)

// SorterService orchestrates sorting runs: dealing decks, persisting session
// snapshots between invocations, and resuming them.
type SorterService struct {
	repo  ports.SessionRepository
	clock ports.Clock
}

func NewSorterService(repo ports.SessionRepository, clock ports.Clock) *SorterService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SorterService{
		repo:  repo,
		clock: clock,
	}
}

// Deal builds the initial pile for the given deck shape from a seeded
// generator, so the same seed always deals the same deck.
func (s *SorterService) Deal(uniques int, groups []int, seed uint64) domain.StreakArray {
	r := rand.New(rand.NewPCG(seed, seed))
	return domain.BuildDeck(r, uniques, groups)
}

// Save persists the session so a later invocation can resume it.
func (s *SorterService) Save(ctx context.Context, session *domain.Session) error {
	snapshot := session.Snapshot()
	snapshot.SavedAt = s.clock.Now()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}

	return nil
}

// Resume rebuilds the persisted session.
func (s *SorterService) Resume(ctx context.Context) (*domain.Session, error) {
	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session snapshot: %w", err)
	}

	return domain.RestoreSession(snapshot), nil
}

// Clear drops the persisted session, typically once a run completes.
func (s *SorterService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}

	return nil
}

// Overview summarizes the persisted session for status rendering.
func (s *SorterService) Overview(ctx context.Context) (Overview, error) {
	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load session snapshot: %w", err)
	}

	return overviewFromSnapshot(snapshot), nil
}
