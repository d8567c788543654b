package roundlog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/clock"
)

// InMemoryRepository implements Repository for a single process. Logs never
// expire.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string][]RoundSummary
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string][]RoundSummary),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Append adds a summary to the end of the encounter's log
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Summary == nil {
		return nil, errors.InvalidArgument(errSummaryNil)
	}
	if input.Summary.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	summary := copySummary(input.Summary)
	summary.RecordedAt = r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[summary.EncounterID] = append(r.store[summary.EncounterID], *summary)

	return &AppendOutput{
		Summary: copySummary(summary),
		Rounds:  len(r.store[summary.EncounterID]),
	}, nil
}

// List returns copies of every stored summary, oldest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.store[input.EncounterID]
	summaries := make([]*RoundSummary, len(stored))
	for i := range stored {
		summaries[i] = copySummary(&stored[i])
	}
	return &ListOutput{Summaries: summaries}, nil
}

// Delete removes an encounter's log
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.store[input.EncounterID]
	if !exists {
		return nil, errors.NotFound("round log not found")
	}
	delete(r.store, input.EncounterID)

	return &DeleteOutput{RoundsDeleted: len(stored)}, nil
}

func copySummary(s *RoundSummary) *RoundSummary {
	out := *s
	out.Narration = append([]string(nil), s.Narration...)
	return &out
}
