// Package roundlog stores per-round combat summaries for an encounter
package roundlog

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=roundlogmock github.com/KirkDiggler/rpg-melee/internal/repositories/round_log Repository

// RoundSummary is what happened in one melee round
type RoundSummary struct {
	EncounterID string            `json:"encounter_id"`
	Round       int               `json:"round"`
	Stats       engine.RoundStats `json:"stats"`

	// Narration lines in the order they were logged
	Narration []string `json:"narration,omitempty"`

	CombatOver  bool      `json:"combat_over"`
	WinningSide string    `json:"winning_side,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// AppendInput contains the summary to store
type AppendInput struct {
	Summary *RoundSummary
	TTL     time.Duration // How long the encounter's log should live
}

// AppendOutput contains the stored summary
type AppendOutput struct {
	Summary *RoundSummary
	// Rounds is the length of the log after the append
	Rounds int
}

// ListInput contains parameters for listing an encounter's rounds
type ListInput struct {
	EncounterID string
}

// ListOutput contains the summaries, oldest first
type ListOutput struct {
	Summaries []*RoundSummary
}

// DeleteInput contains parameters for deleting an encounter's log
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput contains the result of deleting a log
type DeleteOutput struct {
	RoundsDeleted int
}

// Repository defines the interface for round log storage
type Repository interface {
	// Append adds a summary to the end of the encounter's log and refreshes its TTL
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns every stored summary for an encounter
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes an encounter's log
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
