package encounter

import (
	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	roundlog "github.com/KirkDiggler/rpg-melee/internal/repositories/round_log"
)

// StartEncounterInput defines the request for starting an encounter
type StartEncounterInput struct {
	Fighters []engine.FighterRecord
	Options  engine.Options
}

// StartEncounterOutput defines the response for starting an encounter
type StartEncounterOutput struct {
	EncounterID string
	Order       []engine.InitiativeEntry
	Combatants  []*combatant.Combatant
	// Narration from the pre-combat horror pass
	Narration []string
}

// RunRoundInput defines the request for resolving one melee round
type RunRoundInput struct {
	EncounterID string
	Selector    engine.ActionSelector
}

// RunRoundOutput defines the response for a resolved round
type RunRoundOutput struct {
	Summary    *roundlog.RoundSummary
	Combatants []*combatant.Combatant
	// Persisted is false when no repository is configured or the append failed
	Persisted bool
}

// GetEncounterInput defines the request for reading an encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput is a snapshot of an encounter
type GetEncounterOutput struct {
	EncounterID string
	Round       int
	Status      engine.CombatStatus
	Order       []string
	Combatants  []*combatant.Combatant
}

// EndEncounterInput defines the request for dropping an encounter
type EndEncounterInput struct {
	EncounterID string
	// DeleteLog also removes the stored round summaries
	DeleteLog bool
}

// EndEncounterOutput defines the final state of a dropped encounter
type EndEncounterOutput struct {
	Rounds int
	Status engine.CombatStatus
}

// ListRoundsInput defines the request for stored round summaries
type ListRoundsInput struct {
	EncounterID string
}

// ListRoundsOutput contains stored round summaries, oldest first
type ListRoundsOutput struct {
	Summaries []*roundlog.RoundSummary
}
