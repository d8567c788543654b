// Package encounter hosts many concurrent melee combats keyed by encounter ID
package encounter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/melee"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/idgen"
	roundlog "github.com/KirkDiggler/rpg-melee/internal/repositories/round_log"
	"github.com/KirkDiggler/rpg-melee/internal/telemetry"
)

// Service defines the interface for encounter operations
type Service interface {
	// StartEncounter builds a combat, rolls initiative and runs the horror pass
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// RunRound resolves the next melee round of an encounter
	RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error)

	// GetEncounter returns a snapshot of an encounter
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)

	// EndEncounter drops an encounter from memory
	EndEncounter(ctx context.Context, input *EndEncounterInput) (*EndEncounterOutput, error)

	// ListRounds returns the stored round summaries of an encounter
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)
}

// EngineFactory builds a fresh engine publishing on bus
type EngineFactory func(bus events.EventBus) (engine.Engine, error)

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	IDGenerator idgen.Generator
	NewEngine   EngineFactory

	// Repository stores round summaries; nil disables persistence
	Repository  roundlog.Repository
	RoundLogTTL time.Duration

	// Metrics is optional
	Metrics *telemetry.Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.NewEngine == nil {
		vb.RequiredField("NewEngine")
	}
	if c.RoundLogTTL < 0 {
		vb.InvalidField("RoundLogTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen     idgen.Generator
	newEngine EngineFactory
	repo      roundlog.Repository
	ttl       time.Duration
	metrics   *telemetry.Metrics

	mu         sync.RWMutex
	encounters map[string]*encounterState
}

// encounterState holds one running combat. mu serializes its rounds.
type encounterState struct {
	mu        sync.Mutex
	engine    engine.Engine
	bus       events.EventBus
	subID     string
	narration *narration
	finished  bool
}

// narration gathers log events published during a round
type narration struct {
	mu    sync.Mutex
	lines []string
}

func (n *narration) handle(_ context.Context, ev events.Event) error {
	msg, ok := ev.Context().Get(melee.KeyMessage)
	if !ok {
		return nil
	}
	if s, ok := msg.(string); ok {
		n.mu.Lock()
		n.lines = append(n.lines, s)
		n.mu.Unlock()
	}
	return nil
}

func (n *narration) drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	lines := n.lines
	n.lines = nil
	return lines
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		idGen:      cfg.IDGenerator,
		newEngine:  cfg.NewEngine,
		repo:       cfg.Repository,
		ttl:        cfg.RoundLogTTL,
		metrics:    cfg.Metrics,
		encounters: make(map[string]*encounterState),
	}, nil
}

// StartEncounter builds a combat, rolls initiative and runs the horror pass
func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	bus := events.NewBus()
	state := &encounterState{
		bus:       bus,
		narration: &narration{},
	}
	state.subID = bus.SubscribeFunc(melee.EventLog, 0, state.narration.handle)

	eng, err := o.newEngine(bus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}
	state.engine = eng

	started, err := eng.InitializeCombat(ctx, &engine.InitializeCombatInput{
		Fighters: input.Fighters,
		Options:  input.Options,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize combat")
	}

	encounterID := o.idGen.Generate()

	o.mu.Lock()
	o.encounters[encounterID] = state
	o.mu.Unlock()

	o.metrics.EncounterStarted(ctx)

	slog.Info("Encounter started",
		"encounter_id", encounterID,
		"fighter_count", len(input.Fighters),
	)

	return &StartEncounterOutput{
		EncounterID: encounterID,
		Order:       started.Order,
		Combatants:  eng.Combatants(),
		Narration:   state.narration.drain(),
	}, nil
}

// RunRound resolves the next melee round of an encounter
func (o *orchestrator) RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Selector == nil {
		return nil, errors.InvalidArgument("selector is required")
	}

	state, err := o.lookup(input.EncounterID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	// anything narrated between rounds belongs to no round
	state.narration.drain()

	result, err := state.engine.ExecuteMeleeRound(ctx, &engine.ExecuteMeleeRoundInput{
		Selector: input.Selector,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to run round for encounter %s", input.EncounterID)
	}

	summary := &roundlog.RoundSummary{
		EncounterID: input.EncounterID,
		Round:       result.Round,
		Stats:       result.Stats,
		Narration:   state.narration.drain(),
		CombatOver:  result.Status.Over,
		WinningSide: string(result.Status.WinningSide),
	}

	o.metrics.RecordRound(ctx, result.Stats)
	if result.Status.Over && !state.finished {
		state.finished = true
		o.metrics.EncounterFinished(ctx, string(result.Status.WinningSide))
	}

	output := &RunRoundOutput{
		Summary:    summary,
		Combatants: state.engine.Combatants(),
	}

	if o.repo != nil {
		appended, err := o.repo.Append(ctx, roundlog.AppendInput{Summary: summary, TTL: o.ttl})
		if err != nil {
			slog.Warn("Failed to persist round summary",
				"encounter_id", input.EncounterID,
				"round", result.Round,
				"error", err,
			)
		} else {
			output.Summary = appended.Summary
			output.Persisted = true
		}
	}

	slog.Info("Melee round resolved",
		"encounter_id", input.EncounterID,
		"round", result.Round,
		"actions", result.Stats.Actions,
		"damage", result.Stats.DamageDealt,
		"combat_over", result.Status.Over,
	)

	return output, nil
}

// GetEncounter returns a snapshot of an encounter. It waits for a round in
// progress to finish.
func (o *orchestrator) GetEncounter(_ context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.lookup(input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &GetEncounterOutput{
		EncounterID: input.EncounterID,
		Round:       state.engine.Round(),
		Status:      state.engine.Status(),
		Order:       state.engine.InitiativeOrder(),
		Combatants:  state.engine.Combatants(),
	}, nil
}

// EndEncounter drops an encounter from memory
func (o *orchestrator) EndEncounter(ctx context.Context, input *EndEncounterInput) (*EndEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	state, exists := o.encounters[input.EncounterID]
	delete(o.encounters, input.EncounterID)
	o.mu.Unlock()

	if !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.EncounterID)
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if err := state.bus.Unsubscribe(state.subID); err != nil {
		slog.Warn("Failed to unsubscribe narration",
			"encounter_id", input.EncounterID,
			"error", err,
		)
	}
	o.metrics.EncounterEnded(ctx)

	if input.DeleteLog && o.repo != nil {
		_, err := o.repo.Delete(ctx, roundlog.DeleteInput{EncounterID: input.EncounterID})
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to delete round log for encounter %s", input.EncounterID)
		}
	}

	slog.Info("Encounter ended",
		"encounter_id", input.EncounterID,
		"rounds", state.engine.Round(),
	)

	return &EndEncounterOutput{
		Rounds: state.engine.Round(),
		Status: state.engine.Status(),
	}, nil
}

// ListRounds returns the stored round summaries of an encounter. The
// encounter does not have to be held in memory.
func (o *orchestrator) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("round log persistence is not configured")
	}

	out, err := o.repo.List(ctx, roundlog.ListInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rounds for encounter %s", input.EncounterID)
	}

	return &ListRoundsOutput{Summaries: out.Summaries}, nil
}

func (o *orchestrator) lookup(encounterID string) (*encounterState, error) {
	if encounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	o.mu.RLock()
	state, exists := o.encounters[encounterID]
	o.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("encounter %s not found", encounterID)
	}
	return state, nil
}
