// Package melee is the combat engine. It owns the arena of combatants and
// the fixed initiative order, runs the melee round loop, and composes the
// fatigue, grapple, hit location, status and morale subsystems.
//
// An Engine holds one combat. Its mutex is held for the whole of a round, so
// one combatant's selection and execution is never interleaved with
// another's. Callbacks run with the mutex held and must not call back into
// the engine; they receive snapshots instead.
package melee

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/hitlocation"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

// Ensure Engine implements engine.Engine
var _ engine.Engine = (*Engine)(nil)

// Config holds the engine's collaborators
type Config struct {
	Dice *dice.Dice
	// EventBus receives narration and transition events; optional
	EventBus events.EventBus
}

// Validate ensures required collaborators are set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	return vb.Build()
}

// Engine resolves a single combat
type Engine struct {
	mu sync.Mutex

	dice   *dice.Dice
	bus    events.EventBus
	status *status.Registry
	morale *morale.System
	hits   *hitlocation.Resolver

	opts    engine.Options
	wards   []morale.Ward
	arena   map[string]*combatant.Combatant
	order   []string
	round   int
	started bool
	ended   bool
}

// New creates an engine with an empty arena
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	reg := status.NewRegistry(cfg.Dice)
	ms, err := morale.NewSystem(&morale.Config{Dice: cfg.Dice, Status: reg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create morale system")
	}

	return &Engine{
		dice:   cfg.Dice,
		bus:    cfg.EventBus,
		status: reg,
		morale: ms,
		arena:  make(map[string]*combatant.Combatant),
	}, nil
}

// Combatant returns a snapshot of one combatant
func (e *Engine) Combatant(id string) (*combatant.Combatant, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.arena[id]
	if !ok {
		return nil, errors.NotFoundf("combatant %s not found", id)
	}
	return c.Clone(), nil
}

// Combatants returns snapshots of every combatant in initiative order
func (e *Engine) Combatants() []*combatant.Combatant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshots(e.ordered())
}

// InitiativeOrder returns the ids in the order fixed at combat start
func (e *Engine) InitiativeOrder() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.order...)
}

// LegalTargets lists the ids id may strike or grapple
func (e *Engine) LegalTargets(id string) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.arena[id]
	if !ok {
		return nil, errors.NotFoundf("combatant %s not found", id)
	}
	targets := e.legalTargets(c)
	ids := make([]string, len(targets))
	for i, t := range targets {
		ids[i] = t.ID
	}
	return ids, nil
}

// CanAct evaluates the acting state machine for id right now
func (e *Engine) CanAct(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return canAct(e.arena[id])
}

// Round is the number of the last round started
func (e *Engine) Round() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round
}

// Status reports whether a side has won
func (e *Engine) Status() engine.CombatStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.combatStatus()
}

// canAct is evaluated fresh on every check: alive, conscious, still in the
// fight, and no disabling status effect.
func canAct(c *combatant.Combatant) bool {
	return inFight(c) && status.CanAct(c)
}

// inFight is true for a conscious combatant that has neither routed nor
// surrendered
func inFight(c *combatant.Combatant) bool {
	return c != nil && c.Alive && c.Conscious() && morale.Effective(c)
}

// legalTargets are the opposing combatants still in the fight, in
// initiative order. A stunned or held foe can still be hit.
func (e *Engine) legalTargets(actor *combatant.Combatant) []*combatant.Combatant {
	var out []*combatant.Combatant
	for _, id := range e.order {
		t := e.arena[id]
		if t.ID == actor.ID || !actor.Opposes(t) || !inFight(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (e *Engine) combatStatus() engine.CombatStatus {
	if !e.started {
		return engine.CombatStatus{}
	}

	standing := make(map[combatant.Side]bool)
	var last combatant.Side
	for _, id := range e.order {
		c := e.arena[id]
		if inFight(c) {
			standing[c.Side] = true
			last = c.Side
		}
	}
	switch len(standing) {
	case 0:
		return engine.CombatStatus{Over: true}
	case 1:
		return engine.CombatStatus{Over: true, WinningSide: last}
	default:
		return engine.CombatStatus{}
	}
}

func (e *Engine) ordered() []*combatant.Combatant {
	out := make([]*combatant.Combatant, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.arena[id])
	}
	return out
}

func snapshots(list []*combatant.Combatant) []*combatant.Combatant {
	out := make([]*combatant.Combatant, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}
