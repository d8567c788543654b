// Package engine defines the melee combat engine API: the Engine interface,
// its inputs and outputs, and the contracts a host plugs in (action
// selection, armor, spells, psionics, defense reactions, narration).
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-melee/internal/engine Engine,ActionSelector

import (
	"context"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// Engine resolves one combat, a melee round at a time. One instance owns
// one arena; rounds on the same instance are serialized.
type Engine interface {
	// InitializeCombat builds the arena, rolls initiative and runs the
	// pre-combat horror pass
	InitializeCombat(ctx context.Context, input *InitializeCombatInput) (*InitializeCombatOutput, error)

	// ExecuteMeleeRound runs every pass of one melee round
	ExecuteMeleeRound(ctx context.Context, input *ExecuteMeleeRoundInput) (*ExecuteMeleeRoundOutput, error)

	// Queries return snapshots; the arena is never handed out
	Combatant(id string) (*combatant.Combatant, error)
	Combatants() []*combatant.Combatant
	InitiativeOrder() []string
	LegalTargets(id string) ([]string, error)
	CanAct(id string) bool
	Round() int
	Status() CombatStatus
}

// ActionSelector picks an action for an actor. It receives snapshots and may
// block, for example while waiting on a human player.
type ActionSelector interface {
	SelectAction(
		ctx context.Context,
		actor *combatant.Combatant,
		targets []*combatant.Combatant,
		all []*combatant.Combatant,
	) (*ActionPlan, error)
}

// ActionSelectorFunc adapts a function to ActionSelector
type ActionSelectorFunc func(
	ctx context.Context,
	actor *combatant.Combatant,
	targets []*combatant.Combatant,
	all []*combatant.Combatant,
) (*ActionPlan, error)

// SelectAction implements ActionSelector
func (f ActionSelectorFunc) SelectAction(
	ctx context.Context,
	actor *combatant.Combatant,
	targets []*combatant.Combatant,
	all []*combatant.Combatant,
) (*ActionPlan, error) {
	return f(ctx, actor, targets, all)
}
