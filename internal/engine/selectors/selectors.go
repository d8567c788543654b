// Package selectors holds ready-made ActionSelectors for computer-run
// fighters and simulations
package selectors

import (
	"context"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/grapple"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// Ensure the selectors implement engine.ActionSelector
var (
	_ engine.ActionSelector = (*MostWounded)(nil)
	_ engine.ActionSelector = (*Cautious)(nil)
)

// MostWounded strikes whichever legal target has the lowest share of its
// hit points left. Ties go to the earlier target in initiative order.
// Fighters caught in a grapple keep wrestling.
type MostWounded struct{}

// SelectAction implements engine.ActionSelector
func (MostWounded) SelectAction(
	_ context.Context,
	actor *combatant.Combatant,
	targets []*combatant.Combatant,
	_ []*combatant.Combatant,
) (*engine.ActionPlan, error) {
	if grapple.IsHeld(actor) || grapple.IsHolding(actor) {
		return &engine.ActionPlan{Type: engine.ActionGrapple}, nil
	}

	target := weakest(targets)
	if target == nil {
		return &engine.ActionPlan{Type: engine.ActionDefend}, nil
	}
	return &engine.ActionPlan{Type: engine.ActionStrike, TargetID: target.ID}, nil
}

// Cautious fights like MostWounded until its own hit points fall to the
// threshold, then spends its actions dodging
type Cautious struct {
	// Threshold is a fraction of MaxHP; zero means one quarter
	Threshold float64
}

// SelectAction implements engine.ActionSelector
func (s Cautious) SelectAction(
	ctx context.Context,
	actor *combatant.Combatant,
	targets []*combatant.Combatant,
	all []*combatant.Combatant,
) (*engine.ActionPlan, error) {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = 0.25
	}
	if actor.HPFraction() <= threshold && grapple.CanDefend(actor) {
		return &engine.ActionPlan{Type: engine.ActionDodge}, nil
	}
	return MostWounded{}.SelectAction(ctx, actor, targets, all)
}

func weakest(targets []*combatant.Combatant) *combatant.Combatant {
	var best *combatant.Combatant
	for _, t := range targets {
		if t == nil {
			continue
		}
		if best == nil || t.HPFraction() < best.HPFraction() {
			best = t
		}
	}
	return best
}
