package melee

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/fatigue"
	"github.com/KirkDiggler/rpg-melee/internal/engine/grapple"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// actionCost is the stamina an action drains and its multiplier
type actionCost struct {
	cost       int
	multiplier float64
}

var (
	noCost      = actionCost{}
	normalCost  = actionCost{cost: fatigue.ActionCost, multiplier: 1}
	grappleCost = actionCost{cost: fatigue.ActionCost, multiplier: fatigue.GrappleMultiplier}
)

// takeTurn is one atomic action unit: selection, execution, stamina cost,
// budget decrement and the update callback
func (e *Engine) takeTurn(ctx context.Context, c *combatant.Combatant, selector engine.ActionSelector, stats *engine.RoundStats) {
	// a declared defense lasts until its owner acts again
	c.DeclaredDefense = nil

	flags := status.CombatPenalties(c)
	var (
		kind = engine.ActionDefend
		cost = noCost
	)
	switch {
	case flags.SkipTurn:
		e.logf(ctx, engine.LogMorale, "%s flees in terror", c.Name)
	case flags.LoseAttack:
		status.ConsumeLostAttack(c)
		e.logf(ctx, engine.LogMorale, "%s hesitates in terror and loses an attack", c.Name)
	default:
		targets := e.legalTargets(c)
		if len(targets) == 0 {
			break
		}
		plan := e.selectAction(ctx, c, targets, selector)
		kind, cost = e.execute(ctx, c, plan, stats)
	}

	e.consume(ctx, c, cost)
	stats.Actions++

	if e.opts.OnUpdate != nil {
		e.opts.OnUpdate(c.Clone())
	}
	e.publish(ctx, EventAction, c, nil, map[string]any{
		KeyRound:  e.round,
		KeyAction: string(kind),
	})
}

// selectAction asks the host for a plan. A failing selector holds.
func (e *Engine) selectAction(
	ctx context.Context,
	c *combatant.Combatant,
	targets []*combatant.Combatant,
	selector engine.ActionSelector,
) *engine.ActionPlan {
	plan, err := selector.SelectAction(ctx, c.Clone(), snapshots(targets), snapshots(e.ordered()))
	if err != nil {
		slog.Warn("Action selector failed",
			"combatant_id", c.ID,
			"error", err)
		e.logf(ctx, engine.LogError, "%s could not choose an action and holds", c.Name)
		return &engine.ActionPlan{Type: engine.ActionDefend}
	}
	if plan == nil {
		return &engine.ActionPlan{Type: engine.ActionDefend}
	}
	return plan
}

// execute dispatches a plan. Unknown types are logged and consumed as a no-op.
func (e *Engine) execute(ctx context.Context, c *combatant.Combatant, plan *engine.ActionPlan, stats *engine.RoundStats) (engine.ActionType, actionCost) {
	kind, ok := engine.ParseActionType(string(plan.Type))
	if !ok {
		slog.Warn("Unknown action type",
			"combatant_id", c.ID,
			"action", plan.Type)
		e.logf(ctx, engine.LogError, "%s attempts unknown action %q; nothing happens", c.Name, plan.Type)
		return plan.Type, noCost
	}

	switch kind {
	case engine.ActionStrike:
		stats.Attacks++
		e.strike(ctx, c, plan, stats)
		return kind, normalCost
	case engine.ActionGrapple:
		stats.Grapples++
		e.wrestle(ctx, c, plan, stats)
		return kind, grappleCost
	case engine.ActionDodge:
		stats.Dodges++
		e.declareDefense(ctx, c, engine.DefenseDodge)
		return kind, normalCost
	case engine.ActionParry:
		stats.Parries++
		e.declareDefense(ctx, c, engine.DefenseParry)
		return kind, normalCost
	case engine.ActionMove:
		e.move(ctx, c, plan)
		return kind, normalCost
	case engine.ActionSpell:
		e.invoke(ctx, c, plan, engine.ActionSpell, stats)
		return kind, normalCost
	case engine.ActionPsionic:
		e.invoke(ctx, c, plan, engine.ActionPsionic, stats)
		return kind, normalCost
	case engine.ActionDefend:
		e.logf(ctx, engine.LogAttack, "%s holds and defends", c.Name)
		return kind, noCost
	}
	return kind, noCost
}

// consume spends one action and its stamina
func (e *Engine) consume(ctx context.Context, c *combatant.Combatant, cost actionCost) {
	c.RemainingAttacks--
	if c.RemainingAttacks < 0 {
		c.RemainingAttacks = 0
	}
	if c.RemainingAttacks > c.AttacksPerMelee {
		c.RemainingAttacks = c.AttacksPerMelee
	}

	if cost.cost <= 0 {
		return
	}
	if fatigue.Drain(c, cost.cost, cost.multiplier) {
		fatigue.ApplyPenalties(c)
		e.logf(ctx, engine.LogStatus, "%s is now %s (stamina %d/%d)",
			c.Name, c.Fatigue.Level, c.Fatigue.CurrentStamina, c.Fatigue.MaxStamina)
	}
}

// declareDefense readies a parry or dodge that stands until c acts again
func (e *Engine) declareDefense(ctx context.Context, c *combatant.Combatant, kind engine.DefenseKind) {
	if !grapple.CanDefend(c) {
		e.logf(ctx, engine.LogGrapple, "%s is pinned and cannot %s", c.Name, kind)
		return
	}

	natural := e.dice.D20()
	var total int
	if kind == engine.DefenseParry {
		total = natural + parryBonus(c)
	} else {
		total = natural + dodgeBonus(c)
	}
	c.DeclaredDefense = &combatant.DeclaredDefense{Kind: string(kind), Value: total}
	e.logf(ctx, engine.LogAttack, "%s readies a %s (%d)", c.Name, kind, total)
}

// move walks toward the destination, as far as speed allows this action
func (e *Engine) move(ctx context.Context, c *combatant.Combatant, plan *engine.ActionPlan) {
	if !grapple.CanMove(c) {
		e.logf(ctx, engine.LogMovement, "%s is locked in a grapple and cannot move", c.Name)
		return
	}
	if plan.Destination == nil {
		e.logf(ctx, engine.LogMovement, "%s has nowhere to move", c.Name)
		return
	}

	dest := *plan.Destination
	if c.Position == nil {
		c.Position = &dest
		e.logf(ctx, engine.LogMovement, "%s moves to (%.0f, %.0f)", c.Name, dest.X, dest.Y)
		e.horrorPass(ctx)
		return
	}
	from := *c.Position

	if morale.WardBlocksMovement(c, e.wards, from, dest) {
		e.logf(ctx, engine.LogMovement, "%s is turned back by a protection ward", c.Name)
		return
	}

	reach := moveDistance(c)
	dist := morale.Distance(from, dest)
	if dist > reach && dist > 0 {
		frac := reach / dist
		dest = combatant.Position{
			X: from.X + (dest.X-from.X)*frac,
			Y: from.Y + (dest.Y-from.Y)*frac,
		}
		dist = reach
	}
	*c.Position = dest
	e.logf(ctx, engine.LogMovement, "%s moves %.0f ft to (%.0f, %.0f)", c.Name, dist, dest.X, dest.Y)

	// moving can bring a horror into sight for the first time
	e.horrorPass(ctx)
}

// moveDistance is the feet one action covers: Spd scaled by fatigue, limb
// injuries and slowing effects
func moveDistance(c *combatant.Combatant) float64 {
	limb := c.LimbPenalties.SpeedMultiplier
	if limb <= 0 {
		limb = 1
	}
	mult := fatigue.SpeedMultiplier(c) * limb * status.Penalties(c).SpeedMultiplier
	return math.Max(0, float64(c.Attributes.Spd)*mult)
}

// wrestle resolves a grapple action. A held combatant tries to break free;
// a holder keeps the hold or finishes a prone opponent; anyone else attempts
// a new grapple on the target.
func (e *Engine) wrestle(ctx context.Context, c *combatant.Combatant, plan *engine.ActionPlan, stats *engine.RoundStats) {
	switch {
	case grapple.IsHeld(c):
		holder := e.arena[c.Grapple.OpponentID]
		if holder == nil {
			grapple.Initialize(c)
			return
		}
		res := grapple.BreakFree(c, holder, e.dice)
		e.logf(ctx, engine.LogGrapple, "%s", res.Message)

	case grapple.IsHolding(c):
		held := e.arena[c.Grapple.OpponentID]
		if held == nil {
			grapple.Initialize(c)
			return
		}
		if held.Grapple.Status == combatant.GrappleProne {
			res := grapple.GroundStrike(c, held, e.dice)
			e.logf(ctx, engine.LogGrapple, "%s", res.Message)
			if res.Success {
				e.applyDamage(ctx, c, held, res.Damage, stats)
			}
			return
		}
		res := grapple.Maintain(c, held, e.dice)
		e.logf(ctx, engine.LogGrapple, "%s", res.Message)

	default:
		target := e.target(ctx, c, plan.TargetID)
		if target == nil {
			return
		}
		res := grapple.Attempt(c, target, e.dice)
		e.logf(ctx, engine.LogGrapple, "%s", res.Message)
	}
}

// target resolves a hostile target id against the current legal targets
func (e *Engine) target(ctx context.Context, c *combatant.Combatant, id string) *combatant.Combatant {
	for _, t := range e.legalTargets(c) {
		if t.ID == id {
			return t
		}
	}
	e.logf(ctx, engine.LogError, "%s has no legal target %q", c.Name, id)
	return nil
}
