package melee

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// invoke hands a spell or psionic power to the host's resolver and applies
// the outcome. Without a resolver the action is a logged no-op.
func (e *Engine) invoke(ctx context.Context, c *combatant.Combatant, plan *engine.ActionPlan, kind engine.ActionType, stats *engine.RoundStats) {
	target := c
	if plan.TargetID != "" {
		t, ok := e.arena[plan.TargetID]
		if !ok || !t.Alive {
			e.logf(ctx, engine.LogError, "%s has no valid target %q", c.Name, plan.TargetID)
			return
		}
		target = t
	}

	var (
		out *engine.Outcome
		err error
	)
	switch kind {
	case engine.ActionSpell:
		if e.opts.Spells == nil || plan.Spell == "" {
			e.logf(ctx, engine.LogMagic, "%s's spell fizzles", c.Name)
			return
		}
		out, err = e.opts.Spells.CastSpell(ctx, c.Clone(), target.Clone(), plan.Spell)
	default:
		if e.opts.Psionics == nil || plan.Psionic == "" {
			e.logf(ctx, engine.LogMagic, "%s's psionic power fails to manifest", c.Name)
			return
		}
		out, err = e.opts.Psionics.UsePsionic(ctx, c.Clone(), target.Clone(), plan.Psionic)
	}
	if err != nil {
		slog.Warn("Power resolution failed",
			"combatant_id", c.ID,
			"kind", kind,
			"error", err)
		e.logf(ctx, engine.LogError, "%s's %s fails", c.Name, kind)
		return
	}
	if out == nil {
		return
	}

	e.applyOutcome(ctx, c, target, out, stats)
}

// applyOutcome applies a resolved power: message, damage, healing, status
// grants and any protection ward
func (e *Engine) applyOutcome(ctx context.Context, caster, target *combatant.Combatant, out *engine.Outcome, stats *engine.RoundStats) {
	if out.Message != "" {
		e.logf(ctx, engine.LogMagic, "%s", out.Message)
	}

	if out.Damage > 0 {
		e.applyDamage(ctx, caster, target, out.Damage, stats)
	}
	if out.Heal > 0 {
		if healed := target.Heal(out.Heal); healed > 0 {
			e.logf(ctx, engine.LogMagic, "%s recovers %d HP (%d/%d)", target.Name, healed, target.HP, target.MaxHP)
		}
	}

	for _, grant := range out.Statuses {
		res := e.status.Apply(target, grant.Type, status.Options{
			Caster:     caster,
			Source:     caster.ID,
			BypassSave: grant.BypassSave,
			Duration:   grant.Duration,
			Payload:    grant.Payload,
		})
		if res.Message != "" {
			e.logf(ctx, engine.LogStatus, "%s", res.Message)
		}
	}

	if out.Ward != nil {
		e.wards = append(e.wards, *out.Ward)
		e.logf(ctx, engine.LogMagic, "%s raises a protection ward (%.0f ft)", caster.Name, out.Ward.Radius)
	}
}
