package melee

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

// ExecuteMeleeRound runs one melee round. Every combatant that can act takes
// one action per pass, in initiative order, until nobody has both the
// ability and the budget to act. The round stops early the moment one side
// has nobody left in the fight.
func (e *Engine) ExecuteMeleeRound(ctx context.Context, input *engine.ExecuteMeleeRoundInput) (*engine.ExecuteMeleeRoundOutput, error) {
	if input == nil || input.Selector == nil {
		return nil, errors.InvalidArgument("selector is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil, errors.FailedPrecondition("combat not initialized")
	}
	if e.combatStatus().Over {
		return nil, errors.FailedPrecondition("combat is over")
	}

	e.round++
	stats := engine.RoundStats{}
	e.logf(ctx, engine.LogRound, "Melee round %d begins", e.round)

	all := e.ordered()
	e.morale.ProcessCourageAuras(all, e.narrator(ctx, engine.LogMorale))
	e.morale.ProcessProtectionWards(all, e.wards, e.narrator(ctx, engine.LogMorale))

passes:
	for {
		acted := false
		for _, id := range e.order {
			if err := ctx.Err(); err != nil {
				return nil, errors.Canceled(err, "melee round interrupted")
			}

			c := e.arena[id]
			if !canAct(c) || c.RemainingAttacks <= 0 {
				continue
			}
			acted = true
			e.takeTurn(ctx, c, input.Selector, &stats)

			if e.combatStatus().Over {
				break passes
			}
		}
		if !acted {
			break
		}
	}

	e.endRound(ctx, &stats)

	st := e.combatStatus()
	if st.Over && !e.ended {
		e.ended = true
		if st.WinningSide != "" {
			e.logf(ctx, engine.LogRound, "Combat over: %s side wins", st.WinningSide)
		} else {
			e.logf(ctx, engine.LogRound, "Combat over: nobody is left standing")
		}
		e.publish(ctx, EventCombatEnded, nil, nil, map[string]any{
			KeyRound:       e.round,
			KeyWinningSide: string(st.WinningSide),
		})
	}

	slog.Debug("Melee round complete",
		"round", e.round,
		"actions", stats.Actions,
		"damage", stats.DamageDealt,
		"over", st.Over)

	return &engine.ExecuteMeleeRoundOutput{
		Round:  e.round,
		Stats:  stats,
		Status: st,
	}, nil
}

// endRound clears courage, allows fear recovery, ticks status effects,
// regenerates and resets the action budget of everyone who can still act
func (e *Engine) endRound(ctx context.Context, stats *engine.RoundStats) {
	all := e.ordered()

	for _, c := range all {
		if c.RemainingAttacks == 0 {
			stats.FightersOutOfActions++
		}
	}

	morale.ClearCourageBonuses(all)

	for _, c := range all {
		if c.Alive {
			e.morale.AttemptFearRecovery(c, e.narrator(ctx, engine.LogMorale))
		}
	}

	for _, c := range all {
		if !c.Alive {
			continue
		}
		wasConscious := c.Conscious()
		tick := e.status.Update(c, e.round, e.narrator(ctx, engine.LogStatus))
		if tick.Damage > 0 {
			stats.DamageDealt += tick.Damage
			if wasConscious && !c.Conscious() {
				e.logf(ctx, engine.LogDamage, "%s is %s", c.Name, c.Condition())
				e.release(ctx, c)
				e.checkAllies(ctx, c)
			}
		}
	}

	for _, c := range all {
		e.regenerate(ctx, c)
	}

	for _, c := range all {
		if canAct(c) {
			c.RemainingAttacks = c.AttacksPerMelee
		}
	}

	if e.opts.OnRoundComplete != nil {
		e.opts.OnRoundComplete(e.round, *stats)
	}
	e.publish(ctx, EventRoundComplete, nil, nil, map[string]any{
		KeyRound: e.round,
		KeyStats: *stats,
	})
}

// regenerate applies bio-regeneration to a living combatant
func (e *Engine) regenerate(ctx context.Context, c *combatant.Combatant) {
	formula := c.Abilities.Healing.BioRegen
	if formula == "" || !c.Alive || c.HP >= c.MaxHP {
		return
	}
	healed := c.Heal(e.dice.RollFormula(formula))
	if healed > 0 {
		e.logf(ctx, engine.LogStatus, "%s regenerates %d HP (%d/%d)", c.Name, healed, c.HP, c.MaxHP)
	}
}
