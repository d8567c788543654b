package status

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

const (
	defaultBleed = 1
	defaultSlow  = 0.5
)

// TickResult is the per-round outcome for one combatant
type TickResult struct {
	LoseNextAction  bool
	SpeedMultiplier float64
	Damage          int
	Expired         []combatant.StatusType
	ForcedBehavior  string
}

// Update ticks every active effect once: ongoing damage and behavior
// overrides are applied, durations drop by one, and expired effects are
// removed. log receives one line per transition and may be nil.
func (r *Registry) Update(c *combatant.Combatant, round int, log func(string)) TickResult {
	if log == nil {
		log = func(string) {}
	}
	result := TickResult{SpeedMultiplier: 1}

	kept := c.StatusEffects[:0]
	for _, eff := range c.StatusEffects {
		switch eff.Type {
		case combatant.StatusBleeding:
			dmg := eff.Payload.DamagePerRound
			if dmg <= 0 {
				dmg = defaultBleed
			}
			result.Damage += dmg
		case combatant.StatusSlowed:
			mult := eff.Payload.SpeedMultiplier
			if mult <= 0 {
				mult = defaultSlow
			}
			result.SpeedMultiplier *= mult
		case combatant.StatusFleeing:
			result.ForcedBehavior = ForcedFlee
		}

		eff.Remaining--
		if eff.Remaining <= 0 {
			result.Expired = append(result.Expired, eff.Type)
			log(fmt.Sprintf("%s is no longer %s (round %d)", c.Name, strings.ToLower(string(eff.Type)), round))
			continue
		}
		if disabling(eff.Type) {
			result.LoseNextAction = true
		}
		kept = append(kept, eff)
	}
	c.StatusEffects = kept

	if result.Damage > 0 && c.Alive {
		_, after := c.TakeDamage(result.Damage)
		log(fmt.Sprintf("%s bleeds for %d (HP %d, %s)", c.Name, result.Damage, c.HP, after))
	}

	return result
}

func disabling(t combatant.StatusType) bool {
	switch t {
	case combatant.StatusStunned, combatant.StatusParalyzed, combatant.StatusAsleep:
		return true
	}
	return false
}
