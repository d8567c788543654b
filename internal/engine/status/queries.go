package status

import "github.com/KirkDiggler/rpg-melee/internal/entities/combatant"

// Modifiers is the aggregate of all active effect payloads
type Modifiers struct {
	Strike          int
	Parry           int
	Dodge           int
	Damage          int
	SaveBonus       int
	SpeedMultiplier float64
}

// CombatFlags are the special flags checked before an action
type CombatFlags struct {
	// SkipTurn is set for a fleeing combatant
	SkipTurn bool
	// LoseAttack is set while a hesitation budget remains
	LoseAttack     bool
	ForcedBehavior string
}

// CanAct is false while any stun, paralysis or sleep is active
func CanAct(c *combatant.Combatant) bool {
	for _, eff := range c.StatusEffects {
		if disabling(eff.Type) {
			return false
		}
	}
	return true
}

// Penalties sums numeric modifiers across active effects
func Penalties(c *combatant.Combatant) Modifiers {
	m := Modifiers{SpeedMultiplier: 1}
	for _, eff := range c.StatusEffects {
		p := eff.Payload
		m.Strike += p.Strike
		m.Parry += p.Parry
		m.Dodge += p.Dodge
		m.Damage += p.DamageModifier
		m.SaveBonus += p.SaveBonus
		if eff.Type == combatant.StatusSlowed {
			mult := p.SpeedMultiplier
			if mult <= 0 {
				mult = defaultSlow
			}
			m.SpeedMultiplier *= mult
		}
	}
	return m
}

// CombatPenalties reports the skip/lose flags
func CombatPenalties(c *combatant.Combatant) CombatFlags {
	var f CombatFlags
	for _, eff := range c.StatusEffects {
		switch eff.Type {
		case combatant.StatusFleeing:
			f.SkipTurn = true
			f.ForcedBehavior = ForcedFlee
		case combatant.StatusShaken:
			if eff.Payload.LoseAttacks > 0 {
				f.LoseAttack = true
			}
		}
	}
	return f
}

// ConsumeLostAttack spends one lost attack from a hesitation effect
func ConsumeLostAttack(c *combatant.Combatant) bool {
	for i := range c.StatusEffects {
		eff := &c.StatusEffects[i]
		if eff.Type == combatant.StatusShaken && eff.Payload.LoseAttacks > 0 {
			eff.Payload.LoseAttacks--
			return true
		}
	}
	return false
}
