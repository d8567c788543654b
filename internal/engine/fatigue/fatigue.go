// Package fatigue tracks the per-combatant stamina pool. Every action drains
// it and the penalties grow as the pool empties. There is no recovery during
// a combat.
package fatigue

import (
	"math"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

const (
	// ActionCost is the stamina cost of one ordinary action
	ActionCost = 1
	// GrappleMultiplier scales the cost of wrestling actions
	GrappleMultiplier = 2.0

	// Temp bonus keys written by ApplyPenalties
	KeyStrike = "fatigue_strike"
	KeyParry  = "fatigue_parry"
	KeyDodge  = "fatigue_dodge"
)

var penaltyTable = map[combatant.FatigueLevel]combatant.FatiguePenalties{
	combatant.FatigueFresh:      {SpeedMultiplier: 1.0},
	combatant.FatigueWinded:     {Strike: -1, Parry: -1, Dodge: -1, SpeedMultiplier: 1.0},
	combatant.FatigueTired:      {Strike: -2, Parry: -2, Dodge: -2, SpeedMultiplier: 0.9},
	combatant.FatigueExhausted:  {Strike: -3, Parry: -3, Dodge: -4, SpeedMultiplier: 0.75},
	combatant.FatigueCollapsing: {Strike: -5, Parry: -5, Dodge: -6, SpeedMultiplier: 0.5},
}

// Initialize fills the pool from PE: max stamina is PE*2, at least 1
func Initialize(c *combatant.Combatant) {
	maxStamina := c.Attributes.PE * 2
	if maxStamina < 1 {
		maxStamina = 1
	}
	c.Fatigue = combatant.FatigueState{
		MaxStamina:     maxStamina,
		CurrentStamina: maxStamina,
		Level:          combatant.FatigueFresh,
		Penalties:      penaltyTable[combatant.FatigueFresh],
	}
	ApplyPenalties(c)
}

// Drain subtracts ceil(cost*multiplier) stamina, never below zero. It reports
// whether the fatigue level changed.
func Drain(c *combatant.Combatant, cost int, multiplier float64) bool {
	if c.Fatigue.MaxStamina <= 0 {
		Initialize(c)
	}
	if cost <= 0 {
		return false
	}
	if multiplier <= 0 {
		multiplier = 1
	}

	amount := int(math.Ceil(float64(cost) * multiplier))
	c.Fatigue.CurrentStamina -= amount
	if c.Fatigue.CurrentStamina < 0 {
		c.Fatigue.CurrentStamina = 0
	}

	before := c.Fatigue.Level
	level, penalties := Status(c)
	c.Fatigue.Level = level
	c.Fatigue.Penalties = penalties
	return level != before
}

// Status derives the level and penalty bundle from the remaining fraction
func Status(c *combatant.Combatant) (combatant.FatigueLevel, combatant.FatiguePenalties) {
	level := levelFor(c.Fatigue.CurrentStamina, c.Fatigue.MaxStamina)
	return level, penaltyTable[level]
}

func levelFor(current, maxStamina int) combatant.FatigueLevel {
	if maxStamina <= 0 {
		return combatant.FatigueFresh
	}
	frac := float64(current) / float64(maxStamina)
	switch {
	case frac > 0.75:
		return combatant.FatigueFresh
	case frac > 0.5:
		return combatant.FatigueWinded
	case frac > 0.25:
		return combatant.FatigueTired
	case frac > 0:
		return combatant.FatigueExhausted
	default:
		return combatant.FatigueCollapsing
	}
}

// ApplyPenalties writes the current bundle into the temporary bonus map
func ApplyPenalties(c *combatant.Combatant) {
	p := c.Fatigue.Penalties
	c.SetTempBonus(KeyStrike, p.Strike)
	c.SetTempBonus(KeyParry, p.Parry)
	c.SetTempBonus(KeyDodge, p.Dodge)
}

// SpeedMultiplier is the current fatigue speed factor
func SpeedMultiplier(c *combatant.Combatant) float64 {
	if c.Fatigue.Penalties.SpeedMultiplier == 0 {
		return 1
	}
	return c.Fatigue.Penalties.SpeedMultiplier
}
