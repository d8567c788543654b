// Package grapple is the pairwise wrestling state machine.
//
//	NEUTRAL --Attempt--> GRAPPLING (attacker) / CONTROLLED (defender)
//	CONTROLLED --Maintain--> PRONE
//	any hold --Maintain fails / BreakFree--> BROKEN_FREE (both)
//	any hold --Release--> NEUTRAL (both)
//
// A combatant is linked to at most one opponent at a time.
package grapple

import (
	"fmt"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

const pronePenalty = -2

// Result is the outcome of one grapple transition
type Result struct {
	Success      bool
	Message      string
	AttackerRoll int
	DefenderRoll int
	// Damage is set by GroundStrike; the caller applies it
	Damage int
}

// Initialize puts a combatant in the NEUTRAL state
func Initialize(c *combatant.Combatant) {
	c.Grapple = combatant.GrappleState{Status: combatant.GrappleNeutral}
}

// Attempt resolves an opposed grab. The attacker must beat the defender.
func Attempt(attacker, defender *combatant.Combatant, d *dice.Dice) Result {
	if attacker == nil || defender == nil || attacker.ID == defender.ID {
		return Result{Message: "no valid grapple target"}
	}
	if attacker.Grapple.Engaged() {
		return Result{Message: fmt.Sprintf("%s is already locked with %s", attacker.Name, attacker.Grapple.OpponentID)}
	}
	if defender.Grapple.Engaged() {
		return Result{Message: fmt.Sprintf("%s is already locked with %s", defender.Name, defender.Grapple.OpponentID)}
	}

	atk := d.D20() + grappleBonus(attacker)
	def := d.D20() + defender.Bonuses.Dodge + combatant.AttributeBonus(defender.Attributes.PP)

	if atk <= def {
		return Result{
			AttackerRoll: atk,
			DefenderRoll: def,
			Message:      fmt.Sprintf("%s fails to grab %s (%d vs %d)", attacker.Name, defender.Name, atk, def),
		}
	}

	attacker.Grapple = combatant.GrappleState{Status: combatant.GrappleGrappling, OpponentID: defender.ID}
	defender.Grapple = combatant.GrappleState{Status: combatant.GrappleControlled, OpponentID: attacker.ID}

	return Result{
		Success:      true,
		AttackerRoll: atk,
		DefenderRoll: def,
		Message:      fmt.Sprintf("%s grapples %s (%d vs %d)", attacker.Name, defender.Name, atk, def),
	}
}

// Maintain keeps a hold. Success takes a CONTROLLED opponent to the ground;
// failure breaks the hold for both.
func Maintain(holder, held *combatant.Combatant, d *dice.Dice) Result {
	if !linked(holder, held) || holder.Grapple.Status != combatant.GrappleGrappling {
		return Result{Message: fmt.Sprintf("%s is not holding anyone", nameOf(holder))}
	}

	atk := d.D20() + grappleBonus(holder)
	def := d.D20() + grappleBonus(held)
	if held.Grapple.Status == combatant.GrappleProne {
		def += pronePenalty
	}

	if atk <= def {
		breakPair(holder, held)
		return Result{
			AttackerRoll: atk,
			DefenderRoll: def,
			Message:      fmt.Sprintf("%s loses the hold on %s (%d vs %d)", holder.Name, held.Name, atk, def),
		}
	}

	msg := fmt.Sprintf("%s keeps %s pinned", holder.Name, held.Name)
	if held.Grapple.Status == combatant.GrappleControlled {
		held.Grapple.Status = combatant.GrappleProne
		msg = fmt.Sprintf("%s takes %s to the ground", holder.Name, held.Name)
	}
	return Result{Success: true, AttackerRoll: atk, DefenderRoll: def, Message: msg}
}

// BreakFree is the held combatant's escape. A prone combatant is at -2.
func BreakFree(held, holder *combatant.Combatant, d *dice.Dice) Result {
	if !linked(held, holder) || !IsHeld(held) {
		return Result{Message: fmt.Sprintf("%s is not held", nameOf(held))}
	}

	esc := d.D20() + grappleBonus(held)
	if held.Grapple.Status == combatant.GrappleProne {
		esc += pronePenalty
	}
	hold := d.D20() + grappleBonus(holder)

	if esc <= hold {
		return Result{
			AttackerRoll: esc,
			DefenderRoll: hold,
			Message:      fmt.Sprintf("%s struggles against %s but cannot escape (%d vs %d)", held.Name, holder.Name, esc, hold),
		}
	}

	breakPair(held, holder)
	return Result{
		Success:      true,
		AttackerRoll: esc,
		DefenderRoll: hold,
		Message:      fmt.Sprintf("%s breaks free of %s (%d vs %d)", held.Name, holder.Name, esc, hold),
	}
}

// GroundStrike is the finishing blow against a pinned opponent. It always
// lands for (1d6 + PS damage bonus) doubled.
func GroundStrike(holder, held *combatant.Combatant, d *dice.Dice) Result {
	if !linked(holder, held) ||
		holder.Grapple.Status != combatant.GrappleGrappling ||
		held.Grapple.Status != combatant.GrappleProne {
		return Result{Message: fmt.Sprintf("%s has no pinned opponent to strike", nameOf(holder))}
	}

	dmg := (d.D6() + combatant.DamageBonus(holder.Attributes.PS)) * 2
	return Result{
		Success: true,
		Damage:  dmg,
		Message: fmt.Sprintf("%s drives a ground strike into %s for %d", holder.Name, held.Name, dmg),
	}
}

// Release returns c and its linked opponent to NEUTRAL. Used when either
// is incapacitated or killed.
func Release(c, opponent *combatant.Combatant) bool {
	if c == nil || !c.Grapple.Engaged() {
		return false
	}
	if opponent != nil && opponent.Grapple.OpponentID == c.ID {
		Initialize(opponent)
	}
	Initialize(c)
	return true
}

// IsHeld reports whether c is the controlled side of a hold
func IsHeld(c *combatant.Combatant) bool {
	switch c.Grapple.Status {
	case combatant.GrappleControlled, combatant.GrappleProne:
		return c.Grapple.OpponentID != ""
	}
	return false
}

// IsHolding reports whether c is holding an opponent
func IsHolding(c *combatant.Combatant) bool {
	return c.Grapple.Status == combatant.GrappleGrappling && c.Grapple.OpponentID != ""
}

// CanStrike reports whether ordinary weapon strikes are legal
func CanStrike(c *combatant.Combatant) bool {
	return !c.Grapple.Engaged()
}

// CanMove reports whether c may change position
func CanMove(c *combatant.Combatant) bool {
	return !c.Grapple.Engaged()
}

// CanDefend reports whether c may parry or dodge
func CanDefend(c *combatant.Combatant) bool {
	return !IsHeld(c)
}

func grappleBonus(c *combatant.Combatant) int {
	return c.Bonuses.Grapple + combatant.AttributeBonus(c.Attributes.PS)
}

func linked(a, b *combatant.Combatant) bool {
	return a != nil && b != nil &&
		a.Grapple.OpponentID == b.ID && b.Grapple.OpponentID == a.ID
}

func breakPair(a, b *combatant.Combatant) {
	a.Grapple = combatant.GrappleState{Status: combatant.GrappleBrokenFree}
	b.Grapple = combatant.GrappleState{Status: combatant.GrappleBrokenFree}
}

func nameOf(c *combatant.Combatant) string {
	if c == nil {
		return "nobody"
	}
	return c.Name
}
