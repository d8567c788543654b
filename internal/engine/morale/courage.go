package morale

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// Ward is a protection circle. Allies of Side inside it gain Bonus to
// horror saves and morale; creatures listed in Blocks cannot enter it.
type Ward struct {
	ID     string             `json:"id" mapstructure:"id"`
	Side   combatant.Side     `json:"side" mapstructure:"side"`
	Center combatant.Position `json:"center" mapstructure:"center"`
	Radius float64            `json:"radius" mapstructure:"radius"`
	Bonus  int                `json:"bonus" mapstructure:"bonus"`
	// Blocks lists classifications or species kept out ("undead", "demon")
	Blocks []string `json:"blocks,omitempty" mapstructure:"blocks"`
}

// Contains reports whether p lies inside the ward
func (w Ward) Contains(p combatant.Position) bool {
	return Distance(w.Center, p) <= w.Radius
}

// BlocksCreature reports whether the ward keeps c out
func (w Ward) BlocksCreature(c *combatant.Combatant) bool {
	for _, b := range w.Blocks {
		if strings.EqualFold(b, c.Classification) || strings.EqualFold(b, c.Species) {
			return true
		}
	}
	return false
}

// ProcessCourageAuras grants allies within each aura's radius its bonus for
// this round. Overlapping auras do not stack; the largest applies.
func (s *System) ProcessCourageAuras(all []*combatant.Combatant, log func(string)) int {
	if log == nil {
		log = func(string) {}
	}

	granted := 0
	for _, src := range all {
		aura := src.Abilities.CourageAura
		if aura == nil || aura.Bonus <= 0 || !src.Conscious() {
			continue
		}
		for _, ally := range all {
			if ally.Side != src.Side || !ally.Alive {
				continue
			}
			if !withinRadius(src, ally, aura.Radius) {
				continue
			}
			if s.grantCourage(ally, aura.Bonus, src.ID) {
				granted++
				log(fmt.Sprintf("%s is heartened by %s's presence (+%d)", ally.Name, src.Name, aura.Bonus))
			}
		}
	}
	return granted
}

// ProcessProtectionWards grants ward bonuses to allies standing inside
func (s *System) ProcessProtectionWards(all []*combatant.Combatant, wards []Ward, log func(string)) int {
	if log == nil {
		log = func(string) {}
	}

	granted := 0
	for _, w := range wards {
		if w.Bonus <= 0 {
			continue
		}
		for _, c := range all {
			if c.Side != w.Side || !c.Alive || c.Position == nil {
				continue
			}
			if !w.Contains(*c.Position) {
				continue
			}
			if s.grantCourage(c, w.Bonus, w.ID) {
				granted++
				log(fmt.Sprintf("%s draws strength from ward %s (+%d)", c.Name, w.ID, w.Bonus))
			}
		}
	}
	return granted
}

// ClearCourageBonuses removes this round's courage bonuses
func ClearCourageBonuses(all []*combatant.Combatant) {
	for _, c := range all {
		c.SetTempBonus(KeyCourage, 0)
		status.Remove(c, combatant.StatusCourage)
	}
}

// WardBlocksMovement reports whether moving c from one point to another
// would carry it into a ward that keeps it out
func WardBlocksMovement(c *combatant.Combatant, wards []Ward, from, to combatant.Position) bool {
	for _, w := range wards {
		if !w.BlocksCreature(c) {
			continue
		}
		if w.Contains(to) && !w.Contains(from) {
			return true
		}
	}
	return false
}

func (s *System) grantCourage(c *combatant.Combatant, bonus int, source string) bool {
	if c.TempBonuses[KeyCourage] >= bonus {
		return false
	}
	c.SetTempBonus(KeyCourage, bonus)
	s.status.Apply(c, combatant.StatusCourage, status.Options{Source: source, Duration: 1})
	return true
}

func withinRadius(a, b *combatant.Combatant, radius float64) bool {
	if a.ID == b.ID {
		return true
	}
	if a.Position == nil || b.Position == nil {
		return true
	}
	return Distance(*a.Position, *b.Position) <= radius
}
