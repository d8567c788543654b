// Package morale handles fear and morale: horror factor sightings, courage
// auras, protection wards and the escalating morale check
// (STEADY -> SHAKEN -> ROUTED or SURRENDERED). Morale never improves on its
// own during a combat.
package morale

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

// Check reasons
const (
	ReasonLowHP      = "low_hp"
	ReasonBigPainHit = "big_pain_hit"
	ReasonAllyDown   = "ally_down"
	ReasonHorror     = "horror"
)

const (
	minBaseTarget      = 6
	maxBaseTarget      = 18
	surrenderThreshold = 8
	routedFleeRounds   = 3

	// KeyCourage is the temp bonus key holding this round's courage bonus
	KeyCourage = "courage"
)

// Config holds the subsystem's collaborators
type Config struct {
	Dice   *dice.Dice
	Status *status.Registry
}

// Validate ensures required collaborators are set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if c.Status == nil {
		vb.RequiredField("Status")
	}
	return vb.Build()
}

// System resolves morale, fear and courage
type System struct {
	dice   *dice.Dice
	status *status.Registry
}

// NewSystem creates a morale system
func NewSystem(cfg *Config) (*System, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &System{dice: cfg.Dice, status: cfg.Status}, nil
}

// CheckContext is the situation a morale check is made in
type CheckContext struct {
	Round  int
	Reason string
	// AlliesDownRatio is the fraction of the combatant's side out of the fight
	AlliesDownRatio float64
	BigPainHit      bool
}

// CheckResult is the outcome of one morale check
type CheckResult struct {
	Success  bool
	Roll     int
	Target   int
	Previous combatant.MoraleStatus
	Status   combatant.MoraleStatus
	Changed  bool
	Message  string
}

// ResolveMoraleCheck rolls d20 against the morale target; the roll must not
// exceed it. Fear-immune combatants always pass and are forced to STEADY.
func (s *System) ResolveMoraleCheck(c *combatant.Combatant, ctx CheckContext) CheckResult {
	prev := c.Morale.Status
	if prev == "" {
		prev = combatant.MoraleSteady
	}

	if c.IsFearImmune() {
		c.Morale.Status = combatant.MoraleSteady
		c.Morale.LastCheckRound = ctx.Round
		c.Morale.LastReason = ctx.Reason
		return CheckResult{
			Success:  true,
			Previous: prev,
			Status:   combatant.MoraleSteady,
			Changed:  prev != combatant.MoraleSteady,
			Message:  fmt.Sprintf("%s knows no fear", c.Name),
		}
	}

	if prev == combatant.MoraleSurrendered {
		return CheckResult{Previous: prev, Status: prev, Message: fmt.Sprintf("%s has already surrendered", c.Name)}
	}

	base := clamp(c.Attributes.ME+c.Level/2, minBaseTarget, maxBaseTarget)
	c.Morale.Target = base
	target := clamp(base+Modifier(c, ctx), 1, 20)

	roll := s.dice.D20()
	c.Morale.LastCheckRound = ctx.Round
	c.Morale.LastReason = ctx.Reason

	res := CheckResult{Roll: roll, Target: target, Previous: prev, Status: prev}
	if roll <= target {
		res.Success = true
		res.Message = fmt.Sprintf("%s holds firm (morale %d vs %d)", c.Name, roll, target)
		return res
	}

	c.Morale.FailedChecks++
	next := s.escalate(c, ctx, prev, roll-target)
	if next.Severity() > prev.Severity() {
		c.Morale.Status = next
		res.Status = next
		res.Changed = true
	}
	if c.Morale.Status == "" {
		c.Morale.Status = prev
	}

	switch res.Status {
	case combatant.MoraleRouted:
		if res.Changed {
			s.status.Apply(c, combatant.StatusFleeing, status.Options{
				Source:     "morale",
				BypassSave: true,
				Duration:   routedFleeRounds,
				Payload:    combatant.StatusPayload{ForcedBehavior: status.ForcedFlee},
			})
		}
		res.Message = fmt.Sprintf("%s breaks and flees (morale %d vs %d)", c.Name, roll, target)
	case combatant.MoraleSurrendered:
		res.Message = fmt.Sprintf("%s throws down their arms and surrenders (morale %d vs %d)", c.Name, roll, target)
	default:
		res.Message = fmt.Sprintf("%s is shaken (morale %d vs %d)", c.Name, roll, target)
	}
	return res
}

func (s *System) escalate(c *combatant.Combatant, ctx CheckContext, prev combatant.MoraleStatus, margin int) combatant.MoraleStatus {
	frac := c.HPFraction()

	if ctx.Reason == ReasonLowHP && frac <= 0.10 && !c.NeverFlee {
		if SurrenderBias(c)+margin >= surrenderThreshold {
			return combatant.MoraleSurrendered
		}
	}

	extreme := frac <= 0.10 || ctx.AlliesDownRatio >= 0.75
	next := combatant.MoraleShaken
	if prev.Severity() >= combatant.MoraleShaken.Severity() || c.Morale.FailedChecks >= 2 || extreme {
		next = combatant.MoraleRouted
	}
	if c.NeverFlee && next.Severity() > combatant.MoraleShaken.Severity() {
		next = combatant.MoraleShaken
	}
	return next
}

// Modifier sums the situational adjustments to the morale target
func Modifier(c *combatant.Combatant, ctx CheckContext) int {
	mod := 0

	frac := c.HPFraction()
	switch {
	case frac < 0.25:
		mod -= 4
	case frac < 0.5:
		mod -= 2
	}

	switch {
	case ctx.AlliesDownRatio >= 0.5:
		mod -= 3
	case ctx.AlliesDownRatio > 0.25:
		mod--
	}

	if c.Morale.HorrorSaveFailed {
		mod -= 2
	}
	if ctx.BigPainHit || ctx.Reason == ReasonBigPainHit {
		mod -= 2
	}

	mod += OCCBonus(c.OCC)
	mod += c.TempBonuses[KeyCourage]
	return mod
}

// OCCBonus is the morale bonus of martial occupations
func OCCBonus(occ string) int {
	o := strings.ToLower(occ)
	switch {
	case strings.Contains(o, "knight"), strings.Contains(o, "paladin"):
		return 2
	case strings.Contains(o, "soldier"), strings.Contains(o, "mercenary"):
		return 1
	}
	return 0
}

var alignmentBias = map[string]int{
	"principled":   2,
	"scrupulous":   4,
	"unprincipled": 4,
	"anarchist":    5,
	"miscreant":    3,
	"aberrant":     0,
	"diabolic":     -2,
}

var speciesBias = map[string]int{
	"goblin": 3,
	"kobold": 3,
	"human":  2,
	"elf":    1,
	"dwarf":  -1,
	"orc":    1,
	"ogre":   0,
	"troll":  -2,
}

// SurrenderBias is how readily a species and alignment give up
func SurrenderBias(c *combatant.Combatant) int {
	return alignmentBias[strings.ToLower(c.Alignment)] + speciesBias[strings.ToLower(c.Species)]
}

// Effective reports whether morale still lets c fight
func Effective(c *combatant.Combatant) bool {
	switch c.Morale.Status {
	case combatant.MoraleRouted, combatant.MoraleSurrendered:
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
