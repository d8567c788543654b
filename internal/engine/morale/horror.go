package morale

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

const (
	horrorShakenParry = -2
	horrorShakenDodge = -2
)

// Terrain limits what can be seen
type Terrain struct {
	// Dark hides everything from observers without nightvision
	Dark bool `json:"dark" mapstructure:"dark"`
	// SightRange in feet; zero is unlimited
	SightRange float64 `json:"sight_range" mapstructure:"sight_range"`
}

// HorrorOptions carries optional spatial data
type HorrorOptions struct {
	// Positions override the combatants' own positions, keyed by id
	Positions map[string]combatant.Position
}

// HorrorOutcome is one observer's reaction
type HorrorOutcome struct {
	ObserverID string
	Roll       int
	Saved      bool
	Status     combatant.StatusType
}

// HorrorRating is the creature's horror factor from its record or abilities
func HorrorRating(c *combatant.Combatant) int {
	if c.HorrorFactor > 0 {
		return c.HorrorFactor
	}
	return c.Abilities.HorrorFactor
}

// TriggerHorrorFactor makes every opponent seeing creature for the first
// time save against its horror rating. A failed save shakes the observer; a
// natural 1 sends it fleeing.
func (s *System) TriggerHorrorFactor(
	creature *combatant.Combatant,
	opponents []*combatant.Combatant,
	terrain Terrain,
	log func(string),
	opts HorrorOptions,
) []HorrorOutcome {
	rating := HorrorRating(creature)
	if rating <= 0 || !creature.Alive {
		return nil
	}
	if log == nil {
		log = func(string) {}
	}

	var outcomes []HorrorOutcome
	for _, obs := range opponents {
		if obs == nil || obs.ID == creature.ID || !obs.Conscious() {
			continue
		}
		if obs.HorrorSeen[creature.ID] {
			continue
		}
		if !canSee(obs, creature, terrain, opts) {
			continue
		}

		if obs.HorrorSeen == nil {
			obs.HorrorSeen = make(map[string]bool)
		}
		obs.HorrorSeen[creature.ID] = true

		if obs.IsFearImmune() {
			log(fmt.Sprintf("%s is unmoved by the sight of %s", obs.Name, creature.Name))
			outcomes = append(outcomes, HorrorOutcome{ObserverID: obs.ID, Saved: true})
			continue
		}

		natural := s.dice.D20()
		roll := natural + combatant.AttributeBonus(obs.Attributes.ME) + obs.TempBonuses[KeyCourage]
		out := HorrorOutcome{ObserverID: obs.ID, Roll: roll}

		if natural != 1 && roll >= rating {
			out.Saved = true
			log(fmt.Sprintf("%s steels themself against %s (horror save %d vs %d)", obs.Name, creature.Name, roll, rating))
			outcomes = append(outcomes, out)
			continue
		}

		obs.Morale.HorrorSaveFailed = true
		if natural == 1 {
			out.Status = combatant.StatusFleeing
			res := s.status.Apply(obs, combatant.StatusFleeing, status.Options{
				Source:     creature.ID,
				BypassSave: true,
				Duration:   s.dice.Roll(4),
				Payload:    combatant.StatusPayload{ForcedBehavior: status.ForcedFlee, HorrorRating: rating},
			})
			log(fmt.Sprintf("%s panics at the sight of %s: %s", obs.Name, creature.Name, res.Message))
		} else {
			out.Status = combatant.StatusShaken
			res := s.status.Apply(obs, combatant.StatusShaken, status.Options{
				Source:     creature.ID,
				BypassSave: true,
				Duration:   1,
				Payload: combatant.StatusPayload{
					LoseAttacks:  1,
					Parry:        horrorShakenParry,
					Dodge:        horrorShakenDodge,
					HorrorRating: rating,
				},
			})
			log(fmt.Sprintf("%s is horrified by %s (horror save %d vs %d): %s", obs.Name, creature.Name, roll, rating, res.Message))
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// AttemptFearRecovery re-rolls the horror save for a combatant under a
// horror-induced fear effect. Success dispels the effect; the morale state
// itself is not improved.
func (s *System) AttemptFearRecovery(c *combatant.Combatant, log func(string)) bool {
	if log == nil {
		log = func(string) {}
	}
	if !c.Conscious() {
		return false
	}

	recovered := false
	for _, t := range []combatant.StatusType{combatant.StatusShaken, combatant.StatusFleeing} {
		eff := c.Effect(t)
		if eff == nil || eff.Payload.HorrorRating <= 0 {
			continue
		}
		rating := eff.Payload.HorrorRating
		roll := s.dice.D20() + combatant.AttributeBonus(c.Attributes.ME) + c.TempBonuses[KeyCourage]
		if roll >= rating {
			status.Remove(c, t)
			recovered = true
			log(fmt.Sprintf("%s masters their fear (save %d vs %d)", c.Name, roll, rating))
		}
	}
	return recovered
}

func canSee(obs, creature *combatant.Combatant, terrain Terrain, opts HorrorOptions) bool {
	if terrain.Dark && !obs.Abilities.HasSense("nightvision") {
		return false
	}
	if terrain.SightRange <= 0 {
		return true
	}
	a, okA := positionOf(obs, opts.Positions)
	b, okB := positionOf(creature, opts.Positions)
	if !okA || !okB {
		return true
	}
	return Distance(a, b) <= terrain.SightRange
}

func positionOf(c *combatant.Combatant, overrides map[string]combatant.Position) (combatant.Position, bool) {
	if p, ok := overrides[c.ID]; ok {
		return p, true
	}
	if c.Position != nil {
		return *c.Position, true
	}
	return combatant.Position{}, false
}

// Distance in feet between two positions
func Distance(a, b combatant.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
