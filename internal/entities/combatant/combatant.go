package combatant

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

const (
	// EntityType is reported through core.Entity
	EntityType = "combatant"

	// DeathThreshold is the HP at or below which a combatant is dead
	DeathThreshold = -21
)

// Ensure Combatant implements core.Entity
var _ core.Entity = (*Combatant)(nil)

// Combatant is a fighter in the arena
type Combatant struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Side           Side       `json:"side"`
	Species        string     `json:"species,omitempty"`
	Alignment      string     `json:"alignment,omitempty"`
	OCC            string     `json:"occ,omitempty"`
	Level          int        `json:"level"`
	Classification string     `json:"classification,omitempty"`
	HP             int        `json:"hp"`
	MaxHP          int        `json:"max_hp"`
	Alive          bool       `json:"alive"`
	Attributes     Attributes `json:"attributes"`
	// BaseSpd is the Spd before any permanent leg loss
	BaseSpd     int `json:"base_spd"`
	ArmorRating int `json:"armor_rating"`

	Initiative         int        `json:"initiative"`
	InitiativeTiebreak int        `json:"initiative_tiebreak"`
	AttacksPerMelee    int        `json:"attacks_per_melee"`
	RemainingAttacks   int        `json:"remaining_attacks"`
	HandToHand         HandToHand `json:"hand_to_hand,omitempty"`
	Bonuses            Bonuses    `json:"bonuses"`
	Weapon             *Weapon    `json:"weapon,omitempty"`

	TempBonuses map[string]int `json:"temp_bonuses,omitempty"`
	PermBonuses map[string]int `json:"perm_bonuses,omitempty"`
	Abilities   Abilities      `json:"abilities"`
	Size        Size           `json:"size,omitempty"`
	SizeBonuses Bonuses        `json:"size_bonuses"`

	Limbs         map[Limb]*LimbState `json:"limbs,omitempty"`
	LimbPenalties LimbPenalties       `json:"limb_penalties"`
	Trauma        Trauma              `json:"trauma"`

	Fatigue       FatigueState   `json:"fatigue"`
	Grapple       GrappleState   `json:"grapple"`
	StatusEffects []StatusEffect `json:"status_effects,omitempty"`
	Morale        MoraleState    `json:"morale"`
	Position      *Position      `json:"position,omitempty"`

	HorrorFactor int  `json:"horror_factor,omitempty"`
	FearImmune   bool `json:"fear_immune"`
	NeverFlee    bool `json:"never_flee"`
	// HorrorSeen holds the ids of horrifying creatures already sighted
	HorrorSeen      map[string]bool  `json:"horror_seen,omitempty"`
	DeclaredDefense *DeclaredDefense `json:"declared_defense,omitempty"`
}

// GetID implements core.Entity
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Combatant) GetType() string {
	return EntityType
}

// Opposes reports whether other is on a different side
func (c *Combatant) Opposes(other *Combatant) bool {
	return other != nil && c.Side != other.Side
}

// HPFraction is HP/MaxHP, floored at zero
func (c *Combatant) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return math.Max(0, float64(c.HP)/float64(c.MaxHP))
}

// Bonus sums the temporary and permanent modifiers stored under key
func (c *Combatant) Bonus(key string) int {
	return c.TempBonuses[key] + c.PermBonuses[key]
}

// SetTempBonus stores a temporary modifier, deleting zero values
func (c *Combatant) SetTempBonus(key string, value int) {
	if value == 0 {
		delete(c.TempBonuses, key)
		return
	}
	if c.TempBonuses == nil {
		c.TempBonuses = make(map[string]int)
	}
	c.TempBonuses[key] = value
}

// Limb returns the state of a limb, creating it on first use
func (c *Combatant) Limb(l Limb) *LimbState {
	if c.Limbs == nil {
		c.Limbs = make(map[Limb]*LimbState)
	}
	st, ok := c.Limbs[l]
	if !ok {
		st = &LimbState{}
		c.Limbs[l] = st
	}
	return st
}

// CanWieldTwoHanded reports whether both arms are usable
func (c *Combatant) CanWieldTwoHanded() bool {
	if c.LimbPenalties.NoTwoHanded {
		return false
	}
	return c.Limbs[LimbRightArm].Usable() && c.Limbs[LimbLeftArm].Usable()
}

// IsFearImmune reports whether fear and morale effects never apply
func (c *Combatant) IsFearImmune() bool {
	if c.FearImmune {
		return true
	}
	switch c.Classification {
	case "undead", "demon":
		return true
	}
	return c.Abilities.ImmuneTo("fear") || c.Abilities.ImmuneTo("horror factor")
}

// Clone returns a deep copy for read-only snapshots handed to hosts
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	out := *c
	out.TempBonuses = cloneMap(c.TempBonuses)
	out.PermBonuses = cloneMap(c.PermBonuses)
	out.HorrorSeen = cloneMap(c.HorrorSeen)
	out.StatusEffects = append([]StatusEffect(nil), c.StatusEffects...)
	if c.Weapon != nil {
		w := *c.Weapon
		out.Weapon = &w
	}
	if c.Position != nil {
		p := *c.Position
		out.Position = &p
	}
	if c.DeclaredDefense != nil {
		d := *c.DeclaredDefense
		out.DeclaredDefense = &d
	}
	if c.Limbs != nil {
		out.Limbs = make(map[Limb]*LimbState, len(c.Limbs))
		for k, v := range c.Limbs {
			st := *v
			out.Limbs[k] = &st
		}
	}
	out.Trauma = Trauma{
		Scars:        append([]string(nil), c.Trauma.Scars...),
		StatLoss:     cloneMap(c.Trauma.StatLoss),
		StatLossKeys: cloneMap(c.Trauma.StatLossKeys),
		Penalties:    cloneMap(c.Trauma.Penalties),
		Phobias:      append([]string(nil), c.Trauma.Phobias...),
		Insanity:     append([]string(nil), c.Trauma.Insanity...),
	}
	return &out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
