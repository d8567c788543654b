package combatant

// StatusType is a timed condition
type StatusType string

const (
	StatusStunned   StatusType = "STUNNED"
	StatusParalyzed StatusType = "PARALYZED"
	StatusAsleep    StatusType = "ASLEEP"
	StatusShaken    StatusType = "SHAKEN"
	StatusFleeing   StatusType = "FLEEING"
	StatusCourage   StatusType = "COURAGE"
	StatusBleeding  StatusType = "BLEEDING"
	StatusSlowed    StatusType = "SLOWED"
)

// StatusPayload carries effect specific values. Unused fields stay zero.
type StatusPayload struct {
	// Strike, Parry and Dodge are signed modifiers; negative is a penalty
	Strike          int     `json:"strike,omitempty"`
	Parry           int     `json:"parry,omitempty"`
	Dodge           int     `json:"dodge,omitempty"`
	DamageModifier  int     `json:"damage_modifier,omitempty"`
	SaveBonus       int     `json:"save_bonus,omitempty"`
	DamagePerRound  int     `json:"damage_per_round,omitempty"`
	SpeedMultiplier float64 `json:"speed_multiplier,omitempty"`
	LoseAttacks     int     `json:"lose_attacks,omitempty"`
	ForcedBehavior  string  `json:"forced_behavior,omitempty"`
	// HorrorRating is set on fear effects so recovery can re-roll the save
	HorrorRating int `json:"horror_rating,omitempty"`
}

// StatusEffect is one active condition
type StatusEffect struct {
	Type       StatusType    `json:"type"`
	Remaining  int           `json:"remaining"`
	Source     string        `json:"source,omitempty"`
	BypassSave bool          `json:"bypass_save"`
	Payload    StatusPayload `json:"payload"`
}

// Effect returns the active effect of the given type, if any
func (c *Combatant) Effect(t StatusType) *StatusEffect {
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Type == t {
			return &c.StatusEffects[i]
		}
	}
	return nil
}

// HasEffect reports whether an effect of type t is active
func (c *Combatant) HasEffect(t StatusType) bool {
	return c.Effect(t) != nil
}
