package combatant

import "strings"

// CourageAura grants allies within Radius feet a bonus to horror saves
type CourageAura struct {
	Radius float64 `json:"radius"`
	Bonus  int     `json:"bonus"`
}

// Healing describes in-combat recovery
type Healing struct {
	// BioRegen is dice notation healed at the end of every round
	BioRegen string `json:"bio_regen,omitempty"`
}

// Abilities is the normalized ability set. It is built once when a record is
// ingested and is never re-parsed during combat.
type Abilities struct {
	Senses         []string       `json:"senses,omitempty"`
	Resistances    map[string]int `json:"resistances,omitempty"`
	Skills         map[string]int `json:"skills,omitempty"`
	Movement       []string       `json:"movement,omitempty"`
	Healing        Healing        `json:"healing"`
	Immunities     []string       `json:"immunities,omitempty"`
	ImperviousTo   []string       `json:"impervious_to,omitempty"`
	OnlyAffectedBy []string       `json:"only_affected_by,omitempty"`
	HorrorFactor   int            `json:"horror_factor,omitempty"`
	CourageAura    *CourageAura   `json:"courage_aura,omitempty"`
	HandToHand     HandToHand     `json:"hand_to_hand,omitempty"`
}

// HasSense reports whether sense (e.g. "nightvision") is present
func (a Abilities) HasSense(sense string) bool {
	return contains(a.Senses, sense)
}

// HasMovement reports whether a movement mode (e.g. "fly") is present
func (a Abilities) HasMovement(mode string) bool {
	return contains(a.Movement, mode)
}

// ImmuneTo reports whether the set grants immunity to a condition or damage
// type. Impervious counts as immune.
func (a Abilities) ImmuneTo(what string) bool {
	return contains(a.Immunities, what) || contains(a.ImperviousTo, what)
}

func contains(list []string, want string) bool {
	want = strings.ToLower(want)
	for _, v := range list {
		if strings.ToLower(v) == want {
			return true
		}
	}
	return false
}
