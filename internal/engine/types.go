package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/engine/hitlocation"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// ActionType is the closed set of actions
type ActionType string

const (
	ActionStrike  ActionType = "strike"
	ActionGrapple ActionType = "grapple"
	ActionDodge   ActionType = "dodge"
	ActionParry   ActionType = "parry"
	ActionMove    ActionType = "move"
	ActionSpell   ActionType = "spell"
	ActionPsionic ActionType = "psionic"
	ActionDefend  ActionType = "defend"
)

var actionAliases = map[string]ActionType{
	"strike":  ActionStrike,
	"attack":  ActionStrike,
	"grapple": ActionGrapple,
	"dodge":   ActionDodge,
	"parry":   ActionParry,
	"move":    ActionMove,
	"spell":   ActionSpell,
	"cast":    ActionSpell,
	"psionic": ActionPsionic,
	"defend":  ActionDefend,
	"hold":    ActionDefend,
}

// ParseActionType maps an external action name to the closed set
func ParseActionType(s string) (ActionType, bool) {
	t, ok := actionAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// Valid reports whether t is one of the known actions
func (t ActionType) Valid() bool {
	_, ok := actionAliases[string(t)]
	return ok && t != "attack" && t != "cast" && t != "hold"
}

// ActionPlan is what a selector wants an actor to do
type ActionPlan struct {
	Type     ActionType
	TargetID string
	// Weapon overrides the readied weapon for this action
	Weapon      *combatant.Weapon
	Spell       string
	Psionic     string
	Destination *combatant.Position
	CalledShot  string
}

// LogCategory classifies narration lines
type LogCategory string

const (
	LogInitiative LogCategory = "initiative"
	LogAttack     LogCategory = "attack"
	LogDamage     LogCategory = "damage"
	LogStatus     LogCategory = "status"
	LogMorale     LogCategory = "morale"
	LogGrapple    LogCategory = "grapple"
	LogMovement   LogCategory = "movement"
	LogMagic      LogCategory = "magic"
	LogRound      LogCategory = "round"
	LogError      LogCategory = "error"
)

// LogFunc receives narration for every state transition
type LogFunc func(message string, category LogCategory)

// UpdateFunc receives a snapshot of the actor after each executed action
type UpdateFunc func(fighter *combatant.Combatant)

// RoundCompleteFunc is called once per finished round
type RoundCompleteFunc func(round int, stats RoundStats)

// RoundStats counts what happened during one round
type RoundStats struct {
	Actions              int `json:"actions"`
	Attacks              int `json:"attacks"`
	Grapples             int `json:"grapples"`
	Dodges               int `json:"dodges"`
	Parries              int `json:"parries"`
	DamageDealt          int `json:"damage_dealt"`
	FightersOutOfActions int `json:"fighters_out_of_actions"`
}

// Options configure one combat
type Options struct {
	Log             LogFunc
	OnUpdate        UpdateFunc
	OnRoundComplete RoundCompleteFunc

	Armor      Armor
	Spells     SpellResolver
	Psionics   PsionicResolver
	Defense    DefenseReaction
	HeadTrauma hitlocation.HeadTrauma

	Terrain morale.Terrain
	Wards   []morale.Ward
}

// FighterRecord is the host's description of a fighter
type FighterRecord struct {
	ID             string               `json:"id" mapstructure:"id"`
	Name           string               `json:"name" mapstructure:"name"`
	Side           combatant.Side       `json:"side" mapstructure:"side"`
	Species        string               `json:"species" mapstructure:"species"`
	Alignment      string               `json:"alignment" mapstructure:"alignment"`
	OCC            string               `json:"occ" mapstructure:"occ"`
	Level          int                  `json:"level" mapstructure:"level"`
	Classification string               `json:"classification" mapstructure:"classification"`
	// HP zero starts the fighter at MaxHP
	HP          int                  `json:"hp" mapstructure:"hp"`
	MaxHP       int                  `json:"max_hp" mapstructure:"max_hp"`
	Attributes  combatant.Attributes `json:"attributes" mapstructure:"attributes"`
	ArmorRating int                  `json:"armor_rating" mapstructure:"armor_rating"`
	HandToHand  string               `json:"hand_to_hand" mapstructure:"hand_to_hand"`
	// AttacksPerMelee overrides the hand to hand table when positive
	AttacksPerMelee int                 `json:"attacks_per_melee" mapstructure:"attacks_per_melee"`
	Bonuses         combatant.Bonuses   `json:"bonuses" mapstructure:"bonuses"`
	Weapon          *combatant.Weapon   `json:"weapon" mapstructure:"weapon"`
	Abilities       []string            `json:"abilities" mapstructure:"abilities"`
	Size            string              `json:"size" mapstructure:"size"`
	Position        *combatant.Position `json:"position" mapstructure:"position"`
	HorrorFactor    int                 `json:"horror_factor" mapstructure:"horror_factor"`
	FearImmune      bool                `json:"fear_immune" mapstructure:"fear_immune"`
	NeverFlee       bool                `json:"never_flee" mapstructure:"never_flee"`
}

// InitializeCombatInput starts a combat
type InitializeCombatInput struct {
	Fighters []FighterRecord
	Options  Options
}

// InitiativeEntry is one place in the fixed initiative order
type InitiativeEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initiative int    `json:"initiative"`
	Tiebreak   int    `json:"tiebreak"`
}

// InitializeCombatOutput reports the initiative order
type InitializeCombatOutput struct {
	Order []InitiativeEntry
}

// ExecuteMeleeRoundInput runs a round with the given selector
type ExecuteMeleeRoundInput struct {
	Selector ActionSelector
}

// ExecuteMeleeRoundOutput summarizes a round
type ExecuteMeleeRoundOutput struct {
	Round  int
	Stats  RoundStats
	Status CombatStatus
}

// CombatStatus reports whether a side has won
type CombatStatus struct {
	Over bool `json:"over"`
	// WinningSide is empty when nobody is left standing
	WinningSide combatant.Side `json:"winning_side,omitempty"`
}
