package engine

//go:generate mockgen -destination=mock/mock_contracts.go -package=enginemock github.com/KirkDiggler/rpg-melee/internal/engine Armor,SpellResolver,PsionicResolver,DefenseReaction

import (
	"context"

	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// ArmorInput is a hit that armor may absorb
type ArmorInput struct {
	Defender   *combatant.Combatant
	AttackRoll int
	RawDamage  int
	HitSlot    string
}

// ArmorResult splits damage between armor and character
type ArmorResult struct {
	ArmorHit          bool
	DamageToArmor     int
	DamageToCharacter int
	BrokenArmor       []string
}

// Armor mitigates damage. An error means no mitigation.
type Armor interface {
	Mitigate(ctx context.Context, input *ArmorInput) (*ArmorResult, error)
}

// StatusGrant is a status effect an outcome applies to its target
type StatusGrant struct {
	Type       combatant.StatusType
	Duration   int
	BypassSave bool
	Payload    combatant.StatusPayload
}

// Outcome is the resolved effect of a spell or psionic power
type Outcome struct {
	Damage   int
	Heal     int
	Statuses []StatusGrant
	Ward     *morale.Ward
	Message  string
}

// SpellResolver resolves spell content. The engine only applies the outcome.
type SpellResolver interface {
	CastSpell(ctx context.Context, caster, target *combatant.Combatant, spell string) (*Outcome, error)
}

// PsionicResolver resolves psionic powers
type PsionicResolver interface {
	UsePsionic(ctx context.Context, user, target *combatant.Combatant, power string) (*Outcome, error)
}

// DefenseKind is a reactive defense
type DefenseKind string

const (
	DefenseNone  DefenseKind = ""
	DefenseParry DefenseKind = "parry"
	DefenseDodge DefenseKind = "dodge"
)

// DefenseDecision is a defender's reaction to an incoming strike
type DefenseDecision struct {
	Kind DefenseKind
	// Roll is the defense total; the strike is blocked when it does not beat it
	Roll int
}

// DefenseReaction is the extension point for reactive parries and dodges.
// Declared defenses are handled by the engine itself; a nil reaction, or
// NoDefense, never defends.
type DefenseReaction interface {
	React(ctx context.Context, defender, attacker *combatant.Combatant, attackRoll int) DefenseDecision
}

// NoDefense is the default reaction
type NoDefense struct{}

// React implements DefenseReaction
func (NoDefense) React(context.Context, *combatant.Combatant, *combatant.Combatant, int) DefenseDecision {
	return DefenseDecision{}
}
