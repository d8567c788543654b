// Package status is the registry of timed conditions: application with
// saving throws, per-round ticking, and the action-gating queries the engine
// consults before every roll.
package status

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

// ForcedFlee is the behavior override of a fleeing combatant
const ForcedFlee = "flee"

type definition struct {
	duration   int
	saveTarget int
	saveAttr   string
	immunities []string
	// only harmful effects allow a save
	harmful bool
}

var definitions = map[combatant.StatusType]definition{
	combatant.StatusStunned:   {duration: 1, saveTarget: 15, saveAttr: "PE", immunities: []string{"stun", "stunned"}, harmful: true},
	combatant.StatusParalyzed: {duration: 2, saveTarget: 14, saveAttr: "PE", immunities: []string{"paralysis", "paralyzed"}, harmful: true},
	combatant.StatusAsleep:    {duration: 3, saveTarget: 14, saveAttr: "ME", immunities: []string{"sleep", "asleep"}, harmful: true},
	combatant.StatusShaken:    {duration: 1, saveTarget: 12, saveAttr: "ME", immunities: []string{"fear", "horror factor"}, harmful: true},
	combatant.StatusFleeing:   {duration: 2, saveTarget: 12, saveAttr: "ME", immunities: []string{"fear", "horror factor"}, harmful: true},
	combatant.StatusCourage:   {duration: 1},
	combatant.StatusBleeding:  {duration: 3, saveTarget: 12, saveAttr: "PE", immunities: []string{"bleeding"}, harmful: true},
	combatant.StatusSlowed:    {duration: 2, saveTarget: 13, saveAttr: "PE", immunities: []string{"slow", "slowed"}, harmful: true},
}

// Options controls a single application
type Options struct {
	// Caster is optional; a caster's IQ bonus raises the save target
	Caster     *combatant.Combatant
	Source     string
	BypassSave bool
	// Duration in rounds; zero uses the type default
	Duration int
	// SaveTarget overrides the type default when non-zero
	SaveTarget int
	Payload    combatant.StatusPayload
}

// ApplyResult describes what happened to an application
type ApplyResult struct {
	Applied    bool
	Refreshed  bool
	Immune     bool
	Resisted   bool
	SaveRoll   int
	SaveTarget int
	Message    string
}

// Registry applies and ticks status effects
type Registry struct {
	dice *dice.Dice
}

// NewRegistry creates a registry drawing saves from d
func NewRegistry(d *dice.Dice) *Registry {
	return &Registry{dice: d}
}

// Apply puts an effect on target unless it is immune or saves. Reapplying an
// active type refreshes its duration to the longer of the two.
func (r *Registry) Apply(target *combatant.Combatant, t combatant.StatusType, opts Options) ApplyResult {
	def, ok := definitions[t]
	if !ok {
		slog.Warn("Unknown status effect type",
			"type", t,
			"target_id", target.ID,
		)
		return ApplyResult{Message: fmt.Sprintf("unknown status %s on %s", t, target.Name)}
	}

	label := strings.ToLower(string(t))
	if IsImmune(target, t) {
		return ApplyResult{
			Immune:  true,
			Message: fmt.Sprintf("%s is immune to %s", target.Name, label),
		}
	}

	var result ApplyResult
	if def.harmful && !opts.BypassSave {
		saveTarget := def.saveTarget
		if opts.SaveTarget > 0 {
			saveTarget = opts.SaveTarget
		}
		if opts.Caster != nil {
			saveTarget += combatant.AttributeBonus(opts.Caster.Attributes.IQ)
		}
		result.SaveTarget = saveTarget
		result.SaveRoll = r.SaveRoll(target, def.saveAttr, t)
		if result.SaveRoll >= saveTarget {
			result.Resisted = true
			result.Message = fmt.Sprintf("%s resists %s (save %d vs %d)", target.Name, label, result.SaveRoll, saveTarget)
			return result
		}
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = def.duration
	}
	source := opts.Source
	if source == "" && opts.Caster != nil {
		source = opts.Caster.ID
	}

	result.Applied = true
	if existing := target.Effect(t); existing != nil {
		result.Refreshed = true
		if duration > existing.Remaining {
			existing.Remaining = duration
		}
		existing.Payload = opts.Payload
		existing.Source = source
		existing.BypassSave = opts.BypassSave
		result.Message = fmt.Sprintf("%s's %s is refreshed (%d rounds)", target.Name, label, existing.Remaining)
		return result
	}

	target.StatusEffects = append(target.StatusEffects, combatant.StatusEffect{
		Type:       t,
		Remaining:  duration,
		Source:     source,
		BypassSave: opts.BypassSave,
		Payload:    opts.Payload,
	})
	result.Message = fmt.Sprintf("%s is %s for %d round(s)", target.Name, label, duration)
	return result
}

// SaveRoll is d20 plus the attribute bonus, plus any courage save bonus
// when saving against fear
func (r *Registry) SaveRoll(target *combatant.Combatant, attr string, t combatant.StatusType) int {
	roll := r.dice.D20() + combatant.AttributeBonus(target.Attributes.Get(attr))
	if t == combatant.StatusShaken || t == combatant.StatusFleeing {
		roll += Penalties(target).SaveBonus
	}
	return roll
}

// IsImmune reports whether parsed abilities make target immune to t
func IsImmune(target *combatant.Combatant, t combatant.StatusType) bool {
	if (t == combatant.StatusShaken || t == combatant.StatusFleeing) && target.IsFearImmune() {
		return true
	}
	for _, name := range definitions[t].immunities {
		if target.Abilities.ImmuneTo(name) {
			return true
		}
	}
	return false
}

// Remove dispels an effect; it reports whether one was active
func Remove(c *combatant.Combatant, t combatant.StatusType) bool {
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Type == t {
			c.StatusEffects = append(c.StatusEffects[:i], c.StatusEffects[i+1:]...)
			return true
		}
	}
	return false
}

// WakeOnDamage ends sleep when the sleeper is hurt
func WakeOnDamage(c *combatant.Combatant) bool {
	return Remove(c, combatant.StatusAsleep)
}
