package hitlocation

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

// Thresholds are measured against the incoming base damage, before the
// location multiplier.
const (
	headTraumaDamage  = 20
	headStunDamage    = 15
	limbInjuryDamage  = 10
	crippleDamage     = 30
	severDamage       = 40
	headStatLossDmg   = 40
	bodyStatLossDmg   = 50
	scarDamage        = 15
	scarChance        = 40
	knockbackFeet     = 30
	enduranceSave     = 14
	headStunPenalty   = -3
	headStatLossKey   = "head_trauma_statloss"
	tempArmPenalty    = -2
	tempLegDodge      = -1
	tempLegSpeedScale = 0.5
)

// Config holds the resolver's collaborators
type Config struct {
	Dice   *dice.Dice
	Status *status.Registry
	// HeadTrauma defaults to DefaultHeadTrauma
	HeadTrauma HeadTrauma
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

// Resolver applies hits to body locations
type Resolver struct {
	dice       *dice.Dice
	status     *status.Registry
	headTrauma HeadTrauma
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ht := cfg.HeadTrauma
	if ht == nil {
		ht = &DefaultHeadTrauma{Dice: cfg.Dice}
	}

	return &Resolver{
		dice:       cfg.Dice,
		status:     cfg.Status,
		headTrauma: ht,
	}, nil
}

// Options for a single resolution
type Options struct {
	// CalledShot names the location aimed at; ignored when useRandom is set
	CalledShot    string
	KnockbackFeet int
}

// Result describes the location and every side effect applied
type Result struct {
	Entry        Entry
	Called       bool
	BaseDamage   int
	Damage       int
	Stunned      bool
	HeadTrauma   *TraumaResult
	LimbDisabled bool
	Permanent    combatant.PermanentInjury
	StatLoss     map[string]int
	Scar         string
	// Notes narrate each side effect in order
	Notes []string
}

// Resolve picks the location, scales the damage and applies injuries to
// target. The returned Damage has not been applied to HP.
func (r *Resolver) Resolve(
	attacker, target *combatant.Combatant,
	baseDamage int,
	useRandom bool,
	opts Options,
) Result {
	res := Result{BaseDamage: baseDamage}

	entry, called := r.pickLocation(useRandom, opts.CalledShot)
	res.Entry = entry
	res.Called = called
	if !useRandom && opts.CalledShot != "" && !called {
		res.note("called shot %q is not a location, rolling randomly", opts.CalledShot)
	}

	res.Damage = int(math.Floor(float64(baseDamage) * entry.Multiplier))
	if res.Damage < 1 {
		res.Damage = 1
	}

	if entry.IsHead() && r.headTraumaTriggered(target, baseDamage, opts.KnockbackFeet) {
		tr := r.headTrauma.Resolve(target, baseDamage, opts.KnockbackFeet, TraumaOptions{Location: entry.Location})
		res.HeadTrauma = &tr
		if tr.Occurred {
			res.note("%s suffers head trauma: %s", target.Name, tr.Result)
		}
	}

	if entry.Location == LocationHead && baseDamage >= headStunDamage {
		applied := r.status.Apply(target, combatant.StatusStunned, status.Options{
			Source:     sourceOf(attacker),
			BypassSave: true,
			Duration:   1,
			Payload: combatant.StatusPayload{
				Strike: headStunPenalty,
				Parry:  headStunPenalty,
				Dodge:  headStunPenalty,
			},
		})
		res.Stunned = applied.Applied
		res.Notes = append(res.Notes, applied.Message)
	}

	if entry.Limb != "" {
		r.injureLimb(target, entry, baseDamage, &res)
	}

	switch {
	case entry.Location == LocationHead && baseDamage >= headStatLossDmg:
		r.statLoss(target, headStatLossKey, map[string]int{"IQ": 2, "ME": 2}, &res)
	case (entry.Location == LocationTorso || entry.Location == LocationNeck) && baseDamage >= bodyStatLossDmg:
		key := fmt.Sprintf("%s_statloss_%d", entry.Location, baseDamage/10*10)
		r.statLoss(target, key, map[string]int{"PE": 1, "PP": 1}, &res)
	}

	if baseDamage >= scarDamage && r.dice.Percentile() <= scarChance {
		desc := fmt.Sprintf("scar across the %s", strings.ToLower(entry.Label))
		if !target.Trauma.HasScar(desc) {
			target.Trauma.Scars = append(target.Trauma.Scars, desc)
			res.Scar = desc
			res.note("%s will carry a %s", target.Name, desc)
		}
	}

	return res
}

func (r *Resolver) pickLocation(useRandom bool, called string) (Entry, bool) {
	if !useRandom && called != "" {
		if entry, ok := Called(called); ok {
			return entry, true
		}
	}
	return Roll(r.dice), false
}

func (r *Resolver) headTraumaTriggered(target *combatant.Combatant, baseDamage, knockback int) bool {
	if baseDamage >= headTraumaDamage || target.HP <= 0 {
		return true
	}
	if knockback > knockbackFeet {
		save := r.dice.D20() + combatant.AttributeBonus(target.Attributes.PE)
		return save < enduranceSave
	}
	return false
}

func (r *Resolver) injureLimb(target *combatant.Combatant, entry Entry, baseDamage int, res *Result) {
	limb := target.Limb(entry.Limb)

	if baseDamage >= limbInjuryDamage && !limb.TempDisabled {
		limb.TempDisabled = true
		res.LimbDisabled = true
		recomputeLimbPenalties(target)
		if entry.Limb.IsArm() {
			res.note("%s's %s is disabled (-2 strike, -2 parry, no two-handed weapons)", target.Name, strings.ToLower(entry.Label))
		} else {
			res.note("%s's %s is injured (half speed, -1 dodge)", target.Name, strings.ToLower(entry.Label))
		}
	}

	if baseDamage < crippleDamage || limb.Permanent != combatant.InjuryNone {
		return
	}

	injury := combatant.InjuryCrippled
	if baseDamage >= severDamage {
		injury = combatant.InjurySevered
	}
	limb.Permanent = injury
	res.Permanent = injury

	if target.Trauma.Penalties == nil {
		target.Trauma.Penalties = make(map[string]int)
	}
	severity := 1
	if injury == combatant.InjurySevered {
		severity = 2
	}

	prefix := string(entry.Limb) + ":"
	if entry.Limb.IsArm() {
		target.Trauma.Penalties[prefix+"strike"] = -severity
		target.Trauma.Penalties[prefix+"parry"] = -severity
	} else {
		target.Trauma.Penalties[prefix+"dodge"] = -severity
		if target.BaseSpd == 0 {
			target.BaseSpd = target.Attributes.Spd
		}
		lost := target.Attributes.Spd * severity / 4
		target.Attributes.Spd -= lost
		limb.SpeedLost = lost
	}
	res.note("%s's %s is permanently %s", target.Name, strings.ToLower(entry.Label), injury)
}

func (r *Resolver) statLoss(target *combatant.Combatant, key string, loss map[string]int, res *Result) {
	if target.Trauma.StatLossKeys[key] {
		return
	}
	if target.Trauma.StatLossKeys == nil {
		target.Trauma.StatLossKeys = make(map[string]bool)
	}
	target.Trauma.StatLossKeys[key] = true
	applyStatLoss(target, loss)
	res.StatLoss = loss
	res.note("%s suffers permanent attribute loss (%s)", target.Name, key)
}

func (res *Result) note(format string, args ...any) {
	res.Notes = append(res.Notes, fmt.Sprintf(format, args...))
}

func sourceOf(c *combatant.Combatant) string {
	if c == nil {
		return "head_hit"
	}
	return c.ID
}
