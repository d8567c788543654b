package hitlocation

import (
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

// recomputeLimbPenalties derives the temporary penalty set from the
// temporary flags only
func recomputeLimbPenalties(target *combatant.Combatant) {
	p := combatant.LimbPenalties{SpeedMultiplier: 1}
	for _, l := range combatant.AllLimbs {
		st := target.Limbs[l]
		if st == nil || !st.TempDisabled {
			continue
		}
		if l.IsArm() {
			p.Strike += tempArmPenalty
			p.Parry += tempArmPenalty
			p.NoTwoHanded = true
		} else {
			p.Dodge += tempLegDodge
			p.SpeedMultiplier *= tempLegSpeedScale
		}
	}
	target.LimbPenalties = p
}

// ClearLimbEffects resets temporary limb flags and their penalties.
// Permanent injuries are untouched.
func ClearLimbEffects(target *combatant.Combatant) {
	for _, st := range target.Limbs {
		st.TempDisabled = false
	}
	target.LimbPenalties = combatant.LimbPenalties{SpeedMultiplier: 1}
}

// RestoreOptions selects what high-tier healing reverses
type RestoreOptions struct {
	Limbs    []combatant.Limb
	AllLimbs bool
	Stats    bool
	Scars    bool
}

// RestoreResult summarizes a restoration
type RestoreResult struct {
	Limbs         []combatant.Limb
	SpeedRefunded int
	Stats         map[string]int
	ScarsRemoved  int
}

// RestorePermanentTrauma reverses permanent limb loss, stat loss and scars.
// A restored leg refunds the speed it cost, capped at what is still missing.
func RestorePermanentTrauma(target *combatant.Combatant, opts RestoreOptions) RestoreResult {
	var res RestoreResult

	limbs := opts.Limbs
	if opts.AllLimbs {
		limbs = combatant.AllLimbs
	}
	for _, l := range limbs {
		st := target.Limbs[l]
		if st == nil || st.Permanent == combatant.InjuryNone {
			continue
		}

		if st.SpeedLost > 0 {
			outstanding := target.BaseSpd - target.Attributes.Spd
			refund := min(st.SpeedLost, outstanding)
			if refund > 0 {
				target.Attributes.Spd += refund
				res.SpeedRefunded += refund
			}
		}
		st.Permanent = combatant.InjuryNone
		st.SpeedLost = 0

		prefix := string(l) + ":"
		for k := range target.Trauma.Penalties {
			if strings.HasPrefix(k, prefix) {
				delete(target.Trauma.Penalties, k)
			}
		}
		res.Limbs = append(res.Limbs, l)
	}

	if opts.Stats && len(target.Trauma.StatLoss) > 0 {
		res.Stats = make(map[string]int, len(target.Trauma.StatLoss))
		for attr, n := range target.Trauma.StatLoss {
			target.Attributes.Add(attr, n)
			res.Stats[attr] = n
		}
		target.Trauma.StatLoss = nil
		target.Trauma.StatLossKeys = nil
	}

	if opts.Scars {
		res.ScarsRemoved = len(target.Trauma.Scars)
		target.Trauma.Scars = nil
	}

	return res
}
