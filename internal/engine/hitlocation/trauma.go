package hitlocation

import (
	"fmt"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

//go:generate mockgen -destination=mock/mock_head_trauma.go -package=hitlocationmock github.com/KirkDiggler/rpg-melee/internal/engine/hitlocation HeadTrauma

// TraumaOptions carries context for a head trauma roll
type TraumaOptions struct {
	Location Location
}

// TraumaResult is what a head trauma did to the target
type TraumaResult struct {
	Occurred   bool
	Result     string
	StatLosses map[string]int
	Phobia     string
	Insanity   string
}

// HeadTrauma resolves a serious blow to the head. Implementations mutate
// the target in place.
type HeadTrauma interface {
	Resolve(target *combatant.Combatant, impactDamage, knockbackFeet int, opts TraumaOptions) TraumaResult
}

var phobias = []string{"fear of blades", "fear of the dark", "fear of blood", "fear of crowds"}

var insanities = []string{"paranoia", "recurring nightmares", "obsessive counting"}

// DefaultHeadTrauma rolls percentile, pushed up by heavy impacts:
//
//	01-40 dazed, 41-70 concussion, 71-85 stat loss, 86-95 phobia, 96+ insanity
type DefaultHeadTrauma struct {
	Dice *dice.Dice
}

// Resolve implements HeadTrauma
func (h *DefaultHeadTrauma) Resolve(
	target *combatant.Combatant,
	impactDamage, knockbackFeet int,
	_ TraumaOptions,
) TraumaResult {
	roll := h.Dice.Percentile()
	if impactDamage > 20 {
		roll += impactDamage - 20
	}
	if knockbackFeet > 30 {
		roll += 10
	}

	switch {
	case roll <= 40:
		return TraumaResult{Occurred: true, Result: "dazed"}
	case roll <= 70:
		return TraumaResult{Occurred: true, Result: "concussion"}
	case roll <= 85:
		loss := map[string]int{"IQ": 1}
		applyStatLoss(target, loss)
		return TraumaResult{Occurred: true, Result: "memory loss", StatLosses: loss}
	case roll <= 95:
		phobia := phobias[h.Dice.Roll(len(phobias))-1]
		target.Trauma.Phobias = appendUnique(target.Trauma.Phobias, phobia)
		return TraumaResult{Occurred: true, Result: "phobia", Phobia: phobia}
	default:
		insanity := insanities[h.Dice.Roll(len(insanities))-1]
		target.Trauma.Insanity = appendUnique(target.Trauma.Insanity, insanity)
		return TraumaResult{Occurred: true, Result: fmt.Sprintf("insanity (%s)", insanity), Insanity: insanity}
	}
}

func applyStatLoss(target *combatant.Combatant, loss map[string]int) {
	if target.Trauma.StatLoss == nil {
		target.Trauma.StatLoss = make(map[string]int)
	}
	for attr, n := range loss {
		target.Attributes.Add(attr, -n)
		target.Trauma.StatLoss[attr] += n
	}
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
