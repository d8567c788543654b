package melee

import "github.com/KirkDiggler/rpg-melee/internal/entities/combatant"

// DefaultAttacksPerMelee applies when no style is trained
const DefaultAttacksPerMelee = 2

type progression struct {
	base int
	// levels at which one extra attack is gained
	extra []int
}

// attackTable holds the attack progression of each hand to hand style
var attackTable = map[combatant.HandToHand]progression{
	combatant.HandToHandBasic:       {base: 2, extra: []int{4, 9, 15}},
	combatant.HandToHandExpert:      {base: 2, extra: []int{4, 8, 13}},
	combatant.HandToHandMartialArts: {base: 3, extra: []int{4, 8, 12}},
	combatant.HandToHandAssassin:    {base: 3, extra: []int{4, 9, 13}},
}

// AttacksPerMelee derives the per-round action budget from the hand to hand
// style and level. A positive override wins.
func AttacksPerMelee(style combatant.HandToHand, level, override int) int {
	if override > 0 {
		return override
	}
	p, ok := attackTable[style]
	if !ok {
		return DefaultAttacksPerMelee
	}
	n := p.base
	for _, lvl := range p.extra {
		if level >= lvl {
			n++
		}
	}
	return n
}
