package combatant

// AttributeBonus is the save/strike bonus of a high attribute score: +1 at
// 16 and 17, +2 at 18 and 19, and so on. Scores below 16 give nothing.
func AttributeBonus(score int) int {
	if score < 16 {
		return 0
	}
	return (score - 14) / 2
}

// DamageBonus is the hand to hand damage bonus for PS: +1 per point over 15
func DamageBonus(ps int) int {
	if ps <= 15 {
		return 0
	}
	return ps - 15
}
