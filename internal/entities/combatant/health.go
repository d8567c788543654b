package combatant

// Condition is the HP-derived consciousness state
type Condition string

const (
	ConditionConscious   Condition = "conscious"
	ConditionUnconscious Condition = "unconscious"
	ConditionDying       Condition = "dying"
	ConditionCritical    Condition = "critical"
	ConditionDead        Condition = "dead"
)

// Condition classifies current HP:
//
//	HP > 0          conscious
//	HP = 0          unconscious
//	-11 < HP <= -1  dying
//	-21 < HP <= -11 critical
//	HP <= -21       dead
func (c *Combatant) Condition() Condition {
	switch {
	case !c.Alive || c.HP <= DeathThreshold:
		return ConditionDead
	case c.HP <= -11:
		return ConditionCritical
	case c.HP <= -1:
		return ConditionDying
	case c.HP == 0:
		return ConditionUnconscious
	default:
		return ConditionConscious
	}
}

// Conscious reports whether HP alone permits acting. Status effects are
// checked separately by the status registry.
func (c *Combatant) Conscious() bool {
	return c.Condition() == ConditionConscious
}

// TakeDamage lowers HP and marks the combatant dead past the death threshold.
// It returns the condition before and after.
func (c *Combatant) TakeDamage(amount int) (before, after Condition) {
	before = c.Condition()
	if amount <= 0 {
		return before, before
	}
	c.HP -= amount
	if c.HP <= DeathThreshold {
		c.Alive = false
	}
	return before, c.Condition()
}

// Heal raises HP up to MaxHP. The dead stay dead.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || !c.Alive {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}
