package melee

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/fatigue"
	"github.com/KirkDiggler/rpg-melee/internal/engine/grapple"
	"github.com/KirkDiggler/rpg-melee/internal/engine/hitlocation"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

const (
	criticalNatural = 18
	lowHPFraction   = 0.10
	// a single hit of at least a quarter of max HP is a big pain hit
	bigPainDivisor = 4
	allyDownRatio  = 0.5
)

// strike resolves a strike: roll, declared or reactive defense, armor rating,
// damage, hit location, armor mitigation, HP.
func (e *Engine) strike(ctx context.Context, atk *combatant.Combatant, plan *engine.ActionPlan, stats *engine.RoundStats) {
	if !grapple.CanStrike(atk) {
		e.logf(ctx, engine.LogGrapple, "%s is grappling and cannot strike", atk.Name)
		return
	}
	def := e.target(ctx, atk, plan.TargetID)
	if def == nil {
		return
	}

	weapon := atk.Weapon
	if plan.Weapon != nil {
		weapon = plan.Weapon
	}
	if weapon != nil && weapon.TwoHanded && !atk.CanWieldTwoHanded() {
		e.logf(ctx, engine.LogAttack, "%s cannot wield %s two-handed and strikes unarmed", atk.Name, weapon.Name)
		weapon = nil
	}

	natural := e.dice.D20()
	roll := natural + strikeBonus(atk)
	e.logf(ctx, engine.LogAttack, "%s strikes at %s: %d (d20 %d)", atk.Name, def.Name, roll, natural)

	if blocked := e.defend(ctx, def, atk, roll); blocked {
		return
	}

	if roll < def.ArmorRating {
		e.logf(ctx, engine.LogAttack, "%s misses %s (%d vs AR %d)", atk.Name, def.Name, roll, def.ArmorRating)
		return
	}
	if natural >= criticalNatural {
		e.logf(ctx, engine.LogAttack, "Critical strike by %s!", atk.Name)
	}

	base := e.baseDamage(atk, weapon)
	res := e.hits.Resolve(atk, def, base, plan.CalledShot == "", hitlocation.Options{CalledShot: plan.CalledShot})
	e.logf(ctx, engine.LogAttack, "%s hits %s in the %s for %d (base %d)", atk.Name, def.Name, res.Entry.Label, res.Damage, base)
	for _, note := range res.Notes {
		e.logf(ctx, engine.LogStatus, "%s", note)
	}

	dmg := e.mitigate(ctx, def, roll, res.Damage, string(res.Entry.Location))
	e.applyDamage(ctx, atk, def, dmg, stats)
}

// defend checks a declared defense, then the reactive extension point
func (e *Engine) defend(ctx context.Context, def, atk *combatant.Combatant, roll int) bool {
	if !grapple.CanDefend(def) {
		return false
	}

	if dd := def.DeclaredDefense; dd != nil && roll <= dd.Value {
		e.logf(ctx, engine.LogAttack, "%s %s the blow (%d vs %d)", def.Name, defenseVerb(engine.DefenseKind(dd.Kind)), dd.Value, roll)
		return true
	}

	if e.opts.Defense == nil || !canAct(def) {
		return false
	}
	dec := e.opts.Defense.React(ctx, def.Clone(), atk.Clone(), roll)
	if dec.Kind != engine.DefenseNone && roll <= dec.Roll {
		e.logf(ctx, engine.LogAttack, "%s %s the blow (%d vs %d)", def.Name, defenseVerb(dec.Kind), dec.Roll, roll)
		return true
	}
	return false
}

func defenseVerb(kind engine.DefenseKind) string {
	if kind == engine.DefenseParry {
		return "parries"
	}
	return "dodges"
}

// baseDamage rolls weapon dice, or 1d3 + PS/5 unarmed, plus every damage
// modifier; never below 1
func (e *Engine) baseDamage(atk *combatant.Combatant, weapon *combatant.Weapon) int {
	var dmg int
	if weapon != nil && weapon.Damage != "" {
		dmg = e.dice.RollFormula(weapon.Damage)
	} else {
		dmg = e.dice.Roll(3) + atk.Attributes.PS/5
	}

	dmg += atk.Bonuses.Damage +
		combatant.DamageBonus(atk.Attributes.PS) +
		atk.SizeBonuses.Damage +
		atk.Bonus("damage") +
		status.Penalties(atk).Damage
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// mitigate runs the armor contract. A failing contract mitigates nothing.
func (e *Engine) mitigate(ctx context.Context, def *combatant.Combatant, roll, dmg int, slot string) int {
	if e.opts.Armor == nil {
		return dmg
	}

	res, err := e.opts.Armor.Mitigate(ctx, &engine.ArmorInput{
		Defender:   def.Clone(),
		AttackRoll: roll,
		RawDamage:  dmg,
		HitSlot:    slot,
	})
	if err != nil || res == nil {
		slog.Warn("Armor mitigation failed, applying full damage",
			"defender_id", def.ID,
			"error", err)
		return dmg
	}
	if !res.ArmorHit {
		return dmg
	}

	toChar := min(max(res.DamageToCharacter, 0), dmg)
	e.logf(ctx, engine.LogDamage, "%s's armor absorbs %d", def.Name, dmg-toChar)
	for _, piece := range res.BrokenArmor {
		e.logf(ctx, engine.LogDamage, "%s's %s breaks", def.Name, piece)
	}
	return toChar
}

// applyDamage lowers HP and runs everything a wound triggers: waking,
// condition changes, grapple release and morale checks
func (e *Engine) applyDamage(ctx context.Context, src, def *combatant.Combatant, dmg int, stats *engine.RoundStats) {
	if dmg <= 0 {
		return
	}

	before, after := def.TakeDamage(dmg)
	stats.DamageDealt += dmg
	e.logf(ctx, engine.LogDamage, "%s takes %d damage (%d/%d HP)", def.Name, dmg, def.HP, def.MaxHP)

	if status.WakeOnDamage(def) {
		e.logf(ctx, engine.LogStatus, "%s is jolted awake", def.Name)
	}

	if before != after {
		e.logf(ctx, engine.LogDamage, "%s is %s", def.Name, after)
	}
	if after != combatant.ConditionConscious {
		e.release(ctx, def)
		if before == combatant.ConditionConscious {
			e.checkAllies(ctx, def)
		}
		return
	}

	switch {
	case def.HPFraction() <= lowHPFraction:
		e.moraleCheck(ctx, def, morale.CheckContext{Reason: morale.ReasonLowHP})
	case dmg*bigPainDivisor >= def.MaxHP:
		e.moraleCheck(ctx, def, morale.CheckContext{Reason: morale.ReasonBigPainHit, BigPainHit: true})
	}
}

// checkAllies makes the fallen combatant's side check morale once half or
// more of it is down
func (e *Engine) checkAllies(ctx context.Context, fallen *combatant.Combatant) {
	ratio := e.alliesDown(fallen.Side)
	if ratio < allyDownRatio {
		return
	}
	for _, c := range e.ordered() {
		if c.Side != fallen.Side || !inFight(c) {
			continue
		}
		e.moraleCheck(ctx, c, morale.CheckContext{Reason: morale.ReasonAllyDown})
	}
}

func (e *Engine) moraleCheck(ctx context.Context, c *combatant.Combatant, cc morale.CheckContext) {
	cc.Round = e.round
	cc.AlliesDownRatio = e.alliesDown(c.Side)
	res := e.morale.ResolveMoraleCheck(c, cc)
	if res.Changed || !res.Success {
		e.logf(ctx, engine.LogMorale, "%s", res.Message)
	}
	if !morale.Effective(c) {
		e.release(ctx, c)
	}
}

// alliesDown is the fraction of a side no longer in the fight
func (e *Engine) alliesDown(side combatant.Side) float64 {
	total, down := 0, 0
	for _, c := range e.arena {
		if c.Side != side {
			continue
		}
		total++
		if !inFight(c) {
			down++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(down) / float64(total)
}

// release frees the grapple partner of a combatant who is incapacitated or
// has stopped fighting
func (e *Engine) release(ctx context.Context, c *combatant.Combatant) {
	if !c.Grapple.Engaged() {
		return
	}
	opp := e.arena[c.Grapple.OpponentID]
	if grapple.Release(c, opp) && opp != nil {
		e.logf(ctx, engine.LogGrapple, "%s and %s break apart", c.Name, opp.Name)
	}
}

func strikeBonus(c *combatant.Combatant) int {
	return c.Bonuses.Strike +
		combatant.AttributeBonus(c.Attributes.PP) +
		c.SizeBonuses.Strike +
		c.Bonus("strike") +
		c.Bonus(fatigue.KeyStrike) +
		c.LimbPenalties.Strike +
		c.Trauma.Penalty("strike") +
		status.Penalties(c).Strike
}

func parryBonus(c *combatant.Combatant) int {
	return c.Bonuses.Parry +
		combatant.AttributeBonus(c.Attributes.PP) +
		c.SizeBonuses.Parry +
		c.Bonus("parry") +
		c.Bonus(fatigue.KeyParry) +
		c.LimbPenalties.Parry +
		c.Trauma.Penalty("parry") +
		status.Penalties(c).Parry
}

func dodgeBonus(c *combatant.Combatant) int {
	return c.Bonuses.Dodge +
		combatant.AttributeBonus(c.Attributes.PP) +
		c.SizeBonuses.Dodge +
		c.Bonus("dodge") +
		c.Bonus(fatigue.KeyDodge) +
		c.LimbPenalties.Dodge +
		c.Trauma.Penalty("dodge") +
		status.Penalties(c).Dodge
}
