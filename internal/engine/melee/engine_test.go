package melee_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/melee"
	enginemock "github.com/KirkDiggler/rpg-melee/internal/engine/mock"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

type logLine struct {
	message  string
	category engine.LogCategory
}

type EngineTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	roller *dice.Scripted
	engine *melee.Engine
	logs   []logLine
	ctx    context.Context
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = dice.NewScripted()
	s.logs = nil
	s.ctx = context.Background()

	eng, err := melee.New(&melee.Config{Dice: dice.New(s.roller)})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func fighter(id string, side combatant.Side) engine.FighterRecord {
	name := id
	if id != "" {
		name = strings.ToUpper(id[:1]) + id[1:]
	}
	return engine.FighterRecord{
		ID:              id,
		Name:            name,
		Side:            side,
		Level:           1,
		MaxHP:           30,
		ArmorRating:     10,
		AttacksPerMelee: 1,
		Attributes: combatant.Attributes{
			IQ: 10, ME: 10, MA: 10, PS: 10, PP: 10, PE: 10, PB: 10, Spd: 10,
		},
	}
}

func (s *EngineTestSuite) options() engine.Options {
	return engine.Options{
		Log: func(message string, category engine.LogCategory) {
			s.logs = append(s.logs, logLine{message: message, category: category})
		},
	}
}

func (s *EngineTestSuite) start(opts engine.Options, fighters ...engine.FighterRecord) *engine.InitializeCombatOutput {
	out, err := s.engine.InitializeCombat(s.ctx, &engine.InitializeCombatInput{
		Fighters: fighters,
		Options:  opts,
	})
	s.Require().NoError(err)
	return out
}

func (s *EngineTestSuite) round(selector engine.ActionSelector) *engine.ExecuteMeleeRoundOutput {
	out, err := s.engine.ExecuteMeleeRound(s.ctx, &engine.ExecuteMeleeRoundInput{Selector: selector})
	s.Require().NoError(err)
	return out
}

func (s *EngineTestSuite) get(id string) *combatant.Combatant {
	c, err := s.engine.Combatant(id)
	s.Require().NoError(err)
	return c
}

func (s *EngineTestSuite) logged(substr string) bool {
	for _, l := range s.logs {
		if strings.Contains(l.message, substr) {
			return true
		}
	}
	return false
}

// strikeFirst strikes the first legal target
var strikeFirst = engine.ActionSelectorFunc(func(
	_ context.Context, _ *combatant.Combatant, targets []*combatant.Combatant, _ []*combatant.Combatant,
) (*engine.ActionPlan, error) {
	return &engine.ActionPlan{Type: engine.ActionStrike, TargetID: targets[0].ID}, nil
})

var hold = engine.ActionSelectorFunc(func(
	context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
) (*engine.ActionPlan, error) {
	return &engine.ActionPlan{Type: engine.ActionDefend}, nil
})

// byActor routes selection to a per-actor selector, holding otherwise
func byActor(m map[string]engine.ActionSelector) engine.ActionSelector {
	return engine.ActionSelectorFunc(func(
		ctx context.Context, actor *combatant.Combatant, targets, all []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		if sel, ok := m[actor.ID]; ok {
			return sel.SelectAction(ctx, actor, targets, all)
		}
		return hold.SelectAction(ctx, actor, targets, all)
	})
}

func (s *EngineTestSuite) TestNewRequiresDice() {
	_, err := melee.New(&melee.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = melee.New(nil)
	s.Error(err)
}

func (s *EngineTestSuite) TestInitializeRejectsMalformedFighters() {
	bad := fighter("", combatant.SideEnemy)
	bad.MaxHP = 0
	dup := fighter("ally", combatant.SidePlayer)
	dupe := fighter("ally", combatant.SidePlayer)
	style := fighter("monk", combatant.SideEnemy)
	style.HandToHand = "drunken"

	_, err := s.engine.InitializeCombat(s.ctx, &engine.InitializeCombatInput{
		Fighters: []engine.FighterRecord{bad, dup, dupe, style},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	msg := err.Error()
	s.Contains(msg, "fighters[0].id")
	s.Contains(msg, "fighters[0].name")
	s.Contains(msg, "fighters[0].max_hp")
	s.Contains(msg, "fighters[2].id")
	s.Contains(msg, "fighters[3].hand_to_hand")

	_, err = s.engine.InitializeCombat(s.ctx, &engine.InitializeCombatInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.ExecuteMeleeRound(s.ctx, &engine.ExecuteMeleeRoundInput{Selector: hold})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *EngineTestSuite) TestInitiativeTiesRerollOnlyTiedSubset() {
	// a 10, b 15, c 10; a and c reroll 3 and 7
	s.roller.Push(10, 15, 10, 3, 7)

	out := s.start(s.options(),
		fighter("a", combatant.SidePlayer),
		fighter("b", combatant.SideEnemy),
		fighter("c", combatant.SidePlayer),
	)

	s.Require().Len(out.Order, 3)
	s.Equal("b", out.Order[0].ID)
	s.Equal(0, out.Order[0].Tiebreak)
	s.Equal("c", out.Order[1].ID)
	s.Equal(7, out.Order[1].Tiebreak)
	s.Equal("a", out.Order[2].ID)
	s.Equal(3, out.Order[2].Tiebreak)
	s.Equal([]string{"b", "c", "a"}, s.engine.InitiativeOrder())
	s.Zero(s.roller.Remaining())
}

func (s *EngineTestSuite) TestInitiativeModifiers() {
	quick := fighter("quick", combatant.SidePlayer)
	quick.Attributes.PP = 14
	quick.Bonuses.Initiative = 2
	clumsy := fighter("clumsy", combatant.SideEnemy)
	clumsy.Attributes.PP = 9
	s.roller.Push(10, 10)

	out := s.start(s.options(), quick, clumsy)

	s.Equal(14, out.Order[0].Initiative)
	s.Equal(9, out.Order[1].Initiative, "PP 9 floors to -1")
}

func (s *EngineTestSuite) TestInitiativeOrderNeverChanges() {
	s.roller.Fallback = 1
	s.roller.Push(20, 1)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))
	order := s.engine.InitiativeOrder()

	for i := 0; i < 3; i++ {
		s.round(hold)
		s.Equal(order, s.engine.InitiativeOrder())
	}
	s.Equal(3, s.engine.Round())
}

func (s *EngineTestSuite) TestStrikeHitsAtArmorRating() {
	// init a 20, b 1; a hits with 10 vs AR 10, d3 2 (+2 PS), torso;
	// b misses with 5
	s.roller.Push(20, 1, 10, 2, 8, 5)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	out := s.round(strikeFirst)

	s.Equal(26, s.get("b").HP)
	s.Equal(30, s.get("a").HP, "a miss changes nothing")
	s.Equal(2, out.Stats.Attacks)
	s.Equal(2, out.Stats.Actions)
	s.Equal(4, out.Stats.DamageDealt)
	s.Equal(2, out.Stats.FightersOutOfActions)
	s.True(s.logged("misses A"))
	s.False(out.Status.Over)

	s.Equal(1, s.get("a").RemainingAttacks, "budget reset at round end")
	s.Equal(19, s.get("a").Fatigue.CurrentStamina)
}

func (s *EngineTestSuite) TestCriticalIsLogged() {
	s.roller.Push(20, 1, 19, 1, 8, 1)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	s.round(strikeFirst)

	s.True(s.logged("Critical strike by A"))
	s.Equal(27, s.get("b").HP)
}

func (s *EngineTestSuite) TestDeadAreNeverTargetsOrActors() {
	a := fighter("a", combatant.SidePlayer)
	a.Weapon = &combatant.Weapon{Name: "maul", Damage: "40"}
	b := fighter("b", combatant.SideEnemy)
	b.MaxHP = 5
	c := fighter("c", combatant.SideEnemy)
	c.MaxHP = 5
	c.Attributes.ME = 18

	// init a 20, b 10, c 1; a hits b (15), torso (8), no scar (90)
	s.roller.Push(20, 10, 1, 15, 8, 90)
	s.start(s.options(), a, b, c)

	var actors []string
	offered := make(map[string][]string)
	sel := engine.ActionSelectorFunc(func(
		ctx context.Context, actor *combatant.Combatant, targets, all []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		actors = append(actors, actor.ID)
		for _, t := range targets {
			offered[actor.ID] = append(offered[actor.ID], t.ID)
		}
		if actor.ID == "a" {
			return &engine.ActionPlan{Type: engine.ActionStrike, TargetID: "b"}, nil
		}
		return &engine.ActionPlan{Type: engine.ActionDefend}, nil
	})

	// c's ally-down morale check holds with a 1
	s.roller.Push(1)
	s.round(sel)

	dead := s.get("b")
	s.False(dead.Alive)
	s.Equal(-35, dead.HP)
	s.Equal(combatant.ConditionDead, dead.Condition())
	s.False(s.engine.CanAct("b"))
	s.Equal([]string{"a", "c"}, actors)
	s.ElementsMatch([]string{"b", "c"}, offered["a"], "b was alive when a chose")
	s.Equal([]string{"a"}, offered["c"], "b is dead by c's turn")

	targets, err := s.engine.LegalTargets("a")
	s.Require().NoError(err)
	s.Equal([]string{"c"}, targets)
}

func (s *EngineTestSuite) TestCombatEndsWhenOneSideIsDown() {
	a := fighter("a", combatant.SidePlayer)
	a.Weapon = &combatant.Weapon{Name: "maul", Damage: "40"}
	b := fighter("b", combatant.SideEnemy)
	b.MaxHP = 5

	s.roller.Push(20, 1, 15, 8, 90)
	s.start(s.options(), a, b)

	out := s.round(strikeFirst)

	s.True(out.Status.Over)
	s.Equal(combatant.SidePlayer, out.Status.WinningSide)
	s.Equal(1, out.Stats.Actions, "the round stops the moment b falls")
	s.True(s.logged("player side wins"))

	_, err := s.engine.ExecuteMeleeRound(s.ctx, &engine.ExecuteMeleeRoundInput{Selector: strikeFirst})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *EngineTestSuite) TestMultiplePassesFollowInitiative() {
	a := fighter("a", combatant.SidePlayer)
	a.AttacksPerMelee = 3
	b := fighter("b", combatant.SideEnemy)
	s.roller.Push(20, 1)
	s.start(s.options(), a, b)

	var actors []string
	sel := engine.ActionSelectorFunc(func(
		ctx context.Context, actor *combatant.Combatant, targets, all []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		actors = append(actors, actor.ID)
		return hold.SelectAction(ctx, actor, targets, all)
	})

	out := s.round(sel)

	s.Equal([]string{"a", "b", "a", "a"}, actors)
	s.Equal(4, out.Stats.Actions)
	s.Equal(3, s.get("a").RemainingAttacks)
	s.Equal(20, s.get("a").Fatigue.CurrentStamina, "holding costs no stamina")
}

func (s *EngineTestSuite) TestAttacksPerMeleeFromHandToHand() {
	monk := fighter("monk", combatant.SidePlayer)
	monk.AttacksPerMelee = 0
	monk.HandToHand = "Martial Arts"
	monk.Level = 8
	brute := fighter("brute", combatant.SideEnemy)
	brute.AttacksPerMelee = 0
	s.roller.Push(20, 1)

	s.start(s.options(), monk, brute)

	s.Equal(5, s.get("monk").AttacksPerMelee)
	s.Equal(melee.DefaultAttacksPerMelee, s.get("brute").AttacksPerMelee)
}

func (s *EngineTestSuite) TestUnknownActionIsConsumed() {
	s.roller.Push(20, 1)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	sel := engine.ActionSelectorFunc(func(
		context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		return &engine.ActionPlan{Type: "dance"}, nil
	})

	out := s.round(sel)

	s.Equal(2, out.Stats.Actions)
	s.True(s.logged(`unknown action "dance"`))
	found := false
	for _, l := range s.logs {
		if l.category == engine.LogError {
			found = true
		}
	}
	s.True(found)
}

func (s *EngineTestSuite) TestSelectorErrorHolds() {
	s.roller.Push(20, 1)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	sel := enginemock.NewMockActionSelector(s.ctrl)
	sel.EXPECT().
		SelectAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("player disconnected")).
		Times(2)

	out := s.round(sel)
	s.Equal(2, out.Stats.Actions)
	s.True(s.logged("could not choose an action"))
}

func (s *EngineTestSuite) TestDeclaredDodgeBlocksWeakerStrike() {
	// a dodges with 15; b strikes with 12
	s.roller.Push(20, 1, 15, 12)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	sel := byActor(map[string]engine.ActionSelector{
		"a": engine.ActionSelectorFunc(func(
			context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
		) (*engine.ActionPlan, error) {
			return &engine.ActionPlan{Type: engine.ActionDodge}, nil
		}),
		"b": strikeFirst,
	})

	out := s.round(sel)

	s.Equal(30, s.get("a").HP)
	s.Equal(1, out.Stats.Dodges)
	s.True(s.logged("A dodges the blow"))
	s.Zero(s.roller.Remaining())
}

func (s *EngineTestSuite) TestReactiveDefenseExtensionPoint() {
	reaction := enginemock.NewMockDefenseReaction(s.ctrl)
	reaction.EXPECT().
		React(gomock.Any(), gomock.Any(), gomock.Any(), 15).
		Return(engine.DefenseDecision{Kind: engine.DefenseParry, Roll: 18})

	opts := s.options()
	opts.Defense = reaction
	s.roller.Push(20, 1, 15)
	s.start(opts, fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	s.round(byActor(map[string]engine.ActionSelector{"a": strikeFirst}))

	s.Equal(30, s.get("b").HP)
	s.True(s.logged("B parries the blow"))
}

func (s *EngineTestSuite) TestArmorFailureAppliesFullDamage() {
	armor := enginemock.NewMockArmor(s.ctrl)
	armor.EXPECT().
		Mitigate(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("armor service down"))

	opts := s.options()
	opts.Armor = armor
	s.roller.Push(20, 1, 12, 2, 8)
	s.start(opts, fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	s.round(byActor(map[string]engine.ActionSelector{"a": strikeFirst}))

	s.Equal(26, s.get("b").HP)
}

func (s *EngineTestSuite) TestArmorAbsorbsDamage() {
	armor := enginemock.NewMockArmor(s.ctrl)
	armor.EXPECT().
		Mitigate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.ArmorInput) (*engine.ArmorResult, error) {
			s.Equal("b", in.Defender.ID)
			s.Equal(12, in.AttackRoll)
			s.Equal(4, in.RawDamage)
			s.Equal("torso", in.HitSlot)
			return &engine.ArmorResult{
				ArmorHit:          true,
				DamageToArmor:     3,
				DamageToCharacter: 1,
				BrokenArmor:       []string{"breastplate"},
			}, nil
		})

	opts := s.options()
	opts.Armor = armor
	s.roller.Push(20, 1, 12, 2, 8)
	s.start(opts, fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	s.round(byActor(map[string]engine.ActionSelector{"a": strikeFirst}))

	s.Equal(29, s.get("b").HP)
	s.True(s.logged("breastplate breaks"))
}

func (s *EngineTestSuite) TestCalledShotToArmDisablesIt() {
	a := fighter("a", combatant.SidePlayer)
	a.Weapon = &combatant.Weapon{Name: "axe", Damage: "12"}
	a.AttacksPerMelee = 2
	// a hits b's left arm twice for 12 base; each hit is a big pain hit and
	// b's morale holds with a 1
	s.roller.Push(20, 1, 15, 1, 15, 1)
	s.start(s.options(), a, fighter("b", combatant.SideEnemy))

	aim := engine.ActionSelectorFunc(func(
		_ context.Context, _ *combatant.Combatant, targets []*combatant.Combatant, _ []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		return &engine.ActionPlan{Type: engine.ActionStrike, TargetID: targets[0].ID, CalledShot: "left arm"}, nil
	})
	s.round(byActor(map[string]engine.ActionSelector{"a": aim}))

	b := s.get("b")
	s.True(b.Limbs[combatant.LimbLeftArm].TempDisabled)
	s.Equal(-2, b.LimbPenalties.Strike)
	s.Equal(-2, b.LimbPenalties.Parry)
	s.False(b.CanWieldTwoHanded())
	s.Equal(30-9-9, b.HP)
}

func (s *EngineTestSuite) TestSpellOutcomeIsApplied() {
	spells := enginemock.NewMockSpellResolver(s.ctrl)
	spells.EXPECT().
		CastSpell(gomock.Any(), gomock.Any(), gomock.Any(), "Paralysis: Lesser").
		Return(&engine.Outcome{
			Damage:  5,
			Message: "A weaves a binding spell",
			Statuses: []engine.StatusGrant{
				{Type: combatant.StatusStunned, Duration: 2, BypassSave: true},
			},
		}, nil)

	opts := s.options()
	opts.Spells = spells
	s.roller.Push(20, 1)
	s.start(opts, fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	cast := engine.ActionSelectorFunc(func(
		_ context.Context, _ *combatant.Combatant, targets []*combatant.Combatant, _ []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		return &engine.ActionPlan{Type: engine.ActionSpell, TargetID: targets[0].ID, Spell: "Paralysis: Lesser"}, nil
	})

	var calls int
	sel := engine.ActionSelectorFunc(func(
		ctx context.Context, actor *combatant.Combatant, targets, all []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		calls++
		if actor.ID == "a" && calls == 1 {
			return cast.SelectAction(ctx, actor, targets, all)
		}
		return hold.SelectAction(ctx, actor, targets, all)
	})

	s.round(sel)
	s.Equal(25, s.get("b").HP)
	s.False(s.engine.CanAct("b"), "one round of stun remains")
	s.Equal(1, calls, "a stunned b never selects")

	s.round(sel)
	s.True(s.engine.CanAct("b"), "stun expired after its duration")
	s.Equal(1, s.get("b").RemainingAttacks)
}

func (s *EngineTestSuite) TestBleedingIsNarratedOncePerTick() {
	spells := enginemock.NewMockSpellResolver(s.ctrl)
	spells.EXPECT().
		CastSpell(gomock.Any(), gomock.Any(), gomock.Any(), "Wounds").
		Return(&engine.Outcome{
			Statuses: []engine.StatusGrant{{
				Type:       combatant.StatusBleeding,
				Duration:   3,
				BypassSave: true,
				Payload:    combatant.StatusPayload{DamagePerRound: 3},
			}},
		}, nil)

	opts := s.options()
	opts.Spells = spells
	s.roller.Push(20, 1)
	s.start(opts, fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	sel := byActor(map[string]engine.ActionSelector{
		"a": engine.ActionSelectorFunc(func(
			_ context.Context, _ *combatant.Combatant, targets []*combatant.Combatant, _ []*combatant.Combatant,
		) (*engine.ActionPlan, error) {
			return &engine.ActionPlan{Type: engine.ActionSpell, TargetID: targets[0].ID, Spell: "Wounds"}, nil
		}),
	})

	out := s.round(sel)
	s.Equal(27, s.get("b").HP)
	s.Equal(3, out.Stats.DamageDealt)

	var bleeds int
	for _, l := range s.logs {
		if strings.Contains(l.message, "B bleeds for") {
			bleeds++
		}
	}
	s.Equal(1, bleeds)
}

func (s *EngineTestSuite) TestSpellWithoutResolverFizzles() {
	s.roller.Push(20, 1)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	sel := engine.ActionSelectorFunc(func(
		context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		return &engine.ActionPlan{Type: engine.ActionSpell, Spell: "Fire Bolt"}, nil
	})

	out := s.round(sel)
	s.Equal(2, out.Stats.Actions)
	s.True(s.logged("spell fizzles"))
}

func (s *EngineTestSuite) TestGrappleLocksBothFighters() {
	// a grabs with 15 vs 5; b is held and cannot strike
	s.roller.Push(20, 1, 15, 5)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	grab := engine.ActionSelectorFunc(func(
		_ context.Context, _ *combatant.Combatant, targets []*combatant.Combatant, _ []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		return &engine.ActionPlan{Type: engine.ActionGrapple, TargetID: targets[0].ID}, nil
	})
	out := s.round(byActor(map[string]engine.ActionSelector{"a": grab, "b": strikeFirst}))

	a, b := s.get("a"), s.get("b")
	s.Equal(combatant.GrappleGrappling, a.Grapple.Status)
	s.Equal(combatant.GrappleControlled, b.Grapple.Status)
	s.Equal("b", a.Grapple.OpponentID)
	s.Equal(18, a.Fatigue.CurrentStamina, "grappling costs double")
	s.Equal(1, out.Stats.Grapples)
	s.True(s.logged("B is grappling and cannot strike"))
}

func (s *EngineTestSuite) TestBrokenMoraleEndsTheGrapple() {
	spells := enginemock.NewMockSpellResolver(s.ctrl)
	spells.EXPECT().
		CastSpell(gomock.Any(), gomock.Any(), gomock.Any(), "Call Lightning").
		Return(&engine.Outcome{Damage: 28}, nil)

	opts := s.options()
	opts.Spells = spells

	// init a 20, b 1, c 15; a grabs b with 15 vs 5; c's bolt leaves b at 2 HP
	// and b's morale roll of 20 fails
	s.roller.Push(20, 1, 15, 15, 5, 20)
	s.start(opts,
		fighter("a", combatant.SidePlayer),
		fighter("b", combatant.SideEnemy),
		fighter("c", combatant.SidePlayer),
	)

	sel := byActor(map[string]engine.ActionSelector{
		"a": engine.ActionSelectorFunc(func(
			context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
		) (*engine.ActionPlan, error) {
			return &engine.ActionPlan{Type: engine.ActionGrapple, TargetID: "b"}, nil
		}),
		"c": engine.ActionSelectorFunc(func(
			context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
		) (*engine.ActionPlan, error) {
			return &engine.ActionPlan{Type: engine.ActionSpell, TargetID: "b", Spell: "Call Lightning"}, nil
		}),
	})
	s.round(sel)

	a, b := s.get("a"), s.get("b")
	s.Equal(2, b.HP)
	s.True(b.Conscious())
	s.Contains([]combatant.MoraleStatus{combatant.MoraleRouted, combatant.MoraleSurrendered}, b.Morale.Status)
	s.False(a.Grapple.Engaged())
	s.False(b.Grapple.Engaged())
	s.True(s.logged("B and A break apart"))
}

func (s *EngineTestSuite) TestBigPainHitShakesMorale() {
	b := fighter("b", combatant.SideEnemy)
	b.MaxHP = 12
	// a hits for 4 (a third of b's HP); b's morale roll of 20 fails
	s.roller.Push(20, 1, 15, 2, 8, 20)
	s.start(s.options(), fighter("a", combatant.SidePlayer), b)

	s.round(byActor(map[string]engine.ActionSelector{"a": strikeFirst}))

	got := s.get("b")
	s.Equal(8, got.HP)
	s.Equal(combatant.MoraleShaken, got.Morale.Status)
	s.Equal(1, got.Morale.FailedChecks)
	s.True(s.logged("B is shaken"))
}

func (s *EngineTestSuite) TestHorrorChecksOnLaterSighting() {
	a := fighter("a", combatant.SidePlayer)
	a.Attributes.Spd = 100
	a.Position = &combatant.Position{X: 100, Y: 0}
	b := fighter("b", combatant.SideEnemy)
	b.HorrorFactor = 20
	b.Position = &combatant.Position{X: 0, Y: 0}

	opts := s.options()
	opts.Terrain.SightRange = 60

	// init a 20, b 1; b is out of sight so nothing is rolled yet
	s.roller.Push(20, 1)
	s.start(opts, a, b)
	s.Empty(s.get("a").HorrorSeen)

	sel := byActor(map[string]engine.ActionSelector{
		"a": engine.ActionSelectorFunc(func(
			context.Context, *combatant.Combatant, []*combatant.Combatant, []*combatant.Combatant,
		) (*engine.ActionPlan, error) {
			return &engine.ActionPlan{Type: engine.ActionMove, Destination: &combatant.Position{X: 5, Y: 0}}, nil
		}),
	})

	// a's horror save 10 fails once b comes into view
	s.roller.Push(10)
	s.round(sel)

	got := s.get("a")
	s.Equal(combatant.Position{X: 5, Y: 0}, *got.Position)
	s.True(got.HorrorSeen["b"])
	s.True(got.Morale.HorrorSaveFailed)
	s.True(s.logged("A is horrified by B"))
}

func (s *EngineTestSuite) TestPreCombatHorrorAndFearRecovery() {
	b := fighter("b", combatant.SideEnemy)
	b.HorrorFactor = 14
	// init a 20, b 1; a's horror save 10 fails; a recovers with 20 at round end
	s.roller.Push(20, 1, 10)
	s.start(s.options(), fighter("a", combatant.SidePlayer), b)

	a := s.get("a")
	s.True(a.HasEffect(combatant.StatusShaken))
	s.True(a.Morale.HorrorSaveFailed)
	s.True(a.HorrorSeen["b"])

	var selected []string
	sel := engine.ActionSelectorFunc(func(
		ctx context.Context, actor *combatant.Combatant, targets, all []*combatant.Combatant,
	) (*engine.ActionPlan, error) {
		selected = append(selected, actor.ID)
		return hold.SelectAction(ctx, actor, targets, all)
	})

	s.roller.Push(20)
	s.round(sel)

	s.Equal([]string{"b"}, selected, "a hesitates instead of acting")
	s.True(s.logged("A hesitates in terror"))
	s.False(s.get("a").HasEffect(combatant.StatusShaken))
}

func (s *EngineTestSuite) TestCancelledContextStopsTheRound() {
	s.roller.Push(20, 1)
	s.start(s.options(), fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.engine.ExecuteMeleeRound(ctx, &engine.ExecuteMeleeRoundInput{Selector: hold})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.ErrorIs(err, context.Canceled)
}

func (s *EngineTestSuite) TestCallbacksReceiveSnapshots() {
	var updates []string
	var rounds []int
	opts := s.options()
	opts.OnUpdate = func(f *combatant.Combatant) {
		updates = append(updates, f.ID)
		f.HP = -100
	}
	opts.OnRoundComplete = func(round int, stats engine.RoundStats) {
		rounds = append(rounds, round)
		s.Equal(2, stats.Actions)
	}
	s.roller.Push(20, 1)
	s.start(opts, fighter("a", combatant.SidePlayer), fighter("b", combatant.SideEnemy))

	s.round(hold)

	s.Equal([]string{"a", "b"}, updates)
	s.Equal([]int{1}, rounds)
	s.Equal(30, s.get("a").HP, "mutating a snapshot never reaches the arena")
}
