package morale_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/engine/status"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

type MoraleTestSuite struct {
	suite.Suite
	roller *dice.Scripted
	system *morale.System
	orc    *combatant.Combatant
}

func (s *MoraleTestSuite) SetupTest() {
	s.roller = dice.NewScripted()
	d := dice.New(s.roller)

	system, err := morale.NewSystem(&morale.Config{Dice: d, Status: status.NewRegistry(d)})
	s.Require().NoError(err)
	s.system = system

	s.orc = &combatant.Combatant{
		ID:         "orc-1",
		Name:       "Orc",
		Side:       combatant.SideEnemy,
		Species:    "orc",
		Alignment:  "miscreant",
		Level:      2,
		HP:         20,
		MaxHP:      20,
		Alive:      true,
		Attributes: combatant.Attributes{ME: 11},
		Morale:     combatant.MoraleState{Status: combatant.MoraleSteady},
	}
}

func TestMoraleSuite(t *testing.T) {
	suite.Run(t, new(MoraleTestSuite))
}

func (s *MoraleTestSuite) TestNewSystemValidates() {
	_, err := morale.NewSystem(&morale.Config{})
	s.Error(err)
}

func (s *MoraleTestSuite) TestFearImmuneAlwaysSteady() {
	testCases := []struct {
		name    string
		fighter *combatant.Combatant
	}{
		{name: "explicit flag", fighter: &combatant.Combatant{ID: "a", FearImmune: true}},
		{name: "undead", fighter: &combatant.Combatant{ID: "b", Classification: "undead"}},
		{name: "demon", fighter: &combatant.Combatant{ID: "c", Classification: "demon"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.fighter.MaxHP = 40
			tc.fighter.HP = 1
			tc.fighter.Alive = true
			tc.fighter.Morale.Status = combatant.MoraleShaken

			res := s.system.ResolveMoraleCheck(tc.fighter, morale.CheckContext{
				Reason:          morale.ReasonLowHP,
				AlliesDownRatio: 1,
				BigPainHit:      true,
			})

			s.True(res.Success)
			s.Equal(combatant.MoraleSteady, res.Status)
			s.Equal(combatant.MoraleSteady, tc.fighter.Morale.Status)
		})
	}
	s.Zero(s.roller.Remaining())
}

func (s *MoraleTestSuite) TestTargetModifiers() {
	s.Run("base target is ME plus half level", func() {
		s.roller.Push(12)
		res := s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Round: 1})
		s.Equal(12, res.Target)
		s.True(res.Success)
		s.Equal(12, s.orc.Morale.Target)
		s.Equal(1, s.orc.Morale.LastCheckRound)
	})

	s.Run("wounds and losses lower it", func() {
		s.orc.HP = 4
		ctx := morale.CheckContext{AlliesDownRatio: 0.5, BigPainHit: true}
		s.Equal(-4-3-2, morale.Modifier(s.orc, ctx))
	})

	s.Run("martial occupations raise it", func() {
		knight := &combatant.Combatant{OCC: "Palladin Knight", MaxHP: 10, HP: 10}
		s.Equal(2, morale.Modifier(knight, morale.CheckContext{}))
		s.Equal(1, morale.OCCBonus("Soldier"))
	})

	s.Run("base target is clamped", func() {
		sage := &combatant.Combatant{Name: "Sage", Attributes: combatant.Attributes{ME: 30}, MaxHP: 10, HP: 10, Alive: true}
		s.roller.Push(1)
		s.Equal(18, s.system.ResolveMoraleCheck(sage, morale.CheckContext{}).Target)
	})
}

func (s *MoraleTestSuite) TestEscalation() {
	s.roller.Push(20)
	res := s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Round: 1})
	s.False(res.Success)
	s.Equal(combatant.MoraleShaken, s.orc.Morale.Status)
	s.True(res.Changed)

	s.roller.Push(20)
	res = s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Round: 2})
	s.Equal(combatant.MoraleRouted, s.orc.Morale.Status)
	s.True(s.orc.HasEffect(combatant.StatusFleeing))
	s.False(morale.Effective(s.orc))

	s.roller.Push(1)
	res = s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Round: 3})
	s.True(res.Success)
	s.Equal(combatant.MoraleRouted, s.orc.Morale.Status, "morale never improves")
}

func (s *MoraleTestSuite) TestExtremeLossRoutesImmediately() {
	s.roller.Push(20)
	s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Reason: morale.ReasonAllyDown, AlliesDownRatio: 0.8})
	s.Equal(combatant.MoraleRouted, s.orc.Morale.Status)
}

func (s *MoraleTestSuite) TestSurrender() {
	s.orc.HP = 2
	s.roller.Push(20)

	res := s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Reason: morale.ReasonLowHP})

	s.Equal(combatant.MoraleSurrendered, res.Status)
	s.Equal(combatant.MoraleSurrendered, s.orc.Morale.Status)
	s.False(morale.Effective(s.orc))
}

func (s *MoraleTestSuite) TestNeverFleeCapsAtShaken() {
	s.orc.NeverFlee = true
	s.orc.HP = 2
	s.roller.Push(20, 20)

	s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Reason: morale.ReasonLowHP})
	s.Equal(combatant.MoraleShaken, s.orc.Morale.Status)

	s.system.ResolveMoraleCheck(s.orc, morale.CheckContext{Reason: morale.ReasonLowHP, AlliesDownRatio: 1})
	s.Equal(combatant.MoraleShaken, s.orc.Morale.Status)
	s.False(s.orc.HasEffect(combatant.StatusFleeing))
}
