package fatigue_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-melee/internal/engine/fatigue"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

type FatigueTestSuite struct {
	suite.Suite
	fighter *combatant.Combatant
}

func (s *FatigueTestSuite) SetupTest() {
	s.fighter = &combatant.Combatant{
		ID:         "soldier-1",
		Attributes: combatant.Attributes{PE: 10},
	}
	fatigue.Initialize(s.fighter)
}

func TestFatigueSuite(t *testing.T) {
	suite.Run(t, new(FatigueTestSuite))
}

func (s *FatigueTestSuite) TestInitialize() {
	s.Equal(20, s.fighter.Fatigue.MaxStamina)
	s.Equal(20, s.fighter.Fatigue.CurrentStamina)
	s.Equal(combatant.FatigueFresh, s.fighter.Fatigue.Level)
	s.Empty(s.fighter.TempBonuses)

	s.Run("zero endurance still gets a pool", func() {
		weak := &combatant.Combatant{}
		fatigue.Initialize(weak)
		s.Equal(1, weak.Fatigue.MaxStamina)
	})
}

func (s *FatigueTestSuite) TestDrainEscalates() {
	testCases := []struct {
		name       string
		drain      int
		multiplier float64
		wantLevel  combatant.FatigueLevel
		wantStrike int
		wantSpeed  float64
	}{
		{name: "still fresh", drain: 4, multiplier: 1, wantLevel: combatant.FatigueFresh, wantStrike: 0, wantSpeed: 1},
		{name: "winded", drain: 1, multiplier: 1, wantLevel: combatant.FatigueWinded, wantStrike: -1, wantSpeed: 1},
		{name: "grapple costs double", drain: 5, multiplier: fatigue.GrappleMultiplier, wantLevel: combatant.FatigueExhausted, wantStrike: -3, wantSpeed: 0.75},
		{name: "collapsing", drain: 10, multiplier: 1, wantLevel: combatant.FatigueCollapsing, wantStrike: -5, wantSpeed: 0.5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fatigue.Drain(s.fighter, tc.drain, tc.multiplier)
			fatigue.ApplyPenalties(s.fighter)

			s.Equal(tc.wantLevel, s.fighter.Fatigue.Level)
			s.Equal(tc.wantStrike, s.fighter.TempBonuses[fatigue.KeyStrike])
			s.InDelta(tc.wantSpeed, fatigue.SpeedMultiplier(s.fighter), 0.0001)
		})
	}

	s.Equal(0, s.fighter.Fatigue.CurrentStamina, "stamina floors at zero")
}

func (s *FatigueTestSuite) TestDrainReportsLevelChange() {
	s.False(fatigue.Drain(s.fighter, 1, 1))
	s.True(fatigue.Drain(s.fighter, 5, 1))
	s.False(fatigue.Drain(s.fighter, 0, 1), "defend costs nothing")
}
