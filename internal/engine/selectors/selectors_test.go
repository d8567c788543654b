package selectors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/selectors"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

func fighter(id string, hp, maxHP int) *combatant.Combatant {
	return &combatant.Combatant{ID: id, Name: id, HP: hp, MaxHP: maxHP, Alive: true}
}

func TestMostWounded(t *testing.T) {
	ctx := context.Background()
	actor := fighter("a", 20, 20)

	tests := []struct {
		name     string
		targets  []*combatant.Combatant
		wantType engine.ActionType
		wantID   string
	}{
		{
			name:     "lowest fraction wins",
			targets:  []*combatant.Combatant{fighter("x", 10, 20), fighter("y", 9, 30), fighter("z", 15, 15)},
			wantType: engine.ActionStrike,
			wantID:   "y",
		},
		{
			name:     "ties keep initiative order",
			targets:  []*combatant.Combatant{fighter("x", 5, 10), fighter("y", 10, 20)},
			wantType: engine.ActionStrike,
			wantID:   "x",
		},
		{
			name:     "no targets holds",
			wantType: engine.ActionDefend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := selectors.MostWounded{}.SelectAction(ctx, actor, tt.targets, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, plan.Type)
			assert.Equal(t, tt.wantID, plan.TargetID)
		})
	}
}

func TestMostWoundedKeepsWrestling(t *testing.T) {
	actor := fighter("a", 20, 20)
	actor.Grapple = combatant.GrappleState{Status: combatant.GrappleControlled, OpponentID: "x"}

	plan, err := selectors.MostWounded{}.SelectAction(context.Background(), actor,
		[]*combatant.Combatant{fighter("x", 20, 20)}, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.ActionGrapple, plan.Type)
}

func TestCautiousDodgesWhenHurt(t *testing.T) {
	ctx := context.Background()
	targets := []*combatant.Combatant{fighter("x", 20, 20)}

	plan, err := selectors.Cautious{}.SelectAction(ctx, fighter("a", 4, 20), targets, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.ActionDodge, plan.Type)

	plan, err = selectors.Cautious{}.SelectAction(ctx, fighter("a", 15, 20), targets, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.ActionStrike, plan.Type)
	assert.Equal(t, "x", plan.TargetID)

	plan, err = selectors.Cautious{Threshold: 0.8}.SelectAction(ctx, fighter("a", 15, 20), targets, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.ActionDodge, plan.Type)
}
