package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
)

func TestParseActionType(t *testing.T) {
	testCases := []struct {
		in   string
		want engine.ActionType
		ok   bool
	}{
		{in: "strike", want: engine.ActionStrike, ok: true},
		{in: "Attack", want: engine.ActionStrike, ok: true},
		{in: " hold ", want: engine.ActionDefend, ok: true},
		{in: "cast", want: engine.ActionSpell, ok: true},
		{in: "psionic", want: engine.ActionPsionic, ok: true},
		{in: "dance", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := engine.ParseActionType(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestActionTypeValid(t *testing.T) {
	assert.True(t, engine.ActionGrapple.Valid())
	assert.False(t, engine.ActionType("attack").Valid(), "aliases are not canonical")
	assert.False(t, engine.ActionType("dance").Valid())
}

func TestNoDefenseNeverDefends(t *testing.T) {
	dec := engine.NoDefense{}.React(context.Background(), nil, nil, 20)
	assert.Equal(t, engine.DefenseNone, dec.Kind)
}
