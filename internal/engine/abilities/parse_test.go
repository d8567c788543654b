package abilities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-melee/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
)

func TestParse(t *testing.T) {
	raw := []string{
		"Nightvision 90 ft",
		"See the Invisible",
		"Resistant to fire (50%)",
		"Resistance to cold",
		"Impervious to poison and disease",
		"Immune to fear, sleep",
		"Only affected by silver and magic",
		"Fly",
		"Swims",
		"Bio-Regeneration 2D6",
		"Horror Factor: 14",
		"Aura of courage +3 within 20 ft",
		"Hand to Hand: Martial Arts",
		"Prowl 45%",
		"Climb 60%",
		"Sings beautifully",
		"",
	}

	a := abilities.Parse(raw)

	assert.Equal(t, []string{"nightvision", "see_invisible"}, a.Senses)
	assert.Equal(t, map[string]int{"fire": 50, "cold": 50}, a.Resistances)
	assert.Equal(t, []string{"poison", "disease"}, a.ImperviousTo)
	assert.Equal(t, []string{"fear", "sleep"}, a.Immunities)
	assert.Equal(t, []string{"silver", "magic"}, a.OnlyAffectedBy)
	assert.Equal(t, []string{"fly", "swim"}, a.Movement)
	assert.Equal(t, "2d6", a.Healing.BioRegen)
	assert.Equal(t, 14, a.HorrorFactor)
	assert.Equal(t, &combatant.CourageAura{Bonus: 3, Radius: 20}, a.CourageAura)
	assert.Equal(t, combatant.HandToHandMartialArts, a.HandToHand)
	assert.Equal(t, map[string]int{"prowl": 45, "climb": 60}, a.Skills)

	assert.True(t, a.ImmuneTo("Poison"))
	assert.True(t, a.HasSense("nightvision"))
}

func TestParseIsDeterministic(t *testing.T) {
	raw := []string{"Immune to stun", "Climbs sheer walls", "Bio-regenerates", "Courage aura"}

	first := abilities.Parse(raw)
	second := abilities.Parse(raw)

	assert.Equal(t, first, second)
	assert.Equal(t, "1d6", first.Healing.BioRegen)
	assert.Equal(t, &combatant.CourageAura{Bonus: 2, Radius: 30}, first.CourageAura)
	assert.Equal(t, []string{"climb"}, first.Movement)
	assert.Nil(t, first.Skills)
}

func TestParseEmpty(t *testing.T) {
	assert.Equal(t, combatant.Abilities{}, abilities.Parse(nil))
}
