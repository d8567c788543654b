// Package hitlocation maps an attack to a body location, scales damage by
// the location multiplier and applies the temporary and permanent injuries a
// hit of that size causes.
package hitlocation

import (
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

// Location is a body region
type Location string

const (
	LocationHead     Location = "head"
	LocationNeck     Location = "neck"
	LocationTorso    Location = "torso"
	LocationRightArm Location = "right_arm"
	LocationLeftArm  Location = "left_arm"
	LocationRightLeg Location = "right_leg"
	LocationLeftLeg  Location = "left_leg"
)

// Entry is one row of the hit table
type Entry struct {
	Location   Location
	Label      string
	Multiplier float64
	// Limb is empty for head, neck and torso
	Limb combatant.Limb
}

var table = []struct {
	max   int
	entry Entry
}{
	{2, Entry{Location: LocationHead, Label: "Head", Multiplier: 1.5}},
	{5, Entry{Location: LocationNeck, Label: "Neck/Shoulders", Multiplier: 1.25}},
	{10, Entry{Location: LocationTorso, Label: "Torso", Multiplier: 1.0}},
	{13, Entry{Location: LocationRightArm, Label: "Right Arm", Multiplier: 0.8, Limb: combatant.LimbRightArm}},
	{16, Entry{Location: LocationLeftArm, Label: "Left Arm", Multiplier: 0.8, Limb: combatant.LimbLeftArm}},
	{18, Entry{Location: LocationRightLeg, Label: "Right Leg", Multiplier: 0.75, Limb: combatant.LimbRightLeg}},
	{20, Entry{Location: LocationLeftLeg, Label: "Left Leg", Multiplier: 0.75, Limb: combatant.LimbLeftLeg}},
}

// FromD20 maps a raw d20 to its table row. Values outside 1-20 are clamped.
func FromD20(roll int) Entry {
	if roll < 1 {
		roll = 1
	}
	for _, row := range table {
		if roll <= row.max {
			return row.entry
		}
	}
	return table[len(table)-1].entry
}

// Roll rolls a random location
func Roll(d *dice.Dice) Entry {
	return FromD20(d.D20())
}

var aliases = map[string]Location{
	"head":           LocationHead,
	"neck":           LocationNeck,
	"shoulders":      LocationNeck,
	"neck/shoulders": LocationNeck,
	"torso":          LocationTorso,
	"chest":          LocationTorso,
	"body":           LocationTorso,
	"right arm":      LocationRightArm,
	"left arm":       LocationLeftArm,
	"right leg":      LocationRightLeg,
	"left leg":       LocationLeftLeg,
}

// Called maps a called-shot name ("Left Arm", "left_arm", "head") to its row
func Called(name string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "_", " ")))
	loc, ok := aliases[key]
	if !ok {
		return Entry{}, false
	}
	for _, row := range table {
		if row.entry.Location == loc {
			return row.entry, true
		}
	}
	return Entry{}, false
}

// IsHead reports whether a hit here can cause head trauma
func (e Entry) IsHead() bool {
	return e.Location == LocationHead || e.Location == LocationNeck
}
