// Package dice is the single source of randomness for combat resolution.
//
// Rolls are drawn from an rpg-toolkit dice.Roller. The default roller is
// backed by crypto/rand so outcomes cannot be precomputed by a client of a
// server-authoritative host. Tests substitute a Scripted roller.
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-melee/internal/pkg/dice Roller

import (
	"log/slog"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roller is the method set of rpg-toolkit's dice.Roller
type Roller interface {
	Roll(size int) (int, error)
	RollN(count, size int) ([]int, error)
}

// Dice rolls individual dice and formulas. A failed roll never aborts the
// caller: it is logged and treated as the die's minimum.
type Dice struct {
	roller Roller
}

// New creates Dice over roller. A nil roller uses the toolkit's crypto roller.
func New(roller Roller) *Dice {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	return &Dice{roller: roller}
}

// Roll rolls a single die with the given number of sides
func (d *Dice) Roll(sides int) int {
	if sides <= 1 {
		return 1
	}

	value, err := d.roller.Roll(sides)
	if err != nil {
		slog.Warn("Die roll failed, using minimum",
			"sides", sides,
			"error", err,
		)
		return 1
	}

	return clamp(value, 1, sides)
}

// RollN rolls count dice and returns the individual results
func (d *Dice) RollN(count, sides int) []int {
	if count <= 0 {
		return nil
	}

	values, err := d.roller.RollN(count, sides)
	if err != nil || len(values) != count {
		slog.Warn("Dice roll failed, using minimums",
			"count", count,
			"sides", sides,
			"error", err,
		)
		values = make([]int, count)
		for i := range values {
			values[i] = 1
		}
		return values
	}

	for i := range values {
		values[i] = clamp(values[i], 1, max(sides, 1))
	}
	return values
}

// D20 rolls a twenty-sided die
func (d *Dice) D20() int {
	return d.Roll(20)
}

// D6 rolls a six-sided die
func (d *Dice) D6() int {
	return d.Roll(6)
}

// Percentile rolls 1-100
func (d *Dice) Percentile() int {
	return d.Roll(100)
}

// Sum rolls count dice and totals them
func (d *Dice) Sum(count, sides int) int {
	total := 0
	for _, v := range d.RollN(count, sides) {
		total += v
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
