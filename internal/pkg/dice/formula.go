package dice

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Matches "2d6", "d8", "3D6+2", "1d4-1"
var formulaRegex = regexp.MustCompile(`^(\d*)d(\d+)\s*([+-]\s*\d+)?$`)

// Formula is a parsed damage expression: Count dice of Sides plus Modifier.
// A Count of zero means a flat value carried entirely by Modifier.
type Formula struct {
	Count    int
	Sides    int
	Modifier int
}

// String renders the formula in XdY+Z notation
func (f Formula) String() string {
	if f.Count == 0 {
		return strconv.Itoa(f.Modifier)
	}
	if f.Modifier == 0 {
		return fmt.Sprintf("%dd%d", f.Count, f.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", f.Count, f.Sides, f.Modifier)
}

// ParseFormula parses dice notation or a flat integer
func ParseFormula(notation string) (Formula, error) {
	s := strings.ToLower(strings.TrimSpace(notation))
	if s == "" {
		return Formula{}, fmt.Errorf("empty dice formula")
	}

	if flat, err := strconv.Atoi(s); err == nil {
		return Formula{Modifier: flat}, nil
	}

	matches := formulaRegex.FindStringSubmatch(s)
	if matches == nil {
		return Formula{}, fmt.Errorf("invalid dice formula: %q", notation)
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return Formula{}, fmt.Errorf("invalid dice count in %q", notation)
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil || sides <= 0 || count <= 0 {
		return Formula{}, fmt.Errorf("dice count and sides must be positive: %q", notation)
	}

	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(strings.ReplaceAll(matches[3], " ", ""))
		if err != nil {
			return Formula{}, fmt.Errorf("invalid modifier in %q", notation)
		}
	}

	return Formula{Count: count, Sides: sides, Modifier: modifier}, nil
}

// RollFormula rolls a dice expression. An unparsable expression yields 1 so
// that a bad weapon record cannot stall a melee round.
func (d *Dice) RollFormula(notation string) int {
	f, err := ParseFormula(notation)
	if err != nil {
		slog.Warn("Unparsable dice formula, using 1",
			"formula", notation,
			"error", err,
		)
		return 1
	}
	return d.RollParsed(f)
}

// RollParsed rolls an already-parsed formula
func (d *Dice) RollParsed(f Formula) int {
	return d.Sum(f.Count, f.Sides) + f.Modifier
}
