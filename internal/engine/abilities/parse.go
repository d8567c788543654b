// Package abilities normalizes free-text ability strings into the structured
// combatant.Abilities form. It runs once when a record is ingested; combat
// code only ever sees the parsed result.
package abilities

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
)

const (
	defaultResistance = 50
	defaultBioRegen   = "1d6"
	defaultAuraBonus  = 2
	defaultAuraRadius = 30
)

var (
	senseRe      = regexp.MustCompile(`(?i)^(night ?vision|dark ?vision|see (?:the )?invisible|keen (?:vision|hearing)|track by smell|sense evil|sense magic)\b`)
	resistRe     = regexp.MustCompile(`(?i)^resist(?:s|ant|ance)?(?: to)? ([a-z ]+?)(?:\s*\(?(\d+)\s*%\)?)?$`)
	imperviousRe = regexp.MustCompile(`(?i)^impervious to (.+)$`)
	immuneRe     = regexp.MustCompile(`(?i)^immun(?:e|ity) to (.+)$`)
	onlyByRe     = regexp.MustCompile(`(?i)^only (?:affected|harmed|hurt|damaged) by (.+)$`)
	movementRe   = regexp.MustCompile(`(?i)^(fly|flight|flies|swim|swims|climb|climbs|burrow|burrows|leap|leaps)\b`)
	bioRegenRe   = regexp.MustCompile(`(?i)^bio-?regenerat(?:es|ion)\s*:?\s*(\d*d\d+(?:\s*[+-]\s*\d+)?|\d+)?`)
	horrorRe     = regexp.MustCompile(`(?i)^horror factor\s*:?\s*(\d+)`)
	auraRe       = regexp.MustCompile(`(?i)^(?:courage aura|aura of courage)`)
	auraBonusRe  = regexp.MustCompile(`\+(\d+)`)
	auraRadiusRe = regexp.MustCompile(`(?i)(\d+)\s*(?:ft|feet|')`)
	handToHandRe = regexp.MustCompile(`(?i)^(?:hand to hand|h2h)\s*[:\-]?\s*(basic|expert|martial arts|assassin)`)
	skillRe      = regexp.MustCompile(`(?i)^([a-z][a-z /']*?)\s*:?\s*(\d{1,3})\s*%$`)
	listSplitRe  = regexp.MustCompile(`\s*(?:,|\band\b|/)\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var movementNames = map[string]string{
	"fly": "fly", "flight": "fly", "flies": "fly",
	"swim": "swim", "swims": "swim",
	"climb": "climb", "climbs": "climb",
	"burrow": "burrow", "burrows": "burrow",
	"leap": "leap", "leaps": "leap",
}

// Parse normalizes raw ability strings. It is pure and deterministic;
// unrecognized strings are skipped.
func Parse(raw []string) combatant.Abilities {
	var a combatant.Abilities

	for _, line := range raw {
		s := strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if s == "" {
			continue
		}

		switch {
		case horrorRe.MatchString(s):
			a.HorrorFactor = atoi(horrorRe.FindStringSubmatch(s)[1])
		case auraRe.MatchString(s):
			a.CourageAura = parseAura(s)
		case handToHandRe.MatchString(s):
			style := strings.ToLower(handToHandRe.FindStringSubmatch(s)[1])
			a.HandToHand = combatant.HandToHand(strings.ReplaceAll(style, " ", "_"))
		case bioRegenRe.MatchString(s):
			formula := bioRegenRe.FindStringSubmatch(s)[1]
			if _, err := dice.ParseFormula(formula); err != nil {
				formula = defaultBioRegen
			}
			a.Healing.BioRegen = strings.ReplaceAll(strings.ToLower(formula), " ", "")
		case imperviousRe.MatchString(s):
			a.ImperviousTo = appendUnique(a.ImperviousTo, splitList(imperviousRe.FindStringSubmatch(s)[1])...)
		case immuneRe.MatchString(s):
			a.Immunities = appendUnique(a.Immunities, splitList(immuneRe.FindStringSubmatch(s)[1])...)
		case onlyByRe.MatchString(s):
			a.OnlyAffectedBy = appendUnique(a.OnlyAffectedBy, splitList(onlyByRe.FindStringSubmatch(s)[1])...)
		case resistRe.MatchString(s):
			m := resistRe.FindStringSubmatch(s)
			pct := defaultResistance
			if m[2] != "" {
				pct = atoi(m[2])
			}
			if a.Resistances == nil {
				a.Resistances = make(map[string]int)
			}
			a.Resistances[normalize(m[1])] = pct
		case senseRe.MatchString(s):
			a.Senses = appendUnique(a.Senses, senseName(senseRe.FindStringSubmatch(s)[1]))
		case skillRe.MatchString(s):
			m := skillRe.FindStringSubmatch(s)
			if a.Skills == nil {
				a.Skills = make(map[string]int)
			}
			a.Skills[normalize(m[1])] = atoi(m[2])
		case movementRe.MatchString(s):
			a.Movement = appendUnique(a.Movement, movementNames[strings.ToLower(movementRe.FindStringSubmatch(s)[1])])
		default:
			slog.Debug("Unrecognized ability string", "ability", s)
		}
	}

	return a
}

func parseAura(s string) *combatant.CourageAura {
	aura := &combatant.CourageAura{Bonus: defaultAuraBonus, Radius: defaultAuraRadius}
	if m := auraBonusRe.FindStringSubmatch(s); m != nil {
		aura.Bonus = atoi(m[1])
	}
	if m := auraRadiusRe.FindStringSubmatch(s); m != nil {
		aura.Radius = float64(atoi(m[1]))
	}
	return aura
}

func senseName(s string) string {
	n := strings.ToLower(s)
	n = strings.ReplaceAll(n, "see the invisible", "see invisible")
	switch n {
	case "night vision":
		return "nightvision"
	case "dark vision":
		return "darkvision"
	}
	return strings.ReplaceAll(n, " ", "_")
}

func splitList(s string) []string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	var out []string
	for _, part := range listSplitRe.Split(s, -1) {
		if n := normalize(part); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range list {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			list = append(list, v)
		}
	}
	return list
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
