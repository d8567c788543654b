package melee

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-melee/internal/engine/fatigue"
	"github.com/KirkDiggler/rpg-melee/internal/engine/grapple"
	"github.com/KirkDiggler/rpg-melee/internal/engine/hitlocation"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

// maxTieRerolls bounds the tie-break loop; anything still tied keeps roster order
const maxTieRerolls = 10

var attributeNames = []string{"IQ", "ME", "MA", "PS", "PP", "PE", "PB", "Spd"}

var handToHandStyles = []string{
	string(combatant.HandToHandNone),
	string(combatant.HandToHandBasic),
	string(combatant.HandToHandExpert),
	string(combatant.HandToHandMartialArts),
	string(combatant.HandToHandAssassin),
}

var sizes = []string{
	"",
	string(combatant.SizeTiny),
	string(combatant.SizeSmall),
	string(combatant.SizeMedium),
	string(combatant.SizeLarge),
	string(combatant.SizeGiant),
}

var sizeBonuses = map[combatant.Size]combatant.Bonuses{
	combatant.SizeTiny:  {Dodge: 3, Damage: -2, Grapple: -3},
	combatant.SizeSmall: {Dodge: 1, Damage: -1, Grapple: -1},
	combatant.SizeLarge: {Dodge: -1, Damage: 2, Grapple: 2},
	combatant.SizeGiant: {Dodge: -2, Damage: 4, Grapple: 4},
}

// InitializeCombat validates the roster, builds the arena, rolls initiative
// and runs the pre-combat horror pass
func (e *Engine) InitializeCombat(ctx context.Context, input *engine.InitializeCombatInput) (*engine.InitializeCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil, errors.FailedPrecondition("combat already initialized")
	}

	if err := validateFighters(input.Fighters); err != nil {
		return nil, err
	}

	hits, err := hitlocation.NewResolver(&hitlocation.Config{
		Dice:       e.dice,
		Status:     e.status,
		HeadTrauma: input.Options.HeadTrauma,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hit location resolver")
	}
	e.hits = hits
	e.opts = input.Options
	e.wards = append([]morale.Ward(nil), input.Options.Wards...)

	roster := make([]*combatant.Combatant, 0, len(input.Fighters))
	for _, rec := range input.Fighters {
		c := normalize(rec)
		fatigue.Initialize(c)
		grapple.Initialize(c)
		e.arena[c.ID] = c
		roster = append(roster, c)
	}

	e.order = e.rollInitiative(ctx, roster)
	e.started = true

	slog.Info("Combat initialized",
		"fighters", len(roster),
		"first", e.order[0])

	e.horrorPass(ctx)

	out := &engine.InitializeCombatOutput{Order: make([]engine.InitiativeEntry, 0, len(e.order))}
	for _, c := range e.ordered() {
		out.Order = append(out.Order, engine.InitiativeEntry{
			ID:         c.ID,
			Name:       c.Name,
			Initiative: c.Initiative,
			Tiebreak:   c.InitiativeTiebreak,
		})
	}
	return out, nil
}

func validateFighters(fighters []engine.FighterRecord) error {
	vb := errors.NewValidationBuilder()
	if len(fighters) == 0 {
		vb.RequiredField("fighters")
		return vb.Build()
	}

	seen := make(map[string]bool, len(fighters))
	for i, f := range fighters {
		p := fmt.Sprintf("fighters[%d]", i)

		errors.ValidateRequired(p+".id", f.ID, vb)
		if f.ID != "" && seen[f.ID] {
			vb.Field(p+".id", "is duplicated")
		}
		seen[f.ID] = true

		errors.ValidateRequired(p+".name", f.Name, vb)
		errors.ValidateRequired(p+".side", string(f.Side), vb)
		errors.ValidatePositive(p+".max_hp", f.MaxHP, vb)
		if f.HP > f.MaxHP {
			vb.Field(p+".hp", "exceeds max_hp")
		}
		if f.HP <= combatant.DeathThreshold {
			vb.Field(p+".hp", "is at or below the death threshold")
		}
		errors.ValidateRange(p+".level", f.Level, 0, 30, vb)
		errors.ValidateRange(p+".armor_rating", f.ArmorRating, 0, 30, vb)
		if f.AttacksPerMelee < 0 {
			vb.Field(p+".attacks_per_melee", "must not be negative")
		}
		for _, name := range attributeNames {
			errors.ValidateRange(p+".attributes."+name, f.Attributes.Get(name), 0, 100, vb)
		}
		if !contains(handToHandStyles, normalizeStyle(f.HandToHand)) {
			vb.Fieldf(p+".hand_to_hand", "must be one of: %s", strings.Join(handToHandStyles[1:], ", "))
		}
		if !contains(sizes, strings.ToLower(f.Size)) {
			vb.Fieldf(p+".size", "must be one of: %s", strings.Join(sizes[1:], ", "))
		}
		if f.Weapon != nil {
			errors.ValidateRequired(p+".weapon.name", f.Weapon.Name, vb)
		}
	}
	return vb.Build()
}

// normalize converts a validated record into the arena representation.
// Ability strings are parsed here, once.
func normalize(rec engine.FighterRecord) *combatant.Combatant {
	abil := abilities.Parse(rec.Abilities)

	style := combatant.HandToHand(normalizeStyle(rec.HandToHand))
	if style == combatant.HandToHandNone {
		style = abil.HandToHand
	}

	hp := rec.HP
	if hp == 0 {
		hp = rec.MaxHP
	}

	size := combatant.Size(strings.ToLower(rec.Size))
	if size == "" {
		size = combatant.SizeMedium
	}

	c := &combatant.Combatant{
		ID:             rec.ID,
		Name:           rec.Name,
		Side:           rec.Side,
		Species:        rec.Species,
		Alignment:      rec.Alignment,
		OCC:            rec.OCC,
		Level:          rec.Level,
		Classification: strings.ToLower(rec.Classification),
		HP:             hp,
		MaxHP:          rec.MaxHP,
		Alive:          true,
		Attributes:     rec.Attributes,
		BaseSpd:        rec.Attributes.Spd,
		ArmorRating:    rec.ArmorRating,
		HandToHand:     style,
		Bonuses:        rec.Bonuses,
		Abilities:      abil,
		Size:           size,
		SizeBonuses:    sizeBonuses[size],
		LimbPenalties:  combatant.LimbPenalties{SpeedMultiplier: 1},
		Morale:         combatant.MoraleState{Status: combatant.MoraleSteady},
		HorrorFactor:   rec.HorrorFactor,
		FearImmune:     rec.FearImmune,
		NeverFlee:      rec.NeverFlee,
	}
	if rec.Weapon != nil {
		w := *rec.Weapon
		c.Weapon = &w
	}
	if rec.Position != nil {
		p := *rec.Position
		c.Position = &p
	}

	c.AttacksPerMelee = AttacksPerMelee(style, rec.Level, rec.AttacksPerMelee)
	c.RemainingAttacks = c.AttacksPerMelee
	return c
}

// rollInitiative rolls d20 + hand to hand initiative bonus + PP modifier for
// everyone, rerolls only tied subsets (adding each reroll to the tiebreak),
// then sorts once, stable and descending.
func (e *Engine) rollInitiative(ctx context.Context, roster []*combatant.Combatant) []string {
	for _, c := range roster {
		natural := e.dice.D20()
		c.Initiative = natural + c.Bonuses.Initiative + floorDiv(c.Attributes.PP-10, 2)
		e.logf(ctx, engine.LogInitiative, "%s rolls initiative %d (d20 %d)", c.Name, c.Initiative, natural)
	}

	for i := 0; i < maxTieRerolls; i++ {
		tied := tiedSubset(roster)
		if len(tied) == 0 {
			break
		}
		for _, c := range tied {
			reroll := e.dice.D20()
			c.InitiativeTiebreak += reroll
			e.logf(ctx, engine.LogInitiative, "%s rerolls a tie: %d (tiebreak %d)", c.Name, reroll, c.InitiativeTiebreak)
		}
	}

	sorted := append([]*combatant.Combatant(nil), roster...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Initiative != sorted[j].Initiative {
			return sorted[i].Initiative > sorted[j].Initiative
		}
		return sorted[i].InitiativeTiebreak > sorted[j].InitiativeTiebreak
	})

	order := make([]string, len(sorted))
	for i, c := range sorted {
		order[i] = c.ID
	}
	return order
}

// tiedSubset returns every combatant sharing initiative and tiebreak with
// someone else, in roster order
func tiedSubset(roster []*combatant.Combatant) []*combatant.Combatant {
	type key struct{ init, tie int }
	counts := make(map[key]int, len(roster))
	for _, c := range roster {
		counts[key{c.Initiative, c.InitiativeTiebreak}]++
	}

	var tied []*combatant.Combatant
	for _, c := range roster {
		if counts[key{c.Initiative, c.InitiativeTiebreak}] > 1 {
			tied = append(tied, c)
		}
	}
	return tied
}

// horrorPass lets every horrifying creature be sighted by the opponents who
// can see it and have not seen it before. It runs before the first round and
// again after each move.
func (e *Engine) horrorPass(ctx context.Context) {
	all := e.ordered()
	for _, creature := range all {
		if morale.HorrorRating(creature) <= 0 {
			continue
		}
		var opponents []*combatant.Combatant
		for _, o := range all {
			if creature.Opposes(o) {
				opponents = append(opponents, o)
			}
		}
		e.morale.TriggerHorrorFactor(creature, opponents, e.opts.Terrain, e.narrator(ctx, engine.LogMorale), morale.HorrorOptions{})
	}
}

func normalizeStyle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "hand to hand:")
	s = strings.TrimPrefix(s, "hand to hand")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "_")
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
