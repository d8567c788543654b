package combatant

// Side groups combatants; any two different sides are opposed
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Attributes are the eight core attribute scores
type Attributes struct {
	IQ  int `json:"iq" mapstructure:"iq"`
	ME  int `json:"me" mapstructure:"me"`
	MA  int `json:"ma" mapstructure:"ma"`
	PS  int `json:"ps" mapstructure:"ps"`
	PP  int `json:"pp" mapstructure:"pp"`
	PE  int `json:"pe" mapstructure:"pe"`
	PB  int `json:"pb" mapstructure:"pb"`
	Spd int `json:"spd" mapstructure:"spd"`
}

// Get returns an attribute by its short name ("PE", "iq", ...)
func (a Attributes) Get(name string) int {
	switch normalizeAttr(name) {
	case "IQ":
		return a.IQ
	case "ME":
		return a.ME
	case "MA":
		return a.MA
	case "PS":
		return a.PS
	case "PP":
		return a.PP
	case "PE":
		return a.PE
	case "PB":
		return a.PB
	case "SPD":
		return a.Spd
	}
	return 0
}

// Add shifts an attribute by delta and returns the new value
func (a *Attributes) Add(name string, delta int) int {
	var p *int
	switch normalizeAttr(name) {
	case "IQ":
		p = &a.IQ
	case "ME":
		p = &a.ME
	case "MA":
		p = &a.MA
	case "PS":
		p = &a.PS
	case "PP":
		p = &a.PP
	case "PE":
		p = &a.PE
	case "PB":
		p = &a.PB
	case "SPD":
		p = &a.Spd
	default:
		return 0
	}
	*p += delta
	return *p
}

func normalizeAttr(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Bonuses are the static combat bonuses from hand to hand, skills and gear
type Bonuses struct {
	Strike     int `json:"strike" mapstructure:"strike"`
	Parry      int `json:"parry" mapstructure:"parry"`
	Dodge      int `json:"dodge" mapstructure:"dodge"`
	Damage     int `json:"damage" mapstructure:"damage"`
	Initiative int `json:"initiative" mapstructure:"initiative"`
	Grapple    int `json:"grapple" mapstructure:"grapple"`
}

// Weapon is the readied weapon. Damage is dice notation.
type Weapon struct {
	Name      string `json:"name" mapstructure:"name"`
	Damage    string `json:"damage" mapstructure:"damage"`
	TwoHanded bool   `json:"two_handed" mapstructure:"two_handed"`
}

// Position is an optional location on the battlefield, in feet
type Position struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

// Size is the size category used for scale bonuses
type Size string

const (
	SizeTiny   Size = "tiny"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeGiant  Size = "giant"
)

// HandToHand styles drive attacks per melee
type HandToHand string

const (
	HandToHandNone        HandToHand = ""
	HandToHandBasic       HandToHand = "basic"
	HandToHandExpert      HandToHand = "expert"
	HandToHandMartialArts HandToHand = "martial_arts"
	HandToHandAssassin    HandToHand = "assassin"
)

// Limb identifies an injurable limb
type Limb string

const (
	LimbRightArm Limb = "right_arm"
	LimbLeftArm  Limb = "left_arm"
	LimbRightLeg Limb = "right_leg"
	LimbLeftLeg  Limb = "left_leg"
)

// AllLimbs in a stable order
var AllLimbs = []Limb{LimbRightArm, LimbLeftArm, LimbRightLeg, LimbLeftLeg}

// IsArm reports whether the limb is an arm
func (l Limb) IsArm() bool {
	return l == LimbRightArm || l == LimbLeftArm
}

// IsLeg reports whether the limb is a leg
func (l Limb) IsLeg() bool {
	return l == LimbRightLeg || l == LimbLeftLeg
}

// PermanentInjury is the lasting condition of a limb
type PermanentInjury string

const (
	InjuryNone     PermanentInjury = ""
	InjuryCrippled PermanentInjury = "crippled"
	InjurySevered  PermanentInjury = "severed"
)

// LimbState keeps the temporary and permanent conditions apart. Clearing
// one never touches the other.
type LimbState struct {
	TempDisabled bool            `json:"temp_disabled"`
	Permanent    PermanentInjury `json:"permanent,omitempty"`
	// SpeedLost is the Spd removed by a permanent leg injury, refunded on restore
	SpeedLost int `json:"speed_lost,omitempty"`
}

// Usable reports whether the limb can be used at all
func (l *LimbState) Usable() bool {
	return l == nil || (!l.TempDisabled && l.Permanent == InjuryNone)
}

// LimbPenalties is the derived temporary penalty set from disabled limbs
type LimbPenalties struct {
	Strike          int     `json:"strike"`
	Parry           int     `json:"parry"`
	Dodge           int     `json:"dodge"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	NoTwoHanded     bool    `json:"no_two_handed"`
}

// Trauma is the permanent injury record. It survives ClearLimbEffects.
type Trauma struct {
	Scars []string `json:"scars,omitempty"`
	// StatLoss is the total permanent loss per attribute
	StatLoss map[string]int `json:"stat_loss,omitempty"`
	// StatLossKeys records which one-time losses have already been applied
	StatLossKeys map[string]bool `json:"stat_loss_keys,omitempty"`
	// Penalties are permanent combat penalties keyed by source
	Penalties map[string]int `json:"penalties,omitempty"`
	Phobias   []string       `json:"phobias,omitempty"`
	Insanity  []string       `json:"insanity,omitempty"`
}

// HasScar reports whether a scar description is already recorded
func (t *Trauma) HasScar(desc string) bool {
	for _, s := range t.Scars {
		if s == desc {
			return true
		}
	}
	return false
}

// FatigueLevel is the ordinal depletion level
type FatigueLevel int

const (
	FatigueFresh FatigueLevel = iota
	FatigueWinded
	FatigueTired
	FatigueExhausted
	FatigueCollapsing
)

func (l FatigueLevel) String() string {
	switch l {
	case FatigueFresh:
		return "fresh"
	case FatigueWinded:
		return "winded"
	case FatigueTired:
		return "tired"
	case FatigueExhausted:
		return "exhausted"
	case FatigueCollapsing:
		return "collapsing"
	}
	return "unknown"
}

// FatiguePenalties is the penalty bundle for a fatigue level
type FatiguePenalties struct {
	Strike          int     `json:"strike"`
	Parry           int     `json:"parry"`
	Dodge           int     `json:"dodge"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
}

// FatigueState is the stamina pool
type FatigueState struct {
	MaxStamina     int              `json:"max_stamina"`
	CurrentStamina int              `json:"current_stamina"`
	Level          FatigueLevel     `json:"level"`
	Penalties      FatiguePenalties `json:"penalties"`
}

// GrappleStatus is the wrestling state of one combatant
type GrappleStatus string

const (
	GrappleNeutral    GrappleStatus = "NEUTRAL"
	GrappleGrappling  GrappleStatus = "GRAPPLING"
	GrappleControlled GrappleStatus = "CONTROLLED"
	GrappleProne      GrappleStatus = "PRONE"
	GrappleBrokenFree GrappleStatus = "BROKEN_FREE"
)

// GrappleState links a combatant to its grapple opponent
type GrappleState struct {
	Status     GrappleStatus `json:"status"`
	OpponentID string        `json:"opponent_id,omitempty"`
}

// Engaged reports whether the combatant is locked with someone
func (g GrappleState) Engaged() bool {
	switch g.Status {
	case GrappleGrappling, GrappleControlled, GrappleProne:
		return g.OpponentID != ""
	}
	return false
}

// MoraleStatus escalates and never improves on its own
type MoraleStatus string

const (
	MoraleSteady      MoraleStatus = "STEADY"
	MoraleShaken      MoraleStatus = "SHAKEN"
	MoraleRouted      MoraleStatus = "ROUTED"
	MoraleSurrendered MoraleStatus = "SURRENDERED"
)

// Severity orders morale states for escalation
func (m MoraleStatus) Severity() int {
	switch m {
	case MoraleShaken:
		return 1
	case MoraleRouted:
		return 2
	case MoraleSurrendered:
		return 3
	}
	return 0
}

// MoraleState tracks morale checks
type MoraleState struct {
	Status         MoraleStatus `json:"status"`
	Target         int          `json:"target"`
	FailedChecks   int          `json:"failed_checks"`
	LastCheckRound int          `json:"last_check_round"`
	LastReason     string       `json:"last_reason,omitempty"`
	// HorrorSaveFailed is set when the combatant failed a horror factor save
	HorrorSaveFailed bool `json:"horror_save_failed"`
}

// DeclaredDefense is a parry or dodge chosen as an action. It blocks
// incoming strikes whose roll does not beat Value until the defender acts again.
type DeclaredDefense struct {
	Kind  string `json:"kind"`
	Value int    `json:"value"`
}

// Penalty sums the permanent penalties for a stat ("strike", "parry",
// "dodge") across all sources. Keys are "<source>:<stat>".
func (t *Trauma) Penalty(stat string) int {
	total := 0
	suffix := ":" + stat
	for k, v := range t.Penalties {
		if len(k) > len(suffix) && k[len(k)-len(suffix):] == suffix {
			total += v
		}
	}
	return total
}
