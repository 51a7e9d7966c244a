package engine

// Strength grades an ordering. Comparisons between two instantiations use
// the weakest strength among the tag ordering and every payload ordering
// involved.
type Strength uint8

const (
	StrengthNone Strength = iota
	StrengthPartial
	StrengthWeak
	StrengthStrong
)

var strengthNames = [...]string{
	StrengthNone:    "none",
	StrengthPartial: "partial",
	StrengthWeak:    "weak",
	StrengthStrong:  "strong",
}

func (s Strength) String() string {
	if int(s) < len(strengthNames) {
		return strengthNames[s]
	}
	return "unknown"
}

// Ordered reports whether the strength admits any ordering at all.
func (s Strength) Ordered() bool {
	return s != StrengthNone
}

// Weakest returns the weaker of two strengths.
func Weakest(a, b Strength) Strength {
	if b < a {
		return b
	}
	return a
}
