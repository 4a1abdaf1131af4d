package classification

import (
	"fmt"
	"strings"
)

// Requirement says how many hole cards must take part in a three-card
// combination for a property to hold.
type Requirement uint8

const (
	// RequireNone accepts any qualifying combination, hole cards or not.
	RequireNone Requirement = iota
	// RequireAtLeastOne needs one or both hole cards in the combination.
	RequireAtLeastOne
	// RequireBoth needs both hole cards in the combination.
	RequireBoth
)

// Requirements lists the levels from weakest to strictest.
var Requirements = []Requirement{RequireNone, RequireAtLeastOne, RequireBoth}

func (r Requirement) String() string {
	switch r {
	case RequireNone:
		return "none"
	case RequireAtLeastOne:
		return "at-least-one"
	case RequireBoth:
		return "both"
	default:
		return fmt.Sprintf("Requirement(%d)", uint8(r))
	}
}

// ParseRequirement accepts a level name or its hole card count (0, 1, 2).
func ParseRequirement(s string) (Requirement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "any", "0":
		return RequireNone, nil
	case "at-least-one", "one", "1":
		return RequireAtLeastOne, nil
	case "both", "2":
		return RequireBoth, nil
	default:
		return 0, fmt.Errorf("invalid requirement %q: want none, at-least-one or both", s)
	}
}

// UnmarshalText lets flags and config decode a Requirement by name.
func (r *Requirement) UnmarshalText(text []byte) error {
	parsed, err := ParseRequirement(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText renders the level name.
func (r Requirement) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// satisfied applies the level to whether each hole card takes part.
// Values outside the three levels never match.
func (r Requirement) satisfied(first, second bool) bool {
	switch r {
	case RequireNone:
		return true
	case RequireAtLeastOne:
		return first || second
	case RequireBoth:
		return first && second
	default:
		return false
	}
}
