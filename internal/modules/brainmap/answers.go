package brainmap

import (
	"encoding/json"
	"strings"
)

// Experienced is the yes/no flag of an answer. It decodes "yes"/"no" strings as
// well as JSON booleans; anything unrecognized reads as "no".
type Experienced bool

func (e *Experienced) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*e = Experienced(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*e = false
		return nil
	}
	*e = Experienced(parseYes(s))
	return nil
}

func (e Experienced) MarshalJSON() ([]byte, error) {
	if e {
		return []byte(`"yes"`), nil
	}
	return []byte(`"no"`), nil
}

func parseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

// Answer is one respondent's report for a trauma category.
type Answer struct {
	Experienced Experienced `json:"experienced"`
	AgeRanges   []string    `json:"age_ranges,omitempty"`
	Duration    string      `json:"duration,omitempty"`
}

// Answers is keyed by trauma category id (or ProtectiveKey).
type Answers map[string]Answer

func (a Answer) windows() []DevelopmentalWindow {
	out := make([]DevelopmentalWindow, 0, len(a.AgeRanges))
	for _, raw := range a.AgeRanges {
		if w, ok := ParseWindow(raw); ok {
			out = append(out, w)
		}
	}
	return out
}

// HasProtectiveFactors reports whether the protective entry was answered yes.
func (a Answers) HasProtectiveFactors() bool {
	p, ok := a[ProtectiveKey]
	return ok && bool(p.Experienced)
}
