package healing

import (
	"sort"
	"strings"
)

// Factor identifies a lifestyle or clinical intervention that speeds healing.
type Factor string

const (
	FactorTherapy            Factor = "therapy"
	FactorMeditation         Factor = "meditation"
	FactorExercise           Factor = "exercise"
	FactorSleep              Factor = "sleep"
	FactorNutrition          Factor = "nutrition"
	FactorSocialSupport      Factor = "social_support"
	FactorCreativeExpression Factor = "creative_expression"
)

type FactorInfo struct {
	ID          Factor  `json:"id"`
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

var factorCatalog = []FactorInfo{
	{FactorTherapy, "Therapy", 1.3, "Regular sessions with a trauma-informed clinician"},
	{FactorMeditation, "Meditation", 1.2, "Daily mindfulness or breathing practice"},
	{FactorExercise, "Exercise", 1.25, "Aerobic activity at least three times a week"},
	{FactorSleep, "Sleep", 1.15, "Consistent seven to nine hours of sleep"},
	{FactorNutrition, "Nutrition", 1.1, "Balanced, regular meals"},
	{FactorSocialSupport, "Social support", 1.2, "Trusted people to lean on"},
	{FactorCreativeExpression, "Creative expression", 1.15, "Art, music, writing or movement practice"},
}

// Factors returns the full factor catalog.
func Factors() []FactorInfo {
	return append([]FactorInfo(nil), factorCatalog...)
}

func LookupFactor(id Factor) (FactorInfo, bool) {
	for _, f := range factorCatalog {
		if f.ID == id {
			return f, true
		}
	}
	return FactorInfo{}, false
}

// ParseFactors splits a comma separated list. Unknown ids are kept; they are
// ignored when multipliers are computed.
func ParseFactors(raw string) []Factor {
	var out []Factor
	for _, part := range strings.Split(raw, ",") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		out = append(out, Factor(p))
	}
	return out
}

// DistinctKnown returns the known factors in active, deduplicated and in catalog order.
func DistinctKnown(active []Factor) []Factor {
	set := make(map[Factor]struct{}, len(active))
	for _, f := range active {
		set[f] = struct{}{}
	}
	out := make([]Factor, 0, len(set))
	for _, f := range factorCatalog {
		if _, ok := set[f.ID]; ok {
			out = append(out, f.ID)
		}
	}
	return out
}

// TotalMultiplier is the product of the multipliers of each distinct known factor.
func TotalMultiplier(active []Factor) float64 {
	total := 1.0
	for _, id := range DistinctKnown(active) {
		f, _ := LookupFactor(id)
		total *= f.Multiplier
	}
	return total
}

// SuggestFactors lists inactive factors, strongest multiplier first.
func SuggestFactors(active []Factor) []FactorInfo {
	on := make(map[Factor]struct{}, len(active))
	for _, f := range active {
		on[f] = struct{}{}
	}
	var out []FactorInfo
	for _, f := range factorCatalog {
		if _, ok := on[f.ID]; !ok {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Multiplier > out[j].Multiplier })
	return out
}
