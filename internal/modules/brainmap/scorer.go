package brainmap

import (
	"math"
	"sort"
	"strings"
)

// RegionImpact is the computed impact on one canonical region.
type RegionImpact struct {
	Region               string                `json:"region"`
	Impact               float64               `json:"impact"`
	Level                string                `json:"level"`
	TraumaTypes          []TraumaCategory      `json:"trauma_types"`
	DevelopmentalPeriods []DevelopmentalWindow `json:"developmental_periods"`
}

type RankedRegion struct {
	Region string  `json:"region"`
	Impact float64 `json:"impact"`
}

type Summary struct {
	TotalACEs            int            `json:"total_aces"`
	TotalRegionsAffected int            `json:"total_regions_affected"`
	TopRegions           []RankedRegion `json:"top_regions"`
	ProtectiveFactors    bool           `json:"protective_factors"`
}

// Result holds the significant region impacts and their summary.
type Result struct {
	Impacts map[string]RegionImpact `json:"impacts"`
	Summary Summary                 `json:"summary"`
}

// Scorer maps answers to per-region impacts using a fixed set of tables.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	tables *Tables
}

func NewScorer(tables *Tables) *Scorer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Scorer{tables: tables}
}

var defaultScorer = NewScorer(nil)

// ScoreImpacts scores answers against the default tables.
func ScoreImpacts(answers Answers, sex BiologicalSex) Result {
	return defaultScorer.Score(answers, sex)
}

type regionAcc struct {
	impact  float64
	types   map[TraumaCategory]struct{}
	periods map[DevelopmentalWindow]struct{}
}

func (s *Scorer) Score(answers Answers, sex BiologicalSex) Result {
	acc := map[string]*regionAcc{}
	get := func(region string) *regionAcc {
		r, ok := acc[region]
		if !ok {
			r = &regionAcc{
				types:   map[TraumaCategory]struct{}{},
				periods: map[DevelopmentalWindow]struct{}{},
			}
			acc[region] = r
		}
		return r
	}

	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	aceCount := 0
	seenWindows := map[DevelopmentalWindow]struct{}{}
	for _, key := range keys {
		ans := answers[key]
		if !ans.Experienced {
			continue
		}
		cat := TraumaCategory(strings.ToLower(strings.TrimSpace(key)))
		weights, ok := s.tables.Categories[cat]
		if !ok {
			continue
		}
		aceCount++

		mult := ParseDuration(ans.Duration).Multiplier()
		windows := ans.windows()
		for _, w := range windows {
			seenWindows[w] = struct{}{}
		}
		for region, base := range weights {
			adjusted := base * mult
			r := get(region)
			if adjusted > r.impact {
				r.impact = adjusted
			}
			r.types[cat] = struct{}{}
			for _, w := range windows {
				r.periods[w] = struct{}{}
			}
		}
	}

	for _, w := range AllWindows() {
		if _, ok := seenWindows[w]; !ok {
			continue
		}
		profile, ok := s.tables.Windows[w]
		if !ok {
			continue
		}
		for _, region := range profile.Vulnerable {
			r := get(region)
			r.impact = math.Min(1, r.impact+s.tables.WindowBump)
			r.periods[w] = struct{}{}
		}
	}

	if profile, ok := s.tables.Sex[sex]; ok {
		for _, region := range profile.Vulnerable {
			if r, ok := acc[region]; ok {
				r.impact *= profile.HPAReactivity
			}
		}
	}

	protective := answers.HasProtectiveFactors()
	if protective {
		applyDiscount(acc, s.tables.ProtectiveDiscount)
	}

	impacts := make(map[string]RegionImpact, len(acc))
	for region, r := range acc {
		v := clamp01(r.impact)
		if v <= s.tables.SignificanceCutoff {
			continue
		}
		impacts[region] = RegionImpact{
			Region:               region,
			Impact:               v,
			Level:                ImpactLevel(v),
			TraumaTypes:          sortedTypes(r.types),
			DevelopmentalPeriods: sortedPeriods(r.periods),
		}
	}

	return Result{
		Impacts: impacts,
		Summary: Summary{
			TotalACEs:            aceCount,
			TotalRegionsAffected: len(impacts),
			TopRegions:           topRegions(impacts, s.tables.TopRegionLimit),
			ProtectiveFactors:    protective,
		},
	}
}

// applyDiscount scales every accumulated impact; it runs after all other adjustments.
func applyDiscount(acc map[string]*regionAcc, factor float64) {
	for _, r := range acc {
		r.impact *= factor
	}
}

// ImpactLevel buckets an impact for display.
func ImpactLevel(v float64) string {
	switch {
	case v >= 0.7:
		return "high"
	case v >= 0.5:
		return "moderate"
	default:
		return "mild"
	}
}

// topRegions sorts by impact descending; equal impacts fall back to region name.
func topRegions(impacts map[string]RegionImpact, limit int) []RankedRegion {
	out := make([]RankedRegion, 0, len(impacts))
	for region, ri := range impacts {
		out = append(out, RankedRegion{Region: region, Impact: ri.Impact})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Impact != out[j].Impact {
			return out[i].Impact > out[j].Impact
		}
		return out[i].Region < out[j].Region
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedTypes(m map[TraumaCategory]struct{}) []TraumaCategory {
	out := make([]TraumaCategory, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedPeriods(m map[DevelopmentalWindow]struct{}) []DevelopmentalWindow {
	out := make([]DevelopmentalWindow, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sortWindows(out)
	return out
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
