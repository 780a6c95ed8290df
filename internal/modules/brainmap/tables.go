package brainmap

import (
	"sort"
	"strings"
)

// TraumaCategory names one adverse-experience type from the assessment catalog.
type TraumaCategory string

const (
	PhysicalAbuse      TraumaCategory = "physical_abuse"
	EmotionalAbuse     TraumaCategory = "emotional_abuse"
	SexualAbuse        TraumaCategory = "sexual_abuse"
	PhysicalNeglect    TraumaCategory = "physical_neglect"
	EmotionalNeglect   TraumaCategory = "emotional_neglect"
	DomesticViolence   TraumaCategory = "domestic_violence"
	SubstanceAbuse     TraumaCategory = "substance_abuse"
	MentalIllness      TraumaCategory = "mental_illness"
	ParentalSeparation TraumaCategory = "parental_separation"
	Incarceration      TraumaCategory = "incarceration"
)

// ProtectiveKey is the answers key that reports resilience-supporting circumstances.
const ProtectiveKey = "protective"

// WindowProfile describes what is developing during an age band.
type WindowProfile struct {
	Window         DevelopmentalWindow `json:"window"`
	Label          string              `json:"label"`
	CriticalSystem string              `json:"critical_system"`
	Vulnerable     []string            `json:"vulnerable_regions"`
}

// SexProfile holds the biological-sex reactivity modifier.
type SexProfile struct {
	HPAReactivity float64  `json:"hpa_reactivity"`
	Vulnerable    []string `json:"vulnerable_regions"`
}

// Tables is the static configuration the scorer reads. It is built once and
// never mutated; share it by pointer.
type Tables struct {
	Categories map[TraumaCategory]map[string]float64
	Windows    map[DevelopmentalWindow]WindowProfile
	Sex        map[BiologicalSex]SexProfile

	WindowBump         float64
	ProtectiveDiscount float64
	SignificanceCutoff float64
	TopRegionLimit     int
}

// NewTables canonicalizes raw region keys in every table. Duplicate targets in
// a category keep the larger weight.
func NewTables(
	categories map[TraumaCategory]map[string]float64,
	windows map[DevelopmentalWindow]WindowProfile,
	sex map[BiologicalSex]SexProfile,
) *Tables {
	t := &Tables{
		Categories:         make(map[TraumaCategory]map[string]float64, len(categories)),
		Windows:            make(map[DevelopmentalWindow]WindowProfile, len(windows)),
		Sex:                make(map[BiologicalSex]SexProfile, len(sex)),
		WindowBump:         0.1,
		ProtectiveDiscount: 0.85,
		SignificanceCutoff: 0.3,
		TopRegionLimit:     5,
	}
	for cat, raw := range categories {
		t.Categories[cat] = MergeMapping(raw)
	}
	for w, p := range windows {
		p.Window = w
		p.Vulnerable = canonicalSet(p.Vulnerable)
		t.Windows[w] = p
	}
	for s, p := range sex {
		p.Vulnerable = canonicalSet(p.Vulnerable)
		t.Sex[s] = p
	}
	return t
}

func canonicalSet(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		name := Canonicalize(r)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CategoryIDs returns the categories known to the tables, sorted.
func (t *Tables) CategoryIDs() []TraumaCategory {
	out := make([]TraumaCategory, 0, len(t.Categories))
	for c := range t.Categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultTables = NewTables(defaultCategoryWeights, defaultWindowProfiles, defaultSexProfiles)

// DefaultTables returns the shared professional ACE mapping.
func DefaultTables() *Tables { return defaultTables }

// Weights authored per trauma type from the neuroscience literature summary
// the clinical team maintains. Keys are shorthand and resolved at load.
var defaultCategoryWeights = map[TraumaCategory]map[string]float64{
	PhysicalAbuse: {
		"amygdala":        0.9,
		"hippocampus":     0.8,
		"pfc":             0.7,
		"acc":             0.6,
		"hpa_axis":        0.7,
		"insula":          0.5,
		"corpus_callosum": 0.4,
		"somatosensory":   0.45,
		"motor_cortex":    0.25,
		"thalamus":        0.35,
	},
	EmotionalAbuse: {
		"amygdala":             0.8,
		"mpfc":                 0.75,
		"hippocampus":          0.6,
		"acc":                  0.65,
		"default_mode_network": 0.6,
		"insula":               0.45,
		"wernicke":             0.4,
		"auditory_cortex":      0.5,
	},
	SexualAbuse: {
		"amygdala":        0.95,
		"hippocampus":     0.85,
		"somatosensory":   0.7,
		"pfc":             0.7,
		"hpa_axis":        0.8,
		"insula":          0.6,
		"visual_cortex":   0.45,
		"pcc":             0.55,
		"corpus_callosum": 0.5,
	},
	PhysicalNeglect: {
		"hippocampus":     0.6,
		"pfc":             0.55,
		"corpus_callosum": 0.6,
		"cerebellum":      0.45,
		"hypothalamus":    0.5,
		"brainstem":       0.35,
	},
	EmotionalNeglect: {
		"amygdala":          0.7,
		"vmpfc":             0.7,
		"ofc":               0.65,
		"acc":               0.55,
		"nucleus_accumbens": 0.5,
		"corpus_callosum":   0.45,
		"dmn":               0.5,
	},
	DomesticViolence: {
		"amygdala":        0.85,
		"hippocampus":     0.7,
		"visual_cortex":   0.55,
		"auditory_cortex": 0.5,
		"acc":             0.6,
		"hpa_axis":        0.7,
		"thalamus":        0.4,
	},
	SubstanceAbuse: {
		"nucleus_accumbens": 0.7,
		"ofc":               0.6,
		"pfc":               0.55,
		"amygdala":          0.6,
		"caudate":           0.45,
		"insula":            0.4,
	},
	MentalIllness: {
		"amygdala":    0.65,
		"hippocampus": 0.55,
		"mpfc":        0.6,
		"acc":         0.5,
		"hpa_axis":    0.55,
		"dlpfc":       0.45,
	},
	ParentalSeparation: {
		"amygdala":          0.6,
		"acc":               0.55,
		"vmpfc":             0.5,
		"hippocampus":       0.45,
		"nucleus_accumbens": 0.35,
	},
	Incarceration: {
		"amygdala":    0.55,
		"pfc":         0.45,
		"acc":         0.45,
		"hippocampus": 0.4,
		"dmn":         0.35,
	},
}

var defaultWindowProfiles = map[DevelopmentalWindow]WindowProfile{
	WindowInfancy: {
		Label:          "Infancy",
		CriticalSystem: "stress_response",
		Vulnerable:     []string{"amygdala", "hypothalamus", "brainstem", "thalamus", "hippocampus"},
	},
	WindowEarlyChildhood: {
		Label:          "Early childhood",
		CriticalSystem: "attachment",
		Vulnerable:     []string{"amygdala", "vmpfc", "acc", "insula"},
	},
	WindowMiddleChildhood: {
		Label:          "Middle childhood",
		CriticalSystem: "memory_and_learning",
		Vulnerable:     []string{"hippocampus", "corpus_callosum", "wernicke", "striatum"},
	},
	WindowEarlyAdolescence: {
		Label:          "Early adolescence",
		CriticalSystem: "executive_function",
		Vulnerable:     []string{"pfc", "dlpfc", "nucleus_accumbens", "basal_ganglia"},
	},
	WindowAdolescence: {
		Label:          "Adolescence",
		CriticalSystem: "identity_and_reward",
		Vulnerable:     []string{"dlpfc", "ofc", "nucleus_accumbens", "pcc", "pfc"},
	},
}

var defaultSexProfiles = map[BiologicalSex]SexProfile{
	SexMale: {
		HPAReactivity: 1.0,
		Vulnerable:    []string{"amygdala", "nucleus_accumbens", "pfc"},
	},
	SexFemale: {
		HPAReactivity: 1.3,
		Vulnerable:    []string{"amygdala", "hippocampus", "hpa_axis", "insula", "acc"},
	},
}

// BiologicalSex selects the reactivity modifier. Unrecognized values apply none.
type BiologicalSex string

const (
	SexMale    BiologicalSex = "male"
	SexFemale  BiologicalSex = "female"
	SexUnknown BiologicalSex = ""
)

// ParseSex accepts male/female in any case; everything else is SexUnknown.
func ParseSex(raw string) BiologicalSex {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m":
		return SexMale
	case "female", "f":
		return SexFemale
	default:
		return SexUnknown
	}
}
