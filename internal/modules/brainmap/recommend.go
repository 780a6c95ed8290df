package brainmap

// Recommendation pairs an affected region with evidence-informed practices
// the insights UI can surface.
type Recommendation struct {
	Region        string   `json:"region"`
	Impact        float64  `json:"impact"`
	Focus         string   `json:"focus"`
	Interventions []string `json:"interventions"`
}

type regionGuidance struct {
	focus         string
	interventions []string
}

var guidance = map[string]regionGuidance{
	Amygdala: {
		focus:         "threat response and hypervigilance",
		interventions: []string{"paced breathing", "bilateral tapping", "safe-space visualization"},
	},
	Hippocampus: {
		focus:         "memory consolidation and context",
		interventions: []string{"aerobic exercise", "sleep hygiene", "narrative exposure work"},
	},
	Hypothalamus: {
		focus:         "stress hormone regulation",
		interventions: []string{"regular sleep schedule", "slow breathing", "nature exposure"},
	},
	SuperiorFrontal: {
		focus:         "executive control",
		interventions: []string{"mindfulness practice", "working-memory games", "structured routines"},
	},
	RostralMiddleFrontal: {
		focus:         "planning and attention",
		interventions: []string{"attention training", "goal setting", "mindfulness practice"},
	},
	MedialOrbitofrontal: {
		focus:         "emotional valuation and self-worth",
		interventions: []string{"compassion-focused exercises", "journaling", "therapy"},
	},
	LateralOrbitofrontal: {
		focus:         "impulse regulation",
		interventions: []string{"urge surfing", "delay-of-gratification games", "therapy"},
	},
	RostralAnteriorCingulate: {
		focus:         "emotion regulation",
		interventions: []string{"loving-kindness meditation", "emotion labeling", "yoga"},
	},
	CaudalAnteriorCingulate: {
		focus:         "conflict monitoring",
		interventions: []string{"focused attention meditation", "cognitive flexibility games"},
	},
	PosteriorCingulate: {
		focus:         "self-referential rumination",
		interventions: []string{"open monitoring meditation", "behavioral activation"},
	},
	Insula: {
		focus:         "body awareness",
		interventions: []string{"body scan", "interoceptive breathing", "gentle movement"},
	},
	Accumbens: {
		focus:         "reward and motivation",
		interventions: []string{"pleasant activity scheduling", "social connection", "exercise"},
	},
	CorpusCallosum: {
		focus:         "interhemispheric integration",
		interventions: []string{"bilateral tapping", "cross-body movement", "music practice"},
	},
	SuperiorTemporal: {
		focus:         "sensitivity to voices and tone",
		interventions: []string{"calming soundscapes", "music therapy"},
	},
	LateralOccipital: {
		focus:         "visual intrusions",
		interventions: []string{"imagery rescripting", "safe-space visualization"},
	},
	Postcentral: {
		focus:         "body sensation",
		interventions: []string{"somatic grounding", "progressive muscle relaxation"},
	},
}

var fallbackGuidance = regionGuidance{
	focus:         "general regulation",
	interventions: []string{"therapy", "mindfulness practice", "sleep hygiene"},
}

// Recommend builds one recommendation per top region in summary order.
func Recommend(res Result) []Recommendation {
	out := make([]Recommendation, 0, len(res.Summary.TopRegions))
	for _, top := range res.Summary.TopRegions {
		g, ok := guidance[top.Region]
		if !ok {
			g = fallbackGuidance
		}
		out = append(out, Recommendation{
			Region:        top.Region,
			Impact:        top.Impact,
			Focus:         g.focus,
			Interventions: append([]string(nil), g.interventions...),
		})
	}
	return out
}
