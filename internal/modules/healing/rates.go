package healing

import "github.com/yungbote/neurohealing-backend/internal/modules/brainmap"

// DefaultHealingRate applies to regions without a tabulated rate.
const DefaultHealingRate = 0.12

// Fraction of full recovery per year, before factor multipliers.
var healingRates = map[string]float64{
	brainmap.Amygdala:                 0.12,
	brainmap.Hippocampus:              0.15,
	brainmap.Hypothalamus:             0.10,
	brainmap.Thalamus:                 0.11,
	brainmap.Brainstem:                0.10,
	brainmap.SuperiorFrontal:          0.14,
	brainmap.RostralMiddleFrontal:     0.14,
	brainmap.CaudalMiddleFrontal:      0.14,
	brainmap.MedialOrbitofrontal:      0.13,
	brainmap.LateralOrbitofrontal:     0.13,
	brainmap.RostralAnteriorCingulate: 0.16,
	brainmap.CaudalAnteriorCingulate:  0.16,
	brainmap.PosteriorCingulate:       0.15,
	brainmap.Insula:                   0.14,
	brainmap.Accumbens:                0.17,
	brainmap.Caudate:                  0.15,
	brainmap.Putamen:                  0.15,
	brainmap.CorpusCallosum:           0.10,
	brainmap.Cerebellum:               0.18,
	brainmap.SuperiorTemporal:         0.13,
	brainmap.LateralOccipital:         0.12,
	brainmap.Postcentral:              0.13,
}

// HealingRate returns the yearly healing rate for a canonical region.
func HealingRate(region string) float64 {
	if r, ok := healingRates[region]; ok {
		return r
	}
	return DefaultHealingRate
}
