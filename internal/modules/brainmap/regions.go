package brainmap

import (
	"sort"
	"strings"
)

// Canonical anatomical region names. These are the join key for the
// visualization layer, so they must not drift.
const (
	SuperiorFrontal          = "Superior Frontal"
	RostralMiddleFrontal     = "Rostral Middle Frontal"
	CaudalMiddleFrontal      = "Caudal Middle Frontal"
	MedialOrbitofrontal      = "Medial Orbitofrontal"
	LateralOrbitofrontal     = "Lateral Orbitofrontal"
	ParsOpercularis          = "Pars Opercularis"
	ParsTriangularis         = "Pars Triangularis"
	Precentral               = "Precentral"
	Postcentral              = "Postcentral"
	SuperiorParietal         = "Superior Parietal"
	InferiorParietal         = "Inferior Parietal"
	Supramarginal            = "Supramarginal"
	Precuneus                = "Precuneus"
	SuperiorTemporal         = "Superior Temporal"
	MiddleTemporal           = "Middle Temporal"
	InferiorTemporal         = "Inferior Temporal"
	Fusiform                 = "Fusiform"
	Parahippocampal          = "Parahippocampal"
	Entorhinal               = "Entorhinal"
	LateralOccipital         = "Lateral Occipital"
	Lingual                  = "Lingual"
	RostralAnteriorCingulate = "Rostral Anterior Cingulate"
	CaudalAnteriorCingulate  = "Caudal Anterior Cingulate"
	PosteriorCingulate       = "Posterior Cingulate"
	IsthmusCingulate         = "Isthmus Cingulate"
	Insula                   = "Insula"
	Amygdala                 = "Amygdala"
	Hippocampus              = "Hippocampus"
	Thalamus                 = "Thalamus"
	Hypothalamus             = "Hypothalamus"
	Caudate                  = "Caudate"
	Putamen                  = "Putamen"
	Accumbens                = "Accumbens"
	Brainstem                = "Brainstem"
	Cerebellum               = "Cerebellum"
	CorpusCallosum           = "Corpus Callosum"
)

var canonicalRegions = []string{
	SuperiorFrontal, RostralMiddleFrontal, CaudalMiddleFrontal, MedialOrbitofrontal,
	LateralOrbitofrontal, ParsOpercularis, ParsTriangularis, Precentral, Postcentral,
	SuperiorParietal, InferiorParietal, Supramarginal, Precuneus, SuperiorTemporal,
	MiddleTemporal, InferiorTemporal, Fusiform, Parahippocampal, Entorhinal,
	LateralOccipital, Lingual, RostralAnteriorCingulate, CaudalAnteriorCingulate,
	PosteriorCingulate, IsthmusCingulate, Insula, Amygdala, Hippocampus, Thalamus,
	Hypothalamus, Caudate, Putamen, Accumbens, Brainstem, Cerebellum, CorpusCallosum,
}

// regionAliases maps normalized shorthand and legacy keys to canonical names.
// Keys are lower-case with spaces and hyphens folded to underscores.
var regionAliases = withCanonicalNames(map[string]string{
	"pfc":                  SuperiorFrontal,
	"prefrontal":           SuperiorFrontal,
	"prefrontal_cortex":    SuperiorFrontal,
	"frontal_lobe":         SuperiorFrontal,
	"dlpfc":                RostralMiddleFrontal,
	"dorsolateral_pfc":     RostralMiddleFrontal,
	"executive_network":    RostralMiddleFrontal,
	"fef":                  CaudalMiddleFrontal,
	"vmpfc":                MedialOrbitofrontal,
	"mpfc":                 MedialOrbitofrontal,
	"medial_prefrontal":    MedialOrbitofrontal,
	"ofc":                  LateralOrbitofrontal,
	"orbitofrontal":        LateralOrbitofrontal,
	"orbitofrontal_cortex": LateralOrbitofrontal,
	"broca":                ParsOpercularis,
	"brocas_area":          ParsOpercularis,
	"ifg":                  ParsTriangularis,
	"motor_cortex":         Precentral,
	"primary_motor":        Precentral,
	"somatosensory_cortex": Postcentral,
	"somatosensory":        Postcentral,
	"parietal":             SuperiorParietal,
	"parietal_lobe":        SuperiorParietal,
	"ipl":                  InferiorParietal,
	"tpj":                  Supramarginal,
	"wernicke":             SuperiorTemporal,
	"wernickes_area":       SuperiorTemporal,
	"auditory_cortex":      SuperiorTemporal,
	"temporal_lobe":        MiddleTemporal,
	"temporal":             MiddleTemporal,
	"itg":                  InferiorTemporal,
	"ffa":                  Fusiform,
	"face_area":            Fusiform,
	"phg":                  Parahippocampal,
	"erc":                  Entorhinal,
	"visual_cortex":        LateralOccipital,
	"occipital":            LateralOccipital,
	"occipital_lobe":       LateralOccipital,
	"acc":                  RostralAnteriorCingulate,
	"anterior_cingulate":   RostralAnteriorCingulate,
	"racc":                 RostralAnteriorCingulate,
	"dacc":                 CaudalAnteriorCingulate,
	"pcc":                  PosteriorCingulate,
	"posterior_cingulate":  PosteriorCingulate,
	"default_mode_network": PosteriorCingulate,
	"dmn":                  PosteriorCingulate,
	"insular_cortex":       Insula,
	"interoception":        Insula,
	"amygdala":             Amygdala,
	"amygdalae":            Amygdala,
	"fear_center":          Amygdala,
	"hippocampus":          Hippocampus,
	"hippocampal":          Hippocampus,
	"memory_center":        Hippocampus,
	"thalamus":             Thalamus,
	"hypothalamus":         Hypothalamus,
	"hpa_axis":             Hypothalamus,
	"stress_response":      Hypothalamus,
	"striatum":             Caudate,
	"dorsal_striatum":      Caudate,
	"basal_ganglia":        Putamen,
	"nucleus_accumbens":    Accumbens,
	"nacc":                 Accumbens,
	"ventral_striatum":     Accumbens,
	"reward_system":        Accumbens,
	"brain_stem":           Brainstem,
	"locus_coeruleus":      Brainstem,
	"cerebellar":           Cerebellum,
	"corpus_callosum":      CorpusCallosum,
	"cc":                   CorpusCallosum,
	"interhemispheric":     CorpusCallosum,
})

// withCanonicalNames makes every canonical name resolve to itself through its
// normalized form.
func withCanonicalNames(aliases map[string]string) map[string]string {
	for _, name := range canonicalRegions {
		key := normalizeKey(name)
		if _, ok := aliases[key]; !ok {
			aliases[key] = name
		}
	}
	return aliases
}

func normalizeKey(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(k)
	return k
}

// Canonicalize resolves a raw region key to its canonical anatomical name.
// Keys with no alias entry are returned unchanged so that novel keys still
// reach the visualization layer instead of being dropped.
func Canonicalize(rawKey string) string {
	if name, ok := regionAliases[normalizeKey(rawKey)]; ok {
		return name
	}
	return rawKey
}

// MergeMapping canonicalizes every key of raw. When several keys resolve to
// the same region the largest weight wins; weights are never summed.
func MergeMapping(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for key, weight := range raw {
		name := Canonicalize(key)
		if existing, ok := out[name]; ok {
			if weight > existing {
				out[name] = weight
			}
			continue
		}
		out[name] = weight
	}
	return out
}

// CanonicalRegions returns the canonical region names in alphabetical order.
func CanonicalRegions() []string {
	out := append([]string(nil), canonicalRegions...)
	sort.Strings(out)
	return out
}

// IsCanonical reports whether name is one of the fixed canonical region names.
func IsCanonical(name string) bool {
	for _, r := range canonicalRegions {
		if r == name {
			return true
		}
	}
	return false
}
