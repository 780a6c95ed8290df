package brainmap

// CatalogDuration describes one duration bucket for the assessment UI.
type CatalogDuration struct {
	Key        string  `json:"key"`
	Multiplier float64 `json:"multiplier"`
}

type CatalogData struct {
	Categories []TraumaCategory  `json:"categories"`
	Windows    []WindowProfile   `json:"windows"`
	Durations  []CatalogDuration `json:"durations"`
	Regions    []string          `json:"regions"`
}

// Catalog lists the inputs the tables understand, in stable order.
func (t *Tables) Catalog() CatalogData {
	out := CatalogData{
		Categories: t.CategoryIDs(),
		Regions:    CanonicalRegions(),
	}
	for _, w := range AllWindows() {
		if p, ok := t.Windows[w]; ok {
			out.Windows = append(out.Windows, p)
		}
	}
	for _, d := range AllDurations() {
		out.Durations = append(out.Durations, CatalogDuration{Key: d.String(), Multiplier: d.Multiplier()})
	}
	return out
}
