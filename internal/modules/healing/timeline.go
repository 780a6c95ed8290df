package healing

import (
	"sort"
	"time"
)

type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// RegionChange compares a region's first and latest recorded severity.
// A positive Change means the severity went down.
type RegionChange struct {
	Region string  `json:"region"`
	First  float64 `json:"first"`
	Latest float64 `json:"latest"`
	Change float64 `json:"change"`
}

// Timeline is the chart-ready view of a snapshot history.
type Timeline struct {
	Dates           []time.Time              `json:"dates"`
	Regions         map[string][]SeriesPoint `json:"regions"`
	Subscales       map[string][]SeriesPoint `json:"subscales"`
	SubscaleChanges map[string]float64       `json:"subscale_changes"`
	MostImproved    []RegionChange           `json:"most_improved"`
}

const mostImprovedLimit = 5

// BuildTimeline groups snapshot values per region and per survey subscale.
// Regions absent from a snapshot simply have no point for that date.
func BuildTimeline(snapshots []Snapshot) Timeline {
	tl := Timeline{
		Dates:           make([]time.Time, 0, len(snapshots)),
		Regions:         map[string][]SeriesPoint{},
		Subscales:       map[string][]SeriesPoint{},
		SubscaleChanges: map[string]float64{},
		MostImproved:    []RegionChange{},
	}
	for _, s := range snapshots {
		tl.Dates = append(tl.Dates, s.Date)
		for region, v := range s.impacts() {
			tl.Regions[region] = append(tl.Regions[region], SeriesPoint{Date: s.Date, Value: v})
		}
		for scale, v := range s.Responses {
			tl.Subscales[scale] = append(tl.Subscales[scale], SeriesPoint{Date: s.Date, Value: v})
		}
	}

	for scale, pts := range tl.Subscales {
		tl.SubscaleChanges[scale] = pts[len(pts)-1].Value - pts[0].Value
	}

	for region, pts := range tl.Regions {
		if len(pts) < 2 {
			continue
		}
		first, latest := pts[0].Value, pts[len(pts)-1].Value
		if first-latest <= 0 {
			continue
		}
		tl.MostImproved = append(tl.MostImproved, RegionChange{
			Region: region,
			First:  first,
			Latest: latest,
			Change: first - latest,
		})
	}
	sort.Slice(tl.MostImproved, func(i, j int) bool {
		a, b := tl.MostImproved[i], tl.MostImproved[j]
		if a.Change != b.Change {
			return a.Change > b.Change
		}
		return a.Region < b.Region
	})
	if len(tl.MostImproved) > mostImprovedLimit {
		tl.MostImproved = tl.MostImproved[:mostImprovedLimit]
	}
	return tl
}
