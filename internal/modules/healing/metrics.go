package healing

import (
	"sort"
	"time"
)

// RegionHealing is the healing state of one region at the latest snapshot.
type RegionHealing struct {
	Region          string  `json:"region"`
	Impact          float64 `json:"impact"`
	Rate            float64 `json:"rate"`
	ElapsedDays     float64 `json:"elapsed_days"`
	BaseHealing     float64 `json:"base_healing"`
	HealingProgress float64 `json:"healing_progress"`
	CurrentHealth   float64 `json:"current_health"`
}

type MilestoneStatus struct {
	Milestone
	Achieved     bool `json:"achieved"`
	JustAchieved bool `json:"just_achieved"`
}

// Metrics is the aggregate view over a snapshot history.
type Metrics struct {
	Regions            map[string]RegionHealing `json:"regions"`
	OverallProgress    float64                  `json:"overall_progress"`
	OverallHealth      float64                  `json:"overall_health"`
	ActiveFactors      []Factor                 `json:"active_factors"`
	TotalMultiplier    float64                  `json:"total_multiplier"`
	Milestones         []MilestoneStatus        `json:"milestones"`
	RecentAchievements []Milestone              `json:"recent_achievements"`
	Series             []ProgressPoint          `json:"series"`
	Trend              Trend                    `json:"trend"`
	Velocity           []VelocityPoint          `json:"velocity"`
	NextMilestone      *Projection              `json:"next_milestone"`
	SnapshotCount      int                      `json:"snapshot_count"`
}

// Aggregate derives healing metrics from snapshots ordered oldest first.
// It never fails: missing data falls back to neutral values.
func Aggregate(snapshots []Snapshot, active []Factor) Metrics {
	factors := DistinctKnown(active)
	mult := TotalMultiplier(factors)

	out := Metrics{
		Regions:            map[string]RegionHealing{},
		ActiveFactors:      factors,
		TotalMultiplier:    mult,
		RecentAchievements: []Milestone{},
		Series:             make([]ProgressPoint, 0, len(snapshots)),
		SnapshotCount:      len(snapshots),
	}

	origin := originDate(snapshots)
	for i, s := range snapshots {
		regions := regionHealing(s, elapsedDays(origin, s.Date), mult)
		progress, health := means(regions)
		out.Series = append(out.Series, ProgressPoint{Index: i, Date: s.Date, Progress: progress, Health: health})
		if i == len(snapshots)-1 {
			out.Regions = regions
			out.OverallProgress = progress
			out.OverallHealth = health
		}
	}

	prev := -1.0
	if n := len(out.Series); n >= 2 {
		prev = out.Series[n-2].Progress
	}
	out.Milestones = make([]MilestoneStatus, 0, len(milestones))
	for _, m := range milestones {
		st := MilestoneStatus{Milestone: m, Achieved: out.OverallProgress >= m.Threshold}
		st.JustAchieved = st.Achieved && prev >= 0 && prev < m.Threshold
		if st.JustAchieved {
			out.RecentAchievements = append(out.RecentAchievements, m)
		}
		out.Milestones = append(out.Milestones, st)
	}

	values := make([]float64, len(out.Series))
	for i, p := range out.Series {
		values[i] = p.Progress
	}
	out.Trend = LinearTrend(values)
	out.Velocity = VelocitySeries(out.Series)
	out.NextMilestone = ProjectNextMilestone(out.OverallProgress, out.Trend.Slope)
	return out
}

func regionHealing(s Snapshot, elapsed, mult float64) map[string]RegionHealing {
	impacts := s.impacts()
	out := make(map[string]RegionHealing, len(impacts))
	for region, impact := range impacts {
		rate := HealingRate(region)
		base := min(1, elapsed*rate/365)
		progress := min(1, base*mult)
		out[region] = RegionHealing{
			Region:          region,
			Impact:          impact,
			Rate:            rate,
			ElapsedDays:     elapsed,
			BaseHealing:     base,
			HealingProgress: progress,
			CurrentHealth:   clamp01((1 - impact) + progress),
		}
	}
	return out
}

// means returns the mean healing progress and mean current health.
func means(regions map[string]RegionHealing) (float64, float64) {
	if len(regions) == 0 {
		return 0, 0
	}
	// fixed order keeps float sums reproducible
	keys := make([]string, 0, len(regions))
	for k := range regions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var p, h float64
	for _, k := range keys {
		p += regions[k].HealingProgress
		h += regions[k].CurrentHealth
	}
	n := float64(len(regions))
	return p / n, h / n
}

// originDate is the first snapshot's date, or the earliest set date after it
// when the first one is missing.
func originDate(snapshots []Snapshot) time.Time {
	for _, s := range snapshots {
		if !s.Date.IsZero() {
			return s.Date
		}
	}
	return time.Time{}
}

func elapsedDays(origin, at time.Time) float64 {
	d := daysBetween(origin, at)
	if d < 0 {
		return 0
	}
	return d
}
