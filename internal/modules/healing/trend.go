package healing

import "time"

const (
	DirectionImproving = "improving"
	DirectionDeclining = "declining"
	DirectionStable    = "stable"
)

// Trend is an ordinary least-squares fit over values indexed by position.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Direction string  `json:"direction"`
}

// LinearTrend fits y = slope*i + intercept with i the sample index. Real time
// spacing between samples is ignored.
func LinearTrend(ys []float64) Trend {
	n := len(ys)
	switch n {
	case 0:
		return Trend{Direction: DirectionStable}
	case 1:
		return Trend{Intercept: ys[0], Direction: DirectionStable}
	}
	meanX := float64(n-1) / 2
	meanY := 0.0
	for _, y := range ys {
		meanY += y
	}
	meanY /= float64(n)

	var num, den float64
	for i, y := range ys {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	return Trend{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		Direction: direction(slope),
	}
}

func direction(slope float64) string {
	switch {
	case slope > 0:
		return DirectionImproving
	case slope < 0:
		return DirectionDeclining
	default:
		return DirectionStable
	}
}

// ProgressPoint is the overall progress computed at one snapshot.
type ProgressPoint struct {
	Index    int       `json:"index"`
	Date     time.Time `json:"date"`
	Progress float64   `json:"progress"`
	Health   float64   `json:"health"`
}

// VelocityPoint is the progress change per day between consecutive snapshots.
type VelocityPoint struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Days     float64   `json:"days"`
	Velocity float64   `json:"velocity"`
}

// VelocitySeries divides each progress delta by the actual days between
// snapshots. Pairs with no elapsed time report zero velocity.
func VelocitySeries(points []ProgressPoint) []VelocityPoint {
	if len(points) < 2 {
		return []VelocityPoint{}
	}
	out := make([]VelocityPoint, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		days := daysBetween(prev.Date, cur.Date)
		v := 0.0
		if days > 0 {
			v = (cur.Progress - prev.Progress) / days
		}
		out = append(out, VelocityPoint{From: prev.Date, To: cur.Date, Days: days, Velocity: v})
	}
	return out
}

// Projection estimates when the next unachieved milestone will be reached.
type Projection struct {
	Milestone     Milestone `json:"milestone"`
	Remaining     float64   `json:"remaining"`
	EstimatedDays float64   `json:"estimated_days"`
}

// ProjectNextMilestone extrapolates linearly along slope. The slope comes from
// LinearTrend, so EstimatedDays is really measured in snapshot steps.
// Returns nil when progress is flat or falling, or every milestone is reached.
func ProjectNextMilestone(current, slope float64) *Projection {
	if slope <= 0 {
		return nil
	}
	for _, m := range milestones {
		if current >= m.Threshold {
			continue
		}
		remaining := m.Threshold - current
		return &Projection{
			Milestone:     m,
			Remaining:     remaining,
			EstimatedDays: remaining / slope,
		}
	}
	return nil
}

func daysBetween(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return b.Sub(a).Hours() / 24
}
