package healing

import (
	"math"
	"time"

	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
)

// NeutralSeverity is assumed for a region whose severity is missing or invalid.
const NeutralSeverity = 0.5

// SnapshotImpact is a region's recorded severity in one snapshot.
type SnapshotImpact struct {
	Severity *float64 `json:"severity,omitempty"`
}

// Severity builds a SnapshotImpact with the given value.
func Severity(v float64) SnapshotImpact { return SnapshotImpact{Severity: &v} }

// Value returns the severity clamped to [0,1], or NeutralSeverity when unset.
func (s SnapshotImpact) Value() float64 {
	if s.Severity == nil || math.IsNaN(*s.Severity) {
		return NeutralSeverity
	}
	return clamp01(*s.Severity)
}

// Snapshot is one point-in-time assessment in a user's history.
type Snapshot struct {
	Date         time.Time                 `json:"date"`
	BrainImpacts map[string]SnapshotImpact `json:"brain_impacts"`
	Responses    map[string]float64        `json:"responses,omitempty"`
}

// impacts canonicalizes region keys; duplicate targets keep the larger severity.
func (s Snapshot) impacts() map[string]float64 {
	raw := make(map[string]float64, len(s.BrainImpacts))
	for k, v := range s.BrainImpacts {
		raw[k] = v.Value()
	}
	return brainmap.MergeMapping(raw)
}

// SnapshotFromResult records a scoring result as a snapshot taken at date.
func SnapshotFromResult(res brainmap.Result, date time.Time, responses map[string]float64) Snapshot {
	impacts := make(map[string]SnapshotImpact, len(res.Impacts))
	for region, ri := range res.Impacts {
		impacts[region] = Severity(ri.Impact)
	}
	return Snapshot{Date: date, BrainImpacts: impacts, Responses: responses}
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
