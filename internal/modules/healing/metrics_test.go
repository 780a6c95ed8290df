package healing

import (
	"math"
	"testing"
	"time"

	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
)

const eps = 1e-9

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, nil)
	if m.OverallProgress != 0 || len(m.Regions) != 0 || m.SnapshotCount != 0 {
		t.Fatalf("metrics=%#v", m)
	}
	if len(m.Milestones) != len(Milestones()) {
		t.Fatalf("milestones=%d", len(m.Milestones))
	}
	for _, st := range m.Milestones {
		if st.Achieved || st.JustAchieved {
			t.Fatalf("milestone %s achieved on empty history", st.Key)
		}
	}
	if m.Trend.Direction != DirectionStable || m.NextMilestone != nil {
		t.Fatalf("trend=%#v next=%#v", m.Trend, m.NextMilestone)
	}
	if m.TotalMultiplier != 1 {
		t.Fatalf("multiplier=%v", m.TotalMultiplier)
	}
}

func TestAggregateHealingImprovesOverTime(t *testing.T) {
	snaps := []Snapshot{
		{Date: day(2025, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Hippocampus: Severity(0.8)}},
		{Date: day(2025, 7, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Hippocampus: Severity(0.5)}},
	}
	factors := []Factor{FactorTherapy, FactorExercise}

	first := Aggregate(snaps[:1], factors)
	second := Aggregate(snaps, factors)

	p1 := first.Regions[brainmap.Hippocampus].HealingProgress
	p2 := second.Regions[brainmap.Hippocampus].HealingProgress
	if !(p2 > p1) {
		t.Fatalf("healing progress did not increase: %v -> %v", p1, p2)
	}

	days := day(2025, 7, 1).Sub(day(2025, 1, 1)).Hours() / 24
	want := days * 0.15 / 365 * 1.3 * 1.25
	if math.Abs(p2-want) > eps {
		t.Fatalf("progress=%v want %v", p2, want)
	}
	h := second.Regions[brainmap.Hippocampus].CurrentHealth
	if math.Abs(h-(0.5+want)) > eps {
		t.Fatalf("health=%v want %v", h, 0.5+want)
	}
	if second.OverallProgress != p2 {
		t.Fatalf("overall=%v want %v", second.OverallProgress, p2)
	}
	if second.Trend.Direction != DirectionImproving {
		t.Fatalf("direction=%s", second.Trend.Direction)
	}
}

func TestAggregateMilestones(t *testing.T) {
	snaps := []Snapshot{
		{Date: day(2025, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Hippocampus: Severity(0.8)}},
		{Date: day(2025, 7, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Hippocampus: Severity(0.5)}},
	}
	m := Aggregate(snaps, []Factor{FactorTherapy, FactorExercise})

	byKey := map[string]MilestoneStatus{}
	for _, st := range m.Milestones {
		byKey[st.Key] = st
	}
	if st := byKey["first_steps"]; !st.Achieved || !st.JustAchieved {
		t.Fatalf("first_steps=%#v (progress %v)", st, m.OverallProgress)
	}
	if st := byKey["building_momentum"]; st.Achieved || st.JustAchieved {
		t.Fatalf("building_momentum=%#v", st)
	}
	if len(m.RecentAchievements) != 1 || m.RecentAchievements[0].Key != "first_steps" {
		t.Fatalf("recent=%#v", m.RecentAchievements)
	}
	if m.NextMilestone == nil || m.NextMilestone.Milestone.Key != "building_momentum" {
		t.Fatalf("next=%#v", m.NextMilestone)
	}
	wantDays := (0.25 - m.OverallProgress) / m.Trend.Slope
	if math.Abs(m.NextMilestone.EstimatedDays-wantDays) > eps {
		t.Fatalf("estimated=%v want %v", m.NextMilestone.EstimatedDays, wantDays)
	}
}

func TestAggregateJustAchievedNeedsTwoSnapshots(t *testing.T) {
	m := Aggregate([]Snapshot{
		{Date: day(2020, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Cerebellum: Severity(0.9)}},
	}, allFactorIDs())
	for _, st := range m.Milestones {
		if st.JustAchieved {
			t.Fatalf("just achieved with one snapshot: %s", st.Key)
		}
	}
	if len(m.RecentAchievements) != 0 {
		t.Fatalf("recent=%v", m.RecentAchievements)
	}
}

func TestAggregateAlreadyAchievedIsNotJustAchieved(t *testing.T) {
	snaps := []Snapshot{
		{Date: day(2020, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Cerebellum: Severity(0.9)}},
		{Date: day(2022, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Cerebellum: Severity(0.6)}},
		{Date: day(2022, 2, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Cerebellum: Severity(0.5)}},
	}
	m := Aggregate(snaps, nil)
	for _, st := range m.Milestones {
		if st.Key == "first_steps" {
			if !st.Achieved || st.JustAchieved {
				t.Fatalf("first_steps=%#v series=%#v", st, m.Series)
			}
		}
	}
}

func TestAggregateMissingSeverityIsModerate(t *testing.T) {
	m := Aggregate([]Snapshot{
		{Date: day(2025, 1, 1), BrainImpacts: map[string]SnapshotImpact{"amygdala": {}}},
	}, nil)
	rh, ok := m.Regions[brainmap.Amygdala]
	if !ok {
		t.Fatalf("amygdala key not canonicalized: %#v", m.Regions)
	}
	if rh.Impact != NeutralSeverity || rh.CurrentHealth != 0.5 {
		t.Fatalf("region=%#v", rh)
	}
}

func TestAggregateToleratesZeroDates(t *testing.T) {
	m := Aggregate([]Snapshot{
		{BrainImpacts: map[string]SnapshotImpact{brainmap.Amygdala: Severity(0.7)}},
		{BrainImpacts: map[string]SnapshotImpact{brainmap.Amygdala: Severity(math.NaN())}},
	}, []Factor{"unknown"})
	if m.OverallProgress != 0 {
		t.Fatalf("progress=%v", m.OverallProgress)
	}
	if len(m.Velocity) != 1 || m.Velocity[0].Velocity != 0 {
		t.Fatalf("velocity=%#v", m.Velocity)
	}
	if m.TotalMultiplier != 1 || len(m.ActiveFactors) != 0 {
		t.Fatalf("unknown factor applied: %v %v", m.TotalMultiplier, m.ActiveFactors)
	}
}

func TestAggregateBounds(t *testing.T) {
	snaps := []Snapshot{
		{Date: day(2000, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Amygdala: Severity(1.4), "Novel": Severity(-2)}},
		{Date: day(2025, 1, 1), BrainImpacts: map[string]SnapshotImpact{brainmap.Amygdala: Severity(0.1), "Novel": Severity(0.2)}},
	}
	m := Aggregate(snaps, allFactorIDs())
	for region, rh := range m.Regions {
		for name, v := range map[string]float64{"impact": rh.Impact, "progress": rh.HealingProgress, "health": rh.CurrentHealth, "base": rh.BaseHealing} {
			if v < 0 || v > 1 {
				t.Fatalf("%s %s=%v out of [0,1]", region, name, v)
			}
		}
	}
	if m.NextMilestone != nil {
		t.Fatalf("fully healed history should have no next milestone: %#v", m.NextMilestone)
	}
}

// Factors2IDs returns every catalog factor id.
func allFactorIDs() []Factor {
	var out []Factor
	for _, f := range Factors() {
		out = append(out, f.ID)
	}
	return out
}
