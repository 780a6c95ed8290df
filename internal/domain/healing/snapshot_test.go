package healing

import (
	"testing"
	"time"

	"github.com/google/uuid"

	module "github.com/yungbote/neurohealing-backend/internal/modules/healing"
)

func TestHealingSnapshotRoundTrip(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	snap := module.Snapshot{
		Date: date,
		BrainImpacts: map[string]module.SnapshotImpact{
			"Amygdala":    module.Severity(0.8),
			"Hippocampus": {},
		},
		Responses: map[string]float64{"pcl5": 42},
	}
	row, err := NewHealingSnapshot(userID, nil, snap)
	if err != nil {
		t.Fatalf("NewHealingSnapshot: %v", err)
	}
	if row.UserID != userID || !row.TakenAt.Equal(date) {
		t.Fatalf("row=%+v", row)
	}
	got, err := row.ToSnapshot()
	if err != nil {
		t.Fatalf("ToSnapshot: %v", err)
	}
	if got.BrainImpacts["Amygdala"].Value() != 0.8 {
		t.Fatalf("amygdala=%v", got.BrainImpacts["Amygdala"].Value())
	}
	if got.BrainImpacts["Hippocampus"].Severity != nil {
		t.Fatalf("missing severity should stay missing")
	}
	if got.Responses["pcl5"] != 42 {
		t.Fatalf("responses=%v", got.Responses)
	}
}

func TestHealingSnapshotBadJSON(t *testing.T) {
	row := &HealingSnapshot{BrainImpacts: []byte("{not json")}
	if _, err := row.ToSnapshot(); err == nil {
		t.Fatalf("expected decode error")
	}
}
