package healing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	module "github.com/yungbote/neurohealing-backend/internal/modules/healing"
)

// HealingSnapshot is a persisted point in a user's healing history.
type HealingSnapshot struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_snapshot_user_taken" json:"user_id"`
	AssessmentID *uuid.UUID `gorm:"type:uuid;index" json:"assessment_id,omitempty"`
	TakenAt      time.Time  `gorm:"column:taken_at;index:idx_snapshot_user_taken" json:"taken_at"`

	BrainImpacts datatypes.JSON `gorm:"column:brain_impacts;not null" json:"brain_impacts"`
	Responses    datatypes.JSON `gorm:"column:responses" json:"responses,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (HealingSnapshot) TableName() string { return "healing_snapshot" }

func (s *HealingSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// NewHealingSnapshot encodes a module snapshot for storage.
func NewHealingSnapshot(userID uuid.UUID, assessmentID *uuid.UUID, snap module.Snapshot) (*HealingSnapshot, error) {
	impacts, err := json.Marshal(snap.BrainImpacts)
	if err != nil {
		return nil, fmt.Errorf("encode brain impacts: %w", err)
	}
	row := &HealingSnapshot{
		UserID:       userID,
		AssessmentID: assessmentID,
		TakenAt:      snap.Date,
		BrainImpacts: datatypes.JSON(impacts),
	}
	if len(snap.Responses) > 0 {
		responses, err := json.Marshal(snap.Responses)
		if err != nil {
			return nil, fmt.Errorf("encode responses: %w", err)
		}
		row.Responses = datatypes.JSON(responses)
	}
	return row, nil
}

// ToSnapshot decodes the stored row back into the aggregator's shape.
func (s *HealingSnapshot) ToSnapshot() (module.Snapshot, error) {
	out := module.Snapshot{Date: s.TakenAt}
	if len(s.BrainImpacts) > 0 {
		if err := json.Unmarshal(s.BrainImpacts, &out.BrainImpacts); err != nil {
			return module.Snapshot{}, fmt.Errorf("decode brain impacts for snapshot %s: %w", s.ID, err)
		}
	}
	if len(s.Responses) > 0 {
		if err := json.Unmarshal(s.Responses, &out.Responses); err != nil {
			return module.Snapshot{}, fmt.Errorf("decode responses for snapshot %s: %w", s.ID, err)
		}
	}
	return out, nil
}
