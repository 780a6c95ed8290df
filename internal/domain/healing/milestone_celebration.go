package healing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneCelebration records that the UI has celebrated a milestone for a
// user. At most one row exists per (user, milestone).
type MilestoneCelebration struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_milestone" json:"user_id"`
	MilestoneKey string    `gorm:"column:milestone_key;not null;uniqueIndex:idx_user_milestone" json:"milestone_key"`
	CelebratedAt time.Time `gorm:"column:celebrated_at;not null" json:"celebrated_at"`
}

func (MilestoneCelebration) TableName() string { return "milestone_celebration" }

func (m *MilestoneCelebration) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
