package healing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is one scored trauma questionnaire. Answers holds the raw
// questionnaire, Impacts and Summary the scorer output at the time of scoring.
type Assessment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BiologicalSex string    `gorm:"column:biological_sex" json:"biological_sex,omitempty"`

	Answers datatypes.JSON `gorm:"column:answers;not null" json:"answers"`
	Impacts datatypes.JSON `gorm:"column:impacts;not null" json:"impacts"`
	Summary datatypes.JSON `gorm:"column:summary;not null" json:"summary"`

	TotalACEs       int `gorm:"column:total_aces;not null" json:"total_aces"`
	RegionsAffected int `gorm:"column:regions_affected;not null" json:"regions_affected"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Assessment) TableName() string { return "assessment" }

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
