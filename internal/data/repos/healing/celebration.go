package healing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type CelebrationRepo interface {
	// Celebrate is idempotent; the first celebration time is kept.
	Celebrate(dbc dbctx.Context, userID uuid.UUID, milestoneKey string, at time.Time) (*domain.MilestoneCelebration, error)
	ListByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*domain.MilestoneCelebration, error)
}

type celebrationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCelebrationRepo(db *gorm.DB, baseLog *logger.Logger) CelebrationRepo {
	return &celebrationRepo{db: db, log: baseLog.With("repo", "CelebrationRepo")}
}

func (r *celebrationRepo) Celebrate(dbc dbctx.Context, userID uuid.UUID, milestoneKey string, at time.Time) (*domain.MilestoneCelebration, error) {
	row := &domain.MilestoneCelebration{
		UserID:       userID,
		MilestoneKey: milestoneKey,
		CelebratedAt: at.UTC(),
	}
	err := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "milestone_key"}},
			DoNothing: true,
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}
	var stored domain.MilestoneCelebration
	err = dbc.DB(r.db).
		Where("user_id = ? AND milestone_key = ?", userID, milestoneKey).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *celebrationRepo) ListByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*domain.MilestoneCelebration, error) {
	var rows []*domain.MilestoneCelebration
	if userID == uuid.Nil {
		return rows, nil
	}
	if err := dbc.DB(r.db).Where("user_id = ?", userID).Order("celebrated_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
