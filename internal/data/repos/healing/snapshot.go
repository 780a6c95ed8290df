package healing

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type SnapshotRepo interface {
	Create(dbc dbctx.Context, row *domain.HealingSnapshot) error
	// ListByUserID returns the user's history oldest first.
	ListByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*domain.HealingSnapshot, error)
}

type snapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) SnapshotRepo {
	return &snapshotRepo{db: db, log: baseLog.With("repo", "SnapshotRepo")}
}

func (r *snapshotRepo) Create(dbc dbctx.Context, row *domain.HealingSnapshot) error {
	if row == nil {
		return nil
	}
	return dbc.DB(r.db).Create(row).Error
}

func (r *snapshotRepo) ListByUserID(dbc dbctx.Context, userID uuid.UUID) ([]*domain.HealingSnapshot, error) {
	var rows []*domain.HealingSnapshot
	if userID == uuid.Nil {
		return rows, nil
	}
	err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("taken_at ASC").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
