package healing

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type AssessmentRepo interface {
	Create(dbc dbctx.Context, row *domain.Assessment) error
	// GetByID returns nil, nil when the assessment does not exist for userID.
	GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*domain.Assessment, error)
	ListByUserID(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*domain.Assessment, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) Create(dbc dbctx.Context, row *domain.Assessment) error {
	if row == nil {
		return nil
	}
	return dbc.DB(r.db).Create(row).Error
}

func (r *assessmentRepo) GetByID(dbc dbctx.Context, userID, id uuid.UUID) (*domain.Assessment, error) {
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, nil
	}
	var row domain.Assessment
	err := dbc.DB(r.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *assessmentRepo) ListByUserID(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*domain.Assessment, error) {
	var rows []*domain.Assessment
	if userID == uuid.Nil {
		return rows, nil
	}
	q := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
