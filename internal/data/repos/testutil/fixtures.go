package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
)

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *domain.Assessment {
	tb.Helper()
	a := &domain.Assessment{
		UserID:          userID,
		BiologicalSex:   "female",
		Answers:         datatypes.JSON([]byte(`{"physical_abuse":{"experienced":"yes"}}`)),
		Impacts:         datatypes.JSON([]byte(`{}`)),
		Summary:         datatypes.JSON([]byte(`{}`)),
		TotalACEs:       1,
		RegionsAffected: 0,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func SeedSnapshot(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, takenAt time.Time, impacts string) *domain.HealingSnapshot {
	tb.Helper()
	s := &domain.HealingSnapshot{
		UserID:       userID,
		TakenAt:      takenAt,
		BrainImpacts: datatypes.JSON([]byte(impacts)),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed snapshot: %v", err)
	}
	return s
}
