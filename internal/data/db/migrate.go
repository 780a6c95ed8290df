package db

import (
	"fmt"

	"gorm.io/gorm"

	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Assessment{},
		&domain.HealingSnapshot{},
		&domain.MilestoneCelebration{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
