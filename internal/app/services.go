package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
	"github.com/yungbote/neurohealing-backend/internal/observability"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
	"github.com/yungbote/neurohealing-backend/internal/services"
)

type Services struct {
	Assessment services.AssessmentService
	Healing    services.HealingService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")
	healingService := services.NewHealingService(
		log,
		reposet.Snapshot,
		reposet.Celebration,
		clients.MetricsCache,
		clients.MilestoneBus,
		metrics,
	)
	assessmentService, err := services.NewAssessmentService(
		db,
		log,
		brainmap.NewScorer(brainmap.DefaultTables()),
		reposet.Assessment,
		healingService,
		cfg.ScoreCacheSize,
		metrics,
	)
	if err != nil {
		return Services{}, fmt.Errorf("init assessment service: %w", err)
	}
	return Services{Assessment: assessmentService, Healing: healingService}, nil
}
