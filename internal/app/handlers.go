package app

import (
	"context"

	"gorm.io/gorm"

	httpH "github.com/yungbote/neurohealing-backend/internal/http/handlers"
	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Catalog    *httpH.CatalogHandler
	Assessment *httpH.AssessmentHandler
	Healing    *httpH.HealingHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, clients Clients, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	checks := []httpH.HealthCheck{{
		Name: "database",
		Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	if clients.Redis != nil {
		checks = append(checks, httpH.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return clients.Redis.Ping(ctx).Err() },
		})
	}
	return Handlers{
		Health:     httpH.NewHealthHandler(checks...),
		Catalog:    httpH.NewCatalogHandler(brainmap.DefaultTables()),
		Assessment: httpH.NewAssessmentHandler(serviceset.Assessment),
		Healing:    httpH.NewHealingHandler(serviceset.Healing),
	}
}
