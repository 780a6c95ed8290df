package app

import (
	"github.com/prometheus/client_golang/prometheus"

	apphttp "github.com/yungbote/neurohealing-backend/internal/http"
	"github.com/yungbote/neurohealing-backend/internal/observability"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlerset Handlers, metrics *observability.Metrics, gatherer prometheus.Gatherer) *apphttp.Server {
	log.Info("Wiring router...")
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = "neurohealing"
	}
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:               log,
		ServiceName:       serviceName,
		CORSOrigins:       cfg.CORSOrigins,
		Metrics:           metrics,
		Gatherer:          gatherer,
		HealthHandler:     handlerset.Health,
		CatalogHandler:    handlerset.Catalog,
		AssessmentHandler: handlerset.Assessment,
		HealingHandler:    handlerset.Healing,
	})
}
