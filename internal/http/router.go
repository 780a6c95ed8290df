package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/neurohealing-backend/internal/http/handlers"
	httpMW "github.com/yungbote/neurohealing-backend/internal/http/middleware"
	"github.com/yungbote/neurohealing-backend/internal/observability"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer

	HealthHandler     *httpH.HealthHandler
	CatalogHandler    *httpH.CatalogHandler
	AssessmentHandler *httpH.AssessmentHandler
	HealingHandler    *httpH.HealingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Metrics
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		if cfg.CatalogHandler != nil {
			api.GET("/catalog", cfg.CatalogHandler.GetCatalog)
		}

		if cfg.AssessmentHandler != nil {
			api.POST("/assessments/score", cfg.AssessmentHandler.Score)
		}
	}

	users := api.Group("/users/:user_id")
	{
		// Assessments
		if cfg.AssessmentHandler != nil {
			users.POST("/assessments", cfg.AssessmentHandler.Submit)
			users.GET("/assessments/:id", cfg.AssessmentHandler.Get)
			users.GET("/assessments/:id/impact.png", cfg.AssessmentHandler.ImpactChart)
		}

		// Healing
		if cfg.HealingHandler != nil {
			users.POST("/snapshots", cfg.HealingHandler.RecordSnapshot)
			users.GET("/healing", cfg.HealingHandler.GetMetrics)
			users.GET("/timeline", cfg.HealingHandler.GetTimeline)
			users.POST("/milestones/:key/celebrate", cfg.HealingHandler.Celebrate)
		}
	}

	return r
}
