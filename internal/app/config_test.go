package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != "postgres" || cfg.MetricsCacheTTL != 10*time.Minute {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.RedisChannel != "milestones" || cfg.ScoreCacheSize != 512 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("METRICS_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("OTEL_SAMPLER_RATIO", "0.5")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DBDriver != "sqlite" || cfg.MetricsCacheTTL != 90*time.Second || cfg.OtelSampleRatio != 0.5 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("origins=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRejectsBadCacheSize(t *testing.T) {
	t.Setenv("SCORE_CACHE_SIZE", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error")
	}
}
