package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/yungbote/neurohealing-backend/internal/clients/redis"
	repos "github.com/yungbote/neurohealing-backend/internal/data/repos/healing"
	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
	"github.com/yungbote/neurohealing-backend/internal/observability"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/neurohealing-backend/internal/pkg/errors"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

// HealingView is the healing dashboard payload.
type HealingView struct {
	healing.Metrics
	Celebrated       map[string]bool      `json:"celebrated"`
	SuggestedFactors []healing.FactorInfo `json:"suggested_factors"`
}

type HealingService interface {
	RecordSnapshot(dbc dbctx.Context, userID uuid.UUID, assessmentID *uuid.UUID, snap healing.Snapshot) (*domain.HealingSnapshot, error)
	// Metrics aggregates the user's history. Milestones crossed by the latest
	// snapshot and not yet celebrated are published on the milestone bus.
	Metrics(ctx context.Context, userID uuid.UUID, factors []healing.Factor) (*HealingView, error)
	Timeline(ctx context.Context, userID uuid.UUID) (*healing.Timeline, error)
	Celebrate(ctx context.Context, userID uuid.UUID, milestoneKey string) (*domain.MilestoneCelebration, error)
}

type healingService struct {
	log             *logger.Logger
	snapshotRepo    repos.SnapshotRepo
	celebrationRepo repos.CelebrationRepo
	cache           redis.MetricsCache
	bus             redis.MilestoneBus
	metrics         *observability.Metrics
	group           singleflight.Group
	now             func() time.Time
}

// NewHealingService accepts a nil cache and a nil bus; both are optional.
func NewHealingService(
	log *logger.Logger,
	snapshotRepo repos.SnapshotRepo,
	celebrationRepo repos.CelebrationRepo,
	cache redis.MetricsCache,
	bus redis.MilestoneBus,
	metrics *observability.Metrics,
) HealingService {
	return &healingService{
		log:             log.With("service", "HealingService"),
		snapshotRepo:    snapshotRepo,
		celebrationRepo: celebrationRepo,
		cache:           cache,
		bus:             bus,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s *healingService) RecordSnapshot(dbc dbctx.Context, userID uuid.UUID, assessmentID *uuid.UUID, snap healing.Snapshot) (*domain.HealingSnapshot, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	if snap.Date.IsZero() {
		snap.Date = s.now().UTC()
	}
	row, err := domain.NewHealingSnapshot(userID, assessmentID, snap)
	if err != nil {
		return nil, err
	}
	if err := s.snapshotRepo.Create(dbc, row); err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	s.invalidate(dbc.Ctx, userID)
	return row, nil
}

func (s *healingService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.cache.Invalidate(ctx, userID.String()); err != nil {
		s.log.Warn("metrics cache invalidate failed", "user_id", userID.String(), "error", err)
	}
}

type aggregated struct {
	metrics *healing.Metrics
	fresh   bool
}

func (s *healingService) Metrics(ctx context.Context, userID uuid.UUID, factors []healing.Factor) (*HealingView, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	ctx, span := observability.Tracer("services").Start(ctx, "HealingService.Metrics")
	defer span.End()

	factors = healing.DistinctKnown(factors)
	fk := factorKey(factors)

	var (
		agg          aggregated
		celebrations []*domain.MilestoneCelebration
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err, _ := s.group.Do(userID.String()+"|"+fk, func() (interface{}, error) {
			return s.loadMetrics(gctx, userID, fk, factors)
		})
		if err != nil {
			return err
		}
		agg = v.(aggregated)
		return nil
	})
	g.Go(func() error {
		rows, err := s.celebrationRepo.ListByUserID(dbctx.Context{Ctx: gctx}, userID)
		if err != nil {
			return fmt.Errorf("load celebrations: %w", err)
		}
		celebrations = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	celebrated := make(map[string]bool, len(celebrations))
	for _, c := range celebrations {
		celebrated[c.MilestoneKey] = true
	}

	view := &HealingView{
		Metrics:          *agg.metrics,
		Celebrated:       celebrated,
		SuggestedFactors: healing.SuggestFactors(factors),
	}
	span.SetAttributes(
		attribute.Int("healing.snapshots", view.SnapshotCount),
		attribute.Bool("healing.cache_hit", !agg.fresh),
	)
	if agg.fresh {
		s.notifyMilestones(ctx, userID, view)
	}
	return view, nil
}

func (s *healingService) loadMetrics(ctx context.Context, userID uuid.UUID, fk string, factors []healing.Factor) (aggregated, error) {
	if s.cache != nil {
		m, ok, err := s.cache.Get(ctx, userID.String(), fk)
		if err != nil {
			s.log.Warn("metrics cache read failed", "user_id", userID.String(), "error", err)
		}
		s.metrics.CacheLookup("healing_metrics", ok)
		if ok {
			return aggregated{metrics: m}, nil
		}
	}

	snaps, err := s.loadSnapshots(ctx, userID)
	if err != nil {
		return aggregated{}, err
	}
	start := time.Now()
	m := healing.Aggregate(snaps, factors)
	s.metrics.ObserveAggregate(time.Since(start))

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID.String(), fk, &m); err != nil {
			s.log.Warn("metrics cache write failed", "user_id", userID.String(), "error", err)
		}
	}
	return aggregated{metrics: &m, fresh: true}, nil
}

func (s *healingService) loadSnapshots(ctx context.Context, userID uuid.UUID) ([]healing.Snapshot, error) {
	rows, err := s.snapshotRepo.ListByUserID(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	out := make([]healing.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := row.ToSnapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

func (s *healingService) notifyMilestones(ctx context.Context, userID uuid.UUID, view *HealingView) {
	for _, m := range view.RecentAchievements {
		if view.Celebrated[m.Key] {
			continue
		}
		s.log.Info("milestone achieved", "user_id", userID.String(), "milestone", m.Key, "progress", view.OverallProgress)
		s.metrics.MilestoneNotified(m.Key)
		if s.bus == nil {
			continue
		}
		ev := redis.MilestoneEvent{
			UserID:          userID.String(),
			MilestoneKey:    m.Key,
			Name:            m.Name,
			Message:         m.Message,
			Threshold:       m.Threshold,
			OverallProgress: view.OverallProgress,
			AchievedAt:      s.now().UTC(),
		}
		if err := s.bus.Publish(ctx, ev); err != nil {
			s.log.Warn("milestone publish failed", "milestone", m.Key, "error", err)
		}
	}
}

func (s *healingService) Timeline(ctx context.Context, userID uuid.UUID) (*healing.Timeline, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	snaps, err := s.loadSnapshots(ctx, userID)
	if err != nil {
		return nil, err
	}
	tl := healing.BuildTimeline(snaps)
	return &tl, nil
}

func (s *healingService) Celebrate(ctx context.Context, userID uuid.UUID, milestoneKey string) (*domain.MilestoneCelebration, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	m, ok := healing.LookupMilestone(strings.TrimSpace(milestoneKey))
	if !ok {
		return nil, fmt.Errorf("milestone %q: %w", milestoneKey, pkgerrors.ErrNotFound)
	}
	row, err := s.celebrationRepo.Celebrate(dbctx.Context{Ctx: ctx}, userID, m.Key, s.now())
	if err != nil {
		return nil, fmt.Errorf("celebrate milestone: %w", err)
	}
	return row, nil
}

func factorKey(factors []healing.Factor) string {
	ids := make([]string, 0, len(factors))
	for _, f := range factors {
		ids = append(ids, string(f))
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
