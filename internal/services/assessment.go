package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	repos "github.com/yungbote/neurohealing-backend/internal/data/repos/healing"
	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
	"github.com/yungbote/neurohealing-backend/internal/observability"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/neurohealing-backend/internal/pkg/errors"
	"github.com/yungbote/neurohealing-backend/internal/platform/chart"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type ScoreInput struct {
	Answers       brainmap.Answers `json:"answers"`
	BiologicalSex string           `json:"biological_sex"`
}

type ScoreOutput struct {
	Impacts         map[string]brainmap.RegionImpact `json:"impacts"`
	Summary         brainmap.Summary                 `json:"summary"`
	Recommendations []brainmap.Recommendation        `json:"recommendations"`
}

type SubmitInput struct {
	ScoreInput
	Responses map[string]float64 `json:"responses,omitempty"`
	// TakenAt defaults to the submission time.
	TakenAt *time.Time `json:"taken_at,omitempty"`
}

type AssessmentView struct {
	Assessment *domain.Assessment `json:"assessment"`
	SnapshotID *uuid.UUID         `json:"snapshot_id,omitempty"`
	ScoreOutput
}

type AssessmentService interface {
	// Score is stateless; identical inputs share a memoized result.
	Score(ctx context.Context, in ScoreInput) (*ScoreOutput, error)
	// Submit scores, stores the assessment and appends the matching snapshot.
	Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (*AssessmentView, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*AssessmentView, error)
	ImpactChart(ctx context.Context, userID, id uuid.UUID) ([]byte, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	scorer         *brainmap.Scorer
	assessmentRepo repos.AssessmentRepo
	healing        HealingService
	memo           *lru.Cache[string, *ScoreOutput]
	metrics        *observability.Metrics
	now            func() time.Time
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	scorer *brainmap.Scorer,
	assessmentRepo repos.AssessmentRepo,
	healingService HealingService,
	memoSize int,
	metrics *observability.Metrics,
) (AssessmentService, error) {
	if scorer == nil {
		scorer = brainmap.NewScorer(nil)
	}
	if memoSize <= 0 {
		memoSize = 256
	}
	memo, err := lru.New[string, *ScoreOutput](memoSize)
	if err != nil {
		return nil, fmt.Errorf("score memo: %w", err)
	}
	return &assessmentService{
		db:             db,
		log:            log.With("service", "AssessmentService"),
		scorer:         scorer,
		assessmentRepo: assessmentRepo,
		healing:        healingService,
		memo:           memo,
		metrics:        metrics,
		now:            time.Now,
	}, nil
}

func (s *assessmentService) Score(ctx context.Context, in ScoreInput) (*ScoreOutput, error) {
	ctx, span := observability.Tracer("services").Start(ctx, "AssessmentService.Score")
	defer span.End()

	key, err := scoreDigest(in)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("digest answers: %w", err)
	}
	if out, ok := s.memo.Get(key); ok {
		s.metrics.CacheLookup("score", true)
		span.SetAttributes(attribute.Bool("memo.hit", true))
		return out, nil
	}
	s.metrics.CacheLookup("score", false)

	res := s.scorer.Score(in.Answers, brainmap.ParseSex(in.BiologicalSex))
	out := &ScoreOutput{
		Impacts:         res.Impacts,
		Summary:         res.Summary,
		Recommendations: brainmap.Recommend(res),
	}
	s.memo.Add(key, out)
	s.metrics.ObserveScore(res.Summary.TotalRegionsAffected)
	span.SetAttributes(
		attribute.Int("assessment.aces", res.Summary.TotalACEs),
		attribute.Int("assessment.regions", res.Summary.TotalRegionsAffected),
	)
	s.log.Debug("assessment scored", "aces", res.Summary.TotalACEs, "regions", res.Summary.TotalRegionsAffected)
	return out, nil
}

func (s *assessmentService) Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (*AssessmentView, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	out, err := s.Score(ctx, in.ScoreInput)
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(in.Answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	impactsJSON, err := json.Marshal(out.Impacts)
	if err != nil {
		return nil, fmt.Errorf("encode impacts: %w", err)
	}
	summaryJSON, err := json.Marshal(out.Summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	row := &domain.Assessment{
		UserID:          userID,
		BiologicalSex:   string(brainmap.ParseSex(in.BiologicalSex)),
		Answers:         datatypes.JSON(answersJSON),
		Impacts:         datatypes.JSON(impactsJSON),
		Summary:         datatypes.JSON(summaryJSON),
		TotalACEs:       out.Summary.TotalACEs,
		RegionsAffected: out.Summary.TotalRegionsAffected,
	}

	takenAt := s.now().UTC()
	if in.TakenAt != nil && !in.TakenAt.IsZero() {
		takenAt = in.TakenAt.UTC()
	}
	snap := healing.SnapshotFromResult(
		brainmap.Result{Impacts: out.Impacts, Summary: out.Summary},
		takenAt,
		in.Responses,
	)

	var snapRow *domain.HealingSnapshot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := s.assessmentRepo.Create(dbc, row); err != nil {
			return fmt.Errorf("create assessment: %w", err)
		}
		var err error
		snapRow, err = s.healing.RecordSnapshot(dbc, userID, &row.ID, snap)
		return err
	})
	if err != nil {
		s.log.Error("assessment submit failed", "user_id", userID.String(), "error", err)
		return nil, err
	}
	s.log.Info("assessment stored", "user_id", userID.String(), "assessment_id", row.ID.String(), "regions", row.RegionsAffected)
	return &AssessmentView{Assessment: row, SnapshotID: &snapRow.ID, ScoreOutput: *out}, nil
}

func (s *assessmentService) Get(ctx context.Context, userID, id uuid.UUID) (*AssessmentView, error) {
	row, err := s.assessmentRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("assessment %s: %w", id, pkgerrors.ErrNotFound)
	}
	view := &AssessmentView{Assessment: row}
	if err := json.Unmarshal(row.Impacts, &view.Impacts); err != nil {
		return nil, fmt.Errorf("decode impacts: %w", err)
	}
	if err := json.Unmarshal(row.Summary, &view.Summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	view.Recommendations = brainmap.Recommend(brainmap.Result{Impacts: view.Impacts, Summary: view.Summary})
	return view, nil
}

func (s *assessmentService) ImpactChart(ctx context.Context, userID, id uuid.UUID) ([]byte, error) {
	view, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	bars := make([]chart.Bar, 0, len(view.Impacts))
	for _, ri := range view.Impacts {
		bars = append(bars, chart.Bar{Label: ri.Region, Value: ri.Impact, Level: ri.Level})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Value != bars[j].Value {
			return bars[i].Value > bars[j].Value
		}
		return bars[i].Label < bars[j].Label
	})
	return chart.RenderImpactBars("Regional impact", bars)
}

// scoreDigest keys the memo. encoding/json sorts map keys, so equal inputs
// produce equal digests.
func scoreDigest(in ScoreInput) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in.Answers); err != nil {
		return "", err
	}
	buf.WriteString(string(brainmap.ParseSex(in.BiologicalSex)))
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}
