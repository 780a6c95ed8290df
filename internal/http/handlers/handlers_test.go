package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/yungbote/neurohealing-backend/internal/domain/healing"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	apperr "github.com/yungbote/neurohealing-backend/internal/pkg/errors"
	"github.com/yungbote/neurohealing-backend/internal/services"
)

func init() { gin.SetMode(gin.TestMode) }

type stubAssessments struct {
	services.AssessmentService
	getErr error
}

func (s *stubAssessments) Get(ctx context.Context, userID, id uuid.UUID) (*services.AssessmentView, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &services.AssessmentView{}, nil
}

type stubHealing struct {
	services.HealingService
	recorded    int
	factors     []healing.Factor
	celebrateFn func(key string) (*domain.MilestoneCelebration, error)
}

func (s *stubHealing) RecordSnapshot(dbc dbctx.Context, userID uuid.UUID, assessmentID *uuid.UUID, snap healing.Snapshot) (*domain.HealingSnapshot, error) {
	s.recorded++
	return &domain.HealingSnapshot{ID: uuid.New(), UserID: userID}, nil
}

func (s *stubHealing) Metrics(ctx context.Context, userID uuid.UUID, factors []healing.Factor) (*services.HealingView, error) {
	s.factors = factors
	return &services.HealingView{}, nil
}

func (s *stubHealing) Celebrate(ctx context.Context, userID uuid.UUID, key string) (*domain.MilestoneCelebration, error) {
	return s.celebrateFn(key)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Code
}

func TestAssessmentGetErrorMapping(t *testing.T) {
	stub := &stubAssessments{}
	h := NewAssessmentHandler(stub)
	r := gin.New()
	r.GET("/users/:user_id/assessments/:id", h.Get)

	rec := do(r, http.MethodGet, "/users/not-a-uuid/assessments/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_user_id", errorCode(t, rec))

	rec = do(r, http.MethodGet, "/users/"+uuid.NewString()+"/assessments/nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_assessment_id", errorCode(t, rec))

	stub.getErr = fmt.Errorf("assessment: %w", apperr.ErrNotFound)
	rec = do(r, http.MethodGet, "/users/"+uuid.NewString()+"/assessments/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	stub.getErr = errors.New("connection reset by peer")
	rec = do(r, http.MethodGet, "/users/"+uuid.NewString()+"/assessments/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRecordSnapshotRejectsEmptyImpacts(t *testing.T) {
	stub := &stubHealing{}
	h := NewHealingHandler(stub)
	r := gin.New()
	r.POST("/users/:user_id/snapshots", h.RecordSnapshot)
	path := "/users/" + uuid.NewString() + "/snapshots"

	rec := do(r, http.MethodPost, path, `{"date":"2025-01-01T00:00:00Z","brain_impacts":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_snapshot", errorCode(t, rec))

	rec = do(r, http.MethodPost, path, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.recorded)

	rec = do(r, http.MethodPost, path, `{"date":"2025-01-01T00:00:00Z","brain_impacts":{"amygdala":{"severity":0.4}}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, stub.recorded)
}

func TestGetMetricsParsesFactors(t *testing.T) {
	stub := &stubHealing{}
	h := NewHealingHandler(stub)
	r := gin.New()
	r.GET("/users/:user_id/healing", h.GetMetrics)

	rec := do(r, http.MethodGet, "/users/"+uuid.NewString()+"/healing?factors=therapy,%20Sleep", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []healing.Factor{healing.Factor("therapy"), healing.Factor("sleep")}, stub.factors)
}

func TestCelebrateUnknownMilestone(t *testing.T) {
	stub := &stubHealing{celebrateFn: func(key string) (*domain.MilestoneCelebration, error) {
		return nil, fmt.Errorf("milestone %q: %w", key, apperr.ErrNotFound)
	}}
	h := NewHealingHandler(stub)
	r := gin.New()
	r.POST("/users/:user_id/milestones/:key/celebrate", h.Celebrate)

	rec := do(r, http.MethodPost, "/users/"+uuid.NewString()+"/milestones/bogus/celebrate", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestHealthCheckReportsFailures(t *testing.T) {
	ok := NewHealthHandler(HealthCheck{Name: "database", Check: func(context.Context) error { return nil }})
	r := gin.New()
	r.GET("/healthcheck", ok.HealthCheck)
	rec := do(r, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	bad := NewHealthHandler(
		HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
		HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("dial tcp: refused") }},
	)
	r = gin.New()
	r.GET("/healthcheck", bad.HealthCheck)
	rec = do(r, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis")
	assert.NotContains(t, rec.Body.String(), "database")
}
