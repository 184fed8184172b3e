package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanndt/mathpal/internal/dto"
)

type fakeProblemService struct {
	resp *dto.GenerateProblemResponse
	err  error
}

func (f *fakeProblemService) GenerateProblem(ctx context.Context) (*dto.GenerateProblemResponse, error) {
	return f.resp, f.err
}

type fakeHintService struct {
	resp  *dto.HintResponse
	err   error
	calls int
}

func (f *fakeHintService) GetHint(ctx context.Context, sessionID string) (*dto.HintResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeSubmissionService struct {
	resp     *dto.SubmitAnswerResponse
	list     []dto.SubmissionResponse
	err      error
	calls    int
	gotID    string
	gotValue float64
}

func (f *fakeSubmissionService) SubmitAnswer(ctx context.Context, sessionID string, userAnswer float64) (*dto.SubmitAnswerResponse, error) {
	f.calls++
	f.gotID = sessionID
	f.gotValue = userAnswer
	return f.resp, f.err
}

func (f *fakeSubmissionService) GetSubmissions(sessionID string) ([]dto.SubmissionResponse, error) {
	f.gotID = sessionID
	return f.list, f.err
}

func newTestRouter(ps *fakeProblemService, hs *fakeHintService, ss *fakeSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewMathProblemController(ps, hs, ss)

	r := gin.New()
	api := r.Group("/api/v1/math-problems")
	api.POST("", ctrl.GenerateProblem)
	api.POST("/hint", ctrl.GetHint)
	api.POST("/submit", ctrl.SubmitAnswer)
	api.GET("/:session_id/submissions", ctrl.GetSubmissions)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateProblem_OK(t *testing.T) {
	ps := &fakeProblemService{resp: &dto.GenerateProblemResponse{
		SessionID:   "abc123",
		ProblemText: "Mary has $15.50...",
	}}
	router := newTestRouter(ps, &fakeHintService{}, &fakeSubmissionService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GenerateProblemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp.SessionID)
	assert.Equal(t, "Mary has $15.50...", resp.ProblemText)
}

func TestGenerateProblem_ServiceError(t *testing.T) {
	ps := &fakeProblemService{err: fmt.Errorf("model blew up")}
	router := newTestRouter(ps, &fakeHintService{}, &fakeSubmissionService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate problem", resp.Error)
}

func TestGetHint_MissingSessionID(t *testing.T) {
	hs := &fakeHintService{}
	router := newTestRouter(&fakeProblemService{}, hs, &fakeSubmissionService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/hint", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hs.calls, "validation failure must not reach the service")

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sessionId is required", resp.Error)
}

func TestGetHint_OK(t *testing.T) {
	hs := &fakeHintService{resp: &dto.HintResponse{Hint: "Try subtraction."}}
	router := newTestRouter(&fakeProblemService{}, hs, &fakeSubmissionService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/hint", map[string]any{"sessionId": "abc123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HintResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Try subtraction.", resp.Hint)
}

func TestGetHint_ServiceError(t *testing.T) {
	hs := &fakeHintService{err: fmt.Errorf("session not found")}
	router := newTestRouter(&fakeProblemService{}, hs, &fakeSubmissionService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/hint", map[string]any{"sessionId": "missing"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate hint", resp.Error)
}

func TestSubmitAnswer_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "empty body", body: map[string]any{}},
		{name: "missing user_answer", body: map[string]any{"sessionId": "abc123"}},
		{name: "missing sessionId", body: map[string]any{"user_answer": 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := &fakeSubmissionService{}
			router := newTestRouter(&fakeProblemService{}, &fakeHintService{}, ss)

			rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/submit", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, ss.calls, "validation failure must not reach the service")

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "sessionId and user_answer are required", resp.Error)
		})
	}
}

func TestSubmitAnswer_OK(t *testing.T) {
	now := time.Now()
	ss := &fakeSubmissionService{resp: &dto.SubmitAnswerResponse{
		IsCorrect: true,
		Feedback:  "Great work!",
		CreatedAt: now,
	}}
	router := newTestRouter(&fakeProblemService{}, &fakeHintService{}, ss)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/submit", map[string]any{
		"sessionId":   "abc123",
		"user_answer": 12,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", ss.gotID)
	assert.Equal(t, 12.0, ss.gotValue)

	var resp dto.SubmitAnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, "Great work!", resp.Feedback)
}

func TestSubmitAnswer_ZeroAnswerIsValid(t *testing.T) {
	ss := &fakeSubmissionService{resp: &dto.SubmitAnswerResponse{IsCorrect: false, Feedback: "Check your working."}}
	router := newTestRouter(&fakeProblemService{}, &fakeHintService{}, ss)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/submit", map[string]any{
		"sessionId":   "abc123",
		"user_answer": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ss.calls)
	assert.Equal(t, 0.0, ss.gotValue)
}

func TestSubmitAnswer_ServiceError(t *testing.T) {
	ss := &fakeSubmissionService{err: fmt.Errorf("session not found")}
	router := newTestRouter(&fakeProblemService{}, &fakeHintService{}, ss)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/math-problems/submit", map[string]any{
		"sessionId":   "missing",
		"user_answer": 5,
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Submission failed", resp.Error)
}

func TestGetSubmissions_OK(t *testing.T) {
	ss := &fakeSubmissionService{list: []dto.SubmissionResponse{
		{ID: "sub1", SessionID: "abc123", UserAnswer: 10, IsCorrect: false, Feedback: "Almost."},
	}}
	router := newTestRouter(&fakeProblemService{}, &fakeHintService{}, ss)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/math-problems/abc123/submissions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", ss.gotID)

	var resp []dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "sub1", resp[0].ID)
}
