package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jinzhu/copier"

	"github.com/hanndt/mathpal/internal/dto"
	"github.com/hanndt/mathpal/internal/model"
	"github.com/hanndt/mathpal/internal/repository"
	"github.com/rs/zerolog/log"
)

// answerEpsilon is the tolerance for numeric equality. Tight enough to
// require the right answer to arbitrary precision for P5-scale numbers,
// loose enough to absorb float representation noise.
const answerEpsilon = 1e-9

type SubmissionService interface {
	SubmitAnswer(ctx context.Context, sessionID string, userAnswer float64) (*dto.SubmitAnswerResponse, error)
	GetSubmissions(sessionID string) ([]dto.SubmissionResponse, error)
}

type submissionService struct {
	sessionRepo    repository.SessionRepository
	submissionRepo repository.SubmissionRepository
	llm            GeminiLLMService
}

func NewSubmissionService(
	sessionRepo repository.SessionRepository,
	submissionRepo repository.SubmissionRepository,
	llm GeminiLLMService,
) SubmissionService {
	return &submissionService{
		sessionRepo:    sessionRepo,
		submissionRepo: submissionRepo,
		llm:            llm,
	}
}

// SubmitAnswer grades a numeric answer against the session's stored
// correct answer, asks the model for feedback, and appends a submission
// row. Multiple submissions per session are allowed.
func (s *submissionService) SubmitAnswer(ctx context.Context, sessionID string, userAnswer float64) (*dto.SubmitAnswerResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("SubmitAnswer: session not found")
		return nil, fmt.Errorf("session not found")
	}

	if !isFinite(userAnswer) || !isFinite(session.CorrectAnswer) {
		return nil, fmt.Errorf("invalid numeric values")
	}

	isCorrect := math.Abs(userAnswer-session.CorrectAnswer) < answerEpsilon

	raw, err := s.llm.GenerateText(ctx, buildFeedbackPrompt(session.ProblemText, session.CorrectAnswer, userAnswer, isCorrect))
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("SubmitAnswer: model call failed")
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}
	feedback := strings.TrimSpace(raw)

	submission := model.MathProblemSubmission{
		SessionID:    session.ID,
		UserAnswer:   userAnswer,
		IsCorrect:    isCorrect,
		FeedbackText: feedback,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("SubmitAnswer: failed to persist submission")
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	log.Info().Str("sessionID", sessionID).Bool("isCorrect", isCorrect).Msg("SubmitAnswer: submission recorded")
	return &dto.SubmitAnswerResponse{
		IsCorrect: submission.IsCorrect,
		Feedback:  submission.FeedbackText,
		CreatedAt: submission.CreatedAt,
	}, nil
}

// GetSubmissions lists previous attempts for a session, newest first.
func (s *submissionService) GetSubmissions(sessionID string) ([]dto.SubmissionResponse, error) {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("GetSubmissions: session not found")
		return nil, fmt.Errorf("session not found")
	}

	submissions, err := s.submissionRepo.FindBySessionID(sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("GetSubmissions: query failed")
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		var resp dto.SubmissionResponse
		if err := copier.Copy(&resp, &sub); err != nil {
			log.Error().Err(err).Msg("GetSubmissions: error copying submission to DTO")
			return nil, fmt.Errorf("error preparing response: %w", err)
		}
		resp.Feedback = sub.FeedbackText
		responses = append(responses, resp)
	}
	return responses, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
