package service

import (
	"context"
	"fmt"

	"github.com/hanndt/mathpal/internal/dto"
	"github.com/hanndt/mathpal/internal/model"
	"github.com/hanndt/mathpal/internal/repository"
	"github.com/rs/zerolog/log"
)

type ProblemService interface {
	GenerateProblem(ctx context.Context) (*dto.GenerateProblemResponse, error)
}

type problemService struct {
	sessionRepo repository.SessionRepository
	llm         GeminiLLMService
}

func NewProblemService(sessionRepo repository.SessionRepository, llm GeminiLLMService) ProblemService {
	return &problemService{sessionRepo: sessionRepo, llm: llm}
}

// GenerateProblem asks the model for one word problem and persists it as a
// new session. The session row is only written after the model output has
// been parsed and validated, so a malformed response never leaves a
// partial session behind.
func (s *problemService) GenerateProblem(ctx context.Context) (*dto.GenerateProblemResponse, error) {
	raw, err := s.llm.GenerateText(ctx, generateProblemPrompt)
	if err != nil {
		log.Error().Err(err).Msg("GenerateProblem: model call failed")
		return nil, fmt.Errorf("failed to generate problem: %w", err)
	}

	problem, err := ParseGeneratedProblem(raw)
	if err != nil {
		log.Error().Err(err).Str("rawResponse", raw).Msg("GenerateProblem: invalid model output")
		return nil, fmt.Errorf("failed to generate problem: %w", err)
	}

	session := model.MathProblemSession{
		ProblemText:   problem.ProblemText,
		CorrectAnswer: problem.CorrectAnswer,
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Msg("GenerateProblem: failed to persist session")
		return nil, fmt.Errorf("failed to generate problem: %w", err)
	}

	log.Info().Str("sessionID", session.ID).Msg("GenerateProblem: session created")
	return &dto.GenerateProblemResponse{
		SessionID:   session.ID,
		ProblemText: session.ProblemText,
	}, nil
}
