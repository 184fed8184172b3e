package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanndt/mathpal/internal/dto"
	"github.com/hanndt/mathpal/internal/repository"
	"github.com/rs/zerolog/log"
)

type HintService interface {
	GetHint(ctx context.Context, sessionID string) (*dto.HintResponse, error)
}

type hintService struct {
	sessionRepo repository.SessionRepository
	llm         GeminiLLMService
}

func NewHintService(sessionRepo repository.SessionRepository, llm GeminiLLMService) HintService {
	return &hintService{sessionRepo: sessionRepo, llm: llm}
}

// GetHint returns the cached hint when one exists, otherwise asks the model
// for one and caches it on the session (first-write-wins under sequential
// access). A failed cache write is logged and swallowed: the hint computed
// for this request is returned regardless.
func (s *hintService) GetHint(ctx context.Context, sessionID string) (*dto.HintResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("GetHint: session not found")
		return nil, fmt.Errorf("session not found")
	}

	if session.HintText != nil && *session.HintText != "" {
		log.Info().Str("sessionID", sessionID).Msg("GetHint: returning cached hint")
		return &dto.HintResponse{Hint: *session.HintText}, nil
	}

	raw, err := s.llm.GenerateText(ctx, buildHintPrompt(session.ProblemText))
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("GetHint: model call failed")
		return nil, fmt.Errorf("failed to generate hint: %w", err)
	}
	hint := strings.TrimSpace(raw)

	if err := s.sessionRepo.UpdateHint(sessionID, hint); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("GetHint: failed to persist hint, returning it anyway")
	}

	return &dto.HintResponse{Hint: hint}, nil
}
