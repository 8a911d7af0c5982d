// Package chat relays user messages to the generative API with the fixed
// maternity system prompt and bounded recent history, and keeps a capped
// per-account conversation log.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
	"github.com/shewell/maternity-api/pkg/genai"
	"github.com/shewell/maternity-api/pkg/translate"
)

// recentTurns is how many prior exchanges travel with each generation call.
const recentTurns = 5

type Service struct {
	client     genai.Client
	translator translate.Translator
	history    repository.ChatHistoryRepository
	profiles   repository.ProfileRepository
	logger     zerolog.Logger
}

func NewService(
	client genai.Client,
	translator translate.Translator,
	history repository.ChatHistoryRepository,
	profiles repository.ProfileRepository,
	logger zerolog.Logger,
) *Service {
	return &Service{
		client:     client,
		translator: translator,
		history:    history,
		profiles:   profiles,
		logger:     logger,
	}
}

// Ask relays one user message. Translation and generation failures degrade
// to a fixed fallback reply; only a missing message is a caller error.
func (s *Service) Ask(ctx context.Context, accountID uuid.UUID, message, targetLang string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.NewInvalidInput("message is required", nil)
	}

	// Normalize to English for the model; failure keeps the original text.
	canonical, err := s.translator.Translate(ctx, message, "en")
	if err != nil {
		s.logger.Warn().Err(err).Msg("inbound translation failed, using original text")
		canonical = message
	}

	reply, err := s.generate(ctx, accountID, canonical)
	if err != nil {
		s.logger.Error().Err(err).Msg("generation failed, returning fallback")
		reply = fallbackMessage
	}

	if targetLang != "" && targetLang != "en" {
		translated, err := s.translator.Translate(ctx, reply, targetLang)
		if err != nil {
			s.logger.Warn().Err(err).Msg("outbound translation failed, using English reply")
		} else {
			reply = translated
		}
	}

	turn := model.ChatTurn{User: message, AI: reply, Timestamp: time.Now()}
	if err := s.history.Append(ctx, accountID, turn); err != nil {
		s.logger.Error().Err(err).Msg("failed to record chat turn")
	}

	return reply, nil
}

func (s *Service) generate(ctx context.Context, accountID uuid.UUID, message string) (string, error) {
	messages := []genai.Message{{Role: "system", Content: systemPrompt}}

	turns, err := s.history.List(ctx, accountID)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load chat history, continuing without it")
	} else {
		if len(turns) > recentTurns {
			turns = turns[len(turns)-recentTurns:]
		}
		for _, turn := range turns {
			messages = append(messages,
				genai.Message{Role: "user", Content: turn.User},
				genai.Message{Role: "assistant", Content: turn.AI},
			)
		}
	}

	messages = append(messages, genai.Message{Role: "user", Content: message})

	reply, err := s.client.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", errors.New("empty generation result")
	}
	return strings.TrimSpace(reply), nil
}

func (s *Service) History(ctx context.Context, accountID uuid.UUID) ([]model.ChatTurn, error) {
	turns, err := s.history.List(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	if turns == nil {
		turns = []model.ChatTurn{}
	}
	return turns, nil
}

func (s *Service) Clear(ctx context.Context, accountID uuid.UUID) error {
	if err := s.history.Clear(ctx, accountID); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}

// DietRequest carries the free-form inputs for a diet plan.
type DietRequest struct {
	Age                 string   `json:"age"`
	Weight              string   `json:"weight"`
	Height              string   `json:"height"`
	ActivityLevel       string   `json:"activityLevel"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	HealthGoals         []string `json:"healthGoals"`
}

func trimester(weeks int) int {
	switch {
	case weeks > 27:
		return 3
	case weeks > 13:
		return 2
	default:
		return 1
	}
}

// GeneratePlan is the one endpoint whose whole purpose is the upstream
// call, so generation failure surfaces as an error instead of a fallback.
func (s *Service) GeneratePlan(ctx context.Context, accountID uuid.UUID, req DietRequest) (*model.DietPlan, error) {
	weeks := 0
	if profile, err := s.profiles.Get(ctx, accountID); err == nil {
		weeks = profile.WeeksPregnant
	}
	tri := trimester(weeks)

	prompt := fmt.Sprintf(dietPromptTemplate,
		orNA(req.Age),
		orNA(req.Weight),
		orNA(req.Height),
		orNA(req.ActivityLevel),
		strings.Join(req.DietaryRestrictions, ", "),
		strings.Join(req.HealthGoals, ", "),
		weeks,
		tri,
	)

	plan, err := s.client.Generate(ctx, []genai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, apperrors.NewInternal(fmt.Errorf("failed to generate diet plan: %w", err))
	}

	return &model.DietPlan{
		Plan:          strings.TrimSpace(plan),
		Trimester:     tri,
		WeeksPregnant: weeks,
	}, nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
