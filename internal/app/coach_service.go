package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/domain"
)

// Responder produces the coach's reply to one user message.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// CoachService runs the AI-coach conversation: it stores the user's message,
// asks the configured Responder for a reply and stores that too.
type CoachService struct {
	repo      domain.ChatRepository
	responder Responder
}

// NewCoachService creates a CoachService with the given reply backend.
func NewCoachService(repo domain.ChatRepository, responder Responder) *CoachService {
	return &CoachService{repo: repo, responder: responder}
}

// Send logs the user's message, obtains a reply and logs it with the reply
// latency. The reply message is returned.
func (s *CoachService) Send(ctx context.Context, userID int64, message string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	now := time.Now().UTC()
	if _, err := s.repo.AddChatMessage(ctx, domain.ChatMessage{
		UserID:      userID,
		MessageType: domain.ChatMessageUser,
		Content:     message,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}

	start := time.Now()
	reply, err := s.responder.Respond(ctx, message)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start).Seconds()

	return s.repo.AddChatMessage(ctx, domain.ChatMessage{
		UserID:       userID,
		MessageType:  domain.ChatMessageAI,
		Content:      reply,
		ResponseTime: elapsed,
		CreatedAt:    time.Now().UTC(),
	})
}

// History returns the most recent messages of the conversation in
// chronological order.
func (s *CoachService) History(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	msgs, err := s.repo.ListRecentChatMessages(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	// The repository returns newest first; the conversation reads oldest first.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// RuleResponder is a keyword-matching fallback used when no model backend is
// configured.
type RuleResponder struct{}

// Respond picks a canned reply by keyword.
func (RuleResponder) Respond(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "workout") || strings.Contains(lower, "exercise"):
		return "Consistency beats intensity. Aim for three to four sessions a week and increase the load gradually.", nil
	case strings.Contains(lower, "protein") || strings.Contains(lower, "meal") || strings.Contains(lower, "eat"):
		return "Build each meal around a protein source and vegetables. Around 1.6g of protein per kg of body weight supports training.", nil
	case strings.Contains(lower, "water") || strings.Contains(lower, "hydrat"):
		return "Aim for two to three liters of water a day, more on training days.", nil
	case strings.Contains(lower, "sleep") || strings.Contains(lower, "rest"):
		return "Recovery is where progress happens. Seven to nine hours of sleep and a rest day between hard sessions.", nil
	case strings.Contains(lower, "goal"):
		return "Set one measurable goal with a deadline and track it weekly. Small consistent steps win.", nil
	default:
		return "Tell me more about your training, nutrition or goals and I can give you specific advice.", nil
	}
}
