package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fitfusion/internal/adapter/memory"
	"fitfusion/internal/app"
	"fitfusion/internal/domain"
)

type stubResponder struct {
	reply string
	err   error
}

func (s stubResponder) Respond(context.Context, string) (string, error) {
	return s.reply, s.err
}

func TestCoachSend(t *testing.T) {
	db := memory.New()
	svc := app.NewCoachService(db, stubResponder{reply: "drink more water"})
	ctx := context.Background()

	reply, err := svc.Send(ctx, 1, "how much water should I drink?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply.MessageType != domain.ChatMessageAI || reply.Content != "drink more water" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	history, err := svc.History(ctx, 1, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].MessageType != domain.ChatMessageUser || history[1].MessageType != domain.ChatMessageAI {
		t.Fatalf("expected user message before reply, got %+v", history)
	}
}

func TestCoachSend_EmptyMessage(t *testing.T) {
	svc := app.NewCoachService(memory.New(), stubResponder{reply: "hi"})

	_, err := svc.Send(context.Background(), 1, "  ")
	if !errors.Is(err, app.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCoachSend_ResponderError(t *testing.T) {
	db := memory.New()
	svc := app.NewCoachService(db, stubResponder{err: errors.New("model unavailable")})

	_, err := svc.Send(context.Background(), 1, "hello")
	if err == nil {
		t.Fatal("expected responder error to propagate")
	}
}

func TestRuleResponder(t *testing.T) {
	r := app.RuleResponder{}

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"workout keyword", "suggest a workout plan", "Consistency"},
		{"protein keyword", "how much protein do I need", "protein"},
		{"fallback", "what is the weather", "Tell me more"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := r.Respond(context.Background(), tc.message)
			if err != nil {
				t.Fatalf("respond: %v", err)
			}
			if !strings.Contains(strings.ToLower(reply), strings.ToLower(tc.want)) {
				t.Fatalf("reply %q missing %q", reply, tc.want)
			}
		})
	}
}
