package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rimbac/edubot/internal/ai"
)

type recordingProvider struct {
	reply   string
	err     error
	prompts []string
}

func (p *recordingProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Minute):
		return "too late", nil
	}
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the provider answer", func(t *testing.T) {
		provider := &recordingProvider{reply: "الجواب"}
		assistant := ai.NewAssistant(provider, time.Second)

		answer, err := assistant.Answer(ctx, "سؤال", "222001", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != "الجواب" {
			t.Errorf("answer = %q", answer)
		}
	})

	t.Run("context string reaches the prompt", func(t *testing.T) {
		provider := &recordingProvider{reply: "ok"}
		assistant := ai.NewAssistant(provider, time.Second)

		assistant.Answer(ctx, "سؤال", "222001", "الطالب في السنة الأولى ابتدائي")

		if len(provider.prompts) != 1 || !strings.Contains(provider.prompts[0], "السنة الأولى ابتدائي") {
			t.Errorf("expected context in prompt, got %q", provider.prompts)
		}
	})

	t.Run("history carries into later prompts", func(t *testing.T) {
		provider := &recordingProvider{reply: "إجابة أولى"}
		assistant := ai.NewAssistant(provider, time.Second)

		assistant.Answer(ctx, "السؤال الأول", "222001", "")
		assistant.Answer(ctx, "السؤال الثاني", "222001", "")

		second := provider.prompts[1]
		if !strings.Contains(second, "السؤال الأول") || !strings.Contains(second, "إجابة أولى") {
			t.Errorf("expected first exchange in second prompt, got %q", second)
		}
	})

	t.Run("history is per identity", func(t *testing.T) {
		provider := &recordingProvider{reply: "ok"}
		assistant := ai.NewAssistant(provider, time.Second)

		assistant.Answer(ctx, "سؤال خاص", "222001", "")
		assistant.Answer(ctx, "سؤال آخر", "222002", "")

		if strings.Contains(provider.prompts[1], "سؤال خاص") {
			t.Error("history leaked across identities")
		}
		if assistant.SessionCount() != 2 {
			t.Errorf("expected 2 sessions, got %d", assistant.SessionCount())
		}
	})

	t.Run("provider failure leaves no history", func(t *testing.T) {
		provider := &recordingProvider{err: errors.New("model unavailable")}
		assistant := ai.NewAssistant(provider, time.Second)

		if _, err := assistant.Answer(ctx, "سؤال", "222001", ""); err == nil {
			t.Fatal("expected error")
		}
		if assistant.SessionCount() != 0 {
			t.Error("failed call must not create a session")
		}
	})

	t.Run("timeout cancels the provider call", func(t *testing.T) {
		assistant := ai.NewAssistant(slowProvider{}, 10*time.Millisecond)

		_, err := assistant.Answer(ctx, "سؤال", "222001", "")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline error, got %v", err)
		}
	})
}

func TestClearSession(t *testing.T) {
	ctx := context.Background()
	provider := &recordingProvider{reply: "ok"}
	assistant := ai.NewAssistant(provider, time.Second)

	if assistant.ClearSession("222001") {
		t.Error("clearing an absent session should report false")
	}

	assistant.Answer(ctx, "سؤال", "222001", "")

	if !assistant.ClearSession("222001") {
		t.Error("expected the session to be cleared")
	}
	if assistant.SessionCount() != 0 {
		t.Errorf("expected no sessions, got %d", assistant.SessionCount())
	}
}
