package ai

import (
	"context"
	"sync"
	"time"

	"github.com/rimbac/edubot/internal/config"
)

const historyDepth = 5

type exchange struct {
	question string
	answer   string
}

// Assistant is the generative fallback answer source. It keeps a short
// per-identity exchange history so follow-up questions stay in context, and
// bounds every provider call with a timeout.
type Assistant struct {
	provider Provider
	timeout  time.Duration

	mu       sync.Mutex
	sessions map[string][]exchange
}

func NewAssistant(provider Provider, timeout time.Duration) *Assistant {
	return &Assistant{
		provider: provider,
		timeout:  timeout,
		sessions: make(map[string][]exchange),
	}
}

// Answer asks the model the user's question, framed with the assistant rules
// and the identity's recent exchanges. contextStr may be empty.
func (a *Assistant) Answer(ctx context.Context, question, identity, contextStr string) (string, error) {
	a.mu.Lock()
	history := a.sessions[identity]
	a.mu.Unlock()

	answer, err := a.generate(ctx, buildPrompt(question, contextStr, history))
	if err != nil {
		return "", err
	}

	if identity != "" {
		a.mu.Lock()
		history = append(a.sessions[identity], exchange{question: question, answer: answer})
		if len(history) > historyDepth {
			history = history[len(history)-historyDepth:]
		}
		a.sessions[identity] = history
		a.mu.Unlock()
	}

	return answer, nil
}

// Explain produces a grade-levelled explanation of one concept.
func (a *Assistant) Explain(ctx context.Context, concept, level string) (string, error) {
	return a.generate(ctx, buildExplainPrompt(concept, level))
}

// GenerateQuiz produces a formatted multiple-choice quiz text.
func (a *Assistant) GenerateQuiz(ctx context.Context, topic, difficulty string, questionCount int) (string, error) {
	return a.generate(ctx, buildQuizPrompt(topic, difficulty, questionCount))
}

// ClearSession drops the exchange history for one identity.
func (a *Assistant) ClearSession(identity string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.sessions[identity]; !ok {
		return false
	}
	delete(a.sessions, identity)
	return true
}

// SessionCount reports how many identities hold an exchange history.
func (a *Assistant) SessionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.sessions)
}

func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	answer, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("Assistant call failed")
		return "", err
	}
	return answer, nil
}
