package router

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Intent is the transient classification of one inbound message.
type Intent int

const (
	IntentQuizAnswer Intent = iota
	IntentCommand
	IntentGreeting
	IntentEducational
	IntentHelp
	IntentMath
	IntentQuestion
	IntentUnrecognized
)

func (i Intent) String() string {
	switch i {
	case IntentQuizAnswer:
		return "quiz-answer"
	case IntentCommand:
		return "explicit-command"
	case IntentGreeting:
		return "greeting"
	case IntentEducational:
		return "educational-keyword-query"
	case IntentHelp:
		return "help-request"
	case IntentMath:
		return "math-expression"
	case IntentQuestion:
		return "question"
	default:
		return "unrecognized"
	}
}

// answerLetters is the fixed quiz answer alphabet: the option count ceiling
// is four.
var answerLetters = map[string]bool{"A": true, "B": true, "C": true, "D": true}

var greetingKeywords = []string{
	"سلام", "مرحبا", "أهلا", "هلا", "صباح", "مساء",
	"hello", "hi", "hey", "good morning", "good evening",
}

var educationalKeywords = []string{
	"كتاب", "كتب", "مادة", "مواد", "درس", "دروس", "اختبار", "امتحان",
	"جامعة", "جامعات", "منحة", "منح", "مسابقة", "مسابقات",
	"رياضيات", "عربية", "فرنسية", "انجليزية", "فيزياء", "كيمياء",
	"تاريخ", "جغرافيا", "علوم",
	"book", "books", "subject", "test", "exam", "university", "scholarship",
}

var helpKeywords = []string{
	"مساعدة", "ساعدني", "كيف", "ماذا", "أريد", "أحتاج",
	"help", "how", "what", "need", "want",
}

var questionIndicators = []string{
	"؟", "ما هو", "ما هي", "كيف", "متى", "أين", "لماذا", "من",
	"what", "how", "when", "where", "why", "who",
}

var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`),  // basic arithmetic
	regexp.MustCompile(`\d+x\s*[+-]\s*\d+`),    // linear equations
	regexp.MustCompile(`x\s*[+-]\s*\d+\s*=\s*\d+`),
	regexp.MustCompile(`\d+\s*=\s*\d+`),
	regexp.MustCompile(`مساحة|حجم|محيط`), // geometry terms
	regexp.MustCompile(`جذر|أس|قوة`),     // algebra terms
}

// rule is one step of the classification cascade. lower is the
// case-normalized text; the first matching rule wins.
type rule struct {
	intent Intent
	match  func(text, lower string, hasSession bool) bool
}

// Classifier maps (raw text, has-active-session) to exactly one Intent via
// an ordered, short-circuiting rule list. Pure; no side effects.
type Classifier struct {
	prefixes string
	rules    []rule
}

// NewClassifier builds the cascade. prefixes holds the characters that mark
// an explicit command (e.g. "!/").
func NewClassifier(prefixes string) *Classifier {
	c := &Classifier{prefixes: prefixes}
	c.rules = []rule{
		{IntentQuizAnswer, func(text, lower string, hasSession bool) bool {
			return hasSession && answerLetters[strings.ToUpper(strings.TrimSpace(text))]
		}},
		{IntentCommand, func(text, lower string, hasSession bool) bool {
			first, _ := utf8.DecodeRuneInString(text)
			return first != utf8.RuneError && strings.ContainsRune(c.prefixes, first)
		}},
		{IntentGreeting, func(text, lower string, hasSession bool) bool {
			return containsAny(lower, greetingKeywords)
		}},
		{IntentEducational, func(text, lower string, hasSession bool) bool {
			return containsAny(lower, educationalKeywords)
		}},
		{IntentHelp, func(text, lower string, hasSession bool) bool {
			return containsAny(lower, helpKeywords)
		}},
		{IntentMath, func(text, lower string, hasSession bool) bool {
			for _, p := range mathPatterns {
				if p.MatchString(text) {
					return true
				}
			}
			return false
		}},
		{IntentQuestion, func(text, lower string, hasSession bool) bool {
			return containsAny(lower, questionIndicators)
		}},
	}
	return c
}

// Classify runs the cascade. Callers must not pass empty or whitespace-only
// text; the router discards those upstream.
func (c *Classifier) Classify(text string, hasSession bool) Intent {
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		if r.match(text, lower, hasSession) {
			return r.intent
		}
	}
	return IntentUnrecognized
}

// ParseCommand splits a prefixed command line into its token and arguments.
// The prefix may be any single rune, so the cut is rune-aware.
func ParseCommand(text string) (token string, args []string) {
	_, size := utf8.DecodeRuneInString(text)
	parts := strings.Fields(strings.TrimSpace(text[size:]))
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
