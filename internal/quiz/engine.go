package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rimbac/edubot/internal/config"
	"github.com/rimbac/edubot/internal/content"
)

const answerBase = 'A'

// Engine owns the per-identity quiz state machine. All replies are final
// user-facing text; errors never escape to the transport.
type Engine struct {
	sessions *SessionStore
	catalog  *content.Catalog
	results  ResultRepository
}

func NewEngine(sessions *SessionStore, catalog *content.Catalog, results ResultRepository) *Engine {
	return &Engine{
		sessions: sessions,
		catalog:  catalog,
		results:  results,
	}
}

// Sessions exposes the store for the router's has-active-session check.
func (e *Engine) Sessions() *SessionStore {
	return e.sessions
}

// Start begins a quiz for (subject, grade). A session already active for the
// identity is overwritten and discarded. Returns the first question prompt,
// or a not-available reply when the catalog has no questions for the pair.
func (e *Engine) Start(ctx context.Context, identity, subject, grade string) string {
	log := config.WithContext(ctx)

	bank := e.catalog.Quiz(subject, grade)
	if len(bank) == 0 {
		return fmt.Sprintf("❌ لا توجد اختبارات متاحة لمادة %s في المرحلة %s\n\n"+
			"💡 الاختبارات المتاحة حالياً:\n"+
			"• رياضيات - المرحلة 1\n"+
			"• عربية - المرحلة 1\n\n"+
			"🔄 سيتم إضافة المزيد من الاختبارات قريباً", subject, grade)
	}

	session := newSession(subject, grade, bank)
	e.sessions.Put(identity, session)

	log.WithField("identity", identity).Infof("Quiz started: %s/%s, %d questions", subject, grade, len(bank))
	return e.questionPrompt(session)
}

// Answer consumes one answer letter for the identity's active session. An
// out-of-range letter re-presents the same question without advancing.
func (e *Engine) Answer(ctx context.Context, identity, letter string) string {
	session, ok := e.sessions.Get(identity)
	if !ok {
		return "❌ لا يوجد اختبار نشط\n\nاكتب *!اختبار* [المادة] [المرحلة] لبدء اختبار جديد"
	}

	question := session.Questions[session.Current]
	answerIndex := int(letter[0]) - answerBase

	if answerIndex < 0 || answerIndex >= len(question.Options) {
		return "❌ إجابة غير صحيحة\n\nيرجى إرسال A, B, C, أو D"
	}

	correct := answerIndex == question.Correct
	session.Answers = append(session.Answers, RecordedAnswer{
		QuestionIndex: session.Current,
		ChosenOption:  answerIndex,
		Correct:       correct,
	})
	if correct {
		session.CorrectCount++
	}
	session.Current++

	if session.Done() {
		return e.finalize(ctx, identity, session)
	}

	feedback := "✅ إجابة صحيحة!\n\n"
	if !correct {
		feedback = fmt.Sprintf("❌ إجابة خاطئة\n💡 %s\n\n", question.Explanation)
	}
	return feedback + e.questionPrompt(session)
}

func (e *Engine) questionPrompt(s *Session) string {
	question := s.Questions[s.Current]

	reply := fmt.Sprintf("🧠 *اختبار %s - المرحلة %s*\n\n", s.Subject, s.Grade)
	reply += fmt.Sprintf("❓ *السؤال %d/%d:*\n%s\n\n", s.Current+1, len(s.Questions), question.Text)

	reply += "📝 *الخيارات:*\n"
	for i, option := range question.Options {
		reply += fmt.Sprintf("%c. %s\n", answerBase+rune(i), option)
	}

	reply += "\n💡 أرسل حرف الإجابة (A, B, C, أو D)"
	return reply
}

func (e *Engine) finalize(ctx context.Context, identity string, s *Session) string {
	log := config.WithContext(ctx)

	elapsed := int(time.Since(s.StartedAt) / time.Second)
	total := len(s.Questions)
	percentage := int(math.Round(float64(s.CorrectCount) / float64(total) * 100))
	points := pointsForPercentage(percentage)

	answers, err := json.Marshal(s.Answers)
	if err != nil {
		log.WithError(err).Error("Failed to encode recorded answers")
		answers = []byte("[]")
	}

	result := &Result{
		UserPhone:      identity,
		QuizType:       "subject_quiz",
		Subject:        s.Subject,
		GradeLevel:     s.Grade,
		Score:          s.CorrectCount,
		TotalQuestions: total,
		CompletionSecs: elapsed,
		Answers:        answers,
	}
	if err := e.results.SaveAndAward(result, points); err != nil {
		log.WithError(err).Error("Failed to persist quiz result")
	}

	e.sessions.Delete(identity)

	reply := "🎉 *تم إنهاء الاختبار!*\n\n"
	reply += "📊 *النتائج:*\n"
	reply += fmt.Sprintf("• النتيجة: %d/%d\n", s.CorrectCount, total)
	reply += fmt.Sprintf("• النسبة المئوية: %d%%\n", percentage)
	reply += fmt.Sprintf("• الوقت المستغرق: %d:%02d\n\n", elapsed/60, elapsed%60)
	reply += performanceBand(percentage)
	reply += "\n\n📝 اكتب *!إحصائياتي* لرؤية تقدمك العام"

	return reply
}

// pointsForPercentage maps a score percentage to the reward tier. First
// matching band wins, descending.
func pointsForPercentage(percentage int) int {
	switch {
	case percentage >= 90:
		return 10
	case percentage >= 80:
		return 8
	case percentage >= 70:
		return 5
	case percentage >= 60:
		return 3
	default:
		return 0
	}
}

func performanceBand(percentage int) string {
	switch {
	case percentage >= 90:
		return "🏆 *ممتاز!* أداء رائع جداً!\n🎁 حصلت على 10 نقاط"
	case percentage >= 80:
		return "🥈 *جيد جداً!* أداء مميز!\n🎁 حصلت على 8 نقاط"
	case percentage >= 70:
		return "🥉 *جيد!* يمكنك تحسين أدائك\n🎁 حصلت على 5 نقاط"
	case percentage >= 60:
		return "📚 *مقبول* - راجع المادة وحاول مرة أخرى\n🎁 حصلت على 3 نقاط"
	default:
		return "📖 *يحتاج تحسين* - راجع المادة جيداً\n💪 لا تستسلم، حاول مرة أخرى!"
	}
}
