package command

import (
	"context"
	"strings"
	"time"

	"github.com/rimbac/edubot/internal/ai"
	"github.com/rimbac/edubot/internal/config"
	"github.com/rimbac/edubot/internal/content"
	"github.com/rimbac/edubot/internal/messagelog"
	"github.com/rimbac/edubot/internal/quiz"
	"github.com/rimbac/edubot/internal/user"
)

const genericFailureReply = "❌ حدث خطأ أثناء معالجة طلبك. يرجى المحاولة مرة أخرى."

// Sender pushes an outbound message to one identity, fire-and-forget.
// Used by broadcast; failures are logged, never retried.
type Sender interface {
	Send(ctx context.Context, identity, text string) error
}

// Dispatcher resolves a command token, enforces authorization tiers, invokes
// the handler, and records usage. Unknown tokens fall back to the AI
// assistant. No error or panic escapes Dispatch.
type Dispatcher struct {
	registry  *Registry
	users     user.UserRepository
	logs      messagelog.LogRepository
	catalog   *content.Catalog
	engine    *quiz.Engine
	results   quiz.ResultRepository
	assistant *ai.Assistant
	sender    Sender

	ownerNumber  string
	adminNumbers []string
	startedAt    time.Time

	handlers map[Kind]HandlerFunc
}

func NewDispatcher(
	users user.UserRepository,
	logs messagelog.LogRepository,
	catalog *content.Catalog,
	engine *quiz.Engine,
	results quiz.ResultRepository,
	assistant *ai.Assistant,
	sender Sender,
	ownerNumber string,
	adminNumbers []string,
) *Dispatcher {
	d := &Dispatcher{
		registry:     NewRegistry(),
		users:        users,
		logs:         logs,
		catalog:      catalog,
		engine:       engine,
		results:      results,
		assistant:    assistant,
		sender:       sender,
		ownerNumber:  NormalizeNumber(ownerNumber),
		adminNumbers: adminNumbers,
		startedAt:    time.Now(),
	}

	d.handlers = map[Kind]HandlerFunc{
		KindHelp:         d.helpCommand,
		KindStart:        d.startCommand,
		KindRegister:     d.registerCommand,
		KindBooks:        d.booksCommand,
		KindGrades:       d.gradesCommand,
		KindSubjects:     d.subjectsCommand,
		KindQuiz:         d.quizCommand,
		KindMyQuizzes:    d.myQuizzesCommand,
		KindUniversities: d.universitiesCommand,
		KindScholarships: d.scholarshipsCommand,
		KindCompetitions: d.competitionsCommand,
		KindProfile:      d.profileCommand,
		KindStats:        d.statsCommand,
		KindSearch:       d.searchCommand,
		KindTip:          d.tipCommand,
		KindAsk:          d.askCommand,
		KindExplain:      d.explainCommand,
		KindSummarize:    d.summarizeCommand,
		KindSmartQuiz:    d.smartQuizCommand,
		KindTutor:        d.tutorCommand,
		KindSolve:        d.solveCommand,
		KindAdminStats:   d.adminStatsCommand,
		KindBroadcast:    d.broadcastCommand,
		KindBotStatus:    d.botStatusCommand,
		KindRestart:      d.restartCommand,
	}

	return d
}

// Dispatch handles one parsed command line.
func (d *Dispatcher) Dispatch(ctx context.Context, token string, args []string, identity string) (reply string) {
	log := config.WithContext(ctx)
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.WithField("command", token).Errorf("Handler panicked: %v", r)
			reply = genericFailureReply
		}
	}()

	if err := d.users.CreateIfAbsent(identity); err != nil {
		log.WithError(err).Error("Failed to ensure user record")
		return genericFailureReply
	}
	if err := d.users.TouchActivity(identity); err != nil {
		log.WithError(err).Warn("Failed to stamp user activity")
	}

	cmd := d.registry.Lookup(token)
	if cmd == nil {
		return d.unknownCommand(ctx, token, args, identity)
	}

	switch cmd.Tier {
	case TierOwner:
		if !d.isOwner(identity) {
			return "❌ هذا الأمر مخصص للمالك فقط"
		}
	case TierAdmin:
		if !d.isOwner(identity) && !d.isAdmin(identity) {
			return "❌ غير مصرح لك بهذا الأمر"
		}
	}

	reply = d.handlers[cmd.Kind](ctx, args, identity)

	elapsed := time.Since(started).Milliseconds()
	if err := d.logs.Log(identity, "command", cmd.Canonical, elapsed); err != nil {
		log.WithError(err).Warn("Failed to record command usage")
	}

	return reply
}

// Help renders the command overview for callers outside the dispatch path,
// without recording a command invocation.
func (d *Dispatcher) Help(ctx context.Context, identity string) string {
	return d.helpCommand(ctx, nil, identity)
}

// unknownCommand asks the assistant what the user meant; the static listing
// is the fallback when the assistant itself fails.
func (d *Dispatcher) unknownCommand(ctx context.Context, token string, args []string, identity string) string {
	fullQuery := strings.TrimSpace(token + " " + strings.Join(args, " "))
	aiContext := "المستخدم يحاول استخدام أمر غير معروف في بوت تعليمي موريتاني. ساعده في فهم ما يريد وقدم له الأوامر المناسبة."
	if grade := d.gradeContext(identity); grade != "" {
		aiContext += " " + grade
	}

	answer, err := d.assistant.Answer(ctx, fullQuery, identity, aiContext)
	if err != nil {
		return unknownCommandReply(token)
	}

	return "🤖 *مساعد ذكي*\n\n" + answer + "\n\n📝 اكتب *!المساعدة* لرؤية جميع الأوامر المتاحة"
}

func unknownCommandReply(token string) string {
	return "❓ *أمر غير معروف:* " + token + "\n\n" +
		"💡 *الأوامر المتاحة:*\n" +
		"• *!المساعدة* - عرض جميع الأوامر\n" +
		"• *!الكتب* - الكتب المدرسية\n" +
		"• *!اختبار* - الاختبارات التفاعلية\n" +
		"• *!الجامعات* - الجامعات الموريتانية\n" +
		"• *!المنح* - المنح الدراسية\n" +
		"• *!بحث* - البحث في المحتوى\n\n" +
		"📝 اكتب *!المساعدة* للحصول على القائمة الكاملة"
}

func (d *Dispatcher) isOwner(identity string) bool {
	return NormalizeNumber(identity) == d.ownerNumber
}

func (d *Dispatcher) isAdmin(identity string) bool {
	normalized := NormalizeNumber(identity)
	for _, admin := range d.adminNumbers {
		if NormalizeNumber(admin) == normalized {
			return true
		}
	}
	return false
}

// NormalizeNumber strips every non-digit rune before comparison.
func NormalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// gradeName resolves a grade code to its display name, falling back to the
// raw code.
func (d *Dispatcher) gradeName(code string) string {
	if g := d.catalog.GradeInfo(code); g != nil {
		return g.Name
	}
	return code
}

// gradeContext builds the "student is in grade X" framing for AI calls.
func (d *Dispatcher) gradeContext(identity string) string {
	u, err := d.users.GetByPhone(identity)
	if err != nil || u == nil || u.GradeLevel == "" {
		return ""
	}
	return "الطالب في " + d.gradeName(u.GradeLevel)
}
