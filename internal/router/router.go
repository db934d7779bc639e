package router

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rimbac/edubot/internal/ai"
	"github.com/rimbac/edubot/internal/command"
	"github.com/rimbac/edubot/internal/config"
	"github.com/rimbac/edubot/internal/messagelog"
	"github.com/rimbac/edubot/internal/quiz"
	"github.com/rimbac/edubot/internal/user"
)

// Router is the single entry point for inbound messages. It classifies each
// message, routes it to the quiz engine, command dispatcher, or AI assistant,
// and serializes handling per identity so concurrent messages from the same
// user never interleave.
type Router struct {
	classifier *Classifier
	dispatcher *command.Dispatcher
	engine     *quiz.Engine
	assistant  *ai.Assistant
	users      user.UserRepository
	logs       messagelog.LogRepository

	ownerNumber string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRouter(
	classifier *Classifier,
	dispatcher *command.Dispatcher,
	engine *quiz.Engine,
	assistant *ai.Assistant,
	users user.UserRepository,
	logs messagelog.LogRepository,
	ownerNumber string,
) *Router {
	return &Router{
		classifier:  classifier,
		dispatcher:  dispatcher,
		engine:      engine,
		assistant:   assistant,
		users:       users,
		logs:        logs,
		ownerNumber: command.NormalizeNumber(ownerNumber),
		locks:       make(map[string]*sync.Mutex),
	}
}

// Handle processes one inbound message and returns the reply text. An empty
// return means no reply is sent. isGroup marks messages from group chats,
// where unrecognized chatter is ignored instead of answered.
func (r *Router) Handle(ctx context.Context, text, identity string, isGroup bool) string {
	log := config.WithContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lock := r.lockFor(identity)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now()
	intent := r.classifier.Classify(text, r.engine.Sessions().Has(identity))

	log.WithFields(map[string]interface{}{
		"identity": identity,
		"intent":   intent.String(),
		"group":    isGroup,
	}).Info("Message classified")

	var reply string
	switch intent {
	case IntentQuizAnswer:
		reply = r.engine.Answer(ctx, identity, strings.ToUpper(strings.TrimSpace(text)))

	case IntentCommand:
		token, args := ParseCommand(text)
		if token == "" {
			reply = r.dispatcher.Help(ctx, identity)
		} else {
			return r.dispatcher.Dispatch(ctx, token, args, identity)
		}

	case IntentGreeting:
		reply = r.greetingReply(ctx, identity)

	case IntentEducational:
		reply = r.educationalReply(ctx, text, identity)

	case IntentHelp:
		reply = r.dispatcher.Help(ctx, identity)

	case IntentMath:
		reply = r.mathReply(ctx, text, identity)

	case IntentQuestion:
		reply = r.questionReply(ctx, text, identity)

	default:
		if isGroup {
			return ""
		}
		reply = r.unrecognizedReply(ctx, text, identity)
	}

	elapsed := time.Since(started).Milliseconds()
	if err := r.logs.Log(identity, intent.String(), "", elapsed); err != nil {
		log.WithError(err).Warn("Failed to record message")
	}

	return reply
}

// lockFor returns the per-identity mutex, creating it on first use. Locks are
// never removed; the identity space is bounded by the user base.
func (r *Router) lockFor(identity string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[identity]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[identity] = lock
	}
	return lock
}

func (r *Router) greetingReply(ctx context.Context, identity string) string {
	log := config.WithContext(ctx)

	greeting := "مساء الخير 🌙"
	if h := time.Now().Hour(); h < 12 {
		greeting = "صباح الخير 🌅"
	}

	reply := greeting + "\n\n"

	u, err := r.users.GetByPhone(identity)
	if err != nil {
		log.WithError(err).Warn("Failed to load user for greeting")
	}

	if command.NormalizeNumber(identity) == r.ownerNumber {
		reply += "👑 أهلاً بالمالك المحترم!\n\n"
	}

	if u != nil && u.Name != "" {
		reply += "أهلاً وسهلاً بك *" + u.Name + "* في بوت RIMBAC التعليمي 🎓\n\n"
	} else {
		reply += "أهلاً وسهلاً بك في بوت RIMBAC التعليمي 🎓\n\n"
	}

	if u != nil && u.GradeLevel != "" {
		reply += "📚 مرحلتك الدراسية مسجلة لدينا\n"
		reply += "⭐ نقاطك الحالية: " + strconv.Itoa(u.Points) + "\n\n"
	} else {
		reply += "💡 سجل بياناتك بكتابة *!تسجيل* [الاسم] [المرحلة]\n\n"
	}

	reply += "📝 اكتب *!المساعدة* لرؤية جميع الأوامر المتاحة"
	return reply
}

func (r *Router) educationalReply(ctx context.Context, text, identity string) string {
	aiContext := "المستخدم يسأل عن المحتوى التعليمي في بوت تعليمي موريتاني. " +
		"وجهه للأوامر المناسبة: !الكتب للكتب المدرسية، !اختبار للاختبارات، " +
		"!الجامعات للجامعات، !المنح للمنح الدراسية."

	answer, err := r.assistant.Answer(ctx, text, identity, aiContext)
	if err != nil {
		return "📚 *المحتوى التعليمي*\n\n" +
			"يمكنك الوصول للمحتوى عبر الأوامر:\n" +
			"• *!الكتب* - الكتب المدرسية\n" +
			"• *!اختبار* - الاختبارات التفاعلية\n" +
			"• *!الجامعات* - الجامعات الموريتانية\n" +
			"• *!المنح* - المنح الدراسية\n\n" +
			"📝 اكتب *!المساعدة* للقائمة الكاملة"
	}

	return "📚 " + answer + "\n\n📝 اكتب *!المساعدة* لرؤية جميع الأوامر"
}

func (r *Router) mathReply(ctx context.Context, text, identity string) string {
	aiContext := "حل هذه المسألة الرياضية خطوة بخطوة مع الشرح."

	solution, err := r.assistant.Answer(ctx, text, identity, aiContext)
	if err != nil {
		return "🔢 يبدو أن لديك مسألة رياضية!\n\n" +
			"اكتب *!حل* متبوعاً بالمسألة وسأحلها لك خطوة بخطوة."
	}

	return "🔢 *حل المسألة*\n\n" + solution
}

func (r *Router) questionReply(ctx context.Context, text, identity string) string {
	answer, err := r.assistant.Answer(ctx, text, identity, "")
	if err != nil {
		return "🤔 سؤال جيد!\n\n" +
			"اكتب *!اسأل* متبوعاً بسؤالك وسأجيبك بالتفصيل."
	}

	return "🤖 " + answer
}

func (r *Router) unrecognizedReply(ctx context.Context, text, identity string) string {
	aiContext := "المستخدم أرسل رسالة غير واضحة لبوت تعليمي موريتاني. " +
		"حاول فهم ما يريد ووجهه للأوامر المناسبة."

	answer, err := r.assistant.Answer(ctx, text, identity, aiContext)
	if err != nil {
		return "👋 أهلاً بك!\n\n" +
			"لم أفهم رسالتك، لكن يمكنني مساعدتك:\n" +
			"• *!المساعدة* - جميع الأوامر\n" +
			"• *!اسأل* [سؤال] - اسأل الذكاء الاصطناعي\n" +
			"• *!اختبار* - ابدأ اختباراً تفاعلياً"
	}

	return "🤖 " + answer + "\n\n📝 اكتب *!المساعدة* لرؤية الأوامر المتاحة"
}
