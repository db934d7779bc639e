package command

import (
	"context"
	"fmt"
	"strings"
)

// AI-backed commands. Every one degrades to a static apology when the
// assistant fails; nothing propagates to the transport.

func (d *Dispatcher) askCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "🤖 *اسأل الذكاء الاصطناعي*\n\n" +
			"الاستخدام: *!اسأل* [سؤالك]\n\n" +
			"أمثلة:\n" +
			"• !اسأل ما هي قوانين نيوتن؟\n" +
			"• !اسأل كيف أحسب مساحة المثلث؟\n" +
			"• !اسأل ما هي عاصمة فرنسا؟\n\n" +
			"💡 يمكنني مساعدتك في جميع المواد الدراسية!"
	}

	question := strings.Join(args, " ")
	answer, err := d.assistant.Answer(ctx, question, identity, d.gradeContext(identity))
	if err != nil {
		return "❌ عذراً، لم أتمكن من الإجابة على سؤالك الآن. يرجى المحاولة مرة أخرى."
	}

	return "🤖 *الذكاء الاصطناعي يجيب*\n\n" + answer + "\n\n💡 اكتب *!اسأل* [سؤال جديد] لطرح سؤال آخر"
}

func (d *Dispatcher) explainCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "📚 *شرح المفاهيم*\n\n" +
			"الاستخدام: *!اشرح* [المفهوم]\n\n" +
			"أمثلة:\n" +
			"• !اشرح الجاذبية\n" +
			"• !اشرح النحو العربي\n" +
			"• !اشرح المعادلات التربيعية\n\n" +
			"🎯 سأشرح لك أي مفهوم بطريقة بسيطة ومفهومة!"
	}

	concept := strings.Join(args, " ")
	level := "ثانوي"
	if u, _ := d.users.GetByPhone(identity); u != nil && u.GradeLevel != "" {
		level = d.gradeName(u.GradeLevel)
	}

	explanation, err := d.assistant.Explain(ctx, concept, level)
	if err != nil {
		return "❌ عذراً، لم أتمكن من شرح هذا المفهوم الآن. يرجى المحاولة مرة أخرى."
	}

	return fmt.Sprintf("📚 *شرح: %s*\n\n%s\n\n🎯 اكتب *!اشرح* [مفهوم آخر] لشرح مفهوم جديد", concept, explanation)
}

func (d *Dispatcher) summarizeCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "📝 *تلخيص النصوص*\n\n" +
			"الاستخدام: *!لخص* [النص المراد تلخيصه]\n\n" +
			"أمثلة:\n" +
			"• !لخص درس الجاذبية في الفيزياء\n" +
			"• !لخص أحداث الحرب العالمية الثانية\n\n" +
			"🎯 سألخص لك أي نص بطريقة مفيدة ومركزة!"
	}

	text := strings.Join(args, " ")
	aiContext := "لخص هذا النص بطريقة واضحة ومفيدة للطالب. " + d.gradeContext(identity)

	summary, err := d.assistant.Answer(ctx, "لخص هذا النص: "+text, identity, aiContext)
	if err != nil {
		return "❌ عذراً، لم أتمكن من تلخيص هذا النص الآن. يرجى المحاولة مرة أخرى."
	}

	preview := text
	if len([]rune(preview)) > 100 {
		preview = string([]rune(preview)[:100]) + "..."
	}

	return fmt.Sprintf("📝 *ملخص النص*\n\n**النص الأصلي:** %s\n\n**الملخص:**\n%s\n\n"+
		"💡 اكتب *!لخص* [نص جديد] لتلخيص نص آخر", preview, summary)
}

func (d *Dispatcher) smartQuizCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "🧠 *الاختبار الذكي*\n\n" +
			"الاستخدام: *!اختبار_ذكي* [الموضوع] [المستوى]\n\n" +
			"أمثلة:\n" +
			"• !اختبار_ذكي الرياضيات سهل\n" +
			"• !اختبار_ذكي التاريخ متوسط\n" +
			"• !اختبار_ذكي الفيزياء صعب\n\n" +
			"🎯 سأنشئ لك اختباراً مخصصاً بالذكاء الاصطناعي!"
	}

	topic := strings.Join(args, " ")
	difficulty := "متوسط"
	if len(args) > 1 {
		topic = strings.Join(args[:len(args)-1], " ")
		difficulty = args[len(args)-1]
	}

	generated, err := d.assistant.GenerateQuiz(ctx, topic, difficulty, 5)
	if err != nil {
		return "❌ عذراً، لم أتمكن من إنشاء الاختبار الآن. يرجى المحاولة مرة أخرى."
	}

	return fmt.Sprintf("🧠 *اختبار ذكي: %s*\n\n%s\n\n📝 أرسل إجاباتك وسأقوم بتصحيحها لك!", topic, generated)
}

func (d *Dispatcher) tutorCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "👨‍🏫 *المدرس الشخصي*\n\n" +
			"الاستخدام: *!مساعد* [المادة أو الموضوع]\n\n" +
			"أمثلة:\n" +
			"• !مساعد رياضيات\n" +
			"• !مساعد اللغة العربية\n" +
			"• !مساعد الفيزياء\n\n" +
			"🎯 سأكون مدرسك الشخصي في أي مادة!"
	}

	subject := strings.Join(args, " ")
	aiContext := fmt.Sprintf("أنت مدرس شخصي للطالب في مادة %s. %s", subject, d.gradeContext(identity))
	question := fmt.Sprintf("أريد مساعدة في مادة %s. ما هي أهم النقاط التي يجب أن أركز عليها؟", subject)

	answer, err := d.assistant.Answer(ctx, question, identity, aiContext)
	if err != nil {
		return "❌ عذراً، لم أتمكن من مساعدتك الآن. يرجى المحاولة مرة أخرى."
	}

	return fmt.Sprintf("👨‍🏫 *مدرسك في %s*\n\n%s\n\n💬 يمكنك طرح أي سؤال عن هذه المادة!", subject, answer)
}

func (d *Dispatcher) solveCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "🔧 *حل المسائل*\n\n" +
			"الاستخدام: *!حل* [المسألة أو التمرين]\n\n" +
			"أمثلة:\n" +
			"• !حل 2x + 5 = 15\n" +
			"• !حل مساحة مثلث قاعدته 10 وارتفاعه 8\n\n" +
			"🎯 سأحل لك أي مسألة خطوة بخطوة!"
	}

	problem := strings.Join(args, " ")
	aiContext := "حل هذه المسألة خطوة بخطوة مع الشرح التفصيلي. " + d.gradeContext(identity)

	solution, err := d.assistant.Answer(ctx, problem, identity, aiContext)
	if err != nil {
		return "❌ عذراً، لم أتمكن من حل هذه المسألة الآن. يرجى المحاولة مرة أخرى."
	}

	return fmt.Sprintf("🔧 *حل المسألة*\n\n**المسألة:** %s\n\n**الحل:**\n%s\n\n"+
		"💡 اكتب *!حل* [مسألة جديدة] لحل مسألة أخرى", problem, solution)
}
