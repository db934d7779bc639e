package ai

import "fmt"

const systemPrompt = `أنت مساعد تعليمي ذكي لموقع RIMBAC (الطالب الموريتاني).
تخصصك هو مساعدة الطلاب الموريتانيين في جميع المراحل التعليمية.

قواعد مهمة:
- أجب باللغة العربية دائماً
- كن مفيداً ومشجعاً للطلاب
- قدم معلومات دقيقة وموثوقة
- ساعد في الواجبات والدروس
- اشرح المفاهيم بطريقة بسيطة ومفهومة`

// buildPrompt frames a user question with the assistant rules, an optional
// context line, and the recent exchange history for that identity.
func buildPrompt(question, contextStr string, history []exchange) string {
	prompt := systemPrompt + "\n\n"
	if contextStr != "" {
		prompt += "السياق: " + contextStr + "\n\n"
	}
	for _, ex := range history {
		prompt += "سؤال سابق: " + ex.question + "\nإجابة سابقة: " + ex.answer + "\n\n"
	}
	prompt += "السؤال: " + question
	return prompt
}

func buildExplainPrompt(concept, level string) string {
	return fmt.Sprintf(`اشرح هذا المفهوم بطريقة بسيطة ومفهومة للطلاب:

المفهوم: %s
المستوى التعليمي: %s

يرجى تقديم:
1. تعريف واضح
2. أمثلة عملية
3. تطبيقات في الحياة اليومية
4. نصائح لفهم المفهوم بشكل أفضل

استخدم لغة بسيطة ومناسبة للمستوى التعليمي المحدد.`, concept, level)
}

func buildQuizPrompt(topic, difficulty string, questionCount int) string {
	return fmt.Sprintf(`أنشئ اختباراً تعليمياً حول موضوع: %s

المتطلبات:
- المستوى: %s
- عدد الأسئلة: %d
- نوع الأسئلة: اختيار من متعدد
- باللغة العربية

تنسيق الإجابة:
السؤال 1: [نص السؤال]
أ) [خيار 1]
ب) [خيار 2]
ج) [خيار 3]
د) [خيار 4]
الإجابة الصحيحة: [الحرف]

كرر هذا التنسيق لجميع الأسئلة.`, topic, difficulty, questionCount)
}
