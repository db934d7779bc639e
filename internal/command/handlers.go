package command

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rimbac/edubot/internal/config"
)

func (d *Dispatcher) helpCommand(ctx context.Context, args []string, identity string) string {
	return "🤖 *مرحباً بك في بوت RIMBAC للواتساب*\n\n" +
		"📚 *الأوامر التعليمية:*\n" +
		"• *!الكتب* - عرض الكتب المدرسية\n" +
		"• *!المراحل* - عرض المراحل التعليمية\n" +
		"• *!المواد* [المرحلة] - عرض مواد مرحلة معينة\n" +
		"• *!اختبار* [المادة] [المرحلة] - بدء اختبار\n" +
		"• *!بحث* [كلمة البحث] - البحث في المحتوى\n\n" +
		"🤖 *الذكاء الاصطناعي:*\n" +
		"• *!اسأل* [سؤالك] - اسأل الذكاء الاصطناعي\n" +
		"• *!اشرح* [المفهوم] - شرح أي مفهوم\n" +
		"• *!حل* [المسألة] - حل المسائل خطوة بخطوة\n" +
		"• *!اختبار_ذكي* [الموضوع] - اختبار مخصص بالذكاء الاصطناعي\n" +
		"• *!مساعد* [المادة] - مدرس شخصي ذكي\n" +
		"• *!لخص* [النص] - تلخيص أي نص\n\n" +
		"🎓 *الجامعات والمنح:*\n" +
		"• *!الجامعات* - الجامعات الموريتانية\n" +
		"• *!المنح* - المنح الدراسية المتاحة\n" +
		"• *!المسابقات* - المسابقات التعليمية\n\n" +
		"👤 *الملف الشخصي:*\n" +
		"• *!تسجيل* [الاسم] [المرحلة] - تسجيل بياناتك\n" +
		"• *!ملفي* - عرض ملفك الشخصي\n" +
		"• *!إحصائياتي* - عرض إحصائياتك\n" +
		"• *!اختباري* - عرض نتائج اختباراتك\n\n" +
		"💡 *أوامر أخرى:*\n" +
		"• *!نصيحة* - نصيحة تعليمية يومية\n" +
		"• *!المساعدة* - عرض هذه القائمة\n\n" +
		"📱 *طريقة الاستخدام:*\n" +
		"اكتب الأمر متبوعاً بعلامة التعجب (!)\n" +
		"مثال: !الكتب أو !اسأل ما هي الجاذبية؟"
}

func (d *Dispatcher) startCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	u, err := d.users.GetByPhone(identity)
	if err != nil {
		log.WithError(err).Error("Failed to load user for start")
	}
	isNewUser := u == nil || u.Name == ""

	reply := "🎓 *أهلاً وسهلاً بك في بوت RIMBAC*\n\n" +
		"📚 *موقع الطالب الموريتاني*\n" +
		"البوت الذكي لخدمة التعليم في موريتانيا\n\n"

	if isNewUser {
		reply += "🆕 *مرحباً بك لأول مرة!*\n" +
			"لتحصل على تجربة مخصصة، يرجى تسجيل بياناتك:\n" +
			"*!تسجيل* [اسمك] [مرحلتك التعليمية]\n\n" +
			"مثال: !تسجيل أحمد محمد 1\n" +
			"(للسنة الأولى ابتدائي)\n\n"
	} else {
		reply += fmt.Sprintf("👋 *أهلاً بك مرة أخرى %s!*\n", u.Name)
		reply += fmt.Sprintf("مرحلتك: %s\n", d.gradeName(u.GradeLevel))
		reply += fmt.Sprintf("نقاطك: %d نقطة\n\n", u.Points)
	}

	reply += "🚀 *ما يمكنني مساعدتك فيه:*\n" +
		"• الكتب المدرسية لجميع المراحل\n" +
		"• الاختبارات التفاعلية\n" +
		"• معلومات الجامعات والمنح\n" +
		"• المسابقات التعليمية\n" +
		"• النصائح الدراسية\n\n" +
		"📝 اكتب *!المساعدة* لرؤية جميع الأوامر"

	return reply
}

func (d *Dispatcher) registerCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	if len(args) < 2 {
		return "📝 *تسجيل البيانات*\n\n" +
			"الاستخدام الصحيح:\n" +
			"*!تسجيل* [الاسم] [المرحلة]\n\n" +
			"أمثلة:\n" +
			"• !تسجيل أحمد محمد 1 (للسنة الأولى ابتدائي)\n" +
			"• !تسجيل فاطمة علي 7 (للسنة الأولى إعدادي)\n" +
			"• !تسجيل محمد سالم literature_classic (للآداب الأصلية)\n\n" +
			"📚 *المراحل المتاحة:*\n" +
			"• 1-6: المرحلة الابتدائية\n" +
			"• 7-10: المرحلة الإعدادية\n" +
			"• literature_classic: الآداب الأصلية\n" +
			"• literature_modern: الآداب العصرية\n" +
			"• sciences: العلوم الطبيعية\n" +
			"• mathematics: الرياضيات"
	}

	name := strings.Join(args[:len(args)-1], " ")
	gradeLevel := args[len(args)-1]

	gradeInfo := d.catalog.GradeInfo(gradeLevel)
	if gradeInfo == nil {
		return fmt.Sprintf("❌ المرحلة التعليمية غير صحيحة: %s\n\n", gradeLevel) +
			"المراحل المتاحة:\n" +
			"• 1-6 للمرحلة الابتدائية\n" +
			"• 7-10 للمرحلة الإعدادية\n" +
			"• literature_classic, literature_modern, sciences, mathematics للثانوية"
	}

	if _, err := d.users.Register(identity, name, gradeLevel); err != nil {
		log.WithError(err).Error("Failed to register user")
		return "❌ حدث خطأ أثناء تسجيل بياناتك. يرجى المحاولة مرة أخرى."
	}

	return "✅ *تم تسجيل بياناتك بنجاح!*\n\n" +
		fmt.Sprintf("👤 الاسم: %s\n", name) +
		fmt.Sprintf("📚 المرحلة: %s\n", gradeInfo.Name) +
		fmt.Sprintf("📖 المواد المتاحة: %s\n\n", strings.Join(gradeInfo.Subjects, ", ")) +
		"🎯 يمكنك الآن:\n" +
		"• الحصول على الكتب المدرسية\n" +
		"• إجراء الاختبارات التفاعلية\n" +
		"• تتبع تقدمك الدراسي\n\n" +
		"📝 اكتب *!المساعدة* لرؤية جميع الأوامر"
}

func (d *Dispatcher) booksCommand(ctx context.Context, args []string, identity string) string {
	u, _ := d.users.GetByPhone(identity)

	if len(args) == 0 {
		reply := "📚 *الكتب المدرسية*\n\n"

		if u != nil && u.GradeLevel != "" {
			if gradeInfo := d.catalog.GradeInfo(u.GradeLevel); gradeInfo != nil {
				reply += fmt.Sprintf("📖 *كتب مرحلتك (%s):*\n", gradeInfo.Name)
				for _, subject := range gradeInfo.Subjects {
					reply += "• " + subject + "\n"
				}
				reply += "\n💡 اكتب: *!الكتب* [اسم المادة] لتحميل الكتاب\n\n"
			}
		}

		reply += "📋 *جميع المراحل المتاحة:*\n\n" +
			"🎒 *المرحلة الابتدائية:*\n" +
			"• السنة 1-6 ابتدائي\n\n" +
			"🎓 *المرحلة الإعدادية:*\n" +
			"• السنة 1-4 إعدادي\n\n" +
			"🏛️ *المرحلة الثانوية:*\n" +
			"• شعبة الآداب الأصلية\n" +
			"• شعبة الآداب العصرية\n" +
			"• شعبة العلوم الطبيعية\n" +
			"• شعبة الرياضيات\n\n" +
			"📝 *الاستخدام:*\n" +
			"!الكتب [المادة] [المرحلة]\n" +
			"مثال: !الكتب رياضيات 1"

		return reply
	}

	subject := args[0]
	grade := ""
	if len(args) > 1 {
		grade = args[1]
	} else if u != nil {
		grade = u.GradeLevel
	}

	if grade == "" {
		return "❌ يرجى تحديد المرحلة التعليمية\n\n" +
			"الاستخدام: *!الكتب* [المادة] [المرحلة]\n" +
			"مثال: !الكتب رياضيات 1"
	}

	book := d.catalog.Book(subject, grade)
	if book == nil {
		return fmt.Sprintf("❌ لم يتم العثور على كتاب %s للمرحلة %s\n\n", subject, grade) +
			"تأكد من:\n" +
			"• كتابة اسم المادة بشكل صحيح\n" +
			"• تحديد المرحلة الصحيحة\n\n" +
			fmt.Sprintf("📝 اكتب *!المواد* %s لرؤية المواد المتاحة", grade)
	}

	reply := fmt.Sprintf("📖 *%s*\n\n", book.Title)
	reply += fmt.Sprintf("📝 الوصف: %s\n\n", book.Description)
	reply += "📑 الفصول:\n"
	for _, chapter := range book.Chapters {
		reply += "• " + chapter + "\n"
	}
	reply += fmt.Sprintf("\n⬇️ رابط التحميل: %s\n\n", book.DownloadURL)
	reply += "💡 نصيحة: احفظ الرابط في مفضلتك للوصول السريع"

	return reply
}

func (d *Dispatcher) gradesCommand(ctx context.Context, args []string, identity string) string {
	reply := "🎓 *المراحل التعليمية في موريتانيا*\n\n"

	sections := []struct {
		header   string
		category string
	}{
		{"🎒 *المرحلة الابتدائية (6 سنوات):*", "primary"},
		{"🎓 *المرحلة الإعدادية (4 سنوات):*", "middle"},
		{"🏛️ *المرحلة الثانوية (3 سنوات):*", "secondary"},
	}

	for i, section := range sections {
		if i > 0 {
			reply += "\n"
		}
		reply += section.header + "\n"
		for _, code := range d.catalog.GradeCodes() {
			g := d.catalog.GradeInfo(code)
			if g.Category == section.category {
				reply += "• " + g.Name + "\n"
			}
		}
	}

	reply += "\n📝 *للحصول على مواد مرحلة معينة:*\n" +
		"اكتب: *!المواد* [رقم المرحلة]\n" +
		"مثال: !المواد 1 أو !المواد literature_classic"

	return reply
}

func (d *Dispatcher) subjectsCommand(ctx context.Context, args []string, identity string) string {
	gradeLevel := ""
	if len(args) > 0 {
		gradeLevel = args[0]
	} else if u, _ := d.users.GetByPhone(identity); u != nil {
		gradeLevel = u.GradeLevel
	}

	if gradeLevel == "" {
		return "📚 *عرض مواد مرحلة تعليمية*\n\n" +
			"الاستخدام: *!المواد* [المرحلة]\n\n" +
			"أمثلة:\n" +
			"• !المواد 1 (للسنة الأولى ابتدائي)\n" +
			"• !المواد 7 (للسنة الأولى إعدادي)\n" +
			"• !المواد sciences (لشعبة العلوم)\n\n" +
			"📝 اكتب *!المراحل* لرؤية جميع المراحل المتاحة"
	}

	gradeInfo := d.catalog.GradeInfo(gradeLevel)
	if gradeInfo == nil {
		return fmt.Sprintf("❌ المرحلة التعليمية غير موجودة: %s\n\n", gradeLevel) +
			"📝 اكتب *!المراحل* لرؤية جميع المراحل المتاحة"
	}

	reply := fmt.Sprintf("📚 *مواد %s*\n\n", gradeInfo.Name)
	reply += "📖 *المواد المتاحة:*\n"
	for i, subject := range gradeInfo.Subjects {
		reply += fmt.Sprintf("%d. %s\n", i+1, subject)
	}

	reply += "\n🎯 *ما يمكنك فعله:*\n" +
		"• *!الكتب* [المادة] - تحميل كتاب المادة\n" +
		"• *!اختبار* [المادة] - إجراء اختبار في المادة\n" +
		"• *!بحث* [المادة] - البحث عن محتوى المادة\n\n" +
		"💡 *أمثلة:*\n" +
		fmt.Sprintf("• !الكتب %s\n", gradeInfo.Subjects[0]) +
		fmt.Sprintf("• !اختبار %s", gradeInfo.Subjects[0])

	return reply
}

func (d *Dispatcher) quizCommand(ctx context.Context, args []string, identity string) string {
	u, _ := d.users.GetByPhone(identity)

	if len(args) == 0 {
		reply := "🧠 *الاختبارات التفاعلية*\n\n"

		if u != nil && u.GradeLevel != "" {
			if gradeInfo := d.catalog.GradeInfo(u.GradeLevel); gradeInfo != nil {
				reply += fmt.Sprintf("📝 *اختبارات مرحلتك (%s):*\n", gradeInfo.Name)
				for _, subject := range gradeInfo.Subjects {
					reply += "• !اختبار " + subject + "\n"
				}
				reply += "\n"
			}
		}

		reply += "📋 *كيفية إجراء الاختبار:*\n" +
			"*!اختبار* [المادة] [المرحلة]\n\n" +
			"🎯 *أمثلة:*\n" +
			"• !اختبار رياضيات 1\n" +
			"• !اختبار عربية 7\n" +
			"• !اختبار فيزياء sciences\n\n" +
			"🏆 *نظام النقاط:*\n" +
			"• 90%+ = 10 نقاط\n" +
			"• 80-89% = 8 نقاط\n" +
			"• 70-79% = 5 نقاط\n" +
			"• 60-69% = 3 نقاط\n\n" +
			"📊 اكتب *!اختباري* لرؤية نتائجك السابقة"

		return reply
	}

	subject := args[0]
	grade := ""
	if len(args) > 1 {
		grade = args[1]
	} else if u != nil {
		grade = u.GradeLevel
	}

	if grade == "" {
		return "❌ يرجى تحديد المرحلة التعليمية\n\n" +
			"الاستخدام: *!اختبار* [المادة] [المرحلة]\n" +
			"مثال: !اختبار رياضيات 1"
	}

	return d.engine.Start(ctx, identity, subject, grade)
}

func (d *Dispatcher) myQuizzesCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	results, err := d.results.ListByUser(identity, 10)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz results")
		return "❌ حدث خطأ أثناء جلب نتائج اختباراتك"
	}

	if len(results) == 0 {
		return "📊 *نتائج اختباراتك*\n\n" +
			"❌ لم تجرِ أي اختبارات بعد\n\n" +
			"🎯 ابدأ أول اختبار لك:\n" +
			"• *!اختبار* رياضيات 1\n" +
			"• *!اختبار* عربية 1\n\n" +
			"💡 احصل على نقاط من خلال الاختبارات!"
	}

	reply := "📊 *نتائج اختباراتك الأخيرة*\n\n"

	var percentageSum int
	for i, result := range results {
		percentage := int(math.Round(float64(result.Score) / float64(result.TotalQuestions) * 100))
		percentageSum += percentage

		medal := "📖"
		switch {
		case percentage >= 90:
			medal = "🏆"
		case percentage >= 80:
			medal = "🥈"
		case percentage >= 70:
			medal = "🥉"
		case percentage >= 60:
			medal = "📚"
		}

		reply += fmt.Sprintf("%d. %s *%s* (%s)\n", i+1, medal, result.Subject, d.gradeName(result.GradeLevel))
		reply += fmt.Sprintf("   النتيجة: %d/%d (%d%%)\n", result.Score, result.TotalQuestions, percentage)
		reply += fmt.Sprintf("   التاريخ: %s | الوقت: %d دقيقة\n\n",
			result.CreatedAt.Format("02/01/2006"), result.CompletionSecs/60)
	}

	reply += "📈 *الإحصائيات العامة:*\n"
	reply += fmt.Sprintf("• إجمالي الاختبارات: %d\n", len(results))
	reply += fmt.Sprintf("• المعدل العام: %d%%\n\n", percentageSum/len(results))
	reply += "🎯 اكتب *!اختبار* [المادة] لإجراء اختبار جديد"

	return reply
}

func (d *Dispatcher) universitiesCommand(ctx context.Context, args []string, identity string) string {
	reply := "🏛️ *الجامعات والمعاهد الموريتانية*\n\n"
	reply += "🎓 *الجامعات الحكومية:*\n"
	for i, university := range d.catalog.Universities() {
		reply += fmt.Sprintf("%d. %s\n", i+1, university)
	}

	reply += "\n📋 *معلومات مهمة:*\n" +
		"• شروط القبول تختلف حسب التخصص\n" +
		"• يتم القبول عبر مسابقة البكالوريا\n" +
		"• بعض التخصصات تتطلب اختبارات إضافية\n\n" +
		"💡 اكتب *!المنح* لرؤية المنح الدراسية المتاحة"

	return reply
}

func (d *Dispatcher) scholarshipsCommand(ctx context.Context, args []string, identity string) string {
	reply := "🎓 *المنح الدراسية المتاحة*\n\n"
	reply += "🌍 *المنح الخارجية:*\n"
	for i, scholarship := range d.catalog.Scholarships() {
		reply += fmt.Sprintf("%d. %s\n", i+1, scholarship)
	}

	reply += "\n📋 *شروط عامة للمنح:*\n" +
		"• معدل جيد في البكالوريا\n" +
		"• إتقان لغة الدراسة\n" +
		"• خطاب دافع قوي\n\n" +
		"📅 *مواعيد مهمة:*\n" +
		"• التقديم عادة من يناير إلى مارس\n" +
		"• النتائج تعلن في مايو-يونيو\n\n" +
		"📞 للمزيد من المعلومات، تواصل مع وزارة التعليم العالي"

	return reply
}

func (d *Dispatcher) competitionsCommand(ctx context.Context, args []string, identity string) string {
	reply := "🏆 *المسابقات التعليمية*\n\n"
	reply += "📚 *مسابقات التعليم:*\n"
	for i, competition := range d.catalog.Competitions() {
		reply += fmt.Sprintf("%d. %s\n", i+1, competition)
	}

	reply += "\n📅 *التقويم السنوي:*\n" +
		"• مسابقة دخول الثانوية: مايو\n" +
		"• البكالوريا: يونيو\n" +
		"• مسابقات التوظيف: متغيرة\n\n" +
		"📖 اكتب *!اختبار* لتدرب على الامتحانات"

	return reply
}

func (d *Dispatcher) profileCommand(ctx context.Context, args []string, identity string) string {
	u, err := d.users.GetByPhone(identity)
	if err != nil || u == nil {
		return "❌ لم يتم العثور على ملفك الشخصي\n\n" +
			"📝 اكتب *!تسجيل* [الاسم] [المرحلة] لإنشاء ملف شخصي"
	}

	name := u.Name
	if name == "" {
		name = "غير محدد"
	}
	membership := "عادية"
	if u.IsPremium {
		membership = "مميزة"
	}

	reply := "👤 *ملفك الشخصي*\n\n"
	reply += fmt.Sprintf("📛 الاسم: %s\n", name)
	reply += fmt.Sprintf("📚 المرحلة: %s\n", d.gradeName(u.GradeLevel))
	reply += fmt.Sprintf("⭐ النقاط: %d نقطة\n", u.Points)
	reply += fmt.Sprintf("📅 تاريخ التسجيل: %s\n", u.RegistrationDate.Format("02/01/2006"))
	reply += fmt.Sprintf("🕐 آخر نشاط: %s\n", u.LastActivity.Format("02/01/2006"))
	reply += fmt.Sprintf("💎 العضوية: %s\n\n", membership)

	if gradeInfo := d.catalog.GradeInfo(u.GradeLevel); gradeInfo != nil {
		reply += "📖 *المواد المتاحة:*\n"
		for _, subject := range gradeInfo.Subjects {
			reply += "• " + subject + "\n"
		}
		reply += "\n"
	}

	reply += "🎯 *الإجراءات المتاحة:*\n" +
		"• *!إحصائياتي* - عرض إحصائياتك التفصيلية\n" +
		"• *!اختباري* - عرض نتائج اختباراتك\n" +
		"• *!تسجيل* [اسم جديد] [مرحلة جديدة] - تحديث البيانات\n\n" +
		"💡 احصل على المزيد من النقاط عبر إجراء الاختبارات!"

	return reply
}

func (d *Dispatcher) statsCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	u, err := d.users.GetByPhone(identity)
	if err != nil || u == nil {
		return "❌ لم يتم العثور على إحصائياتك\n\n" +
			"📝 اكتب *!تسجيل* لإنشاء ملف شخصي أولاً"
	}

	quizCount, err := d.results.CountByUser(identity)
	if err != nil {
		log.WithError(err).Error("Failed to count quiz results")
		return genericFailureReply
	}
	average, err := d.results.AverageScoreByUser(identity)
	if err != nil {
		log.WithError(err).Error("Failed to compute average score")
		return genericFailureReply
	}
	averageScore := int(math.Round(average))

	reply := "📊 *إحصائياتك التفصيلية*\n\n"
	reply += "👤 *المعلومات الأساسية:*\n"
	reply += fmt.Sprintf("• الاسم: %s\n", u.Name)
	reply += fmt.Sprintf("• المرحلة: %s\n", d.gradeName(u.GradeLevel))
	reply += fmt.Sprintf("• النقاط الإجمالية: %d\n\n", u.Points)

	reply += "🧠 *إحصائيات الاختبارات:*\n"
	reply += fmt.Sprintf("• عدد الاختبارات: %d\n", quizCount)
	reply += fmt.Sprintf("• المعدل العام: %d%%\n", averageScore)

	performance := "📖 يحتاج تحسين"
	switch {
	case averageScore >= 90:
		performance = "🏆 ممتاز"
	case averageScore >= 80:
		performance = "🥈 جيد جداً"
	case averageScore >= 70:
		performance = "🥉 جيد"
	case averageScore >= 60:
		performance = "📚 مقبول"
	}
	reply += fmt.Sprintf("• مستوى الأداء: %s\n\n", performance)

	rank := "مبتدئ"
	switch {
	case u.Points >= 1000:
		rank = "عبقري"
	case u.Points >= 500:
		rank = "أستاذ"
	case u.Points >= 250:
		rank = "خبير"
	case u.Points >= 100:
		rank = "متقدم"
	}
	reply += fmt.Sprintf("🏅 *رتبتك الحالية:* %s\n\n", rank)

	reply += "🎯 *أهداف مقترحة:*\n"
	if quizCount < 5 {
		reply += "• أجرِ 5 اختبارات على الأقل\n"
	}
	if averageScore < 80 {
		reply += "• حسّن معدلك إلى 80% أو أكثر\n"
	}
	if u.Points < 100 {
		reply += "• اجمع 100 نقطة\n"
	}

	return reply
}

func (d *Dispatcher) searchCommand(ctx context.Context, args []string, identity string) string {
	if len(args) == 0 {
		return "🔍 *البحث في المحتوى*\n\n" +
			"الاستخدام: *!بحث* [كلمة البحث]\n\n" +
			"أمثلة:\n" +
			"• !بحث رياضيات\n" +
			"• !بحث جامعة نواكشوط\n" +
			"• !بحث منح تركيا\n" +
			"• !بحث مسابقة البكالوريا"
	}

	query := strings.Join(args, " ")
	results := d.catalog.Search(query)

	if len(results) == 0 {
		return fmt.Sprintf("❌ لم يتم العثور على نتائج لـ \"%s\"\n\n", query) +
			"💡 جرب البحث عن:\n" +
			"• أسماء المواد (رياضيات، عربية، فيزياء)\n" +
			"• أسماء الجامعات\n" +
			"• أنواع المنح\n" +
			"• المسابقات التعليمية"
	}

	reply := fmt.Sprintf("🔍 *نتائج البحث عن \"%s\"*\n\n", query)

	sections := []struct {
		header string
		typ    string
	}{
		{"🎓 *المراحل التعليمية:*", "grade"},
		{"📚 *المواد الدراسية:*", "subject"},
		{"🏛️ *الجامعات:*", "university"},
		{"🎓 *المنح الدراسية:*", "scholarship"},
	}

	for _, section := range sections {
		var lines []string
		for _, result := range results {
			if result.Type != section.typ {
				continue
			}
			if result.Type == "subject" {
				lines = append(lines, fmt.Sprintf("• %s (%s)", result.Subject, result.Grade))
			} else {
				lines = append(lines, "• "+result.Name)
			}
		}
		if len(lines) > 0 {
			reply += section.header + "\n" + strings.Join(lines, "\n") + "\n\n"
		}
	}

	reply += "💡 *إجراءات مقترحة:*\n" +
		"• *!الكتب* [المادة] - للحصول على الكتب\n" +
		"• *!اختبار* [المادة] - لإجراء اختبار\n" +
		"• *!الجامعات* - لمعلومات الجامعات\n" +
		"• *!المنح* - لمعلومات المنح"

	return reply
}

func (d *Dispatcher) tipCommand(ctx context.Context, args []string, identity string) string {
	return d.catalog.RandomTip() + "\n\n" +
		"🌟 *نصائح إضافية:*\n" +
		"• استخدم البوت يومياً للمراجعة\n" +
		"• شارك البوت مع زملائك\n" +
		"• اطرح أسئلتك في أي وقت\n\n" +
		"📝 اكتب *!نصيحة* للحصول على نصيحة جديدة"
}
