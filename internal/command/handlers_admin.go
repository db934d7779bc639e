package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rimbac/edubot/internal/config"
)

// Owner and admin commands. Tier checks happen in Dispatch before these run.

func (d *Dispatcher) botStatusCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	totalUsers, err := d.users.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count users")
		return "❌ خطأ في جلب حالة البوت"
	}
	totalQuizzes, err := d.results.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count quiz results")
		return "❌ خطأ في جلب حالة البوت"
	}
	totalMessages, err := d.logs.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count message logs")
		return "❌ خطأ في جلب حالة البوت"
	}

	uptime := time.Since(d.startedAt)

	reply := "👑 *حالة البوت - المالك*\n\n"
	reply += "🤖 *معلومات النظام:*\n"
	reply += "• الحالة: ✅ يعمل بشكل طبيعي\n"
	reply += fmt.Sprintf("• وقت التشغيل: %.0f ثانية\n\n", uptime.Seconds())

	reply += "📊 *إحصائيات الاستخدام:*\n"
	reply += fmt.Sprintf("• إجمالي المستخدمين: %d\n", totalUsers)
	reply += fmt.Sprintf("• إجمالي الاختبارات: %d\n", totalQuizzes)
	reply += fmt.Sprintf("• إجمالي الرسائل: %d\n", totalMessages)
	reply += fmt.Sprintf("• الاختبارات النشطة: %d\n\n", d.engine.Sessions().Len())

	reply += "🧠 *حالة الذكاء الاصطناعي:*\n"
	reply += "• Gemini AI: ✅ متصل\n"
	reply += fmt.Sprintf("• المحادثات النشطة: %d\n\n", d.assistant.SessionCount())

	reply += "📅 تاريخ التقرير: " + time.Now().Format("02/01/2006 15:04")

	return reply
}

func (d *Dispatcher) restartCommand(ctx context.Context, args []string, identity string) string {
	return "🔄 *إعادة تشغيل البوت*\n\n" +
		"⚠️ سيتم إعادة تشغيل البوت خلال 5 ثوانٍ...\n" +
		"📱 ستحتاج لإعادة المصادقة إذا لزم الأمر\n\n" +
		"👑 تم الطلب من المالك: " + identity
}

func (d *Dispatcher) adminStatsCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	totalUsers, err := d.users.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count users")
		return "❌ خطأ في جلب الإحصائيات"
	}
	totalQuizzes, err := d.results.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count quiz results")
		return "❌ خطأ في جلب الإحصائيات"
	}
	totalMessages, err := d.logs.Count()
	if err != nil {
		log.WithError(err).Error("Failed to count message logs")
		return "❌ خطأ في جلب الإحصائيات"
	}

	reply := "📊 *إحصائيات البوت العامة*\n\n"
	reply += fmt.Sprintf("👥 إجمالي المستخدمين: %d\n", totalUsers)
	reply += fmt.Sprintf("🧠 إجمالي الاختبارات: %d\n", totalQuizzes)
	reply += fmt.Sprintf("💬 إجمالي الرسائل: %d\n\n", totalMessages)
	reply += "📅 تاريخ التقرير: " + time.Now().Format("02/01/2006 15:04")

	return reply
}

func (d *Dispatcher) broadcastCommand(ctx context.Context, args []string, identity string) string {
	log := config.WithContext(ctx)

	if len(args) == 0 {
		return "📢 *البث العام*\n\nالاستخدام: *!بث* [الرسالة]"
	}
	if d.sender == nil {
		return "❌ البث غير متاح حالياً"
	}

	message := strings.Join(args, " ")

	phones, err := d.users.ListPhones()
	if err != nil {
		log.WithError(err).Error("Failed to list users for broadcast")
		return genericFailureReply
	}

	sent := 0
	for _, phone := range phones {
		if phone == identity {
			continue
		}
		if err := d.sender.Send(ctx, phone, message); err != nil {
			log.WithError(err).WithField("recipient", phone).Warn("Broadcast delivery failed")
			continue
		}
		sent++
	}

	log.Infof("Broadcast delivered to %d/%d users", sent, len(phones))
	return fmt.Sprintf("✅ تم إرسال الرسالة لجميع المستخدمين (%d):\n\n\"%s\"", sent, message)
}
