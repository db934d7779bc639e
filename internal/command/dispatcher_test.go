package command_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rimbac/edubot/internal/ai"
	"github.com/rimbac/edubot/internal/command"
	"github.com/rimbac/edubot/internal/content"
	"github.com/rimbac/edubot/internal/quiz"
	"github.com/rimbac/edubot/internal/user"
)

type fakeUsers struct {
	users     map[string]*user.User
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]*user.User)}
}

func (f *fakeUsers) GetByPhone(phone string) (*user.User, error) {
	return f.users[phone], nil
}

func (f *fakeUsers) CreateIfAbsent(phone string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[phone]; !ok {
		f.users[phone] = &user.User{PhoneNumber: phone}
	}
	return nil
}

func (f *fakeUsers) TouchActivity(phone string) error { return nil }

func (f *fakeUsers) AddPoints(phone string, delta int) error {
	if u, ok := f.users[phone]; ok {
		u.Points += delta
	}
	return nil
}

func (f *fakeUsers) Register(phone, name, gradeLevel string) (*user.User, error) {
	u, ok := f.users[phone]
	if !ok {
		u = &user.User{PhoneNumber: phone}
		f.users[phone] = u
	}
	u.Name = name
	u.GradeLevel = gradeLevel
	return u, nil
}

func (f *fakeUsers) Count() (int64, error) { return int64(len(f.users)), nil }

func (f *fakeUsers) ListPhones() ([]string, error) {
	var phones []string
	for phone := range f.users {
		phones = append(phones, phone)
	}
	return phones, nil
}

type logEntry struct {
	phone, messageType, command string
}

type fakeLogs struct {
	entries []logEntry
}

func (f *fakeLogs) Log(userPhone, messageType, cmd string, responseTimeMS int64) error {
	f.entries = append(f.entries, logEntry{userPhone, messageType, cmd})
	return nil
}

func (f *fakeLogs) Count() (int64, error) { return int64(len(f.entries)), nil }

type fakeResults struct {
	saved   []*quiz.Result
	history []*quiz.Result
	average float64
}

func (f *fakeResults) SaveAndAward(result *quiz.Result, points int) error {
	f.saved = append(f.saved, result)
	return nil
}

func (f *fakeResults) ListByUser(phone string, limit int) ([]*quiz.Result, error) {
	return f.history, nil
}

func (f *fakeResults) CountByUser(phone string) (int64, error) {
	return int64(len(f.history)), nil
}

func (f *fakeResults) AverageScoreByUser(phone string) (float64, error) { return f.average, nil }

func (f *fakeResults) Count() (int64, error) { return int64(len(f.saved)), nil }

type staticProvider struct {
	reply string
	err   error
}

func (p staticProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

type fakeSender struct {
	sent    map[string]string
	failFor string
}

func (f *fakeSender) Send(ctx context.Context, identity, text string) error {
	if identity == f.failFor {
		return errors.New("delivery refused")
	}
	if f.sent == nil {
		f.sent = make(map[string]string)
	}
	f.sent[identity] = text
	return nil
}

type fixture struct {
	dispatcher *command.Dispatcher
	users      *fakeUsers
	logs       *fakeLogs
	results    *fakeResults
	engine     *quiz.Engine
	sender     *fakeSender
}

func newFixture(provider ai.Provider) *fixture {
	users := newFakeUsers()
	logs := &fakeLogs{}
	results := &fakeResults{}
	catalog := content.New()
	engine := quiz.NewEngine(quiz.NewSessionStore(), catalog, results)
	assistant := ai.NewAssistant(provider, time.Second)
	sender := &fakeSender{}

	d := command.NewDispatcher(
		users, logs, catalog, engine, results, assistant, sender,
		"+222 11111111", []string{"22222222222"},
	)

	return &fixture{dispatcher: d, users: users, logs: logs, results: results, engine: engine, sender: sender}
}

func TestDispatchAuthorization(t *testing.T) {
	ctx := context.Background()

	t.Run("owner command denied for regular user", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "حالة_البوت", nil, "22299999999")

		if !strings.Contains(reply, "مخصص للمالك فقط") {
			t.Errorf("expected owner-only denial, got %q", reply)
		}
		if len(f.logs.entries) != 0 {
			t.Error("denied command must not be recorded as usage")
		}
	})

	t.Run("owner number matches despite formatting", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "حالة_البوت", nil, "222-1111-1111")

		if !strings.Contains(reply, "حالة البوت") {
			t.Errorf("expected bot status report, got %q", reply)
		}
	})

	t.Run("admin command allowed for admin", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "إحصائيات_عامة", nil, "22222222222")

		if !strings.Contains(reply, "إحصائيات البوت العامة") {
			t.Errorf("expected admin stats, got %q", reply)
		}
	})

	t.Run("admin command allowed for owner", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "إحصائيات_عامة", nil, "22211111111")

		if !strings.Contains(reply, "إحصائيات البوت العامة") {
			t.Errorf("expected admin stats, got %q", reply)
		}
	})

	t.Run("admin command denied for regular user", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "بث", []string{"hi"}, "22299999999")

		if !strings.Contains(reply, "غير مصرح لك") {
			t.Errorf("expected admin denial, got %q", reply)
		}
	})
}

func TestDispatchUnknownToken(t *testing.T) {
	ctx := context.Background()

	t.Run("assistant failure falls back to static listing", func(t *testing.T) {
		f := newFixture(staticProvider{err: errors.New("model unavailable")})

		reply := f.dispatcher.Dispatch(ctx, "غامض", nil, "22299999999")

		if !strings.Contains(reply, "أمر غير معروف") {
			t.Errorf("expected static unknown-command listing, got %q", reply)
		}
	})

	t.Run("assistant answer is used when available", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "جرب الأمر !الكتب"})

		reply := f.dispatcher.Dispatch(ctx, "غامض", nil, "22299999999")

		if !strings.Contains(reply, "جرب الأمر !الكتب") {
			t.Errorf("expected assistant suggestion, got %q", reply)
		}
	})
}

func TestDispatchBookkeeping(t *testing.T) {
	ctx := context.Background()

	t.Run("user record is ensured before handling", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		f.dispatcher.Dispatch(ctx, "نصيحة", nil, "22299999999")

		if _, ok := f.users.users["22299999999"]; !ok {
			t.Error("expected user row to be created")
		}
	})

	t.Run("user creation failure returns generic reply", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})
		f.users.createErr = errors.New("db down")

		reply := f.dispatcher.Dispatch(ctx, "نصيحة", nil, "22299999999")

		if !strings.Contains(reply, "حدث خطأ أثناء معالجة طلبك") {
			t.Errorf("expected generic failure reply, got %q", reply)
		}
	})

	t.Run("usage is recorded under the canonical token", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		f.dispatcher.Dispatch(ctx, "TIP", nil, "22299999999")

		if len(f.logs.entries) != 1 {
			t.Fatalf("expected one usage entry, got %d", len(f.logs.entries))
		}
		entry := f.logs.entries[0]
		if entry.messageType != "command" || entry.command != "نصيحة" {
			t.Errorf("unexpected usage entry: %+v", entry)
		}
	})
}

func TestRegisterAndQuizFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("register validates the grade", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "تسجيل", []string{"أحمد", "محمد", "99"}, "22299999999")

		if !strings.Contains(reply, "المرحلة التعليمية غير صحيحة") {
			t.Errorf("expected grade validation error, got %q", reply)
		}
	})

	t.Run("register stores name and grade", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "تسجيل", []string{"أحمد", "محمد", "1"}, "22299999999")

		if !strings.Contains(reply, "تم تسجيل بياناتك بنجاح") {
			t.Fatalf("expected registration confirmation, got %q", reply)
		}
		u := f.users.users["22299999999"]
		if u.Name != "أحمد محمد" || u.GradeLevel != "1" {
			t.Errorf("unexpected stored user: %+v", u)
		}
	})

	t.Run("quiz falls back to the registered grade", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})
		f.dispatcher.Dispatch(ctx, "تسجيل", []string{"أحمد", "1"}, "22299999999")

		reply := f.dispatcher.Dispatch(ctx, "اختبار", []string{"رياضيات"}, "22299999999")

		if !f.engine.Sessions().Has("22299999999") {
			t.Fatal("expected a quiz session to start")
		}
		if !strings.Contains(reply, "السؤال 1/2") {
			t.Errorf("expected first question, got %q", reply)
		}
	})

	t.Run("quiz without grade asks for one", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "اختبار", []string{"رياضيات"}, "22299999999")

		if !strings.Contains(reply, "يرجى تحديد المرحلة التعليمية") {
			t.Errorf("expected grade prompt, got %q", reply)
		}
	})
}

func TestScorePercentages(t *testing.T) {
	ctx := context.Background()

	t.Run("quiz history rounds to nearest percent", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})
		f.results.history = []*quiz.Result{
			{Subject: "رياضيات", GradeLevel: "1", Score: 2, TotalQuestions: 3, CreatedAt: time.Now()},
		}

		reply := f.dispatcher.Dispatch(ctx, "اختباري", nil, "22299999999")

		if !strings.Contains(reply, "2/3 (67%)") {
			t.Errorf("expected 2/3 to round to 67%%, got %q", reply)
		}
	})

	t.Run("stats rounds the average score", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})
		f.users.users["22299999999"] = &user.User{
			PhoneNumber: "22299999999", Name: "أحمد", GradeLevel: "1",
		}
		f.results.average = 84.6

		reply := f.dispatcher.Dispatch(ctx, "إحصائياتي", nil, "22299999999")

		if !strings.Contains(reply, "المعدل العام: 85%") {
			t.Errorf("expected 84.6 to round to 85%%, got %q", reply)
		}
	})
}

func TestBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("skips the sender and counts failures out", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})
		f.users.users["22211111111"] = &user.User{PhoneNumber: "22211111111"}
		f.users.users["22233333333"] = &user.User{PhoneNumber: "22233333333"}
		f.users.users["22244444444"] = &user.User{PhoneNumber: "22244444444"}
		f.sender.failFor = "22233333333"

		reply := f.dispatcher.Dispatch(ctx, "بث", []string{"إعلان", "مهم"}, "22211111111")

		if !strings.Contains(reply, "(1)") {
			t.Errorf("expected one delivered message, got %q", reply)
		}
		if _, ok := f.sender.sent["22211111111"]; ok {
			t.Error("broadcast must not echo to the sender")
		}
		if f.sender.sent["22244444444"] != "إعلان مهم" {
			t.Errorf("unexpected delivered text: %q", f.sender.sent["22244444444"])
		}
	})

	t.Run("requires a message", func(t *testing.T) {
		f := newFixture(staticProvider{reply: "ok"})

		reply := f.dispatcher.Dispatch(ctx, "بث", nil, "22211111111")

		if !strings.Contains(reply, "الاستخدام") {
			t.Errorf("expected usage reply, got %q", reply)
		}
	})
}
