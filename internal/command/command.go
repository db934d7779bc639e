package command

import (
	"context"
	"strings"
)

// Kind enumerates every command the bot understands. The set is fixed at
// startup; dispatch goes through this tagged enumeration, not string
// comparison.
type Kind int

const (
	KindHelp Kind = iota
	KindStart
	KindRegister
	KindBooks
	KindGrades
	KindSubjects
	KindQuiz
	KindMyQuizzes
	KindUniversities
	KindScholarships
	KindCompetitions
	KindProfile
	KindStats
	KindSearch
	KindTip
	KindAsk
	KindExplain
	KindSummarize
	KindSmartQuiz
	KindTutor
	KindSolve
	KindAdminStats
	KindBroadcast
	KindBotStatus
	KindRestart
)

// Tier is the authorization level a command requires.
type Tier int

const (
	TierPublic Tier = iota
	TierAdmin       // owner or a configured admin number
	TierOwner       // the configured owner number only
)

// Command is one immutable registry entry.
type Command struct {
	Kind      Kind
	Canonical string
	Aliases   []string
	Tier      Tier
}

// HandlerFunc executes one command and returns the reply text.
type HandlerFunc func(ctx context.Context, args []string, identity string) string

// commandTable is the whole command surface, Arabic canonical tokens with
// English aliases. Built once; never mutated at runtime.
var commandTable = []Command{
	{Kind: KindHelp, Canonical: "المساعدة", Aliases: []string{"help"}},
	{Kind: KindStart, Canonical: "البداية", Aliases: []string{"start"}},
	{Kind: KindRegister, Canonical: "تسجيل", Aliases: []string{"register"}},
	{Kind: KindBooks, Canonical: "الكتب", Aliases: []string{"books"}},
	{Kind: KindGrades, Canonical: "المراحل", Aliases: []string{"grades"}},
	{Kind: KindSubjects, Canonical: "المواد", Aliases: []string{"subjects"}},
	{Kind: KindQuiz, Canonical: "اختبار", Aliases: []string{"quiz"}},
	{Kind: KindMyQuizzes, Canonical: "اختباري", Aliases: []string{"myquizzes"}},
	{Kind: KindUniversities, Canonical: "الجامعات", Aliases: []string{"universities"}},
	{Kind: KindScholarships, Canonical: "المنح", Aliases: []string{"scholarships"}},
	{Kind: KindCompetitions, Canonical: "المسابقات", Aliases: []string{"competitions"}},
	{Kind: KindProfile, Canonical: "ملفي", Aliases: []string{"profile"}},
	{Kind: KindStats, Canonical: "إحصائياتي", Aliases: []string{"stats"}},
	{Kind: KindSearch, Canonical: "بحث", Aliases: []string{"search"}},
	{Kind: KindTip, Canonical: "نصيحة", Aliases: []string{"tip"}},
	{Kind: KindAsk, Canonical: "اسأل", Aliases: []string{"ask"}},
	{Kind: KindExplain, Canonical: "اشرح", Aliases: []string{"explain"}},
	{Kind: KindSummarize, Canonical: "لخص", Aliases: []string{"summarize"}},
	{Kind: KindSmartQuiz, Canonical: "اختبار_ذكي", Aliases: []string{"smart_quiz"}},
	{Kind: KindTutor, Canonical: "مساعد", Aliases: []string{"tutor"}},
	{Kind: KindSolve, Canonical: "حل", Aliases: []string{"solve"}},
	{Kind: KindAdminStats, Canonical: "إحصائيات_عامة", Aliases: []string{"admin_stats"}, Tier: TierAdmin},
	{Kind: KindBroadcast, Canonical: "بث", Aliases: []string{"broadcast"}, Tier: TierAdmin},
	{Kind: KindBotStatus, Canonical: "حالة_البوت", Aliases: []string{"bot_status"}, Tier: TierOwner},
	{Kind: KindRestart, Canonical: "إعادة_تشغيل", Aliases: []string{"restart"}, Tier: TierOwner},
}

// Registry resolves a raw token (canonical or alias, case-insensitive) to its
// command descriptor.
type Registry struct {
	byToken map[string]*Command
}

func NewRegistry() *Registry {
	r := &Registry{byToken: make(map[string]*Command)}
	for i := range commandTable {
		cmd := &commandTable[i]
		r.byToken[cmd.Canonical] = cmd
		for _, alias := range cmd.Aliases {
			r.byToken[strings.ToLower(alias)] = cmd
		}
	}
	return r
}

// Lookup returns the command for a token, or nil.
func (r *Registry) Lookup(token string) *Command {
	return r.byToken[strings.ToLower(token)]
}
