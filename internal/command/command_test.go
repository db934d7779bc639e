package command_test

import (
	"testing"

	"github.com/rimbac/edubot/internal/command"
)

func TestRegistryLookup(t *testing.T) {
	r := command.NewRegistry()

	t.Run("canonical token", func(t *testing.T) {
		cmd := r.Lookup("المساعدة")
		if cmd == nil || cmd.Kind != command.KindHelp {
			t.Fatalf("expected help command, got %+v", cmd)
		}
	})

	t.Run("english alias", func(t *testing.T) {
		cmd := r.Lookup("quiz")
		if cmd == nil || cmd.Kind != command.KindQuiz {
			t.Fatalf("expected quiz command, got %+v", cmd)
		}
	})

	t.Run("alias is case insensitive", func(t *testing.T) {
		cmd := r.Lookup("HELP")
		if cmd == nil || cmd.Kind != command.KindHelp {
			t.Fatalf("expected help command, got %+v", cmd)
		}
	})

	t.Run("alias and canonical resolve to same entry", func(t *testing.T) {
		if r.Lookup("بث") != r.Lookup("broadcast") {
			t.Error("alias and canonical should share one descriptor")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		if cmd := r.Lookup("nonsense"); cmd != nil {
			t.Errorf("expected nil, got %+v", cmd)
		}
	})

	t.Run("tiers", func(t *testing.T) {
		if r.Lookup("نصيحة").Tier != command.TierPublic {
			t.Error("tip should be public")
		}
		if r.Lookup("بث").Tier != command.TierAdmin {
			t.Error("broadcast should be admin tier")
		}
		if r.Lookup("حالة_البوت").Tier != command.TierOwner {
			t.Error("bot status should be owner tier")
		}
	})
}

func TestNormalizeNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"22212345678", "22212345678"},
		{"+222 1234-5678", "22212345678"},
		{"222.12.34.56.78", "22212345678"},
		{"+222 1234 5678@s.whatsapp.net", "22212345678"},
		{"", ""},
		{"abc", ""},
	}

	for _, tc := range cases {
		if got := command.NormalizeNumber(tc.in); got != tc.want {
			t.Errorf("NormalizeNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
