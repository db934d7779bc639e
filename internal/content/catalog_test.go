package content_test

import (
	"testing"

	"github.com/rimbac/edubot/internal/content"
)

func TestGradeLookups(t *testing.T) {
	c := content.New()

	t.Run("known grade", func(t *testing.T) {
		g := c.GradeInfo("1")
		if g == nil {
			t.Fatal("expected grade 1")
		}
		if g.Category != "primary" || g.Name == "" {
			t.Errorf("unexpected grade info: %+v", g)
		}
	})

	t.Run("secondary track code", func(t *testing.T) {
		g := c.GradeInfo("sciences")
		if g == nil || g.Category != "secondary" {
			t.Fatalf("expected secondary track, got %+v", g)
		}
	})

	t.Run("unknown grade", func(t *testing.T) {
		if g := c.GradeInfo("99"); g != nil {
			t.Errorf("expected nil, got %+v", g)
		}
	})

	t.Run("grade codes preserve catalog order", func(t *testing.T) {
		codes := c.GradeCodes()
		if len(codes) != 14 {
			t.Fatalf("expected 14 grade codes, got %d", len(codes))
		}
		if codes[0] != "1" || codes[len(codes)-1] != "mathematics" {
			t.Errorf("unexpected order: first=%s last=%s", codes[0], codes[len(codes)-1])
		}
	})

	t.Run("subjects for unknown grade", func(t *testing.T) {
		if s := c.SubjectsForGrade("99"); s != nil {
			t.Errorf("expected nil, got %v", s)
		}
	})
}

func TestQuizAndBookKeys(t *testing.T) {
	c := content.New()

	t.Run("quiz bank exists", func(t *testing.T) {
		bank := c.Quiz("رياضيات", "1")
		if len(bank) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(bank))
		}
		for i, q := range bank {
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				t.Errorf("question %d: correct index %d out of range", i, q.Correct)
			}
		}
	})

	t.Run("missing quiz bank", func(t *testing.T) {
		if bank := c.Quiz("فيزياء", "9"); bank != nil {
			t.Errorf("expected nil bank, got %v", bank)
		}
	})

	t.Run("book exists", func(t *testing.T) {
		b := c.Book("رياضيات", "1")
		if b == nil {
			t.Fatal("expected grade 1 math book")
		}
		if b.DownloadURL == "" || len(b.Chapters) == 0 {
			t.Errorf("incomplete book metadata: %+v", b)
		}
	})

	t.Run("missing book", func(t *testing.T) {
		if b := c.Book("فيزياء", "9"); b != nil {
			t.Errorf("expected nil, got %+v", b)
		}
	})
}

func TestSearch(t *testing.T) {
	c := content.New()

	t.Run("subject match", func(t *testing.T) {
		results := c.Search("الرياضيات")
		if len(results) == 0 {
			t.Fatal("expected matches for الرياضيات")
		}
		foundSubject := false
		for _, r := range results {
			if r.Type == "subject" && r.Grade == "" {
				t.Errorf("subject hit missing grade: %+v", r)
			}
			if r.Type == "subject" {
				foundSubject = true
			}
		}
		if !foundSubject {
			t.Error("expected at least one subject hit")
		}
	})

	t.Run("university match", func(t *testing.T) {
		results := c.Search("نواكشوط")
		if len(results) != 1 || results[0].Type != "university" {
			t.Errorf("expected one university hit, got %v", results)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if results := c.Search("zzzz"); results != nil {
			t.Errorf("expected nil, got %v", results)
		}
	})

	t.Run("blank query", func(t *testing.T) {
		if results := c.Search("   "); results != nil {
			t.Errorf("expected nil, got %v", results)
		}
	})
}

func TestRandomTip(t *testing.T) {
	c := content.New()
	if tip := c.RandomTip(); tip == "" {
		t.Error("expected a non-empty tip")
	}
}
