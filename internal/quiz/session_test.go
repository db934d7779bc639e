package quiz_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/rimbac/edubot/internal/quiz"
)

func TestSessionStore(t *testing.T) {
	t.Run("get on empty store", func(t *testing.T) {
		store := quiz.NewSessionStore()

		if _, ok := store.Get("222001"); ok {
			t.Error("expected no session")
		}
		if store.Has("222001") {
			t.Error("Has should report false for unknown identity")
		}
	})

	t.Run("put then get", func(t *testing.T) {
		store := quiz.NewSessionStore()
		store.Put("222001", &quiz.Session{Subject: "رياضيات"})

		s, ok := store.Get("222001")
		if !ok || s.Subject != "رياضيات" {
			t.Errorf("expected stored session, got %+v ok=%v", s, ok)
		}
		if store.Len() != 1 {
			t.Errorf("expected length 1, got %d", store.Len())
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		store := quiz.NewSessionStore()
		store.Put("222001", &quiz.Session{Subject: "رياضيات"})
		store.Put("222001", &quiz.Session{Subject: "عربية"})

		s, _ := store.Get("222001")
		if s.Subject != "عربية" {
			t.Errorf("expected overwritten session, got %s", s.Subject)
		}
		if store.Len() != 1 {
			t.Errorf("expected length 1, got %d", store.Len())
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := quiz.NewSessionStore()
		store.Put("222001", &quiz.Session{})

		store.Delete("222001")
		store.Delete("222001")

		if store.Has("222001") || store.Len() != 0 {
			t.Error("expected empty store after delete")
		}
	})

	t.Run("concurrent access on shared identities", func(t *testing.T) {
		store := quiz.NewSessionStore()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				identity := "2220000000" + strconv.Itoa(n%4)
				for j := 0; j < 200; j++ {
					store.Put(identity, &quiz.Session{Subject: "رياضيات"})
					if s, ok := store.Get(identity); ok && s.Subject != "رياضيات" {
						t.Errorf("read a torn session: %+v", s)
					}
					store.Has(identity)
					store.Len()
					store.Delete(identity)
				}
			}(i)
		}
		wg.Wait()

		if store.Len() != 0 {
			t.Errorf("expected empty store after churn, got %d", store.Len())
		}
	})

	t.Run("identities are independent", func(t *testing.T) {
		store := quiz.NewSessionStore()
		store.Put("222001", &quiz.Session{Subject: "رياضيات"})
		store.Put("222002", &quiz.Session{Subject: "عربية"})

		store.Delete("222001")

		if store.Has("222001") {
			t.Error("deleted identity still present")
		}
		if !store.Has("222002") {
			t.Error("unrelated identity was removed")
		}
	})
}
