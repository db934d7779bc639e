package quiz

import (
	"github.com/rimbac/edubot/internal/content"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Engine   *Engine
	Sessions *SessionStore
	Results  ResultRepository
}

func NewQuizContainer(db *gorm.DB, catalog *content.Catalog) *QuizContainer {
	sessions := NewSessionStore()
	results := NewResultRepository(db)
	engine := NewEngine(sessions, catalog, results)

	return &QuizContainer{
		Engine:   engine,
		Sessions: sessions,
		Results:  results,
	}
}
