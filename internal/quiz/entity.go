package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Result is one completed quiz, persisted at finalization.
type Result struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserPhone      string         `gorm:"type:text;not null;index" json:"user_phone"`
	QuizType       string         `gorm:"type:text;not null" json:"quiz_type"`
	Subject        string         `gorm:"type:text;not null" json:"subject"`
	GradeLevel     string         `gorm:"type:text;not null" json:"grade_level"`
	Score          int            `gorm:"not null" json:"score"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	CompletionSecs int            `gorm:"not null" json:"completion_secs"`
	Answers        datatypes.JSON `gorm:"type:jsonb" json:"answers,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Result) TableName() string { return "quiz_results" }
