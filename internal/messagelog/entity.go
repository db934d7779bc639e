package messagelog

import (
	"time"

	"github.com/google/uuid"
)

// MessageLog records one handled inbound message for usage accounting.
// Command is empty for non-command intents.
type MessageLog struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserPhone      string    `gorm:"type:text;not null;index" json:"user_phone"`
	MessageType    string    `gorm:"type:text;not null" json:"message_type"`
	Command        string    `gorm:"type:text" json:"command"`
	ResponseTimeMS int64     `gorm:"not null;default:0" json:"response_time_ms"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MessageLog) TableName() string { return "message_logs" }
