package user

import (
	"time"

	"github.com/google/uuid"
)

// User is one bot contact, keyed by the phone-derived identity string.
// A row exists before any command logic runs for that identity.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PhoneNumber      string    `gorm:"type:text;uniqueIndex;not null" json:"phone_number"`
	Name             string    `gorm:"type:text" json:"name"`
	GradeLevel       string    `gorm:"type:text" json:"grade_level"`
	Points           int       `gorm:"not null;default:0" json:"points"`
	IsPremium        bool      `gorm:"not null;default:false" json:"is_premium"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	LastActivity     time.Time `gorm:"autoCreateTime" json:"last_activity"`
}

func (User) TableName() string { return "users" }
