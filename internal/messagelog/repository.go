package messagelog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogRepository interface {
	Log(userPhone, messageType, command string, responseTimeMS int64) error
	Count() (int64, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Log(userPhone, messageType, command string, responseTimeMS int64) error {
	entry := MessageLog{
		ID:             uuid.New(),
		UserPhone:      userPhone,
		MessageType:    messageType,
		Command:        command,
		ResponseTimeMS: responseTimeMS,
	}
	return r.db.Create(&entry).Error
}

func (r *logRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&MessageLog{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
