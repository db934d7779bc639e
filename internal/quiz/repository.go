package quiz

import (
	"github.com/rimbac/edubot/internal/user"
	"gorm.io/gorm"
)

type ResultRepository interface {
	// SaveAndAward persists the result and adds the awarded points to the
	// user row in one transaction.
	SaveAndAward(result *Result, points int) error
	ListByUser(phone string, limit int) ([]*Result, error)
	CountByUser(phone string) (int64, error)
	AverageScoreByUser(phone string) (float64, error)
	Count() (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) SaveAndAward(result *Result, points int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		if points > 0 {
			if err := tx.Model(&user.User{}).
				Where("phone_number = ?", result.UserPhone).
				Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *resultRepository) ListByUser(phone string, limit int) ([]*Result, error) {
	var results []*Result
	if err := r.db.
		Where("user_phone = ?", phone).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) CountByUser(phone string) (int64, error) {
	var n int64
	if err := r.db.Model(&Result{}).Where("user_phone = ?", phone).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *resultRepository) AverageScoreByUser(phone string) (float64, error) {
	var avg *float64
	err := r.db.Model(&Result{}).
		Where("user_phone = ?", phone).
		Select("AVG(CAST(score AS FLOAT) / total_questions * 100)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *resultRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&Result{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
