package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	GetByPhone(phone string) (*User, error)
	CreateIfAbsent(phone string) error
	TouchActivity(phone string) error
	AddPoints(phone string, delta int) error
	Register(phone, name, gradeLevel string) (*User, error)
	Count() (int64, error)
	ListPhones() ([]string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByPhone(phone string) (*User, error) {
	var u User
	if err := r.db.First(&u, "phone_number = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CreateIfAbsent(phone string) error {
	u := User{PhoneNumber: phone}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoNothing: true,
	}).Create(&u).Error
}

func (r *userRepository) TouchActivity(phone string) error {
	return r.db.Model(&User{}).
		Where("phone_number = ?", phone).
		Update("last_activity", time.Now()).Error
}

func (r *userRepository) AddPoints(phone string, delta int) error {
	return r.db.Model(&User{}).
		Where("phone_number = ?", phone).
		Update("points", gorm.Expr("points + ?", delta)).Error
}

func (r *userRepository) Register(phone, name, gradeLevel string) (*User, error) {
	u := User{PhoneNumber: phone, Name: name, GradeLevel: gradeLevel}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "grade_level", "last_activity"}),
	}).Create(&u).Error; err != nil {
		return nil, err
	}
	return r.GetByPhone(phone)
}

func (r *userRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *userRepository) ListPhones() ([]string, error) {
	var phones []string
	if err := r.db.Model(&User{}).Pluck("phone_number", &phones).Error; err != nil {
		return nil, err
	}
	return phones, nil
}
