package repository

import (
	"errors"

	"auth-api/internals/models"

	"gorm.io/gorm"
)

// GormUsers implements Users on a gorm connection.
type GormUsers struct {
	DB *gorm.DB
}

func NewUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{DB: db}
}

func (r *GormUsers) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUsers) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUsers) Insert(user *models.User) error {
	return r.DB.Create(user).Error
}

// GormBlacklist implements Blacklist on a gorm connection.
type GormBlacklist struct {
	DB *gorm.DB
}

func NewBlacklist(db *gorm.DB) *GormBlacklist {
	return &GormBlacklist{DB: db}
}

func (r *GormBlacklist) Add(token string) error {
	err := r.DB.Create(&models.BlacklistToken{Token: token}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Already revoked; the unique index keeps Add idempotent.
		return nil
	}
	return err
}

func (r *GormBlacklist) Contains(token string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.BlacklistToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
