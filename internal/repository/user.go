package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/research-metadata/catalog-api/internal/models"
)

type UserRepository struct {
	base[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{newBase[models.User](db, map[string]string{
		"email": "email",
		"name":  "name",
	})}
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findBy("email", email)
}

// RefreshTokenRepository stores one active token per user.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) FindByUserID(userID uint) (*models.RefreshToken, error) {
	var row models.RefreshToken
	err := r.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Save upserts the user's token, replacing any previous one.
func (r *RefreshTokenRepository) Save(token *models.RefreshToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "created_at"}),
	}).Create(token).Error
}

// DeleteByUserID removes the user's token. Absence is not an error.
func (r *RefreshTokenRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}
