package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"digital_store/internal/hash"
	"digital_store/internal/models"
	"digital_store/internal/transport"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate looks the user up by email and verifies the plaintext
// password against the stored bcrypt hash.
func (r *GormRepo) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uint, req transport.UpdateUserRequest) error {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return err
	}

	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	return r.DB.WithContext(ctx).Save(&user).Error
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(&user).Error
}
