package implementation

import (
	"context"
	"errors"

	"olyph-ai-be/internal/entity"
	"olyph-ai-be/internal/repository/contract"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdatePasswordHash(ctx context.Context, user *entity.User, hash string) error {
	user.PasswordHash = hash
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", user.Id).
		Update("password_hash", hash).Error
}
