package contract

import (
	"context"

	"olyph-ai-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, user *entity.User, hash string) error
}
