package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"olyph-ai-be/internal/dto"
	"olyph-ai-be/internal/entity"
	"olyph-ai-be/internal/pkg/logger"
	"olyph-ai-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo  contract.UserRepository
	jwtSecret string
	log       logger.ILogger
}

func NewAuthService(userRepo contract.UserRepository, jwtSecret string, log logger.ILogger) IAuthService {
	if log == nil {
		log = logger.Noop()
	}
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}

	if !s.verifyPassword(ctx, user, req.Password) {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token}, nil
}

// verifyPassword checks a bcrypt hash, with one convenience: rows
// imported from the legacy user file may still hold plaintext (anything
// not starting with "$2"). A successful plaintext match is migrated to
// bcrypt in place.
func (s *authService) verifyPassword(ctx context.Context, user *entity.User, password string) bool {
	stored := user.PasswordHash
	if stored == "" {
		return false
	}

	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	if password != stored {
		return false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err == nil {
		if err := s.userRepo.UpdatePasswordHash(ctx, user, string(hash)); err != nil {
			s.log.Warn("auth", "legacy password migration failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			s.log.Info("auth", "migrated legacy plaintext password", map[string]interface{}{
				"email": user.Email,
			})
		}
	}
	return true
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
