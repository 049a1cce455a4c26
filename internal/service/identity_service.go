package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/auth"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/repository"
)

// RegisterInput — данные регистрации пользователя.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Identity — текущая идентичность для клиента: пользователь плюс
// производный флаг "является ли провайдером".
type Identity struct {
	User       *model.User
	IsProvider bool
}

// IdentityService — тонкая аутентификация: регистрация, вход, текущий
// пользователь. Существует только как источник user_id и флага
// IsProvider для остальных сервисов.
type IdentityService struct {
	users     repository.UserRepository
	providers *ProviderService
	tokens    *auth.TokenManager
}

func NewIdentityService(
	users repository.UserRepository,
	providers *ProviderService,
	tokens *auth.TokenManager,
) *IdentityService {
	return &IdentityService{
		users:     users,
		providers: providers,
		tokens:    tokens,
	}
}

// Register создаёт пользователя. Дубликат email — apperr.ErrConflict.
func (s *IdentityService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, apperr.Validation("email", "required")
	}
	if len(input.Password) < 8 {
		return nil, apperr.Validation("password", "must be at least 8 characters")
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage("find user by email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("hash password", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Storage("create user", err)
	}
	return user, nil
}

// Login проверяет пару email/пароль и возвращает подписанный токен.
// Неверный email и неверный пароль неразличимы для вызывающего.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.ErrNotFound
		}
		return "", nil, apperr.Storage("find user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.ErrNotFound
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, apperr.Storage("issue token", err)
	}
	return token, user, nil
}

// CurrentUser возвращает идентичность по user ID из токена. Флаг
// IsProvider каждый раз выводится из наличия профиля провайдера, а не
// хранится в сессии.
func (s *IdentityService) CurrentUser(ctx context.Context, userID uuid.UUID) (*Identity, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("find user", err)
	}

	isProvider, err := s.providers.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Identity{User: user, IsProvider: isProvider}, nil
}
