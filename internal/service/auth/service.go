package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	userRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/user"
)

// SessionResponse выданная сессия
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"` // unix seconds
	Email     string `json:"email"`
	Redirect  string `json:"redirect"`
}

// Service регистрация, вход и выход
type Service struct {
	users      UserRepository
	sessions   SessionProvider
	bcryptCost int
	logger     Logger
}

func NewService(users UserRepository, sessions SessionProvider, bcryptCost int, logger Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// SignUp регистрирует пользователя и сразу открывает сессию
func (s *Service) SignUp(ctx context.Context, email, password string) (*SessionResponse, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < domain.MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	user, err := s.users.Create(ctx, &domain.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("SignUp: email %s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: user=%s registered", user.ID)
	return s.issue(user)
}

// SignIn проверяет пароль и открывает сессию.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) SignIn(ctx context.Context, email, password string) (*SessionResponse, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SignIn: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("SignIn: wrong password for user=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("SignIn: user=%s signed in", user.ID)
	return s.issue(user)
}

// SignOut отзывает токен текущей сессии
func (s *Service) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.Error("SignOut: failed to revoke token: %v", err)
		return fmt.Errorf("%w: SignOut - revoke: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) issue(user *domain.User) (*SessionResponse, error) {
	token, err := s.sessions.Issue(domain.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("issue: failed to issue token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &SessionResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.Unix(),
		Email:     user.Email,
		Redirect:  domain.PathDashboard,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > domain.MaxEmailLength {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
