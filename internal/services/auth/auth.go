// Package services содержит логику бизнес-уровня для работы с пользователями
// и проверкой учетных данных.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/user-registry/internal/lib/password"
	"github.com/magabrotheeeer/user-registry/internal/lib/sl"
	"github.com/magabrotheeeer/user-registry/internal/metrics"
	"github.com/magabrotheeeer/user-registry/internal/models"
	"github.com/magabrotheeeer/user-registry/internal/storage"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// FindUserByEmail возвращает пользователя по email или (nil, nil), если не найден.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUserByUsername возвращает пользователя по username или (nil, nil), если не найден.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// VerifyOutcome — результат проверки учетных данных.
type VerifyOutcome string

// Возможные результаты VerifyCredentials.
const (
	OutcomeValid           VerifyOutcome = "valid"
	OutcomeInvalidPassword VerifyOutcome = "invalid_password"
	OutcomeUserNotFound    VerifyOutcome = "user_not_found"
)

// AuthService отвечает за регистрацию пользователей, поиск
// и проверку учетных данных.
type AuthService struct {
	users   UserRepository
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, log *slog.Logger, m *metrics.Metrics) *AuthService {
	return &AuthService{
		users:   users,
		log:     log,
		metrics: m,
	}
}

// Register создает нового пользователя: проверяет поля, хеширует пароль
// и выполняет одну атомарную вставку. Роль по умолчанию — "user".
// Ошибка валидации возвращается вызывающему без логирования как системный сбой,
// нарушение уникальности логируется на уровне warn.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	const op = "services.Register"

	if err := req.Validate(); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		s.log.Error("failed to hash password", sl.Op(op), sl.Err(err))
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, models.NewUser(req, hashed))
	if err != nil {
		var dup *storage.DuplicateError
		if errors.As(err, &dup) {
			s.log.Warn("duplicate user", sl.Op(op), slog.String("field", dup.Field))
		} else {
			s.log.Error("failed to create user", sl.Op(op), sl.Err(err))
		}
		return nil, err
	}

	s.log.Info("created new user", sl.Op(op),
		slog.String("uid", user.UID), slog.String("username", user.Username))
	s.metrics.UsersCreated.Inc()
	return user, nil
}

// FindByEmail возвращает пользователя по email или (nil, nil), если такого нет.
func (s *AuthService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "services.FindByEmail"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to find user by email", sl.Op(op), sl.Err(err))
		return nil, err
	}
	if user == nil {
		s.log.Info("user not found", sl.Op(op))
		return nil, nil
	}
	s.log.Info("user found", sl.Op(op), slog.String("uid", user.UID))
	return user, nil
}

// FindByUsername возвращает пользователя по username или (nil, nil), если такого нет.
func (s *AuthService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "services.FindByUsername"

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		s.log.Error("failed to find user by username", sl.Op(op), sl.Err(err))
		return nil, err
	}
	if user == nil {
		s.log.Info("user not found", sl.Op(op))
		return nil, nil
	}
	s.log.Info("user found", sl.Op(op), slog.String("uid", user.UID))
	return user, nil
}

// VerifyCredentials проверяет пару email/пароль и возвращает результат проверки.
// Несовпадение пароля и отсутствие пользователя — обычные результаты, не ошибки.
// Когда пользователь не найден, выполняется сравнение с фиктивным хешем,
// чтобы по времени ответа нельзя было отличить этот случай от неверного пароля.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, rawPassword string) (VerifyOutcome, error) {
	const op = "services.VerifyCredentials"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to find user by email", sl.Op(op), sl.Err(err))
		return "", err
	}

	if user == nil {
		password.FakeCompare()
		return s.outcome(op, OutcomeUserNotFound), nil
	}

	ok, err := password.Verify(rawPassword, user.PasswordHash)
	if err != nil {
		s.log.Error("failed to verify password", sl.Op(op), sl.Err(err))
		return "", err
	}
	if !ok {
		return s.outcome(op, OutcomeInvalidPassword), nil
	}
	return s.outcome(op, OutcomeValid), nil
}

func (s *AuthService) outcome(op string, outcome VerifyOutcome) VerifyOutcome {
	s.log.Info("credentials verified", sl.Op(op), slog.String("outcome", string(outcome)))
	s.metrics.CredentialChecks.WithLabelValues(string(outcome)).Inc()
	return outcome
}
