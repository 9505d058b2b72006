// Package services содержит логику бизнес-уровня для регистрации и входа пользователей.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/healthmon/auth-backend/internal/lib/fieldmap"
	"github.com/healthmon/auth-backend/internal/lib/sl"
	"github.com/healthmon/auth-backend/internal/models"
	"github.com/healthmon/auth-backend/internal/storage"
)

// Сообщения, которые получает клиент.
const (
	MsgUserRegistered      = "User Registered"
	MsgRegistrationFailed  = "Registration Failed"
	MsgEmailExists         = "Email already exists"
	MsgLoginSuccess        = "Login Success"
	MsgInvalidCredentials  = "Invalid Credentials"
	msgDatabaseErrorPrefix = "Database Error: "
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет пользователя и возвращает число вставленных строк.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// LoginUser возвращает пользователя с совпадающими email и паролем
	// или storage.ErrUserNotFound.
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService отвечает за регистрацию и вход.
type AuthService struct {
	users UserRepository
	log   *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, log *slog.Logger) *AuthService {
	return &AuthService{
		users: users,
		log:   log,
	}
}

// Register сохраняет пользователя из полей запроса. Никакой проверки полей
// не выполняется: отсутствующие значения становятся пустыми строками,
// нечисловой возраст становится 0. Идентификатор в ответе всегда 0.
func (s *AuthService) Register(ctx context.Context, fields fieldmap.FieldMap) models.AuthResult {
	const op = "services.AuthService.Register"
	log := s.log.With(sl.Op(op))

	user := models.User{
		Username: fields["username"],
		Age:      parseAge(fields["age"]),
		Gender:   fields["gender"],
		Contact:  fields["contact"],
		Email:    fields["email"],
		Password: fields["password"],
		UserType: fields["userType"],
	}

	affected, err := s.users.RegisterUser(ctx, user)
	switch {
	case storage.IsConstraintViolation(err):
		var dbErr *storage.Error
		errors.As(err, &dbErr)
		log.Info("email already registered",
			slog.String("email", user.Email),
			slog.String("constraint", dbErr.Constraint),
		)
		return models.Failure(MsgEmailExists)
	case err != nil:
		logStoreError(log, err)
		return models.Failure(databaseError(err))
	case affected <= 0:
		log.Warn("insert affected no rows", slog.String("email", user.Email))
		return models.Failure(MsgRegistrationFailed)
	}

	log.Info("user registered", slog.String("email", user.Email))
	return models.Success(models.UserInfo{
		ID:       0,
		Username: user.Username,
		Email:    user.Email,
		UserType: user.UserType,
	}, MsgUserRegistered)
}

// Login ищет пользователя по email и паролю. Неизвестный email и неверный
// пароль дают одинаковый ответ.
func (s *AuthService) Login(ctx context.Context, fields fieldmap.FieldMap) models.AuthResult {
	const op = "services.AuthService.Login"
	log := s.log.With(sl.Op(op))

	email := fields["email"]

	user, err := s.users.LoginUser(ctx, email, fields["password"])
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		log.Info("invalid credentials", slog.String("email", email))
		return models.Failure(MsgInvalidCredentials)
	case err != nil:
		logStoreError(log, err)
		return models.Failure(databaseError(err))
	}

	log.Info("user logged in", slog.String("email", email), slog.Int("id", user.ID))
	return models.Success(models.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    email,
		UserType: user.UserType,
	}, MsgLoginSuccess)
}

// parseAge разбирает возраст как десятичное 32-битное целое. Нечисловое
// значение или выход за диапазон дают 0.
func parseAge(raw string) int {
	age, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int(age)
}

// databaseError формирует текст ответа из сообщения драйвера.
func databaseError(err error) string {
	var dbErr *storage.Error
	if errors.As(err, &dbErr) {
		return msgDatabaseErrorPrefix + dbErr.Message()
	}
	return msgDatabaseErrorPrefix + err.Error()
}

func logStoreError(log *slog.Logger, err error) {
	var dbErr *storage.Error
	if errors.As(err, &dbErr) && dbErr.Kind == storage.KindTransient {
		log.Warn("transient storage error", sl.Err(err))
		return
	}
	log.Error("storage error", sl.Err(err))
}
