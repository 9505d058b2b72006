package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/healthmon/auth-backend/internal/models"
)

// RegisterUser вставляет пользователя и возвращает количество добавленных строк.
// Сгенерированный id не запрашивается. Ошибки драйвера возвращаются как *Error.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return 0, classify(op, ctx.Err())
	default:
	}

	var affected int64
	err := s.metrics.ObserveDB(op, classLabel, func() error {
		conn, err := s.DB.Conn(ctx)
		if err != nil {
			return err
		}
		defer func() {
			_ = conn.Close()
		}()

		result, err := conn.ExecContext(ctx, s.queries.insertUser,
			user.Username, user.Age, user.Gender, user.Contact,
			user.Email, user.Password, user.UserType)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, classify(op, err)
	}

	return affected, nil
}

// LoginUser ищет пользователя по точному совпадению email и пароля.
// Возвращает ErrUserNotFound, если строки нет. Заполнены только ID, Username,
// Email и UserType.
func (s *Storage) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	const op = "storage.LoginUser"
	select {
	case <-ctx.Done():
		return nil, classify(op, ctx.Err())
	default:
	}

	u := &models.User{Email: email}
	found := true
	err := s.metrics.ObserveDB(op, classLabel, func() error {
		conn, err := s.DB.Conn(ctx)
		if err != nil {
			return err
		}
		defer func() {
			_ = conn.Close()
		}()

		err = conn.QueryRowContext(ctx, s.queries.selectUser, email, password).
			Scan(&u.ID, &u.Username, &u.UserType)
		if errors.Is(err, sql.ErrNoRows) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, classify(op, err)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	return u, nil
}
