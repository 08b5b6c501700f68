package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/user-registry/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает созданную
// запись с назначенными базой uid и created_at. Вставка атомарна: при нарушении
// уникальности username или email возвращается *DuplicateError и запись не создается.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	data, err := marshalData(user.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO users (first_name, last_name, username, email, password_hash, role, data)
			  VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
			  RETURNING uid, role, created_at;`
	created := user
	if err := s.DB.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email,
		user.PasswordHash, user.Role, data).Scan(&created.UID, &created.Role, &created.CreatedAt); err != nil {
		if dup := asDuplicateError(err); dup != nil {
			return nil, fmt.Errorf("%s: %w", op, dup)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}

// FindUserByEmail возвращает пользователя по его email.
// Отсутствие записи ошибкой не является: возвращается (nil, nil).
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	return s.findUser(ctx, op, `email = $1`, email)
}

// FindUserByUsername возвращает пользователя по его username.
// Отсутствие записи ошибкой не является: возвращается (nil, nil).
func (s *Storage) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.FindUserByUsername"
	return s.findUser(ctx, op, `username = $1`, username)
}

func (s *Storage) findUser(ctx context.Context, op, where string, arg any) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, first_name, last_name, username, email, password_hash, role, data, created_at
			  FROM users
			  WHERE ` + where
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)

	var data []byte
	if err := row.Scan(&u.UID, &u.FirstName, &u.LastName, &u.Username, &u.Email,
		&u.PasswordHash, &u.Role, &data, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &u.Data); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return u, nil
}

// marshalData сериализует произвольные данные пользователя для колонки JSONB.
// nil остается NULL в базе.
func marshalData(data map[string]any) (any, error) {
	if data == nil {
		return nil, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
