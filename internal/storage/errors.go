package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// DuplicateError описывает нарушение ограничения уникальности
// по конкретному полю (username или email). Ожидаемое состояние,
// а не системный сбой: логируется не выше уровня warn.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for unique field %s", e.Field)
}

// Имена уникальных индексов таблицы users.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

// asDuplicateError распознает ошибку нарушения уникальности PostgreSQL (23505)
// и по имени индекса определяет нарушенное поле. Для прочих ошибок возвращает nil.
func asDuplicateError(err error) *DuplicateError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case constraintUsersEmail:
		return &DuplicateError{Field: "email"}
	case constraintUsersUsername:
		return &DuplicateError{Field: "username"}
	default:
		return &DuplicateError{Field: pgErr.ConstraintName}
	}
}
