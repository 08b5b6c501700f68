// Package models содержит доменные структуры, описывающие пользователя,
// а также вспомогательные типы для валидации данных при регистрации.
package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator"
)

// Роли пользователя. Любое другое значение в хранилище не попадает.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет собой основную модель пользователя,
// используемую в бизнес-логике и хранилище.
// PasswordHash никогда не сериализуется в JSON: наружу уходит
// только представление без хеша.
type User struct {
	UID          string         `json:"uid"`        // Уникальный идентификатор, назначается базой данных
	FirstName    string         `json:"first_name"` // Имя
	LastName     string         `json:"last_name"`  // Фамилия
	Username     string         `json:"username"`   // Имя пользователя (уникальное)
	Email        string         `json:"email"`      // Электронная почта (уникальная)
	PasswordHash string         `json:"-"`          // Хэш пароля, только для хранилища
	Role         string         `json:"role"`       // Роль пользователя, admin или user
	Data         map[string]any `json:"data,omitempty"` // Произвольные данные, может быть nil
	CreatedAt    time.Time      `json:"created_at"`
}

// PublicUser — безопасное внешнее представление пользователя без хеша пароля.
type PublicUser struct {
	UID       string         `json:"uid"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Public возвращает представление пользователя для внешних потребителей.
func (u *User) Public() PublicUser {
	return PublicUser{
		UID:       u.UID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Data:      u.Data,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest используется для приёма данных при регистрации,
// прежде чем конвертировать их в User. Пароль приходит в открытом виде
// и хешируется до записи в хранилище.
type RegisterRequest struct {
	FirstName string         `json:"first_name" validate:"required"`
	LastName  string         `json:"last_name" validate:"required"`
	Username  string         `json:"username" validate:"required,min=3,max=50"`
	Email     string         `json:"email" validate:"required,email"`
	Password  string         `json:"password" validate:"required,min=6"`
	Role      string         `json:"role" validate:"omitempty,oneof=user admin"`
	Data      map[string]any `json:"data,omitempty"`
}

// ValidationError описывает нарушение ограничений схемы для конкретного поля.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %s, rule %s", e.Field, e.Rule)
}

var validate = validator.New()

// Validate проверяет обязательные поля и формат, возвращает *ValidationError
// для первого нарушенного поля. Пустая роль допустима и заменяется
// значением по умолчанию в NewUser.
func (r *RegisterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		validateErrs, ok := err.(validator.ValidationErrors)
		if !ok || len(validateErrs) == 0 {
			return err
		}
		first := validateErrs[0]
		return &ValidationError{Field: first.Field(), Rule: first.Tag()}
	}
	return nil
}

// NewUser собирает User из проверенного запроса и готового хеша пароля.
// Пустая роль заменяется на RoleUser.
func NewUser(r RegisterRequest, passwordHash string) User {
	role := r.Role
	if role == "" {
		role = RoleUser
	}
	return User{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Role:         role,
		Data:         r.Data,
	}
}
