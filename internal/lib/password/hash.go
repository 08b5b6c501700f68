// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hash создает bcrypt-хеш пароля для безопасного хранения.
// Verify сравнивает сохранённый bcrypt-хеш с введённым паролем, проверяя их соответствие.
// FakeCompare выполняет сравнение с фиктивным хешем, чтобы выровнять время ответа,
// когда пользователь не найден.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost задает стоимость bcrypt при хешировании паролей.
const Cost = 10

// ErrHash возвращается, если хеширование или проверка не могут быть выполнены,
// например при повреждённом сохранённом хеше. Несовпадение пароля ошибкой не является.
var ErrHash = errors.New("hashing failed")

// fakeHash — заранее вычисленный bcrypt-хеш случайной строки (cost 10).
// Используется только в FakeCompare.
const fakeHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Каждый вызов использует новую соль, поэтому два хеша одного пароля различаются.
func Hash(rawPassword string) (string, error) {
	const op = "password.Hash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrHash, err)
	}
	return string(hashedPassword), nil
}

// Verify сравнивает сохранённый bcrypt‑хэш с введённым паролем.
//
// Возвращает (true, nil) при совпадении, (false, nil) при несовпадении
// и ошибку, только если сохранённый хеш повреждён.
func Verify(rawPassword, hashedPassword string) (bool, error) {
	const op = "password.Verify"
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(rawPassword))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%s: %w: %w", op, ErrHash, err)
}

// FakeCompare выполняет одно сравнение bcrypt против фиктивного хеша.
// Результат всегда отбрасывается: вызов нужен, чтобы путь "пользователь не найден"
// стоил столько же, сколько проверка реального пароля.
func FakeCompare() {
	_ = bcrypt.CompareHashAndPassword([]byte(fakeHash), []byte("fake-password"))
}
