// Package storage реализует хранилище пользователей на основе PostgreSQL.
// Предоставляет методы создания и поиска пользователей, опираясь на
// уникальные индексы базы данных как на источник истины для ограничений
// уникальности username и email.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует пул соединений с базой данных PostgreSQL
// и реализует методы работы с пользователями. Пул безопасен для
// конкурентного использования.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
// Строка подключения передается один раз при старте процесса.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает пул соединений. Вызывается при остановке процесса.
func (s *Storage) Close() error {
	const op = "storage.Close"
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}
