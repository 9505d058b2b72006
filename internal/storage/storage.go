// Package storage реализует хранилище пользователей поверх database/sql.
// Поддерживаются PostgreSQL (драйвер pgx) и SQLite (modernc.org/sqlite).
// Каждый вызов берёт отдельное соединение и возвращает его при любом исходе.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Регистрация драйвера sqlite.
	_ "modernc.org/sqlite"

	"github.com/healthmon/auth-backend/internal/lib/metrics"
)

const (
	// DriverPostgres — имя драйвера pgx в database/sql.
	DriverPostgres = "pgx"
	// DriverSQLite — имя драйвера modernc.org/sqlite в database/sql.
	DriverSQLite = "sqlite"
)

type queries struct {
	insertUser string
	selectUser string
}

var dialects = map[string]queries{
	DriverPostgres: {
		insertUser: `INSERT INTO users (username, age, gender, contact, email, password, user_type)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		selectUser: `SELECT id, username, user_type
			  FROM users
			  WHERE email = $1 AND password = $2`,
	},
	DriverSQLite: {
		insertUser: `INSERT INTO users (username, age, gender, contact, email, password, user_type)
			  VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7)`,
		selectUser: `SELECT id, username, user_type
			  FROM users
			  WHERE email = ?1 AND password = ?2`,
	},
}

// Storage инкапсулирует соединение с базой данных.
type Storage struct {
	DB      *sql.DB
	driver  string
	queries queries
	metrics *metrics.Prom
}

// New открывает базу через указанный драйвер и проверяет соединение.
// m может быть nil, тогда метрики не пишутся.
func New(driver, connectionString string, m *metrics.Prom) (*Storage, error) {
	const op = "storage.New"

	q, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported driver %q", op, driver)
	}

	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB:      db,
		driver:  driver,
		queries: q,
		metrics: m,
	}, nil
}

// Driver возвращает имя драйвера, с которым открыто хранилище.
func (s *Storage) Driver() string {
	return s.driver
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"

	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}
