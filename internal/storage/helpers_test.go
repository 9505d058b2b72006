package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/healthmon/auth-backend/internal/lib/metrics"
	"github.com/healthmon/auth-backend/internal/migrations"
	"github.com/healthmon/auth-backend/internal/models"
)

// setupSQLiteStorage создаёт хранилище на временном файле SQLite с применёнными миграциями.
func setupSQLiteStorage(t *testing.T, m *metrics.Prom) *Storage {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "auth.db") + "?_pragma=busy_timeout(5000)"
	s, err := New(DriverSQLite, dsn, m)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, migrations.Run(s.DB, DriverSQLite, migrationsPath(t, "sqlite")))
	return s
}

func migrationsPath(t *testing.T, dialect string) string {
	t.Helper()

	root, err := filepath.Abs("../..")
	require.NoError(t, err)
	return filepath.Join(root, "migrations", dialect)
}

// testUser возвращает заполненного пользователя с заданным email.
func testUser(email string) models.User {
	return models.User{
		Username: "testuser",
		Age:      42,
		Gender:   "female",
		Contact:  "+15550100",
		Email:    email,
		Password: "secret",
		UserType: "patient",
	}
}

func countUsers(t *testing.T, s *Storage, email string) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?1", email).Scan(&count)
	require.NoError(t, err)
	return count
}
