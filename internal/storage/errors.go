package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrUserNotFound возвращается, если пара email/пароль не найдена.
var ErrUserNotFound = errors.New("user not found")

// Kind — класс ошибки хранилища.
type Kind int

const (
	// KindOther — любая неклассифицированная ошибка.
	KindOther Kind = iota
	// KindConstraintViolation — нарушено ограничение уникальности.
	KindConstraintViolation
	// KindTransient — временная ошибка: соединение, блокировка, отмена.
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindConstraintViolation:
		return "constraint_violation"
	case KindTransient:
		return "transient"
	default:
		return "other"
	}
}

// Error — классифицированная ошибка хранилища.
type Error struct {
	Op         string
	Kind       Kind
	Constraint string // имя нарушенного ограничения, если известно
	Err        error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message возвращает исходный текст ошибки драйвера без имени операции.
func (e *Error) Message() string {
	return e.Err.Error()
}

// IsConstraintViolation сообщает, вызвана ли err нарушением уникальности.
func IsConstraintViolation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConstraintViolation
}

// classify оборачивает ошибку драйвера в *Error.
func classify(op string, err error) *Error {
	e := &Error{Op: op, Kind: KindOther, Err: err}

	var pgErr *pgconn.PgError
	var liteErr *msqlite.Error

	switch {
	case errors.As(err, &pgErr):
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			e.Kind = KindConstraintViolation
			e.Constraint = pgErr.ConstraintName
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgErr.Code == pgerrcode.SerializationFailure,
			pgErr.Code == pgerrcode.DeadlockDetected,
			pgErr.Code == pgerrcode.QueryCanceled,
			pgErr.Code == pgerrcode.AdminShutdown:
			e.Kind = KindTransient
		}
	case errors.As(err, &liteErr):
		code := liteErr.Code()
		switch {
		case code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE,
			code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY,
			code&0xff == sqlite3lib.SQLITE_CONSTRAINT && sqliteConstraint(liteErr.Error()) != "":
			e.Kind = KindConstraintViolation
			e.Constraint = sqliteConstraint(liteErr.Error())
		case code&0xff == sqlite3lib.SQLITE_BUSY,
			code&0xff == sqlite3lib.SQLITE_LOCKED:
			e.Kind = KindTransient
		}
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn):
		e.Kind = KindTransient
	}

	return e
}

// classLabel — метка class для метрик БД.
func classLabel(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.String()
	}
	return classify("", err).Kind.String()
}

// sqliteConstraint достаёт "users.email" из
// "constraint failed: UNIQUE constraint failed: users.email (2067)".
func sqliteConstraint(msg string) string {
	const marker = "UNIQUE constraint failed: "
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, " ,"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
