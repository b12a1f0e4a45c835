package adapters

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Категории ошибок адаптеров. Проверяются через errors.Is.
var (
	// ErrConnection - не удалось установить сессию
	ErrConnection = errors.New("connection error")

	// ErrSchema - ошибка создания/удаления таблицы (в т.ч. дубликаты колонок)
	ErrSchema = errors.New("schema error")

	// ErrInsert - ошибка вставки, транзакция откачена
	ErrInsert = errors.New("insert error")

	// ErrRead - ошибка чтения, частичный результат не возвращается
	ErrRead = errors.New("read error")

	// ErrNotConnected - операция на неподключенном адаптере
	ErrNotConnected = errors.New("adapter not connected")
)

// OpError ошибка операции адаптера: категория + исходная причина
type OpError struct {
	Op    string // "connect", "create", "insert", "fetch", ...
	Table string // пусто для операций без таблицы
	Kind  error  // одна из категорий выше
	Err   error
}

func (e *OpError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Table, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap дает errors.Is доступ и к категории, и к причине
func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Fail оборачивает ошибку в OpError и пишет ее в лог.
// Ошибки возвращаются вызывающему всегда; лог - дополнительный отчет.
func Fail(l *zerolog.Logger, op, table string, kind, err error) error {
	if err == nil {
		return nil
	}

	opErr := &OpError{Op: op, Table: table, Kind: kind, Err: err}
	if l != nil {
		ev := l.Error().Err(err).Str("op", op).Str("kind", kind.Error())
		if table != "" {
			ev = ev.Str("table", table)
		}
		ev.Msg("operation failed")
	}
	return opErr
}

// NotConnected возвращает ошибку операции на неподключенном адаптере
func NotConnected(op, table string) error {
	return &OpError{Op: op, Table: table, Kind: ErrNotConnected, Err: errors.New("call Connect first")}
}
