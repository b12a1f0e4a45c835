package schema

import (
	"fmt"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// SQLType тип колонки в декларации таблицы
type SQLType string

// Поддерживаемые типы колонок. Любой столбец отображается ровно в один из них.
const (
	TypeInteger   SQLType = "INTEGER"
	TypeFloat     SQLType = "FLOAT"
	TypeBoolean   SQLType = "BOOLEAN"
	TypeTimestamp SQLType = "TIMESTAMP"
	TypeText      SQLType = "TEXT"
)

// Types возвращает все типы в порядке проверки
func Types() []SQLType {
	return []SQLType{TypeInteger, TypeFloat, TypeBoolean, TypeTimestamp, TypeText}
}

// IsValid проверяет что тип входит в закрытый набор
func (t SQLType) IsValid() bool {
	switch t {
	case TypeInteger, TypeFloat, TypeBoolean, TypeTimestamp, TypeText:
		return true
	default:
		return false
	}
}

// MapKind отображает семантический тип колонки в тип декларации.
// Первое совпадение выигрывает; boolean проверяется отдельно от integer.
// Функция тотальна: все нераспознанное становится TEXT.
func MapKind(k frame.Kind) SQLType {
	switch {
	case k == frame.KindInteger:
		return TypeInteger
	case k == frame.KindFloat:
		return TypeFloat
	case k == frame.KindBoolean:
		return TypeBoolean
	case k == frame.KindTimestamp:
		return TypeTimestamp
	default:
		return TypeText
	}
}

// MapDescriptor отображает произвольное описание типа (int64, datetime64[ns], object...)
func MapDescriptor(descriptor string) SQLType {
	return MapKind(frame.ParseKind(descriptor))
}

// KindFor обратное отображение: тип декларации → семантический тип
func KindFor(t SQLType) frame.Kind {
	switch t {
	case TypeInteger:
		return frame.KindInteger
	case TypeFloat:
		return frame.KindFloat
	case TypeBoolean:
		return frame.KindBoolean
	case TypeTimestamp:
		return frame.KindTimestamp
	default:
		return frame.KindText
	}
}

// ValidationError ошибка валидации декларации колонки
type ValidationError struct {
	Column  string
	Index   int
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for column '%s' (index %d): %s", e.Column, e.Index, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
