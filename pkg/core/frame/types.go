package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind представляет семантический тип колонки
type Kind string

// Поддерживаемые семантические типы.
// Набор закрыт: все, что не распознано, считается текстом.
const (
	KindInteger   Kind = "integer"
	KindFloat     Kind = "float"
	KindBoolean   Kind = "boolean"
	KindTimestamp Kind = "timestamp"
	KindText      Kind = "text"
)

// Kinds возвращает все поддерживаемые типы в порядке проверки маппера
func Kinds() []Kind {
	return []Kind{KindInteger, KindFloat, KindBoolean, KindTimestamp, KindText}
}

// IsValid проверяет что тип входит в закрытый набор
func (k Kind) IsValid() bool {
	switch k {
	case KindInteger, KindFloat, KindBoolean, KindTimestamp, KindText:
		return true
	default:
		return false
	}
}

// Normalize сводит неизвестный тип к KindText
func (k Kind) Normalize() Kind {
	if k.IsValid() {
		return k
	}
	return KindText
}

// ParseKind распознает произвольный дескриптор типа.
// Понимает имена Go (int64, float32, bool, time.Time), pandas/numpy
// (Int64, float64, boolean, datetime64[ns], datetime64[ns, UTC], object, category)
// и базовые SQL имена. Все остальное - KindText.
//
// Порядок важен: bool проверяется отдельно от целых, иначе "boolean"
// в некоторых системах типов попал бы в целые.
func ParseKind(descriptor string) Kind {
	d := strings.ToLower(strings.TrimSpace(descriptor))

	switch {
	case isIntegerDescriptor(d):
		return KindInteger
	case isFloatDescriptor(d):
		return KindFloat
	case d == "bool" || d == "boolean":
		return KindBoolean
	case isTimestampDescriptor(d):
		return KindTimestamp
	default:
		return KindText
	}
}

func isIntegerDescriptor(d string) bool {
	switch d {
	case "int", "integer", "bigint", "smallint", "tinyint",
		"int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return true
	}
	return false
}

func isFloatDescriptor(d string) bool {
	switch d {
	case "float", "float16", "float32", "float64", "double", "real", "decimal", "numeric":
		return true
	}
	return false
}

func isTimestampDescriptor(d string) bool {
	if strings.HasPrefix(d, "datetime64") {
		return true
	}
	switch d {
	case "time.time", "timestamp", "timestamptz", "datetime", "date":
		return true
	}
	return false
}

// Value представляет типизированное значение ячейки.
// Заполнено ровно одно поле, соответствующее Kind (если не Null).
type Value struct {
	Kind  Kind
	Null  bool
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
	Text  string
}

// Int создает INTEGER значение
func Int(v int64) Value { return Value{Kind: KindInteger, Int: v} }

// Float создает FLOAT значение
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// Bool создает BOOLEAN значение
func Bool(v bool) Value { return Value{Kind: KindBoolean, Bool: v} }

// Time создает TIMESTAMP значение
func Time(v time.Time) Value { return Value{Kind: KindTimestamp, Time: v} }

// Text создает TEXT значение
func Text(v string) Value { return Value{Kind: KindText, Text: v} }

// Null создает NULL значение заданного типа
func Null(kind Kind) Value { return Value{Kind: kind.Normalize(), Null: true} }

// SQL возвращает значение для параметра драйвера (nil для NULL)
func (v Value) SQL() any {
	if v.Null {
		return nil
	}
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBoolean:
		return v.Bool
	case KindTimestamp:
		return v.Time
	default:
		return v.Text
	}
}

// String возвращает текстовое представление (пустая строка для NULL)
func (v Value) String() string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindTimestamp:
		return v.Time.Format(TimestampFormat)
	default:
		return v.Text
	}
}

// Equal сравнивает значения. Время сравнивается как момент, без учета зоны.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind || v.Null != o.Null {
		return false
	}
	if v.Null {
		return true
	}
	switch v.Kind {
	case KindInteger:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindBoolean:
		return v.Bool == o.Bool
	case KindTimestamp:
		return v.Time.Equal(o.Time)
	default:
		return v.Text == o.Text
	}
}

// TimestampFormat - формат вывода TIMESTAMP значений
const TimestampFormat = "2006-01-02 15:04:05.999999999Z07:00"

// ConversionError ошибка конвертации значения
type ConversionError struct {
	Column string
	Kind   Kind
	Value  string
	Reason string
}

func (e *ConversionError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("cannot convert '%s' to %s: %s", e.Value, e.Kind, e.Reason)
	}
	return fmt.Sprintf("column '%s': cannot convert '%s' to %s: %s", e.Column, e.Value, e.Kind, e.Reason)
}
