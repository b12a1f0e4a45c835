package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts - форматы, распознаваемые при разборе TIMESTAMP.
// Порядок: от наиболее строгих к наименее строгим.
var timestampLayouts = []string{
	time.RFC3339Nano,
	TimestampFormat,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST", // time.Time.String()
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
}

// ParseValue парсит строковое значение согласно типу колонки.
// ВАЖНО: для TEXT пустая строка - валидное значение, НЕ NULL.
// Для остальных типов пустая строка = NULL.
func ParseValue(raw string, kind Kind) (Value, error) {
	kind = kind.Normalize()

	if kind == KindText {
		return Text(raw), nil
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return Null(kind), nil
	}

	switch kind {
	case KindInteger:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, &ConversionError{Kind: kind, Value: raw, Reason: "invalid integer value"}
		}
		return Int(i), nil

	case KindFloat:
		fl, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, &ConversionError{Kind: kind, Value: raw, Reason: "invalid float value"}
		}
		return Float(fl), nil

	case KindBoolean:
		b, ok := parseBool(s)
		if !ok {
			return Value{}, &ConversionError{Kind: kind, Value: raw, Reason: "invalid boolean value"}
		}
		return Bool(b), nil

	default: // KindTimestamp
		t, ok := parseTimestamp(s)
		if !ok {
			return Value{}, &ConversionError{Kind: kind, Value: raw, Reason: "unrecognized timestamp format"}
		}
		return Time(t), nil
	}
}

// FromAny конвертирует значение драйвера БД в Value заданного типа.
// Драйверы возвращают разные Go типы для одного SQL типа
// (например SQLite отдает BOOLEAN как int64, MySQL отдает текст как []byte),
// поэтому конвертация ведется от ожидаемого типа колонки.
func FromAny(raw any, kind Kind) (Value, error) {
	kind = kind.Normalize()

	if raw == nil {
		return Null(kind), nil
	}

	switch v := raw.(type) {
	case []byte:
		return ParseValue(string(v), kind)
	case string:
		if kind == KindTimestamp {
			// time.Time.String() может содержать монотонные часы: "... m=+0.000"
			if idx := strings.Index(v, " m="); idx != -1 {
				v = v[:idx]
			}
		}
		return ParseValue(v, kind)
	}

	switch kind {
	case KindInteger:
		if i, ok := toInt64(raw); ok {
			return Int(i), nil
		}
		if fl, ok := toFloat64(raw); ok && fl == math.Trunc(fl) {
			return Int(int64(fl)), nil
		}
		if b, ok := raw.(bool); ok {
			if b {
				return Int(1), nil
			}
			return Int(0), nil
		}

	case KindFloat:
		if fl, ok := toFloat64(raw); ok {
			return Float(fl), nil
		}
		if i, ok := toInt64(raw); ok {
			return Float(float64(i)), nil
		}

	case KindBoolean:
		if b, ok := raw.(bool); ok {
			return Bool(b), nil
		}
		if i, ok := toInt64(raw); ok {
			return Bool(i != 0), nil
		}

	case KindTimestamp:
		if t, ok := raw.(time.Time); ok {
			return Time(t), nil
		}

	case KindText:
		return Text(formatAny(raw)), nil
	}

	return Value{}, &ConversionError{
		Kind:   kind,
		Value:  fmt.Sprintf("%v", raw),
		Reason: fmt.Sprintf("unsupported driver type %T", raw),
	}
}

// KindOf определяет семантический тип по Go значению драйвера.
// Используется когда БД не сообщает тип колонки (выражения в SELECT).
func KindOf(raw any) Kind {
	switch raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindFloat
	case bool:
		return KindBoolean
	case time.Time:
		return KindTimestamp
	default:
		return KindText
	}
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case int:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	return 0, false
}

func formatAny(raw any) string {
	switch v := raw.(type) {
	case time.Time:
		return v.Format(TimestampFormat)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// parseBool разбирает логическое значение.
// Принимает 1/0, true/false, t/f, yes/no, y/n в любом регистре.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y":
		return true, true
	case "0", "false", "f", "no", "n":
		return false, true
	}
	return false, false
}

// parseTimestamp пробует все известные форматы. Без зоны - UTC.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
