package base

import (
	"strings"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// Compile-time check
var _ adapters.TypeMapper = (*StandardTypeMapper)(nil)

// StandardTypeMapper маппинг типов для СУБД, понимающих пять ключевых слов как есть.
// Отличия задаются через Overrides (например FLOAT → DOUBLE для MySQL).
type StandardTypeMapper struct {
	// Overrides - замена ключевого слова типа для конкретной СУБД
	Overrides map[schema.SQLType]string

	// TimeLayout - если задан, время передается драйверу строкой в этом формате
	TimeLayout string
}

// ColumnType возвращает тип колонки СУБД
func (m *StandardTypeMapper) ColumnType(t schema.SQLType) string {
	if s, ok := m.Overrides[t]; ok {
		return s
	}
	if !t.IsValid() {
		return string(schema.TypeText)
	}
	return string(t)
}

// KindForDatabaseType определяет семантический тип по имени типа СУБД
func (m *StandardTypeMapper) KindForDatabaseType(dbType string) frame.Kind {
	return KindForTypeName(dbType)
}

// DriverValue конвертирует значение Frame в аргумент драйвера.
// Время всегда приводится к UTC: TIMESTAMP без зоны хранит UTC.
func (m *StandardTypeMapper) DriverValue(v frame.Value) any {
	if v.Null {
		return nil
	}
	if v.Kind == frame.KindTimestamp {
		t := v.Time.UTC()
		if m.TimeLayout != "" {
			return t.Format(m.TimeLayout)
		}
		return t
	}
	return v.SQL()
}

// ScanValue конвертирует значение драйвера в Value ожидаемого типа
func (m *StandardTypeMapper) ScanValue(raw any, kind frame.Kind) (frame.Value, error) {
	return frame.FromAny(raw, kind)
}

// ValueScanner - опциональный интерфейс TypeMapper для СУБД со своим
// представлением значений (например BIT(1) в MySQL приходит как []byte)
type ValueScanner interface {
	ScanValue(raw any, kind frame.Kind) (frame.Value, error)
}

// KindForTypeName отображает имя типа из метаданных результата в семантический тип.
// Понимает имена PostgreSQL (int4, float8, timestamptz), MySQL, MS SQL и SQLite.
// Размеры и модификаторы отбрасываются: VARCHAR(100) → VARCHAR.
func KindForTypeName(name string) frame.Kind {
	n := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 {
		n = strings.TrimSpace(n[:i])
	}
	n = strings.TrimPrefix(n, "UNSIGNED ")

	switch n {
	case "":
		return frame.KindText
	case "INT", "INTEGER", "INT2", "INT4", "INT8", "SMALLINT", "BIGINT", "TINYINT", "MEDIUMINT",
		"SERIAL", "BIGSERIAL", "SMALLSERIAL", "YEAR":
		return frame.KindInteger
	case "FLOAT", "FLOAT4", "FLOAT8", "REAL", "DOUBLE", "DOUBLE PRECISION",
		"DECIMAL", "NUMERIC", "MONEY", "SMALLMONEY":
		return frame.KindFloat
	case "BOOL", "BOOLEAN", "BIT":
		return frame.KindBoolean
	case "TIMESTAMP", "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITHOUT TIME ZONE",
		"DATETIME", "DATETIME2", "SMALLDATETIME", "DATETIMEOFFSET", "DATE":
		return frame.KindTimestamp
	}

	return frame.ParseKind(n)
}

// DriverArgs собирает аргументы INSERT для строки i
func DriverArgs(types adapters.TypeMapper, f *frame.Frame, i int) []any {
	args := make([]any, len(f.Columns))
	for j, c := range f.Columns {
		args[j] = types.DriverValue(c.Values[i])
	}
	return args
}
