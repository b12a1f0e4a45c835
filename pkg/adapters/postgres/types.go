package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// TypeMapper маппинг типов PostgreSQL.
// Ключевые слова INTEGER, FLOAT, BOOLEAN, TIMESTAMP, TEXT PostgreSQL принимает как есть
// (FLOAT = double precision).
type TypeMapper struct {
	base.StandardTypeMapper
}

// NewTypeMapper создает маппер типов PostgreSQL
func NewTypeMapper() *TypeMapper {
	return &TypeMapper{}
}

// ScanValue конвертирует значение pgx в Value.
// pgx отдает NUMERIC как pgtype.Numeric, UUID как [16]byte, JSON как map/slice.
func (m *TypeMapper) ScanValue(raw any, kind frame.Kind) (frame.Value, error) {
	switch v := raw.(type) {
	case pgtype.Numeric:
		if !v.Valid {
			return frame.Null(kind), nil
		}
		f8, err := v.Float64Value()
		if err != nil {
			return frame.Value{}, fmt.Errorf("failed to convert numeric: %w", err)
		}
		return frame.FromAny(f8.Float64, kind)

	case [16]byte:
		return frame.FromAny(formatUUID(v), kind)

	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return frame.Value{}, fmt.Errorf("failed to encode json: %w", err)
		}
		return frame.FromAny(string(data), kind)
	}

	return frame.FromAny(raw, kind)
}

func formatUUID(u [16]byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
