package mysql

import (
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// TypeMapper маппинг типов MySQL.
// FLOAT в MySQL одинарной точности, поэтому используется DOUBLE.
// BOOLEAN в MySQL это TINYINT(1) и читается обратно как целое, BIT(1) сохраняет логический тип.
// DATETIME(6) хранит микросекунды, время передается в UTC.
type TypeMapper struct {
	base.StandardTypeMapper
}

// NewTypeMapper создает маппер типов MySQL
func NewTypeMapper() *TypeMapper {
	return &TypeMapper{
		StandardTypeMapper: base.StandardTypeMapper{
			Overrides: map[schema.SQLType]string{
				schema.TypeFloat:     "DOUBLE",
				schema.TypeBoolean:   "BIT(1)",
				schema.TypeTimestamp: "DATETIME(6)",
			},
		},
	}
}

// ScanValue конвертирует значение драйвера.
// BIT(n) приходит как []byte в big-endian, для логического типа значим любой ненулевой байт.
func (m *TypeMapper) ScanValue(raw any, kind frame.Kind) (frame.Value, error) {
	if b, ok := raw.([]byte); ok && kind == frame.KindBoolean && !isDigits(b) {
		for _, x := range b {
			if x != 0 {
				return frame.Bool(true), nil
			}
		}
		return frame.Bool(false), nil
	}
	return m.StandardTypeMapper.ScanValue(raw, kind)
}

// isDigits отличает текстовое "1"/"0" (TINYINT в текстовом протоколе) от битовой маски
func isDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, x := range b {
		if x < '0' || x > '9' {
			return false
		}
	}
	return true
}

// catalog запросы к information_schema текущей базы
type catalog struct{}

func (catalog) ExistsQuery(tableName string) (string, []any) {
	return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ? AND table_type = 'BASE TABLE';", []any{tableName}
}

func (catalog) ListQuery() (string, []any) {
	return "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE' ORDER BY table_name;", nil
}
