package sqlite

import (
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
)

// TimeLayout формат, в котором время передается в SQLite.
// modernc.org/sqlite разбирает его обратно в time.Time для колонок TIMESTAMP.
const TimeLayout = "2006-01-02 15:04:05.999999999-07:00"

// NewTypeMapper создает маппер типов SQLite.
// Пять ключевых слов используются как есть: SQLite принимает любое имя типа
// и назначает affinity (BOOLEAN → NUMERIC, FLOAT → REAL).
func NewTypeMapper() *base.StandardTypeMapper {
	return &base.StandardTypeMapper{TimeLayout: TimeLayout}
}

// catalog запросы к sqlite_master
type catalog struct{}

func (catalog) ExistsQuery(tableName string) (string, []any) {
	return "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?;", []any{tableName}
}

func (catalog) ListQuery() (string, []any) {
	return "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name;", nil
}
