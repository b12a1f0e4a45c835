package adapters

import (
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// TypeMapper - интерфейс для маппинга типов данных
// Каждый адаптер реализует свой TypeMapper с учетом типов СУБД
type TypeMapper interface {
	// ColumnType возвращает тип колонки СУБД для типа декларации
	// Пример:
	//   PostgreSQL: BOOLEAN → "BOOLEAN"
	//   MS SQL:     BOOLEAN → "BIT"
	ColumnType(t schema.SQLType) string

	// KindForDatabaseType определяет семантический тип по имени типа
	// из метаданных результата ("INT4", "VARCHAR", "DATETIME2"...).
	// Пустое имя → KindText.
	KindForDatabaseType(dbType string) frame.Kind

	// DriverValue конвертирует значение Frame в аргумент драйвера
	DriverValue(v frame.Value) any
}

// QueryBuilder - интерфейс для построения SQL запросов
// Каждый адаптер реализует свой QueryBuilder с учетом синтаксиса СУБД.
// Все идентификаторы квотируются.
type QueryBuilder interface {
	// QuoteIdentifier экранирует идентификатор (имя таблицы/колонки)
	// PostgreSQL/SQLite: "table_name"
	// MySQL:             `table_name`
	// MS SQL:            [table_name]
	QuoteIdentifier(identifier string) string

	// QualifiedName возвращает квотированное имя таблицы с учетом схемы
	QualifiedName(tableName string) string

	// BuildCreateTable строит CREATE TABLE IF NOT EXISTS
	BuildCreateTable(tableName string, columns []schema.ColumnDecl) string

	// BuildInsert строит INSERT INTO table (cols) VALUES (placeholders)
	BuildInsert(tableName string, columns []string) string

	// BuildSelectAll строит SELECT * FROM table
	BuildSelectAll(tableName string) string

	// BuildDropTable строит DROP TABLE IF EXISTS
	BuildDropTable(tableName string) string
}
