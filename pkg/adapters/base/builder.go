package base

import (
	"fmt"
	"strings"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// PlaceholderStyle стиль позиционных параметров драйвера
type PlaceholderStyle int

const (
	// PlaceholderQuestion - ? (SQLite, MySQL)
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar - $1, $2 (PostgreSQL)
	PlaceholderDollar
	// PlaceholderAtP - @p1, @p2 (MS SQL)
	PlaceholderAtP
)

// Placeholder возвращает n-й параметр (нумерация с 1)
func (s PlaceholderStyle) Placeholder(n int) string {
	switch s {
	case PlaceholderDollar:
		return fmt.Sprintf("$%d", n)
	case PlaceholderAtP:
		return fmt.Sprintf("@p%d", n)
	default:
		return "?"
	}
}

// Compile-time check
var _ adapters.QueryBuilder = (*StandardQueryBuilder)(nil)

// StandardQueryBuilder строит SQL для стандартного синтаксиса (SQLite, PostgreSQL, MySQL).
// Отличия СУБД сводятся к кавычкам, стилю параметров и префиксу схемы.
type StandardQueryBuilder struct {
	openQuote   string // " для PostgreSQL/SQLite, ` для MySQL, [ для MS SQL
	closeQuote  string
	placeholder PlaceholderStyle
	schemaName  string // "" = без квалификации
	types       adapters.TypeMapper
}

// NewStandardQueryBuilder создает StandardQueryBuilder.
// schemaName квалифицирует имена таблиц ("schema"."table"), пустая строка отключает это.
func NewStandardQueryBuilder(openQuote, closeQuote string, placeholder PlaceholderStyle, schemaName string, types adapters.TypeMapper) *StandardQueryBuilder {
	return &StandardQueryBuilder{
		openQuote:   openQuote,
		closeQuote:  closeQuote,
		placeholder: placeholder,
		schemaName:  schemaName,
		types:       types,
	}
}

// QuoteIdentifier квотирует идентификатор, удваивая закрывающую кавычку внутри имени
func (b *StandardQueryBuilder) QuoteIdentifier(identifier string) string {
	escaped := strings.ReplaceAll(identifier, b.closeQuote, b.closeQuote+b.closeQuote)
	return b.openQuote + escaped + b.closeQuote
}

// QualifiedName возвращает квотированное имя таблицы с учетом схемы
func (b *StandardQueryBuilder) QualifiedName(tableName string) string {
	if b.schemaName == "" {
		return b.QuoteIdentifier(tableName)
	}
	return b.QuoteIdentifier(b.schemaName) + "." + b.QuoteIdentifier(tableName)
}

// ColumnList возвращает определения колонок: "col" TYPE, ...
func (b *StandardQueryBuilder) ColumnList(columns []schema.ColumnDecl) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = b.QuoteIdentifier(c.Name) + " " + b.types.ColumnType(c.Type)
	}
	return strings.Join(defs, ", ")
}

// BuildCreateTable строит CREATE TABLE IF NOT EXISTS
func (b *StandardQueryBuilder) BuildCreateTable(tableName string, columns []schema.ColumnDecl) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);", b.QualifiedName(tableName), b.ColumnList(columns))
}

// BuildInsert строит INSERT INTO table (cols) VALUES (placeholders)
func (b *StandardQueryBuilder) BuildInsert(tableName string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = b.QuoteIdentifier(c)
		placeholders[i] = b.placeholder.Placeholder(i + 1)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		b.QualifiedName(tableName),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "))
}

// BuildSelectAll строит SELECT * FROM table
func (b *StandardQueryBuilder) BuildSelectAll(tableName string) string {
	return fmt.Sprintf("SELECT * FROM %s;", b.QualifiedName(tableName))
}

// BuildDropTable строит DROP TABLE IF EXISTS
func (b *StandardQueryBuilder) BuildDropTable(tableName string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", b.QualifiedName(tableName))
}
