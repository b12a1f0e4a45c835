package mssql

import (
	"fmt"
	"strings"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// Compile-time checks
var (
	_ adapters.TypeMapper   = (*TypeMapper)(nil)
	_ adapters.QueryBuilder = (*QueryBuilder)(nil)
)

// TypeMapper маппинг типов SQL Server
type TypeMapper struct {
	base.StandardTypeMapper
}

// NewTypeMapper создает маппер типов SQL Server
func NewTypeMapper() *TypeMapper {
	return &TypeMapper{
		StandardTypeMapper: base.StandardTypeMapper{
			Overrides: map[schema.SQLType]string{
				schema.TypeBoolean:   "BIT",
				schema.TypeTimestamp: "DATETIME2",
				schema.TypeText:      "NVARCHAR(MAX)",
			},
		},
	}
}

// KindForDatabaseType определяет семантический тип по имени типа SQL Server.
// TIMESTAMP в SQL Server это ROWVERSION (8 байт), а не время.
func (m *TypeMapper) KindForDatabaseType(dbType string) frame.Kind {
	switch strings.ToUpper(strings.TrimSpace(dbType)) {
	case "TIMESTAMP", "ROWVERSION":
		return frame.KindText
	}
	return base.KindForTypeName(dbType)
}

// ScanValue конвертирует значение драйвера.
// Бинарные значения текстовых колонок кодируются в hex:
// 8 байт как ROWVERSION без ведущих нулей, остальное полностью.
// DECIMAL и MONEY приходят как []byte с текстом числа и разбираются штатно.
func (m *TypeMapper) ScanValue(raw any, kind frame.Kind) (frame.Value, error) {
	if b, ok := raw.([]byte); ok && kind == frame.KindText {
		return frame.Text(rowversionHex(b)), nil
	}
	return m.StandardTypeMapper.ScanValue(raw, kind)
}

// QueryBuilder построитель запросов SQL Server.
// CREATE и DROP защищены через OBJECT_ID: IF [NOT] EXISTS появился только в SQL Server 2016.
type QueryBuilder struct {
	*base.StandardQueryBuilder
}

// NewQueryBuilder создает построитель для схемы schemaName
func NewQueryBuilder(schemaName string, types *TypeMapper) *QueryBuilder {
	return &QueryBuilder{
		StandardQueryBuilder: base.NewStandardQueryBuilder("[", "]", base.PlaceholderAtP, schemaName, types),
	}
}

// BuildCreateTable строит CREATE TABLE, выполняемый только если таблицы нет
func (b *QueryBuilder) BuildCreateTable(tableName string, columns []schema.ColumnDecl) string {
	return fmt.Sprintf("IF OBJECT_ID(%s, N'U') IS NULL CREATE TABLE %s (%s);",
		b.objectLiteral(tableName), b.QualifiedName(tableName), b.ColumnList(columns))
}

// BuildDropTable строит DROP TABLE, выполняемый только если таблица есть
func (b *QueryBuilder) BuildDropTable(tableName string) string {
	return fmt.Sprintf("IF OBJECT_ID(%s, N'U') IS NOT NULL DROP TABLE %s;",
		b.objectLiteral(tableName), b.QualifiedName(tableName))
}

// objectLiteral строковый литерал N'[schema].[table]' для OBJECT_ID
func (b *QueryBuilder) objectLiteral(tableName string) string {
	return "N'" + strings.ReplaceAll(b.QualifiedName(tableName), "'", "''") + "'"
}

// catalog запросы к INFORMATION_SCHEMA
type catalog struct {
	schema string
}

func (c catalog) ExistsQuery(tableName string) (string, []any) {
	return "SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2 AND TABLE_TYPE = 'BASE TABLE';",
		[]any{c.schema, tableName}
}

func (c catalog) ListQuery() (string, []any) {
	return "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME;",
		[]any{c.schema}
}
