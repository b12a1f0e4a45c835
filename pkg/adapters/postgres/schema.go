package postgres

import (
	"context"
	"fmt"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

const (
	existsSQL = "SELECT EXISTS (SELECT FROM pg_tables WHERE schemaname = $1 AND tablename = $2);"
	listSQL   = "SELECT tablename FROM pg_tables WHERE schemaname = $1 ORDER BY tablename;"
)

// CreateTable создает таблицу по колонкам Frame:
// CREATE TABLE IF NOT EXISTS "t" ("c1" T1, ...);
// Выполняется вне транзакции и фиксируется сразу.
func (a *Adapter) CreateTable(ctx context.Context, tableName string, f *frame.Frame) error {
	if a.conn == nil {
		return adapters.NotConnected("create", tableName)
	}

	decls, err := schema.Declare(f)
	if err != nil {
		return adapters.Fail(a.log, "create", tableName, adapters.ErrSchema, err)
	}

	query := a.builder.BuildCreateTable(tableName, decls)
	a.log.Debug().Str("sql", query).Msg("create table")

	if _, err := a.conn.Exec(ctx, query); err != nil {
		return adapters.Fail(a.log, "create", tableName, adapters.ErrSchema,
			fmt.Errorf("failed to create table: %w", err))
	}

	a.log.Info().Str("table", tableName).Int("columns", len(decls)).Msg("table created")
	return nil
}

// DropTable удаляет таблицу: DROP TABLE IF EXISTS "t";
func (a *Adapter) DropTable(ctx context.Context, tableName string) error {
	if a.conn == nil {
		return adapters.NotConnected("drop", tableName)
	}

	query := a.builder.BuildDropTable(tableName)
	a.log.Debug().Str("sql", query).Msg("drop table")

	if _, err := a.conn.Exec(ctx, query); err != nil {
		return adapters.Fail(a.log, "drop", tableName, adapters.ErrSchema,
			fmt.Errorf("failed to drop table: %w", err))
	}

	a.log.Info().Str("table", tableName).Msg("table dropped")
	return nil
}

// TableExists проверяет существование таблицы в текущей схеме через pg_tables
func (a *Adapter) TableExists(ctx context.Context, tableName string) (bool, error) {
	if a.conn == nil {
		return false, adapters.NotConnected("exists", tableName)
	}

	var exists bool
	if err := a.conn.QueryRow(ctx, existsSQL, a.schema, tableName).Scan(&exists); err != nil {
		return false, adapters.Fail(a.log, "exists", tableName, adapters.ErrRead,
			fmt.Errorf("failed to check table existence: %w", err))
	}
	return exists, nil
}

// GetTableNames возвращает список всех таблиц в текущей схеме
func (a *Adapter) GetTableNames(ctx context.Context) ([]string, error) {
	if a.conn == nil {
		return nil, adapters.NotConnected("list", "")
	}

	rows, err := a.conn.Query(ctx, listSQL, a.schema)
	if err != nil {
		return nil, adapters.Fail(a.log, "list", "", adapters.ErrRead,
			fmt.Errorf("failed to get table names: %w", err))
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, adapters.Fail(a.log, "list", "", adapters.ErrRead,
				fmt.Errorf("failed to scan table name: %w", err))
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, adapters.Fail(a.log, "list", "", adapters.ErrRead,
			fmt.Errorf("error iterating tables: %w", err))
	}

	return tables, nil
}
