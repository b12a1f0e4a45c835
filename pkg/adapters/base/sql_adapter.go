package base

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// Catalog строит запросы к системному каталогу СУБД
type Catalog interface {
	// ExistsQuery возвращает запрос, дающий одну строку с COUNT/признаком наличия таблицы
	ExistsQuery(tableName string) (string, []any)

	// ListQuery возвращает запрос со списком имен таблиц
	ListQuery() (string, []any)
}

// Dialect описывает специфику СУБД для SQLAdapter
type Dialect struct {
	Name    string
	Builder adapters.QueryBuilder
	Types   adapters.TypeMapper
	Catalog Catalog
}

// SQLAdapter общая реализация операций адаптера поверх database/sql.
// Пул database/sql ограничен одним соединением: адаптер владеет ровно одной сессией.
// Встраивается по значению в адаптеры SQLite, MySQL и MS SQL.
type SQLAdapter struct {
	db      *sql.DB
	dialect Dialect
	log     *zerolog.Logger
}

// Open открывает соединение и проверяет его.
// Ошибка возвращается как adapters.ErrConnection, соединение при этом не остается открытым.
func (a *SQLAdapter) Open(ctx context.Context, driverName string, cfg adapters.Config, d Dialect) error {
	a.dialect = d
	a.log = cfg.Log()

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return adapters.Fail(a.log, "connect", "", adapters.ErrConnection,
			fmt.Errorf("failed to open database: %w", err))
	}

	// одна сессия: :memory: SQLite и временные объекты живут между вызовами
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return adapters.Fail(a.log, "connect", "", adapters.ErrConnection,
			fmt.Errorf("failed to ping database: %w", err))
	}

	a.db = db
	a.log.Debug().Msg("connected")
	return nil
}

// Connected сообщает, открыто ли соединение
func (a *SQLAdapter) Connected() bool {
	return a.db != nil
}

// DB возвращает *sql.DB для прямого доступа (helper метод)
func (a *SQLAdapter) DB() *sql.DB {
	return a.db
}

// Logger возвращает логгер адаптера
func (a *SQLAdapter) Logger() *zerolog.Logger {
	return a.log
}

// Close закрывает соединение с БД
func (a *SQLAdapter) Close(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// Ping проверяет доступность БД
func (a *SQLAdapter) Ping(ctx context.Context) error {
	if a.db == nil {
		return adapters.NotConnected("ping", "")
	}
	if err := a.db.PingContext(ctx); err != nil {
		return adapters.Fail(a.log, "ping", "", adapters.ErrConnection, err)
	}
	return nil
}

// CreateTable создает таблицу по колонкам Frame (CREATE TABLE IF NOT EXISTS).
// Коллизия имен колонок отклоняется до обращения к БД.
func (a *SQLAdapter) CreateTable(ctx context.Context, tableName string, f *frame.Frame) error {
	if a.db == nil {
		return adapters.NotConnected("create", tableName)
	}

	decls, err := schema.Declare(f)
	if err != nil {
		return adapters.Fail(a.log, "create", tableName, adapters.ErrSchema, err)
	}

	query := a.dialect.Builder.BuildCreateTable(tableName, decls)
	a.log.Debug().Str("sql", query).Msg("create table")

	if _, err := a.db.ExecContext(ctx, query); err != nil {
		return adapters.Fail(a.log, "create", tableName, adapters.ErrSchema,
			fmt.Errorf("failed to create table: %w", err))
	}

	a.log.Info().Str("table", tableName).Int("columns", len(decls)).Msg("table created")
	return nil
}

// DropTable удаляет таблицу (DROP TABLE IF EXISTS)
func (a *SQLAdapter) DropTable(ctx context.Context, tableName string) error {
	if a.db == nil {
		return adapters.NotConnected("drop", tableName)
	}

	query := a.dialect.Builder.BuildDropTable(tableName)
	a.log.Debug().Str("sql", query).Msg("drop table")

	if _, err := a.db.ExecContext(ctx, query); err != nil {
		return adapters.Fail(a.log, "drop", tableName, adapters.ErrSchema,
			fmt.Errorf("failed to drop table: %w", err))
	}

	a.log.Info().Str("table", tableName).Msg("table dropped")
	return nil
}

// TableExists проверяет существование таблицы через системный каталог
func (a *SQLAdapter) TableExists(ctx context.Context, tableName string) (bool, error) {
	if a.db == nil {
		return false, adapters.NotConnected("exists", tableName)
	}

	query, args := a.dialect.Catalog.ExistsQuery(tableName)

	var raw any
	if err := a.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return false, adapters.Fail(a.log, "exists", tableName, adapters.ErrRead,
			fmt.Errorf("failed to check table existence: %w", err))
	}

	// COUNT(*) или boolean в зависимости от СУБД; true приводится к 1
	v, err := frame.FromAny(raw, frame.KindInteger)
	if err != nil {
		return false, adapters.Fail(a.log, "exists", tableName, adapters.ErrRead, err)
	}
	return !v.Null && v.Int > 0, nil
}

// GetTableNames возвращает список всех таблиц в БД
func (a *SQLAdapter) GetTableNames(ctx context.Context) ([]string, error) {
	if a.db == nil {
		return nil, adapters.NotConnected("list", "")
	}

	query, args := a.dialect.Catalog.ListQuery()
	rows, err := a.db.QueryContext(ctx, query, args...)
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

// InsertFrame вставляет все строки Frame одним параметризованным INSERT
// в одной транзакции. Чанки только делят отправку; коммит один.
// MethodCopy для database/sql не поддерживается и выполняется как batch.
func (a *SQLAdapter) InsertFrame(ctx context.Context, tableName string, f *frame.Frame, opts adapters.InsertOptions) (int64, error) {
	if a.db == nil {
		return 0, adapters.NotConnected("insert", tableName)
	}
	if err := CheckInsertFrame(f); err != nil {
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert, err)
	}

	opts = opts.Normalize()
	if opts.Method == adapters.MethodCopy {
		a.log.Debug().Str("db", a.dialect.Name).Msg("COPY is not supported, falling back to batch")
	}

	query := a.dialect.Builder.BuildInsert(tableName, f.Names())
	a.log.Debug().Str("sql", query).Int("rows", f.NumRows()).Msg("insert")

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert,
			fmt.Errorf("failed to begin transaction: %w", err))
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		a.rollback(tx)
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert,
			fmt.Errorf("failed to prepare statement: %w", err))
	}
	defer stmt.Close()

	var inserted int64
	for _, chunk := range adapters.Chunks(f.NumRows(), opts.ChunkSize) {
		if err := ctx.Err(); err != nil {
			a.rollback(tx)
			return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert, err)
		}

		for i := chunk[0]; i < chunk[1]; i++ {
			if _, err := stmt.ExecContext(ctx, DriverArgs(a.dialect.Types, f, i)...); err != nil {
				a.rollback(tx)
				return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert,
					fmt.Errorf("failed to insert row %d: %w", i, err))
			}
			inserted++
		}
		a.log.Debug().Str("table", tableName).Int("sent", chunk[1]).Msg("chunk sent")
	}

	if err := tx.Commit(); err != nil {
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert,
			fmt.Errorf("failed to commit transaction: %w", err))
	}

	a.log.Info().Str("table", tableName).Int64("rows", inserted).Msg("rows inserted")
	return inserted, nil
}

// CheckInsertFrame проверяет Frame до BEGIN: те же правила имен, что и при
// создании таблицы, плюс однородность колонок. Повторяющееся имя в списке
// INSERT часть СУБД молча игнорирует, поэтому коллизия отклоняется здесь.
func CheckInsertFrame(f *frame.Frame) error {
	if _, err := schema.Declare(f); err != nil {
		return err
	}
	return f.Validate()
}

// FetchTable читает всю таблицу (SELECT * FROM table)
func (a *SQLAdapter) FetchTable(ctx context.Context, tableName string) (*frame.Frame, error) {
	if a.db == nil {
		return nil, adapters.NotConnected("fetch", tableName)
	}
	return a.queryFrame(ctx, "fetch", tableName, a.dialect.Builder.BuildSelectAll(tableName))
}

// Query выполняет произвольный запрос и возвращает результат как Frame
func (a *SQLAdapter) Query(ctx context.Context, query string, args ...any) (*frame.Frame, error) {
	if a.db == nil {
		return nil, adapters.NotConnected("query", "")
	}
	return a.queryFrame(ctx, "query", "", query, args...)
}

// QueryString выполняет запрос, возвращающий одно строковое значение (версия и т.п.)
func (a *SQLAdapter) QueryString(ctx context.Context, op, query string) (string, error) {
	if a.db == nil {
		return "", adapters.NotConnected(op, "")
	}

	var s string
	if err := a.db.QueryRowContext(ctx, query).Scan(&s); err != nil {
		return "", adapters.Fail(a.log, op, "", adapters.ErrRead, err)
	}
	return s, nil
}

func (a *SQLAdapter) queryFrame(ctx context.Context, op, tableName, query string, args ...any) (*frame.Frame, error) {
	a.log.Debug().Str("sql", query).Msg(op)

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, adapters.Fail(a.log, op, tableName, adapters.ErrRead,
			fmt.Errorf("failed to execute query: %w", err))
	}
	defer rows.Close()

	f, err := ScanFrame(rows, a.dialect.Types)
	if err != nil {
		return nil, adapters.Fail(a.log, op, tableName, adapters.ErrRead, err)
	}

	a.log.Info().Str("table", tableName).Int("rows", f.NumRows()).Int("columns", f.NumColumns()).Msg("rows fetched")
	return f, nil
}

func (a *SQLAdapter) rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		a.log.Warn().Err(err).Msg("rollback failed")
	}
}
