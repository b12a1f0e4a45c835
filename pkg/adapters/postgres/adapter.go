package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
)

// Compile-time check: Adapter должен реализовывать интерфейс adapters.Adapter
var _ adapters.Adapter = (*Adapter)(nil)

// Регистрация адаптера в глобальной фабрике
func init() {
	adapters.Register("postgres", func() adapters.Adapter {
		return &Adapter{}
	})
}

// DefaultSchema схема PostgreSQL по умолчанию
const DefaultSchema = "public"

// Adapter представляет адаптер для работы с PostgreSQL.
// Держит одно соединение pgx.Conn; пул не используется.
// Реализует интерфейс adapters.Adapter
type Adapter struct {
	conn    *pgx.Conn
	schema  string // public, custom, etc.
	builder *base.StandardQueryBuilder
	types   *TypeMapper
	log     *zerolog.Logger
}

// Connect устанавливает подключение к PostgreSQL
// Реализует интерфейс adapters.Adapter
func (a *Adapter) Connect(ctx context.Context, cfg adapters.Config) error {
	a.log = cfg.Log()

	// Парсим connection string
	config, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return adapters.Fail(a.log, "connect", "", adapters.ErrConnection,
			fmt.Errorf("failed to parse connection string: %w", err))
	}

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return adapters.Fail(a.log, "connect", "", adapters.ErrConnection,
			fmt.Errorf("failed to connect: %w", err))
	}

	// Проверяем подключение
	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return adapters.Fail(a.log, "connect", "", adapters.ErrConnection,
			fmt.Errorf("failed to ping database: %w", err))
	}

	a.conn = conn
	a.schema = cfg.Schema
	if a.schema == "" {
		a.schema = DefaultSchema
	}
	a.types = NewTypeMapper()
	a.builder = NewQueryBuilder(a.schema, a.types)

	a.log.Debug().Str("schema", a.schema).Msg("connected")
	return nil
}

// NewQueryBuilder создает построитель SQL для PostgreSQL.
// Имена в схеме public не квалифицируются.
func NewQueryBuilder(schemaName string, types adapters.TypeMapper) *base.StandardQueryBuilder {
	if schemaName == DefaultSchema {
		schemaName = ""
	}
	return base.NewStandardQueryBuilder(`"`, `"`, base.PlaceholderDollar, schemaName, types)
}

// Close закрывает соединение
// Реализует интерфейс adapters.Adapter
func (a *Adapter) Close(ctx context.Context) error {
	if a.conn == nil {
		return nil
	}
	err := a.conn.Close(ctx)
	a.conn = nil
	return err
}

// Ping проверяет доступность БД
// Реализует интерфейс adapters.Adapter
func (a *Adapter) Ping(ctx context.Context) error {
	if a.conn == nil {
		return adapters.NotConnected("ping", "")
	}
	if err := a.conn.Ping(ctx); err != nil {
		return adapters.Fail(a.log, "ping", "", adapters.ErrConnection, err)
	}
	return nil
}

// GetDatabaseType возвращает тип СУБД
// Реализует интерфейс adapters.Adapter
func (a *Adapter) GetDatabaseType() string {
	return "postgres"
}

// Conn возвращает *pgx.Conn для прямого доступа
func (a *Adapter) Conn() *pgx.Conn {
	return a.conn
}

// Schema возвращает текущую схему
func (a *Adapter) Schema() string {
	return a.schema
}

// GetDatabaseVersion возвращает версию PostgreSQL
// Реализует интерфейс adapters.Adapter
func (a *Adapter) GetDatabaseVersion(ctx context.Context) (string, error) {
	if a.conn == nil {
		return "", adapters.NotConnected("version", "")
	}

	var version string
	if err := a.conn.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", adapters.Fail(a.log, "version", "", adapters.ErrRead,
			fmt.Errorf("failed to get version: %w", err))
	}
	return version, nil
}
