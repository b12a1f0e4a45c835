package sqlite

import (
	"context"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	_ "modernc.org/sqlite"
)

const driverSqlite = "sqlite"

// Compile-time check: Adapter должен реализовывать интерфейс adapters.Adapter
var _ adapters.Adapter = (*Adapter)(nil)

// Регистрация адаптера в глобальной фабрике
func init() {
	adapters.Register("sqlite", func() adapters.Adapter {
		return &Adapter{}
	})
}

// Adapter представляет адаптер для работы с SQLite (modernc.org/sqlite, без cgo)
// Реализует интерфейс adapters.Adapter
type Adapter struct {
	base.SQLAdapter
}

// Connect устанавливает подключение к SQLite
// Реализует интерфейс adapters.Adapter
func (a *Adapter) Connect(ctx context.Context, cfg adapters.Config) error {
	types := NewTypeMapper()
	err := a.Open(ctx, driverSqlite, cfg, base.Dialect{
		Name:    "sqlite",
		Builder: base.NewStandardQueryBuilder(`"`, `"`, base.PlaceholderQuestion, "", types),
		Types:   types,
		Catalog: catalog{},
	})
	if err != nil {
		return err
	}

	a.applyPragmaOptimizations(ctx)
	return nil
}

// GetDatabaseType возвращает тип СУБД
// Реализует интерфейс adapters.Adapter
func (a *Adapter) GetDatabaseType() string {
	return "sqlite"
}

// GetDatabaseVersion возвращает версию SQLite
// Реализует интерфейс adapters.Adapter
func (a *Adapter) GetDatabaseVersion(ctx context.Context) (string, error) {
	version, err := a.QueryString(ctx, "version", "SELECT sqlite_version()")
	if err != nil {
		return "", err
	}
	return "SQLite " + version, nil
}

// applyPragmaOptimizations применяет PRAGMA для массовой вставки.
// Ошибка отдельной PRAGMA не фатальна (например page_size для существующей БД).
func (a *Adapter) applyPragmaOptimizations(ctx context.Context) {
	pragmas := []string{
		// WAL mode: запись без блокировки читателей
		"PRAGMA journal_mode = WAL",

		// fsync только на критичных моментах, безопасно при WAL
		"PRAGMA synchronous = NORMAL",

		// 64 MB кеша страниц
		"PRAGMA cache_size = -64000",

		// временные таблицы и индексы в памяти
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := a.DB().ExecContext(ctx, pragma); err != nil {
			a.Logger().Warn().Err(err).Str("pragma", pragma).Msg("pragma failed")
		}
	}
}
