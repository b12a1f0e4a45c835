package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
)

// AdapterType идентификатор MySQL адаптера
const AdapterType = "mysql"

// Compile-time check
var _ adapters.Adapter = (*Adapter)(nil)

func init() {
	// Регистрируем MySQL адаптер в фабрике
	adapters.Register(AdapterType, func() adapters.Adapter {
		return &Adapter{}
	})
}

// Adapter реализует adapters.Adapter для MySQL / MariaDB
type Adapter struct {
	base.SQLAdapter
}

// Connect подключается к MySQL базе данных.
// В DSN принудительно включается parseTime и loc=UTC: DATETIME читается как time.Time в UTC.
func (a *Adapter) Connect(ctx context.Context, cfg adapters.Config) error {
	dsn, err := NormalizeDSN(cfg.DSN)
	if err != nil {
		return adapters.Fail(cfg.Log(), "connect", "", adapters.ErrConnection, err)
	}
	cfg.DSN = dsn

	types := NewTypeMapper()
	return a.Open(ctx, AdapterType, cfg, base.Dialect{
		Name:    AdapterType,
		Builder: base.NewStandardQueryBuilder("`", "`", base.PlaceholderQuestion, "", types),
		Types:   types,
		Catalog: catalog{},
	})
}

// GetDatabaseType возвращает тип СУБД
func (a *Adapter) GetDatabaseType() string {
	return AdapterType
}

// GetDatabaseVersion возвращает версию MySQL
func (a *Adapter) GetDatabaseVersion(ctx context.Context) (string, error) {
	version, err := a.QueryString(ctx, "version", "SELECT VERSION();")
	if err != nil {
		return "", err
	}
	return "MySQL " + version, nil
}

// NormalizeDSN разбирает DSN драйвера и выставляет параметры, на которые
// опирается чтение: parseTime=true, loc=UTC.
func NormalizeDSN(dsn string) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}

	c.ParseTime = true
	c.Loc = time.UTC

	return c.FormatDSN(), nil
}
