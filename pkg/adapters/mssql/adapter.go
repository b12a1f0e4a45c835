package mssql

import (
	"context"
	"strings"

	_ "github.com/denisenkom/go-mssqldb" // MS SQL Server driver

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
)

// driverName драйвер с нативными параметрами @pN
const driverName = "sqlserver"

// Compile-time check
var _ adapters.Adapter = (*Adapter)(nil)

func init() {
	// Register MS SQL Server adapter in factory
	adapters.Register(AdapterType, func() adapters.Adapter {
		return &Adapter{}
	})
}

// Adapter implements the adapters.Adapter interface for Microsoft SQL Server.
type Adapter struct {
	base.SQLAdapter
	schema string
}

// Connect implements adapters.Adapter interface.
func (a *Adapter) Connect(ctx context.Context, cfg adapters.Config) error {
	a.schema = cfg.Schema
	if a.schema == "" {
		a.schema = DefaultSchema
	}

	types := NewTypeMapper()
	err := a.Open(ctx, driverName, cfg, base.Dialect{
		Name:    AdapterType,
		Builder: NewQueryBuilder(a.schema, types),
		Types:   types,
		Catalog: catalog{schema: a.schema},
	})
	if err != nil {
		return err
	}

	if version, err := a.GetDatabaseVersion(ctx); err == nil {
		a.Logger().Debug().Str("version", version).Str("schema", a.schema).Msg("connected")
	}
	return nil
}

// Schema возвращает схему, в которой создаются таблицы
func (a *Adapter) Schema() string {
	return a.schema
}

// GetDatabaseType implements adapters.Adapter interface.
func (a *Adapter) GetDatabaseType() string {
	return AdapterType
}

// GetDatabaseVersion возвращает первую строку @@VERSION
// (например "Microsoft SQL Server 2019 (RTM) - 15.0.2000.5 (X64)")
func (a *Adapter) GetDatabaseVersion(ctx context.Context) (string, error) {
	version, err := a.QueryString(ctx, "version", "SELECT @@VERSION;")
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	return strings.TrimSpace(version), nil
}
