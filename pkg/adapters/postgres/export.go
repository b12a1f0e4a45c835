package postgres

import (
	"context"
	"fmt"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// FetchTable читает всю таблицу: SELECT * FROM "t";
// Порядок строк не гарантируется.
func (a *Adapter) FetchTable(ctx context.Context, tableName string) (*frame.Frame, error) {
	if a.conn == nil {
		return nil, adapters.NotConnected("fetch", tableName)
	}
	return a.queryFrame(ctx, "fetch", tableName, a.builder.BuildSelectAll(tableName))
}

// Query выполняет произвольный запрос и возвращает результат как Frame
func (a *Adapter) Query(ctx context.Context, query string, args ...any) (*frame.Frame, error) {
	if a.conn == nil {
		return nil, adapters.NotConnected("query", "")
	}
	return a.queryFrame(ctx, "query", "", query, args...)
}

// queryFrame читает результат целиком; типы колонок берутся по OID
// из карты типов соединения
func (a *Adapter) queryFrame(ctx context.Context, op, tableName, query string, args ...any) (*frame.Frame, error) {
	a.log.Debug().Str("sql", query).Msg(op)

	rows, err := a.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, adapters.Fail(a.log, op, tableName, adapters.ErrRead,
			fmt.Errorf("failed to execute query: %w", err))
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	kinds := make([]frame.Kind, len(fields))
	typeMap := a.conn.TypeMap()
	for i, fd := range fields {
		names[i] = fd.Name
		kinds[i] = frame.KindText
		if t, ok := typeMap.TypeForOID(fd.DataTypeOID); ok {
			kinds[i] = a.types.KindForDatabaseType(t.Name)
		}
	}

	var raw [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, adapters.Fail(a.log, op, tableName, adapters.ErrRead,
				fmt.Errorf("failed to read row %d: %w", len(raw), err))
		}
		raw = append(raw, values)
	}
	if err := rows.Err(); err != nil {
		return nil, adapters.Fail(a.log, op, tableName, adapters.ErrRead,
			fmt.Errorf("error iterating rows: %w", err))
	}

	f, err := base.BuildFrame(names, kinds, raw, a.types.ScanValue)
	if err != nil {
		return nil, adapters.Fail(a.log, op, tableName, adapters.ErrRead, err)
	}

	a.log.Info().Str("table", tableName).Int("rows", f.NumRows()).Int("columns", f.NumColumns()).Msg("rows fetched")
	return f, nil
}
