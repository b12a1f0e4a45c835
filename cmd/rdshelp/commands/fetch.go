package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/source"
)

// FetchOptions holds options for fetch/query operations
type FetchOptions struct {
	Output string // "" или "-" - CSV в stdout
	Source source.Options
}

func (o FetchOptions) output() string {
	if o.Output == "" {
		return "-"
	}
	return o.Output
}

// FetchTable читает таблицу целиком и записывает в файл
func FetchTable(ctx context.Context, config adapters.Config, table string, opts FetchOptions, out io.Writer) error {
	adapter, err := openAdapter(ctx, config)
	if err != nil {
		return err
	}
	defer adapter.Close(ctx)

	f, err := adapter.FetchTable(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to fetch table: %w", err)
	}

	return save(ctx, f, opts, out)
}

// RunQuery выполняет запрос и записывает результат в файл
func RunQuery(ctx context.Context, config adapters.Config, query string, opts FetchOptions, out io.Writer) error {
	adapter, err := openAdapter(ctx, config)
	if err != nil {
		return err
	}
	defer adapter.Close(ctx)

	f, err := adapter.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	return save(ctx, f, opts, out)
}

func save(ctx context.Context, f *frame.Frame, opts FetchOptions, out io.Writer) error {
	location := opts.output()
	if err := source.SaveFrame(ctx, location, f, opts.Source); err != nil {
		return err
	}
	// в stdout идут данные, сводка только при записи в файл
	if location != "-" {
		fmt.Fprintf(out, "✓ Wrote %d row(s) to '%s'\n", f.NumRows(), location)
	}
	return nil
}
