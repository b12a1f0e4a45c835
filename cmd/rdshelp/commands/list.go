package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/ruslano69/rdshelp/pkg/adapters"
)

// ListTables lists all tables in the database
func ListTables(ctx context.Context, config adapters.Config, out io.Writer) error {
	adapter, err := openAdapter(ctx, config)
	if err != nil {
		return err
	}
	defer adapter.Close(ctx)

	tables, err := adapter.GetTableNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	if len(tables) == 0 {
		fmt.Fprintln(out, "No tables found")
		return nil
	}

	fmt.Fprintf(out, "Found %d table(s):\n", len(tables))
	for i, table := range tables {
		fmt.Fprintf(out, "  %d. %s\n", i+1, table)
	}

	return nil
}
