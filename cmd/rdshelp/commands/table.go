package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/ruslano69/rdshelp/pkg/adapters"
)

// TableExists печатает, существует ли таблица, и возвращает результат
func TableExists(ctx context.Context, config adapters.Config, table string, out io.Writer) (bool, error) {
	adapter, err := openAdapter(ctx, config)
	if err != nil {
		return false, err
	}
	defer adapter.Close(ctx)

	exists, err := adapter.TableExists(ctx, table)
	if err != nil {
		return false, fmt.Errorf("failed to check table: %w", err)
	}

	if exists {
		fmt.Fprintf(out, "✓ Table '%s' exists\n", table)
	} else {
		fmt.Fprintf(out, "✗ Table '%s' not found\n", table)
	}
	return exists, nil
}

// DropTable удаляет таблицу; отсутствие таблицы не ошибка
func DropTable(ctx context.Context, config adapters.Config, table string, out io.Writer) error {
	adapter, err := openAdapter(ctx, config)
	if err != nil {
		return err
	}
	defer adapter.Close(ctx)

	if err := adapter.DropTable(ctx, table); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	fmt.Fprintf(out, "✓ Table '%s' dropped\n", table)
	return nil
}
