package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/source"
)

// ErrVerifyFailed строки, прочитанные из таблицы, не совпали с загруженными
var ErrVerifyFailed = errors.New("verification failed")

// LoadMode что делать с таблицей
type LoadMode int

const (
	// ModeCreate только создать таблицу по схеме файла
	ModeCreate LoadMode = iota
	// ModeInsert только вставить строки в существующую таблицу
	ModeInsert
	// ModeLoad создать таблицу (если нет) и вставить строки
	ModeLoad
)

// LoadOptions holds options for create/insert/load operations
type LoadOptions struct {
	Table        string
	From         string
	Mode         LoadMode
	CleanColumns bool
	Verify       bool
	Insert       adapters.InsertOptions
	Source       source.Options
}

// LoadFile читает файл в Frame и создает таблицу и/или вставляет строки
func LoadFile(ctx context.Context, config adapters.Config, opts LoadOptions, out io.Writer) error {
	if opts.From == "" {
		return fmt.Errorf("--from is required")
	}

	f, err := source.LoadFrame(ctx, opts.From, opts.Source)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Read %d row(s), %d column(s) from '%s'\n", f.NumRows(), f.NumColumns(), opts.From)

	if opts.CleanColumns {
		f.CleanColumnNames()
	}

	adapter, err := openAdapter(ctx, config)
	if err != nil {
		return err
	}
	defer adapter.Close(ctx)

	if opts.Mode == ModeCreate || opts.Mode == ModeLoad {
		if err := adapter.CreateTable(ctx, opts.Table, f); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
		fmt.Fprintf(out, "✓ Table '%s' ready\n", opts.Table)
	}

	if opts.Mode == ModeCreate {
		return nil
	}

	n, err := adapter.InsertFrame(ctx, opts.Table, f, opts.Insert)
	if err != nil {
		return fmt.Errorf("failed to insert rows: %w", err)
	}
	fmt.Fprintf(out, "✓ Inserted %d row(s) into '%s' (%s)\n", n, opts.Table, opts.Insert.Method)

	if opts.Verify {
		if err := verify(ctx, adapter, opts.Table, f); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Verified %d row(s)\n", f.NumRows())
	}

	return nil
}

// verify читает таблицу и проверяет, что все загруженные строки в ней есть.
// Таблица может содержать строки, вставленные раньше.
func verify(ctx context.Context, adapter adapters.Adapter, table string, loaded *frame.Frame) error {
	stored, err := adapter.FetchTable(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to read back table: %w", err)
	}

	if !frame.MultisetContains(stored, loaded) {
		return fmt.Errorf("%w: table '%s' (%d rows, columns %v %v) does not contain loaded rows (columns %v %v)",
			ErrVerifyFailed, table, stored.NumRows(), stored.Names(), stored.Kinds(), loaded.Names(), loaded.Kinds())
	}
	return nil
}
