package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// InsertFrame вставляет все строки Frame в одной транзакции.
//
//	MethodBatch: один INSERT ... VALUES ($1, ...) на строку, строки отправляются через pgx.Batch
//	MethodCopy:  COPY FROM (самый быстрый метод)
//
// Чанки отправляются в той же транзакции; при любой ошибке откатывается весь Frame.
func (a *Adapter) InsertFrame(ctx context.Context, tableName string, f *frame.Frame, opts adapters.InsertOptions) (int64, error) {
	if a.conn == nil {
		return 0, adapters.NotConnected("insert", tableName)
	}
	if err := base.CheckInsertFrame(f); err != nil {
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert, err)
	}
	opts = opts.Normalize()

	tx, err := a.conn.Begin(ctx)
	if err != nil {
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert,
			fmt.Errorf("failed to begin transaction: %w", err))
	}

	var inserted int64
	switch opts.Method {
	case adapters.MethodCopy:
		inserted, err = a.insertWithCopy(ctx, tx, tableName, f, opts.ChunkSize)
	default:
		inserted, err = a.insertWithBatch(ctx, tx, tableName, f, opts.ChunkSize)
	}
	if err != nil {
		a.rollback(ctx, tx)
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, adapters.Fail(a.log, "insert", tableName, adapters.ErrInsert,
			fmt.Errorf("failed to commit transaction: %w", err))
	}

	a.log.Info().Str("table", tableName).Str("method", string(opts.Method)).Int64("rows", inserted).Msg("rows inserted")
	return inserted, nil
}

// insertWithBatch отправляет параметризованный INSERT для каждой строки через pgx.Batch
func (a *Adapter) insertWithBatch(ctx context.Context, tx pgx.Tx, tableName string, f *frame.Frame, chunkSize int) (int64, error) {
	query := a.builder.BuildInsert(tableName, f.Names())
	a.log.Debug().Str("sql", query).Int("rows", f.NumRows()).Msg("insert")

	var inserted int64
	for _, chunk := range adapters.Chunks(f.NumRows(), chunkSize) {
		batch := &pgx.Batch{}
		for i := chunk[0]; i < chunk[1]; i++ {
			batch.Queue(query, base.DriverArgs(a.types, f, i)...)
		}

		results := tx.SendBatch(ctx, batch)
		for i := chunk[0]; i < chunk[1]; i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return 0, fmt.Errorf("failed to insert row %d: %w", i, err)
			}
			inserted++
		}
		if err := results.Close(); err != nil {
			return 0, fmt.Errorf("failed to close batch: %w", err)
		}

		a.log.Debug().Str("table", tableName).Int("sent", chunk[1]).Msg("chunk sent")
	}

	return inserted, nil
}

// insertWithCopy загружает строки через COPY FROM
func (a *Adapter) insertWithCopy(ctx context.Context, tx pgx.Tx, tableName string, f *frame.Frame, chunkSize int) (int64, error) {
	ident := pgx.Identifier{tableName}
	if a.schema != DefaultSchema {
		ident = pgx.Identifier{a.schema, tableName}
	}

	var inserted int64
	for _, chunk := range adapters.Chunks(f.NumRows(), chunkSize) {
		start, end := chunk[0], chunk[1]
		source := pgx.CopyFromSlice(end-start, func(i int) ([]any, error) {
			return base.DriverArgs(a.types, f, start+i), nil
		})

		count, err := tx.CopyFrom(ctx, ident, f.Names(), source)
		if err != nil {
			return 0, fmt.Errorf("failed to COPY rows %d-%d: %w", start, end-1, err)
		}
		if int(count) != end-start {
			return 0, fmt.Errorf("expected to copy %d rows, but copied %d", end-start, count)
		}
		inserted += count

		a.log.Debug().Str("table", tableName).Int("sent", end).Msg("chunk copied")
	}

	return inserted, nil
}

func (a *Adapter) rollback(ctx context.Context, tx pgx.Tx) {
	// отмененный ctx не должен мешать откату
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && err != pgx.ErrTxClosed {
		a.log.Warn().Err(err).Msg("rollback failed")
	}
}
