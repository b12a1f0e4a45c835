package mysql

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// Интеграционные тесты требуют MySQL, например:
// RDSHELP_TEST_MYSQL_DSN="root:secret@tcp(localhost:3306)/rdshelp"
func setupAdapter(t *testing.T) adapters.Adapter {
	t.Helper()

	dsn := os.Getenv("RDSHELP_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("RDSHELP_TEST_MYSQL_DSN not set")
	}

	ctx := context.Background()
	adapter, err := adapters.New(ctx, adapters.Config{Type: AdapterType, DSN: dsn})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { adapter.Close(ctx) })
	return adapter
}

func tempTable(t *testing.T, adapter adapters.Adapter) string {
	t.Helper()
	name := fmt.Sprintf("rdshelp_test_%d", time.Now().UnixNano())
	t.Cleanup(func() { adapter.DropTable(context.Background(), name) })
	return name
}

func TestIntegration_RoundTrip(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()
	table := tempTable(t, adapter)

	ts := time.Date(2024, 5, 1, 8, 30, 0, 123456000, time.FixedZone("X", 2*3600))
	f := frame.NewBuilder().
		AddText("name", "alice", "bob").
		AddInteger("points", 10, -20).
		AddBoolean("passed", true, false).
		AddFloat("ratio", 0.5, 1e10).
		AddTimestamp("at", ts, ts.Add(time.Hour)).
		MustBuild()
	f.Columns[3].Values[1] = frame.Null(frame.KindFloat)

	if err := adapter.CreateTable(ctx, table, f); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	n, err := adapter.InsertFrame(ctx, table, f, adapters.DefaultInsertOptions())
	if err != nil {
		t.Fatalf("InsertFrame: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rows, got %d", n)
	}

	got, err := adapter.FetchTable(ctx, table)
	if err != nil {
		t.Fatalf("FetchTable: %v", err)
	}
	if !frame.MultisetEqual(f, got) {
		t.Errorf("Round trip mismatch:\n%v\n%v", f.Kinds(), got.Kinds())
	}
}

func TestIntegration_ExistsAndDrop(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()
	table := tempTable(t, adapter)

	exists, err := adapter.TableExists(ctx, table)
	if err != nil || exists {
		t.Fatalf("Expected missing table, got %v (%v)", exists, err)
	}

	f := frame.NewBuilder().AddInteger("id", 1).MustBuild()
	if err := adapter.CreateTable(ctx, table, f); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if exists, _ := adapter.TableExists(ctx, table); !exists {
		t.Error("Expected table to exist")
	}

	if err := adapter.DropTable(ctx, table); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	if _, err := adapter.FetchTable(ctx, table); !errors.Is(err, adapters.ErrRead) {
		t.Errorf("Expected ErrRead after drop, got %v", err)
	}
}
