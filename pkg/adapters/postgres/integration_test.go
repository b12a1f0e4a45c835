package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// connect подключается к PostgreSQL из RDSHELP_TEST_POSTGRES_DSN
// или пропускает тест, если база недоступна
func connect(t *testing.T) *Adapter {
	t.Helper()

	dsn := os.Getenv("RDSHELP_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("RDSHELP_TEST_POSTGRES_DSN not set")
	}

	logger := zerolog.Nop()
	a := &Adapter{}
	if err := a.Connect(context.Background(), adapters.Config{Type: "postgres", DSN: dsn, Logger: &logger}); err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}
	t.Cleanup(func() { a.Close(context.Background()) })
	return a
}

// tempTable возвращает уникальное имя таблицы и удаляет ее после теста
func tempTable(t *testing.T, a *Adapter, prefix string) string {
	t.Helper()
	name := fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	t.Cleanup(func() { a.DropTable(context.Background(), name) })
	return name
}

// TestIntegration_ScoresEndToEnd create → insert 3 строки → fetch
func TestIntegration_ScoresEndToEnd(t *testing.T) {
	ctx := context.Background()
	a := connect(t)
	table := tempTable(t, a, "scores")

	input := frame.NewBuilder().
		AddText("name", "alice", "bob", "carol").
		AddInteger("points", 10, 20, 30).
		AddBoolean("passed", true, false, true).
		MustBuild()

	if err := a.CreateTable(ctx, table, input); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if n, err := a.InsertFrame(ctx, table, input, adapters.DefaultInsertOptions()); err != nil || n != 3 {
		t.Fatalf("InsertFrame: n=%d err=%v", n, err)
	}

	out, err := a.FetchTable(ctx, table)
	if err != nil {
		t.Fatalf("FetchTable: %v", err)
	}
	if out.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", out.NumRows())
	}
	if !frame.MultisetEqual(input, out) {
		t.Errorf("Read back differs:\n%v\n%v", input.Tuples(), out.Tuples())
	}
}

// TestIntegration_RoundTripMethods проверяет batch и COPY на всех пяти типах
func TestIntegration_RoundTripMethods(t *testing.T) {
	ctx := context.Background()
	a := connect(t)

	ts := time.Date(2024, 3, 1, 12, 30, 15, 0, time.UTC)
	input := frame.NewBuilder().
		AddInteger("id", 1, 2, 3).
		AddFloat("ratio", 0.5, 2, -1.25).
		AddBoolean("flag", true, false, false).
		AddTimestamp("at", ts, ts.In(time.FixedZone("MSK", 3*3600)), ts.Add(time.Hour)).
		AddText("note", "", "x", "y").
		MustBuild()
	input.Columns[1].Values[2] = frame.Null(frame.KindFloat)

	for _, method := range []adapters.InsertMethod{adapters.MethodBatch, adapters.MethodCopy} {
		t.Run(string(method), func(t *testing.T) {
			table := tempTable(t, a, "kinds_"+string(method))

			if err := a.CreateTable(ctx, table, input); err != nil {
				t.Fatalf("CreateTable: %v", err)
			}
			if _, err := a.InsertFrame(ctx, table, input, adapters.InsertOptions{Method: method, ChunkSize: 2}); err != nil {
				t.Fatalf("InsertFrame: %v", err)
			}

			out, err := a.FetchTable(ctx, table)
			if err != nil {
				t.Fatalf("FetchTable: %v", err)
			}
			if !frame.MultisetEqual(input, out) {
				t.Errorf("Round trip differs:\n%v\n%v", input.Tuples(), out.Tuples())
			}
		})
	}
}

// TestIntegration_Atomicity ошибка в последней строке откатывает весь Frame
func TestIntegration_Atomicity(t *testing.T) {
	ctx := context.Background()
	a := connect(t)
	table := tempTable(t, a, "players")

	if _, err := a.Conn().Exec(ctx, fmt.Sprintf(`CREATE TABLE "%s" ("id" INTEGER PRIMARY KEY, "name" TEXT)`, table)); err != nil {
		t.Fatalf("create: %v", err)
	}

	f := frame.NewBuilder().AddInteger("id", 1, 2, 1).AddText("name", "a", "b", "c").MustBuild()

	for _, method := range []adapters.InsertMethod{adapters.MethodBatch, adapters.MethodCopy} {
		_, err := a.InsertFrame(ctx, table, f, adapters.InsertOptions{Method: method, ChunkSize: 1})
		if !errors.Is(err, adapters.ErrInsert) {
			t.Fatalf("%s: expected ErrInsert, got %v", method, err)
		}

		out, err := a.FetchTable(ctx, table)
		if err != nil {
			t.Fatalf("FetchTable: %v", err)
		}
		if out.NumRows() != 0 {
			t.Errorf("%s: expected 0 rows after failed insert, got %d", method, out.NumRows())
		}
	}
}

// TestIntegration_SchemaLifecycle идемпотентный CREATE, exists, DROP, коллизия имен
func TestIntegration_SchemaLifecycle(t *testing.T) {
	ctx := context.Background()
	a := connect(t)
	table := tempTable(t, a, "lifecycle")

	f := frame.NewBuilder().AddText("name", "x").MustBuild()

	if exists, _ := a.TableExists(ctx, table); exists {
		t.Fatal("Table must not exist before create")
	}
	for i := 0; i < 2; i++ {
		if err := a.CreateTable(ctx, table, f); err != nil {
			t.Fatalf("CreateTable #%d: %v", i+1, err)
		}
	}
	if exists, err := a.TableExists(ctx, table); err != nil || !exists {
		t.Fatalf("Expected table to exist: %v", err)
	}
	if err := a.DropTable(ctx, table); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	if exists, _ := a.TableExists(ctx, table); exists {
		t.Error("Table must not exist after drop")
	}

	dups := frame.NewBuilder().AddInteger("ID", 1).AddInteger("id", 2).MustBuild().CleanColumnNames()
	err := a.CreateTable(ctx, table, dups)
	if !errors.Is(err, schema.ErrDuplicateColumn) || !errors.Is(err, adapters.ErrSchema) {
		t.Errorf("Expected duplicate column schema error, got %v", err)
	}
	if exists, _ := a.TableExists(ctx, table); exists {
		t.Error("Table must not be created on collision")
	}
}
