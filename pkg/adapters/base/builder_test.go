package base

import (
	"errors"
	"testing"
	"time"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

func scoresColumns() []schema.ColumnDecl {
	return []schema.ColumnDecl{
		{Name: "name", Type: schema.TypeText},
		{Name: "points", Type: schema.TypeInteger},
		{Name: "passed", Type: schema.TypeBoolean},
	}
}

func TestStandardQueryBuilderPostgresSurface(t *testing.T) {
	b := NewStandardQueryBuilder(`"`, `"`, PlaceholderDollar, "", &StandardTypeMapper{})

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			"create",
			b.BuildCreateTable("scores", scoresColumns()),
			`CREATE TABLE IF NOT EXISTS "scores" ("name" TEXT, "points" INTEGER, "passed" BOOLEAN);`,
		},
		{
			"insert",
			b.BuildInsert("scores", []string{"name", "points", "passed"}),
			`INSERT INTO "scores" ("name", "points", "passed") VALUES ($1, $2, $3);`,
		},
		{"select", b.BuildSelectAll("scores"), `SELECT * FROM "scores";`},
		{"drop", b.BuildDropTable("scores"), `DROP TABLE IF EXISTS "scores";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("\nexpected: %s\n     got: %s", tt.expected, tt.got)
			}
		})
	}
}

func TestStandardQueryBuilderSchemaAndQuoting(t *testing.T) {
	b := NewStandardQueryBuilder(`"`, `"`, PlaceholderDollar, "analytics", &StandardTypeMapper{})

	if got := b.BuildSelectAll("scores"); got != `SELECT * FROM "analytics"."scores";` {
		t.Errorf("Unexpected select: %s", got)
	}
	if got := b.QuoteIdentifier(`we"ird`); got != `"we""ird"` {
		t.Errorf("Unexpected quoting: %s", got)
	}

	mysql := NewStandardQueryBuilder("`", "`", PlaceholderQuestion, "", &StandardTypeMapper{})
	if got := mysql.BuildInsert("t", []string{"a", "b"}); got != "INSERT INTO `t` (`a`, `b`) VALUES (?, ?);" {
		t.Errorf("Unexpected MySQL insert: %s", got)
	}

	mssql := NewStandardQueryBuilder("[", "]", PlaceholderAtP, "dbo", &StandardTypeMapper{})
	if got := mssql.BuildInsert("t", []string{"a]b"}); got != "INSERT INTO [dbo].[t] ([a]]b]) VALUES (@p1);" {
		t.Errorf("Unexpected MS SQL insert: %s", got)
	}
}

func TestStandardTypeMapperOverrides(t *testing.T) {
	m := &StandardTypeMapper{Overrides: map[schema.SQLType]string{schema.TypeFloat: "DOUBLE"}}

	if got := m.ColumnType(schema.TypeFloat); got != "DOUBLE" {
		t.Errorf("Expected DOUBLE, got %s", got)
	}
	if got := m.ColumnType(schema.TypeInteger); got != "INTEGER" {
		t.Errorf("Expected INTEGER, got %s", got)
	}
	if got := m.ColumnType(schema.SQLType("BLOB")); got != "TEXT" {
		t.Errorf("Expected TEXT for unknown type, got %s", got)
	}
}

func TestStandardTypeMapperDriverValue(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 0, 0, 0, time.FixedZone("X", 3*3600))

	m := &StandardTypeMapper{}
	if got := m.DriverValue(frame.Time(ts)).(time.Time); got.Location() != time.UTC || !got.Equal(ts) {
		t.Errorf("Expected UTC time, got %v", got)
	}
	if m.DriverValue(frame.Null(frame.KindInteger)) != nil {
		t.Error("NULL must be passed as nil")
	}
	if m.DriverValue(frame.Int(5)) != int64(5) {
		t.Error("Expected int64(5)")
	}

	layout := &StandardTypeMapper{TimeLayout: "2006-01-02 15:04:05-07:00"}
	if got := layout.DriverValue(frame.Time(ts)); got != "2024-01-02 10:00:00+00:00" {
		t.Errorf("Unexpected formatted time: %v", got)
	}
}

func TestKindForTypeName(t *testing.T) {
	tests := []struct {
		name     string
		expected frame.Kind
	}{
		{"INT4", frame.KindInteger},
		{"int8", frame.KindInteger},
		{"UNSIGNED BIGINT", frame.KindInteger},
		{"FLOAT8", frame.KindFloat},
		{"DECIMAL(10,2)", frame.KindFloat},
		{"double precision", frame.KindFloat},
		{"BOOL", frame.KindBoolean},
		{"BIT", frame.KindBoolean},
		{"DATETIME2", frame.KindTimestamp},
		{"TIMESTAMPTZ", frame.KindTimestamp},
		{"DATE", frame.KindTimestamp},
		{"VARCHAR(100)", frame.KindText},
		{"NVARCHAR", frame.KindText},
		{"UUID", frame.KindText},
		{"TIME", frame.KindText},
		{"", frame.KindText},
	}

	for _, tt := range tests {
		if got := KindForTypeName(tt.name); got != tt.expected {
			t.Errorf("KindForTypeName(%q) = %s, want %s", tt.name, got, tt.expected)
		}
	}
}

func TestBuildFrameSetsColumnOnConversionError(t *testing.T) {
	raw := [][]any{{int64(1)}, {"oops"}}
	_, err := BuildFrame([]string{"points"}, []frame.Kind{frame.KindInteger}, raw, nil)
	var ce *frame.ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConversionError, got %v", err)
	}
	if ce.Column != "points" {
		t.Errorf("Expected column points, got %q", ce.Column)
	}

	f, err := BuildFrame([]string{"points"}, []frame.Kind{frame.KindInteger}, [][]any{{int64(1)}, {nil}}, nil)
	if err != nil {
		t.Fatalf("BuildFrame: %v", err)
	}
	if f.NumRows() != 2 || !f.Columns[0].Values[1].Null {
		t.Errorf("Unexpected frame: %+v", f.Columns[0].Values)
	}
}
