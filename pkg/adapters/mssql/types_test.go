package mssql

import (
	"testing"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

func TestQueryBuilderSurface(t *testing.T) {
	b := NewQueryBuilder(DefaultSchema, NewTypeMapper())

	decls := []schema.ColumnDecl{
		{Name: "name", Type: schema.TypeText},
		{Name: "points", Type: schema.TypeInteger},
		{Name: "passed", Type: schema.TypeBoolean},
		{Name: "ratio", Type: schema.TypeFloat},
		{Name: "at", Type: schema.TypeTimestamp},
	}

	tests := []struct {
		got      string
		expected string
	}{
		{
			b.BuildCreateTable("scores", decls),
			"IF OBJECT_ID(N'[dbo].[scores]', N'U') IS NULL CREATE TABLE [dbo].[scores] ([name] NVARCHAR(MAX), [points] INTEGER, [passed] BIT, [ratio] FLOAT, [at] DATETIME2);",
		},
		{
			b.BuildInsert("scores", schema.Names(decls)),
			"INSERT INTO [dbo].[scores] ([name], [points], [passed], [ratio], [at]) VALUES (@p1, @p2, @p3, @p4, @p5);",
		},
		{b.BuildSelectAll("scores"), "SELECT * FROM [dbo].[scores];"},
		{
			b.BuildDropTable("scores"),
			"IF OBJECT_ID(N'[dbo].[scores]', N'U') IS NOT NULL DROP TABLE [dbo].[scores];",
		},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("\nexpected: %s\n     got: %s", tt.expected, tt.got)
		}
	}
}

func TestQueryBuilderEscapesNames(t *testing.T) {
	b := NewQueryBuilder("sales", NewTypeMapper())

	got := b.BuildDropTable("it's]odd")
	expected := "IF OBJECT_ID(N'[sales].[it''s]]odd]', N'U') IS NOT NULL DROP TABLE [sales].[it's]]odd];"
	if got != expected {
		t.Errorf("\nexpected: %s\n     got: %s", expected, got)
	}
}

func TestKindForDatabaseType(t *testing.T) {
	m := NewTypeMapper()

	tests := []struct {
		dbType   string
		expected frame.Kind
	}{
		{"BIGINT", frame.KindInteger},
		{"INT", frame.KindInteger},
		{"FLOAT", frame.KindFloat},
		{"MONEY", frame.KindFloat},
		{"BIT", frame.KindBoolean},
		{"DATETIME2", frame.KindTimestamp},
		{"DATETIMEOFFSET", frame.KindTimestamp},
		{"NVARCHAR", frame.KindText},
		{"TIMESTAMP", frame.KindText},
		{"UNIQUEIDENTIFIER", frame.KindText},
	}

	for _, tt := range tests {
		if got := m.KindForDatabaseType(tt.dbType); got != tt.expected {
			t.Errorf("KindForDatabaseType(%s) = %s, want %s", tt.dbType, got, tt.expected)
		}
	}
}

func TestCatalogUsesSchema(t *testing.T) {
	_, args := catalog{schema: "sales"}.ExistsQuery("scores")
	if len(args) != 2 || args[0] != "sales" || args[1] != "scores" {
		t.Errorf("Unexpected args: %v", args)
	}
}
