package mysql

import (
	"strings"
	"testing"

	"github.com/ruslano69/rdshelp/pkg/adapters/base"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

func TestQueryBuilderSurface(t *testing.T) {
	types := NewTypeMapper()
	b := base.NewStandardQueryBuilder("`", "`", base.PlaceholderQuestion, "", types)

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
			"CREATE TABLE IF NOT EXISTS `scores` (`name` TEXT, `points` INTEGER, `passed` BIT(1), `ratio` DOUBLE, `at` DATETIME(6));",
		},
		{
			b.BuildInsert("scores", schema.Names(decls)),
			"INSERT INTO `scores` (`name`, `points`, `passed`, `ratio`, `at`) VALUES (?, ?, ?, ?, ?);",
		},
		{b.BuildSelectAll("odd`name"), "SELECT * FROM `odd``name`;"},
		{b.BuildDropTable("scores"), "DROP TABLE IF EXISTS `scores`;"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("\nexpected: %s\n     got: %s", tt.expected, tt.got)
		}
	}
}

func TestScanValueBit(t *testing.T) {
	m := NewTypeMapper()

	tests := []struct {
		name     string
		raw      any
		kind     frame.Kind
		expected frame.Value
	}{
		{"bit one", []byte{0x01}, frame.KindBoolean, frame.Bool(true)},
		{"bit zero", []byte{0x00}, frame.KindBoolean, frame.Bool(false)},
		{"tinyint text", []byte("1"), frame.KindBoolean, frame.Bool(true)},
		{"int64", int64(0), frame.KindBoolean, frame.Bool(false)},
		{"null", nil, frame.KindBoolean, frame.Null(frame.KindBoolean)},
		{"text bytes", []byte("hello"), frame.KindText, frame.Text("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.ScanValue(tt.raw, tt.kind)
			if err != nil {
				t.Fatalf("ScanValue: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestNormalizeDSN(t *testing.T) {
	dsn, err := NormalizeDSN("user:pass@tcp(localhost:3306)/games")
	if err != nil {
		t.Fatalf("NormalizeDSN: %v", err)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("Expected parseTime=true in %s", dsn)
	}
	if !strings.HasPrefix(dsn, "user:pass@tcp(localhost:3306)/games") {
		t.Errorf("Unexpected dsn: %s", dsn)
	}

	if _, err := NormalizeDSN("user:pass@tcp(localhost:3306)games"); err == nil {
		t.Error("Expected error for dsn without slash")
	}
}

func TestCatalogQueries(t *testing.T) {
	q, args := catalog{}.ExistsQuery("scores")
	if !strings.Contains(q, "DATABASE()") || len(args) != 1 || args[0] != "scores" {
		t.Errorf("Unexpected exists query: %s %v", q, args)
	}
}
