package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"

	"github.com/ruslano69/rdshelp/pkg/adapters"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			"postgres default port",
			DatabaseConfig{Type: "postgres", Host: "db", Database: "games", User: "app", Password: "p@ss word"},
			"postgres://app:p%40ss%20word@db:5432/games?sslmode=disable",
		},
		{
			"postgres explicit port and sslmode",
			DatabaseConfig{Type: "postgres", Host: "db", Port: 6432, Database: "games", User: "app", Password: "x", SSLMode: "require"},
			"postgres://app:x@db:6432/games?sslmode=require",
		},
		{
			"mssql",
			DatabaseConfig{Type: "mssql", Database: "games", User: "sa", Password: "x"},
			"sqlserver://sa:x@localhost:1433?database=games",
		},
		{
			"mysql",
			DatabaseConfig{Type: "mysql", Host: "db", Database: "games", User: "root", Password: "x"},
			"root:x@tcp(db:3306)/games?parseTime=true",
		},
		{
			"sqlite",
			DatabaseConfig{Type: "sqlite", Database: "games.db"},
			"games.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.config.BuildDSN()
			if err != nil {
				t.Fatalf("BuildDSN: %v", err)
			}
			if got != tt.expected {
				t.Errorf("\nexpected: %s\n     got: %s", tt.expected, got)
			}
		})
	}

	// пароль со служебными символами DSN разбирается драйвером обратно без потерь
	mysqlCfg := DatabaseConfig{Type: "mysql", Host: "db", Database: "games", User: "root", Password: "p@ss:w/rd?x"}
	dsn, err := mysqlCfg.BuildDSN()
	if err != nil {
		t.Fatalf("BuildDSN mysql: %v", err)
	}
	parsed, err := mysql.ParseDSN(dsn)
	if err != nil {
		t.Fatalf("ParseDSN(%s): %v", dsn, err)
	}
	if parsed.User != "root" || parsed.Passwd != mysqlCfg.Password || parsed.Addr != "db:3306" || parsed.DBName != "games" || !parsed.ParseTime {
		t.Errorf("Unexpected parsed mysql config: %+v", parsed)
	}

	if _, err := (&DatabaseConfig{Type: "oracle"}).BuildDSN(); err == nil {
		t.Error("Expected error for unknown type")
	}
	if _, err := (&DatabaseConfig{Type: "sqlite"}).BuildDSN(); err == nil {
		t.Error("Expected error for sqlite without file")
	}
}

func TestConfigRoundTripAndPasswordEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	sample, err := CreateSampleConfig("postgres")
	if err != nil {
		t.Fatalf("CreateSampleConfig: %v", err)
	}
	sample.Database.Password = "from-file"
	if err := SaveConfig(path, sample); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	t.Setenv(passwordEnv, "from-env")

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Database.Password != "from-env" {
		t.Errorf("Expected password from env, got %q", loaded.Database.Password)
	}
	if loaded.Database.Port != 5432 || loaded.Import.Method != "copy" {
		t.Errorf("Unexpected config: %+v", loaded)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "chunk_size: 1000") {
		t.Errorf("Expected chunk_size in yaml:\n%s", data)
	}
}

func TestCreateSampleConfigUnknownType(t *testing.T) {
	if _, err := CreateSampleConfig("oracle"); err == nil {
		t.Error("Expected error for unknown type")
	}
}

func TestInsertOptionsPrecedence(t *testing.T) {
	c := ImportConfig{ChunkSize: 500, Method: "copy"}

	opts, err := c.InsertOptions("", 0)
	if err != nil {
		t.Fatalf("InsertOptions: %v", err)
	}
	if opts.Method != adapters.MethodCopy || opts.ChunkSize != 500 {
		t.Errorf("Expected config values, got %+v", opts)
	}

	opts, err = c.InsertOptions("batch", 50)
	if err != nil {
		t.Fatalf("InsertOptions: %v", err)
	}
	if opts.Method != adapters.MethodBatch || opts.ChunkSize != 50 {
		t.Errorf("Expected flag values, got %+v", opts)
	}

	if _, err := c.InsertOptions("upsert", 0); err == nil {
		t.Error("Expected error for unknown method")
	}

	opts, _ = (&ImportConfig{}).InsertOptions("", 0)
	if opts.ChunkSize != adapters.DefaultChunkSize {
		t.Errorf("Expected default chunk size, got %d", opts.ChunkSize)
	}
}
