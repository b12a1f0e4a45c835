package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/source"
)

// passwordEnv переменная окружения с паролем БД, имеет приоритет над файлом
const passwordEnv = "RDSHELP_PASSWORD"

// Config represents the main configuration structure
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Source   SourceConfig   `yaml:"source,omitempty"`
	Import   ImportConfig   `yaml:"import,omitempty"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Type     string `yaml:"type"`               // sqlite, postgres, mysql, mssql
	Host     string `yaml:"host,omitempty"`     // For network databases
	Port     int    `yaml:"port,omitempty"`     // Database port (default by type)
	Database string `yaml:"database"`           // Database name or file path
	User     string `yaml:"user,omitempty"`     // Username
	Password string `yaml:"password,omitempty"` // Password (or RDSHELP_PASSWORD)
	Schema   string `yaml:"schema,omitempty"`   // public for postgres, dbo for mssql
	SSLMode  string `yaml:"sslmode,omitempty"`  // PostgreSQL SSL mode
}

// SourceConfig contains file location settings
type SourceConfig struct {
	S3 source.S3Config `yaml:"s3,omitempty"`
}

// ImportConfig contains insert defaults
type ImportConfig struct {
	ChunkSize    int    `yaml:"chunk_size,omitempty"`
	Method       string `yaml:"method,omitempty"` // batch, copy
	CleanColumns bool   `yaml:"clean_columns,omitempty"`
}

// LoadConfig loads configuration from YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// applyEnv подставляет пароль из окружения
func (c *Config) applyEnv() {
	if p, ok := os.LookupEnv(passwordEnv); ok {
		c.Database.Password = p
	}
}

// SaveConfig saves configuration to YAML file
func SaveConfig(filename string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateSampleConfig creates sample configuration for different database types
func CreateSampleConfig(dbType string) (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{Type: dbType},
		Import: ImportConfig{
			ChunkSize: adapters.DefaultChunkSize,
			Method:    string(adapters.MethodBatch),
		},
	}

	switch dbType {
	case "postgres":
		config.Database.Host = "localhost"
		config.Database.Port = 5432
		config.Database.Database = "mydb"
		config.Database.User = "postgres"
		config.Database.Schema = "public"
		config.Database.SSLMode = "disable"
		config.Import.Method = string(adapters.MethodCopy)

	case "mssql":
		config.Database.Host = "localhost"
		config.Database.Port = 1433
		config.Database.Database = "mydb"
		config.Database.User = "sa"
		config.Database.Schema = "dbo"

	case "mysql":
		config.Database.Host = "localhost"
		config.Database.Port = 3306
		config.Database.Database = "mydb"
		config.Database.User = "root"

	case "sqlite":
		config.Database.Database = "database.db"

	default:
		return nil, fmt.Errorf("unknown database type %q (valid: postgres, mysql, mssql, sqlite)", dbType)
	}

	return config, nil
}

// DefaultPort порт по умолчанию для типа СУБД
func DefaultPort(dbType string) int {
	switch dbType {
	case "postgres":
		return 5432
	case "mssql":
		return 1433
	case "mysql":
		return 3306
	default:
		return 0
	}
}

// BuildDSN constructs database connection string from config
func (c *DatabaseConfig) BuildDSN() (string, error) {
	port := c.Port
	if port == 0 {
		port = DefaultPort(c.Type)
	}
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	hostPort := host + ":" + strconv.Itoa(port)

	switch c.Type {
	case "postgres":
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     hostPort,
			Path:     "/" + c.Database,
			RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
		}
		return u.String(), nil

	case "mssql":
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(c.User, c.Password),
			Host:     hostPort,
			RawQuery: url.Values{"database": {c.Database}}.Encode(),
		}
		return u.String(), nil

	case "mysql":
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = hostPort
		mc.DBName = c.Database
		mc.ParseTime = true
		return mc.FormatDSN(), nil

	case "sqlite":
		if c.Database == "" {
			return "", fmt.Errorf("sqlite: database file is required")
		}
		return c.Database, nil

	default:
		return "", fmt.Errorf("unknown database type %q", c.Type)
	}
}

// InsertOptions собирает параметры вставки: флаги имеют приоритет над конфигом
func (c *ImportConfig) InsertOptions(method string, chunk int) (adapters.InsertOptions, error) {
	if method == "" {
		method = c.Method
	}
	if chunk == 0 {
		chunk = c.ChunkSize
	}

	m, err := adapters.ParseInsertMethod(method)
	if err != nil {
		return adapters.InsertOptions{}, err
	}

	return adapters.InsertOptions{Method: m, ChunkSize: chunk}.Normalize(), nil
}
