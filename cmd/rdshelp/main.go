package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ruslano69/rdshelp/cmd/rdshelp/commands"
	"github.com/ruslano69/rdshelp/pkg/adapters"
	_ "github.com/ruslano69/rdshelp/pkg/adapters/mssql"
	_ "github.com/ruslano69/rdshelp/pkg/adapters/mysql"
	_ "github.com/ruslano69/rdshelp/pkg/adapters/postgres"
	_ "github.com/ruslano69/rdshelp/pkg/adapters/sqlite"
	"github.com/ruslano69/rdshelp/pkg/source"
)

func main() {
	flags := ParseFlags()

	setupLogging(*flags.Verbose)

	if *flags.Version {
		PrintVersion()
		return
	}
	if *flags.Help {
		PrintHelp()
		return
	}

	if *flags.CreateConfig != "" {
		createConfigTemplate(*flags.CreateConfig)
		return
	}

	if !flags.commandWasSpecified() {
		PrintHelp()
		os.Exit(1)
	}

	// Ctrl+C отменяет текущую операцию; запись откатывается
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config, adapterConfig, err := resolveConfig(flags)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	sourceOpts := source.Options{
		Sheet:  *flags.Sheet,
		S3:     config.Source.S3,
		Logger: &log.Logger,
	}

	var cmdErr error
	out := os.Stdout

	switch {
	case *flags.List:
		cmdErr = commands.ListTables(ctx, adapterConfig, out)

	case *flags.Exists != "":
		_, cmdErr = commands.TableExists(ctx, adapterConfig, *flags.Exists, out)

	case *flags.Create != "", *flags.Insert != "", *flags.Load != "":
		opts := commands.LoadOptions{
			From:         *flags.From,
			CleanColumns: *flags.CleanColumns || config.Import.CleanColumns,
			Verify:       *flags.Verify,
			Source:       sourceOpts,
		}
		switch {
		case *flags.Create != "":
			opts.Table, opts.Mode = *flags.Create, commands.ModeCreate
		case *flags.Insert != "":
			opts.Table, opts.Mode = *flags.Insert, commands.ModeInsert
		default:
			opts.Table, opts.Mode = *flags.Load, commands.ModeLoad
		}

		opts.Insert, cmdErr = config.Import.InsertOptions(*flags.Method, *flags.Chunk)
		if cmdErr == nil {
			cmdErr = commands.LoadFile(ctx, adapterConfig, opts, out)
		}

	case *flags.Fetch != "":
		cmdErr = commands.FetchTable(ctx, adapterConfig, *flags.Fetch,
			commands.FetchOptions{Output: *flags.Output, Source: sourceOpts}, os.Stderr)

	case *flags.Query != "":
		cmdErr = commands.RunQuery(ctx, adapterConfig, *flags.Query,
			commands.FetchOptions{Output: *flags.Output, Source: sourceOpts}, os.Stderr)

	case *flags.Drop != "":
		cmdErr = commands.DropTable(ctx, adapterConfig, *flags.Drop, out)
	}

	if cmdErr != nil {
		fatal("Command failed: %v", cmdErr)
	}
}

// setupLogging настраивает zerolog: консольный вывод в stderr, debug при --verbose
func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

// resolveConfig читает конфиг; --type/--dsn заменяют подключение из файла
func resolveConfig(flags *Flags) (*Config, adapters.Config, error) {
	config := &Config{}

	if *flags.DSN == "" || fileExists(*flags.Config) {
		loaded, err := LoadConfig(*flags.Config)
		if err != nil {
			return nil, adapters.Config{}, err
		}
		config = loaded
	}

	if *flags.Type != "" {
		config.Database.Type = *flags.Type
	}

	dsn := *flags.DSN
	if dsn == "" {
		var err error
		if dsn, err = config.Database.BuildDSN(); err != nil {
			return nil, adapters.Config{}, err
		}
	}

	return config, adapters.Config{
		Type:   config.Database.Type,
		DSN:    dsn,
		Schema: config.Database.Schema,
		Logger: &log.Logger,
	}, nil
}

// createConfigTemplate creates a sample configuration file
func createConfigTemplate(dbType string) {
	config, err := CreateSampleConfig(dbType)
	if err != nil {
		fatal("%v", err)
	}

	if err := SaveConfig("config.yaml", config); err != nil {
		fatal("Failed to save config: %v", err)
	}

	fmt.Printf("✓ Created sample %s config: config.yaml\n", dbType)
	fmt.Println("Edit the file with your database credentials (or set " + passwordEnv + ") and run:")
	fmt.Printf("  rdshelp --list --config config.yaml\n")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// fatal prints error and exits
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
