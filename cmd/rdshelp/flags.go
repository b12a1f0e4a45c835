package main

import "flag"

// Flags holds all command-line flags
type Flags struct {
	// Commands
	List         *bool
	Exists       *string
	Create       *string
	Insert       *string
	Load         *string
	Fetch        *string
	Query        *string
	Drop         *string
	CreateConfig *string

	// Options
	Config       *string
	Type         *string
	DSN          *string
	From         *string
	Output       *string
	Sheet        *string
	Method       *string
	Chunk        *int
	CleanColumns *bool
	Verify       *bool
	Verbose      *bool

	// Misc
	Version *bool
	Help    *bool
}

// ParseFlags defines and parses all command-line flags
func ParseFlags() *Flags {
	f := &Flags{}

	// Commands
	f.List = flag.Bool("list", false, "List all tables in database")
	f.Exists = flag.String("exists", "", "Check whether table exists (table name)")
	f.Create = flag.String("create", "", "Create table with schema of --from file (table name)")
	f.Insert = flag.String("insert", "", "Insert rows of --from file into existing table (table name)")
	f.Load = flag.String("load", "", "Create table and insert rows of --from file (table name)")
	f.Fetch = flag.String("fetch", "", "Read whole table to --output (table name)")
	f.Query = flag.String("query", "", "Run SQL query and write result to --output")
	f.Drop = flag.String("drop", "", "Drop table if it exists (table name)")
	f.CreateConfig = flag.String("create-config", "", "Create sample config.yaml: postgres, mysql, mssql, sqlite")

	// Options
	f.Config = flag.String("config", "config.yaml", "Configuration file path")
	f.Type = flag.String("type", "", "Database type (overrides config; use with --dsn)")
	f.DSN = flag.String("dsn", "", "Connection string (overrides config)")
	f.From = flag.String("from", "", "Input file: .csv, .tsv, .xlsx, optionally .gz/.zst, local or s3://")
	f.Output = flag.String("output", "", "Output file (default: CSV to stdout)")
	f.Sheet = flag.String("sheet", "", "Excel sheet name (default: first sheet / Sheet1)")
	f.Method = flag.String("method", "", "Insert method: batch, copy (default: config or batch)")
	f.Chunk = flag.Int("chunk", 0, "Rows per chunk for insert (default: config or 1000)")
	f.CleanColumns = flag.Bool("clean-columns", false, "Sanitize column names before create/insert")
	f.Verify = flag.Bool("verify", false, "Read table back after insert and compare rows")
	f.Verbose = flag.Bool("verbose", false, "Debug logging")

	// Misc
	f.Version = flag.Bool("version", false, "Show version information")
	f.Help = flag.Bool("help", false, "Show detailed help with examples")

	flag.Parse()

	return f
}

// commandWasSpecified checks if any database command was specified
func (f *Flags) commandWasSpecified() bool {
	return *f.List ||
		*f.Exists != "" ||
		*f.Create != "" ||
		*f.Insert != "" ||
		*f.Load != "" ||
		*f.Fetch != "" ||
		*f.Query != "" ||
		*f.Drop != ""
}
