package main

import "fmt"

const version = "1.0.0"

// PrintVersion prints version information
func PrintVersion() {
	fmt.Printf("rdshelp version %s\n", version)
	fmt.Println("Tabular files <-> relational databases")
}

// PrintHelp prints comprehensive help information
func PrintHelp() {
	fmt.Println("rdshelp - load tabular files into relational databases and read them back")
	fmt.Printf("Version: %s\n\n", version)

	fmt.Println("USAGE:")
	fmt.Println("  rdshelp [command] [options]")
	fmt.Println()

	fmt.Println("COMMANDS:")
	fmt.Println()

	fmt.Println("  Tables:")
	fmt.Println("    --list                     List all tables in database")
	fmt.Println("    --exists <table>           Check whether table exists")
	fmt.Println("    --drop <table>             Drop table (no error if missing)")
	fmt.Println()

	fmt.Println("  Writing:")
	fmt.Println("    --create <table>           Create table with schema of --from file")
	fmt.Println("    --insert <table>           Insert rows of --from file into table")
	fmt.Println("    --load <table>             Create table if needed and insert rows")
	fmt.Println()

	fmt.Println("  Reading:")
	fmt.Println("    --fetch <table>            Read whole table to --output")
	fmt.Println("    --query <sql>              Run query and write result to --output")
	fmt.Println()

	fmt.Println("  Config:")
	fmt.Println("    --create-config <type>     Write sample config.yaml (postgres, mysql, mssql, sqlite)")
	fmt.Println()

	fmt.Println("OPTIONS:")
	fmt.Println()

	fmt.Println("  Connection:")
	fmt.Println("    --config <file>            Configuration file (default: config.yaml)")
	fmt.Println("    --type <type>              Database type, overrides config")
	fmt.Println("    --dsn <dsn>                Connection string, overrides config")
	fmt.Println()

	fmt.Println("  Files:")
	fmt.Println("    --from <file>              Input: .csv .tsv .xlsx [.gz .zst], local path or s3://bucket/key")
	fmt.Println("    --output <file>            Output file (default: CSV to stdout)")
	fmt.Println("    --sheet <name>             Excel sheet name")
	fmt.Println()

	fmt.Println("  Insert:")
	fmt.Println("    --method <batch|copy>      Insert method; copy is PostgreSQL COPY (default: batch)")
	fmt.Println("    --chunk <n>                Rows per chunk (default: 1000)")
	fmt.Println("    --clean-columns            Sanitize column names: lowercase, [a-z0-9] only")
	fmt.Println("    --verify                   Read table back and compare rows")
	fmt.Println()

	fmt.Println("  Misc:")
	fmt.Println("    --verbose                  Debug logging (SQL statements)")
	fmt.Println("    --version                  Show version")
	fmt.Println("    --help                     Show this help")
	fmt.Println()

	fmt.Println("EXAMPLES:")
	fmt.Println("  rdshelp --create-config postgres")
	fmt.Println("  rdshelp --load scores --from scores.csv --clean-columns --verify")
	fmt.Println("  rdshelp --load scores --from s3://games/scores.xlsx --sheet 2024 --method copy")
	fmt.Println("  rdshelp --fetch scores --output scores.csv.zst")
	fmt.Println("  rdshelp --type sqlite --dsn games.db --query \"SELECT COUNT(*) AS n FROM scores\"")
	fmt.Println()

	fmt.Println("ENVIRONMENT:")
	fmt.Println("  " + passwordEnv + "           Database password, overrides config")
}
