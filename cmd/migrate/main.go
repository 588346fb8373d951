package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bazaar/config"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back the latest migration, or down to -to
// - status:  print applied and pending migrations
// - version: print the current schema version

func main() {
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downTo := downCmd.Int64("to", 0, "Roll back down to this version instead of one step")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1], os.Args[2:], downCmd, downTo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, subcommand string, args []string, downCmd *flag.FlagSet, downTo *int64) error {
	switch subcommand {
	case "up", "down", "status", "version":
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", subcommand)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect postgres")
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	runner, err := migrations.NewRunner(sqlDB, logger)
	if err != nil {
		return err
	}

	switch subcommand {
	case "up":
		return runner.Up(ctx)
	case "down":
		if err := downCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runner.Down(ctx, *downTo)
	case "status":
		return runner.Status(ctx)
	default:
		version, err := runner.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("schema version: %d\n", version)

		return nil
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up        Apply all pending migrations")
	fmt.Println("  down      Roll back the latest migration (-to <version> to roll back further)")
	fmt.Println("  status    Show applied and pending migrations")
	fmt.Println("  version   Print the current schema version")
}
