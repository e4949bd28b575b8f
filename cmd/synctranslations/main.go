// Command synctranslations runs one reconciliation of the translation store
// against the declared schema and prints the outcome.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"polyglot/internal/config"
	"polyglot/internal/db"
	"polyglot/internal/repository"
	"polyglot/internal/service"
	"polyglot/pkg/logger"
	"polyglot/pkg/snowflake"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "path to the SQLite database")
	schemaPath := flag.String("schema", cfg.SchemaPath, "path to the translatables schema")
	dryRun := flag.Bool("dry-run", false, "report obsolete records without mutating the store")
	policy := flag.String("policy", "", "override the schema sync policy (delete or flag)")
	flag.Parse()

	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(*dbPath, *schemaPath, *dryRun, *policy); err != nil {
		fmt.Fprintln(os.Stderr, "synctranslations:", err)
		os.Exit(1)
	}
}

func run(dbPath, schemaPath string, dryRun bool, policy string) error {
	if err := snowflake.Init(0); err != nil {
		return err
	}

	schema, err := config.LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	conn, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	syncService := service.NewSyncService(
		schema,
		repository.NewTranslationRepository(conn),
		repository.NewSyncRunRepository(conn),
	)

	report, err := syncService.Sync(context.Background(), service.SyncOptions{
		DryRun: dryRun,
		Policy: policy,
	})
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(report *service.SyncReport) {
	verb := "removed"
	if report.Policy == config.PolicyFlag {
		verb = "flagged"
	}
	if report.DryRun {
		verb = "would be " + verb
	}

	fmt.Printf("run %s: scanned %d translation(s)\n", report.RunID, report.Scanned)
	if len(report.ObsoletePairs) == 0 {
		fmt.Println("store matches the declared schema, nothing to do")
		return
	}
	for _, pair := range report.ObsoletePairs {
		fmt.Printf("  %s.%s: %d record(s) %s\n", pair.ContentType, pair.Field, pair.Records, verb)
	}
	fmt.Printf("%d obsolete record(s) %s in %s\n",
		report.Obsolete, verb, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
}
