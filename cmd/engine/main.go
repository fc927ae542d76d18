package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/ruralpay/txengine/internal/audit"
	"github.com/ruralpay/txengine/internal/config"
	"github.com/ruralpay/txengine/internal/csvio"
	"github.com/ruralpay/txengine/internal/services"
)

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.BindEnv("dispute.deposits_only", "DISPUTE_DEPOSITS_ONLY")
	viper.BindEnv("audit.enabled", "AUDIT_ENABLED")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}

	records, err := csvio.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	cfg := config.GetConfig()
	auditor := audit.NewAuditLogger(cfg.AuditEnabled)
	ledger := services.NewLedgerService(cfg.DisputeDepositsOnly)
	dispatcher := services.NewDispatcherService(ledger, auditor)

	stats := dispatcher.Process(records)

	var writer csvio.Writer
	if err := writer.Write(os.Stdout, ledger.Snapshot()); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	// Stats go to stderr so stdout stays a clean CSV snapshot.
	log.Printf("Processed %d records: %d applied, %d skipped, %d rejected",
		stats.Applied+stats.Skipped+stats.Rejected, stats.Applied, stats.Skipped, stats.Rejected)
}
