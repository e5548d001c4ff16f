package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/agent"
	"github.com/alexgaoth/boba-bi/pkg/config"
	"github.com/alexgaoth/boba-bi/pkg/datagen"
	"github.com/alexgaoth/boba-bi/pkg/pipeline"
	"github.com/alexgaoth/boba-bi/pkg/report"
)

// The demo runs one full scheduling pass over a synthetic dataset and writes
// the roster to stdout and a CSV file, with no server or database involved.
func main() {
	fmt.Println("Boba BI - Initializing System")

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	transactions := datagen.GenerateTransactions(8, time.Now(), r)
	employees := datagen.GenerateEmployees(10, r)
	fmt.Printf("Synthetic data generated: %d transactions, %d employees\n",
		len(transactions), len(employees))

	source := datagen.NewMemorySource(transactions, employees)
	orchestrator := pipeline.New(config.Default(), pipeline.Deps{
		Transactions: source,
		Employees:    source,
		Forecast:     agent.StaticProvider{},
		Logger:       slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})

	query := "How should I schedule my employees for next week to handle traffic efficiently?"
	result, err := orchestrator.Run(context.Background(), query)
	if err != nil {
		log.Fatalf("scheduling run failed: %v", err)
	}

	report.WriteTable(os.Stdout, result)
	fmt.Printf("Fairness score: %.1f%%\n", result.FairnessScore)

	f, err := os.Create("boba_bi_schedule.csv")
	if err != nil {
		log.Fatalf("could not create report file: %v", err)
	}
	defer f.Close()
	if err := report.WriteCSV(f, result); err != nil {
		log.Fatalf("could not write report: %v", err)
	}
	fmt.Println("Report saved to: boba_bi_schedule.csv")
}
