package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

var (
	analyzeVerbose     bool
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze resume files from the command line",
	Long:  `Run the extraction and analysis pipeline on one or more resume files (PDF, DOCX or TXT) and persist the results.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print extracted data and analysis summaries")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 3, "Number of files processed in parallel")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	p := pipeline.New(client, database)
	printer := observability.NewPrinter(os.Stdout)

	// Requests are independent; the printer is the only shared resource.
	var printMu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeConcurrency)

	for _, path := range args {
		g.Go(func() error {
			result, err := analyzeFile(gCtx, p, path)
			if err != nil {
				// Recorded failures keep their persisted record; only
				// hard failures abort the batch.
				var insufficient *pipeline.InsufficientTextError
				var extraction *pipeline.ExtractionError
				if errors.As(err, &insufficient) || errors.As(err, &extraction) {
					log.Printf("analyze: %s: %v", path, err)
					return nil
				}
				return fmt.Errorf("%s: %w", path, err)
			}

			printMu.Lock()
			defer printMu.Unlock()
			fmt.Printf("%s -> record %s (state %s)\n", path, result.Record.ID, result.State)
			if analyzeVerbose {
				printer.PrintExtractedResume(result.Record.ExtractedData())
				printer.PrintAnalysis(result.Record.LLMAnalysis)
			}
			return nil
		})
	}

	return g.Wait()
}

func analyzeFile(ctx context.Context, p *pipeline.Pipeline, path string) (*pipeline.Result, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	rawText, err := ingestion.ExtractText(path, contents)
	if err != nil {
		return nil, err
	}

	return p.ProcessUpload(ctx, path, rawText)
}
