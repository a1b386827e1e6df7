package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
	"github.com/Dr-Neiron/analyze-expenses/internal/config"
	"github.com/Dr-Neiron/analyze-expenses/internal/handler"
	"github.com/Dr-Neiron/analyze-expenses/internal/services"
	"github.com/shopspring/decimal"
)

const commandTimeout = 5 * time.Minute

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	config.LoadEnvFile()
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	mode := os.Args[1]
	var run func(*config.Config, []string) error
	switch mode {
	case "analyze":
		run = runAnalyze
	case "merge":
		run = runMerge
	case "experiment":
		run = runExperiment
	case "taxonomy":
		run = runTaxonomy
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", mode)
		printUsage()
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if mode != "taxonomy" {
		fmt.Printf("Processing file in mode %q\n", mode)
	}
	if err := run(cfg, os.Args[2:]); err != nil {
		slog.Error("command failed", "command", mode, "error", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Categorize and summarize bank statement expenses")
	fmt.Println("\nUsage:")
	fmt.Println("  analyze-expenses <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze     Classify a statement and print the monthly summary")
	fmt.Println("  merge       Merge two statements into one, newest first")
	fmt.Println("  experiment  Print a statement as parsed")
	fmt.Println("  taxonomy    Print the category rules, optionally pushing them to the table")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nLocations are local paths or blob://<container>/<blob name>.")
	fmt.Println("Run 'analyze-expenses <command> -h' for more information on a command.")
}

// multiString collects a repeated flag.
type multiString []string

func (m *multiString) String() string {
	return strings.Join(*m, ",")
}

func (m *multiString) Set(value string) error {
	*m = append(*m, value)
	return nil
}

// newDependencies connects the Azure services that cfg enables.
func newDependencies(ctx context.Context, cfg *config.Config) (*handler.Dependencies, error) {
	deps := &handler.Dependencies{ReportQueue: cfg.ReportQueue}

	if cfg.BlobServiceURL != "" {
		blob, err := services.NewBlobService(cfg.BlobServiceURL)
		if err != nil {
			return nil, fmt.Errorf("failed to init blob service: %w", err)
		}
		deps.Blob = blob
	}

	if cfg.QueueServiceURL != "" {
		queue, err := services.NewQueueService(cfg.QueueServiceURL)
		if err != nil {
			return nil, fmt.Errorf("failed to init queue service: %w", err)
		}
		deps.Queue = queue
	}

	switch {
	case cfg.TaxonomyTable != "":
		table, err := services.NewTaxonomyTableService(ctx, cfg.TableServiceURL, cfg.TaxonomyTable)
		if err != nil {
			return nil, fmt.Errorf("failed to init taxonomy table: %w", err)
		}
		deps.Taxonomy = table
		deps.TaxonomyStore = table
	case cfg.TaxonomyFile != "":
		deps.Taxonomy = classify.FileSource{Path: cfg.TaxonomyFile}
	}

	return deps, nil
}

func runAnalyze(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	var opts handler.AnalyzeOptions
	fs.StringVar(&opts.Input, "i", "", "Input statement location")
	fs.StringVar(&opts.Output, "o", "", "Write the classified statement to this location")
	fs.IntVar(&opts.MaxCategories, "max-categories", cfg.MaxCategories, "Number of category columns in the summary")
	fs.StringVar(&opts.TaxonomyFile, "taxonomy", "", "YAML taxonomy file, overrides TAXONOMY_FILE and TAXONOMY_TABLE")
	fs.BoolVar(&opts.Unknown, "unknown", false, "List unclassified descriptions")
	fs.StringVar(&opts.Select, "select", "", "Print the transactions of one month and category, as YYYY.MM:Category")
	fs.BoolVar(&opts.PlotSeries, "plot-series", false, "Print the summary as plottable series")
	fs.Parse(args)

	if opts.Input == "" {
		return fmt.Errorf("-i is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	_, err = deps.Analyze(ctx, opts)
	return err
}

func runMerge(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	var inputs multiString
	fs.Var(&inputs, "i", "Input statement location (specify twice)")
	output := fs.String("o", "", "Output statement location")
	fs.Parse(args)

	if len(inputs) != 2 || *output == "" {
		return fmt.Errorf("usage: analyze-expenses merge -i <first> -i <second> -o <output>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	_, err = deps.Merge(ctx, inputs, *output)
	return err
}

func runExperiment(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	input := fs.String("i", "", "Input statement location")
	fs.Parse(args)

	if *input == "" {
		return fmt.Errorf("-i is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	return deps.Experiment(ctx, *input)
}

func runTaxonomy(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taxonomy", flag.ExitOnError)
	file := fs.String("taxonomy", "", "YAML taxonomy file to print or push")
	push := fs.Bool("push", false, "Replace the rules in TAXONOMY_TABLE")
	fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	return deps.ShowTaxonomy(ctx, *file, *push)
}
