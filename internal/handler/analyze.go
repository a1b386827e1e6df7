package handler

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/Dr-Neiron/analyze-expenses/internal/present"
	"github.com/Dr-Neiron/analyze-expenses/internal/query"
	"github.com/Dr-Neiron/analyze-expenses/internal/report"
)

var periodKey = regexp.MustCompile(`^\d{4}\.(0[1-9]|1[0-2])$`)

// AnalyzeOptions selects what the analyze command prints and writes.
type AnalyzeOptions struct {
	Input         string
	Output        string
	MaxCategories int
	TaxonomyFile  string

	// Unknown lists unclassified descriptions.
	Unknown bool
	// Select is a "YYYY.MM:Category" drill-down.
	Select     string
	PlotSeries bool
}

// AnalyzeResult is what an analyze run produced.
type AnalyzeResult struct {
	Transactions []models.Transaction
	Report       *report.Report
	RunRates     []report.CategoryRate
	RunID        string
}

// ParseSelection splits a "YYYY.MM:Category" drill-down argument.
func ParseSelection(s string) (string, models.Category, error) {
	period, category, ok := strings.Cut(s, ":")
	if !ok || category == "" {
		return "", "", fmt.Errorf("invalid selection %q: want YYYY.MM:Category", s)
	}
	if !periodKey.MatchString(period) {
		return "", "", fmt.Errorf("invalid period %q in selection: want YYYY.MM", period)
	}
	return period, models.Category(category), nil
}

// Analyze classifies a statement, prints the monthly summary and run-rates,
// and optionally writes the classified file and publishes the report.
func (d *Dependencies) Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	var (
		period   string
		category models.Category
	)
	if opts.Select != "" {
		var err error
		if period, category, err = ParseSelection(opts.Select); err != nil {
			return nil, err
		}
	}

	taxonomy, taxonomyName, err := d.loadTaxonomy(ctx, opts.TaxonomyFile)
	if err != nil {
		return nil, err
	}

	store := d.store()
	raw, err := store.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}

	transactions := classify.Classify(raw, taxonomy)
	slog.Info("classified transactions", "input", opts.Input, "transactions_count", len(transactions),
		"unclassified_count", classify.Counts(transactions)[models.CategoryOther])

	summary := report.Summarize(transactions, opts.MaxCategories)
	rates := report.RunRates(transactions)

	w := d.out()
	if err := present.WriteReport(w, summary); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintln(w, present.Separator)
	if err := present.WriteRunRates(w, rates); err != nil {
		return nil, fmt.Errorf("failed to write run-rates: %w", err)
	}

	if opts.PlotSeries {
		fmt.Fprintln(w, present.Separator)
		if err := present.WriteSeries(w, summary.Series()); err != nil {
			return nil, fmt.Errorf("failed to write series: %w", err)
		}
	}

	if opts.Unknown {
		fmt.Fprintln(w, present.Separator)
		if err := present.WriteUnclassified(w, query.ListUnclassified(transactions)); err != nil {
			return nil, fmt.Errorf("failed to write unclassified: %w", err)
		}
	}

	if opts.Select != "" {
		fmt.Fprintln(w, present.Separator)
		fmt.Fprintf(w, "%s %s\n", period, category)
		if err := present.WriteTransactions(w, query.SelectMonthCategory(transactions, period, category)); err != nil {
			return nil, fmt.Errorf("failed to write selection: %w", err)
		}
	}

	if opts.Output != "" {
		if err := store.SaveClassified(ctx, opts.Output, transactions); err != nil {
			return nil, fmt.Errorf("failed to save classified statement: %w", err)
		}
		slog.Info("saved classified statement", "output", opts.Output)
	}

	result := &AnalyzeResult{Transactions: transactions, Report: summary, RunRates: rates}

	if d.Queue != nil && d.ReportQueue != "" {
		msg := newReportMessage(opts.Input, taxonomyName, summary, rates)
		if err := d.Queue.EnqueueMessage(ctx, d.ReportQueue, msg); err != nil {
			return nil, fmt.Errorf("failed to publish report: %w", err)
		}
		result.RunID = msg.RunID
		slog.Info("published report", "queue", d.ReportQueue, "run_id", msg.RunID)
	}

	return result, nil
}
