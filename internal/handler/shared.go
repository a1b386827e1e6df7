package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
	"github.com/Dr-Neiron/analyze-expenses/internal/statement"
)

// Dependencies holds the services required by the commands. Every client is
// optional: commands only fail when a feature that needs one is used.
type Dependencies struct {
	Blob          BlobClient
	Queue         QueueClient
	ReportQueue   string
	Taxonomy      TaxonomySource
	TaxonomyStore TaxonomyStore

	// Out receives command output. Defaults to stdout.
	Out io.Writer
}

func (d *Dependencies) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

func (d *Dependencies) store() *statement.Store {
	s := &statement.Store{}
	if d.Blob != nil {
		s.Blobs = d.Blob
	}
	return s
}

// loadTaxonomy resolves the rules: an explicit file wins over the configured
// source, which wins over the built-in defaults.
func (d *Dependencies) loadTaxonomy(ctx context.Context, file string) (classify.Taxonomy, string, error) {
	var src TaxonomySource = classify.DefaultSource{}
	switch {
	case file != "":
		src = classify.FileSource{Path: file}
	case d.Taxonomy != nil:
		src = d.Taxonomy
	}

	taxonomy, err := src.LoadTaxonomy(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load taxonomy from %s: %w", src.Name(), err)
	}
	slog.Debug("using taxonomy", "source", src.Name(), "categories_count", len(taxonomy))
	return taxonomy, src.Name(), nil
}
