package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"
)

// ShowTaxonomy prints the effective rules in match order. With push set the
// rules are also written to the taxonomy store.
func (d *Dependencies) ShowTaxonomy(ctx context.Context, file string, push bool) error {
	if push && d.TaxonomyStore == nil {
		return fmt.Errorf("cannot push taxonomy: no taxonomy table is configured")
	}

	taxonomy, name, err := d.loadTaxonomy(ctx, file)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(d.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tCategory\tTriggers\n")
	for i, rule := range taxonomy {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, rule.Name, strings.Join(rule.Triggers, ", "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write taxonomy: %w", err)
	}

	if !push {
		return nil
	}
	if err := d.TaxonomyStore.SaveTaxonomy(ctx, taxonomy); err != nil {
		return fmt.Errorf("failed to push taxonomy to %s: %w", d.TaxonomyStore.Name(), err)
	}
	slog.Info("pushed taxonomy", "from", name, "to", d.TaxonomyStore.Name(), "categories_count", len(taxonomy))
	return nil
}
