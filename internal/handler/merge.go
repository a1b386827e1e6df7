package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dr-Neiron/analyze-expenses/internal/merge"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

// Merge combines two statements into one newest-first statement at output.
func (d *Dependencies) Merge(ctx context.Context, inputs []string, output string) ([]models.Transaction, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("merge needs exactly 2 inputs, got %d", len(inputs))
	}
	if output == "" {
		return nil, fmt.Errorf("merge needs an output location")
	}

	store := d.store()
	first, err := store.Load(ctx, inputs[0])
	if err != nil {
		return nil, err
	}
	second, err := store.Load(ctx, inputs[1])
	if err != nil {
		return nil, err
	}

	merged := merge.Merge(first, second)
	if err := store.SaveStatement(ctx, output, merged); err != nil {
		return nil, fmt.Errorf("failed to save merged statement: %w", err)
	}

	slog.Info("merged statements", "inputs", inputs, "output", output, "transactions_count", len(merged))
	return merged, nil
}
