package handler

import (
	"context"
	"fmt"

	"github.com/Dr-Neiron/analyze-expenses/internal/present"
)

// Experiment dumps a statement in file order without classifying it.
func (d *Dependencies) Experiment(ctx context.Context, input string) error {
	transactions, err := d.store().Load(ctx, input)
	if err != nil {
		return err
	}
	if err := present.WriteStatement(d.out(), transactions); err != nil {
		return fmt.Errorf("failed to write statement: %w", err)
	}
	return nil
}
