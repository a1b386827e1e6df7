package csvparse

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

// FormatStatement writes transactions as a headerless statement, the same
// shape the bank exports.
func FormatStatement(transactions []models.Transaction) (string, error) {
	return format(transactions, false)
}

// FormatClassified writes a header row followed by the statement columns and
// the assigned category.
func FormatClassified(transactions []models.Transaction) (string, error) {
	return format(transactions, true)
}

func format(transactions []models.Transaction, classified bool) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if classified {
		header := append(append([]string{}, statementColumns...), ColumnCategory)
		if err := w.Write(header); err != nil {
			return "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, t := range transactions {
		row := []string{
			FormatDate(t.Date),
			FormatAmount(t.Amount),
			t.Reference,
			t.Code,
			t.Operation,
			t.Description,
			t.Balance,
		}
		if classified {
			row = append(row, string(t.Category))
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}
