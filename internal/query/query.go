// Package query provides read-only views over classified transactions.
package query

import (
	"sort"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/shopspring/decimal"
)

// DescriptionTotal is the summed amount of all unclassified records sharing a
// description.
type DescriptionTotal struct {
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

// SelectMonthCategory returns the records of one period with one category in
// their original order.
func SelectMonthCategory(records []models.Transaction, periodKey string, category models.Category) []models.Transaction {
	var out []models.Transaction
	for _, r := range records {
		if r.Category == category && r.Period() == periodKey {
			out = append(out, r)
		}
	}
	return out
}

// ListUnclassified groups records classified as Other by description. The
// result is sorted ascending by total so the largest debits come first.
func ListUnclassified(records []models.Transaction) []DescriptionTotal {
	index := make(map[string]int)
	var out []DescriptionTotal
	for _, r := range records {
		if r.Category != models.CategoryOther {
			continue
		}
		i, ok := index[r.Description]
		if !ok {
			i = len(out)
			index[r.Description] = i
			out = append(out, DescriptionTotal{Description: r.Description})
		}
		out[i].Total = out[i].Total.Add(r.Amount)
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.LessThan(out[j].Total)
		}
		return out[i].Description < out[j].Description
	})
	return out
}
