// Package merge combines two transaction sets into one newest-first set.
package merge

import (
	"sort"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

// Merge concatenates a and b and orders the result by date, newest first.
// Records sharing a date keep their input order, a before b. Duplicates are
// kept and neither input is modified.
func Merge(a, b []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
