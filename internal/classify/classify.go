package classify

import (
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

// Classify returns a copy of records with Category set from the taxonomy.
// Order is preserved and no record is dropped.
func Classify(records []models.Transaction, taxonomy Taxonomy) []models.Transaction {
	out := make([]models.Transaction, len(records))
	for i, r := range records {
		r.Category = taxonomy.Match(r.Description)
		out[i] = r
	}
	return out
}

// Counts returns how many records fall into each category.
func Counts(records []models.Transaction) map[models.Category]int {
	counts := make(map[models.Category]int)
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}
