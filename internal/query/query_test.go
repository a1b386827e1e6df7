package query

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(day civil.Date, amount int64, description string, category models.Category) models.Transaction {
	return models.Transaction{
		Date:        day,
		Amount:      decimal.NewFromInt(amount),
		Description: description,
		Category:    category,
	}
}

var (
	jan3  = civil.Date{Year: 2023, Month: 1, Day: 3}
	jan20 = civil.Date{Year: 2023, Month: 1, Day: 20}
	feb1  = civil.Date{Year: 2023, Month: 2, Day: 1}
)

func TestSelectMonthCategory(t *testing.T) {
	records := []models.Transaction{
		record(jan20, -10, "COLES 1", "Food and chemistry"),
		record(jan3, -20, "UBER", "Transport"),
		record(feb1, -30, "COLES 2", "Food and chemistry"),
		record(jan3, -40, "ALDI", "Food and chemistry"),
	}

	got := SelectMonthCategory(records, "2023.01", "Food and chemistry")
	require.Len(t, got, 2)
	assert.Equal(t, records[0], got[0])
	assert.Equal(t, records[3], got[1])

	assert.Empty(t, SelectMonthCategory(records, "2023.03", "Food and chemistry"))
	assert.Empty(t, SelectMonthCategory(records, "2023.01", "Rent"))
	assert.Empty(t, SelectMonthCategory(nil, "2023.01", "Rent"))
}

func TestListUnclassified(t *testing.T) {
	records := []models.Transaction{
		record(jan3, -5, "KIOSK", models.CategoryOther),
		record(jan20, -200, "MYSTERY SHOP", models.CategoryOther),
		record(jan20, -50, "COLES", "Food and chemistry"),
		record(feb1, -5, "KIOSK", models.CategoryOther),
		record(feb1, -10, "BAKERY", models.CategoryOther),
		record(feb1, 15, "REFUND", models.CategoryOther),
	}

	got := ListUnclassified(records)
	require.Len(t, got, 4)

	assert.Equal(t, "MYSTERY SHOP", got[0].Description)
	// Equal totals sort by description.
	assert.Equal(t, "BAKERY", got[1].Description)
	assert.Equal(t, "KIOSK", got[2].Description)
	assert.Equal(t, 2, got[2].Count)
	assert.True(t, decimal.NewFromInt(-10).Equal(got[2].Total))
	assert.Equal(t, "REFUND", got[3].Description)
}

func TestListUnclassified_NoneOther(t *testing.T) {
	records := []models.Transaction{record(jan3, -5, "COLES", "Food and chemistry")}
	assert.Empty(t, ListUnclassified(records))
}
