package report

import (
	"sort"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/shopspring/decimal"
)

var (
	daysPerYear   = decimal.NewFromInt(365)
	monthsPerYear = decimal.NewFromInt(12)
)

// CategoryRate is the projected monthly amount of a category.
type CategoryRate struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Monthly  decimal.Decimal `json:"monthly"`
}

// SpanDays returns the number of days between the earliest and the latest
// record. Record order does not matter.
func SpanDays(records []models.Transaction) int {
	if len(records) == 0 {
		return 0
	}
	first, last := records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(first) {
			first = r.Date
		}
		if r.Date.After(last) {
			last = r.Date
		}
	}
	return last.DaysSince(first)
}

// RunRates projects each category total over the record span to a monthly
// amount (total / span days * 365 / 12), sorted ascending. It returns nil
// when the records cover less than one day.
func RunRates(records []models.Transaction) []CategoryRate {
	days := SpanDays(records)
	if days <= 0 {
		return nil
	}

	totals := make(map[models.Category]decimal.Decimal)
	for _, r := range records {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}

	divisor := decimal.NewFromInt(int64(days)).Mul(monthsPerYear)
	rates := make([]CategoryRate, 0, len(totals))
	for c, total := range totals {
		rates = append(rates, CategoryRate{
			Category: c,
			Total:    total,
			Monthly:  total.Mul(daysPerYear).Div(divisor),
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		if !rates[i].Monthly.Equal(rates[j].Monthly) {
			return rates[i].Monthly.LessThan(rates[j].Monthly)
		}
		return rates[i].Category < rates[j].Category
	})
	return rates
}
