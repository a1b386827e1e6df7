// Package report aggregates classified transactions into a period by category
// matrix and per-category monthly run-rates.
package report

import (
	"sort"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxCategories is the number of category columns kept when the
	// caller does not ask for a specific amount.
	DefaultMaxCategories = 3

	// AverageLabel is the period label of the synthetic average row.
	AverageLabel = "Average"
)

// Row is one line of the matrix. Values are aligned with Report.Columns.
type Row struct {
	Period string            `json:"period"`
	Values []decimal.Decimal `json:"values"`
	Total  decimal.Decimal   `json:"total"`
}

// Report is the period by category matrix. Rows holds one row per period in
// ascending order followed by the average row.
type Report struct {
	Periods []string          `json:"periods"`
	Columns []models.Category `json:"columns"`
	Rows    []Row             `json:"rows"`
}

// IsEmpty reports whether the report has no rows.
func (r *Report) IsEmpty() bool {
	return len(r.Rows) == 0
}

// Average returns the synthetic average row.
func (r *Report) Average() (Row, bool) {
	if r.IsEmpty() {
		return Row{}, false
	}
	last := r.Rows[len(r.Rows)-1]
	return last, last.Period == AverageLabel
}

// Value returns the matrix cell for a period (or AverageLabel) and a selected
// category.
func (r *Report) Value(period string, category models.Category) (decimal.Decimal, bool) {
	col := -1
	for i, c := range r.Columns {
		if c == category {
			col = i
			break
		}
	}
	if col < 0 {
		return decimal.Zero, false
	}
	for _, row := range r.Rows {
		if row.Period == period {
			return row.Values[col], true
		}
	}
	return decimal.Zero, false
}

// Summarize groups records by period and category, appends the average row,
// keeps the maxCategories columns with the largest magnitude in the most
// recent period and adds a row total over the kept columns. A maxCategories
// below 1 selects DefaultMaxCategories.
func Summarize(records []models.Transaction, maxCategories int) *Report {
	if maxCategories < 1 {
		maxCategories = DefaultMaxCategories
	}
	if len(records) == 0 {
		return &Report{}
	}

	sums := make(map[string]map[models.Category]decimal.Decimal)
	seen := make(map[models.Category]bool)
	for _, r := range records {
		period := r.Period()
		if sums[period] == nil {
			sums[period] = make(map[models.Category]decimal.Decimal)
		}
		sums[period][r.Category] = sums[period][r.Category].Add(r.Amount)
		seen[r.Category] = true
	}

	periods := make([]string, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	categories := make([]models.Category, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}

	// Every real period row holds at least one recorded amount, so the most
	// recent period is the last one.
	recent := sums[periods[len(periods)-1]]
	sort.Slice(categories, func(i, j int) bool {
		a, b := recent[categories[i]].Abs(), recent[categories[j]].Abs()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})
	if len(categories) > maxCategories {
		categories = categories[:maxCategories]
	}

	report := &Report{
		Periods: periods,
		Columns: categories,
		Rows:    make([]Row, 0, len(periods)+1),
	}

	n := decimal.NewFromInt(int64(len(periods)))
	colSums := make([]decimal.Decimal, len(categories))
	for _, p := range periods {
		row := Row{Period: p, Values: make([]decimal.Decimal, len(categories))}
		for i, c := range categories {
			v := sums[p][c]
			row.Values[i] = v
			row.Total = row.Total.Add(v)
			colSums[i] = colSums[i].Add(v)
		}
		report.Rows = append(report.Rows, row)
	}

	avg := Row{Period: AverageLabel, Values: make([]decimal.Decimal, len(categories))}
	for i := range categories {
		avg.Values[i] = colSums[i].Div(n)
		avg.Total = avg.Total.Add(avg.Values[i])
	}
	report.Rows = append(report.Rows, avg)

	return report
}
