package report

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(date string, amount string, category models.Category) models.Transaction {
	d, err := civil.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
}

func TestSummarize_Empty(t *testing.T) {
	r := Summarize(nil, 3)
	assert.True(t, r.IsEmpty())
	assert.Empty(t, r.Periods)
	assert.Empty(t, r.Columns)
	assert.Nil(t, r.Series())

	_, ok := r.Average()
	assert.False(t, ok)
}

func TestSummarize_Matrix(t *testing.T) {
	records := []models.Transaction{
		tx("2023-01-05", "-60", "Food"),
		tx("2023-01-20", "-40", "Food"),
		tx("2023-02-03", "-50", "Food"),
		tx("2023-02-10", "-1000", "Rent"),
		tx("2023-01-10", "-1000", "Rent"),
	}

	r := Summarize(records, 3)

	assert.Equal(t, []string{"2023.01", "2023.02"}, r.Periods)
	assert.Equal(t, []models.Category{"Rent", "Food"}, r.Columns)
	require.Len(t, r.Rows, 3)

	jan, ok := r.Value("2023.01", "Food")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(-100).Equal(jan))

	feb, ok := r.Value("2023.02", "Food")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(-50).Equal(feb))

	avg, ok := r.Average()
	require.True(t, ok)
	assert.Equal(t, AverageLabel, avg.Period)
	assert.True(t, decimal.NewFromInt(-1000).Equal(avg.Values[0]))
	assert.True(t, decimal.NewFromInt(-75).Equal(avg.Values[1]))
	assert.True(t, decimal.NewFromInt(-1075).Equal(avg.Total))

	assert.True(t, decimal.NewFromInt(-1100).Equal(r.Rows[0].Total))
	assert.True(t, decimal.NewFromInt(-1050).Equal(r.Rows[1].Total))
}

func TestSummarize_Conservation(t *testing.T) {
	records := []models.Transaction{
		tx("2023-03-01", "-12.34", "Food"),
		tx("2023-03-15", "-7.66", "Food"),
		tx("2023-03-20", "2500.00", "Salary"),
		tx("2023-04-02", "-3.10", "Food"),
		tx("2023-04-30", "-0.90", "Transport"),
	}

	r := Summarize(records, 10)

	for _, period := range r.Periods {
		for _, category := range r.Columns {
			want := decimal.Zero
			for _, rec := range records {
				if rec.Period() == period && rec.Category == category {
					want = want.Add(rec.Amount)
				}
			}
			got, ok := r.Value(period, category)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "%s/%s: want %s got %s", period, category, want, got)
		}
	}
}

func TestSummarize_AverageOverRealPeriods(t *testing.T) {
	records := []models.Transaction{
		tx("2023-01-01", "-10", "Food"),
		tx("2023-02-01", "-20", "Food"),
		tx("2023-03-01", "-30", "Food"),
		tx("2023-03-02", "-6", "Fun"),
	}

	r := Summarize(records, 3)
	avg, ok := r.Average()
	require.True(t, ok)

	food, _ := r.Value(AverageLabel, "Food")
	fun, _ := r.Value(AverageLabel, "Fun")
	assert.True(t, decimal.NewFromInt(-20).Equal(food))
	// Missing cells count as zero.
	assert.True(t, decimal.NewFromInt(-2).Equal(fun))
	assert.True(t, decimal.NewFromInt(-22).Equal(avg.Total))
}

func TestSummarize_TopN(t *testing.T) {
	records := []models.Transaction{
		tx("2023-05-01", "-5", "A"),
		tx("2023-05-01", "-50", "B"),
		tx("2023-05-01", "20", "C"),
		tx("2023-05-01", "-1", "D"),
		tx("2023-05-01", "-20", "E"),
	}

	tests := []struct {
		name string
		max  int
		want []models.Category
	}{
		{name: "one", max: 1, want: []models.Category{"B"}},
		{name: "ties by name", max: 3, want: []models.Category{"B", "C", "E"}},
		{name: "more than available", max: 10, want: []models.Category{"B", "C", "E", "A", "D"}},
		{name: "non positive falls back to default", max: 0, want: []models.Category{"B", "C", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Summarize(records, tt.max)
			assert.Equal(t, tt.want, r.Columns)
			for _, row := range r.Rows {
				assert.Len(t, row.Values, len(tt.want))
			}
		})
	}
}

func TestSummarize_TotalUsesSelectedColumnsOnly(t *testing.T) {
	records := []models.Transaction{
		tx("2023-05-01", "-100", "A"),
		tx("2023-05-01", "-50", "B"),
		tx("2023-05-01", "-1", "C"),
	}

	r := Summarize(records, 2)
	assert.True(t, decimal.NewFromInt(-150).Equal(r.Rows[0].Total))
}

func TestSummarize_DoesNotMutate(t *testing.T) {
	records := []models.Transaction{
		tx("2023-02-01", "-1", "B"),
		tx("2023-01-01", "-2", "A"),
	}
	before := append([]models.Transaction(nil), records...)

	Summarize(records, 3)
	assert.Equal(t, before, records)
}

func TestSeries(t *testing.T) {
	records := []models.Transaction{
		tx("2023-01-05", "-100", "Food"),
		tx("2023-02-03", "-50", "Food"),
		tx("2023-02-04", "-10", "Fun"),
	}

	series := Summarize(records, 3).Series()
	require.Len(t, series, 3)

	assert.Equal(t, "Food", series[0].Name)
	require.Len(t, series[0].Points, 2)
	assert.Equal(t, "2023.01", series[0].Points[0].Period)
	assert.True(t, decimal.NewFromInt(-100).Equal(series[0].Points[0].Value))

	assert.Equal(t, TotalSeries, series[2].Name)
	assert.True(t, decimal.NewFromInt(-60).Equal(series[2].Points[1].Value))
}
