package report

import (
	"github.com/shopspring/decimal"
)

// TotalSeries names the series built from the Total column.
const TotalSeries = "Total"

// Point is a single period value of a series.
type Point struct {
	Period string          `json:"period"`
	Value  decimal.Decimal `json:"value"`
}

// Series is one plottable line of the report.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Series returns one series per selected column plus the Total column over
// the real periods. The average row is not part of any series.
func (r *Report) Series() []Series {
	if r.IsEmpty() {
		return nil
	}

	out := make([]Series, 0, len(r.Columns)+1)
	for i, c := range r.Columns {
		s := Series{Name: string(c), Points: make([]Point, 0, len(r.Periods))}
		for _, row := range r.Rows[:len(r.Periods)] {
			s.Points = append(s.Points, Point{Period: row.Period, Value: row.Values[i]})
		}
		out = append(out, s)
	}

	total := Series{Name: TotalSeries, Points: make([]Point, 0, len(r.Periods))}
	for _, row := range r.Rows[:len(r.Periods)] {
		total.Points = append(total.Points, Point{Period: row.Period, Value: row.Total})
	}
	return append(out, total)
}
