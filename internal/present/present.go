// Package present renders reports and transaction listings as aligned text.
package present

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Dr-Neiron/analyze-expenses/internal/csvparse"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/Dr-Neiron/analyze-expenses/internal/query"
	"github.com/Dr-Neiron/analyze-expenses/internal/report"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Separator divides the matrix from the run-rate table.
const Separator = "-----------"

// Titles are printed outside the tab writer so escape codes do not skew
// column widths.
var title = color.New(color.FgCyan, color.Bold)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func row(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
}

// WriteReport prints the period by category matrix including the average row.
func WriteReport(w io.Writer, r *report.Report) error {
	title.Fprintln(w, "Spending by month")
	if r.IsEmpty() {
		_, err := fmt.Fprintln(w, "no transactions")
		return err
	}

	tw := newTable(w)
	header := []string{"Period"}
	for _, c := range r.Columns {
		header = append(header, string(c))
	}
	row(tw, append(header, "Total")...)

	for _, line := range r.Rows {
		cells := []string{line.Period}
		for _, v := range line.Values {
			cells = append(cells, money(v))
		}
		row(tw, append(cells, money(line.Total))...)
	}
	return tw.Flush()
}

// WriteRunRates prints projected monthly amounts per category.
func WriteRunRates(w io.Writer, rates []report.CategoryRate) error {
	title.Fprintln(w, "Monthly run-rate")
	if len(rates) == 0 {
		_, err := fmt.Fprintln(w, "not enough history")
		return err
	}

	tw := newTable(w)
	row(tw, "Category", "Total", "Monthly")
	for _, r := range rates {
		row(tw, string(r.Category), money(r.Total), money(r.Monthly))
	}
	return tw.Flush()
}

// WriteSeries prints each plottable series as one row per period.
func WriteSeries(w io.Writer, series []report.Series) error {
	title.Fprintln(w, "Series")
	tw := newTable(w)
	row(tw, "Series", "Period", "Value")
	for _, s := range series {
		for _, p := range s.Points {
			row(tw, s.Name, p.Period, money(p.Value))
		}
	}
	return tw.Flush()
}

// WriteTransactions prints classified transactions in the given order.
func WriteTransactions(w io.Writer, transactions []models.Transaction) error {
	tw := newTable(w)
	row(tw, "Date", "Amount", "Description", "Category")
	for _, t := range transactions {
		row(tw, csvparse.FormatDate(t.Date), money(t.Amount), t.Description, string(t.Category))
	}
	return tw.Flush()
}

// WriteUnclassified prints the descriptions that matched no rule.
func WriteUnclassified(w io.Writer, totals []query.DescriptionTotal) error {
	title.Fprintln(w, "Unclassified")
	tw := newTable(w)
	row(tw, "Description", "Count", "Total")
	for _, d := range totals {
		row(tw, d.Description, fmt.Sprint(d.Count), money(d.Total))
	}
	return tw.Flush()
}

// WriteStatement dumps raw statement rows with their position in the file.
func WriteStatement(w io.Writer, transactions []models.Transaction) error {
	tw := newTable(w)
	row(tw, "", "Date", "Amount", "Reference", "Code", "Operation", "Description", "Balance")
	for i, t := range transactions {
		row(tw, fmt.Sprint(i), csvparse.FormatDate(t.Date), csvparse.FormatAmount(t.Amount),
			t.Reference, t.Code, t.Operation, t.Description, t.Balance)
	}
	return tw.Flush()
}
