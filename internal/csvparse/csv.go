package csvparse

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/shopspring/decimal"
)

// Statement columns in file order. Exports from the bank carry no header row;
// classified files written by analyze add a header and a Category column.
const (
	ColumnDate        = "Date"
	ColumnAmount      = "Amount"
	ColumnReference   = "Reference"
	ColumnCode        = "Code"
	ColumnOperation   = "Operation"
	ColumnDescription = "Description"
	ColumnBalance     = "Balance"
	ColumnCategory    = "Category"
)

var statementColumns = []string{
	ColumnDate, ColumnAmount, ColumnReference, ColumnCode,
	ColumnOperation, ColumnDescription, ColumnBalance,
}

// Day-first layouts. Single-digit days and months are accepted.
const (
	dateLayout = "2/1/2006"
	isoLayout  = "2006-01-02"
)

// ParseStatement parses transactions from statement CSV content.
// It returns the valid transactions and a list of error messages for invalid rows.
func ParseStatement(content string) ([]models.Transaction, []string) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Blank lines are skipped by the reader.
	records, err := reader.ReadAll()
	if err != nil {
		return nil, []string{fmt.Sprintf("Failed to read CSV: %v", err)}
	}
	if len(records) == 0 {
		return []models.Transaction{}, nil
	}

	headers := statementColumns
	first := 1
	if isHeader(records[0]) {
		headers = parseHeaders(records[0])
		records = records[1:]
		first = 2
	}

	transactions := []models.Transaction{}
	var errors []string
	for i, record := range records {
		rowNum := i + first
		if len(record) < len(statementColumns) {
			errors = append(errors, fmt.Sprintf("Row %d: Not enough fields", rowNum))
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for j, header := range headers {
			if j < len(record) {
				rowMap[header] = strings.TrimSpace(record[j])
			}
		}

		t, err := mapToTransaction(rowMap)
		if err != nil {
			errors = append(errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		transactions = append(transactions, *t)
	}

	return transactions, errors
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), ColumnDate)
}

func parseHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

func mapToTransaction(row map[string]string) (*models.Transaction, error) {
	dateStr := row[ColumnDate]
	if dateStr == "" {
		return nil, fmt.Errorf("missing Date")
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	amountStr := row[ColumnAmount]
	if amountStr == "" {
		return nil, fmt.Errorf("missing Amount")
	}
	amount, err := decimal.NewFromString(strings.TrimPrefix(amountStr, "+"))
	if err != nil {
		return nil, fmt.Errorf("invalid Amount: %s", amountStr)
	}

	return &models.Transaction{
		Date:        date,
		Amount:      amount,
		Description: row[ColumnDescription],
		Category:    models.Category(row[ColumnCategory]),
		Reference:   row[ColumnReference],
		Code:        row[ColumnCode],
		Operation:   row[ColumnOperation],
		Balance:     row[ColumnBalance],
	}, nil
}

// ParseDate reads a day-first DD/MM/YYYY date, falling back to ISO YYYY-MM-DD.
func ParseDate(s string) (civil.Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return civil.DateOf(t), nil
	}
	if t, err := time.Parse(isoLayout, s); err == nil {
		return civil.DateOf(t), nil
	}
	return civil.Date{}, fmt.Errorf("invalid Date format: %s", s)
}

// FormatDate renders a date the way statements carry it.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// FormatAmount keeps at least two decimal places.
func FormatAmount(a decimal.Decimal) string {
	if a.Exponent() >= -2 {
		return a.StringFixed(2)
	}
	return a.String()
}
