package models

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction represents a single bank statement row.
type Transaction struct {
	Date        civil.Date      `json:"date"`
	Amount      decimal.Decimal `json:"amount"` // negative for debits
	Description string          `json:"description"`
	Category    Category        `json:"category,omitempty"`

	// Raw statement columns carried through untouched.
	Reference string `json:"reference,omitempty"`
	Code      string `json:"code,omitempty"`
	Operation string `json:"operation,omitempty"`
	Balance   string `json:"balance,omitempty"`
}

// Period returns the year-month grouping key of the transaction date.
func (t Transaction) Period() string {
	return PeriodKey(t.Date)
}

// PeriodKey truncates a date to its "YYYY.MM" grouping key.
func PeriodKey(d civil.Date) string {
	return fmt.Sprintf("%04d.%02d", d.Year, int(d.Month))
}
