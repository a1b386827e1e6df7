package handler

import (
	"time"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/Dr-Neiron/analyze-expenses/internal/report"
	"github.com/google/uuid"
)

// ReportMessage is published to the report queue after each analyze run.
type ReportMessage struct {
	RunID     string                `json:"run_id"`
	Source    string                `json:"source"`
	Taxonomy  string                `json:"taxonomy"`
	CreatedAt time.Time             `json:"created_at"`
	Periods   []string              `json:"periods"`
	Columns   []models.Category     `json:"columns"`
	Rows      []report.Row          `json:"rows"`
	RunRates  []report.CategoryRate `json:"run_rates"`
}

func newReportMessage(source, taxonomy string, r *report.Report, rates []report.CategoryRate) ReportMessage {
	return ReportMessage{
		RunID:     uuid.NewString(),
		Source:    source,
		Taxonomy:  taxonomy,
		CreatedAt: time.Now().UTC(),
		Periods:   r.Periods,
		Columns:   r.Columns,
		Rows:      r.Rows,
		RunRates:  rates,
	}
}
