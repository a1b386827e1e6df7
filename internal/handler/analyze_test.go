package handler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
	"github.com/Dr-Neiron/analyze-expenses/internal/present"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementCSV = `20/02/2023,-50.00,,,EFTPOS,COLES EXPRESS 123,900.00
15/01/2023,-60.00,,,EFTPOS,COLES SOUTHBANK,950.00
02/01/2023,-40.00,,,EFTPOS,RANDOM SHOP,1010.00
`

func testTaxonomy() *MockTaxonomyStore {
	return &MockTaxonomyStore{
		LoadTaxonomyFunc: func(ctx context.Context) (classify.Taxonomy, error) {
			return classify.Taxonomy{{Name: "Groceries", Triggers: []string{"COLES"}}}, nil
		},
	}
}

func writeStatement(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(statementCSV), 0o644))
	return path
}

func TestAnalyze_Success(t *testing.T) {
	input := writeStatement(t)
	output := filepath.Join(t.TempDir(), "classified.csv")

	var published any
	mockQueue := &MockQueueClient{
		EnqueueMessageFunc: func(ctx context.Context, queueName string, message any) error {
			assert.Equal(t, "expense-reports", queueName)
			published = message
			return nil
		},
	}

	var out bytes.Buffer
	deps := &Dependencies{
		Queue:       mockQueue,
		ReportQueue: "expense-reports",
		Taxonomy:    testTaxonomy(),
		Out:         &out,
	}

	result, err := deps.Analyze(context.Background(), AnalyzeOptions{
		Input:   input,
		Output:  output,
		Unknown: true,
		Select:  "2023.01:Groceries",
	})
	require.NoError(t, err)

	require.Len(t, result.Transactions, 3)
	assert.Equal(t, models.Category("Groceries"), result.Transactions[0].Category)
	assert.Equal(t, models.CategoryOther, result.Transactions[2].Category)

	assert.Equal(t, []string{"2023.01", "2023.02"}, result.Report.Periods)
	require.Len(t, result.RunRates, 2)

	text := out.String()
	assert.Contains(t, text, present.Separator)
	assert.Contains(t, text, "RANDOM SHOP")
	assert.Contains(t, text, "COLES SOUTHBANK")

	classified, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(classified), "20/02/2023,-50.00,,,EFTPOS,COLES EXPRESS 123,900.00,Groceries")

	msg, ok := published.(ReportMessage)
	require.True(t, ok)
	assert.Equal(t, result.RunID, msg.RunID)
	_, err = uuid.Parse(msg.RunID)
	assert.NoError(t, err)
	assert.Equal(t, input, msg.Source)
	assert.Equal(t, "mock", msg.Taxonomy)
	assert.Equal(t, result.Report.Rows, msg.Rows)
}

func TestAnalyze_FromBlob(t *testing.T) {
	color.NoColor = true
	mockBlob := &MockBlobClient{
		DownloadTextFunc: func(ctx context.Context, containerName, blobName string) (string, error) {
			assert.Equal(t, "statements", containerName)
			assert.Equal(t, "anz.csv", blobName)
			return statementCSV, nil
		},
	}
	deps := &Dependencies{Blob: mockBlob, Out: &bytes.Buffer{}}

	result, err := deps.Analyze(context.Background(), AnalyzeOptions{Input: "blob://statements/anz.csv"})
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 3)
	assert.Empty(t, result.RunID, "no queue configured")
}

func TestAnalyze_DefaultTaxonomy(t *testing.T) {
	deps := &Dependencies{Out: &bytes.Buffer{}}

	result, err := deps.Analyze(context.Background(), AnalyzeOptions{Input: writeStatement(t)})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryFood, result.Transactions[0].Category)

	food, ok := result.Report.Value("2023.01", models.CategoryFood)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(-60).Equal(food))
}

func TestAnalyze_TaxonomyFileOverridesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Shops\n    triggers: [SHOP]\n"), 0o644))

	deps := &Dependencies{Taxonomy: testTaxonomy(), Out: &bytes.Buffer{}}
	result, err := deps.Analyze(context.Background(), AnalyzeOptions{Input: writeStatement(t), TaxonomyFile: path})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, result.Transactions[0].Category)
	assert.Equal(t, models.Category("Shops"), result.Transactions[2].Category)
}

func TestAnalyze_Errors(t *testing.T) {
	ctx := context.Background()
	input := writeStatement(t)

	t.Run("bad selection", func(t *testing.T) {
		deps := &Dependencies{Out: &bytes.Buffer{}}
		_, err := deps.Analyze(ctx, AnalyzeOptions{Input: input, Select: "January:Food"})
		assert.Error(t, err)
	})

	t.Run("blob without service", func(t *testing.T) {
		deps := &Dependencies{Out: &bytes.Buffer{}}
		_, err := deps.Analyze(ctx, AnalyzeOptions{Input: "blob://statements/anz.csv"})
		assert.Error(t, err)
	})

	t.Run("taxonomy failure", func(t *testing.T) {
		deps := &Dependencies{
			Taxonomy: &MockTaxonomyStore{
				LoadTaxonomyFunc: func(ctx context.Context) (classify.Taxonomy, error) {
					return nil, errors.New("table unavailable")
				},
			},
			Out: &bytes.Buffer{},
		}
		_, err := deps.Analyze(ctx, AnalyzeOptions{Input: input})
		assert.ErrorContains(t, err, "table unavailable")
	})

	t.Run("publish failure", func(t *testing.T) {
		deps := &Dependencies{
			Queue: &MockQueueClient{
				EnqueueMessageFunc: func(ctx context.Context, queueName string, message any) error {
					return errors.New("queue down")
				},
			},
			ReportQueue: "expense-reports",
			Out:         &bytes.Buffer{},
		}
		_, err := deps.Analyze(ctx, AnalyzeOptions{Input: input})
		assert.ErrorContains(t, err, "queue down")
	})
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in           string
		wantPeriod   string
		wantCategory models.Category
		wantErr      bool
	}{
		{in: "2023.01:Food and chemistry", wantPeriod: "2023.01", wantCategory: "Food and chemistry"},
		{in: "2023.12:A:B", wantPeriod: "2023.12", wantCategory: "A:B"},
		{in: "2023.13:Food", wantErr: true},
		{in: "2023-01:Food", wantErr: true},
		{in: "2023.01:", wantErr: true},
		{in: "2023.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			period, category, err := ParseSelection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, period)
			assert.Equal(t, tt.wantCategory, category)
		})
	}
}
