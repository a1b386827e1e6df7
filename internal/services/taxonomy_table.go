package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

// TaxonomyPartition is the partition holding the ordered category rules.
const TaxonomyPartition = "taxonomy"

// Table transactions accept at most 100 actions.
const batchSize = 100

// ruleEntity is the table row of one taxonomy rule. Triggers are stored as a
// JSON array string because tables have no list type.
type ruleEntity struct {
	PartitionKey string `json:"PartitionKey"`
	RowKey       string `json:"RowKey"`
	Name         string `json:"Name"`
	Triggers     string `json:"Triggers"`
}

// TaxonomyTableService stores the classification taxonomy in Azure Table Storage.
type TaxonomyTableService struct {
	client *aztables.Client
	table  string
}

// NewTaxonomyTableService connects to tableName at serviceURL and makes sure
// the table exists.
func NewTaxonomyTableService(ctx context.Context, serviceURL, tableName string) (*TaxonomyTableService, error) {
	if serviceURL == "" {
		return nil, fmt.Errorf("table service URL is required")
	}
	if tableName == "" {
		return nil, fmt.Errorf("taxonomy table name is required")
	}

	var serviceClient *aztables.ServiceClient
	if isLocal(serviceURL) {
		slog.Info("using Azurite credentials for taxonomy table")
		cred, err := aztables.NewSharedKeyCredential(getAzuriteCredentials())
		if err != nil {
			return nil, fmt.Errorf("failed to create shared key credential: %w", err)
		}
		serviceClient, err = aztables.NewServiceClientWithSharedKey(serviceURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create table service client with shared key: %w", err)
		}
	} else {
		cred, err := newDefaultAzureCredential()
		if err != nil {
			return nil, fmt.Errorf("failed to create default azure credential: %w", err)
		}
		serviceClient, err = aztables.NewServiceClient(serviceURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create table service client: %w", err)
		}
	}

	if _, err := serviceClient.CreateTable(ctx, tableName, nil); err != nil && !isErrorCode(err, "TableAlreadyExists") {
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	slog.Info("taxonomy table initialized successfully", "table_url", serviceURL, "table", tableName)
	return &TaxonomyTableService{
		client: serviceClient.NewClient(tableName),
		table:  tableName,
	}, nil
}

// Name returns a human readable source name for logs.
func (s *TaxonomyTableService) Name() string {
	return "table:" + s.table
}

// LoadTaxonomy reads all rules of the taxonomy partition ordered by row key.
func (s *TaxonomyTableService) LoadTaxonomy(ctx context.Context) (classify.Taxonomy, error) {
	filter := fmt.Sprintf("PartitionKey eq '%s'", TaxonomyPartition)
	pager := s.client.NewListEntitiesPager(&aztables.ListEntitiesOptions{
		Filter: &filter,
	})

	var entities [][]byte
	for pager.More() {
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list taxonomy rules: %w", err)
		}
		entities = append(entities, resp.Entities...)
	}

	taxonomy, err := decodeRules(entities)
	if err != nil {
		return nil, err
	}
	if err := taxonomy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy in table %s: %w", s.table, err)
	}

	slog.Info("loaded taxonomy", "source", s.Name(), "categories_count", len(taxonomy))
	return taxonomy, nil
}

// SaveTaxonomy replaces the stored rules with taxonomy.
func (s *TaxonomyTableService) SaveTaxonomy(ctx context.Context, taxonomy classify.Taxonomy) error {
	if err := taxonomy.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid taxonomy: %w", err)
	}

	filter := fmt.Sprintf("PartitionKey eq '%s'", TaxonomyPartition)
	selectFields := "RowKey"
	pager := s.client.NewListEntitiesPager(&aztables.ListEntitiesOptions{
		Filter: &filter,
		Select: &selectFields,
	})

	existing := make(map[string]bool)
	for pager.More() {
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list existing rules: %w", err)
		}
		for _, entity := range resp.Entities {
			var row ruleEntity
			if err := json.Unmarshal(entity, &row); err == nil {
				existing[row.RowKey] = true
			}
		}
	}

	var batch []aztables.TransactionAction
	for i, rule := range taxonomy {
		entity, err := encodeRule(i, rule)
		if err != nil {
			return err
		}
		delete(existing, rowKey(i))
		batch = append(batch, aztables.TransactionAction{
			ActionType: aztables.TransactionTypeInsertReplace,
			Entity:     entity,
		})
	}

	for rk := range existing {
		entity, _ := json.Marshal(map[string]string{"PartitionKey": TaxonomyPartition, "RowKey": rk})
		batch = append(batch, aztables.TransactionAction{
			ActionType: aztables.TransactionTypeDelete,
			Entity:     entity,
		})
	}

	for i := 0; i < len(batch); i += batchSize {
		end := min(i+batchSize, len(batch))
		if _, err := s.client.SubmitTransaction(ctx, batch[i:end], nil); err != nil {
			return fmt.Errorf("failed to submit taxonomy batch: %w", err)
		}
	}

	slog.Info("saved taxonomy", "source", s.Name(), "categories_count", len(taxonomy))
	return nil
}

func rowKey(order int) string {
	return fmt.Sprintf("%04d", order)
}

func encodeRule(order int, rule classify.Rule) ([]byte, error) {
	triggers, err := json.Marshal(rule.Triggers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode triggers of %s: %w", rule.Name, err)
	}
	entity, err := json.Marshal(ruleEntity{
		PartitionKey: TaxonomyPartition,
		RowKey:       rowKey(order),
		Name:         string(rule.Name),
		Triggers:     string(triggers),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rule %s: %w", rule.Name, err)
	}
	return entity, nil
}

func decodeRules(entities [][]byte) (classify.Taxonomy, error) {
	rows := make([]ruleEntity, 0, len(entities))
	for _, entity := range entities {
		var row ruleEntity
		if err := json.Unmarshal(entity, &row); err != nil {
			return nil, fmt.Errorf("failed to decode taxonomy rule: %w", err)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RowKey < rows[j].RowKey })

	taxonomy := make(classify.Taxonomy, 0, len(rows))
	for _, row := range rows {
		var triggers []string
		if row.Triggers != "" {
			if err := json.Unmarshal([]byte(row.Triggers), &triggers); err != nil {
				return nil, fmt.Errorf("failed to decode triggers of rule %s: %w", row.RowKey, err)
			}
		}
		taxonomy = append(taxonomy, classify.Rule{Name: models.Category(row.Name), Triggers: triggers})
	}
	return taxonomy, nil
}
