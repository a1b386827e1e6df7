package handler

import (
	"context"

	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
)

// MockBlobClient is a mock implementation of BlobClient
type MockBlobClient struct {
	UploadTextFunc   func(ctx context.Context, containerName, blobName, content string) error
	DownloadTextFunc func(ctx context.Context, containerName, blobName string) (string, error)
}

func (m *MockBlobClient) UploadText(ctx context.Context, containerName, blobName, content string) error {
	if m.UploadTextFunc != nil {
		return m.UploadTextFunc(ctx, containerName, blobName, content)
	}
	return nil
}

func (m *MockBlobClient) DownloadText(ctx context.Context, containerName, blobName string) (string, error) {
	if m.DownloadTextFunc != nil {
		return m.DownloadTextFunc(ctx, containerName, blobName)
	}
	return "", nil
}

// MockQueueClient is a mock implementation of QueueClient
type MockQueueClient struct {
	EnqueueMessageFunc func(ctx context.Context, queueName string, message any) error
}

func (m *MockQueueClient) EnqueueMessage(ctx context.Context, queueName string, message any) error {
	if m.EnqueueMessageFunc != nil {
		return m.EnqueueMessageFunc(ctx, queueName, message)
	}
	return nil
}

// MockTaxonomyStore is a mock implementation of TaxonomyStore
type MockTaxonomyStore struct {
	LoadTaxonomyFunc func(ctx context.Context) (classify.Taxonomy, error)
	SaveTaxonomyFunc func(ctx context.Context, taxonomy classify.Taxonomy) error
}

func (m *MockTaxonomyStore) Name() string { return "mock" }

func (m *MockTaxonomyStore) LoadTaxonomy(ctx context.Context) (classify.Taxonomy, error) {
	if m.LoadTaxonomyFunc != nil {
		return m.LoadTaxonomyFunc(ctx)
	}
	return nil, nil
}

func (m *MockTaxonomyStore) SaveTaxonomy(ctx context.Context, taxonomy classify.Taxonomy) error {
	if m.SaveTaxonomyFunc != nil {
		return m.SaveTaxonomyFunc(ctx, taxonomy)
	}
	return nil
}
