package handler

import (
	"context"

	"github.com/Dr-Neiron/analyze-expenses/internal/classify"
)

// BlobClient defines the blob storage operations used for blob:// locations.
type BlobClient interface {
	UploadText(ctx context.Context, containerName, blobName, content string) error
	DownloadText(ctx context.Context, containerName, blobName string) (string, error)
}

// QueueClient defines the queue operations used to publish reports.
type QueueClient interface {
	EnqueueMessage(ctx context.Context, queueName string, message any) error
}

// TaxonomySource provides the classification rules.
type TaxonomySource interface {
	Name() string
	LoadTaxonomy(ctx context.Context) (classify.Taxonomy, error)
}

// TaxonomyStore is a TaxonomySource that can also be overwritten.
type TaxonomyStore interface {
	TaxonomySource
	SaveTaxonomy(ctx context.Context, taxonomy classify.Taxonomy) error
}
