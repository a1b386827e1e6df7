package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue"
)

// QueueService publishes JSON messages to Azure Queue Storage.
type QueueService struct {
	serviceClient *azqueue.ServiceClient
}

// NewQueueService connects to the queue endpoint at serviceURL.
func NewQueueService(serviceURL string) (*QueueService, error) {
	if serviceURL == "" {
		return nil, fmt.Errorf("queue service URL is required")
	}

	slog.Info("initializing queue service", "queue_url", serviceURL)

	var client *azqueue.ServiceClient
	if isLocal(serviceURL) {
		slog.Info("using Azurite shared key credentials for queue service")
		cred, err := azqueue.NewSharedKeyCredential(getAzuriteCredentials())
		if err != nil {
			return nil, fmt.Errorf("failed to create shared key credential: %w", err)
		}
		client, err = azqueue.NewServiceClientWithSharedKeyCredential(serviceURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create queue service client with shared key: %w", err)
		}
	} else {
		cred, err := newDefaultAzureCredential()
		if err != nil {
			return nil, fmt.Errorf("failed to create default azure credential: %w", err)
		}
		client, err = azqueue.NewServiceClient(serviceURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create queue service client: %w", err)
		}
	}

	slog.Info("queue service initialized successfully")
	return &QueueService{serviceClient: client}, nil
}

// EncodeMessage renders message as base64 encoded JSON, the body format
// queue-triggered consumers expect by default.
func EncodeMessage(message any) (string, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}
	return base64.StdEncoding.EncodeToString(body), nil
}

// EnqueueMessage publishes message to queueName, creating the queue when missing.
func (s *QueueService) EnqueueMessage(ctx context.Context, queueName string, message any) error {
	queueClient := s.serviceClient.NewQueueClient(queueName)

	if _, err := queueClient.Create(ctx, nil); err != nil && !isErrorCode(err, "QueueAlreadyExists") {
		return fmt.Errorf("failed to create queue %s: %w", queueName, err)
	}

	encoded, err := EncodeMessage(message)
	if err != nil {
		return err
	}

	if _, err := queueClient.EnqueueMessage(ctx, encoded, nil); err != nil {
		slog.Error("failed to enqueue message", "queue", queueName, "error", err)
		return fmt.Errorf("failed to enqueue message to %s: %w", queueName, err)
	}

	slog.Info("enqueued message", "queue", queueName, "size_bytes", len(encoded))
	return nil
}
