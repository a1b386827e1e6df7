package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// BlobService reads and writes statement files in Azure Blob Storage.
type BlobService struct {
	client *azblob.Client
}

// NewBlobService connects to the blob endpoint at serviceURL.
func NewBlobService(serviceURL string) (*BlobService, error) {
	if serviceURL == "" {
		return nil, fmt.Errorf("blob service URL is required")
	}

	slog.Info("initializing blob service", "blob_url", serviceURL)

	var client *azblob.Client
	if isLocal(serviceURL) {
		slog.Info("using Azurite shared key credentials for blob service")
		cred, err := azblob.NewSharedKeyCredential(getAzuriteCredentials())
		if err != nil {
			return nil, fmt.Errorf("failed to create shared key credential: %w", err)
		}
		client, err = azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob client with shared key: %w", err)
		}
	} else {
		cred, err := newDefaultAzureCredential()
		if err != nil {
			return nil, fmt.Errorf("failed to create default azure credential: %w", err)
		}
		client, err = azblob.NewClient(serviceURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob client: %w", err)
		}
	}

	slog.Info("blob service initialized successfully")
	return &BlobService{client: client}, nil
}

// UploadText writes text to a blob, creating the container when missing.
func (s *BlobService) UploadText(ctx context.Context, containerName, blobName, text string) error {
	slog.Info("uploading blob", "container", containerName, "blob_name", blobName, "size_bytes", len(text))

	if _, err := s.client.CreateContainer(ctx, containerName, nil); err != nil && !isErrorCode(err, "ContainerAlreadyExists") {
		return fmt.Errorf("failed to create container %s: %w", containerName, err)
	}

	if _, err := s.client.UploadBuffer(ctx, containerName, blobName, []byte(text), nil); err != nil {
		slog.Error("failed to upload blob", "container", containerName, "blob_name", blobName, "error", err)
		return fmt.Errorf("failed to upload blob %s/%s: %w", containerName, blobName, err)
	}
	return nil
}

// DownloadText reads a whole blob as text.
func (s *BlobService) DownloadText(ctx context.Context, containerName, blobName string) (string, error) {
	slog.Info("downloading blob", "container", containerName, "blob_name", blobName)

	resp, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		if isErrorCode(err, "BlobNotFound") {
			return "", fmt.Errorf("blob %s/%s does not exist: %w", containerName, blobName, err)
		}
		return "", fmt.Errorf("failed to download blob %s/%s: %w", containerName, blobName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read blob content: %w", err)
	}

	slog.Debug("downloaded blob", "container", containerName, "blob_name", blobName, "size_bytes", len(data))
	return string(data), nil
}
