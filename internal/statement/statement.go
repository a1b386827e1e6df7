// Package statement reads and writes statement files addressed by location.
// A location is a local file path or blob://<container>/<blob name>.
package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Dr-Neiron/analyze-expenses/internal/csvparse"
	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

const blobScheme = "blob://"

var (
	// ErrBlobNotConfigured is returned for blob locations when no blob
	// service was configured.
	ErrBlobNotConfigured = errors.New("blob location used but no blob service is configured")

	// ErrNoValidRows is returned when a statement has rows but none parse.
	ErrNoValidRows = errors.New("statement has no valid rows")
)

// TextStore is the blob storage used for blob locations.
type TextStore interface {
	UploadText(ctx context.Context, containerName, blobName, content string) error
	DownloadText(ctx context.Context, containerName, blobName string) (string, error)
}

// Location is a parsed statement address. Path is set for local files,
// Container and Blob for blob locations.
type Location struct {
	Path      string
	Container string
	Blob      string
}

// IsBlob reports whether the location refers to blob storage.
func (l Location) IsBlob() bool {
	return l.Container != ""
}

func (l Location) String() string {
	if l.IsBlob() {
		return blobScheme + l.Container + "/" + l.Blob
	}
	return l.Path
}

// ParseLocation splits a location string.
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return Location{}, fmt.Errorf("empty location")
	}
	if !strings.HasPrefix(s, blobScheme) {
		return Location{Path: s}, nil
	}

	container, blob, ok := strings.Cut(strings.TrimPrefix(s, blobScheme), "/")
	if !ok || container == "" || blob == "" {
		return Location{}, fmt.Errorf("invalid blob location %q: want blob://<container>/<blob name>", s)
	}
	return Location{Container: container, Blob: blob}, nil
}

// Store resolves locations against the local filesystem and, when set, blob storage.
type Store struct {
	Blobs TextStore
}

// ReadText returns the whole content at location.
func (s *Store) ReadText(ctx context.Context, location string) (string, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return "", err
	}

	if !loc.IsBlob() {
		data, err := os.ReadFile(loc.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", loc.Path, err)
		}
		return string(data), nil
	}

	if s.Blobs == nil {
		return "", fmt.Errorf("failed to read %s: %w", loc, ErrBlobNotConfigured)
	}
	return s.Blobs.DownloadText(ctx, loc.Container, loc.Blob)
}

// WriteText replaces the content at location.
func (s *Store) WriteText(ctx context.Context, location, text string) error {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}

	if !loc.IsBlob() {
		if err := os.WriteFile(loc.Path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", loc.Path, err)
		}
		return nil
	}

	if s.Blobs == nil {
		return fmt.Errorf("failed to write %s: %w", loc, ErrBlobNotConfigured)
	}
	return s.Blobs.UploadText(ctx, loc.Container, loc.Blob, text)
}

// Load reads and parses the statement at location. Invalid rows are logged
// and skipped.
func (s *Store) Load(ctx context.Context, location string) ([]models.Transaction, error) {
	content, err := s.ReadText(ctx, location)
	if err != nil {
		return nil, err
	}

	transactions, rowErrors := csvparse.ParseStatement(content)
	slog.Info("parsed statement", "location", location, "transactions_count", len(transactions), "errors_count", len(rowErrors))
	for _, msg := range rowErrors {
		slog.Warn("skipping statement row", "location", location, "error", msg)
	}

	if len(rowErrors) > 0 && len(transactions) == 0 {
		return nil, fmt.Errorf("failed to load %s: %w", location, ErrNoValidRows)
	}
	return transactions, nil
}

// SaveStatement writes transactions in the bank's headerless layout.
func (s *Store) SaveStatement(ctx context.Context, location string, transactions []models.Transaction) error {
	content, err := csvparse.FormatStatement(transactions)
	if err != nil {
		return err
	}
	return s.WriteText(ctx, location, content)
}

// SaveClassified writes transactions with a header and their categories.
func (s *Store) SaveClassified(ctx context.Context, location string, transactions []models.Transaction) error {
	content, err := csvparse.FormatClassified(transactions)
	if err != nil {
		return err
	}
	return s.WriteText(ctx, location, content)
}
