package classify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// taxonomyFile is the YAML layout of a taxonomy file:
//
//	categories:
//	  - name: Groceries
//	    triggers: [COLES, ALDI]
type taxonomyFile struct {
	Categories []Rule `yaml:"categories"`
}

// LoadTaxonomy decodes and validates a YAML taxonomy.
func LoadTaxonomy(r io.Reader) (Taxonomy, error) {
	var file taxonomyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	taxonomy := Taxonomy(file.Categories)
	if err := taxonomy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}
	return taxonomy, nil
}

// LoadTaxonomyFile reads a YAML taxonomy from path.
func LoadTaxonomyFile(path string) (Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file: %w", err)
	}
	defer f.Close()

	taxonomy, err := LoadTaxonomy(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("loaded taxonomy", "path", path, "categories_count", len(taxonomy))
	return taxonomy, nil
}

// FileSource loads the taxonomy from a YAML file on every call.
type FileSource struct {
	Path string
}

// Name returns a human readable source name for logs.
func (f FileSource) Name() string {
	return "file:" + f.Path
}

// LoadTaxonomy reads the file at Path.
func (f FileSource) LoadTaxonomy(_ context.Context) (Taxonomy, error) {
	return LoadTaxonomyFile(f.Path)
}

// DefaultSource serves DefaultTaxonomy.
type DefaultSource struct{}

func (DefaultSource) Name() string { return "default" }

func (DefaultSource) LoadTaxonomy(_ context.Context) (Taxonomy, error) {
	return DefaultTaxonomy(), nil
}
