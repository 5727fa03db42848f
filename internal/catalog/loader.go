package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"order-desk/internal/model"

	"github.com/rs/zerolog"
)

// File is the decoded form of a catalogue file: the complete product and
// promotion lists loaded at process start.
type File struct {
	Products   []model.Product   `json:"products"`
	Promotions []model.Promotion `json:"promotions"`
}

// Loader defines the interface for loading catalogue files.
type Loader interface {
	// Load reads a catalogue file (optionally gzipped) and decodes it.
	Load(ctx context.Context, path string) (*File, error)
}

// fileLoader implements Loader for the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue file from disk. Files ending in .gz are
// decompressed transparently.
func (l *fileLoader) Load(ctx context.Context, path string) (*File, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	f, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer f.Close()

	file, err := decode(f, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalogue file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("products", len(file.Products)).
		Int("promotions", len(file.Promotions)).
		Msg("catalogue file loaded successfully")

	return file, nil
}

// decode reads a catalogue document from r, decompressing when the path
// indicates gzip content.
func decode(r io.Reader, path string) (*File, error) {
	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", path, err)
	}

	return &file, nil
}

// Build loads a catalogue file with the given loader and assembles the
// immutable Catalog from it.
func Build(ctx context.Context, loader Loader, path string) (*Catalog, error) {
	file, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	cat, err := New(file.Products, file.Promotions)
	if err != nil {
		return nil, fmt.Errorf("invalid catalogue file %s: %w", path, err)
	}

	return cat, nil
}
