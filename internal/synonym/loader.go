package synonym

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// maxTableBytes bounds how much of a synonym document is read.
const maxTableBytes = 16 << 20

// fileLoader implements Loader for reading synonym files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based synonym loader.
// Files whose name ends in ".gz" are decompressed first.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "synonym-loader").Logger(),
	}
}

// Load reads a synonym file and returns its Table.
func (l *fileLoader) Load(ctx context.Context, filePath string) (Table, error) {
	l.logger.Info().Str("file", filePath).Msg("loading synonym file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open synonym file")
		return nil, fmt.Errorf("failed to open synonym file %s: %w", filePath, err)
	}
	defer file.Close()

	table, err := decode(ctx, file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode synonym file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("intents_loaded", table.Size()).
		Msg("synonym file loaded successfully")

	return table, nil
}

// decode parses a JSON synonym document from r, gunzipping it first when
// name ends in ".gz".
func decode(ctx context.Context, r io.Reader, name string) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var raw map[string][]string
	if err := json.NewDecoder(io.LimitReader(r, maxTableBytes)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse synonym document %s: %w", name, err)
	}

	return normalise(raw), nil
}
