package synonym

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{"sit": ["Chair", "bench"], "Glow": ["lamp"]}`

// createTestSynonymFile writes content to filename in a temp dir, gzipping it
// when the name ends in ".gz".
func createTestSynonymFile(t *testing.T, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	if filepath.Ext(filename) == ".gz" {
		gzipWriter := gzip.NewWriter(file)
		_, err = gzipWriter.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, gzipWriter.Close())
		return filePath
	}

	_, err = file.WriteString(content)
	require.NoError(t, err)
	return filePath
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{name: "Plain JSON", filename: "synonyms.json", content: testDocument},
		{name: "Gzipped JSON", filename: "synonyms.json.gz", content: testDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFileLoader(zerolog.Nop())
			filePath := createTestSynonymFile(t, tt.filename, tt.content)

			table, err := loader.Load(context.Background(), filePath)

			require.NoError(t, err)
			assert.Equal(t, 2, table.Size())
			assert.Equal(t, []string{"chair", "bench"}, table.Related("sit"))
			assert.Equal(t, []string{"lamp"}, table.Related("glow"))
		})
	}
}

func TestFileLoader_Load_Errors(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	ctx := context.Background()

	t.Run("File not found", func(t *testing.T) {
		table, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, table)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		filePath := createTestSynonymFile(t, "bad.json", `{"sit": "chair"}`)
		table, err := loader.Load(ctx, filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse synonym document")
		assert.Nil(t, table)
	})

	t.Run("Not gzipped despite suffix", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "plain.json.gz")
		require.NoError(t, os.WriteFile(filePath, []byte(testDocument), 0o600))
		table, err := loader.Load(ctx, filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create gzip reader")
		assert.Nil(t, table)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		filePath := createTestSynonymFile(t, "synonyms.json", testDocument)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		table, err := loader.Load(cancelled, filePath)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, table)
	})
}
