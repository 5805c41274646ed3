package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	in := []string{"chicken", "rice"}

	require.NoError(t, writeDocument(path, in))

	var out []string
	require.NoError(t, readDocument(path, &out))
	assert.Equal(t, in, out)

	// The file on disk carries the versioned wrapper.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, schemaVersion, doc.SchemaVersion)
}

func TestDocumentLegacyFallback(t *testing.T) {
	// Files written before versioning are a bare payload.
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`["chicken","rice"]`), 0o644))

	var out []string
	require.NoError(t, readDocument(path, &out))
	assert.Equal(t, []string{"chicken", "rice"}, out)
}

func TestDocumentMissingFile(t *testing.T) {
	var out []string
	err := readDocument(filepath.Join(t.TempDir(), "missing.json"), &out)
	assert.Error(t, err)
}

func TestDocumentCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{truncated`), 0o644))

	var out []string
	assert.Error(t, readDocument(path, &out))
}

func TestWriteDocumentCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "items.json")
	require.NoError(t, writeDocument(path, []int{1, 2, 3}))

	var out []int
	require.NoError(t, readDocument(path, &out))
	assert.Equal(t, []int{1, 2, 3}, out)
}
