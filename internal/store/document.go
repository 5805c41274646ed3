package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// schemaVersion is stamped on every persisted document so future
// format changes can migrate on load.
const schemaVersion = 1

// document wraps a persisted payload with its schema version.
type document struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// writeDocument serializes v inside the versioned wrapper and replaces
// the file atomically. The previous document is never left corrupted:
// a crash mid-write loses only the in-flight mutation.
func writeDocument(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	wrapped, err := json.Marshal(document{SchemaVersion: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("marshal wrapper: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(wrapped); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// readDocument loads a persisted document into v. Both the versioned
// wrapper and a bare legacy payload (files written before versioning)
// are accepted.
func readDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Data != nil {
		return json.Unmarshal(doc.Data, v)
	}
	return json.Unmarshal(data, v)
}
