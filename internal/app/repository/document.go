package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ejparker/curdboard-backend/pkg/logger"
)

// readDocument loads a whole-collection JSON document. A missing or
// unparsable file degrades to an empty collection; reads never fail.
func readDocument[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read collection file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("Collection file is not valid JSON, treating as empty", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return []T{}
	}
	return records
}

// writeDocument replaces a collection file with pretty-printed JSON.
// The document is written to a temp file and renamed into place so a
// crashed writer cannot leave a half-written collection behind. There
// is still no locking: concurrent writers race, last write wins.
func writeDocument[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close collection %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace collection %s: %w", path, err)
	}
	return nil
}
