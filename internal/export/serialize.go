package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// OutputDir is the subdirectory, relative to the invocation root,
	// that export artifacts are written into.
	OutputDir = "exports"

	// RulesFileName is the sibling file holding the exported Firestore
	// rules, referenced from the ruleset fragment via file().
	RulesFileName = "firestore.rules"
)

// Serialize renders the document as indented Terraform JSON. Map keys
// marshal in sorted order, so the output is byte-identical across runs
// for identical input.
func Serialize(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %v", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes one artifact into dir with a single write call.
// There is no temp-file-and-rename guard: the write is treated as
// all-or-nothing by the platform.
func WriteFile(dir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %v", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %v", path, err)
	}
	return path, nil
}
