package hierarchy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Tree is the canonical serialization format for ownership hierarchies.
// Used for API responses, snapshot storage, and export.
type Tree struct {
	Owners []Node `json:"owners" bson:"owners"`
}

// Marshal converts a built hierarchy to indented JSON bytes.
func Marshal(owners []Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTreeTo(owners, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a hierarchy as JSON to an io.Writer.
func Write(owners []Node, w io.Writer) error {
	return writeTreeTo(owners, w)
}

// WriteFile writes a hierarchy to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(owners []Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTreeTo(owners, f)
}

// Read decodes a JSON hierarchy from an io.Reader.
func Read(r io.Reader) ([]Node, error) {
	var tree Tree
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return tree.Owners, nil
}

// ReadFile reads a JSON file and returns the decoded hierarchy.
func ReadFile(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func writeTreeTo(owners []Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Tree{Owners: owners}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
