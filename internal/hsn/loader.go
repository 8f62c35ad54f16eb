package hsn

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("hsn: unsupported dataset format")

// Format identifies a dataset encoding.
type Format int

const (
	// FormatJSON is a JSON object of nodes.
	FormatJSON Format = iota
	// FormatYAML is a YAML mapping of nodes.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads a dataset file, choosing the decoder by extension.
func LoadFile(path string) (Tree, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Tree{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, fmt.Errorf("read hsn dataset: %w", err)
	}

	tree, err := Decode(data, format)
	if err != nil {
		return Tree{}, fmt.Errorf("parse hsn dataset %s: %w", path, err)
	}
	return tree, nil
}

// Decode parses a dataset in the given format.
func Decode(data []byte, format Format) (Tree, error) {
	var tree Tree
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return Tree{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return Tree{}, err
		}
	default:
		return Tree{}, ErrUnsupportedFormat
	}
	if tree.Len() == 0 {
		return Tree{}, errors.New("hsn: dataset is empty")
	}
	return tree, nil
}

// Encode writes tree to w in the given format.
func Encode(w io.Writer, tree Tree, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrUnsupportedFormat
	}
}
