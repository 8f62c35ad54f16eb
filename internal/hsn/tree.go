// Package hsn builds and searches the HSN (Harmonized System of Nomenclature)
// tax-code taxonomy used to classify shipped goods.
//
// The source dataset is a nested tree of categories. It is flattened once into
// an Index that preserves the document order of the source file, so searching
// the same dataset always yields the same results in the same order.
package hsn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is a single category or leaf of the taxonomy.
type Node struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
	Children    Tree   `json:"children" yaml:"children"`
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return n.Children.Len() == 0
}

// Tree is a map of nodes that remembers insertion order.
// Decoding from JSON or YAML keeps the order in which keys appear in the document.
type Tree struct {
	keys  []string
	nodes map[string]Node
}

// NewTree creates an empty tree.
func NewTree() Tree {
	return Tree{nodes: make(map[string]Node)}
}

// Set adds or replaces the node stored under key.
// Replacing keeps the key's original position.
func (t *Tree) Set(key string, node Node) {
	if t.nodes == nil {
		t.nodes = make(map[string]Node)
	}
	if _, exists := t.nodes[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.nodes[key] = node
}

// Get returns the node stored under key.
func (t Tree) Get(key string) (Node, bool) {
	node, ok := t.nodes[key]
	return node, ok
}

// Keys returns the keys in insertion order.
func (t Tree) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Len returns the number of direct children.
func (t Tree) Len() int {
	return len(t.keys)
}

// Count returns the total number of nodes in the tree, at every depth.
func (t Tree) Count() int {
	total := 0
	for _, key := range t.keys {
		total += 1 + t.nodes[key].Children.Count()
	}
	return total
}

// Range calls fn for each direct child in order until fn returns false.
func (t Tree) Range(fn func(key string, node Node) bool) {
	for _, key := range t.keys {
		if !fn(key, t.nodes[key]) {
			return
		}
	}
}

// UnmarshalJSON decodes a JSON object, keeping its key order.
func (t *Tree) UnmarshalJSON(data []byte) error {
	*t = NewTree()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("hsn: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("hsn: expected object key, got %v", keyTok)
		}

		var node Node
		if err := dec.Decode(&node); err != nil {
			return fmt.Errorf("hsn: decode %q: %w", key, err)
		}
		t.Set(key, node)
	}

	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the tree as a JSON object in insertion order.
func (t Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(t.nodes[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping, keeping its key order.
func (t *Tree) UnmarshalYAML(value *yaml.Node) error {
	*t = NewTree()

	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || value.Value == "" {
			return nil
		}
		return fmt.Errorf("hsn: line %d: expected mapping, got scalar", value.Line)
	case yaml.MappingNode:
	default:
		return fmt.Errorf("hsn: line %d: expected mapping", value.Line)
	}

	if len(value.Content)%2 != 0 {
		return errors.New("hsn: malformed mapping")
	}
	for i := 0; i < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var node Node
		if err := value.Content[i+1].Decode(&node); err != nil {
			return fmt.Errorf("hsn: decode %q: %w", key, err)
		}
		t.Set(key, node)
	}
	return nil
}

// MarshalYAML encodes the tree as a YAML mapping in insertion order.
func (t Tree) MarshalYAML() (interface{}, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range t.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(t.nodes[key]); err != nil {
			return nil, err
		}
		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}
	return mapping, nil
}
