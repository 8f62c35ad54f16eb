package hsn

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleYAML = `
"09":
  code: "09"
  description: Coffee, tea, mate and spices
  children:
    "0902":
      code: "0902"
      description: Tea, whether or not flavoured
"01":
  code: "01"
  description: Live animals
  children:
    "0102":
      code: "0102"
      description: Live bovine animals
      children: {}
    "0101":
      code: "0101"
      description: Live horses, asses, mules and hinnies
`

func TestTree_Set(t *testing.T) {
	tree := NewTree()
	tree.Set("b", Node{Code: "b"})
	tree.Set("a", Node{Code: "a"})
	tree.Set("b", Node{Code: "b", Description: "replaced"})

	assert.Equal(t, []string{"b", "a"}, tree.Keys())
	assert.Equal(t, 2, tree.Len())

	node, ok := tree.Get("b")
	require.True(t, ok)
	assert.Equal(t, "replaced", node.Description)

	_, ok = tree.Get("missing")
	assert.False(t, ok)
}

func TestTree_ZeroValue(t *testing.T) {
	var tree Tree
	assert.Zero(t, tree.Len())
	assert.Zero(t, tree.Count())

	tree.Set("01", Node{Code: "01"})
	assert.Equal(t, 1, tree.Len())
}

func TestTree_Range(t *testing.T) {
	tree := mustTree(t, sampleJSON)

	var visited []string
	tree.Range(func(key string, _ Node) bool {
		visited = append(visited, key)
		return false
	})

	assert.Equal(t, []string{"01"}, visited)
	assert.Equal(t, 6, tree.Count())
}

func TestTree_JSON(t *testing.T) {
	t.Run("keeps key order", func(t *testing.T) {
		tree := mustTree(t, `{"z":{"code":"z"},"a":{"code":"a"},"m":{"code":"m"}}`)
		assert.Equal(t, []string{"z", "a", "m"}, tree.Keys())
	})

	t.Run("round trips in order", func(t *testing.T) {
		tree := mustTree(t, sampleJSON)

		data, err := json.Marshal(tree)
		require.NoError(t, err)

		var decoded Tree
		require.NoError(t, json.Unmarshal(data, &decoded))
		if diff := cmp.Diff(BuildIndex(tree), BuildIndex(decoded)); diff != "" {
			t.Errorf("round trip changed index (-want +got):\n%s", diff)
		}
	})

	t.Run("null children is a leaf", func(t *testing.T) {
		tree := mustTree(t, `{"01":{"code":"01","description":"x","children":null}}`)
		node, _ := tree.Get("01")
		assert.True(t, node.IsLeaf())
	})

	errorCases := []struct {
		name string
		doc  string
	}{
		{name: "array", doc: `[]`},
		{name: "string", doc: `"01"`},
		{name: "bad node", doc: `{"01": 5}`},
		{name: "truncated", doc: `{"01": {"code": "01"}`},
	}
	for _, tt := range errorCases {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			var tree Tree
			assert.Error(t, json.Unmarshal([]byte(tt.doc), &tree))
		})
	}
}

func TestTree_YAML(t *testing.T) {
	t.Run("keeps mapping order", func(t *testing.T) {
		var tree Tree
		require.NoError(t, yaml.Unmarshal([]byte(sampleYAML), &tree))

		codes := make([]string, 0)
		for _, e := range BuildIndex(tree) {
			codes = append(codes, e.Code)
		}
		assert.Equal(t, []string{"09", "0902", "01", "0102", "0101"}, codes)
	})

	t.Run("round trips in order", func(t *testing.T) {
		var tree Tree
		require.NoError(t, yaml.Unmarshal([]byte(sampleYAML), &tree))

		data, err := yaml.Marshal(tree)
		require.NoError(t, err)

		var decoded Tree
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, BuildIndex(tree), BuildIndex(decoded))
	})

	t.Run("rejects sequence", func(t *testing.T) {
		var tree Tree
		assert.Error(t, yaml.Unmarshal([]byte("- 01\n- 02\n"), &tree))
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "hsn.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0o600))
	yamlPath := filepath.Join(dir, "hsn.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o600))
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"01":`), 0o600))
	emptyPath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, []byte(`{}`), 0o600))

	tests := []struct {
		name    string
		path    string
		entries int
		wantErr bool
	}{
		{name: "json", path: jsonPath, entries: 6},
		{name: "yaml", path: yamlPath, entries: 5},
		{name: "missing file", path: filepath.Join(dir, "missing.json"), wantErr: true},
		{name: "malformed file", path: badPath, wantErr: true},
		{name: "empty dataset", path: emptyPath, wantErr: true},
		{name: "unsupported extension", path: filepath.Join(dir, "hsn.csv"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := LoadFile(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, BuildIndex(tree), tt.entries)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		format  Format
		wantErr bool
	}{
		{path: "a.json", format: FormatJSON},
		{path: "a.JSON", format: FormatJSON},
		{path: "a.yaml", format: FormatYAML},
		{path: "a.yml", format: FormatYAML},
		{path: "a.xlsx", wantErr: true},
		{path: "noext", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestEncode(t *testing.T) {
	tree := mustTree(t, sampleJSON)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tree, format))

			decoded, err := Decode(buf.Bytes(), format)
			require.NoError(t, err)
			assert.Equal(t, BuildIndex(tree), BuildIndex(decoded))
		})
	}

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, tree, Format(99)), ErrUnsupportedFormat)
}
