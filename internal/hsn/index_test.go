package hsn

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "01": {
    "code": "01",
    "description": "Live animals",
    "children": {
      "0101": {
        "code": "0101",
        "description": "Live horses, asses, mules and hinnies",
        "children": {
          "010121": {"code": "010121", "description": "Pure-bred breeding horses", "children": {}}
        }
      },
      "0102": {"code": "0102", "description": "Live bovine animals", "children": {}}
    }
  },
  "09": {
    "code": "09",
    "description": "Coffee, tea, mate and spices",
    "children": {
      "0902": {"code": "0902", "description": "Tea, whether or not flavoured", "children": {}}
    }
  }
}`

func mustTree(t *testing.T, doc string) Tree {
	t.Helper()
	var tree Tree
	require.NoError(t, json.Unmarshal([]byte(doc), &tree))
	return tree
}

func TestBuildIndex(t *testing.T) {
	t.Run("emits parents before children in document order", func(t *testing.T) {
		index := BuildIndex(mustTree(t, sampleJSON))

		want := []Entry{
			{Code: "01", Description: "Live animals"},
			{Code: "0101", Description: "Live horses, asses, mules and hinnies"},
			{Code: "010121", Description: "Pure-bred breeding horses"},
			{Code: "0102", Description: "Live bovine animals"},
			{Code: "09", Description: "Coffee, tea, mate and spices"},
			{Code: "0902", Description: "Tea, whether or not flavoured"},
		}
		if diff := cmp.Diff(want, index); diff != "" {
			t.Errorf("BuildIndex() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("includes interior and leaf nodes", func(t *testing.T) {
		tree := NewTree()
		children := NewTree()
		children.Set("B", Node{Code: "0101", Description: "Live horses"})
		tree.Set("A", Node{Code: "01", Description: "Animals", Children: children})

		index := BuildIndex(tree)

		assert.Contains(t, index, Entry{Code: "01", Description: "Animals"})
		assert.Contains(t, index, Entry{Code: "0101", Description: "Live horses"})
	})

	t.Run("is deterministic", func(t *testing.T) {
		tree := mustTree(t, sampleJSON)

		first := BuildIndex(tree)
		second := BuildIndex(mustTree(t, sampleJSON))

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("BuildIndex() not deterministic (-first +second):\n%s", diff)
		}
		assert.Equal(t, first, BuildIndex(tree))
	})

	t.Run("keeps duplicate codes", func(t *testing.T) {
		tree := NewTree()
		tree.Set("a", Node{Code: "01", Description: "first"})
		tree.Set("b", Node{Code: "01", Description: "second"})

		assert.Len(t, BuildIndex(tree), 2)
	})

	t.Run("falls back to key for empty code", func(t *testing.T) {
		tree := NewTree()
		tree.Set("0401", Node{Description: "Milk and cream"})

		assert.Equal(t, []Entry{{Code: "0401", Description: "Milk and cream"}}, BuildIndex(tree))
	})

	t.Run("empty tree yields empty index", func(t *testing.T) {
		assert.Empty(t, BuildIndex(NewTree()))
	})
}

func TestSearch(t *testing.T) {
	index := BuildIndex(mustTree(t, sampleJSON))

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "single character returns nothing", query: "a", expected: []string{}},
		{name: "blank query returns nothing", query: "   ", expected: []string{}},
		{name: "short after trimming returns nothing", query: "  t ", expected: []string{}},
		{name: "no match returns empty", query: "ab", expected: []string{}},
		{name: "case insensitive", query: "LIVE", expected: []string{"01", "0101", "0102"}},
		{name: "all terms must match", query: "live animals", expected: []string{"01", "0102"}},
		{name: "terms in any order", query: "animals live", expected: []string{"01", "0102"}},
		{name: "whitespace runs split terms", query: "  tea \t  flavoured ", expected: []string{"0902"}},
		{name: "substring of a word matches", query: "bred", expected: []string{"010121"}},
		{name: "parent and child both match", query: "tea", expected: []string{"09", "0902"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(index, tt.query)

			require.NotNil(t, results)
			codes := make([]string, 0, len(results))
			for _, r := range results {
				codes = append(codes, r.Code)
			}
			assert.Equal(t, tt.expected, codes)
		})
	}
}

func TestSearch_Cap(t *testing.T) {
	entries := make([]Entry, 0, 100)
	for i := 0; i < 100; i++ {
		entries = append(entries, Entry{Code: fmt.Sprintf("%04d", i), Description: fmt.Sprintf("Cotton fabric %d", i)})
	}

	results := Search(entries, "cotton")

	require.Len(t, results, MaxResults)
	assert.Equal(t, entries[:MaxResults], results)
}

func TestSearch_StopsAtCap(t *testing.T) {
	entries := make([]Entry, 0, 100)
	for i := 0; i < 100; i++ {
		entries = append(entries, Entry{Code: fmt.Sprintf("%04d", i), Description: "wool"})
	}

	scanned := 0
	results := search(entries, func(i int) string {
		scanned++
		return entries[i].Description
	}, "wool")

	assert.Len(t, results, MaxResults)
	assert.Equal(t, MaxResults, scanned)
}

func TestSearch_ShortQueryDoesNotScan(t *testing.T) {
	entries := []Entry{{Code: "01", Description: "a"}}

	scanned := 0
	results := search(entries, func(i int) string {
		scanned++
		return entries[i].Description
	}, "a")

	assert.Empty(t, results)
	assert.Zero(t, scanned)
}

func TestSearch_MultibyteQuery(t *testing.T) {
	entries := []Entry{{Code: "01", Description: "Épices"}}

	assert.Empty(t, Search(entries, "é"))
	assert.Len(t, Search(entries, "ÉP"), 1)
}

func TestIndex(t *testing.T) {
	ix := NewIndex(mustTree(t, sampleJSON))

	t.Run("search matches package search", func(t *testing.T) {
		assert.Equal(t, Search(ix.Entries(), "live animals"), ix.Search("live animals"))
		assert.Equal(t, Search(ix.Entries(), "TEA"), ix.Search("TEA"))
	})

	t.Run("len counts every node", func(t *testing.T) {
		assert.Equal(t, 6, ix.Len())
	})

	t.Run("entries returns a copy", func(t *testing.T) {
		entries := ix.Entries()
		entries[0].Description = "changed"

		assert.Equal(t, "Live animals", ix.Entries()[0].Description)
	})

	lookups := []struct {
		name  string
		code  string
		found bool
	}{
		{name: "leaf code", code: "010121", found: true},
		{name: "category code", code: "01", found: true},
		{name: "dotted code", code: "0101.21", found: true},
		{name: "spaced code", code: " 09 02 ", found: true},
		{name: "unknown code", code: "9999", found: false},
		{name: "empty code", code: "", found: false},
	}
	for _, tt := range lookups {
		t.Run("lookup "+tt.name, func(t *testing.T) {
			entry, ok := ix.Lookup(tt.code)

			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, NormalizeCode(tt.code), entry.Code)
			}
		})
	}

	t.Run("first duplicate wins lookup", func(t *testing.T) {
		dup := NewIndexFromEntries([]Entry{
			{Code: "01", Description: "first"},
			{Code: "01", Description: "second"},
		})

		entry, ok := dup.Lookup("01")
		require.True(t, ok)
		assert.Equal(t, "first", entry.Description)
	})
}

func TestNormalizeCode(t *testing.T) {
	tests := map[string]string{
		"0101.21":    "010121",
		" 0101 21 ":  "010121",
		"0101\t21":   "010121",
		"":           "",
		"8471.30.10": "84713010",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeCode(in), in)
	}
}
