package hsn

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxResults caps the number of entries a search returns.
	MaxResults = 20
	// MinQueryLength is the shortest normalized query that triggers a scan.
	MinQueryLength = 2
)

// Entry is one searchable code of the taxonomy. Both category and leaf
// nodes produce an entry.
type Entry struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// BuildIndex flattens tree depth-first. Each node is emitted before its
// descendants and siblings keep the tree's order. Duplicate codes are kept.
// A node without a code falls back to its key.
func BuildIndex(tree Tree) []Entry {
	entries := make([]Entry, 0, tree.Count())
	return appendEntries(entries, tree)
}

func appendEntries(dst []Entry, tree Tree) []Entry {
	tree.Range(func(key string, node Node) bool {
		code := strings.TrimSpace(node.Code)
		if code == "" {
			code = key
		}
		dst = append(dst, Entry{Code: code, Description: node.Description})
		if !node.IsLeaf() {
			dst = appendEntries(dst, node.Children)
		}
		return true
	})
	return dst
}

// Search returns up to MaxResults entries whose description contains every
// whitespace-separated term of query, case-insensitively, in index order.
// Queries shorter than MinQueryLength return an empty slice without scanning.
func Search(index []Entry, query string) []Entry {
	return search(index, func(i int) string {
		return strings.ToLower(index[i].Description)
	}, query)
}

func search(entries []Entry, description func(int) string, query string) []Entry {
	results := make([]Entry, 0)

	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < MinQueryLength {
		return results
	}
	terms := strings.Fields(q)

	for i := range entries {
		if matchesAll(description(i), terms) {
			results = append(results, entries[i])
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}

func matchesAll(description string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(description, term) {
			return false
		}
	}
	return true
}

// Index is an immutable, flattened view of the taxonomy. It is safe for
// concurrent use.
type Index struct {
	entries []Entry
	lowered []string
	byCode  map[string]Entry
}

// NewIndex flattens tree into an Index.
func NewIndex(tree Tree) *Index {
	return NewIndexFromEntries(BuildIndex(tree))
}

// NewIndexFromEntries wraps an already flattened entry list.
// The first entry for a duplicated code wins lookups.
func NewIndexFromEntries(entries []Entry) *Index {
	ix := &Index{
		entries: entries,
		lowered: make([]string, len(entries)),
		byCode:  make(map[string]Entry, len(entries)),
	}
	for i, e := range entries {
		ix.lowered[i] = strings.ToLower(e.Description)
		code := NormalizeCode(e.Code)
		if _, exists := ix.byCode[code]; !exists {
			ix.byCode[code] = e
		}
	}
	return ix
}

// Search applies the package Search rules to the index.
func (ix *Index) Search(query string) []Entry {
	return search(ix.entries, func(i int) string {
		return ix.lowered[i]
	}, query)
}

// Lookup returns the entry with the given code.
func (ix *Index) Lookup(code string) (Entry, bool) {
	e, ok := ix.byCode[NormalizeCode(code)]
	return e, ok
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns a copy of the flattened entries in index order.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// NormalizeCode strips whitespace and dots, so "0101.21 00" and "01012100"
// refer to the same code.
func NormalizeCode(code string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(code))
}
