package hsn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportOptions selects where codes live in an HSN master workbook.
type ImportOptions struct {
	// Sheet defaults to the first sheet.
	Sheet string
	// CodeColumn and DescriptionColumn are column letters, e.g. "A".
	CodeColumn        string
	DescriptionColumn string
	// HeaderRows are skipped before data rows.
	HeaderRows int
}

// DefaultImportOptions reads codes from column A and descriptions from column B
// of the first sheet, skipping one header row.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		CodeColumn:        "A",
		DescriptionColumn: "B",
		HeaderRows:        1,
	}
}

// Row is one code read from a workbook.
type Row struct {
	Code        string
	Description string
}

// ReadWorkbook opens an .xlsx file and extracts its code rows.
func ReadWorkbook(path string, opts ImportOptions) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadRows(f, opts)
}

// ReadRows extracts code rows from an open workbook. Rows whose code is not
// numeric (after removing dots and spaces) are skipped, as are repeated codes.
func ReadRows(f *excelize.File, opts ImportOptions) ([]Row, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	codeCol, err := columnIndex(opts.CodeColumn, "A")
	if err != nil {
		return nil, err
	}
	descCol, err := columnIndex(opts.DescriptionColumn, "B")
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	seen := make(map[string]bool)
	var out []Row
	for i := opts.HeaderRows; i < len(rows); i++ {
		code := NormalizeCode(cellValue(rows[i], codeCol))
		if code == "" || !isNumeric(code) || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, Row{
			Code:        code,
			Description: strings.TrimSpace(cellValue(rows[i], descCol)),
		})
	}
	return out, nil
}

func columnIndex(name, fallback string) (int, error) {
	if name == "" {
		name = fallback
	}
	n, err := excelize.ColumnNameToNumber(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", name, err)
	}
	return n - 1, nil
}

func cellValue(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

type importNode struct {
	row      Row
	children []*importNode
}

// BuildTree nests flat rows into a taxonomy: each code becomes a child of the
// longest other code that is a prefix of it, or a root when none exists.
// Rows are ordered by code so the resulting tree is deterministic.
func BuildTree(rows []Row) Tree {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})

	byCode := make(map[string]*importNode, len(sorted))
	var roots []*importNode
	for _, row := range sorted {
		if _, dup := byCode[row.Code]; dup {
			continue
		}
		node := &importNode{row: row}
		byCode[row.Code] = node

		if parent := longestPrefix(byCode, row.Code); parent != nil {
			parent.children = append(parent.children, node)
		} else {
			roots = append(roots, node)
		}
	}

	return toTree(roots)
}

func longestPrefix(byCode map[string]*importNode, code string) *importNode {
	for l := len(code) - 1; l > 0; l-- {
		if parent, ok := byCode[code[:l]]; ok {
			return parent
		}
	}
	return nil
}

func toTree(nodes []*importNode) Tree {
	tree := NewTree()
	for _, n := range nodes {
		tree.Set(n.row.Code, Node{
			Code:        n.row.Code,
			Description: n.row.Description,
			Children:    toTree(n.children),
		})
	}
	return tree
}
