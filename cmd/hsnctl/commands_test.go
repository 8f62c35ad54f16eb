package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/courier-portal/internal/hsn"
)

const dataset = `{
  "52": {
    "code": "52",
    "description": "Cotton",
    "children": {
      "5205": {
        "code": "5205",
        "description": "Cotton yarn, not put up for retail sale",
        "children": {
          "520511": {"code": "520511", "description": "Single cotton yarn of uncombed fibres", "children": {}}
        }
      }
    }
  },
  "09": {"code": "09", "description": "Coffee, tea, mate and spices", "children": {}}
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "HSN_MSTR.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportCmd(t *testing.T) {
	workbook := writeWorkbook(t, [][]interface{}{
		{"HSN Code", "Description"},
		{"5205", "Cotton yarn"},
		{"52", "Cotton"},
		{"520511", "Single cotton yarn"},
		{"99", "Orphan chapter"},
		{"Note", "not a code"},
	})

	tests := []struct {
		name string
		out  string
	}{
		{name: "json output", out: "hsn.json"},
		{name: "yaml output", out: "hsn.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.out)

			stdout, err := run(t, "import", "--xlsx", workbook, "--out", out)
			require.NoError(t, err)
			assert.Contains(t, stdout, "imported 4 codes (2 chapters)")

			tree, err := hsn.LoadFile(out)
			require.NoError(t, err)
			assert.Equal(t, []string{"52", "99"}, tree.Keys())

			cotton, ok := tree.Get("52")
			require.True(t, ok)
			yarn, ok := cotton.Children.Get("5205")
			require.True(t, ok)
			_, ok = yarn.Children.Get("520511")
			assert.True(t, ok)
		})
	}
}

func TestImportCmd_Errors(t *testing.T) {
	workbook := writeWorkbook(t, [][]interface{}{{"HSN Code", "Description"}})

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing flags", args: []string{"import"}},
		{name: "unsupported output", args: []string{"import", "--xlsx", workbook, "--out", filepath.Join(t.TempDir(), "hsn.csv")}},
		{name: "empty workbook", args: []string{"import", "--xlsx", workbook, "--out", filepath.Join(t.TempDir(), "hsn.json")}},
		{name: "missing workbook", args: []string{"import", "--xlsx", filepath.Join(t.TempDir(), "none.xlsx"), "--out", filepath.Join(t.TempDir(), "hsn.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSearchCmd(t *testing.T) {
	data := writeFile(t, "hsn.json", dataset)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "all words must match",
			args:     []string{"search", "--data", data, "cotton", "yarn"},
			contains: []string{"5205", "520511"},
			excludes: []string{"Coffee"},
		},
		{
			name:     "limit truncates",
			args:     []string{"search", "--data", data, "--limit", "1", "cotton"},
			contains: []string{"52 ", "... 2 more"},
			excludes: []string{"520511"},
		},
		{
			name:     "no matches",
			args:     []string{"search", "--data", data, "saffron"},
			contains: []string{"no matches"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	_, err := run(t, "search", "--data", writeFile(t, "hsn.json", dataset))
	assert.Error(t, err)
}

func TestStatsCmd(t *testing.T) {
	out, err := run(t, "stats", "--data", writeFile(t, "hsn.json", dataset))
	require.NoError(t, err)

	assert.Regexp(t, `entries\s+4`, out)
	assert.Regexp(t, `chapters\s+2`, out)
	assert.Regexp(t, `subheadings\s+1`, out)
}

func TestStatsCmd_MissingFile(t *testing.T) {
	_, err := run(t, "stats", "--data", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
