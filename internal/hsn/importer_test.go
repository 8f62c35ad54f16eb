package hsn

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "" && sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	} else {
		sheet = "Sheet1"
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "hsn.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "", [][]interface{}{
		{"HSN Code", "Description"},
		{"01", "Live animals"},
		{"0101", "Live horses"},
		{"0101.21", "Pure-bred breeding horses"},
		{"", "blank code"},
		{"Chapter", "not a code"},
		{"01", "duplicate"},
		{"0102"},
	})

	rows, err := ReadWorkbook(path, DefaultImportOptions())

	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Code: "01", Description: "Live animals"},
		{Code: "0101", Description: "Live horses"},
		{Code: "010121", Description: "Pure-bred breeding horses"},
		{Code: "0102", Description: ""},
	}, rows)
}

func TestReadWorkbook_Options(t *testing.T) {
	path := writeWorkbook(t, "HSN_Master", [][]interface{}{
		{"title"},
		{"sr", "desc", "code"},
		{"1", "Tea", "0902"},
	})

	rows, err := ReadWorkbook(path, ImportOptions{
		Sheet:             "HSN_Master",
		CodeColumn:        "c",
		DescriptionColumn: "B",
		HeaderRows:        2,
	})

	require.NoError(t, err)
	assert.Equal(t, []Row{{Code: "0902", Description: "Tea"}}, rows)
}

func TestReadWorkbook_Errors(t *testing.T) {
	path := writeWorkbook(t, "", [][]interface{}{{"01", "x"}})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultImportOptions())
		assert.Error(t, err)
	})

	t.Run("invalid column", func(t *testing.T) {
		_, err := ReadWorkbook(path, ImportOptions{CodeColumn: "1"})
		assert.Error(t, err)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := ReadWorkbook(path, ImportOptions{Sheet: "nope"})
		assert.Error(t, err)
	})
}

func TestBuildTree(t *testing.T) {
	rows := []Row{
		{Code: "0902", Description: "Tea"},
		{Code: "01", Description: "Live animals"},
		{Code: "010121", Description: "Pure-bred horses"},
		{Code: "0101", Description: "Live horses"},
		{Code: "09", Description: "Coffee, tea"},
		{Code: "2710", Description: "Petroleum oils"},
		{Code: "271012", Description: "Light oils"},
		{Code: "01", Description: "duplicate ignored"},
	}

	tree := BuildTree(rows)

	assert.Equal(t, []string{"01", "09", "2710"}, tree.Keys())
	assert.Equal(t, []Entry{
		{Code: "01", Description: "Live animals"},
		{Code: "0101", Description: "Live horses"},
		{Code: "010121", Description: "Pure-bred horses"},
		{Code: "09", Description: "Coffee, tea"},
		{Code: "0902", Description: "Tea"},
		{Code: "2710", Description: "Petroleum oils"},
		{Code: "271012", Description: "Light oils"},
	}, BuildIndex(tree))

	orphanParent, ok := tree.Get("2710")
	require.True(t, ok)
	assert.Equal(t, []string{"271012"}, orphanParent.Children.Keys())
}
