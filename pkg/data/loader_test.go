package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

const sample = `Year,Population,GDP,Inflation Rate
2020,"21,919,000",$80.97B,4.60%
2019,"21,803,000",$83.90B,Null
`

func TestReadCSV(t *testing.T) {
	t.Run("Should keep every cell as raw text", func(t *testing.T) {
		tbl, err := ReadCSV(strings.NewReader(sample))

		require.NoError(t, err)
		assert.Equal(t, []string{"Year", "Population", "GDP", "Inflation Rate"}, tbl.Columns)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, core.KindText, tbl.Get(0, "GDP").Kind())
		assert.Equal(t, "21,919,000", tbl.Get(0, "Population").Raw())
		assert.Equal(t, "Null", tbl.Get(1, "Inflation Rate").Raw())
	})

	t.Run("Should pad short rows and skip blank lines", func(t *testing.T) {
		tbl, err := ReadCSV(strings.NewReader("Year,GDP\n2001\n,\n2002,$1B\n"))

		require.NoError(t, err)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, "", tbl.Get(0, "GDP").Raw())
		assert.Equal(t, "$1B", tbl.Get(1, "GDP").Raw())
	})

	t.Run("Should strip a byte order mark and padding from headers", func(t *testing.T) {
		tbl, err := ReadCSV(strings.NewReader("\ufeffYear , GDP\n2001,$1B\n"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Year", "GDP"}, tbl.Columns)
	})

	t.Run("Should fail on empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestRequireColumns(t *testing.T) {
	t.Run("Should list every missing column", func(t *testing.T) {
		tbl, err := ReadCSV(strings.NewReader(sample))
		require.NoError(t, err)

		err = RequireColumns(tbl, RequiredColumns)

		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "GNI Per Capita")
		assert.Contains(t, err.Error(), "Annual Change in Inflation Rate")
		assert.NotContains(t, err.Error(), "Population,")
	})

	t.Run("Should accept a table with every required column", func(t *testing.T) {
		tbl := core.NewTable(RequiredColumns)
		assert.NoError(t, RequireColumns(tbl, RequiredColumns))
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("Should load a CSV file", func(t *testing.T) {
		path := filepath.Join(dir, "economy.csv")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

		tbl, err := Load(path, "")

		require.NoError(t, err)
		assert.Equal(t, 2, tbl.Len())
	})

	t.Run("Should load the first sheet of a workbook", func(t *testing.T) {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Year", "GDP", "Inflation Rate"}))
		require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"1960", "$1.41B", "1.5%"}))
		path := filepath.Join(dir, "economy.xlsx")
		require.NoError(t, f.SaveAs(path))

		tbl, err := Load(path, "")

		require.NoError(t, err)
		require.Equal(t, 1, tbl.Len())
		assert.Equal(t, "$1.41B", tbl.Get(0, "GDP").Raw())
		assert.Equal(t, "1.5%", tbl.Get(0, "Inflation Rate").Raw())
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.csv"), "")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Should reject unknown extensions", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "economy.json"), "")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
