package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

var (
	ErrEmptyInput        = errors.New("input has no header row")
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// RequiredColumns are the source columns every input must carry.
var RequiredColumns = []string{
	"Year",
	"Population",
	"Population growth rate",
	"GDP",
	"GDP Per Capita",
	"GDP growth percentage",
	"Annual change in GDP growth",
	"Annual Growth Rate in GDP Per Capita",
	"GNI",
	"GNI Per Capita",
	"GNI Growth Rate",
	"GNI Per Capita Annual Growth Rate",
	"GNP",
	"Government Debt as % of GDP",
	"Annual Change in Debt to GDP Ratio",
	"Inflation Rate",
	"Annual Change in Inflation Rate",
}

// Load reads a .csv or .xlsx file into a raw text table. sheet is only used for
// workbooks; empty selects the first sheet.
func Load(path, sheet string) (*core.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		t, err := ReadCSV(bufio.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadCSV reads a header row followed by data rows. Every cell stays text.
func ReadCSV(r io.Reader) (*core.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return fromRecords(header, records), nil
}

// LoadXLSX reads a worksheet laid out like the CSV: header row first.
func LoadXLSX(path, sheet string) (*core.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}
	return fromRecords(rows[0], rows[1:]), nil
}

func fromRecords(header []string, records [][]string) *core.Table {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	t := core.NewTable(cols)
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		row := make(core.Row, len(cols))
		for j, name := range cols {
			v := ""
			if j < len(rec) {
				v = rec[j]
			}
			row[name] = core.Text(v)
		}
		t.Append(row)
	}
	return t
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// RequireColumns reports every column of cols absent from t.
func RequireColumns(t *core.Table, cols []string) error {
	var missing []string
	for _, c := range cols {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}
