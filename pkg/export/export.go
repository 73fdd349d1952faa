// Package export writes a normalized table back to disk.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Economy"

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Write picks the format from the extension of path.
func Write(path string, t *core.Table) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(path, t)
	case ".xlsx":
		return WriteXLSX(path, t)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// field renders a cell for CSV; missing cells become empty fields.
func field(c core.Cell) string {
	if c.IsMissing() {
		return ""
	}
	return c.String()
}

// WriteCSV writes the header then one record per row.
func WriteCSV(path string, t *core.Table) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	record := make([]string, len(t.Columns))
	for i := range t.Rows {
		for j, col := range t.Columns {
			record[j] = field(t.Get(i, col))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

// value is what a cell stores in a worksheet. Numbers stay numeric.
func value(c core.Cell) interface{} {
	switch c.Kind() {
	case core.KindMissing:
		return nil
	case core.KindInteger:
		n, _ := c.Int()
		return n
	case core.KindNumber, core.KindLabel:
		f, _ := c.Float()
		return f
	default:
		return c.Raw()
	}
}

// WriteXLSX writes the table to a single sheet with a bold header row.
func WriteXLSX(path string, t *core.Table) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, style); err != nil {
		return err
	}

	row := make([]interface{}, len(t.Columns))
	for i := range t.Rows {
		for j, col := range t.Columns {
			row[j] = value(t.Get(i, col))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
