// Package export serializes generated tables to disk, one artifact per
// table, as Excel workbooks or delimited text. It also produces the empty
// roster template users fill in.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pfgen/internal/fileutils"
	"pfgen/internal/logging"
	"pfgen/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// TimestampLayout is the filename timestamp format, shared by every
// artifact of one run.
const TimestampLayout = "20060102_150405"

// Writer serializes tables. The zero value writes comma-delimited CSV
// with a default logger.
type Writer struct {
	Delimiter rune
	Log       logging.Logger
}

// New builds a Writer with the given CSV delimiter. A nil logger gets a
// default one.
func New(delimiter rune, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{Delimiter: delimiter, Log: logger}
}

// WriteTables writes every table into dir using the naming convention
// {Table}_{companyID}_{timestamp}.{ext}. Format is "xlsx" or "csv".
// Returns the paths written, in table order.
func (w *Writer) WriteTables(tables []models.Table, companyID, dir, format string, ts time.Time) ([]string, error) {
	if format != "xlsx" && format != "csv" {
		return nil, fmt.Errorf("unsupported output format: %s. Supported formats are 'xlsx', 'csv'", format)
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}

	stamp := ts.Format(TimestampLayout)
	paths := make([]string, 0, len(tables))
	for _, table := range tables {
		name := fmt.Sprintf("%s_%s_%s.%s", table.Name, companyID, stamp, format)
		path := filepath.Join(dir, name)
		var err error
		if format == "csv" {
			err = w.writeCSV(table, path)
		} else {
			err = w.writeXLSX(table, path)
		}
		if err != nil {
			return nil, fmt.Errorf("error writing table %s: %w", table.Name, err)
		}
		w.logger().WithField(logging.FieldTable, table.Name).
			WithField(logging.FieldOutput, path).
			WithField(logging.FieldRows, len(table.Rows)).
			Info("Wrote table")
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) writeCSV(table models.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger().WithError(err).Warn("Failed to close file")
		}
	}()

	raw := csv.NewWriter(file)
	raw.Comma = w.delimiter()
	writer := gocsv.NewSafeCSVWriter(raw)

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (w *Writer) writeXLSX(table models.Table, path string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger().WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", rowRef(table.Headers)); err != nil {
		return fmt.Errorf("error writing workbook header: %w", err)
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, rowRef(row)); err != nil {
			return fmt.Errorf("error writing workbook row %d: %w", i+1, err)
		}
	}
	return f.SaveAs(path)
}

// WriteTemplate writes the empty roster template users fill in. The
// extension decides the format: .csv produces delimited text, everything
// else an Excel workbook.
func (w *Writer) WriteTemplate(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating template: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				w.logger().WithError(err).Warn("Failed to close file")
			}
		}()
		// One empty row under the headers, like the downloadable template.
		if err := gocsv.MarshalFile(&[]models.SourceRow{{}}, file); err != nil {
			return fmt.Errorf("error writing template: %w", err)
		}
	} else {
		table := models.Table{
			Headers: models.RequiredColumns,
			Rows:    [][]string{{"", "", "", ""}},
		}
		if err := w.writeXLSX(table, path); err != nil {
			return fmt.Errorf("error writing template: %w", err)
		}
	}
	w.logger().WithField(logging.FieldOutput, path).Info("Wrote roster template")
	return nil
}

func rowRef(values []string) *[]interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &row
}

func (w *Writer) delimiter() rune {
	if w.Delimiter == 0 {
		return ','
	}
	return w.Delimiter
}

func (w *Writer) logger() logging.Logger {
	if w.Log == nil {
		w.Log = logging.NewLogrusAdapter("info", "text")
	}
	return w.Log
}
