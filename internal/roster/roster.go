// Package roster reads the uploaded account roster, either a delimited
// text file or an Excel workbook, into the shared Roster model. Delimited
// input is decoded by trying UTF-8, Latin-1 and Windows-1252 in that
// order; the first encoding that decodes wins.
package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"pfgen/internal/fileutils"
	"pfgen/internal/logging"
	"pfgen/internal/models"
	"pfgen/internal/rostererror"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Reader loads roster files. The zero value reads comma-delimited CSV
// with a default logger.
type Reader struct {
	Delimiter rune
	Log       logging.Logger
}

// New builds a Reader with the given CSV delimiter. A nil logger gets a
// default one.
func New(delimiter rune, logger logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reader{Delimiter: delimiter, Log: logger}
}

// Read loads a roster file, dispatching on the file extension: .xlsx and
// .xls go through the workbook path, everything else is treated as
// delimited text.
func (r *Reader) Read(path string) (models.Roster, error) {
	r.logger().WithField(logging.FieldFile, path).Info("Reading roster")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return r.readWorkbook(path)
	default:
		return r.readDelimited(path)
	}
}

func (r *Reader) readDelimited(path string) (models.Roster, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return models.Roster{}, err
	}
	return r.DecodeDelimited(data, path)
}

// DecodeDelimited parses delimited roster bytes. The name is only used in
// error messages and logs.
func (r *Reader) DecodeDelimited(data []byte, name string) (models.Roster, error) {
	decoded, encoding, err := decode(data)
	if err != nil {
		return models.Roster{}, &rostererror.EncodingError{
			FilePath: name,
			Tried:    []string{"utf-8", "latin-1", "cp1252"},
		}
	}
	r.logger().WithField(logging.FieldEncoding, encoding).Debug("Decoded roster bytes")

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = r.delimiter()
	reader.FieldsPerRecord = -1 // rows shorter than the header are padded below

	records, err := reader.ReadAll()
	if err != nil {
		return models.Roster{}, &rostererror.ParseError{FilePath: name, Stage: "csv", Err: err}
	}
	return r.fromRecords(records, name)
}

func (r *Reader) readWorkbook(path string) (models.Roster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Roster{}, &rostererror.ParseError{FilePath: path, Stage: "workbook", Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger().WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return models.Roster{}, &rostererror.ParseError{
			FilePath: path, Stage: "workbook", Err: errors.New("no sheets found in workbook"),
		}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.Roster{}, &rostererror.ParseError{FilePath: path, Stage: "workbook", Err: err}
	}
	return r.fromRecords(rows, path)
}

// fromRecords maps raw header+data records onto SourceRows. Unknown
// columns are ignored; rows shorter than the header are padded with empty
// cells. Header presence is checked later by the assembler so every
// missing column can be reported at once.
func (r *Reader) fromRecords(records [][]string, name string) (models.Roster, error) {
	if len(records) == 0 {
		return models.Roster{}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]models.SourceRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, record)
			record = padded
		}
		var row models.SourceRow
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			switch headers[i] {
			case models.ColumnAccountNumber:
				row.AccountNumber = value
			case models.ColumnCompanyName:
				row.CompanyName = value
			case models.ColumnAddress:
				row.Address = value
			case models.ColumnManagingBranch:
				row.ManagingBranch = value
			}
		}
		rows = append(rows, row)
	}

	r.logger().WithField(logging.FieldFile, name).
		WithField(logging.FieldRows, len(rows)).
		Info("Roster read")
	return models.Roster{Headers: headers, Rows: rows}, nil
}

// decode returns UTF-8 bytes for the input, trying UTF-8 first, then
// Latin-1, then Windows-1252. A leading UTF-8 BOM is stripped.
func decode(data []byte) ([]byte, string, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		data = data[len(bomUTF8):]
	}
	if utf8.Valid(data) {
		return data, "utf-8", nil
	}
	if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return decoded, "latin-1", nil
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return decoded, "cp1252", nil
	}
	return nil, "", errors.New("no supported encoding decodes the input")
}

func (r *Reader) delimiter() rune {
	if r.Delimiter == 0 {
		return ','
	}
	return r.Delimiter
}

func (r *Reader) logger() logging.Logger {
	if r.Log == nil {
		r.Log = logging.NewLogrusAdapter("info", "text")
	}
	return r.Log
}
