package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"fraibot/domain"
	"fraibot/domain/mimetypes"
	"fraibot/errors"
)

// Required column names, matched case-sensitively as authored by the user.
const (
	columnEmail   = "correo"
	columnName    = "nombre"
	columnMessage = "mensaje"
)

// TabularIngester turns an uploaded byte stream into recipients. Parsing is
// a pure transform: nothing is ever written to durable storage here.
type TabularIngester struct {
	log *slog.Logger
}

func NewTabularIngester(log *slog.Logger) TabularIngester {
	return TabularIngester{log: log}
}

// Parse reads the upload as the declared format and returns one recipient
// per data row, in file order. Validation is whole-file: a missing required
// column rejects the upload with ErrSchemaViolation and zero rows. Email
// syntax is not checked; a bad address must fail at the provider.
func (i TabularIngester) Parse(data []byte, format mimetypes.MIME) ([]domain.Recipient, error) {
	var rows [][]string
	var err error

	switch format {
	case mimetypes.TextCSV:
		rows, err = parseCSV(data)
	case mimetypes.ApplicationXLSX:
		rows, err = parseXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", errors.ErrSchemaViolation)
	}

	columns, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	recipients := lo.Map(rows[1:], func(row []string, _ int) domain.Recipient {
		return domain.Recipient{
			Email:   cell(row, columns[columnEmail]),
			Name:    cell(row, columns[columnName]),
			Message: cell(row, columns[columnMessage]),
		}
	})
	i.log.Debug("Recipients file parsed", "rows", len(recipients), "format", string(format))
	return recipients, nil
}

// resolveColumns locates every required column in the header row.
func resolveColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, 3)
	for idx, name := range header {
		switch name {
		case columnEmail, columnName, columnMessage:
			columns[name] = idx
		}
	}
	for _, required := range []string{columnEmail, columnName, columnMessage} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", errors.ErrSchemaViolation, required)
		}
	}
	return columns, nil
}

// cell tolerates ragged rows: a missing trailing field reads as empty.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Rows shorter than the header are padded by cell(), not rejected.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func parseXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}
