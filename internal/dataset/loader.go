package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrorKind classifies the fatal loader failures. Anything else that
// goes wrong during a load (a bad coordinate cell, a non-numeric
// capacity cell) is a silent per-row exclusion, never an error.
type ErrorKind string

const (
	KindFileNotFound  ErrorKind = "file_not_found"
	KindSheetNotFound ErrorKind = "sheet_not_found"
	KindColumnMissing ErrorKind = "required_column_missing"
)

// LoadError is a fatal load failure. The message is what the
// presentation layer shows to the user instead of a dashboard, so it
// is written for humans and surfaced verbatim.
type LoadError struct {
	Kind    ErrorKind
	Message string
	Details []string
}

func (e *LoadError) Error() string { return e.Message }

func fileNotFound(path string) *LoadError {
	return &LoadError{
		Kind:    KindFileNotFound,
		Message: fmt.Sprintf("dataset file %q not found", path),
	}
}

func sheetNotFound(sheet string, available []string) *LoadError {
	return &LoadError{
		Kind:    KindSheetNotFound,
		Message: fmt.Sprintf("sheet %q not found; available sheets: %s", sheet, strings.Join(available, ", ")),
		Details: available,
	}
}

func columnMissing(sheet string) *LoadError {
	return &LoadError{
		Kind:    KindColumnMissing,
		Message: fmt.Sprintf("no column matching %q found in sheet %q", "coordinates", sheet),
	}
}

// Load reads one sheet from an xlsx workbook and normalizes it into a
// Snapshot: headers trimmed, roles resolved, the combined coordinate
// cell split into numeric latitude/longitude, TotalCapacity summed
// across the resolved capacity columns, and rows without usable
// coordinates dropped.
//
// Exactly three conditions are fatal: the file does not exist, the
// named sheet does not exist, or no column resolves for the
// coordinates role. A missing owner, region or capacity column is
// not fatal; the dependent dashboard features simply disable.
func Load(path, sheet string, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fileNotFound(path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	found := false
	for _, name := range sheets {
		if name == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, sheetNotFound(sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, columnMissing(sheet)
	}

	// Header row, trimmed. Unnamed columns are skipped entirely; they
	// cannot resolve to a role and would collide in the cell map.
	var columns []string
	colIndex := make(map[string]int)
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := colIndex[h]; dup {
			continue
		}
		columns = append(columns, h)
		colIndex[h] = i
	}

	res := Resolve(columns)
	if res.Coordinates == "" {
		return nil, columnMissing(sheet)
	}

	dataRows := rows[1:]
	rawCoords := make([]string, len(dataRows))
	for i, row := range dataRows {
		if idx := colIndex[res.Coordinates]; idx < len(row) {
			rawCoords[i] = row[idx]
		}
	}
	lat, lon := ParseCoordinates(rawCoords)

	table := Table{Columns: columns}
	for i, row := range dataRows {
		if lat[i] == nil || lon[i] == nil {
			continue
		}
		cells := make(map[string]string, len(columns))
		for _, col := range columns {
			if idx := colIndex[col]; idx < len(row) {
				cells[col] = strings.TrimSpace(row[idx])
			}
		}
		table.Records = append(table.Records, Record{
			Cells:         cells,
			Latitude:      *lat[i],
			Longitude:     *lon[i],
			TotalCapacity: totalCapacity(cells, res.CapacityColumns),
		})
	}

	logger.Info("dataset loaded",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("source_rows", len(dataRows)),
		slog.Int("retained_rows", len(table.Records)),
		slog.Int("dropped_rows", len(dataRows)-len(table.Records)),
		slog.String("owner_column", res.Owner),
		slog.String("region_column", res.Region),
		slog.Int("capacity_columns", len(res.CapacityColumns)))

	return &Snapshot{
		Table:      table,
		Resolution: res,
		SourceRows: len(dataRows),
		LoadedAt:   time.Now(),
	}, nil
}
