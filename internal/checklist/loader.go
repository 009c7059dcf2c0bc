// Package checklist loads the DV validation table and scans extracted
// document text against it.
package checklist

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mfortin/dv-analyzer/internal/common"
)

// Row is one clause of the compliance checklist, in workbook order.
type Row struct {
	Code           string
	ClauseName     string
	ValidationText string
}

// Loader reads checklist rows from XLSX bytes.
type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load parses the first sheet of the workbook into checklist rows.
// Expected columns: "Code form.", "Nom de la clause", "Éléments de validation".
// Header matching is lenient because exports of the source table frequently
// arrive with mangled accents.
func (l *Loader) Load(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, common.NewAppError("CHECKLIST_ERROR", fmt.Sprintf("failed to read Excel checklist: %v", err), common.ErrSpreadsheet)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("checklist.load.close_error", "error", cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewAppError("CHECKLIST_ERROR", "failed to read Excel checklist: no sheets", common.ErrSpreadsheet)
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewAppError("CHECKLIST_ERROR", fmt.Sprintf("failed to read Excel checklist: %v", err), common.ErrSpreadsheet)
	}
	if len(cells) == 0 {
		return nil, common.NewAppError("CHECKLIST_ERROR", "failed to read Excel checklist: empty sheet", common.ErrSpreadsheet)
	}

	codeCol, nameCol, validationCol, headerRows := mapColumns(cells[0])

	var rows []Row
	for _, record := range cells[headerRows:] {
		row := Row{
			Code:           cellAt(record, codeCol),
			ClauseName:     cellAt(record, nameCol),
			ValidationText: cellAt(record, validationCol),
		}
		if row.Code == "" && row.ClauseName == "" {
			continue
		}
		rows = append(rows, row)
	}

	l.logger.Info("checklist.load.ok", "sheet", sheets[0], "rows", len(rows))
	return rows, nil
}

// mapColumns finds the three expected columns in the header row. When no
// header is recognized the sheet is assumed to be headerless with the
// columns in their canonical order.
func mapColumns(header []string) (codeCol, nameCol, validationCol, headerRows int) {
	codeCol, nameCol, validationCol = 0, 1, 2
	found := false
	for i, h := range header {
		switch key := strings.ToLower(strings.TrimSpace(h)); {
		case strings.HasPrefix(key, "code"):
			codeCol, found = i, true
		case strings.Contains(key, "clause"):
			nameCol, found = i, true
		case strings.Contains(key, "validation"):
			validationCol, found = i, true
		}
	}
	if found {
		headerRows = 1
	}
	return codeCol, nameCol, validationCol, headerRows
}

func cellAt(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[col])
}
