// Package excel_handler implements the Excel tools: workbook creation from
// tabular content, cell and sheet level editing, and CSV conversion.
package excel_handler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xuri/excelize/v2"

	"DocuOps/internal/models"
	"DocuOps/internal/pathguard"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/logger"
	"DocuOps/pkg/tools/docops/toolresult"
)

// Handler handles all Excel-related tool requests.
type Handler struct {
	guard *pathguard.Guard
	log   *logger.Logger
}

// NewHandler creates a new Excel handler.
func NewHandler(guard *pathguard.Guard, log *logger.Logger) *Handler {
	return &Handler{guard: guard, log: log}
}

// HandleCreateFile creates an .xlsx from tabular content. Content is a JSON
// array of arrays when it parses as one, otherwise it is read as CSV lines.
func (h *Handler) HandleCreateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	content, err := req.RequireString("content")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("create_excel_file").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	rows, err := parseTabular(content)
	if err != nil {
		log.WithError(err).Error("content rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return toolresult.Error(models.OpFailure(err, path)), nil
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.WithError(err).Error("write row failed")
			return toolresult.Error(models.OpFailure(err, path)), nil
		}
	}

	if err := f.SaveAs(validPath); err != nil {
		log.WithError(err).Error("save failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("workbook created")
	return toolresult.JSON(models.OpSuccess(
		fmt.Sprintf("Excel file created with %d row(s)", len(rows)),
		validPath,
	)), nil
}

// parseTabular reads workbook content either as a JSON array of arrays or,
// failing that, as CSV text.
func parseTabular(content string) ([][]any, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "[") {
		var rows [][]any
		if err := json.Unmarshal([]byte(trimmed), &rows); err != nil {
			return nil, &docmodel.ValidationError{
				Kind:         docmodel.KindInvalidJSON,
				SectionIndex: -1,
				Detail:       fmt.Sprintf("content looks like JSON but is not an array of arrays: %v", err),
			}
		}
		return rows, nil
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &docmodel.ValidationError{
			Kind:         docmodel.KindInvalidValue,
			SectionIndex: -1,
			Detail:       fmt.Sprintf("content is neither JSON rows nor CSV: %v", err),
		}
	}
	rows := make([][]any, 0, len(records))
	for _, record := range records {
		row := make([]any, len(record))
		for i, field := range record {
			row[i] = field
		}
		rows = append(rows, row)
	}
	return rows, nil
}
