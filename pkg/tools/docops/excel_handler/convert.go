package excel_handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xuri/excelize/v2"

	"DocuOps/internal/filetype"
	"DocuOps/internal/models"
	"DocuOps/pkg/tools/docops/toolresult"
)

// HandleConvertCSV converts a CSV file into an .xlsx workbook, one sheet row
// per CSV record. Ragged records are allowed.
func (h *Handler) HandleConvertCSV(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("source_path")
	if err != nil {
		return nil, err
	}
	target, err := req.RequireString("target_path")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("convert_csv_to_excel").WithPath(source)
	validSource, err := h.guard.Validate(source)
	if err != nil {
		log.WithError(err).Error("source path rejected")
		return toolresult.Error(models.OpFailure(err, source)), nil
	}
	validTarget, err := h.guard.Validate(target)
	if err != nil {
		log.WithError(err).Error("target path rejected")
		return toolresult.Error(models.OpFailure(err, target)), nil
	}

	if mime := filetype.DetectMime(validSource); !filetype.IsText(mime) {
		uerr := &models.UnsupportedOperationError{
			Op:     "convert_csv_to_excel",
			Path:   validSource,
			Reason: fmt.Sprintf("not a CSV file (detected %s)", mime),
		}
		log.WithError(uerr).Error("source rejected")
		return toolresult.Error(models.OpFailure(uerr, source)), nil
	}

	src, err := os.Open(validSource)
	if err != nil {
		log.WithError(err).Error("open failed")
		return toolresult.Error(models.OpFailure(err, source)), nil
	}
	defer src.Close()

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		log.WithError(err).Error("csv parse failed")
		return toolresult.Error(models.OpFailure(err, source)), nil
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return toolresult.Error(models.OpFailure(err, target)), nil
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			log.WithError(err).Error("write row failed")
			return toolresult.Error(models.OpFailure(err, target)), nil
		}
	}

	if err := f.SaveAs(validTarget); err != nil {
		log.WithError(err).Error("save failed")
		return toolresult.Error(models.OpFailure(err, target)), nil
	}

	log.Info("csv converted to Excel")
	return toolresult.JSON(models.OpSuccess(
		fmt.Sprintf("converted %s (%d row(s))", validSource, len(records)),
		validTarget,
	)), nil
}
