package excel_handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xuri/excelize/v2"

	"DocuOps/internal/models"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/tools/docops/toolresult"
)

// excelOperation is one entry of the operations array accepted by
// edit_excel_file. Sheet defaults to the workbook's first sheet.
type excelOperation struct {
	Action string  `json:"action"`
	Sheet  string  `json:"sheet"`
	Cell   string  `json:"cell"`
	Value  any     `json:"value"`
	Start  string  `json:"start_cell"`
	Values [][]any `json:"values"`
	Row    int     `json:"row"`    // 1-based
	Column string  `json:"column"` // column letter, e.g. "B"
	Name   string  `json:"name"`   // sheet name for add_sheet/delete_sheet
}

// HandleEditFile applies a sequence of workbook operations and saves the
// file in place. The first invalid operation aborts the edit unsaved.
func (h *Handler) HandleEditFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	rawOps, err := req.RequireString("operations")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("edit_excel_file").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	var ops []excelOperation
	if err := json.Unmarshal([]byte(rawOps), &ops); err != nil {
		verr := &docmodel.ValidationError{Kind: docmodel.KindInvalidJSON, SectionIndex: -1, Detail: err.Error()}
		log.WithError(verr).Error("operations rejected")
		return toolresult.Error(models.OpFailure(verr, path)), nil
	}

	f, err := excelize.OpenFile(validPath)
	if err != nil {
		log.WithError(err).Error("open failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}
	defer f.Close()

	for i, op := range ops {
		if err := applyExcelEdit(f, op); err != nil {
			verr := &docmodel.ValidationError{
				Kind:         docmodel.KindInvalidValue,
				SectionIndex: i,
				Detail:       fmt.Sprintf("operation %d (%s): %v", i, op.Action, err),
			}
			log.WithError(verr).Error("operation rejected")
			return toolresult.Error(models.OpFailure(verr, path)), nil
		}
	}

	if err := f.SaveAs(validPath); err != nil {
		log.WithError(err).Error("save failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("workbook edited")
	return toolresult.JSON(models.OpSuccess(fmt.Sprintf("applied %d operation(s)", len(ops)), validPath)), nil
}

func applyExcelEdit(f *excelize.File, op excelOperation) error {
	sheet := op.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	switch op.Action {
	case "update_cell":
		if op.Cell == "" {
			return fmt.Errorf("missing required field \"cell\"")
		}
		return f.SetCellValue(sheet, op.Cell, op.Value)

	case "update_range":
		if op.Start == "" {
			return fmt.Errorf("missing required field \"start_cell\"")
		}
		col, row, err := excelize.CellNameToCoordinates(op.Start)
		if err != nil {
			return err
		}
		for i, values := range op.Values {
			cell, err := excelize.CoordinatesToCellName(col, row+i)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
		}
		return nil

	case "delete_row":
		if op.Row < 1 {
			return fmt.Errorf("row must be a 1-based row number, got %d", op.Row)
		}
		return f.RemoveRow(sheet, op.Row)

	case "delete_column":
		if op.Column == "" {
			return fmt.Errorf("missing required field \"column\"")
		}
		return f.RemoveCol(sheet, op.Column)

	case "add_sheet":
		if op.Name == "" {
			return fmt.Errorf("missing required field \"name\"")
		}
		_, err := f.NewSheet(op.Name)
		return err

	case "delete_sheet":
		if op.Name == "" {
			return fmt.Errorf("missing required field \"name\"")
		}
		return f.DeleteSheet(op.Name)
	}
	return fmt.Errorf("unknown action %q", op.Action)
}
