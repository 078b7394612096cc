package word_handler

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"DocuOps/internal/models"
	"DocuOps/pkg/docinspect"
	"DocuOps/pkg/tools/docops/toolresult"
)

// HandleReadStructure extracts the structural fingerprint of an existing
// document. The file is opened read-only and nothing is modified.
func (h *Handler) HandleReadStructure(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("read_word_document_structure").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	fp, err := docinspect.Inspect(validPath)
	if err != nil {
		log.WithError(err).Error("inspect failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("structure read")
	return toolresult.JSON(models.StructureResult{
		Success:               true,
		Filepath:              validPath,
		StructuralFingerprint: *fp,
	}), nil
}

// HandleCompare fingerprints two documents and reports every structural
// difference between them.
func (h *Handler) HandleCompare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path1, err := req.RequireString("filepath_1")
	if err != nil {
		return nil, err
	}
	path2, err := req.RequireString("filepath_2")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("compare_word_documents")
	validPath1, err := h.guard.Validate(path1)
	if err != nil {
		log.WithPath(path1).WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path1)), nil
	}
	validPath2, err := h.guard.Validate(path2)
	if err != nil {
		log.WithPath(path2).WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path2)), nil
	}

	fp1, err := docinspect.Inspect(validPath1)
	if err != nil {
		log.WithPath(path1).WithError(err).Error("inspect failed")
		return toolresult.Error(models.OpFailure(err, path1)), nil
	}
	fp2, err := docinspect.Inspect(validPath2)
	if err != nil {
		log.WithPath(path2).WithError(err).Error("inspect failed")
		return toolresult.Error(models.OpFailure(err, path2)), nil
	}

	cmp := docinspect.Compare(fp1, fp2)
	summary := "documents are structurally identical"
	if !cmp.IsIdentical {
		summary = fmt.Sprintf("%d structural difference(s) found", len(cmp.Differences))
	}

	log.Info("documents compared")
	return toolresult.JSON(models.CompareResult{
		Success:          true,
		Filepath1:        validPath1,
		Filepath2:        validPath2,
		ComparisonResult: cmp,
		Summary:          summary,
	}), nil
}
