// Package word_handler implements the Word document tools: creation from
// plain text or a structured description, paragraph-level editing, text
// conversion, and the structural read/compare pipeline.
package word_handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"DocuOps/internal/models"
	"DocuOps/internal/pathguard"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/docrender"
	"DocuOps/pkg/logger"
	"DocuOps/pkg/tools/docops/toolresult"
)

// Handler handles all Word-related tool requests.
type Handler struct {
	guard    *pathguard.Guard
	renderer *docrender.Renderer
	log      *logger.Logger
}

// NewHandler creates a new Word handler.
func NewHandler(guard *pathguard.Guard, renderer *docrender.Renderer, log *logger.Logger) *Handler {
	return &Handler{guard: guard, renderer: renderer, log: log}
}

// HandleCreateDocument creates a .docx containing the given text as a single
// paragraph.
func (h *Handler) HandleCreateDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	content := req.GetString("content", "")

	log := h.log.WithTool("create_word_document").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	desc := &docmodel.DocumentDescription{
		Sections: []docmodel.Section{{
			Type:      docmodel.SectionParagraph,
			Text:      content,
			Alignment: docmodel.AlignLeft,
		}},
	}
	if err := h.renderer.RenderToFile(desc, validPath); err != nil {
		log.WithError(err).Error("create failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("document created")
	return toolresult.JSON(models.OpSuccess("Word document created", validPath)), nil
}

// HandleCreateFormatted renders a full JSON document description into a
// styled .docx. Validation and rendering failures identify the offending
// section index in the structured error detail.
func (h *Handler) HandleCreateFormatted(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	data, err := req.RequireString("document_data")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("create_formatted_word_document").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	desc, err := docmodel.Parse([]byte(data))
	if err != nil {
		log.WithError(err).Error("description rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}
	if err := h.renderer.RenderToFile(desc, validPath); err != nil {
		log.WithError(err).Error("render failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("formatted document created")
	return toolresult.JSON(models.OpSuccess("formatted Word document created", validPath)), nil
}
