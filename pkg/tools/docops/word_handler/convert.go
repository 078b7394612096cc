package word_handler

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"DocuOps/internal/filetype"
	"DocuOps/internal/models"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/tools/docops/toolresult"
)

// HandleConvertTxt converts a plain-text file into a styled Word document,
// one paragraph per non-blank line. Non-text inputs are refused up front.
func (h *Handler) HandleConvertTxt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("source_path")
	if err != nil {
		return nil, err
	}
	target, err := req.RequireString("target_path")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("convert_txt_to_word").WithPath(source)
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
			Op:     "convert_txt_to_word",
			Path:   validSource,
			Reason: fmt.Sprintf("not a text file (detected %s)", mime),
		}
		log.WithError(uerr).Error("source rejected")
		return toolresult.Error(models.OpFailure(uerr, source)), nil
	}

	raw, err := os.ReadFile(validSource)
	if err != nil {
		log.WithError(err).Error("read failed")
		return toolresult.Error(models.OpFailure(err, source)), nil
	}

	desc := &docmodel.DocumentDescription{}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		desc.Sections = append(desc.Sections, docmodel.Section{
			Type:      docmodel.SectionParagraph,
			Text:      line,
			Alignment: docmodel.AlignLeft,
		})
	}

	if err := h.renderer.RenderToFile(desc, validTarget); err != nil {
		log.WithError(err).Error("render failed")
		return toolresult.Error(models.OpFailure(err, target)), nil
	}

	log.Info("text converted to Word")
	return toolresult.JSON(models.OpSuccess(
		fmt.Sprintf("converted %s (%d paragraph(s))", validSource, len(desc.Sections)),
		validTarget,
	)), nil
}
