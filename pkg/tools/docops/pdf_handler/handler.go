// Package pdf_handler implements the PDF tools: direct creation from text
// and text-level conversion of Word documents.
package pdf_handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/unidoc/unipdf/v3/creator"

	"DocuOps/internal/filetype"
	"DocuOps/internal/models"
	"DocuOps/internal/pathguard"
	"DocuOps/pkg/editor"
	"DocuOps/pkg/logger"
	"DocuOps/pkg/tools/docops/toolresult"
)

const pdfFontSize = 11

// Handler handles all PDF-related tool requests.
type Handler struct {
	guard *pathguard.Guard
	log   *logger.Logger
}

// NewHandler creates a new PDF handler.
func NewHandler(guard *pathguard.Guard, log *logger.Logger) *Handler {
	return &Handler{guard: guard, log: log}
}

// HandleCreateFile creates a PDF from plain text, one paragraph per line.
func (h *Handler) HandleCreateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	content, err := req.RequireString("content")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("create_pdf_file").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if err := writePDF(validPath, lines); err != nil {
		log.WithError(err).Error("create failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("pdf created")
	return toolresult.JSON(models.OpSuccess(
		fmt.Sprintf("PDF created with %d line(s)", len(lines)),
		validPath,
	)), nil
}

// HandleConvertWord converts a .docx into a PDF at the text level: body
// paragraphs are extracted in order and laid out again with the PDF
// creator. Page-layout fidelity is out of scope; the paragraph text and
// its order are preserved.
func (h *Handler) HandleConvertWord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("source_path")
	if err != nil {
		return nil, err
	}
	target, err := req.RequireString("target_path")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("convert_word_to_pdf").WithPath(source)
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

	if mime := filetype.DetectMime(validSource); !filetype.IsWordDocument(mime) {
		uerr := &models.UnsupportedOperationError{
			Op:     "convert_word_to_pdf",
			Path:   validSource,
			Reason: fmt.Sprintf("not a Word document (detected %s)", mime),
		}
		log.WithError(uerr).Error("source rejected")
		return toolresult.Error(models.OpFailure(uerr, source)), nil
	}

	doc, err := editor.Open(validSource)
	if err != nil {
		log.WithError(err).Error("open failed")
		return toolresult.Error(models.OpFailure(err, source)), nil
	}

	var lines []string
	for _, para := range doc.Paragraphs() {
		lines = append(lines, para.Text())
	}

	if err := writePDF(validTarget, lines); err != nil {
		log.WithError(err).Error("convert failed")
		return toolresult.Error(models.OpFailure(err, target)), nil
	}

	log.Info("word converted to pdf")
	return toolresult.JSON(models.OpSuccess(
		fmt.Sprintf("converted %s (%d paragraph(s))", validSource, len(lines)),
		validTarget,
	)), nil
}

// writePDF lays the lines out top to bottom and writes the file. An empty
// line set still produces a valid single-page PDF.
func writePDF(path string, lines []string) error {
	c := creator.New()
	c.SetPageMargins(50, 50, 50, 50)
	c.NewPage()

	for _, line := range lines {
		if line == "" {
			line = " "
		}
		p := c.NewParagraph(line)
		p.SetFontSize(pdfFontSize)
		if err := c.Draw(p); err != nil {
			return fmt.Errorf("draw paragraph: %w", err)
		}
	}
	return c.WriteToFile(path)
}
