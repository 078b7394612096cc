package word_handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"DocuOps/internal/models"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/editor"
	"DocuOps/pkg/tools/docops/toolresult"
)

// editOperation is one entry of the operations array accepted by
// edit_word_document. Index is a pointer so "index absent" can be told
// apart from index 0.
type editOperation struct {
	Action string `json:"action"`
	Text   string `json:"text"`
	Level  int    `json:"level"`
	Index  *int   `json:"index"`
}

// HandleEdit applies a sequence of paragraph operations to an existing
// document and saves it in place. Operations apply in order; the first
// invalid operation aborts the edit and nothing is saved.
func (h *Handler) HandleEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	rawOps, err := req.RequireString("operations")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("edit_word_document").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	var ops []editOperation
	if err := json.Unmarshal([]byte(rawOps), &ops); err != nil {
		verr := &docmodel.ValidationError{Kind: docmodel.KindInvalidJSON, SectionIndex: -1, Detail: err.Error()}
		log.WithError(verr).Error("operations rejected")
		return toolresult.Error(models.OpFailure(verr, path)), nil
	}

	doc, err := editor.Open(validPath)
	if err != nil {
		log.WithError(err).Error("open failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	for i, op := range ops {
		if err := applyEdit(doc, op); err != nil {
			verr := &docmodel.ValidationError{
				Kind:         docmodel.KindInvalidValue,
				SectionIndex: i,
				Detail:       fmt.Sprintf("operation %d (%s): %v", i, op.Action, err),
			}
			log.WithError(verr).Error("operation rejected")
			return toolresult.Error(models.OpFailure(verr, path)), nil
		}
	}

	if err := doc.SaveToFile(validPath); err != nil {
		log.WithError(err).Error("save failed")
		return toolresult.Error(models.OpFailure(err, path)), nil
	}

	log.Info("document edited")
	return toolresult.JSON(models.OpSuccess(fmt.Sprintf("applied %d operation(s)", len(ops)), validPath)), nil
}

func applyEdit(doc *editor.Document, op editOperation) error {
	switch op.Action {
	case "add_paragraph":
		doc.AddParagraph().AddRun().AddText(op.Text)
		return nil

	case "add_heading":
		level := op.Level
		if level < 1 {
			level = 1
		}
		if level > 4 {
			level = 4
		}
		para := doc.AddParagraph()
		para.SetStyle(fmt.Sprintf("Heading%d", level))
		para.AddRun().AddText(op.Text)
		return nil

	case "edit_paragraph":
		para, err := paragraphAt(doc, op.Index)
		if err != nil {
			return err
		}
		para.SetText(op.Text)
		return nil

	case "delete_paragraph":
		para, err := paragraphAt(doc, op.Index)
		if err != nil {
			return err
		}
		doc.RemoveParagraph(para)
		return nil
	}
	return fmt.Errorf("unknown action %q", op.Action)
}

func paragraphAt(doc *editor.Document, index *int) (editor.Paragraph, error) {
	if index == nil {
		return editor.Paragraph{}, fmt.Errorf("missing required field \"index\"")
	}
	paras := doc.Paragraphs()
	if *index < 0 || *index >= len(paras) {
		return editor.Paragraph{}, fmt.Errorf("paragraph index %d out of range (document has %d)", *index, len(paras))
	}
	return paras[*index], nil
}
