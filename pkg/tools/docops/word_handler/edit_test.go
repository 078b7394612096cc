package word_handler

import (
	"testing"

	"DocuOps/pkg/editor"
)

func TestApplyEditUnknownAction(t *testing.T) {
	doc := editor.NewDocument()
	if err := applyEdit(doc, editOperation{Action: "rotate_page"}); err == nil {
		t.Error("unknown action accepted")
	}
}

func TestApplyEditAddAndEditParagraph(t *testing.T) {
	doc := editor.NewDocument()
	if err := applyEdit(doc, editOperation{Action: "add_paragraph", Text: "first"}); err != nil {
		t.Fatalf("add_paragraph failed: %v", err)
	}
	if err := applyEdit(doc, editOperation{Action: "add_heading", Text: "title", Level: 9}); err != nil {
		t.Fatalf("add_heading failed: %v", err)
	}

	idx := 0
	if err := applyEdit(doc, editOperation{Action: "edit_paragraph", Index: &idx, Text: "replaced"}); err != nil {
		t.Fatalf("edit_paragraph failed: %v", err)
	}
	if got := doc.Paragraphs()[0].Text(); got != "replaced" {
		t.Errorf("paragraph text = %q, want %q", got, "replaced")
	}
}

func TestApplyEditDeleteParagraph(t *testing.T) {
	doc := editor.NewDocument()
	if err := applyEdit(doc, editOperation{Action: "add_paragraph", Text: "only"}); err != nil {
		t.Fatal(err)
	}
	before := len(doc.Paragraphs())

	idx := 0
	if err := applyEdit(doc, editOperation{Action: "delete_paragraph", Index: &idx}); err != nil {
		t.Fatalf("delete_paragraph failed: %v", err)
	}
	if got := len(doc.Paragraphs()); got != before-1 {
		t.Errorf("paragraph count = %d, want %d", got, before-1)
	}
}

func TestApplyEditIndexValidation(t *testing.T) {
	doc := editor.NewDocument()

	if err := applyEdit(doc, editOperation{Action: "edit_paragraph", Text: "x"}); err == nil {
		t.Error("missing index accepted")
	}

	idx := 5
	if err := applyEdit(doc, editOperation{Action: "edit_paragraph", Index: &idx, Text: "x"}); err == nil {
		t.Error("out-of-range index accepted")
	}
}
