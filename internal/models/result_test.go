package models

import (
	"fmt"
	"io/fs"
	"testing"

	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/docrender"
)

func TestClassifyValidationError(t *testing.T) {
	err := &docmodel.ValidationError{
		Kind:         docmodel.KindRowLengthMismatch,
		SectionIndex: 3,
		Detail:       "row 1 has 3 cells, expected 2",
	}
	info := ClassifyError(err, "/tmp/doc.docx")
	if info.Kind != ErrKindValidation {
		t.Errorf("kind = %q, want %q", info.Kind, ErrKindValidation)
	}
	if info.SectionIndex == nil || *info.SectionIndex != 3 {
		t.Errorf("section index = %v, want 3", info.SectionIndex)
	}
}

func TestClassifyRenderError(t *testing.T) {
	err := &docrender.RenderError{SectionIndex: 1, Err: fmt.Errorf("bad color")}
	info := ClassifyError(err, "/tmp/doc.docx")
	if info.Kind != ErrKindRender {
		t.Errorf("kind = %q, want %q", info.Kind, ErrKindRender)
	}
	if info.SectionIndex == nil || *info.SectionIndex != 1 {
		t.Errorf("section index = %v, want 1", info.SectionIndex)
	}
}

func TestClassifyDocumentLevelErrorsOmitIndex(t *testing.T) {
	err := &docmodel.ValidationError{Kind: docmodel.KindInvalidJSON, SectionIndex: -1, Detail: "eof"}
	if info := ClassifyError(err, ""); info.SectionIndex != nil {
		t.Errorf("section index = %v, want nil for document-level error", info.SectionIndex)
	}
}

func TestClassifyUnsupportedOperation(t *testing.T) {
	err := &UnsupportedOperationError{Op: "delete_directory", Path: "/tmp/full", Reason: "not empty"}
	info := ClassifyError(err, "/tmp/full")
	if info.Kind != ErrKindUnsupported {
		t.Errorf("kind = %q, want %q", info.Kind, ErrKindUnsupported)
	}
	if info.Path != "/tmp/full" {
		t.Errorf("path = %q, want /tmp/full", info.Path)
	}
}

func TestClassifyPathError(t *testing.T) {
	err := &fs.PathError{Op: "open", Path: "/tmp/missing.docx", Err: fs.ErrNotExist}
	info := ClassifyError(err, "")
	if info.Kind != ErrKindIO {
		t.Errorf("kind = %q, want %q", info.Kind, ErrKindIO)
	}
	if info.Path != "/tmp/missing.docx" {
		t.Errorf("path = %q, want the PathError path", info.Path)
	}
}

func TestOpFailureCarriesDetail(t *testing.T) {
	err := &docmodel.ValidationError{Kind: docmodel.KindMissingField, SectionIndex: 0, Field: "text"}
	res := OpFailure(err, "/tmp/doc.docx")
	if res.Success {
		t.Error("failure result marked successful")
	}
	if res.Error == "" {
		t.Error("failure result has no message")
	}
	if res.Detail == nil || res.Detail.Kind != ErrKindValidation {
		t.Errorf("detail = %+v, want validation kind", res.Detail)
	}
}
