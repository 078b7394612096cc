package models

import (
	"errors"
	"fmt"
	"io/fs"

	"DocuOps/pkg/docinspect"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/docrender"
)

// Error kinds reported in structured tool results.
const (
	ErrKindValidation  = "validation_error"
	ErrKindIO          = "io_error"
	ErrKindRender      = "render_error"
	ErrKindUnsupported = "unsupported_operation"
)

// UnsupportedOperationError reports a request the tool refuses by contract,
// such as deleting a non-empty directory.
type UnsupportedOperationError struct {
	Op     string
	Path   string
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Reason)
}

// ErrorInfo is the structured context attached to a failed result so the
// caller can retry or report without parsing the message.
type ErrorInfo struct {
	Kind         string `json:"kind"`
	SectionIndex *int   `json:"section_index,omitempty"`
	Field        string `json:"field,omitempty"`
	Path         string `json:"path,omitempty"`
}

// ClassifyError maps an error from the document core onto an ErrorInfo.
// Anything not recognized as a validation, render or contract error is
// treated as an I/O failure.
func ClassifyError(err error, path string) *ErrorInfo {
	var ve *docmodel.ValidationError
	if errors.As(err, &ve) {
		info := &ErrorInfo{Kind: ErrKindValidation, Field: ve.Field, Path: path}
		if ve.SectionIndex >= 0 {
			idx := ve.SectionIndex
			info.SectionIndex = &idx
		}
		return info
	}

	var re *docrender.RenderError
	if errors.As(err, &re) {
		info := &ErrorInfo{Kind: ErrKindRender, Path: path}
		if re.SectionIndex >= 0 {
			idx := re.SectionIndex
			info.SectionIndex = &idx
		}
		return info
	}

	var ue *UnsupportedOperationError
	if errors.As(err, &ue) {
		return &ErrorInfo{Kind: ErrKindUnsupported, Path: ue.Path}
	}

	var pe *fs.PathError
	if errors.As(err, &pe) {
		return &ErrorInfo{Kind: ErrKindIO, Path: pe.Path}
	}
	return &ErrorInfo{Kind: ErrKindIO, Path: path}
}

// OperationResult is the common shape of document tool responses.
type OperationResult struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message,omitempty"`
	Filepath string     `json:"filepath,omitempty"`
	Error    string     `json:"error,omitempty"`
	Detail   *ErrorInfo `json:"error_detail,omitempty"`
}

// OpSuccess builds a successful result for the given file.
func OpSuccess(message, filepath string) OperationResult {
	return OperationResult{Success: true, Message: message, Filepath: filepath}
}

// OpFailure builds a failed result carrying the classified error context.
func OpFailure(err error, path string) OperationResult {
	return OperationResult{Success: false, Error: err.Error(), Detail: ClassifyError(err, path)}
}

// StructureResult is the response of read_word_document_structure.
type StructureResult struct {
	Success  bool   `json:"success"`
	Filepath string `json:"filepath"`
	docinspect.StructuralFingerprint
}

// CompareResult is the response of compare_word_documents.
type CompareResult struct {
	Success   bool   `json:"success"`
	Filepath1 string `json:"filepath_1"`
	Filepath2 string `json:"filepath_2"`
	docinspect.ComparisonResult
	Summary string `json:"summary"`
}

// DeletionResult is the response of the file management tools.
type DeletionResult struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
	Path      string   `json:"path"`
	Deleted   bool     `json:"deleted"`
	Method    string   `json:"method,omitempty"` // "trash" or "permanent"
	ItemCount int      `json:"item_count,omitempty"`
	Contents  []string `json:"contents,omitempty"`
	MimeType  string   `json:"mime_type,omitempty"`
	Modified  string   `json:"last_modified,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Capabilities describes what this server can do, exposed as the
// capabilities:// resource.
type Capabilities struct {
	Name        string               `json:"name"`
	Version     string               `json:"version"`
	Description string               `json:"description"`
	Operations  CapabilityOperations `json:"document_operations"`
}

type CapabilityOperations struct {
	Word  map[string]bool `json:"word"`
	Excel map[string]bool `json:"excel"`
	PDF   map[string]bool `json:"pdf"`
	Files map[string]bool `json:"file_management"`
}
