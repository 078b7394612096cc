// Package filetype detects what kind of file a tool was pointed at, so the
// converters can refuse inputs of the wrong format up front instead of
// failing halfway through a parse.
package filetype

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MIME types the converters care about.
const (
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimePDF  = "application/pdf"
	MimeCSV  = "text/csv"
)

// DetectMime sniffs the MIME type of the file at path from its content,
// falling back to the extension when the file cannot be read.
func DetectMime(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		if ext := filepath.Ext(path); ext != "" {
			if byExt := mime.TypeByExtension(ext); byExt != "" {
				return byExt
			}
		}
		return "application/octet-stream"
	}
	return mtype.String()
}

// IsText reports whether a MIME type denotes text content a converter can
// read line by line.
func IsText(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch base(mimeType) {
	case "application/json",
		"application/xml",
		"application/javascript",
		"application/x-javascript",
		"application/yaml",
		"application/x-yaml",
		"application/csv":
		return true
	}
	return false
}

// IsWordDocument reports whether a MIME type denotes a .docx file.
func IsWordDocument(mimeType string) bool {
	return base(mimeType) == MimeDocx
}

// base strips any parameters ("; charset=utf-8") from a MIME type.
func base(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.TrimSpace(mimeType)
}
