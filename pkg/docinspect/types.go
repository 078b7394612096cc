// Package docinspect reads the structural skeleton of rendered Word
// documents: table dimensions and layout metadata, the body paragraph count
// and the presence of header and footer content. Fingerprints are recomputed
// from the file on every call, never cached, and two fingerprints can be
// diffed field by field.
package docinspect

// HeightAuto is the row height recorded when a row has no explicit height
// and the word processor lays it out automatically.
const HeightAuto = -1

// TableInfo describes the layout of one table in document order.
type TableInfo struct {
	ColumnWidths []int `json:"column_widths"`
	RowHeights   []int `json:"row_heights"`
	RowCount     int   `json:"row_count"`
	ColumnCount  int   `json:"column_count"`
}

// StructuralFingerprint summarizes the structure of one document.
//
// RowCount counts data rows only; the first row of every table is treated
// as its header row and excluded. Widths and heights are in DXA (twentieths
// of a point), the unit the document stores them in.
type StructuralFingerprint struct {
	TableCount     int         `json:"table_count"`
	Tables         []TableInfo `json:"tables"`
	ParagraphCount int         `json:"paragraph_count"`
	HasHeader      bool        `json:"has_header"`
	HasFooter      bool        `json:"has_footer"`
}
