// Package docmodel defines the JSON document-description format accepted by
// create_formatted_word_document and turns raw descriptions into validated,
// typed section sequences.
package docmodel

import (
	"encoding/json"
	"fmt"
)

// SectionType discriminates the section union. The set is closed: every
// value a parser can return is one of the constants below, and the renderer
// switches over them exhaustively.
type SectionType string

const (
	SectionHeading       SectionType = "heading"
	SectionParagraph     SectionType = "paragraph"
	SectionBulletList    SectionType = "bullet_list"
	SectionNumberedList  SectionType = "numbered_list"
	SectionTable         SectionType = "table"
	SectionKeyValueTable SectionType = "key_value_table"
	SectionPageBreak     SectionType = "page_break"
	SectionSpacer        SectionType = "spacer"
)

// Alignment values accepted by paragraph sections.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// DefaultSpacerSize is the vertical space, in points, inserted by a spacer
// section that does not specify its own size.
const DefaultSpacerSize = 11.0

// Section is one typed block within a document description. Which fields are
// meaningful depends on Type; Parse guarantees the required ones are present.
type Section struct {
	Type SectionType `json:"type"`

	// heading / paragraph
	Level     int    `json:"level,omitempty"`
	Text      string `json:"text,omitempty"`
	Color     string `json:"color,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`

	// bullet_list / numbered_list
	Items []string `json:"items,omitempty"`

	// table
	Headers         []string   `json:"headers,omitempty"`
	Rows            [][]string `json:"rows,omitempty"`
	HeaderBgColor   string     `json:"header_bg_color,omitempty"`
	HeaderTextColor string     `json:"header_text_color,omitempty"`
	AltRowColor     string     `json:"alt_row_color,omitempty"`

	// key_value_table
	FirstColBgColor    string `json:"first_col_bg_color,omitempty"`
	FirstCellBgColor   string `json:"first_cell_bg_color,omitempty"`
	FirstCellTextColor string `json:"first_cell_text_color,omitempty"`

	// table / key_value_table layout metadata
	ColWidths []int   `json:"col_widths,omitempty"` // DXA (twentieths of a point)
	RowHeight float64 `json:"row_height,omitempty"` // points

	// spacer
	Size float64 `json:"size,omitempty"` // points
}

// DocumentDescription is the root of the input format. Sections render in
// order; the order of sections in the output document equals their order
// here.
type DocumentDescription struct {
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Header   string    `json:"header,omitempty"`
	Footer   string    `json:"footer,omitempty"`
	Sections []Section `json:"sections"`
}

// wireSection mirrors Section but keeps required fields as pointers so that
// a missing key can be told apart from a zero value.
type wireSection struct {
	Type      string   `json:"type"`
	Level     *int     `json:"level"`
	Text      *string  `json:"text"`
	Color     string   `json:"color"`
	Bold      bool     `json:"bold"`
	Italic    bool     `json:"italic"`
	Alignment string   `json:"alignment"`
	FontSize  float64  `json:"font_size"`
	Items     []string `json:"items"`

	Headers         []string   `json:"headers"`
	Rows            [][]string `json:"rows"`
	HeaderBgColor   string     `json:"header_bg_color"`
	HeaderTextColor string     `json:"header_text_color"`
	AltRowColor     string     `json:"alt_row_color"`

	FirstColBgColor    string `json:"first_col_bg_color"`
	FirstCellBgColor   string `json:"first_cell_bg_color"`
	FirstCellTextColor string `json:"first_cell_text_color"`

	ColWidths []int   `json:"col_widths"`
	RowHeight float64 `json:"row_height"`
	Size      float64 `json:"size"`
}

type wireDescription struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Header   string         `json:"header"`
	Footer   string         `json:"footer"`
	Sections *[]wireSection `json:"sections"`
}

// Parse validates a raw JSON document description and returns the typed
// section sequence with defaults applied. Unknown top-level keys are
// ignored; unknown section types are rejected. Parse has no side effects.
func Parse(raw []byte) (*DocumentDescription, error) {
	var wire wireDescription
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &ValidationError{Kind: KindInvalidJSON, SectionIndex: -1, Detail: err.Error()}
	}
	if wire.Sections == nil {
		return nil, &ValidationError{Kind: KindMissingField, SectionIndex: -1, Field: "sections"}
	}

	desc := &DocumentDescription{
		Title:    wire.Title,
		Subtitle: wire.Subtitle,
		Header:   wire.Header,
		Footer:   wire.Footer,
		Sections: make([]Section, 0, len(*wire.Sections)),
	}

	for i, ws := range *wire.Sections {
		s, err := convertSection(i, ws)
		if err != nil {
			return nil, err
		}
		desc.Sections = append(desc.Sections, s)
	}
	return desc, nil
}

func convertSection(index int, ws wireSection) (Section, error) {
	s := Section{
		Type:               SectionType(ws.Type),
		Color:              ws.Color,
		Bold:               ws.Bold,
		Italic:             ws.Italic,
		Alignment:          ws.Alignment,
		FontSize:           ws.FontSize,
		Items:              ws.Items,
		Headers:            ws.Headers,
		Rows:               ws.Rows,
		HeaderBgColor:      ws.HeaderBgColor,
		HeaderTextColor:    ws.HeaderTextColor,
		AltRowColor:        ws.AltRowColor,
		FirstColBgColor:    ws.FirstColBgColor,
		FirstCellBgColor:   ws.FirstCellBgColor,
		FirstCellTextColor: ws.FirstCellTextColor,
		ColWidths:          ws.ColWidths,
		RowHeight:          ws.RowHeight,
		Size:               ws.Size,
	}
	if ws.Text != nil {
		s.Text = *ws.Text
	}

	missing := func(field string) (Section, error) {
		return Section{}, &ValidationError{Kind: KindMissingField, SectionIndex: index, Field: field}
	}

	switch s.Type {
	case SectionHeading:
		if ws.Level == nil {
			return missing("level")
		}
		if ws.Text == nil {
			return missing("text")
		}
		// Out-of-range levels are clamped rather than rejected: rendering
		// stays best-effort for near-valid input.
		s.Level = clampLevel(*ws.Level)

	case SectionParagraph:
		if ws.Text == nil {
			return missing("text")
		}
		if s.Alignment == "" {
			s.Alignment = AlignLeft
		}

	case SectionBulletList, SectionNumberedList:
		if ws.Items == nil {
			return missing("items")
		}

	case SectionTable:
		if ws.Headers == nil {
			return missing("headers")
		}
		if ws.Rows == nil {
			return missing("rows")
		}
		for r, row := range ws.Rows {
			if len(row) != len(ws.Headers) {
				return Section{}, &ValidationError{
					Kind:         KindRowLengthMismatch,
					SectionIndex: index,
					Detail:       fmt.Sprintf("row %d has %d cells, expected %d", r, len(row), len(ws.Headers)),
				}
			}
		}

	case SectionKeyValueTable:
		if ws.Rows == nil {
			return missing("rows")
		}
		for r, row := range ws.Rows {
			if len(row) != 2 {
				return Section{}, &ValidationError{
					Kind:         KindRowLengthMismatch,
					SectionIndex: index,
					Detail:       fmt.Sprintf("row %d has %d cells, expected 2 (key/value pair)", r, len(row)),
				}
			}
		}

	case SectionPageBreak:
		// no fields

	case SectionSpacer:
		if s.Size <= 0 {
			s.Size = DefaultSpacerSize
		}

	default:
		return Section{}, &ValidationError{Kind: KindUnknownSectionType, SectionIndex: index, Detail: ws.Type}
	}

	return s, nil
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}
