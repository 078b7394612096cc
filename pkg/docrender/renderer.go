// Package docrender walks a validated document description and appends the
// corresponding styled elements to a Word document. Sections render strictly
// in input order; a failure in any section aborts the whole render and no
// output file is produced.
package docrender

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"DocuOps/internal/config"
	"DocuOps/pkg/docmodel"
	"DocuOps/pkg/editor"
)

// Style carries the defaults applied when a description does not specify
// its own colors or fonts.
type Style struct {
	FontFamily         string
	FontSize           float64
	ThemeColor         string
	SubtleColor        string
	HeaderBgColor      string
	HeaderTextColor    string
	AltRowColor        string
	FirstColBgColor    string
	FirstCellBgColor   string
	FirstCellTextColor string
}

// DefaultStyle returns the built-in document theme.
func DefaultStyle() Style {
	return StyleFromConfig(config.Default().Document)
}

// StyleFromConfig maps the document section of the app config onto a Style.
func StyleFromConfig(cfg config.DocumentConfig) Style {
	return Style{
		FontFamily:         cfg.FontFamily,
		FontSize:           cfg.FontSize,
		ThemeColor:         cfg.ThemeColor,
		SubtleColor:        cfg.SubtleColor,
		HeaderBgColor:      cfg.HeaderBgColor,
		HeaderTextColor:    cfg.HeaderTextColor,
		AltRowColor:        cfg.AltRowColor,
		FirstColBgColor:    cfg.FirstColBgColor,
		FirstCellBgColor:   cfg.FirstCellBgColor,
		FirstCellTextColor: cfg.FirstCellTextColor,
	}
}

// RenderError reports a failure while rendering one section.
// SectionIndex is -1 when the failure is not tied to a section.
type RenderError struct {
	SectionIndex int
	Err          error
}

func (e *RenderError) Error() string {
	if e.SectionIndex < 0 {
		return fmt.Sprintf("render: %v", e.Err)
	}
	return fmt.Sprintf("render section %d: %v", e.SectionIndex, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Layout constants carried over from the reference theme.
const (
	pageMarginCm      = 1.9
	headerFooterCm    = 1.27
	titleFontSize     = 24
	subtitleFontSize  = 12
	marginalsFontSize = 9
	borderColorHex    = "CCCCCC"
	borderThicknessPt = 0.5
)

// Renderer renders document descriptions with a fixed style.
type Renderer struct {
	style Style
}

// New creates a Renderer with the given style defaults.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// Render builds an in-memory Word document from a description. The returned
// document has not been written anywhere yet.
func (r *Renderer) Render(desc *docmodel.DocumentDescription) (*editor.Document, error) {
	doc := editor.NewDocument()
	body := doc.BodySection()
	body.SetPageMargins(
		editor.Centimeters(pageMarginCm),
		editor.Centimeters(headerFooterCm),
		editor.Centimeters(headerFooterCm),
	)

	if err := r.renderMarginals(doc, desc); err != nil {
		return nil, &RenderError{SectionIndex: -1, Err: err}
	}

	for i, s := range desc.Sections {
		var err error
		switch s.Type {
		case docmodel.SectionHeading:
			err = r.renderHeading(doc, s)
		case docmodel.SectionParagraph:
			err = r.renderParagraph(doc, s)
		case docmodel.SectionBulletList:
			r.renderList(doc, s, doc.AddBulletDefinition())
		case docmodel.SectionNumberedList:
			r.renderList(doc, s, doc.AddNumberedDefinition())
		case docmodel.SectionTable:
			err = r.renderTable(doc, s)
		case docmodel.SectionKeyValueTable:
			err = r.renderKeyValueTable(doc, s)
		case docmodel.SectionPageBreak:
			doc.AddParagraph().AddRun().AddPageBreak()
		case docmodel.SectionSpacer:
			para := doc.AddParagraph()
			para.SetExactLineHeight(editor.Points(s.Size))
		default:
			// Parse rejects unknown types; reaching this is a programming error.
			err = fmt.Errorf("unhandled section type %q", s.Type)
		}
		if err != nil {
			return nil, &RenderError{SectionIndex: i, Err: err}
		}
	}
	return doc, nil
}

// RenderToFile renders a description and writes it to path atomically: the
// document is saved to a temporary file in the target directory and renamed
// into place only on success, so a failed render never leaves a partial or
// corrupted target file.
func (r *Renderer) RenderToFile(desc *docmodel.DocumentDescription, path string) error {
	doc, err := r.Render(desc)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(abs), uuid.NewString()))
	if err := doc.SaveToFile(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save document: %w", err)
	}
	if err := os.Rename(tmp, abs); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("move document into place: %w", err)
	}
	return nil
}

// renderMarginals inserts the page header/footer regions and the leading
// title/subtitle paragraphs before the section loop.
func (r *Renderer) renderMarginals(doc *editor.Document, desc *docmodel.DocumentDescription) error {
	subtle, err := editor.ColorFromHex(r.style.SubtleColor)
	if err != nil {
		return err
	}

	if desc.Header != "" {
		hdr := doc.AddHeader()
		para := hdr.AddParagraph()
		para.SetAlignment(editor.AlignRight)
		run := para.AddRun()
		run.AddText(desc.Header)
		props := run.Properties()
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(marginalsFontSize))
		props.SetItalic(true)
		props.SetColor(subtle)
		doc.BodySection().SetHeader(hdr)
	}

	if desc.Footer != "" {
		ftr := doc.AddFooter()
		para := ftr.AddParagraph()
		para.SetAlignment(editor.AlignCenter)
		run := para.AddRun()
		run.AddText(desc.Footer)
		props := run.Properties()
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(marginalsFontSize))
		props.SetColor(subtle)
		doc.BodySection().SetFooter(ftr)
	}

	if desc.Title != "" {
		theme, err := editor.ColorFromHex(r.style.ThemeColor)
		if err != nil {
			return err
		}
		para := doc.AddParagraph()
		para.SetAlignment(editor.AlignCenter)
		run := para.AddRun()
		run.AddText(desc.Title)
		props := run.Properties()
		props.SetBold(true)
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(titleFontSize))
		props.SetColor(theme)
	}

	if desc.Subtitle != "" {
		para := doc.AddParagraph()
		para.SetAlignment(editor.AlignCenter)
		run := para.AddRun()
		run.AddText(desc.Subtitle)
		props := run.Properties()
		props.SetItalic(true)
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(subtitleFontSize))
		props.SetColor(subtle)
	}
	return nil
}

func (r *Renderer) renderHeading(doc *editor.Document, s docmodel.Section) error {
	clr, err := editor.ColorFromHex(pick(s.Color, r.style.ThemeColor))
	if err != nil {
		return err
	}
	para := doc.AddParagraph()
	para.SetStyle(fmt.Sprintf("Heading%d", s.Level))
	run := para.AddRun()
	run.AddText(s.Text)
	props := run.Properties()
	props.SetFontFamily(r.style.FontFamily)
	props.SetColor(clr)
	return nil
}

func (r *Renderer) renderParagraph(doc *editor.Document, s docmodel.Section) error {
	para := doc.AddParagraph()
	switch s.Alignment {
	case docmodel.AlignCenter:
		para.SetAlignment(editor.AlignCenter)
	case docmodel.AlignRight:
		para.SetAlignment(editor.AlignRight)
	case docmodel.AlignJustify:
		para.SetAlignment(editor.AlignJustify)
	default:
		para.SetAlignment(editor.AlignLeft)
	}

	size := s.FontSize
	if size <= 0 {
		size = r.style.FontSize
	}

	// Inline ** spans become bold runs regardless of the section-level bold
	// flag; the flag then bolds the plain spans too.
	for _, span := range docmodel.SplitBold(s.Text) {
		run := para.AddRun()
		run.AddText(span.Text)
		props := run.Properties()
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(size))
		props.SetBold(span.Bold || s.Bold)
		props.SetItalic(s.Italic)
		if s.Color != "" {
			clr, err := editor.ColorFromHex(s.Color)
			if err != nil {
				return err
			}
			props.SetColor(clr)
		}
	}
	return nil
}

func (r *Renderer) renderList(doc *editor.Document, s docmodel.Section, def editor.ListDefinition) {
	for _, item := range s.Items {
		para := doc.AddParagraph()
		para.SetNumbering(def)
		run := para.AddRun()
		run.AddText(item)
		props := run.Properties()
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(r.style.FontSize))
	}
}

func (r *Renderer) renderTable(doc *editor.Document, s docmodel.Section) error {
	headerBg, err := editor.ColorFromHex(pick(s.HeaderBgColor, r.style.HeaderBgColor))
	if err != nil {
		return err
	}
	headerText, err := editor.ColorFromHex(pick(s.HeaderTextColor, r.style.HeaderTextColor))
	if err != nil {
		return err
	}
	altRow, err := editor.ColorFromHex(pick(s.AltRowColor, r.style.AltRowColor))
	if err != nil {
		return err
	}

	table := doc.AddTable()
	table.SetWidthPercent(100)

	headerRow := table.AddRow()
	if s.RowHeight > 0 {
		headerRow.SetHeight(editor.Points(s.RowHeight), editor.HeightAtLeast)
	}
	for col, text := range s.Headers {
		cell := headerRow.AddCell()
		r.prepareCell(cell, s.ColWidths, col)
		cell.Properties().SetShading(headerBg)
		run := cell.AddParagraph().AddRun()
		run.AddText(text)
		props := run.Properties()
		props.SetBold(true)
		props.SetFontFamily(r.style.FontFamily)
		props.SetFontSize(editor.Points(r.style.FontSize))
		props.SetColor(headerText)
	}

	for rowIdx, rowData := range s.Rows {
		row := table.AddRow()
		if s.RowHeight > 0 {
			row.SetHeight(editor.Points(s.RowHeight), editor.HeightAtLeast)
		}
		for col, text := range rowData {
			cell := row.AddCell()
			r.prepareCell(cell, s.ColWidths, col)
			// Data rows alternate starting unshaded: indices 1, 3, 5...
			// carry the alternate background.
			if rowIdx%2 == 1 {
				cell.Properties().SetShading(altRow)
			}
			run := cell.AddParagraph().AddRun()
			run.AddText(text)
			props := run.Properties()
			props.SetFontFamily(r.style.FontFamily)
			props.SetFontSize(editor.Points(r.style.FontSize))
		}
	}

	// Breathing room between the table and whatever follows.
	doc.AddParagraph()
	return nil
}

func (r *Renderer) renderKeyValueTable(doc *editor.Document, s docmodel.Section) error {
	firstCol, err := editor.ColorFromHex(pick(s.FirstColBgColor, r.style.FirstColBgColor))
	if err != nil {
		return err
	}
	firstCellBg, err := editor.ColorFromHex(pick(s.FirstCellBgColor, r.style.FirstCellBgColor))
	if err != nil {
		return err
	}
	firstCellText, err := editor.ColorFromHex(pick(s.FirstCellTextColor, r.style.FirstCellTextColor))
	if err != nil {
		return err
	}

	table := doc.AddTable()
	table.SetWidthPercent(100)

	for rowIdx, rowData := range s.Rows {
		row := table.AddRow()
		if s.RowHeight > 0 {
			row.SetHeight(editor.Points(s.RowHeight), editor.HeightAtLeast)
		}
		for col, text := range rowData {
			cell := row.AddCell()
			r.prepareCell(cell, s.ColWidths, col)

			run := cell.AddParagraph().AddRun()
			run.AddText(text)
			props := run.Properties()
			props.SetFontFamily(r.style.FontFamily)
			props.SetFontSize(editor.Points(r.style.FontSize))

			// The very first cell's styling overrides the column shading;
			// the rest of the first column carries the column background.
			switch {
			case rowIdx == 0 && col == 0:
				cell.Properties().SetShading(firstCellBg)
				props.SetBold(true)
				props.SetColor(firstCellText)
			case col == 0:
				cell.Properties().SetShading(firstCol)
				props.SetBold(true)
			}
		}
	}

	doc.AddParagraph()
	return nil
}

// prepareCell applies the shared cell chrome: borders always, an explicit
// width when the section carries layout metadata for this column. Widths are
// set explicitly rather than left to auto-fit so the structural inspector
// can read them back.
func (r *Renderer) prepareCell(cell editor.Cell, colWidths []int, col int) {
	borderColor, _ := editor.ColorFromHex(borderColorHex)
	cell.Properties().SetBorders(borderColor, editor.Points(borderThicknessPt))
	if col < len(colWidths) {
		cell.Properties().SetWidth(editor.Twips(colWidths[col]))
	}
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
