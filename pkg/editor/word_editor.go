// Package editor wraps the unioffice word-processing API with the small
// authoring surface the document tools need: paragraphs with styled runs,
// shaded and bordered table cells, page headers and footers, and list
// numbering definitions.
package editor

import (
	"io"

	"github.com/unidoc/unioffice/v2/color"
	"github.com/unidoc/unioffice/v2/document"
	"github.com/unidoc/unioffice/v2/measurement"
	"github.com/unidoc/unioffice/v2/schema/soo/wml"
)

// Aliases for unioffice types to simplify usage.
type (
	Alignment   = wml.ST_Jc
	HeightRule  = wml.ST_HeightRule
	Distance    = measurement.Distance
	OfficeColor = color.Color
)

// Re-exported constants so callers do not need the wml schema package.
const (
	AlignLeft    = wml.ST_JcLeft
	AlignCenter  = wml.ST_JcCenter
	AlignRight   = wml.ST_JcRight
	AlignJustify = wml.ST_JcBoth

	HeightExact   = wml.ST_HeightRuleExact
	HeightAtLeast = wml.ST_HeightRuleAtLeast
)

// init would initialize the unioffice license.
func init() {
	// It is recommended to set a metered license key.
	// See https://cloud.unidoc.io for more details.
	// err := license.SetMeteredKey("YOUR_LICENSE_KEY")
	// if err != nil {
	// 	panic(err)
	// }
}

// Document wraps a unioffice document.
type Document struct {
	doc *document.Document
}

// Paragraph wraps a unioffice paragraph.
type Paragraph struct {
	p document.Paragraph
}

// Run wraps a unioffice run.
type Run struct {
	r document.Run
}

// RunProperties wraps unioffice run properties.
type RunProperties struct {
	props document.RunProperties
}

// Table wraps a unioffice table.
type Table struct {
	t document.Table
}

// Row wraps a unioffice row.
type Row struct {
	r document.Row
}

// Cell wraps a unioffice cell.
type Cell struct {
	c document.Cell
}

// CellProperties wraps unioffice cell properties.
type CellProperties struct {
	props document.CellProperties
}

// Header wraps a unioffice header.
type Header struct {
	h document.Header
}

// Footer wraps a unioffice footer.
type Footer struct {
	f document.Footer
}

// Section wraps a unioffice section.
type Section struct {
	s document.Section
}

// ListDefinition wraps a unioffice numbering definition shared by the
// entries of one list section.
type ListDefinition struct {
	nd document.NumberingDefinition
}

// --- 1. File Operations ---

// NewDocument creates a new blank Word document.
func NewDocument() *Document {
	return &Document{doc: document.New()}
}

// Open opens an existing .docx file.
func Open(path string) (*Document, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// SaveToFile saves the document to the specified path.
func (d *Document) SaveToFile(path string) error {
	return d.doc.SaveToFile(path)
}

// Write writes the document content to an io.Writer.
func (d *Document) Write(writer io.Writer) error {
	return d.doc.Save(writer)
}

// --- 2. Body Content ---

// AddParagraph adds a new paragraph to the end of the document body.
func (d *Document) AddParagraph() Paragraph {
	return Paragraph{p: d.doc.AddParagraph()}
}

// Paragraphs returns the paragraphs of the document body in order.
func (d *Document) Paragraphs() []Paragraph {
	var paras []Paragraph
	for _, p := range d.doc.Paragraphs() {
		paras = append(paras, Paragraph{p: p})
	}
	return paras
}

// RemoveParagraph removes a paragraph from the document.
func (d *Document) RemoveParagraph(p Paragraph) {
	d.doc.RemoveParagraph(p.p)
}

// AddTable adds a new table to the document body.
func (d *Document) AddTable() Table {
	return Table{t: d.doc.AddTable()}
}

// AddBulletDefinition registers a bullet list numbering definition.
func (d *Document) AddBulletDefinition() ListDefinition {
	nd := d.doc.Numbering.AddDefinition()
	lvl := nd.AddLevel()
	lvl.SetFormat(wml.ST_NumberFormatBullet)
	lvl.SetAlignment(wml.ST_JcLeft)
	lvl.SetText("•")
	return ListDefinition{nd: nd}
}

// AddNumberedDefinition registers a decimal list numbering definition.
func (d *Document) AddNumberedDefinition() ListDefinition {
	nd := d.doc.Numbering.AddDefinition()
	lvl := nd.AddLevel()
	lvl.SetFormat(wml.ST_NumberFormatDecimal)
	lvl.SetAlignment(wml.ST_JcLeft)
	lvl.SetText("%1.")
	return ListDefinition{nd: nd}
}

// --- 3. Paragraph and Run ---

// AddRun adds a new run to a paragraph.
func (p Paragraph) AddRun() Run {
	return Run{r: p.p.AddRun()}
}

// Runs returns the runs of a paragraph in order.
func (p Paragraph) Runs() []Run {
	var runs []Run
	for _, r := range p.p.Runs() {
		runs = append(runs, Run{r: r})
	}
	return runs
}

// RemoveRun removes a run from a paragraph.
func (p Paragraph) RemoveRun(r Run) {
	p.p.RemoveRun(r.r)
}

// SetText replaces the paragraph content with a single plain run.
func (p Paragraph) SetText(text string) {
	for _, r := range p.p.Runs() {
		p.p.RemoveRun(r)
	}
	p.p.AddRun().AddText(text)
}

// SetStyle applies a named style (e.g. "Heading1") to a paragraph.
func (p Paragraph) SetStyle(name string) {
	p.p.SetStyle(name)
}

// SetAlignment sets the alignment of a paragraph.
func (p Paragraph) SetAlignment(align Alignment) {
	p.p.Properties().SetAlignment(align)
}

// SetExactLineHeight fixes the paragraph line height to the given distance.
func (p Paragraph) SetExactLineHeight(height Distance) {
	p.p.SetLineSpacing(height, wml.ST_LineSpacingRuleExact)
}

// SetNumbering attaches a paragraph to a list definition at level 0.
func (p Paragraph) SetNumbering(def ListDefinition) {
	p.p.SetNumberingDefinition(def.nd)
	p.p.SetNumberingLevel(0)
}

// Text returns the concatenated text of all runs in the paragraph.
func (p Paragraph) Text() string {
	var text string
	for _, r := range p.p.Runs() {
		text += r.Text()
	}
	return text
}

// AddText appends text to a run.
func (r Run) AddText(text string) {
	r.r.AddText(text)
}

// Text returns the text content of a run.
func (r Run) Text() string {
	return r.r.Text()
}

// AddPageBreak adds a page break to a run.
func (r Run) AddPageBreak() {
	r.r.AddPageBreak()
}

// Properties returns the properties of a run.
func (r Run) Properties() RunProperties {
	return RunProperties{props: r.r.Properties()}
}

// SetBold sets the bold property.
func (rp RunProperties) SetBold(bold bool) {
	rp.props.SetBold(bold)
}

// SetItalic sets the italic property.
func (rp RunProperties) SetItalic(italic bool) {
	rp.props.SetItalic(italic)
}

// SetFontFamily sets the font family.
func (rp RunProperties) SetFontFamily(family string) {
	rp.props.SetFontFamily(family)
}

// SetFontSize sets the font size.
func (rp RunProperties) SetFontSize(size Distance) {
	rp.props.SetSize(size)
}

// SetColor sets the font color.
func (rp RunProperties) SetColor(clr OfficeColor) {
	rp.props.SetColor(clr)
}

// --- 4. Table ---

// SetWidthPercent sets the table width as a percentage of the page width.
func (t Table) SetWidthPercent(pct float64) {
	t.t.Properties().SetWidthPercent(pct)
}

// AddRow adds a new row to a table.
func (t Table) AddRow() Row {
	return Row{r: t.t.AddRow()}
}

// SetHeight sets an explicit row height.
func (r Row) SetHeight(height Distance, rule HeightRule) {
	r.r.Properties().SetHeight(height, rule)
}

// AddCell adds a new cell to a row.
func (r Row) AddCell() Cell {
	return Cell{c: r.r.AddCell()}
}

// AddParagraph adds a paragraph to a cell.
func (c Cell) AddParagraph() Paragraph {
	return Paragraph{p: c.c.AddParagraph()}
}

// Properties returns the properties of a cell.
func (c Cell) Properties() CellProperties {
	return CellProperties{props: c.c.Properties()}
}

// SetWidth sets an explicit cell width.
func (cp CellProperties) SetWidth(width Distance) {
	cp.props.SetWidth(width)
}

// SetShading fills the cell background with a solid color.
func (cp CellProperties) SetShading(fill OfficeColor) {
	cp.props.SetShading(wml.ST_ShdSolid, fill, fill)
}

// SetBorders draws single-line borders on all four cell edges.
func (cp CellProperties) SetBorders(clr OfficeColor, thickness Distance) {
	cp.props.Borders().SetAll(wml.ST_BorderSingle, clr, thickness)
}

// --- 5. Header, Footer and Page Layout ---

// BodySection returns the section controlling the document's page layout.
func (d *Document) BodySection() Section {
	return Section{s: d.doc.BodySection()}
}

// SetPageMargins sets uniform page margins.
func (s Section) SetPageMargins(margin, header, footer Distance) {
	s.s.SetPageMargins(margin, margin, margin, margin, header, footer, measurement.Zero)
}

// AddHeader adds a header to the document.
func (d *Document) AddHeader() Header {
	return Header{h: d.doc.AddHeader()}
}

// AddFooter adds a footer to the document.
func (d *Document) AddFooter() Footer {
	return Footer{f: d.doc.AddFooter()}
}

// SetHeader binds a header to the default pages of a section.
func (s Section) SetHeader(h Header) {
	s.s.SetHeader(h.h, wml.ST_HdrFtrDefault)
}

// SetFooter binds a footer to the default pages of a section.
func (s Section) SetFooter(f Footer) {
	s.s.SetFooter(f.f, wml.ST_HdrFtrDefault)
}

// AddParagraph adds a paragraph to a header.
func (h Header) AddParagraph() Paragraph {
	return Paragraph{p: h.h.AddParagraph()}
}

// AddParagraph adds a paragraph to a footer.
func (f Footer) AddParagraph() Paragraph {
	return Paragraph{p: f.f.AddParagraph()}
}
