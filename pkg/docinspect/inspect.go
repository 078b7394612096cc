package docinspect

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A .docx file is a zip archive of OOXML parts. The structural fields the
// fingerprint needs (tblGrid, trHeight, tcW) are layout metadata the
// authoring API does not read back, so the body part is parsed directly.
// encoding/xml matches on local names, which makes the structs below
// namespace-prefix agnostic.

type documentXML struct {
	Body bodyXML `xml:"body"`
}

type bodyXML struct {
	Paragraphs []struct{} `xml:"p"`
	Tables     []tableXML `xml:"tbl"`
}

type tableXML struct {
	Grid struct {
		Cols []widthAttr `xml:"gridCol"`
	} `xml:"tblGrid"`
	Rows []rowXML `xml:"tr"`
}

type rowXML struct {
	Props struct {
		Height *struct {
			Val string `xml:"val,attr"`
		} `xml:"trHeight"`
	} `xml:"trPr"`
	Cells []cellXML `xml:"tc"`
}

type cellXML struct {
	Props struct {
		Width *widthAttr `xml:"tcW"`
	} `xml:"tcPr"`
}

type widthAttr struct {
	W string `xml:"w,attr"`
}

// Inspect reads the document at path and extracts its structural
// fingerprint. The file is opened read-only and closed before returning.
func Inspect(path string) (*StructuralFingerprint, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer zr.Close()

	fp := &StructuralFingerprint{Tables: []TableInfo{}}
	sawBody := false
	for _, f := range zr.File {
		switch {
		case f.Name == "word/document.xml":
			sawBody = true
			if err := readBody(f, fp); err != nil {
				return nil, fmt.Errorf("parse %s in %s: %w", f.Name, path, err)
			}
		case isMarginalPart(f.Name, "word/header"):
			ok, err := partHasText(f)
			if err != nil {
				return nil, fmt.Errorf("parse %s in %s: %w", f.Name, path, err)
			}
			fp.HasHeader = fp.HasHeader || ok
		case isMarginalPart(f.Name, "word/footer"):
			ok, err := partHasText(f)
			if err != nil {
				return nil, fmt.Errorf("parse %s in %s: %w", f.Name, path, err)
			}
			fp.HasFooter = fp.HasFooter || ok
		}
	}
	if !sawBody {
		return nil, fmt.Errorf("%s is not a Word document: word/document.xml missing", path)
	}
	return fp, nil
}

func isMarginalPart(name, prefix string) bool {
	return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".xml")
}

func readBody(f *zip.File, fp *StructuralFingerprint) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	var doc documentXML
	if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
		return err
	}

	fp.ParagraphCount = len(doc.Body.Paragraphs)
	for _, tbl := range doc.Body.Tables {
		fp.Tables = append(fp.Tables, tableInfo(tbl))
	}
	fp.TableCount = len(fp.Tables)
	return nil
}

// tableInfo extracts one table's layout. Column widths come from the
// explicit tblGrid when present, otherwise from the first row's cell widths.
// The first row is the header row and is excluded from RowCount.
func tableInfo(tbl tableXML) TableInfo {
	info := TableInfo{
		ColumnWidths: []int{},
		RowHeights:   []int{},
	}

	if len(tbl.Grid.Cols) > 0 {
		for _, col := range tbl.Grid.Cols {
			info.ColumnWidths = append(info.ColumnWidths, parseWidth(col.W))
		}
	} else if len(tbl.Rows) > 0 {
		for _, cell := range tbl.Rows[0].Cells {
			if cell.Props.Width != nil {
				info.ColumnWidths = append(info.ColumnWidths, parseWidth(cell.Props.Width.W))
			} else {
				info.ColumnWidths = append(info.ColumnWidths, 0)
			}
		}
	}

	for _, row := range tbl.Rows {
		if row.Props.Height != nil {
			info.RowHeights = append(info.RowHeights, parseWidth(row.Props.Height.Val))
		} else {
			info.RowHeights = append(info.RowHeights, HeightAuto)
		}
	}

	if len(tbl.Rows) > 0 {
		info.RowCount = len(tbl.Rows) - 1
		info.ColumnCount = len(tbl.Rows[0].Cells)
	} else {
		info.ColumnCount = len(tbl.Grid.Cols)
	}
	return info
}

func parseWidth(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// partHasText reports whether a header or footer part contains any
// non-whitespace text. An empty placeholder region does not count as a
// present header or footer.
func partHasText(f *zip.File) (bool, error) {
	rc, err := f.Open()
	if err != nil {
		return false, err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "t" {
			continue
		}
		var text string
		if err := dec.DecodeElement(&text, &se); err != nil {
			return false, err
		}
		if strings.TrimSpace(text) != "" {
			return true, nil
		}
	}
}
