package docinspect

import (
	"fmt"
	"slices"
)

// Difference records one mismatched fingerprint field. Field is a dotted
// path such as "tables[0].column_widths".
type Difference struct {
	Field       string `json:"field"`
	ValueInDoc1 any    `json:"value_in_doc1"`
	ValueInDoc2 any    `json:"value_in_doc2"`
}

// ComparisonResult is the full field-by-field diff of two fingerprints.
// Differences is empty, never nil, when the fingerprints match.
type ComparisonResult struct {
	IsIdentical bool         `json:"is_identical"`
	Differences []Difference `json:"differences"`
}

// Compare diffs two fingerprints field by field. Every mismatched field is
// reported, not just the first. Tables are compared positionally; when the
// table counts differ the count mismatch is reported once and positional
// comparison stops at the shorter list.
func Compare(fp1, fp2 *StructuralFingerprint) ComparisonResult {
	res := ComparisonResult{Differences: []Difference{}}

	if fp1.TableCount != fp2.TableCount {
		res.add("table_count", fp1.TableCount, fp2.TableCount)
	}

	n := min(len(fp1.Tables), len(fp2.Tables))
	for i := 0; i < n; i++ {
		t1, t2 := fp1.Tables[i], fp2.Tables[i]
		if !slices.Equal(t1.ColumnWidths, t2.ColumnWidths) {
			res.add(fmt.Sprintf("tables[%d].column_widths", i), t1.ColumnWidths, t2.ColumnWidths)
		}
		if !slices.Equal(t1.RowHeights, t2.RowHeights) {
			res.add(fmt.Sprintf("tables[%d].row_heights", i), t1.RowHeights, t2.RowHeights)
		}
		if t1.RowCount != t2.RowCount {
			res.add(fmt.Sprintf("tables[%d].row_count", i), t1.RowCount, t2.RowCount)
		}
		if t1.ColumnCount != t2.ColumnCount {
			res.add(fmt.Sprintf("tables[%d].column_count", i), t1.ColumnCount, t2.ColumnCount)
		}
	}

	if fp1.ParagraphCount != fp2.ParagraphCount {
		res.add("paragraph_count", fp1.ParagraphCount, fp2.ParagraphCount)
	}
	if fp1.HasHeader != fp2.HasHeader {
		res.add("has_header", fp1.HasHeader, fp2.HasHeader)
	}
	if fp1.HasFooter != fp2.HasFooter {
		res.add("has_footer", fp1.HasFooter, fp2.HasFooter)
	}

	res.IsIdentical = len(res.Differences) == 0
	return res
}

func (r *ComparisonResult) add(field string, v1, v2 any) {
	r.Differences = append(r.Differences, Difference{Field: field, ValueInDoc1: v1, ValueInDoc2: v2})
}
