package docmodel

import (
	"errors"
	"testing"
)

func TestParseValidDescription(t *testing.T) {
	raw := `{
		"title": "Report",
		"subtitle": "Q3",
		"header": "Confidential",
		"footer": "Page",
		"sections": [
			{"type": "heading", "level": 2, "text": "Overview"},
			{"type": "paragraph", "text": "Body **bold** text"},
			{"type": "bullet_list", "items": ["a", "b"]},
			{"type": "numbered_list", "items": ["first"]},
			{"type": "table", "headers": ["A", "B"], "rows": [["1", "2"]]},
			{"type": "key_value_table", "rows": [["k", "v"]]},
			{"type": "page_break"},
			{"type": "spacer", "size": 6}
		]
	}`

	desc, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(desc.Sections) != 8 {
		t.Fatalf("expected 8 sections, got %d", len(desc.Sections))
	}
	if desc.Title != "Report" || desc.Header != "Confidential" {
		t.Errorf("marginals not carried over: %+v", desc)
	}
	if desc.Sections[0].Level != 2 {
		t.Errorf("heading level = %d, want 2", desc.Sections[0].Level)
	}
	if desc.Sections[1].Alignment != AlignLeft {
		t.Errorf("paragraph alignment default = %q, want %q", desc.Sections[1].Alignment, AlignLeft)
	}
	if desc.Sections[7].Size != 6 {
		t.Errorf("spacer size = %v, want 6", desc.Sections[7].Size)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindInvalidJSON {
		t.Errorf("kind = %q, want %q", verr.Kind, KindInvalidJSON)
	}
	if verr.SectionIndex != -1 {
		t.Errorf("section index = %d, want -1", verr.SectionIndex)
	}
}

func TestParseMissingSections(t *testing.T) {
	_, err := Parse([]byte(`{"title": "no sections"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindMissingField || verr.Field != "sections" {
		t.Errorf("got kind=%q field=%q, want missing sections", verr.Kind, verr.Field)
	}
}

func TestParseUnknownSectionType(t *testing.T) {
	_, err := Parse([]byte(`{"sections": [{"type": "sidebar", "text": "x"}]}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindUnknownSectionType {
		t.Errorf("kind = %q, want %q", verr.Kind, KindUnknownSectionType)
	}
	if verr.SectionIndex != 0 {
		t.Errorf("section index = %d, want 0", verr.SectionIndex)
	}
}

func TestParseMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{"heading without level", `{"sections": [{"type": "heading", "text": "x"}]}`, "level"},
		{"heading without text", `{"sections": [{"type": "heading", "level": 1}]}`, "text"},
		{"paragraph without text", `{"sections": [{"type": "paragraph"}]}`, "text"},
		{"list without items", `{"sections": [{"type": "bullet_list"}]}`, "items"},
		{"table without headers", `{"sections": [{"type": "table", "rows": []}]}`, "headers"},
		{"table without rows", `{"sections": [{"type": "table", "headers": ["A"]}]}`, "rows"},
		{"kv table without rows", `{"sections": [{"type": "key_value_table"}]}`, "rows"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Kind != KindMissingField || verr.Field != tc.field {
				t.Errorf("got kind=%q field=%q, want missing %q", verr.Kind, verr.Field, tc.field)
			}
		})
	}
}

func TestParseRowLengthMismatch(t *testing.T) {
	raw := `{"sections": [
		{"type": "paragraph", "text": "ok"},
		{"type": "table", "headers": ["A", "B"], "rows": [["1", "2"], ["1", "2", "3"]]}
	]}`

	_, err := Parse([]byte(raw))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindRowLengthMismatch {
		t.Errorf("kind = %q, want %q", verr.Kind, KindRowLengthMismatch)
	}
	if verr.SectionIndex != 1 {
		t.Errorf("section index = %d, want 1", verr.SectionIndex)
	}
}

func TestParseKeyValueRowsMustBePairs(t *testing.T) {
	_, err := Parse([]byte(`{"sections": [{"type": "key_value_table", "rows": [["k", "v", "extra"]]}]}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindRowLengthMismatch {
		t.Errorf("kind = %q, want %q", verr.Kind, KindRowLengthMismatch)
	}
}

func TestParseClampsHeadingLevel(t *testing.T) {
	desc, err := Parse([]byte(`{"sections": [
		{"type": "heading", "level": 0, "text": "low"},
		{"type": "heading", "level": 9, "text": "high"}
	]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if desc.Sections[0].Level != 1 {
		t.Errorf("level 0 clamped to %d, want 1", desc.Sections[0].Level)
	}
	if desc.Sections[1].Level != 4 {
		t.Errorf("level 9 clamped to %d, want 4", desc.Sections[1].Level)
	}
}

func TestParseSpacerDefaultSize(t *testing.T) {
	desc, err := Parse([]byte(`{"sections": [{"type": "spacer"}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if desc.Sections[0].Size != DefaultSpacerSize {
		t.Errorf("spacer size = %v, want %v", desc.Sections[0].Size, DefaultSpacerSize)
	}
}
