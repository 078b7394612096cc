package excel_handler

import (
	"errors"
	"reflect"
	"testing"

	"DocuOps/pkg/docmodel"
)

func TestParseTabularJSONRows(t *testing.T) {
	rows, err := parseTabular(`[["Name", "Age"], ["Ada", 36]]`)
	if err != nil {
		t.Fatalf("parseTabular failed: %v", err)
	}
	want := [][]any{{"Name", "Age"}, {"Ada", float64(36)}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestParseTabularCSVFallback(t *testing.T) {
	rows, err := parseTabular("Name,Age\nAda,36\nGrace,85,extra")
	if err != nil {
		t.Fatalf("parseTabular failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// Ragged CSV records are allowed.
	if len(rows[2]) != 3 {
		t.Errorf("third row has %d fields, want 3", len(rows[2]))
	}
	if rows[1][0] != "Ada" {
		t.Errorf("rows[1][0] = %v, want Ada", rows[1][0])
	}
}

func TestParseTabularBadJSON(t *testing.T) {
	_, err := parseTabular(`[{"not": "rows"}]`)
	var verr *docmodel.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != docmodel.KindInvalidJSON {
		t.Errorf("kind = %q, want %q", verr.Kind, docmodel.KindInvalidJSON)
	}
}
