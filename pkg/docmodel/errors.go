package docmodel

import "fmt"

// ValidationKind identifies the category of a validation failure.
type ValidationKind string

const (
	KindInvalidJSON        ValidationKind = "invalid_json"
	KindUnknownSectionType ValidationKind = "unknown_section_type"
	KindMissingField       ValidationKind = "missing_field"
	KindRowLengthMismatch  ValidationKind = "row_length_mismatch"
	KindInvalidValue       ValidationKind = "invalid_value"
)

// ValidationError reports a malformed document description. SectionIndex is
// the zero-based index of the offending section, or -1 for document-level
// problems.
type ValidationError struct {
	Kind         ValidationKind
	SectionIndex int
	Field        string
	Detail       string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindInvalidJSON:
		return fmt.Sprintf("invalid JSON document description: %s", e.Detail)
	case KindUnknownSectionType:
		return fmt.Sprintf("section %d: unknown section type %q", e.SectionIndex, e.Detail)
	case KindMissingField:
		if e.SectionIndex < 0 {
			return fmt.Sprintf("missing required field %q", e.Field)
		}
		return fmt.Sprintf("section %d: missing required field %q", e.SectionIndex, e.Field)
	case KindRowLengthMismatch, KindInvalidValue:
		if e.SectionIndex < 0 {
			return e.Detail
		}
		return fmt.Sprintf("section %d: %s", e.SectionIndex, e.Detail)
	}
	return fmt.Sprintf("section %d: invalid description", e.SectionIndex)
}
