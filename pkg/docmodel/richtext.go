package docmodel

import "strings"

// TextSpan is one run of paragraph text with a single formatting state.
type TextSpan struct {
	Text string
	Bold bool
}

// boldMarker delimits bold spans inside paragraph text.
const boldMarker = "**"

// SplitBold splits paragraph text on ** markers into plain and bold spans.
// Markers are stripped and parsing is non-recursive. With an odd marker
// count the text after the last marker keeps the bold state it opened, so
// "**unterminated" yields a single bold span. Empty spans are dropped.
func SplitBold(text string) []TextSpan {
	var spans []TextSpan
	bold := false
	for {
		i := strings.Index(text, boldMarker)
		if i < 0 {
			if text != "" {
				spans = append(spans, TextSpan{Text: text, Bold: bold})
			}
			return spans
		}
		if i > 0 {
			spans = append(spans, TextSpan{Text: text[:i], Bold: bold})
		}
		bold = !bold
		text = text[i+len(boldMarker):]
	}
}
