package docmodel

import (
	"reflect"
	"testing"
)

func TestSplitBold(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []TextSpan
	}{
		{
			"plain text",
			"no markers here",
			[]TextSpan{{Text: "no markers here"}},
		},
		{
			"single bold span",
			"Hello **world** today",
			[]TextSpan{
				{Text: "Hello "},
				{Text: "world", Bold: true},
				{Text: " today"},
			},
		},
		{
			"unterminated marker keeps trailing text bold",
			"**unterminated",
			[]TextSpan{{Text: "unterminated", Bold: true}},
		},
		{
			"bold at both ends",
			"**a** middle **b**",
			[]TextSpan{
				{Text: "a", Bold: true},
				{Text: " middle "},
				{Text: "b", Bold: true},
			},
		},
		{
			"adjacent markers produce no empty spans",
			"****x",
			[]TextSpan{{Text: "x"}},
		},
		{
			"empty input",
			"",
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitBold(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitBold(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}
