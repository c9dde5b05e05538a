package markup

import (
	"reflect"
	"testing"
)

func TestParseRuns(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Run
	}{
		{
			name: "plain",
			in:   "hello world",
			want: []Run{{Text: "hello world"}},
		},
		{
			name: "bold and italic",
			in:   "**Led** team of _5_",
			want: []Run{
				{Text: "Led", Bold: true},
				{Text: " team of "},
				{Text: "5", Italic: true},
			},
		},
		{
			name: "unclosed markers stay plain",
			in:   "**open and _dangling",
			want: []Run{{Text: "**open and _dangling"}},
		},
		{
			name: "non greedy spans",
			in:   "**a** x **b**",
			want: []Run{
				{Text: "a", Bold: true},
				{Text: " x "},
				{Text: "b", Bold: true},
			},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseRuns(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseRuns(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	text := "**Led** team of _5_\n• Shipped X\n1. Launched Y"
	lines := ParseLines(text)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Kind != LinePlain {
		t.Errorf("line 0 kind = %v, want plain", lines[0].Kind)
	}
	if lines[1].Kind != LineBullet || lines[1].Marker != "•" || lines[1].Content != "Shipped X" {
		t.Errorf("line 1 = %+v, want bullet •/Shipped X", lines[1])
	}
	if lines[2].Kind != LineOrdered || lines[2].Number != "1" || lines[2].Delim != '.' || lines[2].Content != "Launched Y" {
		t.Errorf("line 2 = %+v, want ordered 1./Launched Y", lines[2])
	}
}

func TestParseLinesMarkerVariants(t *testing.T) {
	cases := []struct {
		in     string
		kind   LineKind
		marker string
	}{
		{"- dash item", LineBullet, "-"},
		{"* star item", LineBullet, "*"},
		{"> quote item", LineBullet, ">"},
		{"[ ] todo item", LineBullet, "[ ]"},
		{"[x] done item", LineBullet, "[x]"},
		{"[X] done item", LineBullet, "[X]"},
		{"3) paren ordered", LineOrdered, ""},
		{"**bold** not a bullet", LinePlain, ""},
		{"-no space means plain", LinePlain, ""},
	}
	for _, tc := range cases {
		got := ParseLines(tc.in)
		if len(got) != 1 {
			t.Fatalf("ParseLines(%q) returned %d lines", tc.in, len(got))
		}
		if got[0].Kind != tc.kind {
			t.Errorf("ParseLines(%q) kind = %v, want %v", tc.in, got[0].Kind, tc.kind)
		}
		if tc.marker != "" && got[0].Marker != tc.marker {
			t.Errorf("ParseLines(%q) marker = %q, want %q", tc.in, got[0].Marker, tc.marker)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	texts := []string{
		"**Led** team of _5_\n• Shipped X\n1. Launched Y",
		"plain only",
		"- a\n- b\n\n2) c",
		"  indented plain\n\t• tabbed bullet",
	}
	for _, text := range texts {
		if got := Encode(ParseLines(text)); got != text {
			t.Errorf("round trip mismatch:\n in  %q\n out %q", text, got)
		}
	}
}

func TestParseLinesIdempotent(t *testing.T) {
	text := "• Shipped X\n1. Launched Y\nplain"
	once := ParseLines(text)
	twice := ParseLines(Encode(once))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("decode not idempotent:\n once  %#v\n twice %#v", once, twice)
	}
}
