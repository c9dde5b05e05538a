package extract

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with preamble", "Here you go:\n```json\n{\"a\":1}\n```\nDone.", `{"a":1}`},
		{"brace recovery", "Sure! {\"a\":1} hope that helps", `{"a":1}`},
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"no json at all", "  nothing here  ", "nothing here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.in); got != tc.want {
				t.Fatalf("ExtractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRawRejectsMalformed(t *testing.T) {
	if _, err := ParseRaw([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
