package raster

import "testing"

func TestFileName(t *testing.T) {
	cases := []struct {
		fullName string
		ext      string
		want     string
	}{
		{"Zhang Xiao Ming", "pdf", "Zhang_Xiao_Ming.pdf"},
		{"张小明", "docx", "张小明.docx"},
		{"A  B\tC", "pdf", "A_B_C.pdf"},
		{"", "pdf", "Resume.pdf"},
	}
	for _, tc := range cases {
		if got := FileName(tc.fullName, tc.ext); got != tc.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tc.fullName, tc.ext, got, tc.want)
		}
	}
}
