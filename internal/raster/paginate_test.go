package raster

import "testing"

func TestPageCount(t *testing.T) {
	// 以 794px 宽为基准：一页高对应的像素高 = 794 * 297 / 210。
	const w = 794
	onePage := float64(w) * PageHeightMM / PageWidthMM

	cases := []struct {
		name  string
		ratio float64
		want  int
	}{
		{"exactly one page", 1.0, 1},
		{"within tolerance", 1.05, 1},
		{"just over tolerance", 1.06, 2},
		{"two and a bit", 2.3, 3},
		{"four pages", 4.0, 4},
		{"short content", 0.4, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := int(onePage * tc.ratio)
			if got := PageCount(w, h); got != tc.want {
				t.Fatalf("PageCount(%d, %d) = %d, want %d", w, h, got, tc.want)
			}
		})
	}
}

func TestPageCountDegenerateInput(t *testing.T) {
	if got := PageCount(0, 500); got != 1 {
		t.Errorf("zero width should yield 1 page, got %d", got)
	}
	if got := PageCount(794, 0); got != 1 {
		t.Errorf("zero height should yield 1 page, got %d", got)
	}
}

func TestContentHeightMM(t *testing.T) {
	// 2:1 高宽比 → 高度为 420mm。
	got := ContentHeightMM(1000, 2000)
	if got < 419.9 || got > 420.1 {
		t.Fatalf("ContentHeightMM = %f, want 420", got)
	}
}
