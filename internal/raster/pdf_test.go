package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func capturePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestBuildPDFSinglePage(t *testing.T) {
	data := capturePNG(t, 100, 140)
	out, err := BuildPDF(data, 100, 140)
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
	// 单页文档只有一个 /Page 对象。
	if n := bytes.Count(out, []byte("/Type /Page\n")); n != 1 {
		t.Errorf("page objects = %d, want 1", n)
	}
}

func TestBuildPDFMultiPage(t *testing.T) {
	// 高宽比 2.3 页 → 3 页。
	w := 200
	h := int(float64(w) * PageHeightMM / PageWidthMM * 2.3)
	data := capturePNG(t, w, h)
	out, err := BuildPDF(data, w, h)
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if n := bytes.Count(out, []byte("/Type /Page\n")); n != 3 {
		t.Errorf("page objects = %d, want 3", n)
	}
}

func TestBuildPDFRejectsBadSize(t *testing.T) {
	if _, err := BuildPDF(nil, 0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
}
