package worker

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestRenderThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1985, 2807))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	thumb, err := renderThumbnail(buf.Bytes())
	if err != nil {
		t.Fatalf("renderThumbnail: %v", err)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail is not a jpeg: %v", err)
	}
	if cfg.Width != thumbnailWidth {
		t.Errorf("thumbnail width = %d, want %d", cfg.Width, thumbnailWidth)
	}
	// 等比缩放：2807/1985 ≈ 1.414。
	wantHeight := 2807 * thumbnailWidth / 1985
	if cfg.Height != wantHeight {
		t.Errorf("thumbnail height = %d, want %d", cfg.Height, wantHeight)
	}
}

func TestScaleToWidthKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 300))
	if got := scaleToWidth(img, 400); got != img {
		t.Errorf("images narrower than target should pass through untouched")
	}
}

func TestNotifyChannel(t *testing.T) {
	if got := NotifyChannel(42); got != "draft_notify:42" {
		t.Errorf("NotifyChannel(42) = %q", got)
	}
}
