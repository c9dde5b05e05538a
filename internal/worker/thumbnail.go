package worker

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

const (
	thumbnailWidth   = 400
	thumbnailQuality = 80
)

// renderThumbnail 把截图 PNG 压成固定宽度的 JPEG 缩略图。
// 等比缩放用最近邻采样，缩略图对精度不敏感。
func renderThumbnail(capturePNG []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(capturePNG))
	if err != nil {
		return nil, fmt.Errorf("decode capture png: %w", err)
	}

	scaled := scaleToWidth(src, thumbnailWidth)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() <= width || b.Dx() == 0 {
		return src
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		sy := b.Min.Y + y*b.Dy()/height
		for x := 0; x < width; x++ {
			sx := b.Min.X + x*b.Dx()/width
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
