package raster

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// BuildPDF 把整页截图组装为 A4 纵向 PDF。
//
// 单页时图像被拉伸填满整页；多页时每一页都绘制同一张完整图像，
// y 偏移为已消费高度的负值，形成固定间隔的硬分页。不做任何
// 内容感知的避让，跨页截断是预期行为。
func BuildPDF(png []byte, widthPx, heightPx int) ([]byte, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", widthPx, heightPx)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opts, bytes.NewReader(png))
	if pdf.Err() {
		return nil, fmt.Errorf("register capture image: %w", pdf.Error())
	}

	imgHeightMM := ContentHeightMM(widthPx, heightPx)
	pages := PageCount(widthPx, heightPx)

	if pages == 1 {
		pdf.AddPage()
		pdf.ImageOptions("capture", 0, 0, PageWidthMM, PageHeightMM, false, opts, 0, "")
	} else {
		for i := 0; i < pages; i++ {
			pdf.AddPage()
			pdf.ImageOptions("capture", 0, -float64(i)*PageHeightMM, PageWidthMM, imgHeightMM, false, opts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}
