// Package raster 负责 PDF 导出：截取预览 HTML 为位图，按 A4 比例
// 切分页数，并把同一张完整图以负向偏移绘制到每一页上。
package raster

import "math"

// A4 尺寸（mm）。
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// singlePageTolerance：内容高度不超过一页的 1.05 倍时强制单页，
// 吸收亚像素溢出，避免产生几乎空白的第二页。
const singlePageTolerance = 1.05

// ContentHeightMM 把像素尺寸换算为缩放到 210mm 宽度后的内容高度。
func ContentHeightMM(widthPx, heightPx int) float64 {
	if widthPx <= 0 {
		return 0
	}
	return float64(heightPx) * PageWidthMM / float64(widthPx)
}

// PageCount 计算导出 PDF 的页数。
// 内容高度在容差内时为 1 页，否则按整页高度向上取整。
func PageCount(widthPx, heightPx int) int {
	heightMM := ContentHeightMM(widthPx, heightPx)
	if heightMM <= 0 {
		return 1
	}
	if heightMM <= PageHeightMM*singlePageTolerance {
		return 1
	}
	return int(math.Ceil(heightMM / PageHeightMM))
}
