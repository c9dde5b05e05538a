package raster

import "regexp"

var whitespaceRe = regexp.MustCompile(`\s+`)

// FileName 根据姓名生成导出文件名：空白折叠为下划线，空名用占位名。
// ext 不带点，例如 "pdf"。
func FileName(fullName, ext string) string {
	name := whitespaceRe.ReplaceAllString(fullName, "_")
	if name == "" {
		name = "Resume"
	}
	return name + "." + ext
}
