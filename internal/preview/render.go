package preview

import (
	"fmt"
	"html/template"
	"strings"

	"resumecloner/internal/resume"
)

// PageWidthPx 是预览画布宽度，对应 96DPI 下的 210mm。
const PageWidthPx = 794

var tmpl = template.Must(template.New("preview").Parse(previewTemplate))

// Render 将文档投影为完整的预览 HTML 页面。
// 模板 ID 未命中注册表时回退到默认模板。
func Render(doc resume.Document) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, buildView(doc)); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return b.String(), nil
}
