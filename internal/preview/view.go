// Package preview 把简历文档投影为 A4 宽度（794px @96DPI）的 HTML。
// 该输出既是预览端点的响应，也是栅格化 PDF 的截图来源。
package preview

import (
	"html"
	"html/template"
	"strings"

	"resumecloner/internal/catalog"
	"resumecloner/internal/layout"
	"resumecloner/internal/markup"
	"resumecloner/internal/resume"
)

// viewData 是模板执行时的根对象。所有富文本在构建阶段完成解码与转义。
type viewData struct {
	Doc  resume.Document
	Tpl  catalog.Template
	Plan layout.Plan

	FontCSS template.CSS
	Accent  string
	Contact []string
	Summary []lineView

	// Photo 为空时不渲染头像。数据来自文档自身（上传页截图的 data URL），
	// 标准的 URL 过滤会拦截 data: 协议，因此显式标记为可信。
	Photo       template.URL
	PhotoPx     int
	PhotoBorder bool

	Left  []sectionView
	Right []sectionView
}

type sectionView struct {
	Title    string
	IsTags   bool
	Tags     []string
	Details  []detailView
	Sidebar  bool
	ShowDot  bool
	TitleCSS template.CSS
}

type detailView struct {
	Title    string
	Subtitle string
	Date     string
	Lines    []lineView
}

type lineView struct {
	Bullet  bool
	Ordered bool
	Marker  string
	HTML    template.HTML
}

func buildView(doc resume.Document) viewData {
	tpl, err := catalog.Lookup(doc.TemplateID)
	if err != nil {
		tpl = catalog.Default()
	}
	plan := layout.PlanFor(tpl)

	accent := doc.AccentColor
	if accent == "" {
		accent = tpl.Colors.Primary
	}

	v := viewData{
		Doc:     doc,
		Tpl:     tpl,
		Plan:    plan,
		FontCSS: template.CSS(catalog.LookupFont(doc.FontFamily).CSS),
		Accent:  accent,
		Contact: contactItems(doc.PersonalInfo),
		Summary: buildLines(doc.PersonalInfo.Summary),
	}
	if doc.PersonalInfo.ProfilePicture != "" {
		v.Photo = template.URL(doc.PersonalInfo.ProfilePicture)
		v.PhotoPx, v.PhotoBorder = photoStyle(tpl.Structure, plan)
	}

	left, right := layout.SplitSections(plan, doc.Sections)
	v.Left = buildSections(left, tpl.Structure == catalog.StructureSidebarLeft, plan, accent)
	v.Right = buildSections(right, tpl.Structure == catalog.StructureSidebarRight, plan, accent)
	return v
}

// photoStyle 返回各结构的头像尺寸与描边：侧栏结构在侧栏顶部放大图，
// 页眉内结构随页眉密度缩小。
func photoStyle(structure catalog.Structure, plan layout.Plan) (px int, border bool) {
	switch {
	case plan.TwoColumn && !plan.HeaderSpansColumns:
		return 128, true
	case structure == catalog.StructureMinimal:
		return 80, false
	case structure == catalog.StructureCompactGrid:
		return 64, false
	case structure == catalog.StructureClassic:
		return 96, true
	default:
		return 96, false
	}
}

// titleCSS 计算分节标题的装饰样式。
func titleCSS(plan layout.Plan, sidebar bool, accent string) template.CSS {
	switch plan.TitleStyle {
	case layout.TitleUnderline:
		return template.CSS("color:" + accent + ";border-bottom:2px solid " + accent + ";padding-bottom:8px")
	case layout.TitleSidebar:
		if sidebar {
			if plan.DarkSidebar {
				return "color:#fff;border-bottom:1px solid rgba(255,255,255,0.3);padding-bottom:10px"
			}
			return "color:#000;border-bottom:1px solid #ccc;padding-bottom:10px"
		}
		return template.CSS("color:#000;border-bottom:3px solid " + accent + ";padding-bottom:8px")
	default:
		return ""
	}
}

func contactItems(info resume.PersonalInfo) []string {
	var out []string
	for _, s := range []string{info.Email, info.Phone, info.Location, info.DateOfBirth, info.Website} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func buildSections(sections []resume.Section, sidebar bool, plan layout.Plan, accent string) []sectionView {
	out := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		sv := sectionView{
			Title:    s.Title,
			Sidebar:  sidebar,
			ShowDot:  plan.TitleStyle == layout.TitleDot && !sidebar,
			TitleCSS: titleCSS(plan, sidebar, accent),
		}
		if s.Type == resume.SectionTagList {
			sv.IsTags = true
			for _, item := range s.Items {
				if skill, ok := item.(resume.SkillItem); ok {
					sv.Tags = append(sv.Tags, skill.Name)
				}
			}
		} else {
			for _, item := range s.Items {
				detail, ok := item.(resume.DetailItem)
				if !ok {
					continue
				}
				sv.Details = append(sv.Details, detailView{
					Title:    detail.Title,
					Subtitle: detail.Subtitle,
					Date:     detail.Date,
					Lines:    buildLines(detail.Description),
				})
			}
		}
		out = append(out, sv)
	}
	return out
}

func buildLines(text string) []lineView {
	lines := markup.ParseLines(text)
	out := make([]lineView, 0, len(lines))
	for _, l := range lines {
		lv := lineView{HTML: renderRuns(l.Content)}
		switch l.Kind {
		case markup.LineBullet:
			lv.Bullet = true
			lv.Marker = l.Marker
		case markup.LineOrdered:
			lv.Ordered = true
			lv.Marker = l.Number + string(l.Delim)
		}
		out = append(out, lv)
	}
	return out
}

// renderRuns 将行内标记渲染为转义后的 HTML 片段。
func renderRuns(text string) template.HTML {
	var b strings.Builder
	for _, r := range markup.ParseRuns(text) {
		escaped := html.EscapeString(r.Text)
		switch {
		case r.Bold:
			b.WriteString("<strong>" + escaped + "</strong>")
		case r.Italic:
			b.WriteString("<em>" + escaped + "</em>")
		default:
			b.WriteString(escaped)
		}
	}
	return template.HTML(b.String())
}
