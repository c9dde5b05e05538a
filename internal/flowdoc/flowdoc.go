// Package flowdoc 独立于 HTML 预览，把简历文档重建为 Word 流式文档。
// 结构决策与版面计划保持一致：双栏结构用无边框双列表格，modern 的
// 主色页眉用整宽单元格底纹表格，其余为线性段落序列。
package flowdoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"resumecloner/internal/catalog"
	"resumecloner/internal/layout"
	"resumecloner/internal/markup"
	"resumecloner/internal/resume"
)

// 页面可用宽度（twips），A4 减去页边距后的近似值，用于表格列宽。
const pageWidthTwips = 10000

// generator 聚合一次导出所需的派生状态。
type generator struct {
	doc  resume.Document
	tpl  catalog.Template
	plan layout.Plan

	font        string
	accent      string // 不带 # 的十六进制
	text        string
	sidebarBg   string
	sidebarText string
	darkSidebar bool
}

// Write 生成 DOCX 并写入 w。
func Write(doc resume.Document, w io.Writer) error {
	g := newGenerator(doc)
	file := g.build()
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func newGenerator(doc resume.Document) *generator {
	tpl, err := catalog.Lookup(doc.TemplateID)
	if err != nil {
		tpl = catalog.Default()
	}

	accent := doc.AccentColor
	if accent == "" {
		accent = tpl.Colors.Primary
	}

	sidebarBg := "F8FAFC"
	if tpl.Colors.SidebarBg != "" {
		sidebarBg = hexColor(tpl.Colors.SidebarBg)
	}
	// 深色侧栏判定来自共享版面计划，与 HTML 预览保持同一决策。
	plan := layout.PlanFor(tpl)
	sidebarText := hexColor(tpl.Colors.Text)
	if plan.DarkSidebar {
		sidebarText = "DDDDDD"
	}

	return &generator{
		doc:         doc,
		tpl:         tpl,
		plan:        plan,
		font:        FontName(doc.FontFamily),
		accent:      hexColor(accent),
		text:        hexColor(tpl.Colors.Text),
		sidebarBg:   sidebarBg,
		sidebarText: sidebarText,
		darkSidebar: plan.DarkSidebar,
	}
}

func (g *generator) build() *docx.Docx {
	file := docx.New().WithDefaultTheme()
	if g.plan.TwoColumn {
		g.buildTwoColumn(file, g.plan.HeaderSpansColumns)
	} else {
		g.buildSingleColumn(file)
	}
	return file
}

// run 是所有文字落盘的统一入口，保证字体一致。
func (g *generator) run(p *docx.Paragraph, text string, sizePx int, color string) *docx.Run {
	return p.AddText(text).
		Font(g.font, g.font, g.font, "").
		Size(halfPoints(sizePx)).
		Color(color)
}

func (g *generator) buildSingleColumn(file *docx.Docx) {
	if g.plan.HeaderBand {
		// modern：整宽单元格表格承载主色页眉带。
		tbl := file.AddTable(1, 1, pageWidthTwips, nil)
		cell := tbl.TableRows[0].TableCells[0]
		cell.Shade("clear", "auto", g.accent)
		g.writeHeader(cell.AddParagraph(), true)
		g.writeContact(cell.AddParagraph(), "FFFFFF")
	} else {
		align := "left"
		if g.plan.Centered {
			align = "center"
		}
		g.writeHeader(file.AddParagraph().Justification(align), false)
		g.writeContact(file.AddParagraph().Justification(align), "444444")
	}

	g.writeSummary(file)
	for _, s := range g.doc.Sections {
		g.writeSection(paragraphAdder{file: file}, s, false)
	}
}

func (g *generator) buildTwoColumn(file *docx.Docx, headerSpans bool) {
	if headerSpans {
		g.writeHeader(file.AddParagraph(), false)
		g.writeContact(file.AddParagraph(), "444444")
		g.writeSummary(file)
	}

	left, right := layout.SplitSections(g.plan, g.doc.Sections)
	leftWidth := int64(pageWidthTwips * g.plan.LeftPercent / 100)
	rightWidth := int64(pageWidthTwips - int(leftWidth))

	tbl := file.AddTableTwips([]int64{0}, []int64{leftWidth, rightWidth}, pageWidthTwips, nil)
	leftCell := tbl.TableRows[0].TableCells[0]
	rightCell := tbl.TableRows[0].TableCells[1]

	leftSidebar := g.tpl.Structure == catalog.StructureSidebarLeft
	rightSidebar := g.tpl.Structure == catalog.StructureSidebarRight
	if leftSidebar {
		leftCell.Shade("clear", "auto", g.sidebarBg)
	}
	if rightSidebar {
		rightCell.Shade("clear", "auto", g.sidebarBg)
	}

	if !headerSpans {
		// 侧栏结构：页眉进主列，联系方式进侧栏列。
		mainCell, sideCell := rightCell, leftCell
		if rightSidebar {
			mainCell, sideCell = leftCell, rightCell
		}
		g.writeHeader(mainCell.AddParagraph(), false)
		contactColor := "444444"
		if g.darkSidebar {
			contactColor = g.sidebarText
		}
		g.writeContact(sideCell.AddParagraph(), contactColor)
	}

	for _, s := range left {
		g.writeSection(paragraphAdder{cell: leftCell}, s, leftSidebar)
	}
	for _, s := range right {
		g.writeSection(paragraphAdder{cell: rightCell}, s, rightSidebar)
	}
}

// paragraphAdder 统一文档体与单元格两种段落容器。
type paragraphAdder struct {
	file *docx.Docx
	cell *docx.WTableCell
}

func (a paragraphAdder) add() *docx.Paragraph {
	if a.cell != nil {
		return a.cell.AddParagraph()
	}
	return a.file.AddParagraph()
}

func (g *generator) writeHeader(p *docx.Paragraph, onBand bool) {
	nameColor := "000000"
	if onBand {
		nameColor = "FFFFFF"
	}
	g.run(p, strings.ToUpper(g.doc.PersonalInfo.FullName), g.doc.NameFontSize, nameColor).Bold()

	if g.doc.PersonalInfo.JobTitle != "" {
		sepColor, titleColor := "999999", "666666"
		if onBand {
			sepColor, titleColor = "CCCCCC", "EEEEEE"
		}
		g.run(p, "  |  ", g.doc.NameFontSize, sepColor)
		g.run(p, strings.ToUpper(g.doc.PersonalInfo.JobTitle), g.doc.NameFontSize, titleColor)
	}
}

func (g *generator) writeContact(p *docx.Paragraph, color string) {
	info := g.doc.PersonalInfo
	var parts []string
	for _, s := range []string{info.Email, info.Phone, info.Location, info.Website} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return
	}
	g.run(p, strings.Join(parts, "   |   "), g.doc.ContactFontSize, color)
}

func (g *generator) writeSummary(file *docx.Docx) {
	if g.doc.PersonalInfo.Summary == "" {
		return
	}
	align := "left"
	if g.plan.Centered {
		align = "center"
	}
	p := file.AddParagraph().Justification(align)
	g.writeStyledRuns(p, g.doc.PersonalInfo.Summary, "333333", g.doc.BodyFontSize, true)
	g.addSpacer(paragraphAdder{file: file}, g.doc.SummaryBottomSpacing)
}

func (g *generator) writeSection(into paragraphAdder, s resume.Section, sidebar bool) {
	titleColor := g.accent
	descColor := g.text
	if sidebar && g.darkSidebar {
		titleColor = "FFFFFF"
		descColor = g.sidebarText
	} else if g.tpl.Structure == catalog.StructureMinimal {
		titleColor = "999999"
	}

	g.run(into.add(), strings.ToUpper(s.Title), g.doc.SectionHeaderFontSize, titleColor).Bold()
	g.addSpacer(into, g.doc.SectionTitleMargin/2)

	if s.Type == resume.SectionTagList {
		var names []string
		for _, item := range s.Items {
			if skill, ok := item.(resume.SkillItem); ok && skill.Name != "" {
				names = append(names, skill.Name)
			}
		}
		if len(names) > 0 {
			g.run(into.add(), strings.Join(names, "  •  "), g.doc.BodyFontSize, descColor)
		}
	} else {
		for _, item := range s.Items {
			detail, ok := item.(resume.DetailItem)
			if !ok {
				continue
			}
			g.writeDetailItem(into, detail, sidebar, descColor)
		}
	}

	g.addSpacer(into, g.doc.ModuleSpacing)
}

func (g *generator) writeDetailItem(into paragraphAdder, item resume.DetailItem, sidebar bool, descColor string) {
	head := into.add()
	titleColor := "000000"
	if sidebar && g.darkSidebar {
		titleColor = "FFFFFF"
	}
	g.run(head, item.Title, g.doc.RoleFontSize, titleColor).Bold()
	if item.Subtitle != "" {
		g.run(head, "    |    ", g.doc.RoleFontSize, "BBBBBB")
		g.run(head, item.Subtitle, g.doc.BodyFontSize, g.accent).Bold()
	}

	if item.Date != "" {
		into.add().AddText(item.Date).
			Font(g.font, g.font, g.font, "").
			Size(strconv.Itoa(g.doc.BodyFontSize * 9 / 5)).
			Color("888888").
			Italic()
	}

	if item.Description != "" {
		for _, line := range markup.ParseLines(item.Description) {
			p := into.add()
			switch line.Kind {
			case markup.LineBullet:
				// 列表统一落成字面前缀，不生成原生编号结构。
				g.run(p, "• ", g.doc.BodyFontSize, descColor)
			case markup.LineOrdered:
				g.run(p, line.Number+string(line.Delim)+" ", g.doc.BodyFontSize, descColor)
			}
			g.writeStyledRuns(p, line.Content, descColor, g.doc.BodyFontSize, false)
		}
	}

	g.addSpacer(into, g.doc.ItemSpacing/2)
}

// writeStyledRuns 把行内标记解码为带样式的 Run 序列。
func (g *generator) writeStyledRuns(p *docx.Paragraph, text, color string, sizePx int, baseItalic bool) {
	for _, r := range markup.ParseRuns(text) {
		run := g.run(p, r.Text, sizePx, color)
		if r.Bold {
			run.Bold()
		}
		if r.Italic || baseItalic {
			run.Italic()
		}
	}
}

// addSpacer 写入一个空白段落近似像素间距（见 SpacerSize）。
func (g *generator) addSpacer(into paragraphAdder, px int) {
	if px <= 0 {
		return
	}
	into.add().AddText(" ").Size(SpacerSize(px)).Color("FFFFFF")
}

// halfPoints 按固定线性比例把像素字号换算为半磅字符串（px × 2）。
func halfPoints(px int) string {
	return strconv.Itoa(px * 2)
}

// SpacerSize 把像素间距换算为空白段落的半磅字号。
// 1px ≈ 0.75pt = 1.5 半磅，至少 2 半磅保证段落可见高度。
func SpacerSize(px int) string {
	hp := px * 3 / 2
	if hp < 2 {
		hp = 2
	}
	return strconv.Itoa(hp)
}

// FontName 把字体注册表 ID 映射为 Word 字体名。
func FontName(id string) string {
	switch id {
	case "serif":
		return "Times New Roman"
	case "mono":
		return "Courier New"
	case "classic":
		return "Helvetica"
	default:
		return "Arial"
	}
}

// hexColor 去掉前导 #，Word 的颜色值不带井号。
func hexColor(c string) string {
	return strings.TrimPrefix(c, "#")
}
