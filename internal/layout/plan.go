// Package layout 把模板的结构标签映射为统一的版面计划，
// 供 HTML 预览与 DOCX 两个渲染端共同消费，避免各自散落结构分支。
package layout

import (
	"strings"

	"resumecloner/internal/catalog"
	"resumecloner/internal/resume"
)

// TitleStyle 是分节标题的装饰风格。
type TitleStyle int

const (
	TitleUnderline TitleStyle = iota // 主色下划线（classic / two-column-header / compact-grid）
	TitleDot                         // 标题前主色圆点（modern）
	TitleSidebar                     // 侧栏自适应（深色侧栏用白色细线，浅色用灰线）
	TitlePlain                       // 无装饰（minimal）
)

// Plan 是一个结构标签的完整版面描述。
type Plan struct {
	Structure   catalog.Structure
	TwoColumn   bool
	SidebarLeft bool // 仅 TwoColumn 且存在侧栏时有意义
	// 列宽百分比，左列在前。单栏结构为 100/0。
	LeftPercent  int
	RightPercent int
	// modern 的整宽主色页眉带。
	HeaderBand bool
	// two-column-header / compact-grid：页眉横跨两列。
	HeaderSpansColumns bool
	Centered           bool
	DarkSidebar        bool
	TitleStyle         TitleStyle
}

// IsDarkSidebar 判断侧栏底色是否为深色。
// 浅色系侧栏底色都以 #f 开头，据此取反。
func IsDarkSidebar(sidebarBg string) bool {
	if sidebarBg == "" {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(sidebarBg), "#f")
}

// PlanFor 返回模板对应的版面计划。纯函数。
func PlanFor(tpl catalog.Template) Plan {
	p := Plan{
		Structure:   tpl.Structure,
		LeftPercent: 100,
		Centered:    tpl.Centered(),
		DarkSidebar: IsDarkSidebar(tpl.Colors.SidebarBg),
		TitleStyle:  TitleUnderline,
	}

	switch tpl.Structure {
	case catalog.StructureModern:
		p.HeaderBand = true
		p.TitleStyle = TitleDot
	case catalog.StructureMinimal:
		p.TitleStyle = TitlePlain
	case catalog.StructureSidebarLeft:
		p.TwoColumn = true
		p.SidebarLeft = true
		p.LeftPercent, p.RightPercent = 32, 68
		p.TitleStyle = TitleSidebar
	case catalog.StructureSidebarRight:
		p.TwoColumn = true
		p.LeftPercent, p.RightPercent = 68, 32
		p.TitleStyle = TitleSidebar
	case catalog.StructureTwoColumnHeader:
		p.TwoColumn = true
		p.HeaderSpansColumns = true
		p.LeftPercent, p.RightPercent = 70, 30
	case catalog.StructureCompactGrid:
		p.TwoColumn = true
		p.HeaderSpansColumns = true
		p.LeftPercent, p.RightPercent = 50, 50
	}
	return p
}

// SplitSections 把分节分配到两列。
//
// compact-grid 按下标奇偶交替分配并忽略 position；其余双栏结构按
// position 分配（main 进宽列，sidebar 进窄列）。单栏结构全部进左列。
func SplitSections(p Plan, sections []resume.Section) (left, right []resume.Section) {
	if !p.TwoColumn {
		return sections, nil
	}

	if p.Structure == catalog.StructureCompactGrid {
		for i, s := range sections {
			if i%2 == 0 {
				left = append(left, s)
			} else {
				right = append(right, s)
			}
		}
		return left, right
	}

	var main, sidebar []resume.Section
	for _, s := range sections {
		if s.Position == resume.PositionSidebar {
			sidebar = append(sidebar, s)
		} else {
			main = append(main, s)
		}
	}

	if p.SidebarLeft {
		return sidebar, main
	}
	return main, sidebar
}

// SidebarOnLeft 报告窄侧栏列是否在左侧（仅对 sidebar-* 结构有意义）。
func (p Plan) SidebarOnLeft() bool { return p.TwoColumn && p.SidebarLeft }
