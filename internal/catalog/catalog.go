// Package catalog 维护固定的简历模板与字体注册表。
// 注册表是编译期常量数据，运行期只读。
package catalog

import "errors"

// Structure 是模板的版式结构标签。
type Structure string

const (
	StructureClassic         Structure = "classic"
	StructureModern          Structure = "modern"
	StructureMinimal         Structure = "minimal"
	StructureSidebarLeft     Structure = "sidebar-left"
	StructureSidebarRight    Structure = "sidebar-right"
	StructureTwoColumnHeader Structure = "two-column-header"
	StructureCompactGrid     Structure = "compact-grid"
)

// Colors 是模板的配色方案。SidebarBg 仅对侧栏结构有意义，可为空。
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
	SidebarBg  string `json:"sidebarBg,omitempty"`
}

// Fonts 指向字体注册表中的条目 ID。
type Fonts struct {
	Body     string `json:"body"`
	Headings string `json:"headings"`
}

// Template 是一个不可变的模板定义。
type Template struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Structure       Structure `json:"structure"`
	HeaderAlignment string    `json:"headerAlignment,omitempty"` // "left" | "center"，默认 left
	Colors          Colors    `json:"colors"`
	Fonts           Fonts     `json:"fonts"`
}

// Centered 返回模板头部是否居中对齐。
func (t Template) Centered() bool { return t.HeaderAlignment == "center" }

// Font 是字体注册表中的一个条目。
type Font struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CSS  string `json:"css"`
}

// ErrNotFound 表示模板 ID 不在注册表中。
var ErrNotFound = errors.New("catalog: template not found")

// Lookup 按 ID 查找模板。
func Lookup(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrNotFound
}

// Default 返回注册表的第一个模板，作为未知 ID 的兜底。
func Default() Template { return templates[0] }

// All 返回全部模板的副本。
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// FilterByStructure 返回指定结构的全部模板，保持注册表顺序。
func FilterByStructure(s Structure) []Template {
	var out []Template
	for _, t := range templates {
		if t.Structure == s {
			out = append(out, t)
		}
	}
	return out
}

// LookupFont 按 ID 查找字体，未命中时回退到第一个条目。
func LookupFont(id string) Font {
	for _, f := range fonts {
		if f.ID == id {
			return f
		}
	}
	return fonts[0]
}

// AllFonts 返回全部字体的副本。
func AllFonts() []Font {
	out := make([]Font, len(fonts))
	copy(out, fonts)
	return out
}
