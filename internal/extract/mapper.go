package extract

import (
	"strings"

	"resumecloner/internal/catalog"
	"resumecloner/internal/resume"
)

// fallbackAccent 在模型与模板都给不出主色时兜底。
const fallbackAccent = "#3b82f6"

// Map 把宽松的转写结果收敛成合法文档：缺省字段补默认值、
// 条目重新发号、按识别出的结构与字体挑选最接近的模板。
// sourceImageURL 原样写回文档，编辑端用它展示对照原稿。
func Map(raw RawResume, gen resume.IDGenerator, sourceImageURL string) resume.Document {
	sections := make([]resume.Section, 0, len(raw.Sections))
	for _, sec := range raw.Sections {
		sections = append(sections, mapSection(sec, gen))
	}

	visual := raw.VisualAnalysis
	structure := catalog.Structure(visual.Structure)
	if structure == "" {
		structure = catalog.StructureClassic
	}
	font := visual.FontStyle
	if font == "" {
		font = "sans"
	}
	tpl := pickTemplate(structure, font)

	accent := visual.AccentColor
	if accent == "" {
		accent = tpl.Colors.Primary
	}
	if accent == "" {
		accent = fallbackAccent
	}

	doc := resume.Document{
		PersonalInfo: resume.PersonalInfo{
			FullName:    raw.PersonalInfo.FullName,
			JobTitle:    raw.PersonalInfo.JobTitle,
			Email:       raw.PersonalInfo.Email,
			Phone:       raw.PersonalInfo.Phone,
			Location:    raw.PersonalInfo.Location,
			Summary:     raw.PersonalInfo.Summary,
			Website:     raw.PersonalInfo.Website,
			DateOfBirth: raw.PersonalInfo.DateOfBirth,
		},
		Sections:       sections,
		TemplateID:     tpl.ID,
		AccentColor:    accent,
		FontFamily:     font,
		SourceImageURL: sourceImageURL,
	}
	extractionStyle(&doc)
	return doc
}

func mapSection(sec RawSection, gen resume.IDGenerator) resume.Section {
	typ := resume.SectionType(sec.Type)
	if typ != resume.SectionTagList {
		typ = resume.SectionDetailList
	}
	pos := resume.Position(sec.Position)
	if pos != resume.PositionSidebar {
		pos = resume.PositionMain
	}
	title := sec.Title
	if title == "" {
		title = "Section"
	}

	items := make([]resume.Item, 0, len(sec.Items))
	for _, item := range sec.Items {
		if typ == resume.SectionTagList {
			name := item.Name
			if name == "" {
				name = item.Title
			}
			if name == "" {
				name = "Skill"
			}
			items = append(items, resume.SkillItem{ID: gen.NewID(), Name: name})
		} else {
			itemTitle := item.Title
			if itemTitle == "" {
				itemTitle = "Title"
			}
			items = append(items, resume.DetailItem{
				ID:          gen.NewID(),
				Title:       itemTitle,
				Subtitle:    item.Subtitle,
				Date:        item.Date,
				Description: item.Description,
			})
		}
	}

	return resume.Section{
		ID:       gen.NewID(),
		Type:     typ,
		Title:    title,
		Position: pos,
		Items:    items,
	}
}

// pickTemplate 先按结构过滤，结构无匹配退回 classic，
// 再按字体提示挑选，最终退回过滤结果或注册表首位。
func pickTemplate(structure catalog.Structure, fontHint string) catalog.Template {
	candidates := catalog.FilterByStructure(structure)
	if len(candidates) == 0 {
		candidates = catalog.FilterByStructure(catalog.StructureClassic)
	}
	if len(candidates) == 0 {
		return catalog.Default()
	}

	for _, t := range candidates {
		if strings.Contains(t.Fonts.Body, fontHint) {
			return t
		}
	}
	return candidates[0]
}

// extractionStyle 的间距默认值比编辑器默认更紧凑，贴近扫描稿的观感。
func extractionStyle(doc *resume.Document) {
	doc.NameFontSize = 24
	doc.SectionHeaderFontSize = 16
	doc.RoleFontSize = 13
	doc.BodyFontSize = 10
	doc.ContactFontSize = 9
	doc.HeaderTopPadding = 20
	doc.HeaderBottomPadding = 24
	doc.HeaderContentSpacing = 24
	doc.SummaryBottomSpacing = 32
	doc.SectionTitleMargin = 12
	doc.ModuleSpacing = 24
	doc.ItemSpacing = 16
	doc.LineHeight = 1.5
}
