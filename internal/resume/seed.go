package resume

import "resumecloner/internal/catalog"

// defaultStyle 返回新文档的默认版式参数。
func defaultStyle(doc *Document) {
	doc.NameFontSize = 24
	doc.SectionHeaderFontSize = 16
	doc.RoleFontSize = 13
	doc.BodyFontSize = 10
	doc.ContactFontSize = 9
	doc.HeaderTopPadding = 0
	doc.HeaderBottomPadding = 16
	doc.HeaderContentSpacing = 24
	doc.SummaryBottomSpacing = 32
	doc.SectionTitleMargin = 16
	doc.ModuleSpacing = 32
	doc.ItemSpacing = 16
	doc.LineHeight = 1.5
}

// New 返回空文档：三个占位分节与默认版式参数。
func New() Document {
	doc := Document{
		Sections: []Section{
			{ID: "1", Type: SectionDetailList, Title: "工作经历", Position: PositionMain, Items: []Item{}},
			{ID: "2", Type: SectionDetailList, Title: "教育背景", Position: PositionMain, Items: []Item{}},
			{ID: "3", Type: SectionTagList, Title: "专业技能", Position: PositionSidebar, Items: []Item{}},
		},
		TemplateID:  catalog.Default().ID,
		AccentColor: catalog.Default().Colors.Primary,
		FontFamily:  "sans",
	}
	defaultStyle(&doc)
	return doc
}

// NewFromTemplate 以指定模板为起点创建空文档，主色取自模板。
func NewFromTemplate(tpl catalog.Template) Document {
	doc := Document{
		Sections: []Section{
			{ID: "1", Type: SectionDetailList, Title: "Experience", Position: PositionMain, Items: []Item{}},
			{ID: "2", Type: SectionDetailList, Title: "Education", Position: PositionMain, Items: []Item{}},
			{ID: "3", Type: SectionTagList, Title: "Skills", Position: PositionSidebar, Items: []Item{}},
		},
		TemplateID:  tpl.ID,
		AccentColor: tpl.Colors.Primary,
		FontFamily:  "sans",
	}
	defaultStyle(&doc)
	return doc
}

// Example 返回示例文档，供草稿格式指引复制。
func Example() Document {
	doc := Document{
		PersonalInfo: PersonalInfo{
			FullName:    "张小明",
			JobTitle:    "资深产品经理",
			Email:       "xiaoming.zhang@example.com",
			Phone:       "+86 138-0000-0000",
			Location:    "中国，北京",
			Website:     "xiaoming.design",
			Summary:     "拥有 8 年互联网产品设计与管理经验，曾主导多款千万级 DAU 产品的迭代升级。擅长用户需求分析、复杂系统架构设计及跨部门协作。追求极致的用户体验，致力于通过技术创新解决用户痛点。",
			DateOfBirth: "1992年3月15日",
		},
		Sections: []Section{
			{
				ID: "exp", Type: SectionDetailList, Title: "工作经历", Position: PositionMain,
				Items: []Item{
					DetailItem{
						ID: "e1", Title: "资深产品经理", Subtitle: "字节跳动 (ByteDance)", Date: "2021 — 至今",
						Description: "负责核心短视频流的推荐算法策略优化，提升用户留存率 15%。\n主导并落地了全新的社交模块，首月上线即获得 500 万新增用户。\n管理并辅导 5 名初级产品经理，建立了一套标准化的需求评审流程。",
					},
					DetailItem{
						ID: "e2", Title: "产品经理", Subtitle: "美团 (Meituan)", Date: "2018 — 2021",
						Description: "负责外卖配送系统的优化，将平均配送时长缩短了 8%。\n通过对用户画像的精准分析，将营销券的转化率提升了 20%。",
					},
				},
			},
			{
				ID: "edu", Type: SectionDetailList, Title: "教育背景", Position: PositionMain,
				Items: []Item{
					DetailItem{ID: "ed1", Title: "计算机科学硕士", Subtitle: "北京大学", Date: "2015 — 2018", Description: "研究方向：人工智能与人机交互。"},
				},
			},
			{
				ID: "skills", Type: SectionTagList, Title: "专业技能", Position: PositionSidebar,
				Items: []Item{
					SkillItem{ID: "s1", Name: "Figma"},
					SkillItem{ID: "s2", Name: "数据分析 (SQL)"},
					SkillItem{ID: "s3", Name: "Python"},
					SkillItem{ID: "s4", Name: "敏捷开发"},
					SkillItem{ID: "s5", Name: "英语流利"},
				},
			},
		},
		TemplateID:  "t1",
		AccentColor: "#1e3a8a",
		FontFamily:  "sans",
	}
	defaultStyle(&doc)
	return doc
}
