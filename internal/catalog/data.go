package catalog

var fonts = []Font{
	{ID: "sans", Name: "标准无衬线 (Inter)", CSS: "ui-sans-serif, system-ui, sans-serif"},
	{ID: "serif", Name: "优雅衬线 (Georgia)", CSS: `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`},
	{ID: "modern", Name: "现代清爽 (Roboto)", CSS: `"Roboto", "Helvetica", "Arial", sans-serif`},
	{ID: "classic", Name: "经典商务", CSS: `"Helvetica Neue", Helvetica, Arial, sans-serif`},
}

var templates = []Template{
	{
		ID: "t1", Name: "商务精英 (Corporate)", Description: "深蓝色调，适合金融、法律等专业领域。",
		Structure: StructureClassic, HeaderAlignment: "left",
		Colors: Colors{Primary: "#1e3a8a", Secondary: "#eff6ff", Text: "#1e293b", Background: "#ffffff"},
		Fonts:  Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t2", Name: "现代主管 (Executive)", Description: "沉稳石板灰页眉，彰显领导力。",
		Structure: StructureModern, HeaderAlignment: "left",
		Colors: Colors{Primary: "#334155", Secondary: "#f1f5f9", Text: "#0f172a", Background: "#ffffff"},
		Fonts:  Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t3", Name: "极简学术 (Minimal)", Description: "居中对齐，适合学术研究与文学岗位。",
		Structure: StructureMinimal, HeaderAlignment: "center",
		Colors: Colors{Primary: "#4b5563", Secondary: "#f9fafb", Text: "#111827", Background: "#ffffff"},
		Fonts:  Fonts{Body: "serif", Headings: "serif"},
	},
	{
		ID: "t4", Name: "科技先锋 (Tech Sidebar)", Description: "左侧深蓝边栏，适合程序员与技术专家。",
		Structure: StructureSidebarLeft,
		Colors:    Colors{Primary: "#4338ca", Secondary: "#eef2ff", Text: "#1e1b4b", Background: "#ffffff", SidebarBg: "#1e1b4b"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t5", Name: "创意设计 (Designer)", Description: "柔和紫罗兰，适合UI/UX与创意设计人员。",
		Structure: StructureSidebarRight,
		Colors:    Colors{Primary: "#7c3aed", Secondary: "#f5f3ff", Text: "#2e1065", Background: "#ffffff", SidebarBg: "#faf5ff"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t6", Name: "清新自然 (Nature)", Description: "平衡的双栏结构，活力的翡翠绿。",
		Structure: StructureTwoColumnHeader,
		Colors:    Colors{Primary: "#059669", Secondary: "#ecfdf5", Text: "#064e3b", Background: "#ffffff"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t7", Name: "红宝石商务 (Ruby)", Description: "醒目的深红色调，适合市场与公关经理。",
		Structure: StructureClassic, HeaderAlignment: "left",
		Colors: Colors{Primary: "#991b1b", Secondary: "#fef2f2", Text: "#450a0a", Background: "#ffffff"},
		Fonts:  Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t8", Name: "午夜极客 (Midnight)", Description: "全黑侧边栏，极具冲击力的极客风。",
		Structure: StructureSidebarLeft,
		Colors:    Colors{Primary: "#0f172a", Secondary: "#1e293b", Text: "#f8fafc", Background: "#ffffff", SidebarBg: "#0f172a"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t9", Name: "经典雅致 (Ivory)", Description: "米白色调配合衬线字体，优雅稳重。",
		Structure: StructureMinimal, HeaderAlignment: "left",
		Colors: Colors{Primary: "#78350f", Secondary: "#fffbeb", Text: "#451a03", Background: "#fffcf5"},
		Fonts:  Fonts{Body: "serif", Headings: "serif"},
	},
	{
		ID: "t10", Name: "黄金比例 (Golden)", Description: "明亮的金色点缀，适合奢侈品与高端咨询。",
		Structure: StructureSidebarRight,
		Colors:    Colors{Primary: "#a16207", Secondary: "#fefce8", Text: "#422006", Background: "#ffffff", SidebarBg: "#fffbeb"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t11", Name: "紧凑专业 (Grid)", Description: "两栏等宽，信息密度大，适合经验丰富者。",
		Structure: StructureCompactGrid,
		Colors:    Colors{Primary: "#2563eb", Secondary: "#f0f9ff", Text: "#1e3a8a", Background: "#ffffff"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t12", Name: "北欧风情 (Nordic)", Description: "极简灰蓝，冷色调带来的高级感。",
		Structure: StructureModern, HeaderAlignment: "center",
		Colors: Colors{Primary: "#64748b", Secondary: "#f1f5f9", Text: "#0f172a", Background: "#ffffff"},
		Fonts:  Fonts{Body: "modern", Headings: "modern"},
	},
	{
		ID: "t13", Name: "工业时代 (Iron)", Description: "粗犷的线条与纯黑页眉。",
		Structure: StructureModern, HeaderAlignment: "left",
		Colors: Colors{Primary: "#18181b", Secondary: "#f4f4f5", Text: "#09090b", Background: "#ffffff"},
		Fonts:  Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t14", Name: "日落渐变 (Sunset)", Description: "橙红渐变页眉，适合活力初创企业。",
		Structure: StructureModern, HeaderAlignment: "left",
		Colors: Colors{Primary: "#ea580c", Secondary: "#fff7ed", Text: "#431407", Background: "#ffffff"},
		Fonts:  Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t15", Name: "海洋之息 (Ocean)", Description: "深青色，平衡冷静。",
		Structure: StructureClassic, HeaderAlignment: "left",
		Colors: Colors{Primary: "#0891b2", Secondary: "#ecfeff", Text: "#164e63", Background: "#ffffff"},
		Fonts:  Fonts{Body: "modern", Headings: "modern"},
	},
	{
		ID: "t16", Name: "薰衣草田 (Lavender)", Description: "淡紫色侧边栏，优雅且具有女性魅力。",
		Structure: StructureSidebarLeft,
		Colors:    Colors{Primary: "#9333ea", Secondary: "#f5f3ff", Text: "#3b0764", Background: "#ffffff", SidebarBg: "#faf5ff"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t17", Name: "常春藤 (Ivy)", Description: "墨绿色商务，适合教育与学术管理。",
		Structure: StructureClassic, HeaderAlignment: "center",
		Colors: Colors{Primary: "#14532d", Secondary: "#f0fdf4", Text: "#052e16", Background: "#ffffff"},
		Fonts:  Fonts{Body: "serif", Headings: "serif"},
	},
	{
		ID: "t18", Name: "高级灰 (Graphite)", Description: "不同深浅的灰色叠用。",
		Structure: StructureTwoColumnHeader,
		Colors:    Colors{Primary: "#4b5563", Secondary: "#f3f4f6", Text: "#111827", Background: "#ffffff"},
		Fonts:     Fonts{Body: "sans", Headings: "sans"},
	},
	{
		ID: "t19", Name: "未来主义 (Future)", Description: "深黑色背景配霓虹青色。",
		Structure: StructureModern, HeaderAlignment: "left",
		Colors: Colors{Primary: "#06b6d4", Secondary: "#ecfeff", Text: "#083344", Background: "#ffffff"},
		Fonts:  Fonts{Body: "modern", Headings: "modern"},
	},
	{
		ID: "t20", Name: "摩登复古 (Retro)", Description: "砖红色与厚重排版。",
		Structure: StructureClassic, HeaderAlignment: "left",
		Colors: Colors{Primary: "#b91c1c", Secondary: "#fef2f2", Text: "#450a0a", Background: "#fffaf5"},
		Fonts:  Fonts{Body: "serif", Headings: "serif"},
	},
}
