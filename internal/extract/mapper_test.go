package extract

import (
	"testing"

	"resumecloner/internal/catalog"
	"resumecloner/internal/resume"
)

func TestMapFillsDefaults(t *testing.T) {
	raw := RawResume{
		Sections: []RawSection{
			{
				// title/type/position 全缺省
				Items: []RawItem{{Subtitle: "ACME"}},
			},
			{
				Type:  "tag-list",
				Title: "Skills",
				Items: []RawItem{{Name: "Go"}, {Title: "Docker"}, {}},
			},
		},
	}

	doc := Map(raw, &resume.SequenceGenerator{Prefix: "id"}, "data:image/png;base64,xxx")

	sec := doc.Sections[0]
	if sec.Title != "Section" || sec.Type != resume.SectionDetailList || sec.Position != resume.PositionMain {
		t.Fatalf("section defaults not applied: %+v", sec)
	}
	detail, ok := sec.Items[0].(resume.DetailItem)
	if !ok || detail.Title != "Title" || detail.Subtitle != "ACME" {
		t.Fatalf("detail item defaults not applied: %+v", sec.Items[0])
	}

	tags := doc.Sections[1]
	wantNames := []string{"Go", "Docker", "Skill"}
	for i, want := range wantNames {
		skill, ok := tags.Items[i].(resume.SkillItem)
		if !ok || skill.Name != want {
			t.Fatalf("tag item %d = %+v, want name %q", i, tags.Items[i], want)
		}
		if skill.ID == "" {
			t.Fatalf("tag item %d missing generated id", i)
		}
	}

	if doc.SourceImageURL != "data:image/png;base64,xxx" {
		t.Fatalf("source image url not retained")
	}
}

func TestMapTemplateSelection(t *testing.T) {
	cases := []struct {
		name          string
		visual        VisualAnalysis
		wantStructure catalog.Structure
		wantFontBody  string
	}{
		{
			name:          "structure and font honored",
			visual:        VisualAnalysis{Structure: "sidebar-left", FontStyle: "sans"},
			wantStructure: catalog.StructureSidebarLeft,
			wantFontBody:  "sans",
		},
		{
			name:          "unknown structure falls back to classic",
			visual:        VisualAnalysis{Structure: "zigzag"},
			wantStructure: catalog.StructureClassic,
		},
		{
			name:          "serif hint picks serif body",
			visual:        VisualAnalysis{Structure: "classic", FontStyle: "serif"},
			wantStructure: catalog.StructureClassic,
			wantFontBody:  "serif",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Map(RawResume{VisualAnalysis: tc.visual}, &resume.SequenceGenerator{}, "")
			tpl, err := catalog.Lookup(doc.TemplateID)
			if err != nil {
				t.Fatalf("mapped template %q not in registry", doc.TemplateID)
			}
			if tpl.Structure != tc.wantStructure {
				t.Fatalf("structure = %s, want %s", tpl.Structure, tc.wantStructure)
			}
			if tc.wantFontBody != "" && tpl.Fonts.Body != tc.wantFontBody {
				t.Fatalf("font body = %s, want %s", tpl.Fonts.Body, tc.wantFontBody)
			}
		})
	}
}

func TestMapAccentFallback(t *testing.T) {
	doc := Map(RawResume{VisualAnalysis: VisualAnalysis{AccentColor: "#ff0000"}}, &resume.SequenceGenerator{}, "")
	if doc.AccentColor != "#ff0000" {
		t.Fatalf("detected accent should win, got %s", doc.AccentColor)
	}

	doc = Map(RawResume{}, &resume.SequenceGenerator{}, "")
	tpl, _ := catalog.Lookup(doc.TemplateID)
	if doc.AccentColor != tpl.Colors.Primary {
		t.Fatalf("accent should fall back to template primary, got %s", doc.AccentColor)
	}
}

func TestMapExtractionSpacing(t *testing.T) {
	doc := Map(RawResume{}, &resume.SequenceGenerator{}, "")
	// 转写文档的间距默认值比编辑器默认更紧凑。
	if doc.HeaderTopPadding != 20 || doc.SectionTitleMargin != 12 || doc.ModuleSpacing != 24 {
		t.Fatalf("extraction spacing defaults wrong: top=%d margin=%d module=%d",
			doc.HeaderTopPadding, doc.SectionTitleMargin, doc.ModuleSpacing)
	}
	if doc.NameFontSize != 24 || doc.LineHeight != 1.5 {
		t.Fatalf("font defaults wrong")
	}
}
