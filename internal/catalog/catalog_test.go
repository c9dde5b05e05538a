package catalog

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tpl, err := Lookup("t4")
	if err != nil {
		t.Fatalf("Lookup(t4): %v", err)
	}
	if tpl.Structure != StructureSidebarLeft {
		t.Errorf("t4 structure = %s, want sidebar-left", tpl.Structure)
	}
	if tpl.Colors.SidebarBg == "" {
		t.Errorf("t4 should carry a sidebar background")
	}

	if _, err := Lookup("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(nope) err = %v, want ErrNotFound", err)
	}
}

func TestDefaultIsFirstEntry(t *testing.T) {
	if Default().ID != "t1" {
		t.Fatalf("Default() = %s, want t1", Default().ID)
	}
}

func TestCatalogShape(t *testing.T) {
	all := All()
	if len(all) != 20 {
		t.Fatalf("expected 20 templates, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, tpl := range all {
		if seen[tpl.ID] {
			t.Errorf("duplicate template id %s", tpl.ID)
		}
		seen[tpl.ID] = true
		if tpl.Colors.Primary == "" || tpl.Colors.Text == "" || tpl.Colors.Background == "" {
			t.Errorf("template %s missing colors", tpl.ID)
		}
	}

	// 每个结构标签至少有一个模板，供提取映射兜底。
	structures := []Structure{
		StructureClassic, StructureModern, StructureMinimal,
		StructureSidebarLeft, StructureSidebarRight,
		StructureTwoColumnHeader, StructureCompactGrid,
	}
	for _, s := range structures {
		if len(FilterByStructure(s)) == 0 {
			t.Errorf("no template for structure %s", s)
		}
	}
}

func TestLookupFontFallback(t *testing.T) {
	if LookupFont("serif").ID != "serif" {
		t.Errorf("LookupFont(serif) mismatch")
	}
	if got := LookupFont("unknown"); got.ID != "sans" {
		t.Errorf("LookupFont(unknown) = %s, want first entry sans", got.ID)
	}
	if len(AllFonts()) != 4 {
		t.Errorf("expected 4 fonts, got %d", len(AllFonts()))
	}
}
