package layout

import (
	"testing"

	"resumecloner/internal/catalog"
	"resumecloner/internal/resume"
)

func mustLookup(t *testing.T, id string) catalog.Template {
	t.Helper()
	tpl, err := catalog.Lookup(id)
	if err != nil {
		t.Fatalf("lookup %s: %v", id, err)
	}
	return tpl
}

func TestPlanForStructures(t *testing.T) {
	cases := []struct {
		id          string
		twoColumn   bool
		left, right int
		title       TitleStyle
	}{
		{"t1", false, 100, 0, TitleUnderline}, // classic
		{"t2", false, 100, 0, TitleDot},       // modern
		{"t3", false, 100, 0, TitlePlain},     // minimal
		{"t4", true, 32, 68, TitleSidebar},    // sidebar-left
		{"t5", true, 68, 32, TitleSidebar},    // sidebar-right
		{"t6", true, 70, 30, TitleUnderline},  // two-column-header
		{"t11", true, 50, 50, TitleUnderline}, // compact-grid
	}
	for _, tc := range cases {
		p := PlanFor(mustLookup(t, tc.id))
		if p.TwoColumn != tc.twoColumn || p.LeftPercent != tc.left || p.RightPercent != tc.right {
			t.Errorf("%s: plan = %+v, want twoColumn=%v %d/%d", tc.id, p, tc.twoColumn, tc.left, tc.right)
		}
		if p.TitleStyle != tc.title {
			t.Errorf("%s: title style = %v, want %v", tc.id, p.TitleStyle, tc.title)
		}
	}

	if !PlanFor(mustLookup(t, "t2")).HeaderBand {
		t.Errorf("modern should have a header band")
	}
	if !PlanFor(mustLookup(t, "t6")).HeaderSpansColumns {
		t.Errorf("two-column-header should span columns")
	}
}

func TestIsDarkSidebar(t *testing.T) {
	cases := []struct {
		bg   string
		dark bool
	}{
		{"#1e1b4b", true},
		{"#0f172a", true},
		{"#faf5ff", false},
		{"#fffbeb", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsDarkSidebar(tc.bg); got != tc.dark {
			t.Errorf("IsDarkSidebar(%q) = %v, want %v", tc.bg, got, tc.dark)
		}
	}
}

func TestSplitSectionsByPosition(t *testing.T) {
	sections := []resume.Section{
		{ID: "exp", Position: resume.PositionMain},
		{ID: "skills", Position: resume.PositionSidebar},
		{ID: "edu", Position: resume.PositionMain},
	}

	// sidebar-left：侧栏列在左。
	left, right := SplitSections(PlanFor(mustLookup(t, "t4")), sections)
	if len(left) != 1 || left[0].ID != "skills" {
		t.Errorf("sidebar-left left column = %v", ids(left))
	}
	if len(right) != 2 {
		t.Errorf("sidebar-left right column = %v", ids(right))
	}

	// sidebar-right：主列在左。
	left, right = SplitSections(PlanFor(mustLookup(t, "t5")), sections)
	if len(left) != 2 || len(right) != 1 {
		t.Errorf("sidebar-right split = %v / %v", ids(left), ids(right))
	}
}

func TestSplitSectionsCompactGridParity(t *testing.T) {
	// compact-grid 忽略 position，按下标奇偶交替。
	sections := []resume.Section{
		{ID: "a", Position: resume.PositionSidebar},
		{ID: "b", Position: resume.PositionSidebar},
		{ID: "c", Position: resume.PositionMain},
	}
	left, right := SplitSections(PlanFor(mustLookup(t, "t11")), sections)
	if len(left) != 2 || left[0].ID != "a" || left[1].ID != "c" {
		t.Errorf("left = %v, want [a c]", ids(left))
	}
	if len(right) != 1 || right[0].ID != "b" {
		t.Errorf("right = %v, want [b]", ids(right))
	}
}

func ids(sections []resume.Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.ID
	}
	return out
}
