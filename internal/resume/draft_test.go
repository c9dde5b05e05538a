package resume

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDraftRequiresTopLevelKeys(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing sections", `{"personalInfo":{}}`},
		{"missing personalInfo", `{"sections":[]}`},
		{"not json", `not json at all`},
		{"array root", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDraft([]byte(tc.in)); !errors.Is(err, ErrInvalidDraft) {
				t.Fatalf("err = %v, want ErrInvalidDraft", err)
			}
		})
	}
}

func TestParseDraftShallowValidationOnly(t *testing.T) {
	// 只要求两个顶层键存在，内容可以为空。
	doc, err := ParseDraft([]byte(`{"personalInfo":{},"sections":[]}`))
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Fatalf("sections = %d, want 0", len(doc.Sections))
	}
}

func TestDraftRoundTrip(t *testing.T) {
	src := Example()
	data, err := ExportDraft(src)
	if err != nil {
		t.Fatalf("ExportDraft: %v", err)
	}
	back, err := ParseDraft(data)
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if !reflect.DeepEqual(src, back) {
		t.Fatalf("round trip mismatch:\n src  %#v\n back %#v", src, back)
	}
}

func TestSectionItemVariantsByType(t *testing.T) {
	draft := []byte(`{
		"personalInfo": {"fullName": "A"},
		"sections": [
			{"id":"x","type":"detail-list","title":"Exp","position":"main",
			 "items":[{"id":"1","title":"Engineer","subtitle":"Corp","date":"2020","description":"did things"}]},
			{"id":"y","type":"tag-list","title":"Skills","position":"sidebar",
			 "items":[{"id":"2","name":"Go"}]}
		]
	}`)
	doc, err := ParseDraft(draft)
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if _, ok := doc.Sections[0].Items[0].(DetailItem); !ok {
		t.Errorf("detail-list items should decode as DetailItem, got %T", doc.Sections[0].Items[0])
	}
	skill, ok := doc.Sections[1].Items[0].(SkillItem)
	if !ok {
		t.Fatalf("tag-list items should decode as SkillItem, got %T", doc.Sections[1].Items[0])
	}
	if skill.Name != "Go" {
		t.Errorf("skill name = %q", skill.Name)
	}
}
