// Package resume 定义简历文档模型：个人信息、分节内容与全部版式参数。
// 模型以 JSON 形式整体存入 drafts 表的 JSONB 列。
package resume

import (
	"encoding/json"
	"fmt"
)

// SectionType 决定分节内条目的形态。
type SectionType string

const (
	SectionDetailList SectionType = "detail-list"
	SectionTagList    SectionType = "tag-list"
)

// Position 决定分节在双栏结构中的归属列。
type Position string

const (
	PositionMain    Position = "main"
	PositionSidebar Position = "sidebar"
)

// PersonalInfo 是页眉区域的字段集合。
type PersonalInfo struct {
	FullName       string `json:"fullName"`
	JobTitle       string `json:"jobTitle"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Summary        string `json:"summary"`
	Website        string `json:"website,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
}

// Item 是分节条目的和类型，具体变体由所在 Section 的 Type 决定。
type Item interface {
	ItemID() string
}

// DetailItem 用于经历类分节（detail-list）。
type DetailItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// SkillItem 用于标签类分节（tag-list）。
type SkillItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d DetailItem) ItemID() string { return d.ID }
func (s SkillItem) ItemID() string  { return s.ID }

// Section 是文档中的一个内容分节。
type Section struct {
	ID       string      `json:"id"`
	Type     SectionType `json:"type"`
	Title    string      `json:"title"`
	Position Position    `json:"position"`
	Items    []Item      `json:"items"`
}

// UnmarshalJSON 按分节类型实例化条目变体：tag-list 解成 SkillItem，
// 其余一律解成 DetailItem。
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string            `json:"id"`
		Type     SectionType       `json:"type"`
		Title    string            `json:"title"`
		Position Position          `json:"position"`
		Items    []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Title = raw.Title
	s.Position = raw.Position
	s.Items = nil

	for i, itemRaw := range raw.Items {
		switch raw.Type {
		case SectionTagList:
			var item SkillItem
			if err := json.Unmarshal(itemRaw, &item); err != nil {
				return fmt.Errorf("section %q item %d: %w", raw.ID, i, err)
			}
			s.Items = append(s.Items, item)
		default:
			var item DetailItem
			if err := json.Unmarshal(itemRaw, &item); err != nil {
				return fmt.Errorf("section %q item %d: %w", raw.ID, i, err)
			}
			s.Items = append(s.Items, item)
		}
	}
	return nil
}

// Document 是完整的简历文档，包括内容与全部版式参数。
// 数值参数单位为 px（LineHeight 为倍数），渲染端按字面值应用。
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
	TemplateID   string       `json:"templateId"`
	LayoutType   string       `json:"layoutType,omitempty"`
	AccentColor  string       `json:"accentColor"`
	FontFamily   string       `json:"fontFamily"`

	NameFontSize          int     `json:"nameFontSize"`
	SectionHeaderFontSize int     `json:"sectionHeaderFontSize"`
	RoleFontSize          int     `json:"roleFontSize"`
	BodyFontSize          int     `json:"bodyFontSize"`
	ContactFontSize       int     `json:"contactFontSize"`
	HeaderTopPadding      int     `json:"headerTopPadding"`
	HeaderBottomPadding   int     `json:"headerBottomPadding"`
	HeaderContentSpacing  int     `json:"headerContentSpacing"`
	SummaryBottomSpacing  int     `json:"summaryBottomSpacing"`
	SectionTitleMargin    int     `json:"sectionTitleMargin"`
	ModuleSpacing         int     `json:"moduleSpacing"`
	ItemSpacing           int     `json:"itemSpacing"`
	LineHeight            float64 `json:"lineHeight"`

	SourceImageURL string `json:"sourceImageUrl,omitempty"`
}

// Clone 返回文档的深拷贝。所有编辑操作都基于拷贝，调用方持有的快照不受影响。
func (d Document) Clone() Document {
	out := d
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		cs := s
		cs.Items = make([]Item, len(s.Items))
		copy(cs.Items, s.Items)
		out.Sections[i] = cs
	}
	return out
}
