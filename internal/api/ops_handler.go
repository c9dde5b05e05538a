package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"resumecloner/internal/catalog"
	"resumecloner/internal/markup"
	"resumecloner/internal/resume"
)

// draftOp 是单个编辑操作。字段按操作类型选用，未用到的留空。
type draftOp struct {
	Op           string               `json:"op"`
	SectionID    string               `json:"sectionId,omitempty"`
	ItemID       string               `json:"itemId,omitempty"`
	Field        string               `json:"field,omitempty"`
	Value        string               `json:"value,omitempty"`
	Title        string               `json:"title,omitempty"`
	Type         string               `json:"type,omitempty"`
	Position     string               `json:"position,omitempty"`
	Direction    string               `json:"direction,omitempty"`
	TemplateID   string               `json:"templateId,omitempty"`
	PersonalInfo *resume.PersonalInfo `json:"personalInfo,omitempty"`

	// insertFormat 专用：rune 下标选区与样式。
	Start int    `json:"start,omitempty"`
	End   int    `json:"end,omitempty"`
	Style string `json:"style,omitempty"`
}

type applyOpsRequest struct {
	Ops []draftOp `json:"ops" binding:"required"`
}

// ApplyOps 依次在草稿上应用编辑操作并持久化结果。
// 响应携带更新后的文档；若包含 insertFormat，还返回建议光标位置。
func (h *DraftHandler) ApplyOps(c *gin.Context) {
	var req applyOpsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	doc, err := documentFromDraft(draft)
	if err != nil {
		Internal(c, "failed to decode draft content")
		return
	}

	var cursor *int
	for i, op := range req.Ops {
		next, opCursor, err := h.applyOp(doc, op)
		if err != nil {
			BadRequest(c, fmt.Sprintf("op %d: %v", i, err))
			return
		}
		doc = next
		if opCursor != nil {
			cursor = opCursor
		}
	}

	content, err := json.Marshal(doc)
	if err != nil {
		Internal(c, "failed to encode draft content")
		return
	}
	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Model(draft).
		Update("content", datatypes.JSON(content)).Error; err != nil {
		Internal(c, "failed to save draft")
		return
	}

	resp := gin.H{"document": doc}
	if cursor != nil {
		resp["cursor"] = *cursor
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DraftHandler) applyOp(doc resume.Document, op draftOp) (resume.Document, *int, error) {
	switch op.Op {
	case "setPersonalInfo":
		if op.PersonalInfo == nil {
			return doc, nil, fmt.Errorf("personalInfo is required")
		}
		return doc.WithPersonalInfo(*op.PersonalInfo), nil, nil

	case "addSection":
		typ := resume.SectionType(op.Type)
		if typ != resume.SectionTagList {
			typ = resume.SectionDetailList
		}
		return doc.AddSection(h.ids, typ, op.Title, parsePosition(op.Position)), nil, nil

	case "removeSection":
		return doc.RemoveSection(op.SectionID), nil, nil

	case "moveSection":
		dir, err := parseDirection(op.Direction)
		if err != nil {
			return doc, nil, err
		}
		return doc.MoveSection(op.SectionID, dir), nil, nil

	case "updateSection":
		return doc.UpdateSectionMeta(op.SectionID, op.Title, parsePosition(op.Position)), nil, nil

	case "addItem":
		return doc.AddItem(h.ids, op.SectionID), nil, nil

	case "removeItem":
		return doc.RemoveItem(op.SectionID, op.ItemID), nil, nil

	case "moveItem":
		dir, err := parseDirection(op.Direction)
		if err != nil {
			return doc, nil, err
		}
		return doc.MoveItem(op.SectionID, op.ItemID, dir), nil, nil

	case "updateItemField":
		return doc.UpdateItemField(op.SectionID, op.ItemID, op.Field, op.Value), nil, nil

	case "setTemplate":
		tpl, err := catalog.Lookup(op.TemplateID)
		if err != nil {
			return doc, nil, fmt.Errorf("template %q not found", op.TemplateID)
		}
		out := doc.Clone()
		out.TemplateID = tpl.ID
		out.AccentColor = tpl.Colors.Primary
		return out, nil, nil

	case "setAccentColor":
		out := doc.Clone()
		out.AccentColor = op.Value
		return out, nil, nil

	case "setFontFamily":
		out := doc.Clone()
		out.FontFamily = op.Value
		return out, nil, nil

	case "insertFormat":
		return h.applyInsertFormat(doc, op)

	default:
		return doc, nil, fmt.Errorf("unknown op %q", op.Op)
	}
}

func (h *DraftHandler) applyInsertFormat(doc resume.Document, op draftOp) (resume.Document, *int, error) {
	insertOp, err := parseInsertStyle(op.Style)
	if err != nil {
		return doc, nil, err
	}

	if op.Field == "summary" {
		text, cursor := markup.Insert(doc.PersonalInfo.Summary, op.Start, op.End, insertOp)
		out := doc.Clone()
		out.PersonalInfo.Summary = text
		return out, &cursor, nil
	}

	current, ok := itemFieldValue(doc, op.SectionID, op.ItemID, op.Field)
	if !ok {
		// 目标不存在时与其余编辑操作一致：no-op。
		return doc, nil, nil
	}
	text, cursor := markup.Insert(current, op.Start, op.End, insertOp)
	return doc.UpdateItemField(op.SectionID, op.ItemID, op.Field, text), &cursor, nil
}

func itemFieldValue(doc resume.Document, sectionID, itemID, field string) (string, bool) {
	for _, sec := range doc.Sections {
		if sec.ID != sectionID {
			continue
		}
		for _, raw := range sec.Items {
			if raw.ItemID() != itemID {
				continue
			}
			switch item := raw.(type) {
			case resume.DetailItem:
				switch field {
				case "title":
					return item.Title, true
				case "subtitle":
					return item.Subtitle, true
				case "date":
					return item.Date, true
				case "description":
					return item.Description, true
				}
			case resume.SkillItem:
				if field == "name" {
					return item.Name, true
				}
			}
			return "", false
		}
	}
	return "", false
}

func parsePosition(s string) resume.Position {
	if resume.Position(s) == resume.PositionSidebar {
		return resume.PositionSidebar
	}
	return resume.PositionMain
}

func parseDirection(s string) (resume.MoveDirection, error) {
	switch s {
	case "up":
		return resume.MoveUp, nil
	case "down":
		return resume.MoveDown, nil
	default:
		return resume.MoveUp, fmt.Errorf("invalid direction %q", s)
	}
}

func parseInsertStyle(s string) (markup.Op, error) {
	switch s {
	case "bold":
		return markup.OpBold, nil
	case "italic":
		return markup.OpItalic, nil
	case "bullet":
		return markup.OpBullet, nil
	case "ordered":
		return markup.OpOrdered, nil
	default:
		return markup.OpBold, fmt.Errorf("invalid style %q", s)
	}
}
