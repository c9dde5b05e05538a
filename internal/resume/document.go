package resume

// 编辑操作统一采用快照语义：每个操作深拷贝后修改并返回新文档，
// 传入的文档保持不变。目标不存在或移动越界时返回原样拷贝（no-op）。

// MoveDirection 是分节/条目移动的方向。
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// WithPersonalInfo 整体替换个人信息。
func (d Document) WithPersonalInfo(info PersonalInfo) Document {
	out := d.Clone()
	out.PersonalInfo = info
	return out
}

// AddSection 追加一个空分节。
func (d Document) AddSection(gen IDGenerator, typ SectionType, title string, pos Position) Document {
	out := d.Clone()
	out.Sections = append(out.Sections, Section{
		ID:       gen.NewID(),
		Type:     typ,
		Title:    title,
		Position: pos,
		Items:    []Item{},
	})
	return out
}

// RemoveSection 删除指定分节；ID 不存在时为 no-op。
func (d Document) RemoveSection(sectionID string) Document {
	out := d.Clone()
	for i, s := range out.Sections {
		if s.ID == sectionID {
			out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
			break
		}
	}
	return out
}

// MoveSection 与相邻分节交换位置；已处于边界时为 no-op。
func (d Document) MoveSection(sectionID string, dir MoveDirection) Document {
	out := d.Clone()
	idx := out.sectionIndex(sectionID)
	if idx < 0 {
		return out
	}
	j := idx - 1
	if dir == MoveDown {
		j = idx + 1
	}
	if j < 0 || j >= len(out.Sections) {
		return out
	}
	out.Sections[idx], out.Sections[j] = out.Sections[j], out.Sections[idx]
	return out
}

// UpdateSectionMeta 更新分节标题与归属列。类型不变：改类型会使既有条目变体失配。
func (d Document) UpdateSectionMeta(sectionID, title string, pos Position) Document {
	out := d.Clone()
	if idx := out.sectionIndex(sectionID); idx >= 0 {
		out.Sections[idx].Title = title
		out.Sections[idx].Position = pos
	}
	return out
}

// AddItem 按分节类型追加一个占位条目。
func (d Document) AddItem(gen IDGenerator, sectionID string) Document {
	out := d.Clone()
	idx := out.sectionIndex(sectionID)
	if idx < 0 {
		return out
	}
	sec := &out.Sections[idx]
	switch sec.Type {
	case SectionTagList:
		sec.Items = append(sec.Items, SkillItem{ID: gen.NewID(), Name: "新技能"})
	default:
		sec.Items = append(sec.Items, DetailItem{ID: gen.NewID(), Title: "新条目"})
	}
	return out
}

// RemoveItem 删除分节内的条目；分节或条目不存在时为 no-op。
func (d Document) RemoveItem(sectionID, itemID string) Document {
	out := d.Clone()
	idx := out.sectionIndex(sectionID)
	if idx < 0 {
		return out
	}
	items := out.Sections[idx].Items
	for i, item := range items {
		if item.ItemID() == itemID {
			out.Sections[idx].Items = append(items[:i], items[i+1:]...)
			break
		}
	}
	return out
}

// MoveItem 与相邻条目交换位置；已处于边界时为 no-op。
func (d Document) MoveItem(sectionID, itemID string, dir MoveDirection) Document {
	out := d.Clone()
	idx := out.sectionIndex(sectionID)
	if idx < 0 {
		return out
	}
	items := out.Sections[idx].Items
	pos := -1
	for i, item := range items {
		if item.ItemID() == itemID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return out
	}
	j := pos - 1
	if dir == MoveDown {
		j = pos + 1
	}
	if j < 0 || j >= len(items) {
		return out
	}
	items[pos], items[j] = items[j], items[pos]
	return out
}

// UpdateItemField 更新条目的单个字段，按变体穷举分发。
// 字段名与变体不匹配时为 no-op。
func (d Document) UpdateItemField(sectionID, itemID, field, value string) Document {
	out := d.Clone()
	idx := out.sectionIndex(sectionID)
	if idx < 0 {
		return out
	}
	items := out.Sections[idx].Items
	for i, raw := range items {
		if raw.ItemID() != itemID {
			continue
		}
		switch item := raw.(type) {
		case DetailItem:
			switch field {
			case "title":
				item.Title = value
			case "subtitle":
				item.Subtitle = value
			case "date":
				item.Date = value
			case "description":
				item.Description = value
			default:
				return out
			}
			items[i] = item
		case SkillItem:
			switch field {
			case "name":
				item.Name = value
			default:
				return out
			}
			items[i] = item
		}
		break
	}
	return out
}

func (d Document) sectionIndex(sectionID string) int {
	for i, s := range d.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}
