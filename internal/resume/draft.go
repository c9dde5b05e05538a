package resume

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDraft 表示草稿 JSON 缺少必需的顶层键。
var ErrInvalidDraft = errors.New("resume: invalid draft format")

// ParseDraft 解析草稿 JSON。仅做浅校验：顶层必须同时出现
// personalInfo 与 sections 两个键，字段内容不做进一步约束。
func ParseDraft(data []byte) (Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if _, ok := probe["personalInfo"]; !ok {
		return Document{}, ErrInvalidDraft
	}
	if _, ok := probe["sections"]; !ok {
		return Document{}, ErrInvalidDraft
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	return doc, nil
}

// ExportDraft 序列化文档为 2 空格缩进的草稿 JSON。
// 与 ParseDraft 构成往返恒等。
func ExportDraft(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal draft: %w", err)
	}
	return data, nil
}
