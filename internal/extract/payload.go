package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// transcriptionPrompt 要求模型完整转写版面内容并识别视觉基因。
// 输出契约与 RawResume 对齐。
const transcriptionPrompt = `You are an expert high-fidelity resume transcription and design analyst.
Your goal is to CLONE the provided resume (image or PDF) by extracting ALL content perfectly and identifying its visual DNA.

CRITICAL: Return ONLY raw JSON. Do not include any conversational text.
Transcribe precisely, capturing all text. Identify the dominant color and layout structure.
Map each section to type 'detail-list' (experience/education) or 'tag-list' (skills/hobbies).

Return a JSON object with exactly these fields:
{
  "personalInfo": {"fullName", "jobTitle", "email", "phone", "location", "summary", "website", "dateOfBirth"},
  "sections": [{"title", "type": "detail-list"|"tag-list", "position": "main"|"sidebar",
                "items": [{"name", "title", "subtitle", "date", "description"}]}],
  "visualAnalysis": {"structure": "classic"|"modern"|"minimal"|"sidebar-left"|"sidebar-right"|"two-column-header",
                     "headerAlignment": "left"|"center", "fontStyle": "sans"|"serif", "accentColor": "#rrggbb"}
}`

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON 从模型返回的文本里剥出纯 JSON：优先 ```json 围栏，
// 其次裸围栏，最后回退到首个 { 与末个 } 之间的片段。
func ExtractJSON(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	if m := bareFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last > first {
		return strings.TrimSpace(text[first : last+1])
	}
	return strings.TrimSpace(text)
}

// RawResume 是模型转写的宽松结果，字段全部可缺省。
type RawResume struct {
	PersonalInfo   RawPersonalInfo `json:"personalInfo"`
	Sections       []RawSection    `json:"sections"`
	VisualAnalysis VisualAnalysis  `json:"visualAnalysis"`
}

type RawPersonalInfo struct {
	FullName    string `json:"fullName"`
	JobTitle    string `json:"jobTitle"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Summary     string `json:"summary"`
	Website     string `json:"website"`
	DateOfBirth string `json:"dateOfBirth"`
}

type RawSection struct {
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Position string    `json:"position"`
	Items    []RawItem `json:"items"`
}

// RawItem 同时承载 tag 与 detail 两种条目的候选字段。
type RawItem struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type VisualAnalysis struct {
	Structure       string `json:"structure"`
	HeaderAlignment string `json:"headerAlignment"`
	FontStyle       string `json:"fontStyle"`
	AccentColor     string `json:"accentColor"`
}

// ParseRaw 解析转写 JSON；格式损坏时返回错误而不是猜测。
func ParseRaw(data []byte) (RawResume, error) {
	var raw RawResume
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawResume{}, fmt.Errorf("parse transcription json: %w", err)
	}
	return raw, nil
}
