// Package markup 实现简历描述文本使用的轻量标记语法。
//
// 语法刻意保持与编辑器所见即所得的对应关系：源文本本身就是标记，
// 解码是纯函数且无损，不做任何 CommonMark 风格的规范化。
package markup

import (
	"regexp"
	"strings"
)

// Run 是一段行内文本及其样式。Bold 与 Italic 互斥（由语法保证）。
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// LineKind 标识一行的列表类型。
type LineKind int

const (
	LinePlain LineKind = iota
	LineBullet
	LineOrdered
)

// Line 是按行解码后的结果。
//
// Bullet 行保留原始标记（•、-、*、> 或 [ ]/[x]/[X]），Ordered 行保留
// 序号与分隔符（. 或 )）。Indent 保留行首空白，保证 Encode 可以还原原文。
type Line struct {
	Kind    LineKind
	Indent  string
	Marker  string // bullet 的原始标记，例如 "•" 或 "[x]"
	Number  string // ordered 的原始数字串，保留前导零
	Delim   byte   // ordered 的分隔符：'.' 或 ')'
	Content string
}

var (
	// 与预览渲染保持一致的行内样式切分。非贪婪，禁止嵌套。
	inlineRe = regexp.MustCompile(`(\*\*.*?\*\*|_.*?_)`)

	bulletRe  = regexp.MustCompile(`^([•\-\*>]|\[[ xX]?\])\s+(.*)$`)
	orderedRe = regexp.MustCompile(`^(\d+)([.)])\s+(.*)$`)
)

// ParseRuns 将一段文本切分为带样式的行内片段。
// 未配对的标记字符按普通文本保留，拼接所有片段可还原原文。
func ParseRuns(text string) []Run {
	if text == "" {
		return nil
	}

	var runs []Run
	rest := text
	for {
		loc := inlineRe.FindStringIndex(rest)
		if loc == nil {
			if rest != "" {
				runs = append(runs, Run{Text: rest})
			}
			return runs
		}
		if loc[0] > 0 {
			runs = append(runs, Run{Text: rest[:loc[0]]})
		}
		token := rest[loc[0]:loc[1]]
		switch {
		case strings.HasPrefix(token, "**"):
			runs = append(runs, Run{Text: token[2 : len(token)-2], Bold: true})
		default:
			runs = append(runs, Run{Text: token[1 : len(token)-1], Italic: true})
		}
		rest = rest[loc[1]:]
	}
}

// ParseLines 按 \n 拆分文本并识别每行的列表类型。纯函数，幂等。
func ParseLines(text string) []Line {
	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimLeft(l, " \t")
		indent := l[:len(l)-len(trimmed)]
		// 行尾空白也参与匹配前的修剪，但保留在 Content 之外会破坏无损性，
		// 因此只对标记识别使用 TrimSpace 后的视图。
		probe := strings.TrimRight(trimmed, " \t")

		if idx := bulletRe.FindStringSubmatchIndex(probe); idx != nil {
			lines = append(lines, Line{
				Kind:    LineBullet,
				Indent:  indent,
				Marker:  probe[idx[2]:idx[3]],
				Content: trimmed[idx[4]:],
			})
			continue
		}
		if idx := orderedRe.FindStringSubmatchIndex(probe); idx != nil {
			lines = append(lines, Line{
				Kind:    LineOrdered,
				Indent:  indent,
				Number:  probe[idx[2]:idx[3]],
				Delim:   probe[idx[4]],
				Content: trimmed[idx[6]:],
			})
			continue
		}
		lines = append(lines, Line{Kind: LinePlain, Indent: indent, Content: trimmed})
	}
	return lines
}

// Encode 将行列表还原为标记文本，是 ParseLines 的逆运算。
func Encode(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Indent)
		switch l.Kind {
		case LineBullet:
			b.WriteString(l.Marker)
			b.WriteByte(' ')
			b.WriteString(l.Content)
		case LineOrdered:
			b.WriteString(l.Number)
			b.WriteByte(l.Delim)
			b.WriteByte(' ')
			b.WriteString(l.Content)
		default:
			b.WriteString(l.Content)
		}
	}
	return b.String()
}
