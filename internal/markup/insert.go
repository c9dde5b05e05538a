package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Op 是编辑器插入操作的类型。
type Op int

const (
	OpBold Op = iota
	OpItalic
	OpBullet
	OpOrdered
)

// 空选区时包裹的占位文本。
const (
	boldPlaceholder   = "加粗"
	italicPlaceholder = "斜体"
)

var prevOrderedRe = regexp.MustCompile(`^(\d+)[.)]\s`)

// Insert 在 [start, end) 选区上应用插入操作，返回新文本与新光标位置。
// start/end 与返回的光标均为 rune 下标。start > end 时二者交换，
// 越界下标被钳制到文本长度。
func Insert(text string, start, end int, op Op) (string, int) {
	runes := []rune(text)
	start, end = clampRange(start, end, len(runes))

	before := string(runes[:start])
	selected := string(runes[start:end])
	after := string(runes[end:])

	switch op {
	case OpBold:
		if selected == "" {
			selected = boldPlaceholder
		}
		return before + "**" + selected + "**" + after, end + 4
	case OpItalic:
		if selected == "" {
			selected = italicPlaceholder
		}
		return before + "_" + selected + "_" + after, end + 2
	case OpBullet:
		lineStart := lineStartIndex(runes, start)
		beforeLine := string(runes[:lineStart])
		afterLine := string(runes[lineStart:])
		return beforeLine + "• " + afterLine, start + 2
	case OpOrdered:
		lineStart := lineStartIndex(runes, start)
		beforeLine := string(runes[:lineStart])
		afterLine := string(runes[lineStart:])
		num := nextOrderedNumber(beforeLine)
		marker := strconv.Itoa(num) + ". "
		return beforeLine + marker + afterLine, start + len([]rune(marker))
	}
	return text, end
}

func clampRange(start, end, n int) (int, int) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	return start, end
}

// lineStartIndex 返回 pos 所在行的行首下标。
func lineStartIndex(runes []rune, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// nextOrderedNumber 探测光标前最近一行是否为有序列表，是则顺延编号。
func nextOrderedNumber(beforeLine string) int {
	prev := strings.Split(strings.TrimSpace(beforeLine), "\n")
	last := prev[len(prev)-1]
	if m := prevOrderedRe.FindStringSubmatch(last); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n + 1
		}
	}
	return 1
}
