package markup

import "testing"

func TestInsertBold(t *testing.T) {
	// 有选区：包裹选区，光标落在收尾标记之后。
	text, cursor := Insert("Led team", 0, 3, OpBold)
	if text != "**Led** team" {
		t.Fatalf("text = %q", text)
	}
	if cursor != 7 {
		t.Fatalf("cursor = %d, want 7", cursor)
	}

	// 空选区：插入占位文本，光标停在占位文本之后、收尾标记之前。
	text, cursor = Insert("abc", 3, 3, OpBold)
	if text != "abc**加粗**" {
		t.Fatalf("text = %q", text)
	}
	if cursor != 7 {
		t.Fatalf("cursor = %d, want 7", cursor)
	}
}

func TestInsertItalic(t *testing.T) {
	text, cursor := Insert("x", 1, 1, OpItalic)
	if text != "x_斜体_" {
		t.Fatalf("text = %q", text)
	}
	if cursor != 3 {
		t.Fatalf("cursor = %d, want 3", cursor)
	}
}

func TestInsertBullet(t *testing.T) {
	text, cursor := Insert("first\nsecond", 8, 8, OpBullet)
	if text != "first\n• second" {
		t.Fatalf("text = %q", text)
	}
	if cursor != 10 {
		t.Fatalf("cursor = %d, want 10", cursor)
	}
}

func TestInsertOrdered(t *testing.T) {
	// 上一行不是有序列表：从 1 开始。
	text, _ := Insert("alpha\nbeta", 6, 6, OpOrdered)
	if text != "alpha\n1. beta" {
		t.Fatalf("text = %q", text)
	}

	// 上一行是有序列表：顺延编号。
	text, cursor := Insert("1. alpha\nbeta", 9, 9, OpOrdered)
	if text != "1. alpha\n2. beta" {
		t.Fatalf("text = %q", text)
	}
	if cursor != 12 {
		t.Fatalf("cursor = %d, want 12", cursor)
	}

	// 两位数编号。
	text, _ = Insert("10. ten\nnext", 8, 8, OpOrdered)
	if text != "10. ten\n11. next" {
		t.Fatalf("text = %q", text)
	}
}

func TestInsertClampsRange(t *testing.T) {
	text, _ := Insert("ab", 5, 99, OpBold)
	if text != "ab**加粗**" {
		t.Fatalf("text = %q", text)
	}

	// 反向选区按交换后处理。
	text, _ = Insert("abcd", 3, 1, OpItalic)
	if text != "a_bc_d" {
		t.Fatalf("text = %q", text)
	}
}

// 端到端：编辑器构造的文本经解码后结构正确。
func TestInsertThenParse(t *testing.T) {
	text := "Led team of 5"
	text, _ = Insert(text, 0, 3, OpBold)
	text, _ = Insert(text, len([]rune(text)), len([]rune(text)), OpItalic)
	text += "\nShipped X"
	lineStart := len([]rune(text)) - len("Shipped X")
	text, _ = Insert(text, lineStart, lineStart, OpBullet)

	lines := ParseLines(text)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), text)
	}
	if lines[1].Kind != LineBullet {
		t.Fatalf("expected bullet second line, got %+v", lines[1])
	}
	runs := ParseRuns(lines[0].Content)
	if len(runs) == 0 || !runs[0].Bold {
		t.Fatalf("expected leading bold run, got %#v", runs)
	}
}
