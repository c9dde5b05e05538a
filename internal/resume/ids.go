package resume

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator 为分节与条目生成标识符。
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator 是默认实现。
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator 生成确定性的递增 ID，用于测试。
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("%s%d", g.Prefix, g.next)
}
