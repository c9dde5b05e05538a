package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 草稿状态流转：uploaded → extracting → completed / failed。
// 手工创建（导入、模板起步）的草稿直接落在 completed。
const (
	StatusUploaded   = "uploaded"
	StatusExtracting = "extracting"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Draft 表示一份简历草稿及其关联的对象存储产物。
type Draft struct {
	gorm.Model
	Title   string         `gorm:"size:255"`
	Content datatypes.JSON `gorm:"type:jsonb"` // JSONB 存储完整文档
	Status  string         `gorm:"size:32"`

	// 对象存储键：上传原稿与导出产物。
	SourceKey    string `gorm:"size:512"`
	SourceMIME   string `gorm:"size:64"`
	PdfKey       string `gorm:"size:512"`
	DocxKey      string `gorm:"size:512"`
	ThumbnailKey string `gorm:"size:512"`
	ThumbnailURL string `gorm:"size:1024"`
}
