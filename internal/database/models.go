package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Export 记录一次 PDF 导出任务。
// Snapshot 是入队那一刻整份简历文档的 JSONB 快照，
// 之后对文档的编辑不影响已入队的导出。
type Export struct {
	gorm.Model
	Snapshot      datatypes.JSON `gorm:"type:jsonb"`
	Template      string         `gorm:"size:32"`
	Status        string         `gorm:"size:32;index"`
	PdfKey        string         `gorm:"size:512"`
	ErrorMessage  string         `gorm:"size:512"`
	CorrelationID string         `gorm:"size:64"`
	ClientID      string         `gorm:"size:64"`
}

// 导出任务状态机：queued -> completed | failed。
const (
	ExportStatusQueued    = "queued"
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)
