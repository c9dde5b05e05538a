package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeExtract    = "extract:run"
	TypeExportPDF  = "export:pdf"
	TypeExportDocx = "export:docx"
)

// ExtractPayload 描述一次上传转写所需的最小信息。
type ExtractPayload struct {
	DraftID       uint   `json:"draft_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewExtractTask 构造一个新的简历转写任务。
func NewExtractTask(id uint, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExtractPayload{
		DraftID:       id,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExtract, payload), nil
}

// ExportPayload 描述导出任务所需的最小信息。
type ExportPayload struct {
	DraftID       uint   `json:"draft_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewExportPDFTask 构造一个新的 PDF 导出任务。
func NewExportPDFTask(id uint, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportPayload{
		DraftID:       id,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExportPDF, payload), nil
}

// NewExportDocxTask 构造一个新的 DOCX 导出任务。
func NewExportDocxTask(id uint, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportPayload{
		DraftID:       id,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExportDocx, payload), nil
}
