package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"resumecloner/internal/api/middleware"
	"resumecloner/internal/errcode"
	"resumecloner/internal/raster"
	"resumecloner/internal/tasks"
)

// ExportHandler 负责触发导出任务与签发下载链接。
type ExportHandler struct {
	db      *gorm.DB
	tasks   TaskEnqueuer
	storage ObjectStorage
	logger  *slog.Logger
}

// NewExportHandler 构造 ExportHandler。
func NewExportHandler(db *gorm.DB, enqueuer TaskEnqueuer, storageClient ObjectStorage, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		db:      db,
		tasks:   enqueuer,
		storage: storageClient,
		logger:  logger,
	}
}

type requestExportBody struct {
	Format string `json:"format" binding:"required"`
}

// RequestExport 将导出任务入队并立即返回 202，完成后经 WebSocket 通知。
func (h *ExportHandler) RequestExport(c *gin.Context) {
	var req requestExportBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	correlationID := middleware.GetCorrelationID(c)

	var task *asynq.Task
	switch req.Format {
	case "pdf":
		task, err = tasks.NewExportPDFTask(draft.ID, correlationID)
	case "docx":
		task, err = tasks.NewExportDocxTask(draft.ID, correlationID)
	default:
		BadRequest(c, fmt.Sprintf("unsupported export format %q", req.Format))
		return
	}
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.tasks.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		Internal(c, "failed to enqueue export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":        "export request accepted",
		"task_id":        info.ID,
		"correlation_id": correlationID,
	})
}

// Download 生成已导出产物的预签名下载链接，文件名遵循
// 全名空白转下划线的约定。
func (h *ExportHandler) Download(c *gin.Context) {
	format := c.Query("format")
	if format != "pdf" && format != "docx" {
		BadRequest(c, "format must be pdf or docx")
		return
	}

	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	objectKey := draft.PdfKey
	if format == "docx" {
		objectKey = draft.DocxKey
	}
	if objectKey == "" {
		ErrorCode(c, http.StatusConflict, errcode.NotFound, "export not ready")
		return
	}

	doc, err := documentFromDraft(draft)
	if err != nil {
		Internal(c, "failed to decode draft content")
		return
	}
	filename := exportFileName(doc.PersonalInfo.FullName, format)

	signedURL, err := h.storage.GeneratePresignedURLWithParams(
		c.Request.Context(), objectKey, 5*time.Minute,
		map[string]string{
			"response-content-disposition": fmt.Sprintf("attachment; filename=%q", filename),
		},
	)
	if err != nil {
		h.logger.Error("generate download link failed", slog.Any("error", err))
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL, "filename": filename})
}

// exportFileName 组装下载文件名：PDF 直接用全名，DOCX 追加 _Resume 后缀。
func exportFileName(fullName, format string) string {
	if format == "docx" {
		base := strings.TrimSpace(fullName)
		if base == "" {
			return "Resume.docx"
		}
		return raster.FileName(base+" Resume", "docx")
	}
	return raster.FileName(fullName, format)
}
