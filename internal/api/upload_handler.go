package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pdflib "github.com/ledongthuc/pdf"
	"gorm.io/gorm"

	"resumecloner/internal/api/middleware"
	"resumecloner/internal/database"
	"resumecloner/internal/errcode"
	"resumecloner/internal/tasks"
)

// maxUploadBytes 是上传原稿的大小上限（20MB）。
const maxUploadBytes = 20 << 20

// UploadHandler 负责接收简历原稿并触发转写任务。
// 闸门按序执行：媒体类型 → 大小 → 病毒扫描 → PDF 结构校验，
// 全部通过后才落库、上传对象并入队。
type UploadHandler struct {
	db        *gorm.DB
	tasks     TaskEnqueuer
	storage   ObjectStorage
	logger    *slog.Logger
	clamdAddr string
	maxBytes  int64
}

// NewUploadHandler 构造 UploadHandler。clamdAddr 为空时跳过病毒扫描。
func NewUploadHandler(db *gorm.DB, enqueuer TaskEnqueuer, storageClient ObjectStorage, logger *slog.Logger, clamdAddr string) *UploadHandler {
	return &UploadHandler{
		db:        db,
		tasks:     enqueuer,
		storage:   storageClient,
		logger:    logger,
		clamdAddr: clamdAddr,
		maxBytes:  maxUploadBytes,
	}
}

// UploadResume 处理原稿上传，校验通过后返回 202 与草稿 ID。
func (h *UploadHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !isSupportedUpload(contentType) {
		ErrorCode(c, http.StatusBadRequest, errcode.UnsupportedFormat,
			"only image and PDF files are supported")
		return
	}

	if file.Size > h.maxBytes {
		ErrorCode(c, http.StatusBadRequest, errcode.FileTooLarge,
			"file exceeds the 20MB limit")
		return
	}

	if h.clamdAddr != "" {
		if ok := h.scanUpload(c, file); !ok {
			return
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	data, err := io.ReadAll(fileReader)
	fileReader.Close()
	if err != nil {
		Internal(c, "failed to read file")
		return
	}

	if contentType == "application/pdf" {
		if err := validatePDF(data); err != nil {
			ErrorCode(c, http.StatusBadRequest, errcode.UnsupportedFormat,
				"corrupt or unsupported PDF file")
			return
		}
	}

	ctx := c.Request.Context()
	draft := database.Draft{
		Title:  uploadTitle(file.Filename),
		Status: database.StatusUploaded,
	}
	if err := h.db.WithContext(ctx).Create(&draft).Error; err != nil {
		Internal(c, "failed to create draft")
		return
	}

	objectKey := fmt.Sprintf("sources/%d/%s%s", draft.ID, uuid.NewString(), extensionFor(contentType))
	if _, err := h.storage.UploadFile(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		h.logger.Error("upload source to minio failed", slog.Any("error", err))
		Internal(c, "failed to store upload")
		return
	}

	if err := h.db.WithContext(ctx).Model(&draft).Updates(map[string]any{
		"source_key":  objectKey,
		"source_mime": contentType,
	}).Error; err != nil {
		Internal(c, "failed to update draft")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewExtractTask(draft.ID, correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}
	if _, err := h.tasks.Enqueue(task); err != nil {
		Internal(c, "failed to enqueue extraction")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"draft_id":       draft.ID,
		"status":         draft.Status,
		"correlation_id": correlationID,
	})
}

// scanUpload 执行 ClamAV 流式扫描，失败或命中时写响应并返回 false。
func (h *UploadHandler) scanUpload(c *gin.Context, file *multipart.FileHeader) bool {
	clamdClient := clamd.NewClamd(h.clamdAddr)

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return false
	}

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	fileReader.Close()
	if err != nil {
		h.logger.Error("scan file", slog.String("error", err.Error()))
		Internal(c, "failed to scan file")
		return false
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			BadRequest(c, "malicious file detected")
			return false
		}
	}
	return true
}

func isSupportedUpload(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

// validatePDF 用独立解析器确认 PDF 结构可读。
// 解析器只认文件路径，经由临时文件中转。
func validatePDF(data []byte) error {
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	f, reader, err := pdflib.Open(tmp.Name())
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	if reader.NumPage() < 1 {
		return fmt.Errorf("pdf has no pages")
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

func uploadTitle(filename string) string {
	name := strings.TrimSpace(filename)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	if name == "" {
		return "Uploaded Resume"
	}
	return name
}
