package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumecloner/internal/database"
	"resumecloner/internal/errcode"
	"resumecloner/internal/preview"
	"resumecloner/internal/raster"
	"resumecloner/internal/storage"
	"resumecloner/internal/tasks"
)

// PDFExportHandler 负责消费 PDF 导出任务：渲染预览 HTML、
// 截取画布位图、按页高切分并合成 PDF。
type PDFExportHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	capturer    raster.Capturer
	logger      *slog.Logger
}

// NewPDFExportHandler 创建任务处理器。
func NewPDFExportHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	capturer raster.Capturer,
	logger *slog.Logger,
) *PDFExportHandler {
	return &PDFExportHandler{
		db:          db,
		storage:     storage,
		redisClient: redisClient,
		capturer:    capturer,
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *PDFExportHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("draft_id", int(payload.DraftID)),
	)
	log.Info("Starting WYSIWYG PDF export task...")

	var draft database.Draft
	if err := h.db.WithContext(ctx).First(&draft, payload.DraftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("draft not found, skipping task")
			return nil
		}
		log.Error("query draft failed", slog.Any("error", err))
		return err
	}

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		notify := DraftNotifyMessage{
			Status:        "error",
			DraftID:       draft.ID,
			Task:          tasks.TypeExportPDF,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.RenderCaptureFailure,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := publishDraftNotify(ctx, h.redisClient, notify); err != nil {
			log.Error("publish pdf error notification failed", slog.Any("error", err))
		}
	}()

	doc, err := documentFromDraft(&draft)
	if err != nil {
		log.Error("decode draft content failed", slog.Any("error", err))
		return err
	}

	html, err := preview.Render(doc)
	if err != nil {
		log.Error("render preview html failed", slog.Any("error", err))
		return err
	}

	capture, err := h.capturer.CapturePage(html)
	if err != nil {
		log.Error("capture resume canvas failed", slog.Any("error", err))
		return err
	}
	log.Info("canvas captured",
		slog.Int("width_px", capture.WidthPx),
		slog.Int("height_px", capture.HeightPx),
		slog.Int("pages", raster.PageCount(capture.WidthPx, capture.HeightPx)),
	)

	pdfBytes, err := raster.BuildPDF(capture.PNG, capture.WidthPx, capture.HeightPx)
	if err != nil {
		log.Error("build pdf failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("exports/%d/%s.pdf", draft.ID, uuid.NewString())
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&draft).
		Update("pdf_key", objectName).Error; err != nil {
		log.Error("update draft pdf key failed", slog.Any("error", err))
		return err
	}

	notify := DraftNotifyMessage{
		Status:        "completed",
		DraftID:       draft.ID,
		Task:          tasks.TypeExportPDF,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if err := publishDraftNotify(ctx, h.redisClient, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	// 缩略图失败不影响导出结果，仅记录告警。
	if err := h.generateThumbnail(ctx, &draft, capture.PNG); err != nil {
		log.Warn("generate draft thumbnail failed", slog.Any("error", err))
	}

	log.Info("PDF export task completed successfully.")
	return nil
}

func (h *PDFExportHandler) generateThumbnail(ctx context.Context, draft *database.Draft, capturePNG []byte) error {
	const presignTTL = 7 * 24 * time.Hour

	thumbBytes, err := renderThumbnail(capturePNG)
	if err != nil {
		return fmt.Errorf("render thumbnail: %w", err)
	}

	objectName := fmt.Sprintf("thumbnails/draft/%d/preview.jpg", draft.ID)
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(thumbBytes), int64(len(thumbBytes)), "image/jpeg"); err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}

	presignedURL, err := h.storage.GeneratePresignedURL(ctx, objectName, presignTTL)
	if err != nil {
		return fmt.Errorf("generate thumbnail presigned url: %w", err)
	}

	if err := h.db.WithContext(ctx).Model(draft).Updates(map[string]any{
		"thumbnail_key": objectName,
		"thumbnail_url": presignedURL,
	}).Error; err != nil {
		return fmt.Errorf("update draft thumbnail: %w", err)
	}

	return nil
}
