package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumecloner/internal/database"
	"resumecloner/internal/errcode"
	"resumecloner/internal/flowdoc"
	"resumecloner/internal/storage"
	"resumecloner/internal/tasks"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocxExportHandler 负责消费 DOCX 导出任务。
// 与 PDF 不同，这里不走浏览器截图，而是独立重建流式文档。
type DocxExportHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewDocxExportHandler 创建任务处理器。
func NewDocxExportHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
) *DocxExportHandler {
	return &DocxExportHandler{
		db:          db,
		storage:     storage,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *DocxExportHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
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
	log.Info("Starting DOCX export task...")

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
			Task:          tasks.TypeExportDocx,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.DocumentExportFailure,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := publishDraftNotify(ctx, h.redisClient, notify); err != nil {
			log.Error("publish docx error notification failed", slog.Any("error", err))
		}
	}()

	doc, err := documentFromDraft(&draft)
	if err != nil {
		log.Error("decode draft content failed", slog.Any("error", err))
		return err
	}

	var buf bytes.Buffer
	if err := flowdoc.Write(doc, &buf); err != nil {
		log.Error("generate docx failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("exports/%d/%s.docx", draft.ID, uuid.NewString())
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), docxContentType); err != nil {
		log.Error("upload docx to minio failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&draft).
		Update("docx_key", objectName).Error; err != nil {
		log.Error("update draft docx key failed", slog.Any("error", err))
		return err
	}

	notify := DraftNotifyMessage{
		Status:        "completed",
		DraftID:       draft.ID,
		Task:          tasks.TypeExportDocx,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if err := publishDraftNotify(ctx, h.redisClient, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("DOCX export task completed successfully.")
	return nil
}
