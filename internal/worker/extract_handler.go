package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumecloner/internal/database"
	"resumecloner/internal/errcode"
	"resumecloner/internal/extract"
	"resumecloner/internal/resume"
	"resumecloner/internal/storage"
	"resumecloner/internal/tasks"
)

// Transcriber 抽象视觉转写调用，便于测试替换。
type Transcriber interface {
	Transcribe(ctx context.Context, mimeType string, data []byte) (extract.RawResume, error)
}

// ExtractTaskHandler 负责消费上传转写任务。
type ExtractTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	transcriber Transcriber
	ids         resume.IDGenerator
	logger      *slog.Logger
}

// NewExtractTaskHandler 创建任务处理器。
func NewExtractTaskHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	transcriber Transcriber,
	logger *slog.Logger,
) *ExtractTaskHandler {
	return &ExtractTaskHandler{
		db:          db,
		storage:     storage,
		redisClient: redisClient,
		transcriber: transcriber,
		ids:         resume.UUIDGenerator{},
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *ExtractTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ExtractPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("draft_id", int(payload.DraftID)),
	)
	log.Info("Starting resume transcription task...")

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

		if err := h.db.WithContext(ctx).Model(&draft).
			Update("status", database.StatusFailed).Error; err != nil {
			log.Error("mark draft failed", slog.Any("error", err))
		}
		notify := DraftNotifyMessage{
			Status:        "error",
			DraftID:       draft.ID,
			Task:          tasks.TypeExtract,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.ExtractionFailure,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := publishDraftNotify(ctx, h.redisClient, notify); err != nil {
			log.Error("publish extraction error notification failed", slog.Any("error", err))
		}
	}()

	if err := h.db.WithContext(ctx).Model(&draft).
		Update("status", database.StatusExtracting).Error; err != nil {
		log.Error("mark draft extracting", slog.Any("error", err))
		return err
	}

	source, err := h.downloadSource(ctx, draft.SourceKey)
	if err != nil {
		log.Error("download source object failed", slog.Any("error", err))
		return err
	}

	raw, err := h.transcriber.Transcribe(ctx, draft.SourceMIME, source)
	if err != nil {
		log.Error("transcribe resume failed", slog.Any("error", err))
		return err
	}

	sourceDataURL := fmt.Sprintf("data:%s;base64,%s",
		draft.SourceMIME, base64.StdEncoding.EncodeToString(source))
	doc := extract.Map(raw, h.ids, sourceDataURL)

	content, err := json.Marshal(doc)
	if err != nil {
		log.Error("marshal extracted document failed", slog.Any("error", err))
		return err
	}

	update := map[string]any{
		"content": content,
		"status":  database.StatusCompleted,
	}
	if name := strings.TrimSpace(doc.PersonalInfo.FullName); name != "" {
		update["title"] = name
	}
	if err := h.db.WithContext(ctx).Model(&draft).Updates(update).Error; err != nil {
		log.Error("update draft failed", slog.Any("error", err))
		return err
	}

	notify := DraftNotifyMessage{
		Status:        "completed",
		DraftID:       draft.ID,
		Task:          tasks.TypeExtract,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if err := publishDraftNotify(ctx, h.redisClient, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("Resume transcription task completed successfully.")
	return nil
}

func (h *ExtractTaskHandler) downloadSource(ctx context.Context, key string) ([]byte, error) {
	obj, err := h.storage.GetObject(ctx, key)
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read source object %q: %w", key, err)
	}
	return data, nil
}
