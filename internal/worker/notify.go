package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// 统一的 WebSocket 消息协议（通过 Redis Pub/Sub 转发给前端）。
// 注意：这里的字段名与前端解析保持一致。
type DraftNotifyMessage struct {
	Status        string `json:"status"`
	DraftID       uint   `json:"draft_id"`
	Task          string `json:"task"`
	CorrelationID string `json:"correlation_id"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}

// NotifyChannel 返回草稿的 Pub/Sub 频道名，生产者与订阅端共用。
func NotifyChannel(draftID uint) string {
	return fmt.Sprintf("draft_notify:%d", draftID)
}

func publishDraftNotify(ctx context.Context, rdb *redis.Client, notify DraftNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := NotifyChannel(notify.DraftID)
	if err := rdb.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
