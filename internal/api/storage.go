package api

import (
	"context"
	"io"
	"time"

	"github.com/hibiken/asynq"
	"github.com/minio/minio-go/v7"
)

// ObjectStorage 抽象处理器用到的对象存储操作，便于测试注入。
// *storage.Client 是生产实现。
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	GeneratePresignedURLWithParams(ctx context.Context, objectKey string, duration time.Duration, params map[string]string) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// TaskEnqueuer 抽象任务入队，*asynq.Client 是生产实现。
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
