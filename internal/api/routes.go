package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumecloner/internal/storage"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	clamdAddr string,
) {
	uploadHandler := NewUploadHandler(db, asynqClient, storageClient, logger, clamdAddr)
	draftHandler := NewDraftHandler(db, storageClient, logger)
	exportHandler := NewExportHandler(db, asynqClient, storageClient, logger)
	templateHandler := NewTemplateHandler()
	wsHandler := NewWsHandler(redisClient, logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		v1.GET("/templates", templateHandler.ListTemplates)
		v1.GET("/templates/fonts", templateHandler.ListFonts)

		drafts := v1.Group("/drafts")
		{
			drafts.POST("", draftHandler.CreateDraft)
			drafts.GET("/example", draftHandler.ExampleDraft)
			drafts.POST("/import", draftHandler.ImportDraft)
			drafts.POST("/upload", uploadHandler.UploadResume)

			drafts.GET("/:id", draftHandler.GetDraft)
			drafts.PUT("/:id", draftHandler.UpdateDraft)
			drafts.DELETE("/:id", draftHandler.DeleteDraft)
			drafts.POST("/:id/ops", draftHandler.ApplyOps)
			drafts.GET("/:id/export", draftHandler.ExportDraft)
			drafts.GET("/:id/preview", draftHandler.Preview)

			drafts.POST("/:id/exports", exportHandler.RequestExport)
			drafts.GET("/:id/download", exportHandler.Download)
		}
	}
}
