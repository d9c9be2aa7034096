package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/storage"
	"resumeforge/internal/store"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	docStore *store.DocumentStore,
	db *gorm.DB,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	storageClient *storage.Client,
	logger *slog.Logger,
	cfg *config.Config,
) {
	resumeHandler := NewResumeHandler(docStore)
	previewHandler := NewPreviewHandler(docStore)
	exportHandler := NewExportHandler(db, docStore, asynqClient, storageClient)
	wsHandler := NewWsHandler(redisClient, logger, cfg.API.AllowedOrigins)
	assetHandler := NewAssetHandler(storageClient, redisClient, logger, cfg.Upload.ClamdAddr, cfg.Upload.MaxBytes)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		resumeGroup := v1.Group("/resume")
		{
			resumeGroup.GET("", resumeHandler.GetResume)
			resumeGroup.PUT("/sections/:key", resumeHandler.UpdateSection)
			resumeGroup.POST("/sections/:key/toggle", resumeHandler.ToggleSection)
			resumeGroup.POST("/sections/reorder", resumeHandler.ReorderSections)
			resumeGroup.POST("/template", resumeHandler.ChangeTemplate)
			resumeGroup.PUT("/color-scheme", resumeHandler.SetColorScheme)
			resumeGroup.GET("/color-schemes", resumeHandler.ListColorSchemes)
			resumeGroup.POST("/reset", resumeHandler.ResetResume)
		}

		v1.GET("/theme", resumeHandler.GetTheme)
		v1.PUT("/theme", resumeHandler.SetTheme)

		v1.GET("/preview", previewHandler.GetPreview)

		exportGroup := v1.Group("/exports")
		{
			exportGroup.POST("", exportHandler.CreateExport)
			exportGroup.GET("/:id", exportHandler.GetExport)
			exportGroup.GET("/:id/download-link", exportHandler.GetDownloadLink)
		}

		assetGroup := v1.Group("/assets")
		{
			assetGroup.POST("/avatar", assetHandler.UploadAvatar)
			assetGroup.GET("/avatar", assetHandler.GetAvatarURL)
		}

		internalGroup := v1.Group("/internal")
		internalGroup.Use(middleware.InternalSecretMiddleware(cfg.API.InternalSecret))
		{
			internalGroup.POST("/reset", resumeHandler.ResetResume)
		}
	}
}
