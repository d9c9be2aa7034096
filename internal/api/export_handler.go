package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/database"
	"resumeforge/internal/storage"
	"resumeforge/internal/store"
	"resumeforge/internal/tasks"
)

const downloadLinkTTL = 5 * time.Minute

// ExportHandler 负责 PDF 导出的创建、查询与下载链接签发。
type ExportHandler struct {
	db          *gorm.DB
	store       *store.DocumentStore
	asynqClient *asynq.Client
	storage     *storage.Client
}

// NewExportHandler 返回 ExportHandler 实例。
func NewExportHandler(db *gorm.DB, docStore *store.DocumentStore, asynqClient *asynq.Client, storageClient *storage.Client) *ExportHandler {
	return &ExportHandler{
		db:          db,
		store:       docStore,
		asynqClient: asynqClient,
		storage:     storageClient,
	}
}

type createExportRequest struct {
	ClientID string `json:"clientId"`
}

// CreateExport 固化当前文档快照，落库并投递异步导出任务。
// 任务渲染的是提交瞬间的快照，之后的编辑不影响本次导出。
func (h *ExportHandler) CreateExport(c *gin.Context) {
	log := middleware.LoggerFromContext(c)

	var req createExportRequest
	// 请求体可选；没有 clientId 就收不到 WebSocket 通知，但轮询仍可用。
	_ = c.ShouldBindJSON(&req)

	doc := h.store.Document()
	snapshot, err := json.Marshal(doc)
	if err != nil {
		log.Error("marshal document snapshot failed", slog.Any("error", err))
		Internal(c, "failed to snapshot document")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	export := database.Export{
		Snapshot:      datatypes.JSON(snapshot),
		Template:      string(doc.ActiveTemplate),
		Status:        database.ExportStatusQueued,
		CorrelationID: correlationID,
		ClientID:      req.ClientID,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&export).Error; err != nil {
		log.Error("create export record failed", slog.Any("error", err))
		Internal(c, "failed to create export")
		return
	}

	task, err := tasks.NewPDFExportTask(export.ID, req.ClientID, correlationID)
	if err != nil {
		log.Error("build export task failed", slog.Any("error", err))
		Internal(c, "failed to enqueue export")
		return
	}
	if _, err := h.asynqClient.EnqueueContext(c.Request.Context(), task,
		asynq.MaxRetry(5),
		asynq.Timeout(2*time.Minute),
		asynq.TaskID(uuid.NewString()),
	); err != nil {
		log.Error("enqueue export task failed", slog.Any("error", err))
		Internal(c, "failed to enqueue export")
		return
	}

	log.Info("export task enqueued", slog.Uint64("export_id", uint64(export.ID)))
	c.JSON(http.StatusAccepted, gin.H{
		"exportId": export.ID,
		"status":   export.Status,
	})
}

// GetExport 查询导出记录状态。
func (h *ExportHandler) GetExport(c *gin.Context) {
	export, ok := h.findExport(c)
	if !ok {
		return
	}

	resp := gin.H{
		"exportId":  export.ID,
		"status":    export.Status,
		"template":  export.Template,
		"createdAt": export.CreatedAt,
	}
	if export.Status == database.ExportStatusFailed && export.ErrorMessage != "" {
		resp["errorMessage"] = export.ErrorMessage
	}
	c.JSON(http.StatusOK, resp)
}

// GetDownloadLink 为已完成的导出签发限时下载链接。
func (h *ExportHandler) GetDownloadLink(c *gin.Context) {
	log := middleware.LoggerFromContext(c)

	export, ok := h.findExport(c)
	if !ok {
		return
	}

	if export.Status != database.ExportStatusCompleted || export.PdfKey == "" {
		Conflict(c, "pdf not ready")
		return
	}

	if _, err := h.storage.StatObject(c.Request.Context(), export.PdfKey); err != nil {
		if storage.IsNoSuchKey(err) {
			NotFound(c, "pdf object missing")
			return
		}
		log.Error("stat pdf object failed", slog.Any("error", err))
		Internal(c, "failed to check pdf object")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURL(c.Request.Context(), export.PdfKey, downloadLinkTTL)
	if err != nil {
		log.Error("generate download link failed", slog.Any("error", err))
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       signedURL,
		"expiresIn": int(downloadLinkTTL.Seconds()),
	})
}

func (h *ExportHandler) findExport(c *gin.Context) (*database.Export, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "invalid export id")
		return nil, false
	}

	var export database.Export
	if err := h.db.WithContext(c.Request.Context()).First(&export, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "export not found")
			return nil, false
		}
		middleware.LoggerFromContext(c).Error("query export failed", slog.Any("error", err))
		Internal(c, "failed to query export")
		return nil, false
	}
	return &export, true
}
