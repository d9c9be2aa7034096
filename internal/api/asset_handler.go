package api

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"resumeforge/internal/storage"
)

const (
	avatarUploadWindow = time.Minute
	avatarUploadLimit  = 10
)

var avatarContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// AssetHandler 负责头像上传与访问。
type AssetHandler struct {
	Storage     *storage.Client
	RedisClient *redis.Client
	Logger      *slog.Logger
	ClamdAddr   string
	MaxBytes    int64
}

// NewAssetHandler 返回 AssetHandler 实例。ClamdAddr 为空时跳过病毒扫描。
func NewAssetHandler(storageClient *storage.Client, redisClient *redis.Client, logger *slog.Logger, clamdAddr string, maxBytes int64) *AssetHandler {
	return &AssetHandler{
		Storage:     storageClient,
		RedisClient: redisClient,
		Logger:      logger,
		ClamdAddr:   clamdAddr,
		MaxBytes:    maxBytes,
	}
}

// UploadAvatar 处理头像上传：限流、类型嗅探、病毒扫描，最后入桶。
func (h *AssetHandler) UploadAvatar(c *gin.Context) {
	rateKey := fmt.Sprintf("rate:avatar_upload:%s", c.ClientIP())
	count, err := incrWithTTL(c.Request.Context(), h.RedisClient, rateKey, avatarUploadWindow)
	if err != nil {
		h.Logger.Warn("rate counter unavailable, allowing upload", slog.Any("error", err))
	} else if count > avatarUploadLimit {
		Error(c, http.StatusTooManyRequests, "too many uploads, slow down")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if h.MaxBytes > 0 && file.Size > h.MaxBytes {
		BadRequest(c, fmt.Sprintf("file exceeds %d bytes", h.MaxBytes))
		return
	}

	// 用文件头嗅探真实类型，不信任客户端声明的 Content-Type。
	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(fileReader, head)
	fileReader.Close()
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		Internal(c, "failed to read file")
		return
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := avatarContentTypes[contentType]
	if !ok {
		BadRequest(c, fmt.Sprintf("unsupported content type %q", contentType))
		return
	}

	if h.ClamdAddr != "" {
		if ok := h.scanFile(c, file); !ok {
			return
		}
	}

	fileReader, err = file.Open()
	if err != nil {
		Internal(c, "failed to reopen file")
		return
	}
	defer fileReader.Close()

	objectKey := fmt.Sprintf("avatars/%s%s", uuid.NewString(), ext)
	if _, err := h.Storage.UploadFile(c.Request.Context(), objectKey, fileReader, file.Size, contentType); err != nil {
		h.Logger.Error("upload avatar failed", slog.Any("error", err))
		Internal(c, "failed to upload file")
		return
	}

	signedURL, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		h.Logger.Error("generate avatar url failed", slog.Any("error", err))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"objectKey": objectKey,
		"url":       signedURL,
	})
}

// scanFile 把上传内容送 clamd 扫描；返回 false 表示已经写入响应。
func (h *AssetHandler) scanFile(c *gin.Context, file *multipart.FileHeader) bool {
	clamdClient := clamd.NewClamd(h.ClamdAddr)

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return false
	}

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	fileReader.Close()
	if err != nil {
		h.Logger.Error("scan file failed", slog.Any("error", err))
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

// GetAvatarURL 返回头像对象的临时预签名 URL。
func (h *AssetHandler) GetAvatarURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}
	if !isAvatarKey(objectKey) {
		BadRequest(c, "invalid key")
		return
	}

	signedURL, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		h.Logger.Error("generate presigned url failed", slog.Any("error", err))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// isAvatarKey 校验对象键必须落在 avatars/ 前缀下且不含路径穿越。
func isAvatarKey(key string) bool {
	if !strings.HasPrefix(key, "avatars/") {
		return false
	}
	if strings.Contains(key, "..") || strings.Contains(key, "//") {
		return false
	}
	return true
}
