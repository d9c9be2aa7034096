package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/render"
	"resumeforge/internal/store"
)

// PreviewHandler 返回当前文档渲染后的 HTML 预览。
// 预览与 PDF 导出走同一条渲染管线，所见即所得。
type PreviewHandler struct {
	store *store.DocumentStore
}

// NewPreviewHandler 返回 PreviewHandler 实例。
func NewPreviewHandler(docStore *store.DocumentStore) *PreviewHandler {
	return &PreviewHandler{store: docStore}
}

// GetPreview 渲染当前文档并以 HTML 返回。
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	doc := h.store.Document()
	html, err := render.HTML(doc)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render preview failed", slog.Any("error", err))
		Internal(c, "failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
