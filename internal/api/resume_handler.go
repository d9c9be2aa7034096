package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/render"
	"resumeforge/internal/resume"
	"resumeforge/internal/store"
)

// ResumeHandler 负责简历文档的读写端点。
type ResumeHandler struct {
	store *store.DocumentStore
}

// NewResumeHandler 返回 ResumeHandler 实例。
func NewResumeHandler(docStore *store.DocumentStore) *ResumeHandler {
	return &ResumeHandler{store: docStore}
}

// GetResume 返回当前完整文档。
func (h *ResumeHandler) GetResume(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Document())
}

// UpdateSection 整体替换指定节的内容。
// 节键是封闭集合，每个键对应一种请求体形状；未知键返回 400。
func (h *ResumeHandler) UpdateSection(c *gin.Context) {
	key := resume.SectionID(c.Param("key"))
	if !resume.ValidSectionID(key) {
		BadRequest(c, fmt.Sprintf("unknown section %q", key))
		return
	}

	patch, err := decodeSectionPatch(key, c.Request.Body)
	if err != nil {
		BadRequest(c, "invalid section payload")
		return
	}

	doc := h.store.Apply(c.Request.Context(), patch)
	c.JSON(http.StatusOK, doc)
}

// decodeSectionPatch 按节键解码请求体为对应的补丁变体。
func decodeSectionPatch(key resume.SectionID, body io.Reader) (resume.Patch, error) {
	dec := json.NewDecoder(body)

	switch key {
	case resume.SectionPersonal:
		var payload resume.PersonalInfo
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetPersonal{Personal: payload}, nil
	case resume.SectionSummary:
		// null 请求体表示移除摘要。
		var payload *resume.Summary
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetSummary{Summary: payload}, nil
	case resume.SectionExperience:
		var payload []resume.Experience
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetExperience{Experience: payload}, nil
	case resume.SectionEducation:
		var payload []resume.Education
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetEducation{Education: payload}, nil
	case resume.SectionSkills:
		var payload []resume.SkillGroup
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetSkills{Skills: payload}, nil
	case resume.SectionProjects:
		var payload []resume.Project
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetProjects{Projects: payload}, nil
	case resume.SectionLanguages:
		var payload []resume.Language
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetLanguages{Languages: payload}, nil
	case resume.SectionCertificates:
		var payload []resume.Certificate
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetCertificates{Certificates: payload}, nil
	case resume.SectionReferences:
		var payload []resume.Reference
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		return resume.SetReferences{References: payload}, nil
	default:
		return nil, fmt.Errorf("unknown section %q", key)
	}
}

// ToggleSection 翻转节的显示开关。未知键是无声的空操作，
// 与编辑器侧边栏的行为保持一致。
func (h *ResumeHandler) ToggleSection(c *gin.Context) {
	key := resume.SectionID(c.Param("key"))
	doc := h.store.ToggleSection(c.Request.Context(), key)
	c.JSON(http.StatusOK, doc)
}

type reorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

// ReorderSections 把节从 from 位置移动到 to 位置（按当前显示顺序）。
func (h *ResumeHandler) ReorderSections(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "from and to are required")
		return
	}

	doc, err := h.store.ReorderSections(c.Request.Context(), *req.From, *req.To)
	if err != nil {
		if errors.Is(err, resume.ErrSectionIndexOutOfRange) {
			BadRequest(c, err.Error())
			return
		}
		middleware.LoggerFromContext(c).Error("reorder sections failed", slog.Any("error", err))
		Internal(c, "failed to reorder sections")
		return
	}
	c.JSON(http.StatusOK, doc)
}

type changeTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

// ChangeTemplate 切换模板。配色会同时重置为该模板的默认配色。
func (h *ResumeHandler) ChangeTemplate(c *gin.Context) {
	var req changeTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "template is required")
		return
	}

	doc, err := h.store.ChangeTemplate(c.Request.Context(), resume.TemplateID(req.Template))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

type colorSchemeRequest struct {
	ColorScheme string `json:"colorScheme" binding:"required"`
}

// SetColorScheme 修改当前模板下的配色。配色必须属于当前模板。
func (h *ResumeHandler) SetColorScheme(c *gin.Context) {
	var req colorSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "colorScheme is required")
		return
	}

	doc := h.store.Document()
	valid := false
	for _, palette := range render.SchemesFor(doc.ActiveTemplate) {
		if palette.ID == req.ColorScheme {
			valid = true
			break
		}
	}
	if !valid {
		BadRequest(c, fmt.Sprintf("unknown color scheme %q for template %q", req.ColorScheme, doc.ActiveTemplate))
		return
	}

	updated := h.store.Apply(c.Request.Context(), resume.SetColorScheme{ColorScheme: req.ColorScheme})
	c.JSON(http.StatusOK, updated)
}

// ListColorSchemes 返回当前模板支持的配色，供编辑器选择器使用。
func (h *ResumeHandler) ListColorSchemes(c *gin.Context) {
	doc := h.store.Document()
	palettes := render.SchemesFor(doc.ActiveTemplate)

	items := make([]gin.H, 0, len(palettes))
	for _, palette := range palettes {
		items = append(items, gin.H{
			"id":        palette.ID,
			"name":      palette.Name,
			"primary":   palette.Primary,
			"secondary": palette.Secondary,
		})
	}
	c.JSON(http.StatusOK, gin.H{"template": doc.ActiveTemplate, "items": items})
}

// ResetResume 把文档整体恢复为默认内容。
func (h *ResumeHandler) ResetResume(c *gin.Context) {
	doc := h.store.ResetToDefault(c.Request.Context())
	c.JSON(http.StatusOK, doc)
}

// GetTheme 返回编辑器主题。
func (h *ResumeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.store.Theme()})
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// SetTheme 切换编辑器主题。
func (h *ResumeHandler) SetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "theme is required")
		return
	}
	if err := h.store.SetTheme(c.Request.Context(), resume.ThemeMode(req.Theme)); err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": h.store.Theme()})
}
