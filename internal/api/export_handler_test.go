package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resumeforge/internal/database"
)

func newExportTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.Export{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	handler := NewExportHandler(db, nil, nil, nil)
	router := gin.New()
	router.GET("/v1/exports/:id", handler.GetExport)
	router.GET("/v1/exports/:id/download-link", handler.GetDownloadLink)
	return router, db
}

func TestGetExportStatus(t *testing.T) {
	router, db := newExportTestRouter(t)

	export := database.Export{
		Snapshot: datatypes.JSON([]byte(`{}`)),
		Template: "jamie",
		Status:   database.ExportStatusQueued,
	}
	if err := db.Create(&export).Error; err != nil {
		t.Fatalf("create export: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/v1/exports/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
}

func TestGetExportNotFound(t *testing.T) {
	router, _ := newExportTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/exports/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetExportInvalidID(t *testing.T) {
	router, _ := newExportTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/exports/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDownloadLinkNotReady(t *testing.T) {
	router, db := newExportTestRouter(t)

	export := database.Export{
		Snapshot: datatypes.JSON([]byte(`{}`)),
		Template: "jamie",
		Status:   database.ExportStatusQueued,
	}
	if err := db.Create(&export).Error; err != nil {
		t.Fatalf("create export: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/v1/exports/1/download-link", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body=%s", w.Code, w.Body.String())
	}
}

func TestDownloadLinkFailedExportIncludesError(t *testing.T) {
	router, db := newExportTestRouter(t)

	export := database.Export{
		Snapshot:     datatypes.JSON([]byte(`{}`)),
		Template:     "jamie",
		Status:       database.ExportStatusFailed,
		ErrorMessage: "render blew up",
	}
	if err := db.Create(&export).Error; err != nil {
		t.Fatalf("create export: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/v1/exports/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); !strings.Contains(got, "render blew up") {
		t.Errorf("expected error message in response, got %s", got)
	}
}
