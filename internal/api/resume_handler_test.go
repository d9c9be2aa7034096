package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/resume"
	"resumeforge/internal/store"
)

type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := f.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.DocumentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	docStore := store.New(context.Background(), newFakeKV(), logger)
	handler := NewResumeHandler(docStore)

	router := gin.New()
	router.GET("/v1/resume", handler.GetResume)
	router.PUT("/v1/resume/sections/:key", handler.UpdateSection)
	router.POST("/v1/resume/sections/:key/toggle", handler.ToggleSection)
	router.POST("/v1/resume/sections/reorder", handler.ReorderSections)
	router.POST("/v1/resume/template", handler.ChangeTemplate)
	router.PUT("/v1/resume/color-scheme", handler.SetColorScheme)
	router.GET("/v1/resume/color-schemes", handler.ListColorSchemes)
	router.POST("/v1/resume/reset", handler.ResetResume)
	router.GET("/v1/theme", handler.GetTheme)
	router.PUT("/v1/theme", handler.SetTheme)
	return router, docStore
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) resume.Data {
	t.Helper()
	var doc resume.Data
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode document response: %v", err)
	}
	return doc
}

func TestGetResumeReturnsDefaultDocument(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	doc := decodeDoc(t, w)
	if len(doc.Sections) != 9 {
		t.Fatalf("sections = %d, want 9", len(doc.Sections))
	}
	if doc.Personal.FullName != "Your Name" {
		t.Errorf("fullName = %q, want default", doc.Personal.FullName)
	}
	if doc.ActiveTemplate != resume.TemplateJamie {
		t.Errorf("activeTemplate = %q, want jamie", doc.ActiveTemplate)
	}
}

func TestUpdatePersonalSection(t *testing.T) {
	router, docStore := newTestRouter(t)

	payload := `{"fullName":"Ada Lovelace","jobTitle":"Engineer","email":"ada@example.com","phone":"","location":"London"}`
	w := doJSON(t, router, http.MethodPut, "/v1/resume/sections/personal", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}

	doc := docStore.Document()
	if doc.Personal.FullName != "Ada Lovelace" {
		t.Errorf("fullName = %q, want Ada Lovelace", doc.Personal.FullName)
	}
	// 其余节不受影响。
	if len(doc.Experience) != 1 {
		t.Errorf("experience length changed: %d", len(doc.Experience))
	}
}

func TestUpdateUnknownSectionRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/sections/hobbies", `[]`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateSummaryNullRemoves(t *testing.T) {
	router, docStore := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/sections/summary", `null`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if doc := docStore.Document(); doc.Summary != nil {
		t.Errorf("summary = %+v, want nil", doc.Summary)
	}
}

func TestUpdateExperienceAssignsIDs(t *testing.T) {
	router, docStore := newTestRouter(t)

	payload := `[{"company":"Acme","position":"Dev","startDate":"2020-01","endDate":"","isCurrentPosition":true,"description":"","bullets":["shipped"]}]`
	w := doJSON(t, router, http.MethodPut, "/v1/resume/sections/experience", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	doc := docStore.Document()
	if len(doc.Experience) != 1 {
		t.Fatalf("experience length = %d, want 1", len(doc.Experience))
	}
	if doc.Experience[0].ID == "" {
		t.Error("expected generated id for new experience item")
	}
}

func TestToggleSection(t *testing.T) {
	router, docStore := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/sections/projects/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	for _, section := range docStore.Document().Sections {
		if section.ID == resume.SectionProjects && section.Enabled {
			t.Error("projects should be disabled after toggle")
		}
	}
}

func TestReorderSections(t *testing.T) {
	router, docStore := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/sections/reorder", `{"from":4,"to":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}

	doc := docStore.Document()
	ordered := doc.EnabledSectionsInOrder()
	if ordered[0].ID != resume.SectionSkills {
		t.Errorf("first section = %q, want skills", ordered[0].ID)
	}
}

func TestReorderOutOfRangeRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/sections/reorder", `{"from":0,"to":99}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestReorderMissingFieldsRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/sections/reorder", `{"from":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChangeTemplateResetsColorScheme(t *testing.T) {
	router, docStore := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/color-scheme", `{"colorScheme":"green"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set color scheme status = %d, want 200", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/v1/resume/template", `{"template":"lauren"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("change template status = %d, want 200", w.Code)
	}

	doc := docStore.Document()
	if doc.ActiveTemplate != resume.TemplateLauren {
		t.Errorf("template = %q, want lauren", doc.ActiveTemplate)
	}
	if doc.ColorScheme != resume.DefaultColorScheme {
		t.Errorf("colorScheme = %q, want default after template change", doc.ColorScheme)
	}
}

func TestChangeTemplateUnknownRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/resume/template", `{"template":"brutalist"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestColorSchemeMustBelongToActiveTemplate(t *testing.T) {
	router, _ := newTestRouter(t)

	// "emerald" 属于 juan 模板，jamie 下不可用。
	w := doJSON(t, router, http.MethodPut, "/v1/resume/color-scheme", `{"colorScheme":"emerald"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListColorSchemes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume/color-schemes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"default"`) {
		t.Errorf("expected default scheme in response, got %s", w.Body.String())
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	router, docStore := newTestRouter(t)

	doJSON(t, router, http.MethodPut, "/v1/resume/sections/personal", `{"fullName":"Changed","jobTitle":"","email":"","phone":"","location":""}`)
	w := doJSON(t, router, http.MethodPost, "/v1/resume/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if doc := docStore.Document(); doc.Personal.FullName != "Your Name" {
		t.Errorf("fullName = %q, want default after reset", doc.Personal.FullName)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/theme", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "amoled") {
		t.Errorf("default theme = %s, want amoled", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPut, "/v1/theme", `{"theme":"neon"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set theme status = %d, want 200", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/v1/theme", `{"theme":"solarized"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown theme status = %d, want 400", w.Code)
	}
}
