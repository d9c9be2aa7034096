package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"resumeforge/internal/resume"
)

type memoryKV struct {
	data    map[string][]byte
	setErr  error
	setKeys []string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}}
}

func (kv *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := kv.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (kv *memoryKV) Set(_ context.Context, key string, value []byte) error {
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.setKeys = append(kv.setKeys, key)
	kv.data[key] = append([]byte(nil), value...)
	return nil
}

func TestNewFallsBackToDefaultOnMissingSnapshot(t *testing.T) {
	s := New(context.Background(), newMemoryKV(), nil)

	doc := s.Document()
	if doc.Personal.FullName != "Your Name" {
		t.Fatalf("expected default document, got name %q", doc.Personal.FullName)
	}
	if doc.ActiveTemplate != resume.TemplateJamie || doc.ColorScheme != "default" {
		t.Fatalf("unexpected template state: %s/%s", doc.ActiveTemplate, doc.ColorScheme)
	}
	if len(doc.Sections) != 9 {
		t.Fatalf("expected 9 sections, got %d", len(doc.Sections))
	}
}

func TestNewFallsBackToDefaultOnCorruptSnapshot(t *testing.T) {
	kv := newMemoryKV()
	kv.data[KeyResumeData] = []byte("{not json")

	s := New(context.Background(), kv, nil)
	if s.Document().Personal.FullName != "Your Name" {
		t.Fatal("corrupt snapshot should fall back to default document")
	}
}

func TestNewLoadsPersistedSnapshot(t *testing.T) {
	doc := resume.DefaultData()
	doc.Personal.FullName = "Ada Lovelace"
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	kv := newMemoryKV()
	kv.data[KeyResumeData] = raw

	s := New(context.Background(), kv, nil)
	if got := s.Document().Personal.FullName; got != "Ada Lovelace" {
		t.Fatalf("expected persisted name, got %q", got)
	}
}

func TestApplyPersistsAndIsolatesSection(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := New(ctx, kv, nil)
	before := s.Document()

	newList := []resume.Experience{
		{ID: "x1", Company: "Acme", Position: "Engineer", StartDate: "2021-01", Bullets: []string{"a"}},
	}
	after := s.Apply(ctx, resume.SetExperience{Experience: newList})

	if !reflect.DeepEqual(after.Experience, newList) {
		t.Fatalf("experience not replaced: %+v", after.Experience)
	}

	// 其余顶层键保持原样。
	before.Experience = nil
	after.Experience = nil
	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(after)
	if string(beforeJSON) != string(afterJSON) {
		t.Fatalf("other top-level keys changed:\nbefore: %s\nafter:  %s", beforeJSON, afterJSON)
	}

	// 变更触发整份快照写入。
	if len(kv.setKeys) == 0 || kv.setKeys[len(kv.setKeys)-1] != KeyResumeData {
		t.Fatalf("expected snapshot write, got %v", kv.setKeys)
	}
	var persisted resume.Data
	if err := json.Unmarshal(kv.data[KeyResumeData], &persisted); err != nil {
		t.Fatalf("unmarshal persisted snapshot: %v", err)
	}
	if !reflect.DeepEqual(persisted.Experience, newList) {
		t.Fatal("persisted snapshot missing new experience")
	}
}

func TestChangeTemplateResetsColorScheme(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, newMemoryKV(), nil)
	s.Apply(ctx, resume.SetColorScheme{ColorScheme: "green"})

	doc, err := s.ChangeTemplate(ctx, resume.TemplateRichard)
	if err != nil {
		t.Fatalf("change template: %v", err)
	}
	if doc.ActiveTemplate != resume.TemplateRichard {
		t.Fatalf("template not changed: %s", doc.ActiveTemplate)
	}
	if doc.ColorScheme != "default" {
		t.Fatalf("color scheme not reset: %q", doc.ColorScheme)
	}

	if _, err := s.ChangeTemplate(ctx, "no-such-template"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestResetToDefault(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, newMemoryKV(), nil)
	s.Apply(ctx, resume.SetPersonal{Personal: resume.PersonalInfo{FullName: "Changed"}})

	doc := s.ResetToDefault(ctx)
	if doc.Personal.FullName != "Your Name" {
		t.Fatalf("reset did not restore default: %q", doc.Personal.FullName)
	}
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := New(ctx, kv, nil)

	kv.setErr = errors.New("quota exceeded")
	doc := s.Apply(ctx, resume.SetPersonal{Personal: resume.PersonalInfo{FullName: "Kept"}})

	if doc.Personal.FullName != "Kept" {
		t.Fatal("mutation lost on persistence failure")
	}
	if got := s.Document().Personal.FullName; got != "Kept" {
		t.Fatalf("in-memory state lost: %q", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, newMemoryKV(), nil)
	s.Apply(ctx,
		resume.SetSummary{Summary: &resume.Summary{Text: "hello"}},
		resume.SetColorScheme{ColorScheme: "purple"},
	)
	s.ToggleSection(ctx, resume.SectionReferences)
	if _, err := s.ReorderSections(ctx, 2, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	doc := s.Document()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded resume.Data
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(doc, decoded) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", doc, decoded)
	}
}

func TestThemePersistence(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := New(ctx, kv, nil)

	if s.Theme() != resume.ThemeAmoled {
		t.Fatalf("expected default theme amoled, got %s", s.Theme())
	}

	if err := s.SetTheme(ctx, resume.ThemeNeon); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if string(kv.data[KeyTheme]) != "neon" {
		t.Fatalf("theme not persisted: %q", kv.data[KeyTheme])
	}

	if err := s.SetTheme(ctx, "sparkly"); err == nil {
		t.Fatal("expected error for unknown theme")
	}

	// 新实例从持久化键恢复主题。
	s2 := New(ctx, kv, nil)
	if s2.Theme() != resume.ThemeNeon {
		t.Fatalf("theme not restored: %s", s2.Theme())
	}
}
