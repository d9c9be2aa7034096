package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"resumeforge/internal/resume"
)

// 持久化键名沿用既有快照布局，两个键相互独立。
const (
	KeyResumeData = "resumeData"
	KeyTheme      = "theme"
)

// DocumentStore 是简历文档的唯一事实来源。
// 进程内只有一份存活文档，全部写入都经过这里；每次变更完成前
// 都会把整份快照写回键值能力。HTTP 处理器并发调用，由互斥锁串行化。
type DocumentStore struct {
	mu     sync.Mutex
	doc    resume.Data
	theme  resume.ThemeMode
	kv     KV
	logger *slog.Logger
}

// New 构造 DocumentStore 并立即加载持久化状态。
// 快照缺失或无法解析时静默回落到默认文档，绝不报错：
// 损坏的本地数据不是用户可见的故障。
func New(ctx context.Context, kv KV, logger *slog.Logger) *DocumentStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &DocumentStore{kv: kv, logger: logger}
	s.doc = s.loadDocument(ctx)
	s.theme = s.loadTheme(ctx)
	return s
}

func (s *DocumentStore) loadDocument(ctx context.Context) resume.Data {
	raw, err := s.kv.Get(ctx, KeyResumeData)
	if err != nil {
		if err != ErrKeyNotFound {
			s.logger.Warn("load resume snapshot failed, using default document", slog.Any("error", err))
		}
		return resume.DefaultData()
	}

	var doc resume.Data
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("resume snapshot unparseable, using default document", slog.Any("error", err))
		return resume.DefaultData()
	}

	// 旧版本或损坏快照可能破坏节注册表的不变量，加载时修复。
	doc.RepairSections()
	if !resume.ValidTemplateID(doc.ActiveTemplate) {
		doc.ActiveTemplate = resume.TemplateJamie
		doc.ColorScheme = resume.DefaultColorScheme
	}
	return doc
}

func (s *DocumentStore) loadTheme(ctx context.Context) resume.ThemeMode {
	raw, err := s.kv.Get(ctx, KeyTheme)
	if err != nil {
		return resume.DefaultTheme
	}
	mode := resume.ThemeMode(raw)
	if !resume.ValidThemeMode(mode) {
		return resume.DefaultTheme
	}
	return mode
}

// Document 返回当前文档的深拷贝；调用方可以随意修改而不影响存储。
func (s *DocumentStore) Document() resume.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Apply 套用一组补丁并持久化，返回变更后的文档拷贝。
func (s *DocumentStore) Apply(ctx context.Context, patches ...resume.Patch) resume.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Apply(patches...)
	s.persistLocked(ctx)
	return s.doc.Clone()
}

// ToggleSection 翻转节的启用状态并持久化；未知 id 是无声的空操作。
func (s *DocumentStore) ToggleSection(ctx context.Context, id resume.SectionID) resume.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.ToggleSection(id)
	s.persistLocked(ctx)
	return s.doc.Clone()
}

// ReorderSections 移动节并持久化；下标越界返回错误且不落盘。
func (s *DocumentStore) ReorderSections(ctx context.Context, from, to int) (resume.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.doc.ReorderSections(from, to); err != nil {
		return resume.Data{}, err
	}
	s.persistLocked(ctx)
	return s.doc.Clone(), nil
}

// ChangeTemplate 切换模板并把配色重置为 default，两者绝不分开设置。
func (s *DocumentStore) ChangeTemplate(ctx context.Context, template resume.TemplateID) (resume.Data, error) {
	if !resume.ValidTemplateID(template) {
		return resume.Data{}, fmt.Errorf("unknown template %q", template)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.ActiveTemplate = template
	s.doc.ColorScheme = resume.DefaultColorScheme
	s.persistLocked(ctx)
	return s.doc.Clone(), nil
}

// ResetToDefault 用默认文档整体替换存活文档（深替换，不是合并）。
func (s *DocumentStore) ResetToDefault(ctx context.Context) resume.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = resume.DefaultData()
	s.persistLocked(ctx)
	return s.doc.Clone()
}

// Theme 返回当前编辑器主题。
func (s *DocumentStore) Theme() resume.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme 切换主题并持久化到独立的 theme 键。
func (s *DocumentStore) SetTheme(ctx context.Context, mode resume.ThemeMode) error {
	if !resume.ValidThemeMode(mode) {
		return fmt.Errorf("unknown theme %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = mode
	if err := s.kv.Set(ctx, KeyTheme, []byte(mode)); err != nil {
		s.logger.Warn("persist theme failed, in-memory state kept", slog.Any("error", err))
	}
	return nil
}

// persistLocked 把整份文档快照写回键值能力。
// 写入失败只告警不回滚：会话内以内存文档为准，丢状态比丢持久化更糟。
func (s *DocumentStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.doc)
	if err != nil {
		s.logger.Warn("marshal resume snapshot failed", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(ctx, KeyResumeData, data); err != nil {
		s.logger.Warn("persist resume snapshot failed, in-memory state kept", slog.Any("error", err))
	}
}
