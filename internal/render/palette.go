package render

import "resumeforge/internal/resume"

// Palette 是某个模板下的一套配色。Primary/Secondary 为十六进制色值，
// 直接注入模板的内联样式。
type Palette struct {
	ID        string
	Name      string
	Primary   string
	Secondary string
}

// 配色表按模板划分；每个模板的第一项就是它的 "default"。
// 色值沿用既有前端的字面量，不要随意调整。
var palettes = map[resume.TemplateID][]Palette{
	resume.TemplateJamie: {
		{ID: "default", Name: "Default Blue", Primary: "#1E3A8A", Secondary: "#E0E7FF"},
		{ID: "green", Name: "Forest Green", Primary: "#166534", Secondary: "#DCFCE7"},
		{ID: "purple", Name: "Royal Purple", Primary: "#581C87", Secondary: "#F3E8FF"},
		{ID: "red", Name: "Ruby Red", Primary: "#9F1239", Secondary: "#FFE4E6"},
		{ID: "orange", Name: "Sunset Orange", Primary: "#9A3412", Secondary: "#FFEDD5"},
	},
	resume.TemplateLauren: {
		{ID: "default", Name: "Pink Accent", Primary: "#BE185D", Secondary: "#FCE7F3"},
		{ID: "blue", Name: "Ocean Blue", Primary: "#1E40AF", Secondary: "#DBEAFE"},
		{ID: "green", Name: "Emerald", Primary: "#047857", Secondary: "#D1FAE5"},
		{ID: "purple", Name: "Lavender", Primary: "#7E22CE", Secondary: "#F3E8FF"},
		{ID: "amber", Name: "Golden", Primary: "#B45309", Secondary: "#FEF3C7"},
	},
	resume.TemplateJuan: {
		{ID: "default", Name: "Corporate Blue", Primary: "#1E3A8A", Secondary: "#111827"},
		{ID: "emerald", Name: "Emerald Green", Primary: "#047857", Secondary: "#064E3B"},
		{ID: "violet", Name: "Deep Purple", Primary: "#6D28D9", Secondary: "#4C1D95"},
		{ID: "rose", Name: "Rose Red", Primary: "#BE123C", Secondary: "#881337"},
		{ID: "slate", Name: "Slate Gray", Primary: "#475569", Secondary: "#1E293B"},
	},
	resume.TemplateRichard: {
		{ID: "default", Name: "Navy Blue", Primary: "#2c3e50", Secondary: "#34495e"},
		{ID: "charcoal", Name: "Charcoal", Primary: "#2d3436", Secondary: "#636e72"},
		{ID: "maroon", Name: "Maroon", Primary: "#6D0F0F", Secondary: "#8B0000"},
		{ID: "forest", Name: "Forest Green", Primary: "#1B4332", Secondary: "#2D6A4F"},
		{ID: "indigo", Name: "Indigo", Primary: "#3730A3", Secondary: "#4F46E5"},
	},
}

// ResolvePalette 把 colorScheme 解析成具体配色。
// 未知配色标识回落到该模板的默认配色；未知模板回落到 jamie。
// 这里绝不报错：渲染路径上的标识问题一律就地恢复。
func ResolvePalette(template resume.TemplateID, scheme string) Palette {
	table, ok := palettes[template]
	if !ok {
		table = palettes[resume.TemplateJamie]
	}
	if scheme == "" {
		scheme = resume.DefaultColorScheme
	}
	for _, palette := range table {
		if palette.ID == scheme {
			return palette
		}
	}
	return table[0]
}

// SchemesFor 列出某模板支持的全部配色，供编辑器下拉框使用。
func SchemesFor(template resume.TemplateID) []Palette {
	table, ok := palettes[template]
	if !ok {
		table = palettes[resume.TemplateJamie]
	}
	return append([]Palette(nil), table...)
}
