package render

import "resumeforge/internal/resume"

// Model 是四个模板共用的视图模型。节的取舍与排序在这里算好一次，
// 模板只负责视觉排布，不再各自重复推导。
type Model struct {
	Doc      resume.Data
	Sections []resume.SectionConfig
	Palette  Palette
	Template resume.TemplateID
}

// BuildModel 从文档构造视图模型：
// 只保留启用且有内容的节，顺序严格按注册表；配色就地解析。
// 传入的文档应当是调用方的拷贝，模板绝不回写。
func BuildModel(doc resume.Data) Model {
	template := doc.ActiveTemplate
	if !resume.ValidTemplateID(template) {
		template = resume.TemplateJamie
	}

	sections := make([]resume.SectionConfig, 0, len(doc.Sections))
	for _, section := range doc.EnabledSectionsInOrder() {
		if sectionHasContent(doc, section.ID) {
			sections = append(sections, section)
		}
	}

	return Model{
		Doc:      doc,
		Sections: sections,
		Palette:  ResolvePalette(template, doc.ColorScheme),
		Template: template,
	}
}

// sectionHasContent 实现"空节整体不渲染"规则：
// 背后列表为空、或可选记录缺失/正文为空的节，连标题都不输出。
// personal 记录始终在场，视为恒有内容。
func sectionHasContent(doc resume.Data, id resume.SectionID) bool {
	switch id {
	case resume.SectionPersonal:
		return true
	case resume.SectionSummary:
		return doc.Summary != nil && doc.Summary.Text != ""
	case resume.SectionExperience:
		return len(doc.Experience) > 0
	case resume.SectionEducation:
		return len(doc.Education) > 0
	case resume.SectionSkills:
		return len(doc.Skills) > 0
	case resume.SectionProjects:
		return len(doc.Projects) > 0
	case resume.SectionLanguages:
		return len(doc.Languages) > 0
	case resume.SectionCertificates:
		return len(doc.Certificates) > 0
	case resume.SectionReferences:
		return len(doc.References) > 0
	}
	return false
}

// HasSection 报告模型里是否保留了指定节，模板侧边栏用它决定分栏。
func (m Model) HasSection(id resume.SectionID) bool {
	for _, section := range m.Sections {
		if section.ID == id {
			return true
		}
	}
	return false
}

// SectionTitle 取注册表里该节的标题；节未保留时返回空串。
func (m Model) SectionTitle(id resume.SectionID) string {
	for _, section := range m.Sections {
		if section.ID == id {
			return section.Title
		}
	}
	return ""
}
