package resume

import "github.com/google/uuid"

// Patch 是对文档的一次合法变更。集合封闭：每个顶层节对应一个变体，
// 外加配色修改；除此之外不存在别的写入路径。
type Patch interface {
	apply(d *Data)
}

// Apply 依次套用补丁。列表项缺失的 id 会在落地前补上稳定的 uuid，
// 已有 id 原样保留（编辑绝不重新生成）。
func (d *Data) Apply(patches ...Patch) {
	for _, patch := range patches {
		patch.apply(d)
	}
}

// SetPersonal 整体替换个人信息。
type SetPersonal struct {
	Personal PersonalInfo
}

func (p SetPersonal) apply(d *Data) { d.Personal = p.Personal }

// SetSummary 替换摘要；nil 表示移除。
type SetSummary struct {
	Summary *Summary
}

func (p SetSummary) apply(d *Data) {
	if p.Summary == nil {
		d.Summary = nil
		return
	}
	summary := *p.Summary
	d.Summary = &summary
}

// SetExperience 整体替换工作经历。
// 在职条目（IsCurrentPosition）的 EndDate 会被清空：结束日期在该标志
// 置位时既不展示也不保存。
type SetExperience struct {
	Experience []Experience
}

func (p SetExperience) apply(d *Data) {
	items := append([]Experience(nil), p.Experience...)
	for i := range items {
		items[i].ID = ensureItemID(items[i].ID)
		if items[i].IsCurrentPosition {
			items[i].EndDate = ""
		}
	}
	d.Experience = items
}

// SetEducation 整体替换教育经历。
type SetEducation struct {
	Education []Education
}

func (p SetEducation) apply(d *Data) {
	items := append([]Education(nil), p.Education...)
	for i := range items {
		items[i].ID = ensureItemID(items[i].ID)
	}
	d.Education = items
}

// SetSkills 整体替换技能分组，组内条目同样补齐 id。
type SetSkills struct {
	Skills []SkillGroup
}

func (p SetSkills) apply(d *Data) {
	groups := append([]SkillGroup(nil), p.Skills...)
	for i := range groups {
		groups[i].ID = ensureItemID(groups[i].ID)
		skills := append([]Skill(nil), groups[i].Skills...)
		for j := range skills {
			skills[j].ID = ensureItemID(skills[j].ID)
		}
		groups[i].Skills = skills
	}
	d.Skills = groups
}

// SetProjects 整体替换项目列表。
type SetProjects struct {
	Projects []Project
}

func (p SetProjects) apply(d *Data) {
	items := append([]Project(nil), p.Projects...)
	for i := range items {
		items[i].ID = ensureItemID(items[i].ID)
	}
	d.Projects = items
}

// SetLanguages 整体替换语言列表。
type SetLanguages struct {
	Languages []Language
}

func (p SetLanguages) apply(d *Data) {
	items := append([]Language(nil), p.Languages...)
	for i := range items {
		items[i].ID = ensureItemID(items[i].ID)
	}
	d.Languages = items
}

// SetCertificates 整体替换证书列表。
type SetCertificates struct {
	Certificates []Certificate
}

func (p SetCertificates) apply(d *Data) {
	items := append([]Certificate(nil), p.Certificates...)
	for i := range items {
		items[i].ID = ensureItemID(items[i].ID)
	}
	d.Certificates = items
}

// SetReferences 整体替换推荐人列表。
type SetReferences struct {
	References []Reference
}

func (p SetReferences) apply(d *Data) {
	items := append([]Reference(nil), p.References...)
	for i := range items {
		items[i].ID = ensureItemID(items[i].ID)
	}
	d.References = items
}

// SetColorScheme 修改当前模板下的配色标识，不触碰其他字段。
type SetColorScheme struct {
	ColorScheme string
}

func (p SetColorScheme) apply(d *Data) { d.ColorScheme = p.ColorScheme }

func ensureItemID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
