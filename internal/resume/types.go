package resume

// Data 是整份简历的根聚合，任何时刻只有一份存活实例。
// JSON 字段名与持久化快照（resumeData 键）保持逐字一致。
type Data struct {
	Personal       PersonalInfo    `json:"personal"`
	Summary        *Summary        `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Projects       []Project       `json:"projects,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Certificates   []Certificate   `json:"certificates,omitempty"`
	References     []Reference     `json:"references,omitempty"`
	Sections       []SectionConfig `json:"sections"`
	ActiveTemplate TemplateID      `json:"activeTemplate"`
	ColorScheme    string          `json:"colorScheme,omitempty"`
}

// PersonalInfo 始终存在，字段允许为空字符串。
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Summary 包裹一段自由文本。
type Summary struct {
	Text string `json:"text"`
}

// Experience 的切片顺序即展示顺序，没有独立的 order 字段。
type Experience struct {
	ID                string   `json:"id"`
	Company           string   `json:"company"`
	Position          string   `json:"position"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	IsCurrentPosition bool     `json:"isCurrentPosition,omitempty"`
	Description       string   `json:"description"`
	Bullets           []string `json:"bullets"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill 的 Level 取值 1-5，0 表示未设置。
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
}

type SkillGroup struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type Language struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

type Certificate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	URL        string `json:"url,omitempty"`
}

type Reference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}

// SectionConfig 是节注册表中的一项：九个固定节各占一条，
// Order 决定展示顺序，重排后必须重新归一化为 0..N-1。
type SectionConfig struct {
	ID      SectionID `json:"id"`
	Title   string    `json:"title"`
	Icon    string    `json:"icon"`
	Enabled bool      `json:"enabled"`
	Order   int       `json:"order"`
}

// SectionID 是九个固定节标识之一（封闭集合）。
type SectionID string

const (
	SectionPersonal     SectionID = "personal"
	SectionSummary      SectionID = "summary"
	SectionExperience   SectionID = "experience"
	SectionEducation    SectionID = "education"
	SectionSkills       SectionID = "skills"
	SectionProjects     SectionID = "projects"
	SectionLanguages    SectionID = "languages"
	SectionCertificates SectionID = "certificates"
	SectionReferences   SectionID = "references"
)

// AllSectionIDs 按默认展示顺序列出全部固定节。
var AllSectionIDs = []SectionID{
	SectionPersonal,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionLanguages,
	SectionCertificates,
	SectionReferences,
}

// ValidSectionID 判断 id 是否属于固定集合。
func ValidSectionID(id SectionID) bool {
	for _, known := range AllSectionIDs {
		if id == known {
			return true
		}
	}
	return false
}

// TemplateID 选择渲染简历的视觉模板（封闭集合）。
type TemplateID string

const (
	TemplateJamie   TemplateID = "jamie"
	TemplateLauren  TemplateID = "lauren"
	TemplateJuan    TemplateID = "juan"
	TemplateRichard TemplateID = "richard"
)

// AllTemplateIDs 列出全部可用模板。
var AllTemplateIDs = []TemplateID{TemplateJamie, TemplateLauren, TemplateJuan, TemplateRichard}

// ValidTemplateID 判断 id 是否属于固定集合。
func ValidTemplateID(id TemplateID) bool {
	for _, known := range AllTemplateIDs {
		if id == known {
			return true
		}
	}
	return false
}

// DefaultColorScheme 是切换模板后必须回落到的配色标识。
const DefaultColorScheme = "default"

// Proficiency 是语言熟练度的封闭枚举。
type Proficiency string

const (
	ProficiencyElementary          Proficiency = "Elementary"
	ProficiencyLimitedWorking      Proficiency = "Limited Working"
	ProficiencyProfessionalWorking Proficiency = "Professional Working"
	ProficiencyFullProfessional    Proficiency = "Full Professional"
	ProficiencyNative              Proficiency = "Native"
)

// ThemeMode 是编辑器外观主题，独立于简历文档持久化。
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeAmoled ThemeMode = "amoled"
	ThemeNeon   ThemeMode = "neon"
)

// ValidThemeMode 判断主题标识是否合法。
func ValidThemeMode(mode ThemeMode) bool {
	switch mode {
	case ThemeLight, ThemeAmoled, ThemeNeon:
		return true
	}
	return false
}

// Clone 返回文档的深拷贝；模板渲染与 API 响应只消费拷贝，
// 保证存储内的实例不会被外部修改。
func (d Data) Clone() Data {
	out := d
	if d.Summary != nil {
		summary := *d.Summary
		out.Summary = &summary
	}
	out.Experience = make([]Experience, len(d.Experience))
	for i, exp := range d.Experience {
		exp.Bullets = append([]string(nil), exp.Bullets...)
		out.Experience[i] = exp
	}
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = make([]SkillGroup, len(d.Skills))
	for i, group := range d.Skills {
		group.Skills = append([]Skill(nil), group.Skills...)
		out.Skills[i] = group
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, project := range d.Projects {
		project.Technologies = append([]string(nil), project.Technologies...)
		out.Projects[i] = project
	}
	out.Languages = append([]Language(nil), d.Languages...)
	out.Certificates = append([]Certificate(nil), d.Certificates...)
	out.References = append([]Reference(nil), d.References...)
	out.Sections = append([]SectionConfig(nil), d.Sections...)
	return out
}
