package resume

// DefaultData 返回首次运行使用的占位文档。
// 每次调用都构造全新实例，调用方可以安全地原地修改。
// 字面内容与历史快照保持一致，改动会破坏首次运行的展示效果。
func DefaultData() Data {
	return Data{
		Personal: PersonalInfo{
			FullName:  "Your Name",
			JobTitle:  "Professional Title",
			Email:     "email@example.com",
			Phone:     "(123) 456-7890",
			Location:  "City, State",
			Website:   "",
			AvatarURL: "",
		},
		Summary: &Summary{
			Text: "A brief summary highlighting your professional background and key strengths.",
		},
		Experience: []Experience{
			{
				ID:          "1",
				Company:     "Company Name",
				Position:    "Job Title",
				StartDate:   "2020-01",
				EndDate:     "2023-01",
				Description: "Brief description of your role and responsibilities",
				Bullets: []string{
					"Key achievement or responsibility",
					"Another significant accomplishment",
					"Additional noteworthy contribution",
				},
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "University Name",
				Degree:      "Degree Type",
				Field:       "Field of Study",
				StartDate:   "2016-09",
				EndDate:     "2020-05",
				GPA:         "3.8",
			},
		},
		Skills: []SkillGroup{
			{
				ID:   "1",
				Name: "Technical Skills",
				Skills: []Skill{
					{ID: "1", Name: "Skill 1", Level: 4},
					{ID: "2", Name: "Skill 2", Level: 5},
					{ID: "3", Name: "Skill 3", Level: 3},
				},
			},
			{
				ID:   "2",
				Name: "Soft Skills",
				Skills: []Skill{
					{ID: "1", Name: "Communication", Level: 4},
					{ID: "2", Name: "Leadership", Level: 3},
					{ID: "3", Name: "Problem Solving", Level: 5},
				},
			},
		},
		Projects: []Project{
			{
				ID:           "1",
				Name:         "Project Name",
				Description:  "Brief description of your project",
				URL:          "https://project-url.com",
				Technologies: []string{"Tech 1", "Tech 2", "Tech 3"},
			},
		},
		Languages: []Language{
			{ID: "1", Name: "English", Proficiency: ProficiencyNative},
			{ID: "2", Name: "Spanish", Proficiency: ProficiencyProfessionalWorking},
		},
		Certificates: []Certificate{
			{
				ID:        "1",
				Name:      "Certificate Name",
				Issuer:    "Issuing Organization",
				IssueDate: "2022-06",
			},
		},
		References: []Reference{
			{
				ID:       "1",
				Name:     "Reference Name",
				Company:  "Company",
				Position: "Position",
				Email:    "reference@example.com",
				Relation: "Manager",
			},
		},
		Sections: []SectionConfig{
			{ID: SectionPersonal, Title: "Personal Information", Icon: "user", Enabled: true, Order: 0},
			{ID: SectionSummary, Title: "Professional Summary", Icon: "file-text", Enabled: true, Order: 1},
			{ID: SectionExperience, Title: "Work Experience", Icon: "briefcase", Enabled: true, Order: 2},
			{ID: SectionEducation, Title: "Education", Icon: "graduation-cap", Enabled: true, Order: 3},
			{ID: SectionSkills, Title: "Skills", Icon: "star", Enabled: true, Order: 4},
			{ID: SectionProjects, Title: "Projects", Icon: "folder", Enabled: true, Order: 5},
			{ID: SectionLanguages, Title: "Languages", Icon: "globe", Enabled: true, Order: 6},
			{ID: SectionCertificates, Title: "Certificates", Icon: "award", Enabled: true, Order: 7},
			{ID: SectionReferences, Title: "References", Icon: "users", Enabled: true, Order: 8},
		},
		ActiveTemplate: TemplateJamie,
		ColorScheme:    DefaultColorScheme,
	}
}

// DefaultTheme 是没有持久化主题时的初始外观。
const DefaultTheme = ThemeAmoled
