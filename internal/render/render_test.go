package render

import (
	"strings"
	"testing"

	"resumeforge/internal/resume"
)

func TestHTMLOmitsDisabledSections(t *testing.T) {
	doc := resume.DefaultData()
	doc.ToggleSection(resume.SectionProjects)

	html := mustRender(t, doc)

	if strings.Contains(html, "section-projects") {
		t.Fatal("disabled projects section rendered")
	}
	if strings.Contains(html, "Project Name") {
		t.Fatal("disabled projects content rendered")
	}
}

func TestHTMLOmitsEmptySections(t *testing.T) {
	doc := resume.DefaultData()
	doc.Apply(resume.SetCertificates{Certificates: nil})
	doc.Summary = &resume.Summary{Text: ""}

	html := mustRender(t, doc)

	if strings.Contains(html, "section-certificates") {
		t.Fatal("empty certificates section rendered a container")
	}
	if strings.Contains(html, "Certificates</h2>") {
		t.Fatal("empty certificates section rendered a heading")
	}
	if strings.Contains(html, "section-summary") {
		t.Fatal("summary with empty text rendered")
	}
}

func TestHTMLRespectsSectionOrder(t *testing.T) {
	doc := resume.DefaultData()
	doc.ToggleSection(resume.SectionProjects)
	if err := doc.ReorderSections(4, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	model := BuildModel(doc)
	if model.Sections[0].ID != resume.SectionSkills {
		t.Fatalf("expected skills first, got %s", model.Sections[0].ID)
	}

	html := mustRender(t, doc)
	skillsPos := strings.Index(html, "section-skills")
	personalPos := strings.Index(html, "section-personal")
	if skillsPos == -1 || personalPos == -1 {
		t.Fatal("expected both skills and personal sections in output")
	}
	if skillsPos > personalPos {
		t.Fatal("skills should render before personal after reorder")
	}
}

func TestHTMLUsesDateRangeFormatting(t *testing.T) {
	doc := resume.DefaultData()
	doc.Apply(resume.SetExperience{Experience: []resume.Experience{
		{
			ID:                "1",
			Company:           "Acme",
			Position:          "Engineer",
			StartDate:         "2020-01",
			IsCurrentPosition: true,
			Bullets:           []string{"Did things"},
		},
	}})

	html := mustRender(t, doc)
	if !strings.Contains(html, "Jan 2020 - Present") {
		t.Fatal("expected formatted current-position range in output")
	}
}

func TestResolvePaletteFallbacks(t *testing.T) {
	// 未知配色回落到该模板的默认配色。
	p := ResolvePalette(resume.TemplateRichard, "no-such-scheme")
	if p.ID != "default" || p.Primary != "#2c3e50" {
		t.Fatalf("unexpected fallback palette: %+v", p)
	}

	// 未知模板回落到 jamie 的默认配色。
	p = ResolvePalette("no-such-template", "green")
	if p.Primary != "#166534" {
		t.Fatalf("expected jamie green palette, got %+v", p)
	}

	// 空配色等价于 default。
	p = ResolvePalette(resume.TemplateLauren, "")
	if p.Primary != "#BE185D" {
		t.Fatalf("expected lauren default palette, got %+v", p)
	}
}

func TestHTMLUnknownTemplateFallsBack(t *testing.T) {
	doc := resume.DefaultData()
	doc.ActiveTemplate = "no-such-template"

	html := mustRender(t, doc)
	if !strings.Contains(html, doc.Personal.FullName) {
		t.Fatal("fallback render missing personal name")
	}
}

func TestHTMLAppliesPalette(t *testing.T) {
	doc := resume.DefaultData()
	doc.ActiveTemplate = resume.TemplateJuan
	doc.ColorScheme = "emerald"

	html := mustRender(t, doc)
	if !strings.Contains(html, "#047857") {
		t.Fatal("expected emerald primary color in output")
	}
}

func TestHTMLDoesNotMutateDocument(t *testing.T) {
	doc := resume.DefaultData()
	copyBefore := doc.Clone()

	if _, err := HTML(doc.Clone()); err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(doc.Sections) != len(copyBefore.Sections) {
		t.Fatal("sections length changed")
	}
	for i := range doc.Sections {
		if doc.Sections[i] != copyBefore.Sections[i] {
			t.Fatalf("section %d mutated", i)
		}
	}
}

func mustRender(t *testing.T, doc resume.Data) string {
	t.Helper()
	html, err := HTML(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}
