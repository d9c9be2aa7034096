package render

// sectionPartials 定义九个节的共用标记，只含 {{define}} 块。
// 节的显隐与排序由 Model 决定；四个模板壳共享这份内容标记，
// 再用各自的 CSS 做视觉差异。
const sectionPartials = `
{{define "personalSection"}}
<section class="section section-personal">
  <div class="contact">
    {{if .Doc.Personal.Email}}<span class="contact-item">{{.Doc.Personal.Email}}</span>{{end}}
    {{if .Doc.Personal.Phone}}<span class="contact-item">{{.Doc.Personal.Phone}}</span>{{end}}
    {{if .Doc.Personal.Location}}<span class="contact-item">{{.Doc.Personal.Location}}</span>{{end}}
    {{if .Doc.Personal.Website}}<span class="contact-item">{{.Doc.Personal.Website}}</span>{{end}}
  </div>
</section>
{{end}}

{{define "summarySection"}}
<section class="section section-summary">
  <h2 class="section-title">{{.Title}}</h2>
  <p class="summary-text">{{.Doc.Summary.Text}}</p>
</section>
{{end}}

{{define "experienceSection"}}
<section class="section section-experience">
  <h2 class="section-title">{{.Title}}</h2>
  {{range .Doc.Experience}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-position">{{.Position}}</span>
      <span class="entry-dates">{{formatRange .StartDate .EndDate .IsCurrentPosition}}</span>
    </div>
    <div class="entry-company">{{.Company}}</div>
    {{if .Description}}<p class="entry-description">{{.Description}}</p>{{end}}
    {{if .Bullets}}
    <ul class="entry-bullets">
      {{range .Bullets}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}

{{define "educationSection"}}
<section class="section section-education">
  <h2 class="section-title">{{.Title}}</h2>
  {{range .Doc.Education}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-position">{{.Degree}}{{if .Field}}, {{.Field}}{{end}}</span>
      <span class="entry-dates">{{formatRange .StartDate .EndDate false}}</span>
    </div>
    <div class="entry-company">{{.Institution}}</div>
    {{if .GPA}}<div class="entry-gpa">GPA: {{.GPA}}</div>{{end}}
    {{if .Description}}<p class="entry-description">{{.Description}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{define "skillsSection"}}
<section class="section section-skills">
  <h2 class="section-title">{{.Title}}</h2>
  {{range .Doc.Skills}}
  <div class="skill-group">
    <h3 class="skill-group-name">{{.Name}}</h3>
    {{range .Skills}}
    <div class="skill">
      <span class="skill-name">{{.Name}}</span>
      {{if .Level}}
      <span class="skill-level"><span class="skill-level-fill" style="width: {{levelPercent .Level}}%"></span></span>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}

{{define "projectsSection"}}
<section class="section section-projects">
  <h2 class="section-title">{{.Title}}</h2>
  {{range .Doc.Projects}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-position">{{.Name}}</span>
      {{if or .StartDate .EndDate}}<span class="entry-dates">{{formatRange .StartDate .EndDate false}}</span>{{end}}
    </div>
    {{if .Description}}<p class="entry-description">{{.Description}}</p>{{end}}
    {{if .URL}}<div class="entry-url">{{.URL}}</div>{{end}}
    {{if .Technologies}}
    <div class="tags">
      {{range .Technologies}}<span class="tag">{{.}}</span>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}

{{define "languagesSection"}}
<section class="section section-languages">
  <h2 class="section-title">{{.Title}}</h2>
  <div class="language-list">
    {{range .Doc.Languages}}
    <div class="language">
      <span class="language-name">{{.Name}}</span>
      <span class="language-proficiency">{{.Proficiency}}</span>
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "certificatesSection"}}
<section class="section section-certificates">
  <h2 class="section-title">{{.Title}}</h2>
  {{range .Doc.Certificates}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-position">{{.Name}}</span>
      <span class="entry-dates">{{formatRange .IssueDate .ExpiryDate false}}</span>
    </div>
    <div class="entry-company">{{.Issuer}}</div>
    {{if .URL}}<div class="entry-url">{{.URL}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{define "referencesSection"}}
<section class="section section-references">
  <h2 class="section-title">{{.Title}}</h2>
  {{range .Doc.References}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-position">{{.Name}}</span>
    </div>
    <div class="entry-company">{{.Position}}{{if .Company}}, {{.Company}}{{end}}</div>
    {{if .Relation}}<div class="entry-relation">{{.Relation}}</div>{{end}}
    <div class="contact">
      {{if .Email}}<span class="contact-item">{{.Email}}</span>{{end}}
      {{if .Phone}}<span class="contact-item">{{.Phone}}</span>{{end}}
    </div>
  </div>
  {{end}}
</section>
{{end}}

{{define "sectionFlow"}}
{{$m := .}}
{{range .Sections}}
{{if eq .ID "personal"}}{{template "personalSection" sectionCtx $m .}}{{end}}
{{if eq .ID "summary"}}{{template "summarySection" sectionCtx $m .}}{{end}}
{{if eq .ID "experience"}}{{template "experienceSection" sectionCtx $m .}}{{end}}
{{if eq .ID "education"}}{{template "educationSection" sectionCtx $m .}}{{end}}
{{if eq .ID "skills"}}{{template "skillsSection" sectionCtx $m .}}{{end}}
{{if eq .ID "projects"}}{{template "projectsSection" sectionCtx $m .}}{{end}}
{{if eq .ID "languages"}}{{template "languagesSection" sectionCtx $m .}}{{end}}
{{if eq .ID "certificates"}}{{template "certificatesSection" sectionCtx $m .}}{{end}}
{{if eq .ID "references"}}{{template "referencesSection" sectionCtx $m .}}{{end}}
{{end}}
{{end}}
`
