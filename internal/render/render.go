package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resumeforge/internal/resume"
)

// sectionContext 是节 partial 的执行上下文：文档本体加注册表标题。
type sectionContext struct {
	Doc   resume.Data
	Title string
}

var funcMap = template.FuncMap{
	"formatRange": resume.FormatDateRange,
	"initials":    resume.Initials,
	"levelPercent": func(level int) int {
		if level < 0 {
			return 0
		}
		if level > 5 {
			return 100
		}
		return level * 100 / 5
	},
	"sectionCtx": func(m Model, s resume.SectionConfig) sectionContext {
		return sectionContext{Doc: m.Doc, Title: s.Title}
	},
}

var shells = map[resume.TemplateID]*template.Template{
	resume.TemplateJamie:   mustShell("jamie", jamieShell),
	resume.TemplateLauren:  mustShell("lauren", laurenShell),
	resume.TemplateJuan:    mustShell("juan", juanShell),
	resume.TemplateRichard: mustShell("richard", richardShell),
}

func mustShell(name, shell string) *template.Template {
	t := template.New(name).Funcs(funcMap)
	template.Must(t.Parse(sectionPartials))
	return template.Must(t.Parse(shell))
}

// HTML 把文档渲染成当前模板的完整 HTML 页面。
// 模板是文档的纯函数：只读取传入的拷贝，未知模板回落到 jamie。
func HTML(doc resume.Data) (string, error) {
	model := BuildModel(doc)

	shell, ok := shells[model.Template]
	if !ok {
		shell = shells[resume.TemplateJamie]
	}

	var buf bytes.Buffer
	if err := shell.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("render %s template: %w", model.Template, err)
	}
	return buf.String(), nil
}
