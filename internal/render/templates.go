package render

// 四个模板壳。页面固定为 A4 @ 96 DPI（794px 宽），
// 与 PDF 打印参数保持一致；壳只做视觉排布，节内容来自共用 partials。

const jamieShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body {
    margin: 0;
    padding: 0;
    font-family: 'Helvetica Neue', Arial, sans-serif;
    font-size: 10pt;
    color: #1f2937;
  }
  .a4-page {
    width: 794px;
    min-height: 1122px;
    background: white;
    box-sizing: border-box;
  }
  header.identity {
    background: {{.Palette.Primary}};
    color: white;
    padding: 28px 40px;
  }
  header.identity .avatar {
    float: left;
    width: 64px;
    height: 64px;
    margin-right: 16px;
    border-radius: 50%;
    background: rgba(255, 255, 255, 0.2);
    text-align: center;
    line-height: 64px;
    font-size: 20pt;
    font-weight: bold;
  }
  header.identity h1 { margin: 0; font-size: 20pt; }
  header.identity .job-title { margin-top: 4px; opacity: 0.9; }
  header.identity::after { content: ""; display: block; clear: both; }
  main { padding: 24px 40px; }
  .section { margin-bottom: 18px; }
  .section-title {
    font-size: 12pt;
    color: {{.Palette.Primary}};
    border-bottom: 1px solid #d1d5db;
    padding-bottom: 4px;
    margin: 0 0 10px;
  }
  .contact-item { display: inline-block; margin-right: 16px; font-size: 9pt; }
  .entry { margin-bottom: 12px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-position { font-weight: bold; }
  .entry-dates { color: #6b7280; font-size: 9pt; }
  .entry-company { color: {{.Palette.Primary}}; font-size: 9.5pt; }
  .entry-description { margin: 4px 0; }
  .entry-bullets { margin: 4px 0 0; padding-left: 18px; }
  .skill-group { margin-bottom: 10px; }
  .skill-group-name { margin: 0 0 4px; font-size: 10pt; color: {{.Palette.Primary}}; }
  .skill { margin-bottom: 4px; }
  .skill-name { font-size: 9.5pt; }
  .skill-level {
    display: block;
    height: 5px;
    background: #e5e7eb;
    border-radius: 3px;
    overflow: hidden;
    margin-top: 2px;
  }
  .skill-level-fill { display: block; height: 100%; background: {{.Palette.Primary}}; }
  .tags { margin-top: 4px; }
  .tag {
    display: inline-block;
    background: {{.Palette.Secondary}};
    color: {{.Palette.Primary}};
    border-radius: 3px;
    padding: 1px 6px;
    margin-right: 4px;
    font-size: 8.5pt;
  }
  .language { display: flex; justify-content: space-between; margin-bottom: 4px; }
  .language-proficiency { color: #6b7280; font-size: 9pt; }
  .entry-url, .entry-gpa, .entry-relation { font-size: 9pt; color: #6b7280; }
</style>
</head>
<body>
<div class="a4-page">
  <header class="identity">
    <div class="avatar">{{initials .Doc.Personal.FullName}}</div>
    <h1>{{.Doc.Personal.FullName}}</h1>
    <div class="job-title">{{.Doc.Personal.JobTitle}}</div>
  </header>
  <main>
    {{template "sectionFlow" .}}
  </main>
</div>
</body>
</html>`

const laurenShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body {
    margin: 0;
    padding: 0;
    font-family: Georgia, 'Times New Roman', serif;
    font-size: 10pt;
    color: #374151;
  }
  .a4-page {
    width: 794px;
    min-height: 1122px;
    background: white;
    box-sizing: border-box;
    padding: 40px 56px;
  }
  header.identity { text-align: center; margin-bottom: 24px; }
  header.identity h1 {
    margin: 0;
    font-size: 22pt;
    letter-spacing: 2px;
    color: {{.Palette.Primary}};
  }
  header.identity .job-title {
    margin-top: 6px;
    font-style: italic;
    color: #6b7280;
  }
  header.identity .rule {
    width: 120px;
    height: 2px;
    background: {{.Palette.Primary}};
    margin: 14px auto 0;
  }
  .section { margin-bottom: 20px; }
  .section-title {
    text-align: center;
    font-size: 12pt;
    letter-spacing: 3px;
    text-transform: uppercase;
    color: {{.Palette.Primary}};
    margin: 0 0 12px;
  }
  .section-personal .contact { text-align: center; }
  .contact-item { display: inline-block; margin: 0 10px; font-size: 9pt; }
  .entry { margin-bottom: 12px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-position { font-weight: bold; }
  .entry-dates { color: #9ca3af; font-size: 9pt; }
  .entry-company { font-style: italic; }
  .entry-bullets { margin: 4px 0 0; padding-left: 18px; }
  .skill-group-name { margin: 0 0 4px; color: {{.Palette.Primary}}; }
  .skill { display: inline-block; margin: 0 12px 4px 0; }
  .skill-level { display: none; }
  .tag {
    display: inline-block;
    border: 1px solid {{.Palette.Primary}};
    color: {{.Palette.Primary}};
    border-radius: 10px;
    padding: 1px 8px;
    margin-right: 4px;
    font-size: 8.5pt;
  }
  .language { display: flex; justify-content: space-between; margin-bottom: 4px; }
  .language-list { max-width: 360px; margin: 0 auto; }
  .entry-url, .entry-gpa, .entry-relation { font-size: 9pt; color: #9ca3af; }
</style>
</head>
<body>
<div class="a4-page">
  <header class="identity">
    <h1>{{.Doc.Personal.FullName}}</h1>
    <div class="job-title">{{.Doc.Personal.JobTitle}}</div>
    <div class="rule"></div>
  </header>
  {{template "sectionFlow" .}}
</div>
</body>
</html>`

const juanShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body {
    margin: 0;
    padding: 0;
    font-family: 'Segoe UI', Tahoma, sans-serif;
    font-size: 10pt;
    color: #111827;
  }
  .a4-page {
    width: 794px;
    min-height: 1122px;
    background: white;
    box-sizing: border-box;
  }
  header.identity {
    background: {{.Palette.Secondary}};
    color: white;
    padding: 32px 40px;
    border-bottom: 6px solid {{.Palette.Primary}};
  }
  header.identity h1 { margin: 0; font-size: 21pt; text-transform: uppercase; letter-spacing: 1px; }
  header.identity .job-title { margin-top: 4px; color: #d1d5db; }
  main { padding: 24px 40px; }
  .section { margin-bottom: 18px; }
  .section-title {
    font-size: 11pt;
    text-transform: uppercase;
    letter-spacing: 2px;
    color: white;
    background: {{.Palette.Primary}};
    display: inline-block;
    padding: 2px 10px;
    margin: 0 0 10px;
  }
  .contact-item { display: inline-block; margin-right: 16px; font-size: 9pt; }
  .entry { margin-bottom: 12px; border-left: 3px solid {{.Palette.Primary}}; padding-left: 10px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-position { font-weight: 600; }
  .entry-dates { color: #6b7280; font-size: 9pt; }
  .entry-company { color: {{.Palette.Primary}}; }
  .entry-bullets { margin: 4px 0 0; padding-left: 18px; }
  .skill-group { margin-bottom: 10px; }
  .skill-group-name { margin: 0 0 4px; }
  .skill { margin-bottom: 4px; }
  .skill-level {
    display: block;
    height: 6px;
    background: #e5e7eb;
    overflow: hidden;
    margin-top: 2px;
  }
  .skill-level-fill { display: block; height: 100%; background: {{.Palette.Primary}}; }
  .tag {
    display: inline-block;
    background: {{.Palette.Primary}};
    color: white;
    padding: 1px 6px;
    margin-right: 4px;
    font-size: 8.5pt;
  }
  .language { display: flex; justify-content: space-between; margin-bottom: 4px; }
  .entry-url, .entry-gpa, .entry-relation { font-size: 9pt; color: #6b7280; }
</style>
</head>
<body>
<div class="a4-page">
  <header class="identity">
    <h1>{{.Doc.Personal.FullName}}</h1>
    <div class="job-title">{{.Doc.Personal.JobTitle}}</div>
  </header>
  <main>
    {{template "sectionFlow" .}}
  </main>
</div>
</body>
</html>`

const richardShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body {
    margin: 0;
    padding: 0;
    font-family: 'Garamond', 'Palatino Linotype', serif;
    font-size: 10.5pt;
    color: {{.Palette.Secondary}};
  }
  .a4-page {
    width: 794px;
    min-height: 1122px;
    background: white;
    box-sizing: border-box;
    padding: 48px 56px;
  }
  header.identity {
    border-bottom: 3px double {{.Palette.Primary}};
    padding-bottom: 14px;
    margin-bottom: 20px;
  }
  header.identity h1 { margin: 0; font-size: 20pt; color: {{.Palette.Primary}}; }
  header.identity .job-title { margin-top: 2px; font-variant: small-caps; }
  .section { margin-bottom: 18px; }
  .section-title {
    font-size: 12pt;
    font-variant: small-caps;
    color: {{.Palette.Primary}};
    margin: 0 0 8px;
  }
  .contact-item { display: inline-block; margin-right: 14px; font-size: 9.5pt; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-position { font-weight: bold; }
  .entry-dates { font-style: italic; font-size: 9.5pt; }
  .entry-company { font-size: 10pt; }
  .entry-bullets { margin: 4px 0 0; padding-left: 18px; }
  .skill-group-name { margin: 0 0 2px; }
  .skill { display: inline-block; margin-right: 14px; }
  .skill-level { display: none; }
  .tag { display: inline; margin-right: 8px; font-size: 9pt; }
  .tag::after { content: " ·"; }
  .tag:last-child::after { content: ""; }
  .language { display: flex; justify-content: space-between; max-width: 320px; margin-bottom: 3px; }
  .entry-url, .entry-gpa, .entry-relation { font-size: 9.5pt; }
</style>
</head>
<body>
<div class="a4-page">
  <header class="identity">
    <h1>{{.Doc.Personal.FullName}}</h1>
    <div class="job-title">{{.Doc.Personal.JobTitle}}</div>
  </header>
  {{template "sectionFlow" .}}
</div>
</body>
</html>`
