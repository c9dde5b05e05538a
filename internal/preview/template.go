package preview

// previewTemplate 是预览 HTML 的 Go 模板。
// 宽度固定为 794px（A4 @ 96DPI），高度随内容自动增长；
// 分页不在此处发生，由栅格化阶段按像素高度切分。
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body {
    margin: 0;
    padding: 0;
    background: #ffffff;
  }
  #resume-root {
    width: 794px;
    min-height: 1123px;
    box-sizing: border-box;
    background: {{.Tpl.Colors.Background}};
    color: {{.Tpl.Colors.Text}};
    font-family: {{.FontCSS}};
    font-size: {{.Doc.BodyFontSize}}px;
    line-height: {{.Doc.LineHeight}};
  }
  .page-header {
    padding-top: {{.Doc.HeaderTopPadding}}px;
    padding-bottom: {{.Doc.HeaderBottomPadding}}px;
    margin-bottom: {{.Doc.HeaderContentSpacing}}px;
  }
  .name-row {
    display: flex;
    align-items: baseline;
    flex-wrap: wrap;
    gap: 0 16px;
    {{if .Plan.Centered}}justify-content: center;{{end}}
  }
  .full-name {
    font-size: {{.Doc.NameFontSize}}px;
    font-weight: 800;
    text-transform: uppercase;
    letter-spacing: -0.5px;
    line-height: 1.1;
    margin: 0;
  }
  .job-title {
    font-size: {{.Doc.NameFontSize}}px;
    font-weight: 300;
    text-transform: uppercase;
    letter-spacing: 2px;
    opacity: 0.6;
  }
  .head-flex {
    display: flex;
    justify-content: space-between;
    align-items: center;
  }
  .head-text { flex: 1; }
  .photo {
    width: {{.PhotoPx}}px;
    height: {{.PhotoPx}}px;
    border-radius: 12px;
    object-fit: cover;
    flex-shrink: 0;
    margin-left: 32px;
    background: #f9fafb;
  }
  .photo.bordered {
    border: 2px solid #ffffff;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
  }
  .sidebar-photo {
    display: flex;
    justify-content: center;
    padding-top: 32px;
    margin-bottom: 32px;
  }
  .sidebar-photo .photo { margin-left: 0; }
  .contact-line {
    font-size: {{.Doc.ContactFontSize}}px;
    opacity: 0.8;
    margin-top: 16px;
    {{if .Plan.Centered}}text-align: center;{{end}}
  }
  .contact-sep {
    margin: 0 12px;
    opacity: 0.3;
  }
  .summary {
    margin-bottom: {{.Doc.SummaryBottomSpacing}}px;
    {{if .Plan.Centered}}text-align: center;{{end}}
  }
  .section {
    margin-bottom: {{.Doc.ModuleSpacing}}px;
    break-inside: avoid;
  }
  .section-title {
    font-size: {{.Doc.SectionHeaderFontSize}}px;
    font-weight: bold;
    text-transform: uppercase;
    letter-spacing: 3px;
    margin: 0;
  }
  .section-dot {
    display: inline-block;
    width: 8px;
    height: 22px;
    border-radius: 9999px;
    background: {{.Accent}};
    vertical-align: middle;
    margin-right: 12px;
  }
  .section-body {
    margin-top: {{.Doc.SectionTitleMargin}}px;
  }
  .detail-item {
    margin-bottom: {{.Doc.ItemSpacing}}px;
  }
  .detail-head {
    display: flex;
    justify-content: space-between;
    align-items: baseline;
    margin-bottom: 4px;
  }
  .detail-title {
    font-size: {{.Doc.RoleFontSize}}px;
    font-weight: bold;
    margin: 0;
  }
  .detail-subtitle {
    font-size: {{.Doc.BodyFontSize}}px;
    font-weight: bold;
    color: {{.Accent}};
    opacity: 0.8;
    margin-left: 12px;
  }
  .detail-date {
    font-size: {{.Doc.ContactFontSize}}px;
    font-weight: 500;
    opacity: 0.5;
    white-space: nowrap;
    margin-left: 16px;
  }
  .desc {
    font-size: {{.Doc.BodyFontSize}}px;
    line-height: {{.Doc.LineHeight}};
    opacity: 0.85;
    margin-top: 8px;
    text-align: justify;
  }
  .desc-row {
    display: flex;
    margin-bottom: 4px;
  }
  .desc-marker {
    color: {{.Accent}};
    margin-right: 8px;
    flex-shrink: 0;
    min-width: 1.2em;
  }
  .desc-row .bullet-marker { opacity: 0.5; }
  .desc-row .ordered-marker { opacity: 0.6; font-weight: bold; }
  .tag-list {
    display: flex;
    flex-wrap: wrap;
    gap: 6px;
  }
  .tag {
    font-size: {{.Doc.ContactFontSize}}px;
    font-weight: 500;
    padding: 2px 8px;
    border-radius: 4px;
    background: #f9fafb;
    border: 1px solid #f3f4f6;
    color: #374151;
  }
  .sidebar .tag {
    background: rgba(255,255,255,0.95);
    border-color: rgba(255,255,255,0.2);
    color: #1f2937;
  }
  /* 单栏结构 */
  .single-col { padding: 0 48px 48px; }
  .single-col .page-header.classic { border-bottom: 4px solid {{.Accent}}; }
  /* modern：整宽主色页眉带 */
  .header-band {
    background: {{.Accent}};
    color: #ffffff;
    padding: 32px 48px;
    margin-bottom: {{.Doc.HeaderContentSpacing}}px;
  }
  .header-band .job-title, .header-band .contact-line { color: #ffffff; }
  .band-body { padding: 0 48px 48px; }
  /* 双栏结构 */
  .two-col { display: flex; min-height: 1123px; }
  .col-left { width: {{.Plan.LeftPercent}}%; box-sizing: border-box; padding: 40px 32px 48px; }
  .col-right { width: {{.Plan.RightPercent}}%; box-sizing: border-box; padding: 40px 32px 48px; }
  .sidebar {
    background: {{if .Tpl.Colors.SidebarBg}}{{.Tpl.Colors.SidebarBg}}{{else}}#f8fafc{{end}};
    {{if .Plan.DarkSidebar}}color: #ffffff;{{end}}
  }
  .span-head { padding: 0 48px; }
  .span-cols { display: flex; gap: 40px; padding: 0 48px 48px; }
  .span-cols .col-left, .span-cols .col-right { padding: 0; }
</style>
</head>
<body>
<div id="resume-root">
{{if .Plan.HeaderBand}}
  <div class="header-band">
    <div class="page-header head-flex">
      <div class="head-text">{{template "headerRow" .}}{{template "contact" .}}</div>
      {{template "photo" .}}
    </div>
  </div>
  <div class="band-body">
    {{template "summary" .}}
    {{range .Left}}{{template "section" .}}{{end}}
  </div>
{{else if .Plan.TwoColumn}}
  {{if .Plan.HeaderSpansColumns}}
  <div class="span-head">
    <div class="page-header head-flex">
      <div class="head-text">{{template "headerRow" .}}{{template "contact" .}}</div>
      {{template "photo" .}}
    </div>
    {{template "summary" .}}
  </div>
  <div class="span-cols">
    <div class="col-left">{{range .Left}}{{template "section" .}}{{end}}</div>
    <div class="col-right">{{range .Right}}{{template "section" .}}{{end}}</div>
  </div>
  {{else}}
  <div class="two-col">
    <div class="col-left{{if .Plan.SidebarLeft}} sidebar{{end}}">
      {{if .Plan.SidebarLeft}}{{template "sidebarPhoto" .}}{{template "contact" .}}{{else}}
      <div class="page-header">{{template "headerRow" .}}{{template "contact" .}}</div>
      {{template "summary" .}}{{end}}
      {{range .Left}}{{template "section" .}}{{end}}
    </div>
    <div class="col-right{{if not .Plan.SidebarLeft}} sidebar{{end}}">
      {{if not .Plan.SidebarLeft}}{{template "sidebarPhoto" .}}{{template "contact" .}}{{else}}
      <div class="page-header">{{template "headerRow" .}}{{template "contact" .}}</div>
      {{template "summary" .}}{{end}}
      {{range .Right}}{{template "section" .}}{{end}}
    </div>
  </div>
  {{end}}
{{else}}
  <div class="single-col">
    <div class="page-header head-flex{{if eq .Tpl.Structure "classic"}} classic{{end}}">
      <div class="head-text">
        {{template "headerRow" .}}
        {{template "contact" .}}
      </div>
      {{template "photo" .}}
    </div>
    {{template "summary" .}}
    {{range .Left}}{{template "section" .}}{{end}}
  </div>
{{end}}
</div>
</body>
</html>

{{define "photo"}}{{if .Photo}}<img class="photo{{if .PhotoBorder}} bordered{{end}}" src="{{.Photo}}" alt="Profile">{{end}}{{end}}

{{define "sidebarPhoto"}}
{{if .Photo}}
<div class="sidebar-photo"><img class="photo bordered" src="{{.Photo}}" alt="Profile"></div>
{{end}}
{{end}}

{{define "headerRow"}}
<div class="name-row">
  <h1 class="full-name">{{.Doc.PersonalInfo.FullName}}</h1>
  {{if .Doc.PersonalInfo.JobTitle}}<span class="job-title">{{.Doc.PersonalInfo.JobTitle}}</span>{{end}}
</div>
{{end}}

{{define "contact"}}
{{if .Contact}}
<div class="contact-line">
  {{range $i, $item := .Contact}}{{if $i}}<span class="contact-sep">|</span>{{end}}<span>{{$item}}</span>{{end}}
</div>
{{end}}
{{end}}

{{define "summary"}}
{{if .Summary}}
<div class="summary desc">
  {{range .Summary}}{{template "descLine" .}}{{end}}
</div>
{{end}}
{{end}}

{{define "section"}}
<div class="section{{if .Sidebar}} sidebar-section{{end}}">
  <h3 class="section-title" style="{{.TitleCSS}}">{{if .ShowDot}}<span class="section-dot"></span>{{end}}{{.Title}}</h3>
  <div class="section-body">
    {{if .IsTags}}
    <div class="tag-list{{if .Sidebar}} sidebar{{end}}">
      {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
    </div>
    {{else}}
    {{range .Details}}
    <div class="detail-item">
      <div class="detail-head">
        <div>
          <span class="detail-title">{{.Title}}</span>
          {{if .Subtitle}}<span class="detail-subtitle">{{.Subtitle}}</span>{{end}}
        </div>
        {{if .Date}}<span class="detail-date">{{.Date}}</span>{{end}}
      </div>
      {{if .Lines}}
      <div class="desc">
        {{range .Lines}}{{template "descLine" .}}{{end}}
      </div>
      {{end}}
    </div>
    {{end}}
    {{end}}
  </div>
</div>
{{end}}

{{define "descLine"}}
{{if .Bullet}}
<div class="desc-row"><span class="desc-marker bullet-marker">{{.Marker}}</span><span>{{.HTML}}</span></div>
{{else if .Ordered}}
<div class="desc-row"><span class="desc-marker ordered-marker">{{.Marker}}</span><span>{{.HTML}}</span></div>
{{else}}
<div>{{.HTML}}</div>
{{end}}
{{end}}
`
