package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

// CounsellorEmailData fills the counsellor update email.
type CounsellorEmailData struct {
	StudentName string
	Stage       string
	Message     string
}

const counsellorEmailHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Admission update: {{ .Stage }}</h2>
  <p>Dear {{ .StudentName }},</p>
  {{- range paragraphs .Message }}
  <p>{{ . }}</p>
  {{- end }}
  <hr>
  <p style="font-size: 12px; color: #777;">Reply to this email to reach the student counsellor.</p>
</body>
</html>`

var counsellorEmailTmpl = template.Must(
	template.New("counsellor").
		Funcs(template.FuncMap{
			"paragraphs": func(s string) []string {
				var out []string
				for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
					if p = strings.TrimSpace(p); p != "" {
						out = append(out, p)
					}
				}
				return out
			},
		}).
		Parse(counsellorEmailHTML),
)

// CounsellorSubject is the subject line for a stage update.
func CounsellorSubject(stage string) string {
	return "Your admission update: " + stage
}

// RenderCounsellorEmail renders the HTML body. Message text is escaped.
func RenderCounsellorEmail(data CounsellorEmailData) (string, error) {
	var buf bytes.Buffer
	if err := counsellorEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
