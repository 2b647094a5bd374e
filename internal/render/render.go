// Package render turns a resolved application into the notification
// message bodies handed to the mail provider.
package render

import (
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/seventattoolv/intake/internal/form"
)

// Message is the deterministic rendering of one application: a subject
// line, a plain-text body, and an HTML body with every interpolated value
// escaped.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

const notProvided = "(not provided)"

// SubjectData feeds the per-form subject template.
type SubjectData struct {
	Name     string
	Position string
	Fields   map[string]string
}

// Internal renders the internal-notification message for an application.
func Internal(spec *form.Spec, app *form.Application) (Message, error) {
	subject, err := subjectLine(spec, app)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Subject: subject,
		Text:    textBody(spec, app),
		HTML:    htmlBody(spec, app),
	}, nil
}

func subjectLine(spec *form.Spec, app *form.Application) (string, error) {
	tmpl, err := template.New("subject").Parse(spec.Subject)
	if err != nil {
		return "", fmt.Errorf("failed to parse subject template for form %q: %w", spec.Name, err)
	}

	data := SubjectData{
		Name:     applicantName(app),
		Position: positionValue(app),
		Fields:   make(map[string]string, len(app.Values)),
	}
	for name, value := range app.Values {
		data.Fields[name] = value.Text
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render subject for form %q: %w", spec.Name, err)
	}
	return out.String(), nil
}

func applicantName(app *form.Application) string {
	if name := app.Get("full_name"); name != "" {
		return name
	}
	return "Applicant"
}

func positionValue(app *form.Application) string {
	if position := app.Get("position"); position != "" {
		return position
	}
	return app.Get("role")
}

func textBody(spec *form.Spec, app *form.Application) string {
	lines := []string{spec.Title, strings.Repeat("-", len([]rune(spec.Title)))}

	for _, field := range spec.Fields {
		if field.Hidden {
			continue
		}
		value := app.Values[field.Name]

		display := value.Text
		if field.Kind == form.KindBool {
			display = yesNo(value.Bool)
		}
		if display == "" {
			if field.OmitBlank {
				continue
			}
			display = notProvided
		}

		if field.Kind == form.KindLongText {
			lines = append(lines, "", field.Label+":", display)
			continue
		}
		lines = append(lines, field.Label+": "+display)
	}

	if app.FallbackKey != "" {
		lines = append(lines, "", "[fallback key used: "+app.FallbackKey+"]")
	}

	return strings.Join(lines, "\n")
}

func htmlBody(spec *form.Spec, app *form.Application) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:system-ui,-apple-system,'Segoe UI',Roboto,Arial,sans-serif;color:#111;">`)
	b.WriteString("\n<h2 style=\"margin:0 0 10px;\">" + html.EscapeString(spec.Title) + "</h2>\n")
	b.WriteString(`<table cellpadding="0" cellspacing="0" style="border-collapse:collapse;width:100%;max-width:760px;">` + "\n")

	for _, field := range spec.Fields {
		if field.Hidden {
			continue
		}
		value := app.Values[field.Name]

		if field.Kind == form.KindBool {
			b.WriteString(row(field.Label, html.EscapeString(yesNo(value.Bool))))
			continue
		}
		if value.Text == "" {
			if field.OmitBlank {
				continue
			}
			b.WriteString(row(field.Label, "<em>"+html.EscapeString(notProvided)+"</em>"))
			continue
		}
		if field.Kind == form.KindURL {
			escaped := html.EscapeString(value.Text)
			b.WriteString(row(field.Label, `<a href="`+escaped+`">`+escaped+`</a>`))
			continue
		}
		b.WriteString(row(field.Label, nl2br(value.Text)))
	}

	b.WriteString("</table>\n")
	if app.FallbackKey != "" {
		b.WriteString(`<p style="font-size:12px;color:#888;">[fallback key used: ` + html.EscapeString(app.FallbackKey) + "]</p>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func row(label, valueHTML string) string {
	return `<tr><td style="padding:6px 10px;border-top:1px solid #eee;"><strong>` +
		html.EscapeString(label) +
		`:</strong></td><td style="padding:6px 10px;border-top:1px solid #eee;">` +
		valueHTML + "</td></tr>\n"
}

func nl2br(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
