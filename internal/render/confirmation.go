package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/seventattoolv/intake/internal/form"
)

// ConfirmationData carries the applicant details the confirmation
// templates interpolate.
type ConfirmationData struct {
	Name  string
	Email string
	City  string
	Link  string
}

type confirmationTemplate struct {
	Subject string
	Text    string
	HTML    string
}

var confirmationTemplates = map[string]confirmationTemplate{
	"artist_received": {
		Subject: "We received your Artist application — Seven Tattoo",
		Text: `Thanks {{.Name}}! We received your Artist application. We review within 48 hours.

— Seven Tattoo`,
		HTML: `<h2>Thanks, {{.Name}} — Artist application received</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for applying to join <strong>Seven Tattoo</strong> as an <strong>Artist</strong>. We review applications within 48 hours and will reach out if we’re moving forward.</p>
{{if .Link}}<p><strong>We noted your portfolio:</strong> <a href="{{.Link}}">{{.Link}}</a></p>
{{end}}<p>— Seven Tattoo</p>`,
	},
	"staff_received": {
		Subject: "We received your Staff application — Seven Tattoo",
		Text: `Thanks {{.Name}}! We received your Staff application. We review within 48 hours.

— Seven Tattoo`,
		HTML: `<h2>Thanks, {{.Name}} — We got your application</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for applying for the <strong>Staff</strong> position at Seven Tattoo. Our team reviews applications within 48 hours. If you’re a match, we’ll email you next steps.</p>
<p><strong>What we received:</strong></p>
<ul>
<li>Email: {{.Email}}</li>
<li>City: {{.City}}</li>
</ul>
<p>— Seven Tattoo</p>`,
	},
	"backoffice_received": {
		Subject: "Seven Tattoo — We received your Back Office application",
		Text: `Hi {{.Name}},

Thanks for applying to Seven Tattoo. We’ve received your Back Office application and will review it shortly.

Summary:
- Name: {{.Name}}
- City: {{.City}}
- Link: {{.Link}}

If we move forward, we'll reach out via this email.

— Seven Tattoo`,
		HTML: `<h2>Thanks, {{.Name}}</h2>
<p>Thanks for applying to Seven Tattoo. We’ve received your Back Office application and will review it shortly.</p>
<p>If we move forward, we'll reach out via this email.</p>
<p>— Seven Tattoo</p>`,
	},
}

// Confirmation renders the applicant-confirmation message for a form, or
// ok=false when the form sends no confirmation.
func Confirmation(spec *form.Spec, app *form.Application) (Message, bool, error) {
	if spec.Confirmation == "" {
		return Message{}, false, nil
	}
	tmpl, ok := confirmationTemplates[spec.Confirmation]
	if !ok {
		return Message{}, false, fmt.Errorf("unknown confirmation template %q for form %q", spec.Confirmation, spec.Name)
	}

	data := ConfirmationData{
		Name:  applicantName(app),
		Email: app.Get("email"),
		City:  app.Get("city"),
		Link:  confirmationLink(app),
	}

	text, err := renderText(spec.Confirmation+"_text", tmpl.Text, data)
	if err != nil {
		return Message{}, false, err
	}
	body, err := renderHTML(spec.Confirmation+"_html", tmpl.HTML, data)
	if err != nil {
		return Message{}, false, err
	}

	return Message{Subject: tmpl.Subject, Text: text, HTML: body}, true, nil
}

func confirmationLink(app *form.Application) string {
	for _, name := range []string{"portfolio", "resume_link", "video_url"} {
		if link := app.Get(name); link != "" {
			return link
		}
	}
	return ""
}

func renderText(name, body string, data ConfirmationData) (string, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", name, err)
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return out.String(), nil
}

// renderHTML uses html/template so applicant-supplied values are escaped
// for both element and attribute context.
func renderHTML(name, body string, data ConfirmationData) (string, error) {
	tmpl, err := htmltemplate.New(name).Parse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", name, err)
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return out.String(), nil
}
