package render

import (
	"strings"
	"testing"

	"github.com/seventattoolv/intake/internal/form"
)

func resolveArtist(t *testing.T, raw form.RawInput) (*form.Spec, *form.Application) {
	t.Helper()
	spec, ok := form.NewRegistry().Lookup("artist")
	if !ok {
		t.Fatalf("artist form not registered")
	}
	return spec, form.Resolve(raw, spec)
}

func TestInternal_TextBody(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{
		"name":         "Jane Doe",
		"email":        "jane@x.com",
		"phone":        "555-1234",
		"city":         "Las Vegas",
		"ig_handle":    "@janedoe",
		"q_proud":      "line one\nline two",
		"q_commitment": "commit text",
		"consent":      "yes",
	})

	msg, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Subject != "Application: Jane Doe (Artist)" {
		t.Fatalf("subject=%q", msg.Subject)
	}
	for _, want := range []string{
		"New Artist Application",
		"Name: Jane Doe",
		"Instagram Handle: @janedoe",
		"What must your work represent in five years for you to feel proud?:\nline one\nline two",
		"Agrees to sanitation & compliance standards: Yes",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("text body missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestInternal_Deterministic(t *testing.T) {
	t.Parallel()

	raw := form.RawInput{
		"name":         "Jane Doe",
		"email":        "jane@x.com",
		"q_proud":      "pride",
		"q_commitment": "commit",
		"consent":      "yes",
	}
	spec, app := resolveArtist(t, raw)

	first, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Internal(spec, form.Resolve(raw, spec))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("rendering is not deterministic")
	}
}

func TestInternal_PlaceholderAndOmitBlank(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{"name": "Jane Doe"})

	msg, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(msg.Text, "Phone: (not provided)") {
		t.Fatalf("expected placeholder for blank phone:\n%s", msg.Text)
	}
	// video_url and source are declared omit-when-blank.
	if strings.Contains(msg.Text, "Video URL") || strings.Contains(msg.Text, "Source:") {
		t.Fatalf("expected blank optional links to be omitted:\n%s", msg.Text)
	}
	// The hidden notify override never renders.
	if strings.Contains(msg.Text, "Notify") {
		t.Fatalf("hidden field rendered:\n%s", msg.Text)
	}
}

func TestInternal_HTMLEscapesValues(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{
		"name":    `<script>alert("x")</script>`,
		"q_proud": "a & b < c",
	})

	msg, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(msg.HTML, "<script>") || strings.Contains(msg.HTML, "</script>") {
		t.Fatalf("unescaped script tag in HTML body:\n%s", msg.HTML)
	}
	for _, want := range []string{"&lt;script&gt;", "a &amp; b &lt; c", "&#34;x&#34;"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("HTML body missing %q:\n%s", want, msg.HTML)
		}
	}
}

func TestInternal_URLFieldsRenderAsAnchors(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{
		"name":      "Jane Doe",
		"video_url": `https://youtu.be/abc?x="1"`,
	})

	msg, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(msg.HTML, `<a href="https://youtu.be/abc?x=&#34;1&#34;">`) {
		t.Fatalf("expected escaped anchor href:\n%s", msg.HTML)
	}
}

func TestInternal_SubjectFallbacks(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{})
	msg, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Subject != "Application: Applicant (Artist)" {
		t.Fatalf("subject=%q", msg.Subject)
	}
}

func TestInternal_BookingSubjectComposition(t *testing.T) {
	t.Parallel()

	spec, ok := form.NewRegistry().Lookup("booking")
	if !ok {
		t.Fatalf("booking form not registered")
	}

	tests := []struct {
		name string
		raw  form.RawInput
		want string
	}{
		{
			name: "scale and placement",
			raw:  form.RawInput{"fullName": "Jane Doe", "scale": "half sleeve", "placement": "forearm"},
			want: "Booking Intake — Jane Doe (half sleeve, forearm)",
		},
		{
			name: "scale only",
			raw:  form.RawInput{"fullName": "Jane Doe", "scale": "half sleeve"},
			want: "Booking Intake — Jane Doe (half sleeve)",
		},
		{
			name: "neither",
			raw:  form.RawInput{"fullName": "Jane Doe"},
			want: "Booking Intake — Jane Doe",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			msg, err := Internal(spec, form.Resolve(tc.raw, spec))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg.Subject != tc.want {
				t.Fatalf("subject=%q, want %q", msg.Subject, tc.want)
			}
		})
	}
}

func TestInternal_FallbackKeyIsVisible(t *testing.T) {
	t.Parallel()

	spec, ok := form.NewRegistry().Lookup("backoffice")
	if !ok {
		t.Fatalf("backoffice form not registered")
	}
	app := form.Resolve(form.RawInput{
		"name":        "Jane Doe",
		"legacy_blob": "When our front desk double-booked two clients I owned the mistake and rebuilt the calendar.",
	}, spec)

	msg, err := Internal(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg.Text, "[fallback key used: legacy_blob]") {
		t.Fatalf("text body does not record fallback key:\n%s", msg.Text)
	}
	if !strings.Contains(msg.HTML, "legacy_blob") {
		t.Fatalf("HTML body does not record fallback key:\n%s", msg.HTML)
	}
}

func TestConfirmation_Artist(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{
		"name":      "Jane Doe",
		"email":     "jane@x.com",
		"video_url": "https://youtu.be/abc",
	})

	msg, ok, err := Confirmation(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("artist form should send a confirmation")
	}
	if msg.Subject != "We received your Artist application — Seven Tattoo" {
		t.Fatalf("subject=%q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Thanks Jane Doe!") {
		t.Fatalf("text=%q", msg.Text)
	}
	if !strings.Contains(msg.HTML, "https://youtu.be/abc") {
		t.Fatalf("expected noted link in HTML:\n%s", msg.HTML)
	}
}

func TestConfirmation_EscapesApplicantValues(t *testing.T) {
	t.Parallel()

	spec, app := resolveArtist(t, form.RawInput{
		"name":  "<b>Jane</b>",
		"email": "jane@x.com",
	})

	msg, ok, err := Confirmation(spec, app)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if strings.Contains(msg.HTML, "<b>Jane</b>") {
		t.Fatalf("unescaped applicant name in HTML:\n%s", msg.HTML)
	}
}

func TestConfirmation_BookingHasNone(t *testing.T) {
	t.Parallel()

	spec, ok := form.NewRegistry().Lookup("booking")
	if !ok {
		t.Fatalf("booking form not registered")
	}
	app := form.Resolve(form.RawInput{"fullName": "Jane Doe"}, spec)

	_, sent, err := Confirmation(spec, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent {
		t.Fatalf("booking form must not send a confirmation")
	}
}
