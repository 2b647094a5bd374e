package form

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewRegistry_BuiltinForms(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	want := []string{"artist", "backoffice", "booking", "staff"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("names=%v, want %v", got, want)
	}

	for _, name := range want {
		spec, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("form %q not found", name)
		}
		if err := spec.validate(); err != nil {
			t.Fatalf("builtin form %q invalid: %v", name, err)
		}
		if len(spec.Honeypots) == 0 {
			t.Fatalf("builtin form %q has no honeypot", name)
		}
	}
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if _, ok := r.Lookup(" Artist "); !ok {
		t.Fatalf("expected lookup to trim and lower-case")
	}
}

func TestRegistry_LoadMergesAndOverrides(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.load([]byte(`
forms:
  - name: piercing
    title: New Piercing Request
    honeypots: [website]
    subject: "Piercing Request — {{.Name}}"
    fields:
      - name: full_name
        label: Name
        kind: text
        required: true
        aliases: [name, full_name]
      - name: email
        label: Email
        kind: email
        required: true
        aliases: [email]
  - name: artist
    title: Replaced Artist Form
    honeypots: [hp]
    subject: "{{.Name}}"
    fields:
      - name: full_name
        label: Name
        kind: text
        required: true
        aliases: [name]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	piercing, ok := r.Lookup("piercing")
	if !ok {
		t.Fatalf("merged form not found")
	}
	if got := piercing.RequiredFields(); !reflect.DeepEqual(got, []string{"full_name", "email"}) {
		t.Fatalf("required=%v", got)
	}

	artist, ok := r.Lookup("artist")
	if !ok || artist.Title != "Replaced Artist Form" {
		t.Fatalf("expected artist form to be replaced, got %+v", artist)
	}
}

func TestRegistry_LoadRejectsBadSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing kind",
			yaml:    "forms:\n  - name: x\n    fields:\n      - name: f\n        label: F\n",
			wantErr: "no kind",
		},
		{
			name:    "unknown kind",
			yaml:    "forms:\n  - name: x\n    fields:\n      - name: f\n        label: F\n        kind: blob\n",
			wantErr: "unknown kind",
		},
		{
			name:    "duplicate field",
			yaml:    "forms:\n  - name: x\n    fields:\n      - {name: f, label: F, kind: text}\n      - {name: f, label: F, kind: text}\n",
			wantErr: "duplicate field",
		},
		{
			name:    "undeclared notify field",
			yaml:    "forms:\n  - name: x\n    notify_field: nope\n    fields:\n      - {name: f, label: F, kind: text}\n",
			wantErr: "notify field",
		},
		{
			name:    "no fields",
			yaml:    "forms:\n  - name: x\n",
			wantErr: "declares no fields",
		},
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: "failed to parse",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := NewRegistry().load([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error=%v, want containing %q", err, tc.wantErr)
			}
		})
	}
}
