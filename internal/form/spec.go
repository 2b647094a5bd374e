// Package form defines the declarative form specs and the generic
// alias resolver and validator shared by every intake form.
package form

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind classifies a canonical field and selects its normalization and
// format rules.
type Kind string

const (
	KindText     Kind = "text"
	KindLongText Kind = "longtext"
	KindBool     Kind = "bool"
	KindURL      Kind = "url"
	KindHandle   Kind = "handle"
	KindEmail    Kind = "email"
)

// Field declares one canonical field of a form: its stable name, the raw
// keys historical form versions used for it, and how it renders.
type Field struct {
	Name    string   `yaml:"name"`
	Label   string   `yaml:"label"`
	Kind    Kind     `yaml:"kind"`
	Aliases []string `yaml:"aliases"`

	Required bool `yaml:"required"`

	// OmitBlank leaves the field out of rendered messages when empty
	// instead of printing the placeholder.
	OmitBlank bool `yaml:"omit_blank"`

	// Hidden fields are resolved but never rendered (routing overrides,
	// client metadata).
	Hidden bool `yaml:"hidden"`

	// Fallback marks a long-form field that may be satisfied by the
	// legacy longest-free-text heuristic when no alias matches.
	Fallback bool `yaml:"fallback"`

	// Default substitutes when nothing resolves. Only meaningful for
	// optional fields.
	Default string `yaml:"default"`

	// MaxLen rejects present values longer than this many characters.
	// Zero means unlimited.
	MaxLen int `yaml:"max_len"`
}

// Spec is the full declarative definition of one form type.
type Spec struct {
	Name string `yaml:"name"`

	// Title heads the rendered internal-notification message.
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`

	// Honeypots lists the decoy keys this form's versions have used. A
	// non-empty trimmed value in any of them filters the submission.
	Honeypots []string `yaml:"honeypots"`

	// Subject is a text/template body over render.SubjectData.
	Subject string `yaml:"subject"`

	// NotifyField names the hidden field whose value, when it is a
	// well-formed email address, overrides the configured recipient.
	NotifyField string `yaml:"notify_field"`

	// Confirmation selects the applicant-confirmation template by name,
	// empty when the form sends no confirmation.
	Confirmation string `yaml:"confirmation"`
}

// RequiredFields returns the required canonical field names in declared
// order. Validation errors are reported in this order.
func (s *Spec) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldByName returns the declaration for a canonical field.
func (s *Spec) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s *Spec) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("form name is required")
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("form %q declares no fields", s.Name)
	}

	seen := make(map[string]bool)
	for i, f := range s.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("form %q field %d has no name", s.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("form %q duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case KindText, KindLongText, KindBool, KindURL, KindHandle, KindEmail:
		case "":
			return fmt.Errorf("form %q field %q has no kind", s.Name, f.Name)
		default:
			return fmt.Errorf("form %q field %q has unknown kind %q", s.Name, f.Name, f.Kind)
		}
	}

	if s.NotifyField != "" {
		if _, ok := s.FieldByName(s.NotifyField); !ok {
			return fmt.Errorf("form %q notify field %q is not declared", s.Name, s.NotifyField)
		}
	}
	return nil
}

// Registry holds the known form specs keyed by form name.
type Registry struct {
	specs map[string]*Spec
}

// NewRegistry builds a registry from the built-in form specs.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]*Spec)}
	for _, s := range builtinSpecs() {
		r.specs[s.Name] = s
	}
	return r
}

// Lookup returns the spec for a form name.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	s, ok := r.specs[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Names returns the registered form names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile merges form specs from a YAML file into the registry. Specs
// with a known name replace the built-in definition.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read forms file: %w", err)
	}
	return r.load(data)
}

func (r *Registry) load(data []byte) error {
	var file struct {
		Forms []*Spec `yaml:"forms"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse forms file: %w", err)
	}

	for _, s := range file.Forms {
		if err := s.validate(); err != nil {
			return err
		}
		r.specs[strings.ToLower(s.Name)] = s
	}
	return nil
}
