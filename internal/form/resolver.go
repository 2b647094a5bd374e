package form

import (
	"net/url"
	"regexp"
	"strings"
)

// Value is one resolved canonical field. Key records which raw key
// satisfied it, "" when nothing did.
type Value struct {
	Text string
	Bool bool
	Key  string
}

// Application is the normalized output record. Every canonical field the
// spec declares has an entry, empty when nothing in the raw input resolved
// it.
type Application struct {
	Form   string
	Values map[string]Value

	// FallbackKey is the raw key consumed by the legacy longest-free-text
	// heuristic, "" when it was not used.
	FallbackKey string
}

// Get returns the resolved text of a canonical field.
func (a *Application) Get(name string) string {
	return a.Values[name].Text
}

// BoolValue returns the resolved consent value of a bool field.
func (a *Application) BoolValue(name string) bool {
	return a.Values[name].Bool
}

// Resolve maps raw input onto the spec's canonical fields. Aliases are
// tried in declared priority order with case-insensitive key matching;
// the first non-empty trimmed value wins. Bool fields take the first
// alias key present at all, so an unchecked checkbox sent as "false"
// still resolves (to false) rather than falling through.
func Resolve(raw RawInput, spec *Spec) *Application {
	index := raw.keyIndex()
	app := &Application{
		Form:   spec.Name,
		Values: make(map[string]Value, len(spec.Fields)),
	}

	consumed := make(map[string]bool)
	for _, field := range spec.Fields {
		value := resolveField(raw, index, field)
		if value.Key != "" {
			consumed[strings.ToLower(value.Key)] = true
		}
		app.Values[field.Name] = value
	}

	resolveFallbacks(raw, spec, app, consumed)
	applyDefaults(spec, app)

	return app
}

func resolveField(raw RawInput, index map[string]string, field Field) Value {
	for _, alias := range field.Aliases {
		key, ok := index[strings.ToLower(alias)]
		if !ok {
			continue
		}

		if field.Kind == KindBool {
			return Value{Bool: truthy(raw[key]), Key: key}
		}

		text := stringValue(raw[key])
		if text == "" {
			continue
		}
		if field.Kind == KindHandle {
			text = NormalizeHandle(text)
			if text == "" {
				continue
			}
		}
		return Value{Text: text, Key: key}
	}
	return Value{}
}

// resolveFallbacks satisfies unresolved fallback-enabled fields with the
// longest untouched free-text raw value. This exists only to tolerate
// unknown historical field names; new form versions must declare aliases.
func resolveFallbacks(raw RawInput, spec *Spec, app *Application, consumed map[string]bool) {
	ignore := ignoreSet(spec)

	for _, field := range spec.Fields {
		if !field.Fallback || app.Values[field.Name].Text != "" {
			continue
		}

		bestKey, bestText := "", ""
		for key, rawValue := range raw {
			text, ok := rawValue.(string)
			if !ok {
				continue
			}
			lower := strings.ToLower(key)
			if consumed[lower] || ignore[lower] {
				continue
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			if len(text) <= 40 && !strings.Contains(text, " ") {
				continue
			}
			if len(text) > len(bestText) {
				bestKey, bestText = key, text
			}
		}

		if bestKey != "" {
			app.Values[field.Name] = Value{Text: bestText, Key: bestKey}
			app.FallbackKey = bestKey
			consumed[strings.ToLower(bestKey)] = true
		}
	}
}

// ignoreSet collects every raw key the fallback must never consume: all
// declared aliases, the honeypot keys, and client metadata.
func ignoreSet(spec *Spec) map[string]bool {
	ignore := map[string]bool{"__meta": true}
	for _, field := range spec.Fields {
		for _, alias := range field.Aliases {
			ignore[strings.ToLower(alias)] = true
		}
	}
	for _, key := range spec.Honeypots {
		ignore[strings.ToLower(key)] = true
	}
	return ignore
}

func applyDefaults(spec *Spec, app *Application) {
	for _, field := range spec.Fields {
		if field.Default == "" || field.Kind == KindBool {
			continue
		}
		if app.Values[field.Name].Text == "" {
			app.Values[field.Name] = Value{Text: field.Default}
		}
	}
}

var (
	handleURLRe   = regexp.MustCompile(`(?i)^(https?:)?//|^[a-z0-9.-]+\.[a-z]{2,}/`)
	handleCharsRe = regexp.MustCompile(`[^A-Za-z0-9._]`)
)

// NormalizeHandle turns "@name", "name", or a pasted profile URL like
// instagram.com/name into "@name". An input with no valid handle
// characters left normalizes to "".
func NormalizeHandle(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	if handleURLRe.MatchString(s) {
		withScheme := s
		if !strings.Contains(strings.ToLower(s), "://") {
			withScheme = "https://" + strings.TrimPrefix(s, "//")
		}
		if u, err := url.Parse(withScheme); err == nil {
			if segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' }); len(segments) > 0 {
				s = segments[0]
			}
		}
	}

	s = strings.TrimLeft(s, "@")
	s = handleCharsRe.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}
	return "@" + s
}
