package form

import (
	"errors"
	"testing"
)

func TestParseBody_JSON(t *testing.T) {
	t.Parallel()

	raw, err := ParseBody([]byte(`{"name":"Jane","consent":true,"count":2}`), "application/json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["name"] != "Jane" {
		t.Fatalf("name=%v, want Jane", raw["name"])
	}
	if raw["consent"] != true {
		t.Fatalf("consent=%v, want true", raw["consent"])
	}
}

func TestParseBody_JSONWithoutContentType(t *testing.T) {
	t.Parallel()

	raw, err := ParseBody([]byte(`{"name":"Jane"}`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["name"] != "Jane" {
		t.Fatalf("name=%v, want Jane", raw["name"])
	}
}

func TestParseBody_URLEncoded(t *testing.T) {
	t.Parallel()

	raw, err := ParseBody([]byte("name=Jane+Doe&consent=on"), "application/x-www-form-urlencoded; charset=utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["name"] != "Jane Doe" {
		t.Fatalf("name=%v, want Jane Doe", raw["name"])
	}
	if raw["consent"] != "on" {
		t.Fatalf("consent=%v, want on", raw["consent"])
	}
}

func TestParseBody_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseBody([]byte(`{"name":`), "application/json")
	if !errors.Is(err, ErrMalformedBody) {
		t.Fatalf("error=%v, want ErrMalformedBody", err)
	}
}

func TestParseBody_EmptyBody(t *testing.T) {
	t.Parallel()

	raw, err := ParseBody(nil, "application/json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 0 {
		t.Fatalf("raw=%v, want empty", raw)
	}
}

func TestHoneypotTriggered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  RawInput
		keys []string
		want bool
	}{
		{
			name: "non-empty decoy",
			raw:  RawInput{"hp_extra_info": "http://spam.example"},
			keys: []string{"hp_extra_info"},
			want: true,
		},
		{
			name: "any non-empty value triggers, not just urls",
			raw:  RawInput{"hp": "x"},
			keys: []string{"hp"},
			want: true,
		},
		{
			name: "whitespace only does not trigger",
			raw:  RawInput{"hp": "   "},
			keys: []string{"hp"},
			want: false,
		},
		{
			name: "absent decoy",
			raw:  RawInput{"name": "Jane"},
			keys: []string{"hp"},
			want: false,
		},
		{
			name: "case-insensitive decoy key",
			raw:  RawInput{"HP": "filled"},
			keys: []string{"hp"},
			want: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.raw.HoneypotTriggered(tc.keys); got != tc.want {
				t.Fatalf("HoneypotTriggered=%v, want %v", got, tc.want)
			}
		})
	}
}
