package llmjson

import (
	"errors"
	"testing"
)

func TestObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare", input: `{"score": 80}`, want: `{"score": 80}`},
		{name: "prose around", input: "Here you go:\n{\"score\": 80}\nThanks", want: `{"score": 80}`},
		{name: "fenced", input: "```json\n{\"a\": {\"b\": 1}}\n```", want: `{"a": {"b": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Object(tt.input)
			if err != nil {
				t.Fatalf("Object(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Object(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestArray_Fenced(t *testing.T) {
	t.Parallel()

	var prompts []string
	if err := Decode("```json\n[\"one\", \"two\"]\n```", true, &prompts); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if len(prompts) != 2 || prompts[1] != "two" {
		t.Errorf("Decode = %v, want [one two]", prompts)
	}
}

func TestObject_Missing(t *testing.T) {
	t.Parallel()

	if _, err := Object("no json here"); !errors.Is(err, ErrNoJSON) {
		t.Errorf("Object: got %v, want ErrNoJSON", err)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	var v struct{ Score int }
	err := Decode(`{"score": "high"}`, false, &v)
	if err == nil || errors.Is(err, ErrNoJSON) {
		t.Errorf("Decode: got %v, want a decode error", err)
	}
}
