package codegen

import "testing"

func TestStartName(t *testing.T) {
	tests := []struct {
		matcher string
		want    string
	}{
		{"Ident", "identStart"},
		{"number", "numberStart"},
		{"X", "xStart"},
		{"_tok", "_tokStart"},
		{"Élan", "élanStart"},
	}

	for _, tt := range tests {
		got := StartName(tt.matcher)
		if got != tt.want {
			t.Errorf("StartName(%q) = %q, want %q", tt.matcher, got, tt.want)
		}
	}
}

func TestCompiledName(t *testing.T) {
	tests := map[string]string{
		"ident": "CompiledIdent",
		"_tok":  "Compiled_tok",
		"élan":  "CompiledÉlan",
	}
	for matcher, want := range tests {
		if got := CompiledName(matcher); got != want {
			t.Errorf("CompiledName(%q) = %q, want %q", matcher, got, want)
		}
	}
}

func TestStateComment(t *testing.T) {
	tests := []struct {
		id    int
		final bool
		want  string
	}{
		{0, false, "state 0"},
		{3, true, "state 3 (final)"},
	}

	for _, tt := range tests {
		got := StateComment(tt.id, tt.final)
		if got != tt.want {
			t.Errorf("StateComment(%d, %v) = %q, want %q", tt.id, tt.final, got, tt.want)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"X", "x"},
		{"_Tok", "_Tok"},
		{"1a", "1a"},
		{"Élan", "élan"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"x", "X"},
		{"_tok", "_tok"},
		{"élan", "Élan"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
