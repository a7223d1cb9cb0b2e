package lang

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fr", "français"},
		{"French", "français"},
		{"de", "Deutsch"},
		{"pt", "português"},
		{"en", "English"},
		{"English", "English"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Label(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fr", "fr"},
		{"French", "fr"},
		{"pt-BR", "pt"},
		{"German", "de"},
		{"UK", "uk"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Code(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Code(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	if _, err := Resolve("klingon language"); err == nil {
		t.Error("expected error for unknown language")
	}
	if _, err := Resolve(""); err == nil {
		t.Error("expected error for empty input")
	}
}
