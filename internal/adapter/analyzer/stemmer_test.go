package analyzer

import (
	"errors"
	"testing"
)

// Inputs paired with outputs of the reference implementation.
var stemVectors = []struct {
	input    string
	expected string
}{
	// Plurals
	{"caresses", "caress"},
	{"ponies", "poni"},
	{"ties", "ti"},
	{"caress", "caress"},
	{"cats", "cat"},
	{"troubles", "troubl"},

	// -ed and -ing
	{"feed", "feed"},
	{"agreed", "agre"},
	{"plastered", "plaster"},
	{"motoring", "motor"},
	{"sing", "sing"},
	{"conflated", "conflat"},
	{"troubled", "troubl"},
	{"sized", "size"},
	{"hopping", "hop"},
	{"tanned", "tan"},
	{"falling", "fall"},
	{"hissing", "hiss"},
	{"fizzed", "fizz"},
	{"failing", "fail"},
	{"filing", "file"},
	{"processing", "process"},
	{"meeting", "meet"},
	{"running", "run"},

	// Terminal y
	{"happy", "happi"},
	{"sky", "sky"},

	// Double suffixes
	{"relational", "relat"},
	{"conditional", "condit"},
	{"rational", "ration"},
	{"valenci", "valenc"},
	{"hesitanci", "hesit"},
	{"digitizer", "digit"},
	{"generalizations", "gener"},
	{"oscillators", "oscil"},

	// Step 4 truncation
	{"adoption", "adopt"},
	{"connection", "connect"},
	{"connections", "connect"},
	{"connected", "connect"},
	{"connecting", "connect"},
	{"connect", "connect"},
}

func TestStem_Vectors(t *testing.T) {
	p := NewPorterStemmer()

	for _, tt := range stemVectors {
		t.Run(tt.input, func(t *testing.T) {
			got := p.Stem(tt.input)
			if got != tt.expected {
				t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStem_ShortWordsUnchanged(t *testing.T) {
	p := NewPorterStemmer()

	for _, w := range []string{"a", "is", "go", "ox", ""} {
		if got := p.Stem(w); got != w {
			t.Errorf("Stem(%q) = %q, want input unchanged", w, got)
		}
	}
}

func TestStem_InvalidInputPassesThrough(t *testing.T) {
	p := NewPorterStemmer()

	for _, w := range []string{"Running", "don't", "abc123", "naïve"} {
		if got := p.Stem(w); got != w {
			t.Errorf("Stem(%q) = %q, want input unchanged", w, got)
		}
	}
}

func TestStemChecked(t *testing.T) {
	p := NewPorterStemmer()

	got, err := p.StemChecked("running")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "run" {
		t.Errorf("StemChecked(%q) = %q, want %q", "running", got, "run")
	}

	if _, err := p.StemChecked("Running"); !errors.Is(err, ErrNotLowercaseASCII) {
		t.Errorf("expected ErrNotLowercaseASCII, got %v", err)
	}
}

// Stemming a stem is a no-op for words whose stem is a fixed point of the
// algorithm. Not every output qualifies (the algorithm itself maps agre to
// agr), so the corpus here sticks to stems that are stable.
func TestStem_Idempotence(t *testing.T) {
	p := NewPorterStemmer()

	words := []string{
		"caresses", "ponies", "cats", "processing", "meeting", "running",
		"relational", "conditional", "connection", "plastered", "motoring",
		"failing", "filing", "happy", "generalizations", "hopping",
		"falling", "adoption", "rational",
	}
	for _, w := range words {
		once := p.Stem(w)
		twice := p.Stem(once)
		if once != twice {
			t.Errorf("Stem not idempotent for %q: %q -> %q", w, once, twice)
		}
	}
}

func TestStem_NeverLengthens(t *testing.T) {
	p := NewPorterStemmer()

	for _, tt := range stemVectors {
		if got := p.Stem(tt.input); len(got) > len(tt.input) {
			t.Errorf("Stem(%q) = %q is longer than its input", tt.input, got)
		}
	}
}

func TestStem_Deterministic(t *testing.T) {
	p := NewPorterStemmer()

	first := p.Stem("generalizations")
	for i := 0; i < 100; i++ {
		if got := p.Stem("generalizations"); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
}

// Step 4 only truncates when the residual stem has measure greater than one:
// vital (measure 1 before -al) must pass through, adoption (measure 2 before
// -ion) must not.
func TestStem_Step4MeasureGate(t *testing.T) {
	p := NewPorterStemmer()

	if got := p.Stem("vital"); got != "vital" {
		t.Errorf("Stem(%q) = %q, want unchanged (measure gate)", "vital", got)
	}
	if got := p.Stem("adoption"); got != "adopt" {
		t.Errorf("Stem(%q) = %q, want %q", "adoption", got, "adopt")
	}
}

func TestStem_Variants(t *testing.T) {
	standard := NewPorterStemmerVariant(VariantStandard)
	paper := NewPorterStemmerVariant(VariantPaper)

	tests := []struct {
		input        string
		wantStandard string
		wantPaper    string
	}{
		// bli->ble departure vs abli->able
		{"possibli", "possibl", "possibli"},
		// logi->log departure is absent from the paper
		{"analogies", "analog", "analogi"},
		// words untouched by the departing rules agree
		{"connection", "connect", "connect"},
		{"caresses", "caress", "caress"},
	}
	for _, tt := range tests {
		if got := standard.Stem(tt.input); got != tt.wantStandard {
			t.Errorf("standard Stem(%q) = %q, want %q", tt.input, got, tt.wantStandard)
		}
		if got := paper.Stem(tt.input); got != tt.wantPaper {
			t.Errorf("paper Stem(%q) = %q, want %q", tt.input, got, tt.wantPaper)
		}
	}
}

func TestParseVariant(t *testing.T) {
	if v, err := ParseVariant(""); err != nil || v != VariantStandard {
		t.Errorf("ParseVariant(\"\") = %v, %v, want VariantStandard", v, err)
	}
	if v, err := ParseVariant("paper"); err != nil || v != VariantPaper {
		t.Errorf("ParseVariant(\"paper\") = %v, %v, want VariantPaper", v, err)
	}
	if _, err := ParseVariant("snowball"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
