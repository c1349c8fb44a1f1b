package lexer_test

import (
	"testing"

	"quill/internal/lexer"
)

type wordWant struct {
	text  string
	start uint32
	end   uint32
}

func collectWords(t *testing.T, input string) []lexer.Token {
	t.Helper()
	return lexer.Words(0, input, 0)
}

func TestWordsBasic(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []wordWant
	}{
		{
			name:  "plain words",
			input: "The cat sat.",
			want: []wordWant{
				{"The", 0, 3},
				{"cat", 4, 7},
				{"sat", 8, 11},
			},
		},
		{
			name:  "interior apostrophe kept",
			input: "don't stop",
			want: []wordWant{
				{"don't", 0, 5},
				{"stop", 6, 10},
			},
		},
		{
			name:  "edge apostrophes trimmed",
			input: " 'ello there' ",
			want: []wordWant{
				{"ello", 2, 6},
				{"there", 7, 12},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "punctuation only",
			input: "... !? --",
			want:  nil,
		},
		{
			name:  "digits block adjacent letters",
			input: "abc123 plain",
			want: []wordWant{
				{"plain", 7, 12},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := collectWords(t, tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, w := range tc.want {
				if got[i].Text != w.text {
					t.Errorf("token %d text = %q, want %q", i, got[i].Text, w.text)
				}
				if got[i].Span.Start != w.start || got[i].Span.End != w.end {
					t.Errorf("token %d span = %d-%d, want %d-%d",
						i, got[i].Span.Start, got[i].Span.End, w.start, w.end)
				}
			}
		})
	}
}

func TestWordsLowercaseForm(t *testing.T) {
	got := collectWords(t, "SHE Walks")
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
	if got[0].Lower != "she" || got[1].Lower != "walks" {
		t.Errorf("unexpected lowered forms: %q %q", got[0].Lower, got[1].Lower)
	}
	if got[0].Text != "SHE" {
		t.Errorf("original text must be preserved, got %q", got[0].Text)
	}
}

func TestWordsRebase(t *testing.T) {
	got := lexer.Words(3, "a word", 100)
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
	if got[1].Span.File != 3 {
		t.Errorf("file id not propagated: %d", got[1].Span.File)
	}
	if got[1].Span.Start != 102 || got[1].Span.End != 106 {
		t.Errorf("rebased span = %d-%d, want 102-106", got[1].Span.Start, got[1].Span.End)
	}
}

func TestWordsNonASCIILetters(t *testing.T) {
	// é is a word rune but not an ASCII word byte, so no boundary exists
	// after "caf" and the word is skipped entirely.
	got := collectWords(t, "café au lait")
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(got), got)
	}
	if got[0].Text != "au" || got[1].Text != "lait" {
		t.Errorf("unexpected tokens %q %q", got[0].Text, got[1].Text)
	}
}

func TestCountWordish(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one two three", 3},
		{"don't", 2}, // apostrophe splits \w runs
		{"under_score x9", 2},
		{"a, b; c!", 3},
	}
	for _, tc := range cases {
		if got := lexer.CountWordish(tc.input); got != tc.want {
			t.Errorf("CountWordish(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
