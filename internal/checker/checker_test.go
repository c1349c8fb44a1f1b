package checker_test

import (
	"reflect"
	"strings"
	"testing"

	"quill/internal/checker"
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/testkit"
)

func check(t *testing.T, text string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.txt", []byte(text))
	file := fs.Get(id)

	bag := checker.New(checker.DefaultOptions()).Check(file)
	if err := testkit.CheckIssueInvariants(bag.Items(), file); err != nil {
		t.Fatalf("invariants violated for %q: %v", text, err)
	}
	return bag.Items()
}

func tags(items []diag.Diagnostic) []string {
	var out []string
	for _, d := range items {
		out = append(out, d.Code.ID())
	}
	return out
}

func hasTag(items []diag.Diagnostic, tag string) bool {
	for _, d := range items {
		if d.Code.ID() == tag {
			return true
		}
	}
	return false
}

func TestCheckEmptyInputs(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t \n"} {
		if got := check(t, text); len(got) != 0 {
			t.Errorf("check(%q) = %v, want empty", text, tags(got))
		}
	}
}

func TestCheckCleanSentence(t *testing.T) {
	if got := check(t, "This sentence is correct."); len(got) != 0 {
		t.Errorf("clean sentence produced %v", tags(got))
	}
}

func TestCheckKnownDefects(t *testing.T) {
	cases := []struct {
		text string
		tag  string
	}{
		{"This is is a mistake.", "repeated-word"},
		{"This is a sentence without punctuation", "punctuation"},
		{"this sentence starts incorrectly.", "capitalization"},
		{"This  sentence has double spaces.", "double-space"},
		{"He walked and walks every day.", "verb-tense"},
	}
	for _, tc := range cases {
		got := check(t, tc.text)
		if !hasTag(got, tc.tag) {
			t.Errorf("check(%q) = %v, want %q present", tc.text, tags(got), tc.tag)
		}
	}
}

func TestCheckRepeatedWordSpan(t *testing.T) {
	got := check(t, "This is is a mistake.")
	for _, d := range got {
		if d.Code == diag.StyleRepeatedWord {
			if d.Primary.Start != 5 || d.Primary.End != 10 {
				t.Errorf("repeated-word span = %d-%d, want 5-10", d.Primary.Start, d.Primary.End)
			}
			return
		}
	}
	t.Fatal("no repeated-word issue found")
}

func TestCheckLongSentenceExactlyOne(t *testing.T) {
	text := strings.Repeat("and ", 45) + "so on."
	var count int
	got := check(t, text)
	for _, d := range got {
		if d.Code == diag.StyleLongSentence {
			count++
			if d.Primary.Start != 0 || d.Primary.End != uint32(len(text)) {
				t.Errorf("long-sentence span = %d-%d, want 0-%d", d.Primary.Start, d.Primary.End, len(text))
			}
		}
	}
	if count != 1 {
		t.Errorf("long-sentence issues = %d, want exactly 1", count)
	}
}

func TestCheckTenseClauseBoundary(t *testing.T) {
	// Subordinate marker between the markers: suppressed.
	if got := check(t, "He was happy because she is here."); hasTag(got, "verb-tense") {
		t.Errorf("cross-clause tense pair flagged: %v", tags(got))
	}
	// Same pair with no marker in between: flagged.
	if got := check(t, "He was happy and she is here."); !hasTag(got, "verb-tense") {
		t.Errorf("same-clause tense pair missed: %v", tags(got))
	}
}

func TestCheckSortedByStart(t *testing.T) {
	// Several defects scattered through the text; the aggregator must order
	// them by start offset regardless of which rule found them.
	text := "bad  start. This is is broken and has no end"
	got := check(t, text)
	if len(got) < 3 {
		t.Fatalf("expected several issues, got %v", tags(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Primary.Start < got[i-1].Primary.Start {
			t.Errorf("issues out of order at %d: %d after %d",
				i, got[i].Primary.Start, got[i-1].Primary.Start)
		}
	}
}

func TestCheckIdempotent(t *testing.T) {
	text := "this text  has has problems and it was bad but is fine"
	first := check(t, text)
	second := check(t, text)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated checks over the same input disagree")
	}
}

func TestCheckDisabledRules(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.txt", []byte("this is is wrong"))
	file := fs.Get(id)

	opts := checker.DefaultOptions()
	opts.Disabled = map[diag.Code]bool{
		diag.StyleCapitalization: true,
		diag.StylePunctuation:    true,
	}
	got := checker.New(opts).Check(file).Items()
	if hasTag(got, "capitalization") || hasTag(got, "punctuation") {
		t.Errorf("disabled rules still fired: %v", tags(got))
	}
	if !hasTag(got, "repeated-word") {
		t.Errorf("enabled rule missing: %v", tags(got))
	}
}

func TestCheckMaxIssuesCap(t *testing.T) {
	opts := checker.DefaultOptions()
	opts.MaxIssues = 2

	fs := source.NewFileSet()
	id := fs.AddVirtual("test.txt", []byte("a  b  c  d  e  f"))
	got := checker.New(opts).Check(fs.Get(id))
	if got.Len() != 2 {
		t.Errorf("Len = %d, want cap of 2", got.Len())
	}
}

func TestCheckTextConvenience(t *testing.T) {
	got := checker.CheckText("No terminal punctuation here")
	if len(got) == 0 {
		t.Fatal("expected at least one issue")
	}
	if got[0].Code.ID() != "punctuation" {
		t.Errorf("unexpected first issue %q", got[0].Code.ID())
	}
}

func TestCheckContextWindow(t *testing.T) {
	text := strings.Repeat("X", 50) + "  " + strings.Repeat("y", 50)
	got := check(t, text)
	if len(got) == 0 {
		t.Fatal("expected a double-space issue")
	}
	d := got[0]
	// ±30 bytes around the two-space run.
	want := strings.Repeat("X", 30) + "  " + strings.Repeat("y", 30)
	if d.Context != want {
		t.Errorf("context = %q, want %q", d.Context, want)
	}
}
