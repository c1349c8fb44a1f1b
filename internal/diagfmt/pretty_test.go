package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("notes/draft.txt", []byte("he  walked home. It was fine.\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(
		diag.StyleDoubleSpace,
		source.Span{File: fileID, Start: 2, End: 4},
		"Avoid double spaces.",
	).WithContext("he  walked home. It was f"))
	bag.Add(diag.NewWarning(
		diag.StyleCapitalization,
		source.Span{File: fileID, Start: 0, End: 1},
		"Sentence should start with a capital letter.",
	))
	bag.Sort()
	return bag, fs
}

func TestPrettyHeaderFormat(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	want := "notes/draft.txt:1:1: WARNING capitalization: Sentence should start with a capital letter."
	if lines[0] != want {
		t.Errorf("first line:\n got %q\nwant %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "double-space: Avoid double spaces.") {
		t.Errorf("second line %q lacks double-space issue", lines[1])
	}
}

func TestPrettySourceUnderline(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})

	out := buf.String()
	if !strings.Contains(out, "    he  walked home. It was fine.") {
		t.Errorf("missing source line in output:\n%s", out)
	}
	// the double-space span covers bytes 2-4 of line 1
	if !strings.Contains(out, "      ^~") {
		t.Errorf("missing caret underline in output:\n%s", out)
	}
}

func TestPrettyContext(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowContext: true})

	if !strings.Contains(buf.String(), "context: he  walked home. It was f") {
		t.Errorf("context snippet not printed:\n%s", buf.String())
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/docs/intro.txt", []byte("hello.\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(
		diag.StyleCapitalization,
		source.Span{File: fileID, Start: 0, End: 1},
		"Sentence should start with a capital letter.",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/docs/intro.txt"},
		{"relative", PathModeRelative, "docs/intro.txt:"},
		{"basename", PathModeBasename, "intro.txt:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("mode %v: output %q lacks %q", tt.mode, buf.String(), tt.contains)
			}
		})
	}
}
