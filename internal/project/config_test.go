package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"quill/internal/diag"
	"quill/internal/project"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestFindAbsent(t *testing.T) {
	_, ok, err := project.Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if ok {
		t.Error("did not expect a manifest in an empty temp dir")
	}
}

func TestLoadAndApply(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[style]
max_sentence_words = 25
context_window = 10
disabled = ["verb-tense", "long-sentence"]

[output]
format = "json"
color = "off"
`)

	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("format = %q", cfg.Output.Format)
	}

	opts := cfg.CheckerOptions()
	if opts.Params.MaxSentenceWords != 25 {
		t.Errorf("MaxSentenceWords = %d", opts.Params.MaxSentenceWords)
	}
	if opts.Params.ContextWindow != 10 {
		t.Errorf("ContextWindow = %d", opts.Params.ContextWindow)
	}
	if !opts.Disabled[diag.StyleVerbTense] || !opts.Disabled[diag.StyleLongSentence] {
		t.Errorf("disabled set not applied: %+v", opts.Disabled)
	}
	if opts.Disabled[diag.StyleDoubleSpace] {
		t.Error("unlisted rule disabled")
	}
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	opts := cfg.CheckerOptions()
	if opts.Params.MaxSentenceWords != 40 || opts.Params.ContextWindow != 30 {
		t.Errorf("defaults not preserved: %+v", opts.Params)
	}
}

func TestLoadRejectsUnknownTag(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[style]
disabled = ["no-such-rule"]
`)
	if _, err := project.Load(path); err == nil {
		t.Error("expected error for unknown rule tag")
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[output]
format = "xml"
`)
	if _, err := project.Load(path); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[style]\nmax_issues = 5\n")

	m, ok, err := project.Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	if m.Config.Style.MaxIssues != 5 {
		t.Errorf("MaxIssues = %d", m.Config.Style.MaxIssues)
	}
}
