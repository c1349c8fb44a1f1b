package diag_test

import (
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBagAddAndCap(t *testing.T) {
	b := diag.NewBag(2)

	if !b.Add(diag.NewWarning(diag.StyleDoubleSpace, span(0, 2), "one")) {
		t.Error("first Add should succeed")
	}
	if !b.Add(diag.NewWarning(diag.StylePunctuation, span(5, 6), "two")) {
		t.Error("second Add should succeed")
	}
	if b.Add(diag.NewWarning(diag.StyleVerbTense, span(8, 9), "three")) {
		t.Error("Add past the cap should be rejected")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagSortStable(t *testing.T) {
	b := diag.NewBag(10)
	// Same start offset: insertion order must survive the sort.
	b.Add(diag.NewWarning(diag.StyleCapitalization, span(4, 5), "first in"))
	b.Add(diag.NewWarning(diag.StyleVerbTense, span(4, 9), "second in"))
	b.Add(diag.NewWarning(diag.StyleDoubleSpace, span(0, 2), "earliest"))

	b.Sort()

	items := b.Items()
	if items[0].Message != "earliest" {
		t.Errorf("expected earliest span first, got %q", items[0].Message)
	}
	if items[1].Message != "first in" || items[2].Message != "second in" {
		t.Errorf("tie order broken: %q then %q", items[1].Message, items[2].Message)
	}
}

func TestBagSortByFileThenStart(t *testing.T) {
	b := diag.NewBag(10)
	b.Add(diag.NewWarning(diag.StylePunctuation, source.Span{File: 1, Start: 0, End: 1}, "file1"))
	b.Add(diag.NewWarning(diag.StylePunctuation, source.Span{File: 0, Start: 9, End: 10}, "file0"))

	b.Sort()

	if b.Items()[0].Message != "file0" {
		t.Errorf("expected file 0 first, got %q", b.Items()[0].Message)
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewWarning(diag.StyleDoubleSpace, span(0, 2), "a"))

	other := diag.NewBag(2)
	other.Add(diag.NewWarning(diag.StylePunctuation, span(3, 4), "b"))
	other.Add(diag.NewWarning(diag.StyleVerbTense, span(5, 6), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len after merge = %d, want 3", a.Len())
	}
}

func TestBagDedup(t *testing.T) {
	b := diag.NewBag(10)
	d := diag.NewWarning(diag.StyleRepeatedWord, span(2, 7), "dup")
	b.Add(d)
	b.Add(d)
	b.Add(diag.NewWarning(diag.StyleRepeatedWord, span(9, 12), "other"))

	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len after dedup = %d, want 2", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := diag.NewBag(10)
	if b.HasWarnings() || b.HasErrors() {
		t.Error("empty bag must report no findings")
	}
	b.Add(diag.NewWarning(diag.StyleLongSentence, span(0, 40), "w"))
	if !b.HasWarnings() {
		t.Error("expected warnings after adding one")
	}
	if b.HasErrors() {
		t.Error("warnings must not count as errors")
	}
	b.Add(diag.NewError(diag.IOReadFailed, span(0, 0), "boom"))
	if !b.HasErrors() {
		t.Error("expected errors after adding one")
	}
}

func TestCodeTags(t *testing.T) {
	cases := map[diag.Code]string{
		diag.StyleDoubleSpace:    "double-space",
		diag.StyleCapitalization: "capitalization",
		diag.StylePunctuation:    "punctuation",
		diag.StyleRepeatedWord:   "repeated-word",
		diag.StyleLongSentence:   "long-sentence",
		diag.StyleVerbTense:      "verb-tense",
	}
	for code, tag := range cases {
		if code.ID() != tag {
			t.Errorf("%d.ID() = %q, want %q", code, code.ID(), tag)
		}
		back, ok := diag.CodeForTag(tag)
		if !ok || back != code {
			t.Errorf("CodeForTag(%q) = %d, %v", tag, back, ok)
		}
	}
	if diag.IOReadFailed.ID() != "IO4001" {
		t.Errorf("IOReadFailed.ID() = %q", diag.IOReadFailed.ID())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}

	rb := diag.ReportWarning(r, diag.StyleVerbTense, span(1, 5), "mixed tenses").
		WithContext("he walked and walks")
	rb.Emit()
	rb.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected exactly one emission, got %d", bag.Len())
	}
	got := bag.Items()[0]
	if got.Context != "he walked and walks" {
		t.Errorf("context not carried: %q", got.Context)
	}
}
