package diag

import (
	"fmt"
)

// Code identifies which check produced an issue.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Style rules (1000-1999).
	StyleDoubleSpace    Code = 1001
	StyleCapitalization Code = 1002
	StylePunctuation    Code = 1003
	StyleRepeatedWord   Code = 1004
	StyleLongSentence   Code = 1005
	StyleVerbTense      Code = 1006

	// IO failures surfaced by the CLI layer (4000-4999).
	IOReadFailed Code = 4001
)

// StyleCodes lists every style rule in pipeline order.
var StyleCodes = []Code{
	StyleDoubleSpace,
	StyleCapitalization,
	StylePunctuation,
	StyleRepeatedWord,
	StyleLongSentence,
	StyleVerbTense,
}

var codeTag = map[Code]string{
	StyleDoubleSpace:    "double-space",
	StyleCapitalization: "capitalization",
	StylePunctuation:    "punctuation",
	StyleRepeatedWord:   "repeated-word",
	StyleLongSentence:   "long-sentence",
	StyleVerbTense:      "verb-tense",
}

var tagCode = func() map[string]Code {
	m := make(map[string]Code, len(codeTag))
	for c, tag := range codeTag {
		m[tag] = c
	}
	return m
}()

var codeDescription = map[Code]string{
	UnknownCode:         "unknown issue",
	StyleDoubleSpace:    "multiple consecutive spaces",
	StyleCapitalization: "sentence does not start with a capital letter",
	StylePunctuation:    "sentence lacks terminal punctuation",
	StyleRepeatedWord:   "the same word repeated back to back",
	StyleLongSentence:   "sentence long enough to be a run-on",
	StyleVerbTense:      "past and present tense mixed in one clause",
	IOReadFailed:        "input could not be read",
}

// ID returns the stable symbolic tag for the code.
func (c Code) ID() string {
	if tag, ok := codeTag[c]; ok {
		return tag
	}
	switch ic := int(c); {
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns a short description of what the code means.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// CodeForTag resolves a symbolic tag like "verb-tense" back to its code.
func CodeForTag(tag string) (Code, bool) {
	c, ok := tagCode[tag]
	return c, ok
}
