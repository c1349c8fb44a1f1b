package rules

import (
	"strings"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/lexicon"
	"quill/internal/source"
)

// CheckVerbTense flags a sentence that mixes a past-tense verb and a
// present-tense verb inside one clause. Tokens are classified as present or
// past markers; a subordinate marker between two markers places them in
// different clauses and suppresses the pair. At most one issue is emitted
// per sentence: the first qualifying pair, scanning past markers in the
// outer loop and present markers in the inner loop, both in token order.
// The scan order is deliberate and must stay as is, even though it can pick
// a different pair than a human reader would flag first.
func CheckVerbTense(r diag.Reporter, file *source.File, sentence source.Span, p Params) {
	text := sliceSpan(file, sentence)
	tokens := lexer.Words(file.ID, text, 0)
	if len(tokens) < 2 {
		return
	}

	var presentIdx, pastIdx []int
	for i := range tokens {
		switch {
		case isPresentMarker(tokens, i):
			presentIdx = append(presentIdx, i)
		case isPastMarker(tokens, i):
			pastIdx = append(pastIdx, i)
		}
	}
	if len(presentIdx) == 0 || len(pastIdx) == 0 {
		return
	}

	for _, past := range pastIdx {
		for _, present := range presentIdx {
			if !sameClause(tokens, past, present) {
				continue
			}
			start := min(tokens[past].Span.Start, tokens[present].Span.Start)
			end := max(tokens[past].Span.End, tokens[present].Span.End)
			sp := source.Span{
				File:  file.ID,
				Start: sentence.Start + start,
				End:   sentence.Start + end,
			}
			diag.ReportWarning(r, diag.StyleVerbTense, sp,
				"Sentence mixes past and present tense verbs.").
				WithContext(contextWindow(text, int(start), int(end), p.ContextWindow)).
				Emit()
			return
		}
	}
}

// sameClause reports whether no subordinate marker separates the two token
// indices.
func sameClause(tokens []lexer.Token, a, b int) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo + 1; i < hi; i++ {
		if lexicon.IsSubordinateMarker(tokens[i].Lower) {
			return false
		}
	}
	return true
}

// isPresentMarker decides whether the token at index reads as a
// present-tense verb rather than an infinitive, a noun, or part of another
// construction.
func isPresentMarker(tokens []lexer.Token, index int) bool {
	w := tokens[index].Lower

	if lexicon.IsPresentAuxiliary(w) {
		// Existential "there has/have been" is not a tense signal.
		if w == "has" || w == "have" {
			if prev, ok := previousContentWord(tokens, index, 1); ok && prev.Lower == "there" {
				return false
			}
		}
		return true
	}

	if lexicon.IsPresentSVerb(w) {
		prev, ok := previousContentWord(tokens, index, 1)
		if ok && lexicon.IsPossessiveDeterminer(prev.Lower) {
			// "its works" reads as a noun phrase, not a verb.
			return false
		}
		return !ok || prev.Lower != "to"
	}

	if lexicon.IsPresentBaseVerb(w) {
		prev, ok := previousContentWord(tokens, index, 1)
		if ok && lexicon.IsPronoun(prev.Lower) {
			return true
		}
		if ok && (prev.Lower == "to" || prev.Lower == "does" || prev.Lower == "do") {
			return false
		}
		if ok && (lexicon.IsModal(prev.Lower) || lexicon.IsAuxiliaryMarker(prev.Lower)) {
			return false
		}
		if ok && lexicon.IsArticleOrDemonstrative(prev.Lower) {
			// "this work" may still hide a possessive one step further back
			// ("my ... this work"); look one more content word behind.
			prev, ok = previousContentWord(tokens, index, 2)
			if ok && lexicon.IsPossessiveDeterminer(prev.Lower) {
				return false
			}
		}
		if ok && !lexicon.IsConnector(prev.Lower) && !lexicon.IsPronoun(prev.Lower) {
			// Catch-all for noun-phrase subjects, proper nouns included.
			// A pronoun reaching this point came from the demonstrative
			// lookback and does not mark the verb.
			return true
		}
	}
	return false
}

// isPastMarker decides whether the token at index reads as a finite
// past-tense verb.
func isPastMarker(tokens []lexer.Token, index int) bool {
	w := tokens[index].Lower

	if lexicon.IsPastAuxiliary(w) {
		return true
	}

	if lexicon.IsIrregularPastVerb(w) {
		prev, ok := previousContentWord(tokens, index, 1)
		if w == "found" && ok && prev.Lower == "newly" {
			// "newly found" is adjectival.
			return false
		}
		if ok && lexicon.IsSubordinateMarker(prev.Lower) {
			return false
		}
		return true
	}

	if strings.HasSuffix(w, "ed") && len(w) > 3 && !lexicon.IsEdAdjectiveException(w) {
		if partOfPerfectOrPassive(tokens, index) {
			return false
		}
		prev, ok := previousContentWord(tokens, index, 1)
		if ok && lexicon.IsSubordinateMarker(prev.Lower) {
			return false
		}
		return true
	}

	return false
}

// previousContentWord walks backward from index-1, skipping connectors and
// bare articles, and returns the steps-th remaining token (1-indexed).
func previousContentWord(tokens []lexer.Token, index, steps int) (lexer.Token, bool) {
	taken := 0
	for j := index - 1; j >= 0; j-- {
		w := tokens[j].Lower
		if lexicon.IsConnector(w) || lexicon.IsArticle(w) {
			continue
		}
		taken++
		if taken == steps {
			return tokens[j], true
		}
	}
	return lexer.Token{}, false
}

// partOfPerfectOrPassive reports whether an auxiliary or "to" appears within
// the five preceding tokens (connectors and articles do not count against
// the classification but still use up window slots). Such a verb is a
// participle, not a finite past tense.
func partOfPerfectOrPassive(tokens []lexer.Token, index int) bool {
	for j := index - 1; j >= 0 && j >= index-5; j-- {
		w := tokens[j].Lower
		if lexicon.IsConnector(w) || lexicon.IsArticle(w) {
			continue
		}
		if lexicon.IsAuxiliaryMarker(w) || w == "to" {
			return true
		}
	}
	return false
}
