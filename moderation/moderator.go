// Package moderation censors forbidden words in chat message content before
// it is persisted or broadcast. Matching runs on a normalized view of the
// text (lowercased, leet speak folded, punctuation stripped) so obfuscated
// spellings are caught, while the replacement preserves the original layout.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"presence-hub/errors"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton over the normalized forms
// of the forbidden words.
func NewModerator(forbiddenWords []string, replacement rune) (Moderator, error) {
	if len(forbiddenWords) == 0 {
		return Moderator{}, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(forbiddenWords))
	for i, word := range forbiddenWords {
		patterns[i] = normalize([]rune(word)).folded
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every hit with the replacement rune and returns the caught
// normalized words. Spacing and untouched characters are preserved.
func (m Moderator) Censor(content string) (string, []string) {
	original := []rune(content)
	view := normalize(original)
	if len(view.folded) == 0 {
		return content, nil
	}

	spans := m.matcher.MultiPatternSearch(view.folded, false)
	if len(spans) == 0 {
		return content, nil
	}

	caught := make([]string, 0, len(spans))
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(view.sourceIdx) {
			continue
		}
		caught = append(caught, string(span.Word))

		// spans index the folded view; map back to the original runes
		for i := view.sourceIdx[start]; i <= view.sourceIdx[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	return string(original), caught
}

// foldedView is the searchable form of a text plus the mapping from every
// folded rune back to its position in the source.
type foldedView struct {
	folded    []rune
	sourceIdx []int
}

func normalize(source []rune) foldedView {
	view := foldedView{
		folded:    make([]rune, 0, len(source)),
		sourceIdx: make([]int, 0, len(source)),
	}
	for i, r := range source {
		r = foldLeet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		view.folded = append(view.folded, unicode.ToLower(r))
		view.sourceIdx = append(view.sourceIdx, i)
	}
	return view
}

// foldLeet maps common leet speak substitutions back to their letters.
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
