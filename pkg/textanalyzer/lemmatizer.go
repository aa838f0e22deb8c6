package textanalyzer

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer maps a token to its dictionary base form, given its Penn
// Treebank tag.
type Lemmatizer interface {
	Lemma(word, tag string) string
}

// DictionaryLemmatizer looks words up in the golem English dictionary and
// uses the POS tag to choose between candidate base forms.
type DictionaryLemmatizer struct {
	dict *golem.Lemmatizer
}

// NewDictionaryLemmatizer loads the embedded English dictionary.
func NewDictionaryLemmatizer() (*DictionaryLemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load English lemma dictionary: %w", err)
	}
	return &DictionaryLemmatizer{dict: dict}, nil
}

// inflected tags mark forms that never are their own lemma.
var inflected = map[string]struct{}{
	"VBD": {}, "VBG": {}, "VBN": {}, "VBZ": {},
	"NNS": {}, "JJR": {}, "JJS": {}, "RBR": {}, "RBS": {},
}

// Lemma returns the base form of word. Proper nouns are kept as written,
// everything else is lowercased.
func (l *DictionaryLemmatizer) Lemma(word, tag string) string {
	if tag == "NNP" || tag == "NNPS" {
		return word
	}
	lower := strings.ToLower(word)
	if !IsAlpha(lower) {
		return lower
	}

	candidates := l.dict.Lemmas(lower)
	if len(candidates) == 0 {
		return lower
	}

	if _, ok := inflected[tag]; ok {
		for _, c := range candidates {
			if c != lower {
				return c
			}
		}
		return candidates[0]
	}

	// Base tags (NN, VB, JJ, ...) keep the word when it is a lemma itself.
	for _, c := range candidates {
		if c == lower {
			return c
		}
	}
	return candidates[0]
}
