// Package textanalyzer wraps the external NLP capabilities (tagging pipeline,
// lemmatizer, stemmer) behind small interfaces and exposes their typed results.
//
// The package does not interpret linguistic structure itself. Any Provider or
// Stemmer implementation can be plugged into a Pipeline, which lets tests run
// against deterministic doubles.
package textanalyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode"
)

// Token is a single unit of the input as segmented by the Provider.
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	Tag   string `json:"tag"` // Penn Treebank
}

// IsAlpha reports whether the token text is made only of letters.
func (t Token) IsAlpha() bool {
	return IsAlpha(t.Text)
}

// Entity is a named-entity span with its label (PERSON, GPE, ...).
type Entity struct {
	Text  string
	Label string
}

// TaggedToken pairs a token with its universal part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Analysis is everything a Provider returns for one text.
type Analysis struct {
	Tokens   []Token
	Entities []Entity
}

// Texts returns the token strings in order.
func (a Analysis) Texts() []string {
	out := make([]string, len(a.Tokens))
	for i, t := range a.Tokens {
		out[i] = t.Text
	}
	return out
}

// Lemmas returns the lemma of every token, aligned with Texts.
func (a Analysis) Lemmas() []string {
	out := make([]string, len(a.Tokens))
	for i, t := range a.Tokens {
		out[i] = t.Lemma
	}
	return out
}

// Tagged returns (token, universal POS tag) pairs aligned with Texts.
// Token.Tag keeps the fine-grained Penn tag.
func (a Analysis) Tagged() []TaggedToken {
	out := make([]TaggedToken, len(a.Tokens))
	for i, t := range a.Tokens {
		out[i] = TaggedToken{Text: t.Text, Tag: UniversalTag(t.Tag)}
	}
	return out
}

// Provider is the black-box linguistic pipeline: tokenization, lemmatization,
// POS tagging and entity recognition in one pass.
type Provider interface {
	Analyze(ctx context.Context, text string) (Analysis, error)
}

// Stemmer reduces a single token to its rule-based stem.
type Stemmer interface {
	Stem(word string) string
}

// StemmerFunc adapts a plain function to the Stemmer interface.
type StemmerFunc func(word string) string

func (f StemmerFunc) Stem(word string) string { return f(word) }

// IsAlpha reports whether s is non-empty and every rune is a letter.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Pairs are serialized as two-element arrays, e.g. ["Paris", "GPE"].

func (t TaggedToken) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Text, t.Tag})
}

func (t *TaggedToken) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("tagged token: %w", err)
	}
	t.Text, t.Tag = pair[0], pair[1]
	return nil
}

func (e Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Text, e.Label})
}

func (e *Entity) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("entity: %w", err)
	}
	e.Text, e.Label = pair[0], pair[1]
	return nil
}
