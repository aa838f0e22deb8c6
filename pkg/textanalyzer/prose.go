package textanalyzer

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseProvider is the default Provider: the prose tokenizer, averaged
// perceptron POS tagger and NER model, with lemmas from a Lemmatizer.
// None of its components are randomized, so results are reproducible.
//
// The tagging and NER model is loaded once and shared by every call; it is
// only read during analysis, so one provider serves concurrent requests.
type ProseProvider struct {
	model      *prose.Model
	lemmatizer Lemmatizer
}

// NewProseProvider loads the prose model and builds a provider around the
// given lemmatizer.
func NewProseProvider(lemmatizer Lemmatizer) (*ProseProvider, error) {
	warmup, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}
	return &ProseProvider{model: warmup.Model, lemmatizer: lemmatizer}, nil
}

// Analyze implements Provider. Sentence segmentation is skipped: only
// tokens and entities are used.
func (p *ProseProvider) Analyze(ctx context.Context, text string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	doc, err := prose.NewDocument(text,
		prose.UsingModel(p.model),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return Analysis{}, err
	}

	toks := doc.Tokens()
	out := Analysis{
		Tokens:   make([]Token, 0, len(toks)),
		Entities: []Entity{},
	}
	for _, t := range toks {
		out.Tokens = append(out.Tokens, Token{
			Text:  t.Text,
			Tag:   t.Tag,
			Lemma: p.lemmatizer.Lemma(t.Text, t.Tag),
		})
	}
	for _, e := range doc.Entities() {
		out.Entities = append(out.Entities, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
