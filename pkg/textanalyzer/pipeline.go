package textanalyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sanonone/lexikit/pkg/metrics"
)

// Pipeline validates input and delegates to a Provider and a Stemmer.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	provider Provider
	stemmer  Stemmer
	logger   *slog.Logger
}

// NewPipeline builds a Pipeline. A nil logger discards output.
func NewPipeline(provider Provider, stemmer Stemmer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		provider: provider,
		stemmer:  stemmer,
		logger:   logger.With("component", "pipeline"),
	}
}

// Analyze runs the provider once over text.
func (p *Pipeline) Analyze(ctx context.Context, text string) (Analysis, error) {
	if _, err := ValidateText(text); err != nil {
		p.logger.Warn("Invalid input: text is empty or not a string")
		return Analysis{}, err
	}

	start := time.Now()
	analysis, err := p.callProvider(ctx, Normalize(text))
	metrics.PipelineDuration.WithLabelValues("analyze").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PipelineErrors.WithLabelValues("analyze").Inc()
		p.logger.Error("Error processing text", "error", err)
		return Analysis{}, &ProcessingError{Op: "processing text", Err: err}
	}

	p.logger.Debug("Text analyzed", "tokens", len(analysis.Tokens), "entities", len(analysis.Entities))
	return analysis, nil
}

func (p *Pipeline) callProvider(ctx context.Context, text string) (a Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return p.provider.Analyze(ctx, text)
}

// Tokenize returns the token strings of text.
func (p *Pipeline) Tokenize(ctx context.Context, text string) ([]string, error) {
	a, err := p.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return a.Texts(), nil
}

// Lemmatize returns one lemma per token.
func (p *Pipeline) Lemmatize(ctx context.Context, text string) ([]string, error) {
	a, err := p.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return a.Lemmas(), nil
}

// POSTag returns (token, tag) pairs.
func (p *Pipeline) POSTag(ctx context.Context, text string) ([]TaggedToken, error) {
	a, err := p.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return a.Tagged(), nil
}

// Entities returns the recognized named entities.
func (p *Pipeline) Entities(ctx context.Context, text string) ([]Entity, error) {
	a, err := p.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return a.Entities, nil
}

// Stems tokenizes text and stems every token.
func (p *Pipeline) Stems(ctx context.Context, text string) ([]string, error) {
	tokens, err := p.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	return p.StemTokens(tokens)
}

// Stem stems a single token.
func (p *Pipeline) Stem(token string) (string, error) {
	stems, err := p.StemTokens([]string{token})
	if err != nil {
		return "", err
	}
	return stems[0], nil
}

// StemTokens stems tokens in order, one call to the stemmer per token.
func (p *Pipeline) StemTokens(tokens []string) (stems []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.PipelineErrors.WithLabelValues("stem").Inc()
			p.logger.Error("Error stemming text", "error", r)
			stems = nil
			err = &ProcessingError{Op: "stemming text", Err: fmt.Errorf("%v", r)}
		}
	}()

	start := time.Now()
	stems = make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = p.stemmer.Stem(tok)
	}
	metrics.PipelineDuration.WithLabelValues("stem").Observe(time.Since(start).Seconds())
	return stems, nil
}
