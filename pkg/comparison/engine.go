// Package comparison builds the word-by-word lemma vs. stem table and the
// explanation report shown next to it.
package comparison

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/sanonone/lexikit/pkg/metrics"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

// Difference classifications.
const (
	DifferenceSame      = "Same"
	DifferenceDifferent = "Different: Lemma uses context and part-of-speech; stem uses rule-based suffix stripping"

	// DifferenceError marks reference rows whose word could not be processed.
	DifferenceError = "Error"
)

// Record is one row of the comparison table.
type Record struct {
	Word       string `json:"word"`
	Lemma      string `json:"lemma"`
	Stem       string `json:"stem"`
	Difference string `json:"difference,omitempty"`
}

// Result is the response for one input text.
type Result struct {
	Comparison  []Record `json:"comparison"`
	Explanation string   `json:"explanation"`
}

// Analyzer is what the Engine needs from the linguistic pipeline.
// *textanalyzer.Pipeline satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (textanalyzer.Analysis, error)
	StemTokens(tokens []string) ([]string, error)
}

// Engine compares lemmatization with stemming for arbitrary text.
type Engine struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewEngine returns an Engine. A nil logger discards output.
func NewEngine(analyzer Analyzer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{analyzer: analyzer, logger: logger.With("component", "comparison")}
}

// Compare analyzes text once and returns the comparison table plus its
// explanation. Validation and pipeline errors are returned unchanged.
func (e *Engine) Compare(ctx context.Context, text string) (Result, error) {
	e.logger.Info("Generating real-time lemma vs. stem comparison")

	analysis, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		return Result{}, err
	}
	stems, err := e.analyzer.StemTokens(analysis.Texts())
	if err != nil {
		return Result{}, err
	}

	return e.CompareAnalysis(analysis, stems), nil
}

// CompareAnalysis builds the result from an analysis already produced by the
// pipeline, with stems aligned to its tokens.
func (e *Engine) CompareAnalysis(analysis textanalyzer.Analysis, stems []string) Result {
	records := Build(analysis.Texts(), analysis.Lemmas(), stems)
	for _, r := range records {
		if r.Difference == DifferenceSame {
			metrics.ComparisonRecords.WithLabelValues("same").Inc()
		} else {
			metrics.ComparisonRecords.WithLabelValues("different").Inc()
		}
	}
	e.logger.Debug("Real-time comparison", "records", records)

	return Result{Comparison: records, Explanation: Explain(records)}
}

// Build walks aligned token, lemma and stem slices and keeps the first
// occurrence of every alphabetic word, compared case-insensitively.
// Extra elements in a longer slice are ignored. The result is never nil.
func Build(tokens, lemmas, stems []string) []Record {
	n := min(len(tokens), len(lemmas), len(stems))
	records := make([]Record, 0, n)
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		tok := tokens[i]
		if !textanalyzer.IsAlpha(tok) {
			continue
		}
		key := strings.ToLower(tok)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, Record{
			Word:       tok,
			Lemma:      lemmas[i],
			Stem:       stems[i],
			Difference: Classify(lemmas[i], stems[i]),
		})
	}
	return records
}

// Classify returns DifferenceSame when lemma and stem match ignoring case.
func Classify(lemma, stem string) string {
	if strings.ToLower(lemma) == strings.ToLower(stem) {
		return DifferenceSame
	}
	return DifferenceDifferent
}
