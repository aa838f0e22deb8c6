package comparison

import (
	"context"
	"errors"
	"strings"
)

// ReferenceWords covers irregular and regular English morphology.
var ReferenceWords = []string{
	"running", "ran", "runs",
	"studies", "studying",
	"geese", "children",
	"easily", "fairly",
	"better", "best",
	"organization",
}

// ReferenceExplanation is the static text shown with the reference table.
var ReferenceExplanation = strings.Join([]string{
	ReportTitle,
	"",
	"**Lemmatization**:",
	"- Reduces words to their base or dictionary form (lemma) using linguistic rules and context.",
	"- Considers part-of-speech and context, ensuring valid dictionary words.",
	"- Examples: 'running' -> 'run', 'geese' -> 'goose', 'better' -> 'good'.",
	"- Pros: Highly accurate, produces meaningful words, context-aware.",
	"- Cons: Computationally intensive, requires robust linguistic resources.",
	"- Use Cases: Semantic analysis, machine translation, information retrieval.",
	"",
	"**Stemming**:",
	"- Strips suffixes using heuristic rules, often resulting in non-words.",
	"- Faster but less precise, may produce invalid or ambiguous roots.",
	"- Examples: 'running' -> 'run', 'geese' -> 'gees', 'studies' -> 'studi'.",
	"- Pros: Fast, simple, reduces word variations effectively.",
	"- Cons: Less accurate, may lose semantic meaning, context-agnostic.",
	"- Use Cases: Search engines, text indexing, basic text preprocessing.",
	"",
	"**Key Differences**:",
	"- Lemmatization ensures valid words; stemming may not (e.g., 'studies' -> 'studi').",
	"- Lemmatization uses context (e.g., 'better' -> 'good'); stemming is rule-based.",
	"- Lemmatization is slower but more precise; stemming is faster but cruder.",
	"- Lemmatization is better for tasks requiring semantic accuracy; stemming suits quick preprocessing.",
}, "\n")

var errNoTokens = errors.New("no tokens produced")

// CompareReference runs the comparison over ReferenceWords one word at a
// time. A word that fails gets "Error: <message>" as lemma and stem and
// DifferenceError as its difference; the remaining words are still processed.
func (e *Engine) CompareReference(ctx context.Context) Result {
	return e.compareWords(ctx, ReferenceWords)
}

func (e *Engine) compareWords(ctx context.Context, words []string) Result {
	e.logger.Info("Generating static lemmatization vs. stemming comparison")

	records := make([]Record, 0, len(words))
	for _, word := range words {
		rec, err := e.compareWord(ctx, word)
		if err != nil {
			e.logger.Error("Error processing word", "word", word, "error", err)
			msg := "Error: " + err.Error()
			records = append(records, Record{Word: word, Lemma: msg, Stem: msg, Difference: DifferenceError})
			continue
		}
		records = append(records, rec)
	}

	e.logger.Debug("Static comparison", "records", records)
	return Result{Comparison: records, Explanation: ReferenceExplanation}
}

func (e *Engine) compareWord(ctx context.Context, word string) (Record, error) {
	analysis, err := e.analyzer.Analyze(ctx, word)
	if err != nil {
		return Record{}, err
	}
	if len(analysis.Tokens) == 0 {
		return Record{}, errNoTokens
	}
	stems, err := e.analyzer.StemTokens([]string{word})
	if err != nil {
		return Record{}, err
	}
	lemma := analysis.Tokens[0].Lemma
	return Record{
		Word:       word,
		Lemma:      lemma,
		Stem:       stems[0],
		Difference: Classify(lemma, stems[0]),
	}, nil
}
