package server

import (
	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

// ProcessRequest is the body of POST /api/process. Text is decoded as any so
// that non-string values can be rejected explicitly.
type ProcessRequest struct {
	Text any `json:"text"`
}

// ProcessResponse bundles every preprocessing result for one text.
type ProcessResponse struct {
	Tokens              []string                   `json:"tokens"`
	Lemmas              []string                   `json:"lemmas"`
	Stems               []string                   `json:"stems"`
	POSTags             []textanalyzer.TaggedToken `json:"pos_tags"`
	Entities            []textanalyzer.Entity      `json:"entities"`
	LemmaStemComparison comparison.Result          `json:"lemma_stem_comparison"`
}

// comparisonPage is the data behind the comparison and reference views.
type comparisonPage struct {
	Title       string
	Text        string
	Reference   bool
	Comparisons []comparison.Record
	Sections    []comparison.Section
}
