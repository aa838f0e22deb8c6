package comparison

import (
	"fmt"
	"strings"
)

// ReportTitle is the first line of every explanation.
const ReportTitle = "Lemmatization vs Stemming Comparison:"

// NoWordsLine replaces the per-word analysis when nothing was comparable.
const NoWordsLine = "- No valid alphabetic words found in the input to compare."

const analysisHeader = "Analysis of Your Input:"

// Section is a titled block of the explanation, ready for rendering.
type Section struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

type block struct {
	title string
	lines []string
}

// Definitions rendered as "- **Label**: text" bullets.
var overview = []block{
	{"Lemmatization", []string{"Reduces words to their base dictionary form (lemma) using linguistic rules and context."}},
	{"Stemming", []string{"Strips suffixes using heuristic rules, often producing non-words."}},
}

// Static subsections rendered as "**Title**:" followed by their lines.
var details = []block{
	{"Lemmatization Details", []string{
		"- Considers part-of-speech and context, ensuring valid dictionary words (e.g., 'running' → 'run', 'better' → 'good').",
		"- Pros: Accurate, meaningful words, context-aware.",
		"- Cons: Slower, requires robust linguistic resources.",
		"- Use Cases: Semantic analysis, machine translation.",
	}},
	{"Stemming Details", []string{
		"- Faster but less precise, may produce invalid roots (e.g., 'studies' → 'studi', 'geese' → 'gees').",
		"- Pros: Fast, simple, effective for reducing variations.",
		"- Cons: Less accurate, context-agnostic.",
		"- Use Cases: Search engines, text indexing.",
	}},
	{"Key Differences", []string{
		"- Lemmatization ensures valid words; stemming may not.",
		"- Lemmatization is context-aware; stemming is rule-based.",
		"- Lemmatization is slower but precise; stemming is faster but cruder.",
	}},
}

// Report is the explanation for a set of comparison records. It renders
// either as plain text (String) or as structured sections (Sections).
type Report struct {
	Records []Record
}

// NewReport wraps records in a Report.
func NewReport(records []Record) Report {
	return Report{Records: records}
}

// Explain renders the plain-text explanation for records.
func Explain(records []Record) string {
	return NewReport(records).String()
}

func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Lines returns the explanation one line at a time.
func (r Report) Lines() []string {
	lines := []string{ReportTitle, ""}
	for _, b := range overview {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", b.title, b.lines[0]))
	}
	lines = append(lines, "", analysisHeader)
	lines = append(lines, r.analysis()...)
	for _, b := range details {
		lines = append(lines, "", "**"+b.title+"**:")
		lines = append(lines, b.lines...)
	}
	return lines
}

func (r Report) analysis() []string {
	if len(r.Records) == 0 {
		return []string{NoWordsLine}
	}
	out := make([]string, 0, 3*len(r.Records))
	for _, rec := range r.Records {
		out = append(out,
			fmt.Sprintf("- Word: '%s':", rec.Word),
			fmt.Sprintf("  - Lemma: '%s' (%s)", rec.Lemma, rec.Difference),
			fmt.Sprintf("  - Stem: '%s'", rec.Stem),
		)
	}
	return out
}

// Sections builds the titled sections directly from the records, without
// going through the text form. The result matches ParseSections(r.String()).
func (r Report) Sections() []Section {
	sections := []Section{{Title: headerTitle(ReportTitle), Content: []string{}}}
	for _, b := range overview {
		sections = append(sections, Section{Title: b.title, Content: []string{b.lines[0]}})
	}

	analysis := r.analysis()
	content := make([]string, len(analysis))
	for i, l := range analysis {
		content[i] = strings.TrimSpace(l)
	}
	sections = append(sections, Section{Title: headerTitle(analysisHeader), Content: content})

	for _, b := range details {
		sections = append(sections, Section{Title: b.title, Content: append([]string(nil), b.lines...)})
	}
	return sections
}
