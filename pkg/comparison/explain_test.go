package comparison

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Record{
	{Word: "running", Lemma: "run", Stem: "run", Difference: DifferenceSame},
	{Word: "studied", Lemma: "study", Stem: "studi", Difference: DifferenceDifferent},
}

func TestExplainLayout(t *testing.T) {
	lines := strings.Split(Explain(sample), "\n")

	require.GreaterOrEqual(t, len(lines), 12)
	assert.Equal(t, ReportTitle, lines[0])
	assert.Equal(t, "", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "- **Lemmatization**: "))
	assert.True(t, strings.HasPrefix(lines[3], "- **Stemming**: "))
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "Analysis of Your Input:", lines[5])
	assert.Equal(t, []string{
		"- Word: 'running':",
		"  - Lemma: 'run' (Same)",
		"  - Stem: 'run'",
		"- Word: 'studied':",
		"  - Lemma: 'study' (" + DifferenceDifferent + ")",
		"  - Stem: 'studi'",
	}, lines[6:12])
	assert.Equal(t, "", lines[12])
	assert.Equal(t, "**Lemmatization Details**:", lines[13])
	assert.Equal(t, "- Lemmatization is slower but precise; stemming is faster but cruder.", lines[len(lines)-1])
}

func TestExplainStaticTailIgnoresInput(t *testing.T) {
	tail := func(s string) string {
		return s[strings.Index(s, "**Lemmatization Details**"):]
	}
	assert.Equal(t, tail(Explain(nil)), tail(Explain(sample)))
}

func TestSectionsMatchParsedText(t *testing.T) {
	for _, records := range [][]Record{nil, sample} {
		report := NewReport(records)
		assert.Equal(t, ParseSections(report.String()), report.Sections())
	}
}

func TestSectionsTitles(t *testing.T) {
	var titles []string
	for _, s := range NewReport(sample).Sections() {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Lemmatization vs Stemming Comparison",
		"Lemmatization",
		"Stemming",
		"Analysis of Your Input",
		"Lemmatization Details",
		"Stemming Details",
		"Key Differences",
	}, titles)
}

func TestParseSections(t *testing.T) {
	text := `
stray line before any header
Overview:
- **Speed**: stemming wins
  - nested line

**Notes**:
- plain bullet
- **broken bullet without colon
`
	assert.Equal(t, []Section{
		{Title: "Overview", Content: []string{}},
		{Title: "Speed", Content: []string{"stemming wins", "- nested line"}},
		{Title: "Notes", Content: []string{"- plain bullet", "- **broken bullet without colon"}},
	}, ParseSections(text))

	assert.Empty(t, ParseSections(""))
}

func TestReferenceExplanationSections(t *testing.T) {
	sections := ParseSections(ReferenceExplanation)
	require.Len(t, sections, 4)
	assert.Equal(t, "Lemmatization", sections[1].Title)
	assert.Len(t, sections[1].Content, 6)
	assert.Equal(t, "Key Differences", sections[3].Title)
}
