package comparison

import "strings"

// ParseSections splits a plain-text explanation into titled sections.
//
// Blank lines are skipped. A line "- **Label**: text" opens section Label
// with text as its first entry. A non-bullet line ending in ':' (the title,
// "Analysis of Your Input:", "**Key Differences**:") opens a section with no
// entries. Any other line is appended to the open section; lines before the
// first header are dropped.
func ParseSections(text string) []Section {
	var sections []Section
	for _, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if title, body, ok := boldBullet(line); ok {
			sections = append(sections, Section{Title: title, Content: []string{body}})
			continue
		}
		if !strings.HasPrefix(line, "- ") && strings.HasSuffix(line, ":") {
			sections = append(sections, Section{Title: headerTitle(line), Content: []string{}})
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].Content = append(sections[n-1].Content, line)
		}
	}
	return sections
}

func boldBullet(line string) (title, body string, ok bool) {
	if !strings.HasPrefix(line, "- **") {
		return "", "", false
	}
	head, body, found := strings.Cut(line[len("- **"):], "**: ")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(head), body, true
}

// headerTitle strips the bold markers and trailing colon from a header line.
func headerTitle(line string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSuffix(line, ":"), "*"))
}
