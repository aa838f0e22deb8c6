package mcp

import "github.com/sanonone/lexikit/pkg/comparison"

// --- Tool Arguments ---

type AnalyzeArgs struct {
	Text string `json:"text" jsonschema:"The English text to tokenize, lemmatize, stem, tag and scan for entities"`
}

type CompareArgs struct {
	Text string `json:"text" jsonschema:"The English text whose words are compared"`
}

type ReferenceArgs struct{}

// --- Tool Results ---

type EntityResult struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type TagResult struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

type AnalyzeResult struct {
	Tokens   []string       `json:"tokens"`
	Lemmas   []string       `json:"lemmas"`
	Stems    []string       `json:"stems"`
	POSTags  []TagResult    `json:"pos_tags"`
	Entities []EntityResult `json:"entities"`
}

type CompareResult struct {
	Comparison  []comparison.Record  `json:"comparison"`
	Explanation string               `json:"explanation"`
	Sections    []comparison.Section `json:"sections"`
}
