package textanalyzer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	porterstemmer "github.com/reiver/go-porterstemmer"
	"github.com/surgebase/porter2"
)

// Supported stemming algorithms.
const (
	StemmerPorter   = "porter"   // original Porter (1980)
	StemmerSnowball = "snowball" // Snowball English
	StemmerPorter2  = "porter2"  // Porter2, table driven
)

// NewStemmer returns the stemmer for the named algorithm. The empty name
// selects Porter.
func NewStemmer(algorithm string) (Stemmer, error) {
	switch strings.ToLower(algorithm) {
	case "", StemmerPorter:
		return StemmerFunc(stemPorter), nil
	case StemmerSnowball:
		return StemmerFunc(stemSnowball), nil
	case StemmerPorter2:
		return StemmerFunc(stemPorter2), nil
	}
	return nil, fmt.Errorf("unknown stemmer %q (want %s, %s or %s)", algorithm, StemmerPorter, StemmerSnowball, StemmerPorter2)
}

// stemPorter lowercases before stemming; StemString does that internally.
func stemPorter(word string) string {
	if word == "" {
		return word
	}
	return porterstemmer.StemString(word)
}

func stemSnowball(word string) string {
	stemmed, err := snowball.Stem(strings.ToLower(word), "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

func stemPorter2(word string) string {
	return porter2.Stem(strings.ToLower(word))
}
