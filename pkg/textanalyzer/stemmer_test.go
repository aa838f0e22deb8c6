package textanalyzer

import "testing"

func TestStemmers(t *testing.T) {
	testCases := []struct {
		algorithm string
		input     string
		expected  string
	}{
		{StemmerPorter, "running", "run"},
		{StemmerPorter, "runs", "run"},
		{StemmerPorter, "studied", "studi"},
		{StemmerPorter, "studies", "studi"},
		{StemmerPorter, "caresses", "caress"},
		{StemmerPorter, "Running", "run"},
		{StemmerSnowball, "running", "run"},
		{StemmerSnowball, "studied", "studi"},
		{StemmerSnowball, "ponies", "poni"},
		{StemmerPorter2, "running", "run"},
		{StemmerPorter2, "studies", "studi"},
		{StemmerPorter2, "Hopping", "hop"},
	}

	for _, tc := range testCases {
		s, err := NewStemmer(tc.algorithm)
		if err != nil {
			t.Fatalf("NewStemmer(%q): %v", tc.algorithm, err)
		}
		if got := s.Stem(tc.input); got != tc.expected {
			t.Errorf("%s: Stem(%q) = %q, want %q", tc.algorithm, tc.input, got, tc.expected)
		}
	}
}

func TestNewStemmerDefaultsToPorter(t *testing.T) {
	s, err := NewStemmer("")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Stem("studied"); got != "studi" {
		t.Errorf("default stemmer: got %q", got)
	}
}

func TestNewStemmerUnknown(t *testing.T) {
	if _, err := NewStemmer("lancaster"); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
