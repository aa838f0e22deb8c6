package textanalyzer

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateText(t *testing.T) {
	rejected := []any{"", "   ", "\n\t ", nil, 42, []string{"run"}, map[string]any{"text": "x"}}
	for _, v := range rejected {
		_, err := ValidateText(v)
		assert.ErrorIs(t, err, ErrInvalidInput, "value %#v", v)
	}

	accepted := []string{"a", " running ", "123 !!!", "Run run RUN"}
	for _, s := range accepted {
		got, err := ValidateText(s)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestIsAlpha(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"hello", true},
		{"Run", true},
		{"café", true},
		{"", false},
		{"123", false},
		{",", false},
		{"don't", false},
		{"state-of-the-art", false},
		{"abc1", false},
		{" ", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, IsAlpha(tc.input), "IsAlpha(%q)", tc.input)
	}
}

func TestNormalizeComposesAccents(t *testing.T) {
	decomposed := "cafe\u0301"
	assert.Equal(t, "caf\u00e9", Normalize(decomposed))
	assert.True(t, IsAlpha(Normalize(decomposed)))
}

func TestNormalizeDropsInvalidUTF8(t *testing.T) {
	assert.Equal(t, "", Normalize("\xff\xfe"))
	assert.Equal(t, "cafe", Normalize("ca\xfffe"))
	assert.True(t, utf8.ValidString(Normalize("a\x80b\u0301")))
}

func TestProcessingErrorUnwraps(t *testing.T) {
	cause := errors.New("model exploded")
	err := error(&ProcessingError{Op: "processing text", Err: cause})

	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "model exploded")
}
