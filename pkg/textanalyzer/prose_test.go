package textanalyzer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProse(t *testing.T) *ProseProvider {
	t.Helper()
	if testing.Short() {
		t.Skip("loads the tagger and lemma dictionary")
	}
	lemmatizer, err := NewDictionaryLemmatizer()
	require.NoError(t, err)
	provider, err := NewProseProvider(lemmatizer)
	require.NoError(t, err)
	return provider
}

func TestProseProviderAnalyze(t *testing.T) {
	p := newProse(t)

	a, err := p.Analyze(context.Background(), "running runs studied")
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "runs", "studied"}, a.Texts())
	assert.Equal(t, "study", a.Tokens[2].Lemma)
	assert.NotNil(t, a.Entities)
}

func TestProseProviderConcurrentCallsAgree(t *testing.T) {
	p := newProse(t)
	ctx := context.Background()
	const text = "Alice visited Paris and the geese were running better than ever."

	want, err := p.Analyze(ctx, text)
	require.NoError(t, err)
	require.NotEmpty(t, want.Tokens)

	const workers, calls = 8, 20
	results := make(chan Analysis, workers*calls)
	errs := make(chan error, workers*calls)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				a, err := p.Analyze(ctx, text)
				if err != nil {
					errs <- err
					continue
				}
				results <- a
			}
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent analyze failed: %v", err)
	}
	n := 0
	for a := range results {
		assert.Equal(t, want, a)
		n++
	}
	assert.Equal(t, workers*calls, n)
}

func TestProseProviderCancelledContext(t *testing.T) {
	p := newProse(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Analyze(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
