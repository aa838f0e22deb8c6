package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanonone/lexikit/pkg/comparison"
)

// fakeAPI mimics the server routes the client talks to, including the
// session cookie that carries the last processed text.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	texts := map[string]string{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("POST /api/process", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Text input cannot be empty"}`))
			return
		}
		texts["s1"] = req.Text
		http.SetCookie(w, &http.Cookie{Name: "lexikit_session", Value: "s1", Path: "/"})
		w.Write([]byte(`{"tokens":["geese"],"lemmas":["goose"],"stems":["gees"],` +
			`"pos_tags":[["geese","NOUN"]],"entities":[],` +
			`"lemma_stem_comparison":{"comparison":[{"word":"geese","lemma":"goose","stem":"gees","difference":"Different"}],"explanation":"x"}}`))
	})
	mux.HandleFunc("GET /api/compare", func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("text")
		if text == "" {
			if c, err := r.Cookie("lexikit_session"); err == nil {
				text = texts[c.Value]
			}
		}
		json.NewEncoder(w).Encode(comparison.Result{
			Comparison:  []comparison.Record{{Word: text}},
			Explanation: comparison.ReportTitle,
		})
	})
	mux.HandleFunc("GET /api/reference", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("tagger offline"))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestClientProcess(t *testing.T) {
	ts := fakeAPI(t)
	c := New(ts.URL + "/")
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	res, err := c.Process(ctx, "geese")
	require.NoError(t, err)
	assert.Equal(t, []string{"geese"}, res.Tokens)
	assert.Equal(t, "NOUN", res.POSTags[0].Tag)
	assert.Empty(t, res.Entities)
	require.Len(t, res.LemmaStemComparison.Comparison, 1)
	assert.Equal(t, "goose", res.LemmaStemComparison.Comparison[0].Lemma)
}

func TestClientCompareUsesSession(t *testing.T) {
	ts := fakeAPI(t)
	c := New(ts.URL)
	ctx := context.Background()

	_, err := c.Process(ctx, "the geese flew")
	require.NoError(t, err)

	res, err := c.Compare(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "the geese flew", res.Comparison[0].Word)

	res, err = c.Compare(ctx, "a & b")
	require.NoError(t, err)
	assert.Equal(t, "a & b", res.Comparison[0].Word)
}

func TestClientAPIErrors(t *testing.T) {
	ts := fakeAPI(t)
	c := New(ts.URL)
	ctx := context.Background()

	_, err := c.Process(ctx, "")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Text input cannot be empty", apiErr.Message)

	_, err = c.Reference(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "tagger offline", apiErr.Message)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientConnectionError(t *testing.T) {
	ts := fakeAPI(t)
	c := New(ts.URL)
	ts.Close()

	err := c.Health(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
