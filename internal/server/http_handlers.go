package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sanonone/lexikit/internal/server/ui"
	"github.com/sanonone/lexikit/internal/session"
	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

// maxBodyBytes caps POST bodies on the REST API.
const maxBodyBytes = 1 << 20

// registerHTTPHandlers sets up the routes for the REST API and the HTML views.
func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	// Unqualified so it does not conflict with the /mcp mount.
	mux.Handle("/", ui.GetHandler())

	mux.HandleFunc("POST /api/process", s.handleProcess)
	mux.HandleFunc("GET /api/compare", s.handleCompareAPI)
	mux.HandleFunc("GET /api/reference", s.handleReferenceAPI)

	mux.HandleFunc("GET /comparison", s.handleComparisonPage)
	mux.HandleFunc("GET /reference", s.handleReferencePage)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- REST API ---

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("Received API request to process text")

	var req ProcessRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "Invalid JSON, expected an object with the key 'text'")
		return
	}

	text, err := textanalyzer.ValidateText(req.Text)
	if err != nil {
		s.logger.Warn("Empty input text received", "type", typeName(req.Text))
		msg := "Text input cannot be empty"
		if _, isString := req.Text.(string); !isString && req.Text != nil {
			msg = "Text input must be a string"
		}
		s.writeHTTPError(w, http.StatusBadRequest, msg)
		return
	}
	s.logger.Debug("Input text", "text", text)

	s.rememberText(w, r, text)

	analysis, err := s.pipeline.Analyze(r.Context(), text)
	if err != nil {
		s.writeProcessingError(w, err)
		return
	}
	tokens := analysis.Texts()
	stems, err := s.pipeline.StemTokens(tokens)
	if err != nil {
		s.writeProcessingError(w, err)
		return
	}

	resp := ProcessResponse{
		Tokens:              tokens,
		Lemmas:              analysis.Lemmas(),
		Stems:               stems,
		POSTags:             analysis.Tagged(),
		Entities:            analysis.Entities,
		LemmaStemComparison: s.engine.CompareAnalysis(analysis, stems),
	}
	if resp.Entities == nil {
		resp.Entities = []textanalyzer.Entity{}
	}

	s.logger.Info("Successfully processed text")
	s.writeHTTPResponse(w, http.StatusOK, resp)
}

func (s *Server) handleCompareAPI(w http.ResponseWriter, r *http.Request) {
	text := s.comparisonText(r)

	res, err := s.engine.Compare(r.Context(), text)
	if err != nil {
		s.writeProcessingError(w, err)
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, res)
}

func (s *Server) handleReferenceAPI(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, s.engine.CompareReference(r.Context()))
}

// --- HTML views ---

func (s *Server) handleComparisonPage(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("Serving lemmatization vs. stemming comparison page")
	text := s.comparisonText(r)

	res, err := s.engine.Compare(r.Context(), text)
	if err != nil {
		s.logger.Error("Error rendering comparison page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.renderPage(w, comparisonPage{
		Title:       "Lemmatization vs Stemming Comparison",
		Text:        text,
		Comparisons: res.Comparison,
		Sections:    comparison.NewReport(res.Comparison).Sections(),
	})
}

func (s *Server) handleReferencePage(w http.ResponseWriter, r *http.Request) {
	res := s.engine.CompareReference(r.Context())
	s.renderPage(w, comparisonPage{
		Title:       "Reference Words: Lemmatization vs Stemming",
		Reference:   true,
		Comparisons: res.Comparison,
		Sections:    comparison.ParseSections(res.Explanation),
	})
}

func (s *Server) renderPage(w http.ResponseWriter, page comparisonPage) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, "comparison.html", page); err != nil {
		s.logger.Error("Template execution failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// --- Session text ---

// comparisonText picks the text for the comparison views: the query
// parameter when present, else the session, else the configured default.
func (s *Server) comparisonText(r *http.Request) string {
	var text string
	if q := r.URL.Query(); q.Has("text") {
		text = q.Get("text")
	} else {
		text = s.sessionText(r)
	}
	s.logger.Debug("Received text for comparison", "text", text)

	if strings.TrimSpace(text) == "" {
		s.logger.Warn("No text provided for comparison, using default text")
		text = s.cfg.DefaultText
	}
	return text
}

func (s *Server) sessionText(r *http.Request) string {
	cookie, err := r.Cookie(s.cfg.Session.CookieName)
	if err != nil || !session.ValidID(cookie.Value) {
		return ""
	}
	text, ok, err := s.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		s.logger.Error("Session lookup failed", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return text
}

// rememberText stores text in the caller's session, creating one if needed.
// Failures are logged and never fail the request.
func (s *Server) rememberText(w http.ResponseWriter, r *http.Request, text string) {
	id := ""
	if cookie, err := r.Cookie(s.cfg.Session.CookieName); err == nil && session.ValidID(cookie.Value) {
		id = cookie.Value
	} else {
		id = session.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     s.cfg.Session.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(s.cfg.Session.TTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	if err := s.sessions.Set(r.Context(), id, text); err != nil {
		s.logger.Error("Session store failed", "error", err)
	}
}

// --- Helpers ---

func (s *Server) writeProcessingError(w http.ResponseWriter, err error) {
	if errors.Is(err, textanalyzer.ErrInvalidInput) {
		s.writeHTTPError(w, http.StatusBadRequest, "Text input cannot be empty")
		return
	}
	s.logger.Error("Error processing API request", "error", err)
	s.writeHTTPError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeHTTPError(w http.ResponseWriter, statusCode int, message string) {
	s.writeHTTPResponse(w, statusCode, map[string]string{"error": message})
}

func typeName(v any) string {
	if v == nil {
		return "missing"
	}
	if _, ok := v.(string); ok {
		return "string"
	}
	return "non-string"
}
