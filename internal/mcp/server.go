package mcp

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

// Version is reported to MCP clients.
const Version = "0.3.0"

func NewMCPServer(pipeline *textanalyzer.Pipeline, engine *comparison.Engine, logger *slog.Logger) *mcp.Server {
	service := NewService(pipeline, engine, logger)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "lexikit",
		Version: Version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Tokenize English text and return lemmas, Porter stems, part-of-speech tags and named entities.",
	}, service.Analyze)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "compare_lemmas_stems",
		Description: "Compare lemmatization and stemming word by word and explain the differences.",
	}, service.Compare)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "reference_comparison",
		Description: "Lemma vs. stem table for a fixed list of regular and irregular English words.",
	}, service.Reference)

	return s
}
