package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

type Service struct {
	pipeline *textanalyzer.Pipeline
	engine   *comparison.Engine
	logger   *slog.Logger
}

func NewService(pipeline *textanalyzer.Pipeline, engine *comparison.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		pipeline: pipeline,
		engine:   engine,
		logger:   logger.With("component", "mcp"),
	}
}

// --- Tool Handlers ---

func (s *Service) Analyze(ctx context.Context, req *mcp.CallToolRequest, args AnalyzeArgs) (*mcp.CallToolResult, AnalyzeResult, error) {
	s.logger.Info("MCP analyze_text")

	analysis, err := s.pipeline.Analyze(ctx, args.Text)
	if err != nil {
		return nil, AnalyzeResult{}, err
	}
	tokens := analysis.Texts()
	stems, err := s.pipeline.StemTokens(tokens)
	if err != nil {
		return nil, AnalyzeResult{}, err
	}

	res := AnalyzeResult{
		Tokens:   tokens,
		Lemmas:   analysis.Lemmas(),
		Stems:    stems,
		POSTags:  make([]TagResult, 0, len(analysis.Tokens)),
		Entities: make([]EntityResult, 0, len(analysis.Entities)),
	}
	for _, t := range analysis.Tokens {
		res.POSTags = append(res.POSTags, TagResult{Text: t.Text, Tag: textanalyzer.UniversalTag(t.Tag)})
	}
	for _, e := range analysis.Entities {
		res.Entities = append(res.Entities, EntityResult{Text: e.Text, Label: e.Label})
	}
	return nil, res, nil
}

func (s *Service) Compare(ctx context.Context, req *mcp.CallToolRequest, args CompareArgs) (*mcp.CallToolResult, CompareResult, error) {
	s.logger.Info("MCP compare_lemmas_stems")

	res, err := s.engine.Compare(ctx, args.Text)
	if err != nil {
		return nil, CompareResult{}, err
	}
	return nil, CompareResult{
		Comparison:  res.Comparison,
		Explanation: res.Explanation,
		Sections:    comparison.NewReport(res.Comparison).Sections(),
	}, nil
}

func (s *Service) Reference(ctx context.Context, req *mcp.CallToolRequest, _ ReferenceArgs) (*mcp.CallToolResult, CompareResult, error) {
	s.logger.Info("MCP reference_comparison")

	res := s.engine.CompareReference(ctx)
	return nil, CompareResult{
		Comparison:  res.Comparison,
		Explanation: res.Explanation,
		Sections:    comparison.ParseSections(res.Explanation),
	}, nil
}
