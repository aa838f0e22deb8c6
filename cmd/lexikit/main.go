package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sanonone/lexikit/internal/config"
	"github.com/sanonone/lexikit/internal/logging"
	lexmcp "github.com/sanonone/lexikit/internal/mcp"
	"github.com/sanonone/lexikit/internal/server"
	"github.com/sanonone/lexikit/internal/session"
	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file (defaults are used when empty)")
	envPath := flag.String("env", ".env", "Path to a .env file loaded before the configuration")
	httpAddr := flag.String("http-addr", "", "Override the HTTP listen address (e.g. :5000)")
	mcpStdio := flag.Bool("mcp-stdio", false, "Serve the MCP tools over stdin/stdout instead of HTTP")

	flag.Parse()

	// .env first, so the YAML file can reference its variables
	if err := godotenv.Load(*envPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to load env file: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	logger, logFile, err := logging.New(logging.Options{
		Level:        cfg.Log.Level,
		ConsoleLevel: cfg.Log.ConsoleLevel,
		File:         cfg.Log.File,
		Format:       cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	if err := run(cfg, logger, *mcpStdio); err != nil {
		logger.Error("Fatal error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, mcpStdio bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lemmatizer, err := textanalyzer.NewDictionaryLemmatizer()
	if err != nil {
		return err
	}
	stemmer, err := textanalyzer.NewStemmer(cfg.Stemmer)
	if err != nil {
		return err
	}
	provider, err := textanalyzer.NewProseProvider(lemmatizer)
	if err != nil {
		return err
	}
	pipeline := textanalyzer.NewPipeline(provider, stemmer, logger)
	engine := comparison.NewEngine(pipeline, logger)
	logger.Info("NLP pipeline ready", "stemmer", cfg.Stemmer)

	if mcpStdio {
		logger.Info("Serving MCP over stdio")
		return lexmcp.NewMCPServer(pipeline, engine, logger).Run(ctx, &sdkmcp.StdioTransport{})
	}

	sessions, err := openSessions(ctx, cfg.Session)
	if err != nil {
		return err
	}
	defer sessions.Close()

	srv, err := server.NewServer(cfg, pipeline, engine, sessions, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	srv.Shutdown()
	return <-errCh
}

func openSessions(ctx context.Context, cfg config.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "redis":
		store, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.KeyPrefix, cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis session store: %w", err)
		}
		return store, nil
	default:
		return session.NewMemoryStore(cfg.TTL), nil
	}
}
