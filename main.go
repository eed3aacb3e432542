// jobsift — multi-source job aggregation MCP server.
//
// Exposes three MCP tools: job_aggregate, skill_extract, search_history.
// Providers: Remotive, Arbeitnow, Adzuna, JSearch (RapidAPI), USAJOBS plus
// a GitHub Jobs mirror proxy. Runs as a streamable HTTP MCP server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobsift/jobsift/internal/engine"
	"github.com/jobsift/jobsift/internal/engine/jobs"
	"github.com/jobsift/jobsift/internal/jobserver"
)

var version = "dev"

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration, using default", slog.String("key", key), slog.String("value", v))
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer, using default", slog.String("key", key), slog.String("value", v))
	}
	return fallback
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".jobsift", "history.db")
	}
	return filepath.Join(home, ".jobsift", "history.db")
}

func main() {
	// Local development convenience; in production the environment is
	// already populated and the file is absent.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", slog.Any("error", err))
	}

	fetchTimeout := envDuration("FETCH_TIMEOUT", engine.DefaultFetchTimeout)
	cfg := engine.Config{
		USAJobsAPIKey:    os.Getenv("USAJOBS_API_KEY"),
		USAJobsUserAgent: os.Getenv("USAJOBS_USER_AGENT"),
		RapidAPIKey:      os.Getenv("RAPIDAPI_JSEARCH_KEY"),
		AdzunaAppID:      os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:     os.Getenv("ADZUNA_APP_KEY"),
		FetchTimeout:     fetchTimeout,
		HTTPClient:       engine.NewHTTPClient(fetchTimeout),
	}
	if cfg.USAJobsAPIKey == "" || cfg.USAJobsUserAgent == "" {
		slog.Warn("USAJOBS_API_KEY or USAJOBS_USER_AGENT not set, US federal search disabled")
	}
	if cfg.RapidAPIKey == "" {
		slog.Warn("RAPIDAPI_JSEARCH_KEY not set, JSearch disabled")
	}
	if cfg.AdzunaAppID == "" || cfg.AdzunaAppKey == "" {
		slog.Warn("ADZUNA_APP_ID or ADZUNA_APP_KEY not set, Adzuna disabled")
	}

	engine.InitCache(
		os.Getenv("REDIS_URL"),
		envDuration("CACHE_TTL", 15*time.Minute),
		envInt("CACHE_MAX_ENTRIES", 1000),
		envDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
	)

	aggregator := jobs.NewAggregator(cfg)
	var history *jobs.History
	historyPath := envStr("HISTORY_DB_PATH", defaultHistoryPath())
	if h, err := jobs.OpenHistory(historyPath); err != nil {
		slog.Warn("search history disabled", slog.String("path", historyPath), slog.Any("error", err))
	} else {
		history = h
		defer history.Close()
		aggregator.WithHistory(history)
	}

	port := envStr("MCP_PORT", "8841")
	slog.Info("starting jobsift",
		slog.String("version", version),
		slog.String("port", port),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "jobsift",
		Version: version,
	}, nil)
	jobserver.RegisterTools(server, jobserver.Deps{Aggregator: aggregator, History: history})
	slog.Info("tools registered", slog.Int("count", 3))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := jobserver.Run(ctx, server, envStr("MCP_HOST", ""), port); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
