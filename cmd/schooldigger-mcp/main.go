package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edtools/schooldigger-mcp/internal/common"
	"github.com/edtools/schooldigger-mcp/internal/config"
	"github.com/edtools/schooldigger-mcp/internal/schooldigger"
)

func main() {
	httpMode := flag.Bool("http", false, "Run as HTTP server (default: stdio)")
	host := flag.String("host", "", "Host for HTTP server (overrides config)")
	port := flag.Int("port", 0, "Port for HTTP server (overrides config)")
	configFile := flag.String("config", "schooldigger-mcp.toml", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version information")
	flag.Parse()

	// Credentials usually live in a .env file alongside the binary
	_ = godotenv.Load()

	config.LoadVersionFromFile()

	if *showVersion {
		fmt.Printf("schooldigger-mcp version %s\n", config.GetFullVersion())
		os.Exit(0)
	}

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// CLI flag overrides (highest priority)
	config.ApplyFlagOverrides(cfg, *port, *host)

	logger := common.NewLoggerFromConfig(cfg.Logging)

	logger.Info().
		Str("version", config.GetFullVersion()).
		Str("base_url", cfg.SchoolDigger.BaseURL).
		Msg("configuration loaded")

	if cfg.SchoolDigger.AppID == "" || cfg.SchoolDigger.AppKey == "" {
		logger.Warn().Msg("SchoolDigger credentials not set; configure SCHOOLDIGGER_API_ID and SCHOOLDIGGER_API_KEY")
	}

	client := schooldigger.NewClient(
		cfg.SchoolDigger.BaseURL,
		schooldigger.Credentials{
			AppID:  cfg.SchoolDigger.AppID,
			AppKey: cfg.SchoolDigger.AppKey,
		},
		cfg.SchoolDigger.GetTimeout(),
		logger,
	)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	registerTools(mcpServer, client)
	registerResources(mcpServer)

	if !*httpMode {
		// Stdio transport reads stdin and writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport on the configured host and port
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on %s\n", addr)

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Start(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
			os.Exit(1)
		}
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
		logger.Info().Msg("server stopped")
	}
}
