package main

import (
	"flag"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"DocuOps/internal/config"
	"DocuOps/pkg/logger"
	"DocuOps/pkg/tools/docops"
)

// STDIO transport (default) with current directory access
//   go run ./cmd/docops_mcp
//   go run ./cmd/docops_mcp -transport=stdio -allowed-dirs="/home/user/documents"
//
// SSE transport on port 8086
//   go run ./cmd/docops_mcp -transport=sse -port=8086 -allowed-dirs="/home/user/projects"
//
// StreamableHTTP transport on port 9000
//   go run ./cmd/docops_mcp -transport=httpstream -port=9000 -allowed-dirs="/tmp"

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file")
	transport := flag.String("transport", "", "Transport method: stdio, sse, or httpstream")
	port := flag.String("port", "", "Port for HTTP-based transports (sse, httpstream)")
	allowedDirs := flag.String("allowed-dirs", "", "Comma-separated list of directories tools may touch")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Init(logger.ParseLevel(cfg.Logger.Level))
			logger.New(cfg.App.Name).WithError(err).Fatal("failed to load config")
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *transport != "" {
		cfg.Server.Transport = *transport
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *allowedDirs != "" {
		cfg.Server.AllowedDirs = strings.Split(*allowedDirs, ",")
	}

	logger.Init(logger.ParseLevel(cfg.Logger.Level))
	log := logger.New(cfg.App.Name)

	s, err := docops.NewServer(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create document server")
	}

	switch cfg.Server.Transport {
	case "sse":
		log.Info("starting document MCP server with SSE transport on port " + cfg.Server.Port)
		sseServer := server.NewSSEServer(s)
		if err := sseServer.Start(":" + cfg.Server.Port); err != nil {
			log.WithError(err).Fatal("SSE server error")
		}
	case "httpstream":
		log.Info("starting document MCP server with StreamableHTTP transport on port " + cfg.Server.Port)
		httpServer := server.NewStreamableHTTPServer(s)
		if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
			log.WithError(err).Fatal("HTTP server error")
		}
	case "stdio":
		log.Info("starting document MCP server with STDIO transport")
		if err := server.ServeStdio(s); err != nil {
			log.WithError(err).Fatal("STDIO server error")
		}
	default:
		log.Fatal("unknown transport " + cfg.Server.Transport + ": use stdio, sse, or httpstream")
	}
}
