package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "betternotes/internal/adapters/mcp"
	"betternotes/internal/bootstrap"
	"betternotes/internal/config"
	"betternotes/internal/logging"
)

func main() {
	cfg := config.Load()
	dataDirFlag := flag.String("data-dir", cfg.DataDir, "directory holding the notebook store")
	storeFlag := flag.String("store", cfg.Store, "store backend: sqlite, file or memory")
	flag.Parse()

	cfg.SetDataDir(*dataDirFlag)
	cfg.Store = *storeFlag

	// stdout carries the protocol, so logs only go to the file
	logger := logging.NewIsolated(cfg.LogFile).Named("mcp")

	app, err := bootstrap.Open(cfg, logger)
	if err != nil {
		log.Fatalf("betternotes-mcp: %v", err)
	}
	if warning := bootstrap.LoadWarning(app.Report); warning != "" {
		logger.Warn(warning)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close notebook", zap.Error(err))
		}
	}()

	mcpServer := server.NewMCPServer(
		"betternotes-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, app.Notebook)
	mcpadapter.RegisterWriteTools(mcpServer, app.Notebook)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("stdio server stopped", zap.Error(err))
		log.Printf("betternotes-mcp: %v", err)
	}
}
