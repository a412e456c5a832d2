package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/introspect/internal/analyzer"
	"github.com/dusk-indust/introspect/internal/mcptools"
	"github.com/dusk-indust/introspect/internal/telemetry"
)

// runServe starts the MCP server and blocks until interrupted.
func runServe(flags cliFlags) error {
	reg, err := loadRegistries(flags.ConfigDir)
	if err != nil {
		return err
	}

	events := telemetry.NewMemoryTracker()
	a := analyzer.New(analyzer.DefaultConfig(), reg, insightBus(flags), events)
	svc := mcptools.NewIntentService(a, events)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("introspect MCP server listening on %s", flags.Addr)
	if err := mcptools.RunMCPServer(ctx, svc, flags.Addr); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
