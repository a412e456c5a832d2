package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewIntentMCPServer creates an MCP server with the intent analysis tools
// registered.
func NewIntentMCPServer(svc *IntentService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "introspect-intent",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_intent",
		Description: "Analyze a JavaScript or TypeScript code unit and derive its intent: purpose, data flow, side effects, dependencies, complexity metrics, design patterns, anti-patterns, improvement suggestions, and a confidence score.",
	}, svc.AnalyzeIntent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_events",
		Description: "Return the most recent analysis telemetry events, newest first: operation, duration, input/output sizes, confidence, and any error.",
	}, svc.GetEvents)

	return server
}

// RunMCPServer starts an HTTP server exposing the intent analysis MCP tools.
func RunMCPServer(ctx context.Context, svc *IntentService, addr string) error {
	server := NewIntentMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
