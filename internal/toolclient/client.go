package toolclient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/octobees/product-advisor/internal/dto"
	"github.com/octobees/product-advisor/internal/toolserver"
)

// Session is an initialized MCP session with a recommendation server spawned
// over stdio. It is safe for concurrent use; the transport matches responses
// to requests by ID.
type Session struct {
	mcp *client.Client
}

// Connect spawns the server command, establishes the stdio transport and runs
// the protocol handshake.
func Connect(ctx context.Context, command []string, clientName, version string) (*Session, error) {
	if len(command) == 0 {
		return nil, errors.New("server command must not be empty")
	}

	c, err := client.NewStdioMCPClient(command[0], nil, command[1:]...)
	if err != nil {
		return nil, fmt.Errorf("failed to start MCP server process: %w", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: version}

	if _, err := c.Initialize(ctx, initReq); err != nil {
		c.Close()
		return nil, fmt.Errorf("MCP initialize failed: %w", err)
	}
	return &Session{mcp: c}, nil
}

// ConnectWithRetry attempts Connect up to `attempts` times with a fixed delay
// between failures.
func ConnectWithRetry(ctx context.Context, command []string, clientName, version string, attempts int, delay time.Duration) (*Session, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		session, err := Connect(ctx, command, clientName, version)
		if err == nil {
			return session, nil
		}
		lastErr = err
		log.Printf("mcp connect attempt=%d/%d failed: %v", attempt, attempts, err)

		if attempt == attempts {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

// ListTools returns the tools advertised by the server.
func (s *Session) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	res, err := s.mcp.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools failed: %w", err)
	}
	return res.Tools, nil
}

// GetRecommendation calls the getdata tool and returns its text result. A
// tool-level error (for example a failed upstream search) is returned as an
// error carrying the server's message.
func (s *Session) GetRecommendation(ctx context.Context, req dto.SearchRequest) (string, error) {
	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = toolserver.ToolName
	callReq.Params.Arguments = map[string]any{
		"prod":              req.Product,
		"specific_features": req.SpecificFeatures,
		"minp":              req.MinPrice,
		"maxp":              req.MaxPrice,
	}

	res, err := s.mcp.CallTool(ctx, callReq)
	if err != nil {
		return "", fmt.Errorf("tool call failed: %w", err)
	}

	text := firstText(res.Content)
	if res.IsError {
		if text == "" {
			text = "tool call failed"
		}
		return "", errors.New(text)
	}
	if text == "" {
		return "", errors.New("tool returned no text content")
	}
	return text, nil
}

// Close shuts down the transport and the spawned server process.
func (s *Session) Close() error {
	return s.mcp.Close()
}

func firstText(content []mcp.Content) string {
	for _, c := range content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
