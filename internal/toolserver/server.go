package toolserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/octobees/product-advisor/internal/dto"
)

// ToolName is the single operation exposed over MCP.
const ToolName = "getdata"

// ServerName identifies this server during the MCP handshake.
const ServerName = "product-advisor"

// SearchRunner resolves a recommendation request end to end.
type SearchRunner interface {
	Search(ctx context.Context, req dto.SearchRequest) (string, error)
}

// New builds an MCP server hosting the getdata tool. The protocol handshake
// (initialize, list tools, call tool) is handled entirely by the transport
// library; only the tool handler lives here.
func New(runner SearchRunner, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))

	tool := mcp.NewTool(ToolName,
		mcp.WithDescription("Search product listings in a price range and return a single model-generated recommendation."),
		mcp.WithString("prod",
			mcp.Required(),
			mcp.Description("Product to search for"),
		),
		mcp.WithString("specific_features",
			mcp.Description("Desired features, free text"),
		),
		mcp.WithNumber("minp",
			mcp.DefaultNumber(dto.DefaultMinPrice),
			mcp.Description("Minimum price"),
		),
		mcp.WithNumber("maxp",
			mcp.DefaultNumber(dto.DefaultMaxPrice),
			mcp.Description("Maximum price"),
		),
	)

	s.AddTool(tool, Handler(runner))
	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// Handler adapts the advisor pipeline to a tool invocation. Pipeline errors
// become tool-call errors so callers can tell them apart from a
// recommendation.
func Handler(runner SearchRunner) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments

		req := dto.SearchRequest{
			Product:          stringArg(args, "prod"),
			SpecificFeatures: stringArg(args, "specific_features"),
			MinPrice:         numberArg(args, "minp", dto.DefaultMinPrice),
			MaxPrice:         numberArg(args, "maxp", dto.DefaultMaxPrice),
		}
		if req.Product == "" {
			return mcp.NewToolResultError("prod is required"), nil
		}

		text, err := runner.Search(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func numberArg(args map[string]any, key string, fallback float64) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return fallback
	}
}
