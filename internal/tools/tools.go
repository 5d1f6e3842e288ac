package tools

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vlad/docgen-go/internal/docs"
	"github.com/vlad/docgen-go/internal/manifest"
)

// NewRenderDocsTool returns the mcp.Tool for rendering a documentation
// manifest.
func NewRenderDocsTool() mcp.Tool {
	return mcp.NewTool("render_docs",
		mcp.WithDescription("Render a YAML documentation manifest into aligned reference text"),
		mcp.WithString("manifest",
			mcp.Required(),
			mcp.Description("YAML manifest describing variables, functions and classes"),
		),
		mcp.WithNumber("width",
			mcp.Description("Target line width (default 72)"),
		),
		mcp.WithBoolean("short",
			mcp.Description("Emit short descriptions only"),
		),
	)
}

// RenderDocsToolHandler returns a handler for the render_docs tool.
func RenderDocsToolHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("manifest")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		m, err := manifest.Parse([]byte(text))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse manifest: %v", err)), nil
		}

		opts := []docs.Option{docs.WithWidth(request.GetInt("width", docs.DefaultWidth))}
		if request.GetBool("short", false) {
			opts = append(opts, docs.Short())
		}

		set, err := m.Build(opts...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to build documentation: %v", err)), nil
		}

		return mcp.NewToolResultText(set.Render()), nil
	}
}

// NewPrintUsageTool returns the mcp.Tool for printing a usage synopsis.
func NewPrintUsageTool() mcp.Tool {
	return mcp.NewTool("print_usage",
		mcp.WithDescription("Print the usage synopsis of one documented function or class"),
		mcp.WithString("manifest",
			mcp.Required(),
			mcp.Description("YAML manifest describing variables, functions and classes"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the documented function or class"),
		),
	)
}

// PrintUsageToolHandler returns a handler for the print_usage tool.
func PrintUsageToolHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("manifest")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		m, err := manifest.Parse([]byte(text))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse manifest: %v", err)), nil
		}
		set, err := m.Build()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to build documentation: %v", err)), nil
		}

		var buf bytes.Buffer
		switch {
		case set.Function(name) != nil:
			set.Function(name).PrintUsage(&buf)
		case set.Class(name) != nil:
			set.Class(name).PrintUsage(&buf)
		default:
			return mcp.NewToolResultError(fmt.Sprintf("no documented function or class named %s", name)), nil
		}

		return mcp.NewToolResultText(buf.String()), nil
	}
}

// RegisterTools registers all tools with the MCP server
func RegisterTools(s *server.MCPServer) error {
	s.AddTool(NewRenderDocsTool(), RenderDocsToolHandler())
	s.AddTool(NewPrintUsageTool(), PrintUsageToolHandler())
	return nil
}
