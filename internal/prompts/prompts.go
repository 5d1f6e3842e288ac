package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vlad/docgen-go/internal/manifest"
)

// NewCompleteDocsPrompt returns the mcp.Prompt for completing missing
// documentation.
func NewCompleteDocsPrompt() mcp.Prompt {
	return mcp.NewPrompt("complete_docs",
		mcp.WithPromptDescription("Resolve the todo notices in rendered reference documentation"),
		mcp.WithArgument("manifest",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("YAML manifest describing variables, functions and classes"),
		),
	)
}

// CompleteDocsPromptHandler returns a handler for the complete_docs prompt
func CompleteDocsPromptHandler() func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		manifestText := request.Params.Arguments["manifest"]
		if manifestText == "" {
			return nil, fmt.Errorf("manifest is required")
		}

		m, err := manifest.Parse([]byte(manifestText))
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %v", err)
		}
		set, err := m.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build documentation: %v", err)
		}
		rendered := set.Render()

		messages := []mcp.PromptMessage{
			mcp.NewPromptMessage(
				"system",
				mcp.NewTextContent("You are a reference documentation assistant. Your task is to complete the provided documentation manifest so that its rendered output carries no '.. todo::' notices."),
			),
			mcp.NewPromptMessage(
				"user",
				mcp.NewTextContent("Here is the current manifest:\n\n```yaml\n"+manifestText+"\n```"),
			),
			mcp.NewPromptMessage(
				"user",
				mcp.NewTextContent("Here is the rendered documentation it produces:\n\n"+rendered),
			),
		}

		if strings.Contains(rendered, ".. todo::") {
			messages = append(messages, mcp.NewPromptMessage(
				"user",
				mcp.NewTextContent("Please resolve every '.. todo::' notice above by adding the missing prototypes, parameter or return-value documentation to the manifest, and remove documented names that are nowhere used."),
			))
		}

		return mcp.NewGetPromptResult("Resolve the todo notices in rendered reference documentation", messages), nil
	}
}

// RegisterPrompts registers all prompts with the MCP server
func RegisterPrompts(s *server.MCPServer) error {
	s.AddPrompt(NewCompleteDocsPrompt(), CompleteDocsPromptHandler())
	return nil
}
