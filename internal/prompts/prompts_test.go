package prompts_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlad/docgen-go/internal/prompts"
)

const incompleteManifest = `
functions:
  - name: scale
    short: Scales a value
    prototypes:
      - variables: "value, factor"
        returns: scaled
`

func promptRequest(args map[string]string) mcp.GetPromptRequest {
	request := mcp.GetPromptRequest{}
	request.Params.Arguments = args
	return request
}

func TestPromptsRegistration(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.1")
	assert.NoError(t, prompts.RegisterPrompts(s))
}

func TestCompleteDocsPromptHandler(t *testing.T) {
	handler := prompts.CompleteDocsPromptHandler()
	result, err := handler(context.Background(), promptRequest(map[string]string{
		"manifest": incompleteManifest,
	}))
	require.NoError(t, err)
	require.NotNil(t, result)

	// The manifest leaves parameters and return values undocumented, so
	// the handler appends the resolution instruction.
	require.Len(t, result.Messages, 4)
	last, ok := result.Messages[len(result.Messages)-1].Content.(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, last.Text, ".. todo::")
}

func TestCompleteDocsPromptHandlerRequiresManifest(t *testing.T) {
	handler := prompts.CompleteDocsPromptHandler()
	_, err := handler(context.Background(), promptRequest(map[string]string{}))
	assert.Error(t, err)
}

func TestCompleteDocsPromptHandlerRejectsBadManifest(t *testing.T) {
	handler := prompts.CompleteDocsPromptHandler()
	_, err := handler(context.Background(), promptRequest(map[string]string{
		"manifest": "functions:\n  - bogus_field: true\n",
	}))
	assert.Error(t, err)
}
