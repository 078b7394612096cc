// Package toolresult builds MCP tool results from the structured result
// objects the document handlers produce. Every tool answers with a JSON
// body so callers never have to parse prose.
package toolresult

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// JSON marshals v and wraps it as a successful tool result.
func JSON(v any) *mcp.CallToolResult {
	return wrap(v, false)
}

// Error marshals v and wraps it as a failed tool result. Handler errors are
// reported through this rather than a Go error return so one failed
// operation never tears down the server loop.
func Error(v any) *mcp.CallToolResult {
	return wrap(v, true)
}

func wrap(v any, isError bool) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.TextContent{Type: "text", Text: fmt.Sprintf("marshal result: %v", err)}},
			IsError: true,
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(data)}},
		IsError: isError,
	}
}
