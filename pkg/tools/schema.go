package tools

import "github.com/mark3labs/mcp-go/mcp"

// ErrorResponse is used for consistent error reporting. Every failure
// category surfaces to the calling agent as renderable text, never as
// a protocol fault.
func ErrorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}
