package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/0xalexb/activenote/obsidian"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ActiveFileToolName is the name the tool is registered under.
const ActiveFileToolName = "get_active_file"

// ActiveFileSource returns the note currently open in the editor. *obsidian.Client implements it.
type ActiveFileSource interface {
	ActiveFile(ctx context.Context) (obsidian.ActiveFile, error)
}

func activeFileTool() mcp.Tool {
	return mcp.NewTool(ActiveFileToolName,
		mcp.WithDescription("Return the absolute path and content of the active Obsidian file via Local REST API."),
		mcp.WithTitleAnnotation("Get active file"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// activeFileHandler renders the active file as indented JSON text.
// A failed fetch becomes an error result so the agent sees the message.
func activeFileHandler(source ActiveFileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file, err := source.ActiveFile(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding active file: %w", err)
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
