package jobserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobsift/jobsift/internal/engine/jobs"
)

func registerSearchHistory(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_history",
		Description: "List recent job aggregation runs: keywords used, location, whether a skills file drove the search, and how many unique jobs were found. Newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input jobs.SearchHistoryInput) (*mcp.CallToolResult, jobs.SearchHistoryOutput, error) {
		if deps.History == nil {
			return nil, jobs.SearchHistoryOutput{}, errors.New("search history is not enabled")
		}
		entries, err := deps.History.Recent(ctx, input.Limit)
		if err != nil {
			return nil, jobs.SearchHistoryOutput{}, err
		}
		return nil, jobs.SearchHistoryOutput{Entries: entries, Total: len(entries)}, nil
	})
}
