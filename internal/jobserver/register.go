// Package jobserver exposes the aggregation engine as MCP tools and serves
// them over streamable HTTP.
package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobsift/jobsift/internal/engine/jobs"
)

// Deps carries the shared services the tool handlers need.
type Deps struct {
	Aggregator *jobs.Aggregator
	History    *jobs.History // may be nil
}

// RegisterTools registers all tools on the given MCP server:
// job_aggregate, skill_extract, search_history.
func RegisterTools(server *mcp.Server, deps Deps) {
	registerJobAggregate(server, deps)
	registerSkillExtract(server)
	registerSearchHistory(server, deps)
}
