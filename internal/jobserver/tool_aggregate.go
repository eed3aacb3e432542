package jobserver

import (
	"context"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobsift/jobsift/internal/engine"
)

func registerJobAggregate(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_aggregate",
		Description: "Search for jobs across Remotive, Arbeitnow, Adzuna, JSearch (RapidAPI) and USAJOBS in one call. Returns deduplicated structured JSON (title, company, location, description, extracted skills, URL, date, source). Keywords can come from a skills JSON file instead of the arguments; US searches fall back to an exhaustive USAJOBS vocabulary sweep when no skills file is available.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.AggregateInput) (*mcp.CallToolResult, engine.AggregateOutput, error) {
		return nil, aggregateCached(ctx, deps, input), nil
	})
}

// aggregateCached serves a request from the result cache when possible,
// running the full aggregation otherwise.
func aggregateCached(ctx context.Context, deps Deps, input engine.AggregateInput) engine.AggregateOutput {
	cacheKey := engine.CacheKey("job_aggregate",
		strings.Join(input.Keywords, ","), input.Location,
		strconv.Itoa(input.MaxJobsPerSource), input.SkillsPath)
	if out, ok := engine.CacheLoadJSON[engine.AggregateOutput](ctx, cacheKey); ok {
		return out
	}

	out := deps.Aggregator.Aggregate(ctx, engine.SearchRequest{
		Keywords:         input.Keywords,
		Location:         input.Location,
		MaxJobsPerSource: input.MaxJobsPerSource,
		SkillsPath:       input.SkillsPath,
	})

	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out
}
