package jobserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jobsift/jobsift/internal/engine"
)

func registerSkillExtract(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_extract",
		Description: "Extract known technical skills from free text (job description, resume excerpt) by whole-word matching against a curated vocabulary of ~330 terms. Returns a sorted, deduplicated list.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.SkillExtractInput) (*mcp.CallToolResult, engine.SkillExtractOutput, error) {
		if input.Text == "" {
			return nil, engine.SkillExtractOutput{}, errors.New("text is required")
		}
		skills := engine.ExtractSkills(input.Text)
		if skills == nil {
			skills = []string{}
		}
		return nil, engine.SkillExtractOutput{Skills: skills, Count: len(skills)}, nil
	})
}
