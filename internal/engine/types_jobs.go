package engine

// --- Aggregation types ---

// JobRecord is the normalized unit every provider adapter emits. The JSON
// field names are the wire contract with the persistence and presentation
// layers and must not change.
type JobRecord struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	DescriptionText string   `json:"description_text"`
	ExtractedSkills []string `json:"extracted_skills"`
	URL             string   `json:"url"`
	PublicationDate string   `json:"publication_date"`
	SourceSite      string   `json:"source_site"`
}

// SearchRequest is one aggregation request. All fields except keywords are
// optional; an empty location means a global search.
type SearchRequest struct {
	Keywords         []string `json:"keywords"`
	Location         string   `json:"location,omitempty"`
	MaxJobsPerSource int      `json:"max_jobs_per_source"`
	SkillsPath       string   `json:"skills_path,omitempty"`
}

// AggregateInput is the input for the job_aggregate tool.
type AggregateInput struct {
	Keywords         []string `json:"keywords,omitempty" jsonschema:"Search keywords, typically skills (e.g. python, react). Used when no skills file is available"`
	Location         string   `json:"location,omitempty" jsonschema:"Free-text location filter (e.g. United States, Germany). Empty searches globally"`
	MaxJobsPerSource int      `json:"max_jobs_per_source,omitempty" jsonschema:"Cap on results per provider (default 5)"`
	SkillsPath       string   `json:"skills_path,omitempty" jsonschema:"Path to a JSON array of skill strings that overrides keywords when readable"`
}

// AggregateOutput is the structured output for job_aggregate.
type AggregateOutput struct {
	EffectiveKeywords []string    `json:"effective_keywords"`
	UsedSkillsFile    bool        `json:"used_skills_file"`
	Total             int         `json:"total"`
	Jobs              []JobRecord `json:"jobs"`
}

// --- Skill extraction tool types ---

// SkillExtractInput is the input for the skill_extract tool.
type SkillExtractInput struct {
	Text string `json:"text" jsonschema:"Free text to scan for known skills (job description, resume excerpt)"`
}

// SkillExtractOutput is the structured output for skill_extract.
type SkillExtractOutput struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}
