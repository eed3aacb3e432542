package jobs

import (
	"encoding/json"
	"log/slog"
	"os"
)

// defaultKeywords is the last-resort search vocabulary when neither the
// skills file nor the caller supplied anything.
var defaultKeywords = []string{"developer", "software", "IT"}

// Reasons recorded on a KeywordResolution. Only ReasonSkillsFile marks the
// personalized path; everything else falls back to caller keywords.
const (
	ReasonSkillsFile   = "skills-file"
	ReasonNoPath       = "no-path"
	ReasonNotFound     = "not-found"
	ReasonInvalidJSON  = "invalid-json"
	ReasonInvalidShape = "invalid-shape"
	ReasonEmptyFile    = "empty-file"
)

// KeywordResolution is the outcome of the keyword fallback chain. The
// FromSkillsFile flag drives the USAJOBS search strategy downstream.
type KeywordResolution struct {
	Keywords       []string
	FromSkillsFile bool
	Reason         string
}

// ResolveKeywords picks the effective search keywords: a valid skills file
// wins, otherwise the caller's keywords, otherwise a generic default set.
// The skills file must hold a non-empty JSON array of strings; anything else
// is treated as absent and logged, never surfaced as an error.
func ResolveKeywords(caller []string, skillsPath string) KeywordResolution {
	res := resolveSkillsFile(skillsPath)
	if !res.FromSkillsFile {
		res.Keywords = caller
	}
	if len(res.Keywords) == 0 {
		slog.Warn("keywords: nothing to search with, using generic defaults")
		res.Keywords = append([]string(nil), defaultKeywords...)
	}
	return res
}

func resolveSkillsFile(path string) KeywordResolution {
	if path == "" {
		return KeywordResolution{Reason: ReasonNoPath}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Info("keywords: skills file not readable, using caller keywords",
			slog.String("path", path), slog.Any("error", err))
		return KeywordResolution{Reason: ReasonNotFound}
	}
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		// Distinguish a malformed file from one that parses to the wrong
		// shape, mirroring how operators tend to debug these.
		var probe any
		if json.Unmarshal(data, &probe) != nil {
			slog.Warn("keywords: skills file is not valid JSON", slog.String("path", path))
			return KeywordResolution{Reason: ReasonInvalidJSON}
		}
		slog.Warn("keywords: skills file is not a JSON array of strings", slog.String("path", path))
		return KeywordResolution{Reason: ReasonInvalidShape}
	}
	if len(skills) == 0 {
		slog.Info("keywords: skills file holds an empty list", slog.String("path", path))
		return KeywordResolution{Reason: ReasonEmptyFile}
	}
	slog.Info("keywords: using skills file", slog.String("path", path), slog.Int("count", len(skills)))
	return KeywordResolution{Keywords: skills, FromSkillsFile: true, Reason: ReasonSkillsFile}
}
