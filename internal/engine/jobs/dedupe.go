package jobs

import (
	"strings"

	"github.com/jobsift/jobsift/internal/engine"
)

// Dedupe removes duplicate postings, keeping first-seen order. A record with
// a non-blank URL is identified by that URL alone; records without one fall
// back to a case-insensitive (title, company, location) signature. The two
// identifier spaces are independent, so a URL-less record never collides
// with one that has a URL.
func Dedupe(records []engine.JobRecord) []engine.JobRecord {
	seenURL := make(map[string]struct{}, len(records))
	seenSig := make(map[string]struct{})
	unique := make([]engine.JobRecord, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.URL) != "" {
			if _, ok := seenURL[rec.URL]; ok {
				continue
			}
			seenURL[rec.URL] = struct{}{}
		} else {
			sig := strings.ToLower(rec.Title) + "\x00" + strings.ToLower(rec.Company) + "\x00" + strings.ToLower(rec.Location)
			if _, ok := seenSig[sig]; ok {
				continue
			}
			seenSig[sig] = struct{}{}
		}
		unique = append(unique, rec)
	}
	return unique
}
