package engine

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// Vocabulary is a compiled skill dictionary: canonical terms plus
// word-boundary matchers over their lowercase forms. Matching order is
// longest-first so multi-word phrases win before their substrings get a
// chance to dominate. Read-only after construction.
type Vocabulary struct {
	canonical []string // supplied order, lowercase-deduplicated
	terms     []vocabTerm
}

type vocabTerm struct {
	canonical string
	re        *regexp.Regexp
}

// NewVocabulary compiles entries into a Vocabulary. Duplicate lowercase
// forms keep the first occurrence's casing. Entries that fail to compile
// into a boundary pattern are skipped individually; one bad term must not
// take extraction down for the rest.
func NewVocabulary(entries []string) *Vocabulary {
	type rawTerm struct {
		canonical string
		lower     string
	}

	seen := make(map[string]bool, len(entries))
	kept := make([]rawTerm, 0, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		lower := strings.ToLower(e)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		kept = append(kept, rawTerm{canonical: e, lower: lower})
	}

	v := &Vocabulary{canonical: make([]string, 0, len(kept))}
	for _, t := range kept {
		v.canonical = append(v.canonical, t.canonical)
	}

	byLength := make([]rawTerm, len(kept))
	copy(byLength, kept)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i].lower) > len(byLength[j].lower)
	})

	for _, t := range byLength {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(t.lower) + `\b`)
		if err != nil {
			slog.Warn("vocabulary: unusable entry skipped",
				slog.String("term", t.canonical), slog.Any("error", err))
			continue
		}
		v.terms = append(v.terms, vocabTerm{canonical: t.canonical, re: re})
	}
	return v
}

// Terms returns the canonical terms in their supplied order.
func (v *Vocabulary) Terms() []string {
	return v.canonical
}

// Len reports the number of matchable terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Extract scans text for vocabulary terms. Matching is case-insensitive
// and whole-word; the result carries canonical casing, has no duplicates,
// and is sorted lexically. Empty input yields nil.
func (v *Vocabulary) Extract(text string) []string {
	if v == nil || text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string
	for _, t := range v.terms {
		if seen[t.canonical] {
			continue
		}
		if t.re.MatchString(lower) {
			seen[t.canonical] = true
			found = append(found, t.canonical)
		}
	}
	sort.Strings(found)
	return found
}

// DefaultVocabulary is the compiled form of SkillVocabulary.
var DefaultVocabulary = NewVocabulary(SkillVocabulary)

// ExtractSkills scans text against the default vocabulary.
func ExtractSkills(text string) []string {
	return DefaultVocabulary.Extract(text)
}
