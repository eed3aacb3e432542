package jobs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSkillsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveKeywordsSkillsFile(t *testing.T) {
	path := writeSkillsFile(t, `["python", "django", "postgresql"]`)
	res := ResolveKeywords([]string{"fallback"}, path)

	if !res.FromSkillsFile {
		t.Fatal("FromSkillsFile = false, want true")
	}
	if res.Reason != ReasonSkillsFile {
		t.Errorf("Reason = %q, want %q", res.Reason, ReasonSkillsFile)
	}
	want := []string{"python", "django", "postgresql"}
	if !reflect.DeepEqual(res.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", res.Keywords, want)
	}
}

func TestResolveKeywordsFallbacks(t *testing.T) {
	caller := []string{"golang", "backend"}

	tests := []struct {
		name       string
		path       func(t *testing.T) string
		wantReason string
	}{
		{
			name:       "no path given",
			path:       func(*testing.T) string { return "" },
			wantReason: ReasonNoPath,
		},
		{
			name: "file missing",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.json")
			},
			wantReason: ReasonNotFound,
		},
		{
			name: "invalid json",
			path: func(t *testing.T) string {
				return writeSkillsFile(t, `{broken`)
			},
			wantReason: ReasonInvalidJSON,
		},
		{
			name: "wrong shape",
			path: func(t *testing.T) string {
				return writeSkillsFile(t, `{"skills": ["python"]}`)
			},
			wantReason: ReasonInvalidShape,
		},
		{
			name: "numbers in array",
			path: func(t *testing.T) string {
				return writeSkillsFile(t, `[1, 2, 3]`)
			},
			wantReason: ReasonInvalidShape,
		},
		{
			name: "empty array",
			path: func(t *testing.T) string {
				return writeSkillsFile(t, `[]`)
			},
			wantReason: ReasonEmptyFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveKeywords(caller, tt.path(t))
			if res.FromSkillsFile {
				t.Error("FromSkillsFile = true, want false")
			}
			if res.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", res.Reason, tt.wantReason)
			}
			if !reflect.DeepEqual(res.Keywords, caller) {
				t.Errorf("Keywords = %v, want caller keywords %v", res.Keywords, caller)
			}
		})
	}
}

func TestResolveKeywordsDefaults(t *testing.T) {
	res := ResolveKeywords(nil, "")
	want := []string{"developer", "software", "IT"}
	if !reflect.DeepEqual(res.Keywords, want) {
		t.Errorf("Keywords = %v, want generic defaults %v", res.Keywords, want)
	}
	if res.FromSkillsFile {
		t.Error("FromSkillsFile = true, want false")
	}
}

func TestResolveKeywordsEmptySkillsFileEmptyCaller(t *testing.T) {
	path := writeSkillsFile(t, `[]`)
	res := ResolveKeywords(nil, path)
	want := []string{"developer", "software", "IT"}
	if !reflect.DeepEqual(res.Keywords, want) {
		t.Errorf("Keywords = %v, want generic defaults %v", res.Keywords, want)
	}
}
