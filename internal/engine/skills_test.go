package engine

import (
	"reflect"
	"sort"
	"testing"
)

func TestVocabularyExtract(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "java", "javascript", "machine learning", "sql", "react"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case insensitive match",
			text: "Experience with PYTHON and React required",
			want: []string{"python", "react"},
		},
		{
			name: "java does not match javascript",
			text: "We are a JavaScript shop",
			want: []string{"javascript"},
		},
		{
			name: "java matches standalone",
			text: "Senior Java developer",
			want: []string{"java"},
		},
		{
			name: "multi-word phrase",
			text: "background in machine learning and SQL",
			want: []string{"machine learning", "sql"},
		},
		{
			name: "no duplicates on repeated mentions",
			text: "python python python",
			want: []string{"python"},
		},
		{
			name: "word boundary blocks substrings",
			text: "mypython pythonic",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no known skills",
			text: "We sell artisanal cheese",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vocab.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestVocabularyExtractSorted(t *testing.T) {
	vocab := NewVocabulary([]string{"zsh", "bash", "go", "rust"})
	got := vocab.Extract("rust and go and zsh and bash")
	if !sort.StringsAreSorted(got) {
		t.Errorf("Extract result not sorted: %v", got)
	}
	if len(got) != 4 {
		t.Errorf("Extract found %d terms, want 4", len(got))
	}
}

func TestNewVocabularyDedup(t *testing.T) {
	vocab := NewVocabulary([]string{"Python", "python", "PYTHON", "sql"})
	terms := vocab.Terms()
	if len(terms) != 2 {
		t.Fatalf("Terms() = %v, want 2 entries", terms)
	}
	// First occurrence keeps its casing.
	if terms[0] != "Python" {
		t.Errorf("Terms()[0] = %q, want %q", terms[0], "Python")
	}
	if got := vocab.Extract("we use python daily"); len(got) != 1 || got[0] != "Python" {
		t.Errorf("Extract = %v, want [Python]", got)
	}
}

func TestNewVocabularySkipsEmptyEntries(t *testing.T) {
	vocab := NewVocabulary([]string{"", "go", ""})
	if vocab.Len() != 1 {
		t.Errorf("Len() = %d, want 1", vocab.Len())
	}
}

func TestDefaultVocabulary(t *testing.T) {
	if DefaultVocabulary.Len() < 300 {
		t.Errorf("DefaultVocabulary.Len() = %d, want at least 300", DefaultVocabulary.Len())
	}
	got := ExtractSkills("Looking for a Kubernetes admin with Terraform and AWS experience")
	want := []string{"aws", "kubernetes", "terraform"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}
