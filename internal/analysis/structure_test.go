package analysis_test

import (
	"strings"
	"testing"

	"github.com/eykd/skillcheck/internal/analysis"
	"github.com/eykd/skillcheck/internal/policy"
)

// wellFormedBody builds a body with one H1, two H2 sections, a code
// fence, and enough prose lines to clear the minimum-length check.
func wellFormedBody() string {
	var b strings.Builder
	b.WriteString("# Demo Skill\n\n")
	b.WriteString("## Overview\n\n")
	for i := 0; i < 12; i++ {
		b.WriteString("Some guidance prose on its own line.\n")
	}
	b.WriteString("\n## Usage\n\n")
	b.WriteString("```bash\nrun --it\n```\n")
	for i := 0; i < 6; i++ {
		b.WriteString("More notes.\n")
	}
	return b.String()
}

func TestAnalyzeStructure_WellFormed(t *testing.T) {
	rep := analysis.AnalyzeStructure(wellFormedBody(), policy.Default())

	if rep.Score != 100 {
		t.Errorf("Score = %d, want 100 (issues: %v)", rep.Score, rep.Issues)
	}
	if rep.H1Count != 1 || rep.H2Count != 2 {
		t.Errorf("H1Count = %d, H2Count = %d, want 1 and 2", rep.H1Count, rep.H2Count)
	}
	if rep.CodeBlocks != 1 {
		t.Errorf("CodeBlocks = %d, want 1", rep.CodeBlocks)
	}
	if len(rep.Issues) != 0 {
		t.Errorf("Issues = %v, want none", rep.Issues)
	}
}

func TestAnalyzeStructure(t *testing.T) {
	pol := policy.Default()

	tests := []struct {
		name      string
		body      string
		wantScore int
		wantIssue string
	}{
		{
			name:      "missing H1",
			body:      "## Only Sections\n\n## Here\n" + strings.Repeat("text\n", 20),
			wantScore: 85,
			wantIssue: "Missing main heading (H1)",
		},
		{
			name:      "multiple H1 headings",
			body:      "# One\n\n# Two\n\n## A\n\n## B\n" + strings.Repeat("text\n", 20),
			wantScore: 90,
			wantIssue: "Multiple H1 headings (2)",
		},
		{
			name:      "few section headings",
			body:      "# Title\n\n## Only One\n" + strings.Repeat("text\n", 20),
			wantScore: 90,
			wantIssue: "Few section headings",
		},
		{
			name:      "short body",
			body:      "# Title\n\n## A\n\n## B\n\ntext\n",
			wantScore: 85,
			wantIssue: "Body very short",
		},
		{
			name:      "TODO markers cost five points each",
			body:      "# Title\n\n## A\n\n## B\n[TODO: write]\n[todo: more]\n" + strings.Repeat("text\n", 20),
			wantScore: 90,
			wantIssue: "2 TODO items remaining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := analysis.AnalyzeStructure(tt.body, pol)
			if rep.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (issues: %v)", rep.Score, tt.wantScore, rep.Issues)
			}
			found := false
			for _, issue := range rep.Issues {
				if issue == tt.wantIssue {
					found = true
				}
			}
			if !found {
				t.Errorf("Issues = %v, want to contain %q", rep.Issues, tt.wantIssue)
			}
		})
	}
}

func TestAnalyzeStructure_LongBody(t *testing.T) {
	body := "# Title\n\n## A\n\n## B\n\n```\nx\n```\n" + strings.Repeat("line\n", 510)
	rep := analysis.AnalyzeStructure(body, policy.Default())

	if rep.Score != 80 {
		t.Errorf("Score = %d, want 80 (issues: %v)", rep.Score, rep.Issues)
	}
	if rep.LineCount <= 500 {
		t.Errorf("LineCount = %d, expected above 500", rep.LineCount)
	}
}

// Headings and TODO markers inside code fences must not count.
func TestAnalyzeStructure_IgnoresFencedContent(t *testing.T) {
	body := "# Title\n\n## A\n\n## B\n\n" +
		"```markdown\n# Not a heading\n## Not a section\n[TODO: not real]\n```\n" +
		strings.Repeat("text\n", 20)
	rep := analysis.AnalyzeStructure(body, policy.Default())

	if rep.H1Count != 1 {
		t.Errorf("H1Count = %d, want 1", rep.H1Count)
	}
	if rep.H2Count != 2 {
		t.Errorf("H2Count = %d, want 2", rep.H2Count)
	}
	if rep.Todos != 0 {
		t.Errorf("Todos = %d, want 0", rep.Todos)
	}
	if rep.Score != 100 {
		t.Errorf("Score = %d, want 100 (issues: %v)", rep.Score, rep.Issues)
	}
}

// A long body without code examples gets a suggestion but no penalty.
func TestAnalyzeStructure_CodeExampleSuggestionOnly(t *testing.T) {
	body := "# Title\n\n## A\n\n## B\n\n" + strings.Repeat("prose line\n", 60)
	rep := analysis.AnalyzeStructure(body, policy.Default())

	if rep.Score != 100 {
		t.Errorf("Score = %d, want 100 (issues: %v)", rep.Score, rep.Issues)
	}
	found := false
	for _, s := range rep.Suggestions {
		if s == "Consider adding code examples" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggestions = %v, want code-example suggestion", rep.Suggestions)
	}
}

func TestStripCodeBlocks(t *testing.T) {
	in := "before\n```go\ncode\n```\nafter\n```\nmore\n```\nend"
	got := analysis.StripCodeBlocks(in)
	if strings.Contains(got, "code") || strings.Contains(got, "more") {
		t.Errorf("StripCodeBlocks() = %q, fenced content survived", got)
	}
	if !strings.Contains(got, "before") || !strings.Contains(got, "end") {
		t.Errorf("StripCodeBlocks() = %q, prose was lost", got)
	}
}
