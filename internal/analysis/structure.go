package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/skillcheck/internal/policy"
	"github.com/eykd/skillcheck/internal/skill"
)

// StructureReport is the scored assessment of a document body.
type StructureReport struct {
	Score       int      `json:"score" yaml:"score"`
	LineCount   int      `json:"line_count" yaml:"line_count"`
	H1Count     int      `json:"h1_count" yaml:"h1_count"`
	H2Count     int      `json:"h2_count" yaml:"h2_count"`
	CodeBlocks  int      `json:"code_blocks" yaml:"code_blocks"`
	Todos       int      `json:"todos" yaml:"todos"`
	Issues      []string `json:"issues" yaml:"issues"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// codeFenceRE matches a complete triple-backtick fenced region,
// including its contents, across line boundaries.
var codeFenceRE = regexp.MustCompile("(?s)```.*?```")

// todoRE matches a bracketed TODO marker.
var todoRE = regexp.MustCompile(`(?i)\[TODO`)

// StripCodeBlocks removes fenced code regions so that example content
// never triggers heuristics meant for prose.
func StripCodeBlocks(content string) string {
	return codeFenceRE.ReplaceAllString(content, "")
}

// AnalyzeStructure scores the organization of a document body.
// Heading and TODO detection run on the body with code fences
// stripped; fence counting and line counting run on the raw body.
func AnalyzeStructure(body string, pol policy.Policy) StructureReport {
	rep := StructureReport{
		Score:       100,
		LineCount:   skill.CountLines(body),
		CodeBlocks:  strings.Count(body, "```") / 2,
		Issues:      []string{},
		Suggestions: []string{},
	}

	stripped := StripCodeBlocks(body)
	for _, line := range strings.Split(stripped, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			rep.H1Count++
		case strings.HasPrefix(line, "## "):
			rep.H2Count++
		}
	}
	rep.Todos = len(todoRE.FindAllString(stripped, -1))

	if rep.H1Count == 0 {
		rep.Issues = append(rep.Issues, "Missing main heading (H1)")
		rep.Score -= pol.Structure.MissingH1Penalty
	}

	if rep.H1Count > 1 {
		rep.Issues = append(rep.Issues, fmt.Sprintf("Multiple H1 headings (%d)", rep.H1Count))
		rep.Suggestions = append(rep.Suggestions, "Use single H1 for skill title, H2 for sections")
		rep.Score -= pol.Structure.MultipleH1Penalty
	}

	if rep.H2Count < pol.Structure.MinSections {
		rep.Issues = append(rep.Issues, "Few section headings")
		rep.Suggestions = append(rep.Suggestions, "Add H2 sections to organize content")
		rep.Score -= pol.Structure.FewSectionsPenalty
	}

	if rep.LineCount > pol.Structure.MaxLines {
		rep.Issues = append(rep.Issues, fmt.Sprintf("Body too long (%d lines)", rep.LineCount))
		rep.Suggestions = append(rep.Suggestions, "Move detailed content to references/")
		rep.Score -= pol.Structure.LongBodyPenalty
	}

	if rep.LineCount < pol.Structure.MinLines {
		rep.Issues = append(rep.Issues, "Body very short")
		rep.Suggestions = append(rep.Suggestions, "Add more guidance and examples")
		rep.Score -= pol.Structure.ShortBodyPenalty
	}

	if rep.CodeBlocks == 0 && rep.LineCount > pol.Structure.CodeExampleThreshold {
		rep.Suggestions = append(rep.Suggestions, "Consider adding code examples")
	}

	if rep.Todos > 0 {
		rep.Issues = append(rep.Issues, fmt.Sprintf("%d TODO items remaining", rep.Todos))
		rep.Score -= rep.Todos * pol.Structure.TodoPenalty
	}

	rep.Score = clampScore(rep.Score)
	return rep
}
