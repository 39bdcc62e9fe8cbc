// Package analysis implements the heuristic quality analyzers for
// skill packages and blends their scores into a single report.
package analysis

import (
	"regexp"
	"strings"

	"github.com/eykd/skillcheck/internal/policy"
)

// DescriptionReport is the scored assessment of a header description.
type DescriptionReport struct {
	Score              int      `json:"score" yaml:"score"`
	WordCount          int      `json:"word_count" yaml:"word_count"`
	HasTriggerGuidance bool     `json:"has_trigger_guidance" yaml:"has_trigger_guidance"`
	Issues             []string `json:"issues" yaml:"issues"`
	Suggestions        []string `json:"suggestions" yaml:"suggestions"`
}

// AnalyzeDescription scores a header description against the policy
// tables. Penalties are additive from a baseline of 100, clamped at
// zero; every issue is paired with a suggestion. A missing description
// short-circuits to a zero score with a single issue.
func AnalyzeDescription(description string, pol policy.Policy) DescriptionReport {
	if description == "" {
		return DescriptionReport{
			Score:       0,
			Issues:      []string{"Missing description"},
			Suggestions: []string{"Add description to frontmatter"},
		}
	}

	rep := DescriptionReport{
		Score:       100,
		WordCount:   len(strings.Fields(description)),
		Issues:      []string{},
		Suggestions: []string{},
	}
	lower := strings.ToLower(description)

	if rep.WordCount < pol.Description.MinWords {
		rep.Issues = append(rep.Issues, "Description too short")
		rep.Suggestions = append(rep.Suggestions, "Expand description to include what the skill does and when to use it")
		rep.Score -= pol.Description.ShortPenalty
	}

	if rep.WordCount > pol.Description.MaxWords {
		rep.Issues = append(rep.Issues, "Description may be too long")
		rep.Suggestions = append(rep.Suggestions, "Consider condensing to essential triggers only")
		rep.Score -= pol.Description.LongPenalty
	}

	for _, phrase := range pol.TriggerPhrases {
		if strings.Contains(lower, phrase) {
			rep.HasTriggerGuidance = true
			break
		}
	}
	if !rep.HasTriggerGuidance {
		rep.Issues = append(rep.Issues, "Missing trigger guidance")
		rep.Suggestions = append(rep.Suggestions, `Add "Use when..." or similar trigger phrases`)
		rep.Score -= pol.Description.TriggerPenalty
	}

	if !verbPattern(pol.ActionVerbs).MatchString(lower) {
		rep.Issues = append(rep.Issues, "Missing action verbs")
		rep.Suggestions = append(rep.Suggestions, "Include verbs describing what the skill does")
		rep.Score -= pol.Description.VerbPenalty
	}

	rep.Score = clampScore(rep.Score)
	return rep
}

// verbPattern builds a whole-word alternation over the action verbs.
func verbPattern(verbs []string) *regexp.Regexp {
	quoted := make([]string, len(verbs))
	for i, v := range verbs {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

// clampScore floors a sub-score at zero.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
