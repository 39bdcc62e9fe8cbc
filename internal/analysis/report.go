package analysis

import (
	"math"

	"github.com/eykd/skillcheck/internal/policy"
	"github.com/eykd/skillcheck/internal/skill"
)

// Report is the full analysis of one skill package.
type Report struct {
	Path           string            `json:"path" yaml:"path"`
	Name           string            `json:"name" yaml:"name"`
	OverallScore   int               `json:"overall_score" yaml:"overall_score"`
	Description    DescriptionReport `json:"description" yaml:"description"`
	Structure      StructureReport   `json:"structure" yaml:"structure"`
	Resources      ResourceReport    `json:"resources" yaml:"resources"`
	AllIssues      []string          `json:"all_issues" yaml:"all_issues"`
	AllSuggestions []string          `json:"all_suggestions" yaml:"all_suggestions"`
}

// Analyze runs every analyzer over a loaded package and blends the
// sub-scores by the policy weights. Resource health is 100 when the
// inventory is clean and the degraded value otherwise; the blend
// therefore always lands in [0, 100].
func Analyze(pkg *skill.Package, pol policy.Policy) Report {
	desc := AnalyzeDescription(pkg.Document.Description(), pol)
	structure := AnalyzeStructure(pkg.Document.Body, pol)
	resources := AnalyzeResources(pkg.Resources)

	health := 100
	if len(resources.Issues) > 0 {
		health = pol.DegradedResourceHealth
	}

	overall := math.Round(
		float64(desc.Score)*pol.Weights.Description +
			float64(structure.Score)*pol.Weights.Structure +
			float64(health)*pol.Weights.Resources)

	rep := Report{
		Path:           pkg.Path,
		Name:           pkg.Document.Name(),
		OverallScore:   int(overall),
		Description:    desc,
		Structure:      structure,
		Resources:      resources,
		AllIssues:      []string{},
		AllSuggestions: []string{},
	}
	rep.AllIssues = append(rep.AllIssues, desc.Issues...)
	rep.AllIssues = append(rep.AllIssues, structure.Issues...)
	rep.AllIssues = append(rep.AllIssues, resources.Issues...)
	rep.AllSuggestions = append(rep.AllSuggestions, desc.Suggestions...)
	rep.AllSuggestions = append(rep.AllSuggestions, structure.Suggestions...)
	rep.AllSuggestions = append(rep.AllSuggestions, resources.Suggestions...)
	return rep
}
