// Package validate runs the hard structural checks on a skill
// package and, when an original version is supplied, the regression
// checks against it. Findings split into errors (always fail the
// package) and warnings (resource and regression findings outside
// strict mode).
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/eykd/skillcheck/internal/analysis"
	"github.com/eykd/skillcheck/internal/policy"
	"github.com/eykd/skillcheck/internal/skill"
)

// Result is the outcome of a validation run. Valid holds exactly when
// Errors is empty.
type Result struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Path     string   `json:"path" yaml:"path"`
	Name     string   `json:"name" yaml:"name"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Options selects the optional regression baseline and strictness.
type Options struct {
	// OriginalDir, when non-empty, enables regression checks against
	// the package version at that path.
	OriginalDir string
	// Strict promotes resource and regression findings from warnings
	// to errors.
	Strict bool
	// Policy supplies the validation bounds.
	Policy policy.Policy
}

// Run validates the package at dir. A missing primary document yields
// an invalid result rather than a hard failure, so callers always get
// a renderable report.
func Run(dir string, opts Options) *Result {
	content, err := os.ReadFile(skill.DocumentPath(dir))
	if err != nil {
		return &Result{
			Valid: false,
			Path:  dir,
			Name:  "unknown",
			Errors: []string{
				fmt.Sprintf("%s not found in %s", skill.DocumentFilename, dir),
			},
			Warnings: []string{},
		}
	}

	doc := skill.ParseDocument(string(content))
	result := &Result{
		Path:     dir,
		Name:     "unknown",
		Errors:   []string{},
		Warnings: []string{},
	}
	if name, ok := doc.Header["name"]; ok {
		result.Name = name
	}

	result.Errors = append(result.Errors, checkFrontmatter(doc.Header, opts.Policy)...)
	result.Errors = append(result.Errors, checkStructure(doc.Body, opts.Policy)...)

	findings := checkResources(dir, doc.Body)
	if opts.OriginalDir != "" {
		findings = append(findings, CheckRegression(doc, dir, opts.OriginalDir, opts.Policy)...)
	}
	if opts.Strict {
		result.Errors = append(result.Errors, findings...)
	} else {
		result.Warnings = append(result.Warnings, findings...)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// checkFrontmatter enforces the required fields and rejects unknown
// ones.
func checkFrontmatter(header map[string]string, pol policy.Policy) []string {
	var errs []string

	if name, ok := header["name"]; !ok {
		errs = append(errs, "Missing required field: 'name'")
	} else if name == "" {
		errs = append(errs, "Field 'name' is empty")
	}

	switch description, ok := header["description"]; {
	case !ok:
		errs = append(errs, "Missing required field: 'description'")
	case description == "":
		errs = append(errs, "Field 'description' is empty")
	case len(description) < pol.Validation.MinDescriptionChars:
		errs = append(errs, fmt.Sprintf("Description too short (minimum %d characters)",
			pol.Validation.MinDescriptionChars))
	}

	known := make(map[string]struct{}, len(pol.KnownFields))
	for _, f := range pol.KnownFields {
		known[f] = struct{}{}
	}
	fields := make([]string, 0, len(header))
	for field := range header {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if _, ok := known[field]; !ok {
			errs = append(errs, fmt.Sprintf("Unknown frontmatter field: '%s'", field))
		}
	}

	return errs
}

// todoMarkerRE matches a complete bracketed TODO marker.
var todoMarkerRE = regexp.MustCompile(`(?i)\[TODO[^\]]*\]`)

// checkStructure enforces the hard body bounds: line count, single
// H1, balanced fences, no TODO markers.
func checkStructure(body string, pol policy.Policy) []string {
	var errs []string

	lineCount := skill.CountLines(body)
	if lineCount < pol.Validation.MinBodyLines {
		errs = append(errs, fmt.Sprintf("Body too short (minimum %d non-empty lines)",
			pol.Validation.MinBodyLines))
	}
	if lineCount > pol.Validation.MaxBodyLines {
		errs = append(errs, fmt.Sprintf("Body too long (%d lines, maximum %d)",
			lineCount, pol.Validation.MaxBodyLines))
	}

	stripped := analysis.StripCodeBlocks(body)
	h1Count := 0
	for _, line := range strings.Split(stripped, "\n") {
		if strings.HasPrefix(line, "# ") {
			h1Count++
		}
	}
	if h1Count == 0 {
		errs = append(errs, "Missing main heading (H1)")
	} else if h1Count > 1 {
		errs = append(errs, fmt.Sprintf("Multiple H1 headings found (%d)", h1Count))
	}

	if strings.Count(body, "```")%2 != 0 {
		errs = append(errs, "Unclosed code block detected")
	}

	if todos := todoMarkerRE.FindAllString(stripped, -1); len(todos) > 0 {
		errs = append(errs, fmt.Sprintf("%d TODO items still present", len(todos)))
	}

	return errs
}

// fileRefRE matches resource paths mentioned in the body.
var fileRefRE = regexp.MustCompile(`(?:scripts|references|assets)/[\w\-.]+(?:\.py|\.md|\.txt|\.json|\.yaml|\.sh)?`)

// checkResources cross-checks body references against the files on
// disk: referenced files must exist, and files on disk should be
// referenced somewhere in the body.
func checkResources(dir, body string) []string {
	var findings []string

	stripped := analysis.StripCodeBlocks(body)
	for _, ref := range fileRefRE.FindAllString(stripped, -1) {
		if _, err := os.Stat(filepath.Join(dir, ref)); err != nil {
			findings = append(findings, fmt.Sprintf("Referenced file not found: %s", ref))
		}
	}

	for _, category := range skill.ReservedCategories {
		subdir := filepath.Join(dir, string(category))
		entries, err := os.ReadDir(subdir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			relPath := string(category) + "/" + name
			if !strings.Contains(body, relPath) && !strings.Contains(body, name) {
				findings = append(findings, fmt.Sprintf("Potentially orphaned resource: %s", relPath))
			}
		}
	}

	return findings
}
