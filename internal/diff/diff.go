// Package diff computes structural differences between two versions
// of a skill package: header fields, body text, and resource files.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/eykd/skillcheck/internal/skill"
)

// Field change statuses.
const (
	StatusAdded    = "added"
	StatusRemoved  = "removed"
	StatusModified = "modified"
)

// FieldChange records a header field that differs between versions.
type FieldChange struct {
	Original string `json:"original" yaml:"original"`
	Enhanced string `json:"enhanced" yaml:"enhanced"`
	Status   string `json:"status" yaml:"status"`
}

// BodyDiff is the line-based comparison of the two document bodies.
type BodyDiff struct {
	// Diff is the unified diff text; empty when the bodies match.
	Diff          string `json:"diff,omitempty" yaml:"diff,omitempty"`
	Additions     int    `json:"additions" yaml:"additions"`
	Deletions     int    `json:"deletions" yaml:"deletions"`
	TotalChanges  int    `json:"total_changes" yaml:"total_changes"`
	OriginalLines int    `json:"original_lines" yaml:"original_lines"`
	EnhancedLines int    `json:"enhanced_lines" yaml:"enhanced_lines"`
}

// FileChanges records per-category resource file differences.
type FileChanges struct {
	Added    map[skill.Category][]string `json:"added" yaml:"added"`
	Removed  map[skill.Category][]string `json:"removed" yaml:"removed"`
	Modified map[skill.Category][]string `json:"modified" yaml:"modified"`
}

// Summary condenses a comparison into counts and a single change flag.
type Summary struct {
	FrontmatterFieldsChanged int  `json:"frontmatter_fields_changed" yaml:"frontmatter_fields_changed"`
	BodyLinesAdded           int  `json:"body_lines_added" yaml:"body_lines_added"`
	BodyLinesRemoved         int  `json:"body_lines_removed" yaml:"body_lines_removed"`
	FilesAdded               int  `json:"files_added" yaml:"files_added"`
	FilesRemoved             int  `json:"files_removed" yaml:"files_removed"`
	FilesModified            int  `json:"files_modified" yaml:"files_modified"`
	HasChanges               bool `json:"has_changes" yaml:"has_changes"`
}

// Result is the full comparison of two package versions.
type Result struct {
	OriginalPath       string                 `json:"original_path" yaml:"original_path"`
	EnhancedPath       string                 `json:"enhanced_path" yaml:"enhanced_path"`
	FrontmatterChanges map[string]FieldChange `json:"frontmatter_changes" yaml:"frontmatter_changes"`
	Body               BodyDiff               `json:"body_changes" yaml:"body_changes"`
	Files              FileChanges            `json:"file_changes" yaml:"file_changes"`
	Summary            Summary                `json:"summary" yaml:"summary"`
}

// unifiedContext is the context window of the body diff, in lines.
const unifiedContext = 3

// Compare diffs the packages at originalDir and enhancedDir. It fails
// only when either primary document is missing or unreadable; every
// other finding is part of the result.
func Compare(originalDir, enhancedDir string) (*Result, error) {
	originalDoc, err := skill.ReadDocument(originalDir)
	if err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	enhancedDoc, err := skill.ReadDocument(enhancedDir)
	if err != nil {
		return nil, fmt.Errorf("enhanced: %w", err)
	}

	result := &Result{
		OriginalPath:       originalDir,
		EnhancedPath:       enhancedDir,
		FrontmatterChanges: diffFrontmatter(originalDoc.Header, enhancedDoc.Header),
		Body:               diffBody(originalDoc.Body, enhancedDoc.Body),
		Files:              diffFiles(originalDir, enhancedDir),
	}

	result.Summary = Summary{
		FrontmatterFieldsChanged: len(result.FrontmatterChanges),
		BodyLinesAdded:           result.Body.Additions,
		BodyLinesRemoved:         result.Body.Deletions,
		FilesAdded:               countFiles(result.Files.Added),
		FilesRemoved:             countFiles(result.Files.Removed),
		FilesModified:            countFiles(result.Files.Modified),
	}
	result.Summary.HasChanges = result.Summary.FrontmatterFieldsChanged > 0 ||
		result.Body.TotalChanges > 0 ||
		result.Summary.FilesAdded > 0 ||
		result.Summary.FilesRemoved > 0 ||
		result.Summary.FilesModified > 0

	return result, nil
}

// diffFrontmatter records every header key whose value differs
// between the two versions, over the union of both key sets.
func diffFrontmatter(original, enhanced map[string]string) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	keys := make(map[string]struct{})
	for k := range original {
		keys[k] = struct{}{}
	}
	for k := range enhanced {
		keys[k] = struct{}{}
	}

	for key := range keys {
		origVal, inOrig := original[key]
		enhVal, inEnh := enhanced[key]
		if inOrig == inEnh && origVal == enhVal {
			continue
		}

		status := StatusModified
		switch {
		case origVal != "" && enhVal != "":
		case enhVal != "":
			status = StatusAdded
		default:
			status = StatusRemoved
		}
		changes[key] = FieldChange{Original: origVal, Enhanced: enhVal, Status: status}
	}
	return changes
}

// diffBody produces a unified diff over the raw line sequences,
// blank lines included, with addition/deletion counts derived from
// the diff text. Doubled markers (the diff's own file headers) are
// excluded from the counts.
func diffBody(original, enhanced string) BodyDiff {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(enhanced),
		FromFile: "original",
		ToFile:   "enhanced",
		Context:  unifiedContext,
	})
	if err != nil {
		text = ""
	}

	body := BodyDiff{
		Diff:          text,
		OriginalLines: skill.CountLines(original),
		EnhancedLines: skill.CountLines(enhanced),
	}
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			body.Additions++
		case strings.HasPrefix(line, "-"):
			body.Deletions++
		}
	}
	body.TotalChanges = body.Additions + body.Deletions
	return body
}

// diffFiles set-differences each reserved category and byte-compares
// files present in both versions. Files that cannot be read are
// treated as unmodified; an incomplete comparison beats no comparison.
func diffFiles(originalDir, enhancedDir string) FileChanges {
	changes := FileChanges{
		Added:    make(map[skill.Category][]string),
		Removed:  make(map[skill.Category][]string),
		Modified: make(map[skill.Category][]string),
	}

	originalInv, _ := skill.BuildInventory(originalDir)
	enhancedInv, _ := skill.BuildInventory(enhancedDir)

	for _, category := range skill.ReservedCategories {
		origSet := toSet(originalInv.ByCategory(category))
		enhSet := toSet(enhancedInv.ByCategory(category))

		if added := setDifference(enhSet, origSet); len(added) > 0 {
			changes.Added[category] = added
		}
		if removed := setDifference(origSet, enhSet); len(removed) > 0 {
			changes.Removed[category] = removed
		}

		var modified []string
		for name := range origSet {
			if _, ok := enhSet[name]; !ok {
				continue
			}
			origContent, errO := os.ReadFile(filepath.Join(originalDir, string(category), name))
			enhContent, errE := os.ReadFile(filepath.Join(enhancedDir, string(category), name))
			if errO != nil || errE != nil {
				continue
			}
			if !bytes.Equal(origContent, enhContent) {
				modified = append(modified, name)
			}
		}
		if len(modified) > 0 {
			sort.Strings(modified)
			changes.Modified[category] = modified
		}
	}

	return changes
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// setDifference returns the sorted members of a not present in b.
func setDifference(a, b map[string]struct{}) []string {
	var out []string
	for n := range a {
		if _, ok := b[n]; !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func countFiles(m map[skill.Category][]string) int {
	n := 0
	for _, names := range m {
		n += len(names)
	}
	return n
}
