package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/eykd/skillcheck/internal/policy"
	"github.com/eykd/skillcheck/internal/skill"
)

// h2TitleRE captures level-2 section titles, one per line.
var h2TitleRE = regexp.MustCompile(`(?m)^##\s+(.+)$`)

// CheckRegression compares the current package against its original
// version and reports content loss: a changed name, a large reduction
// in body lines, removed sections, and removed resource files.
// currentDoc is the already-parsed document of the package at
// currentDir.
func CheckRegression(currentDoc skill.Document, currentDir, originalDir string, pol policy.Policy) []string {
	originalDoc, err := skill.ReadDocument(originalDir)
	if err != nil {
		return []string{fmt.Sprintf("Original %s not found: %s",
			skill.DocumentFilename, skill.DocumentPath(originalDir))}
	}

	var findings []string

	if currentDoc.Name() != originalDoc.Name() {
		findings = append(findings, fmt.Sprintf("Skill name changed: '%s' → '%s'",
			originalDoc.Name(), currentDoc.Name()))
	}

	currentLines := skill.CountLines(currentDoc.Body)
	originalLines := skill.CountLines(originalDoc.Body)
	if originalLines > 0 {
		reduction := float64(originalLines-currentLines) / float64(originalLines)
		if reduction > pol.Validation.MaxContentReduction {
			findings = append(findings, fmt.Sprintf(
				"Significant content reduction: %d → %d lines (%.1f%% reduction)",
				originalLines, currentLines, reduction*100))
		}
	}

	if removed := removedSections(originalDoc.Body, currentDoc.Body); len(removed) > 0 {
		findings = append(findings, fmt.Sprintf("Sections removed: %s", strings.Join(removed, ", ")))
	}

	for _, category := range skill.ReservedCategories {
		removed := removedFiles(originalDir, currentDir, string(category))
		if len(removed) > 0 {
			findings = append(findings, fmt.Sprintf("Files removed from %s/: %s",
				category, strings.Join(removed, ", ")))
		}
	}

	return findings
}

// removedSections returns the sorted H2 titles present in original
// but absent from current. Duplicate headings collapse; order is
// irrelevant to the comparison.
func removedSections(original, current string) []string {
	currentSet := make(map[string]struct{})
	for _, m := range h2TitleRE.FindAllStringSubmatch(current, -1) {
		currentSet[m[1]] = struct{}{}
	}

	seen := make(map[string]struct{})
	var removed []string
	for _, m := range h2TitleRE.FindAllStringSubmatch(original, -1) {
		title := m[1]
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		if _, ok := currentSet[title]; !ok {
			removed = append(removed, title)
		}
	}
	sort.Strings(removed)
	return removed
}

// removedFiles returns the sorted filenames present in the original
// subdirectory but absent from the current one. A missing current
// subdirectory counts as empty.
func removedFiles(originalDir, currentDir, subdir string) []string {
	originalNames := listSubdir(originalDir, subdir)
	if len(originalNames) == 0 {
		return nil
	}
	currentSet := make(map[string]struct{})
	for _, n := range listSubdir(currentDir, subdir) {
		currentSet[n] = struct{}{}
	}

	var removed []string
	for _, n := range originalNames {
		if _, ok := currentSet[n]; !ok {
			removed = append(removed, n)
		}
	}
	sort.Strings(removed)
	return removed
}

func listSubdir(dir, subdir string) []string {
	entries, err := os.ReadDir(filepath.Join(dir, subdir))
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}
