package analysis

import (
	"fmt"
	"strings"

	"github.com/eykd/skillcheck/internal/skill"
)

// ResourceReport summarizes a package's resource inventory.
type ResourceReport struct {
	ScriptsCount    int      `json:"scripts_count" yaml:"scripts_count"`
	ReferencesCount int      `json:"references_count" yaml:"references_count"`
	AssetsCount     int      `json:"assets_count" yaml:"assets_count"`
	OtherCount      int      `json:"other_count" yaml:"other_count"`
	Total           int      `json:"total" yaml:"total"`
	Scripts         []string `json:"scripts" yaml:"scripts"`
	References      []string `json:"references" yaml:"references"`
	Assets          []string `json:"assets" yaml:"assets"`
	Issues          []string `json:"issues" yaml:"issues"`
	Suggestions     []string `json:"suggestions" yaml:"suggestions"`
}

// AnalyzeResources reports inventory counts and flags files sitting
// outside the reserved subdirectories.
func AnalyzeResources(inv skill.ResourceInventory) ResourceReport {
	rep := ResourceReport{
		ScriptsCount:    len(inv.Scripts),
		ReferencesCount: len(inv.References),
		AssetsCount:     len(inv.Assets),
		OtherCount:      len(inv.Other),
		Total:           inv.Total(),
		Scripts:         inv.Scripts,
		References:      inv.References,
		Assets:          inv.Assets,
		Issues:          []string{},
		Suggestions:     []string{},
	}

	if len(inv.Other) > 0 {
		rep.Issues = append(rep.Issues,
			fmt.Sprintf("Files outside standard directories: %s", strings.Join(inv.Other, ", ")))
		rep.Suggestions = append(rep.Suggestions, "Move files to scripts/, references/, or assets/")
	}

	return rep
}
