package diff_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/skillcheck/internal/diff"
	"github.com/eykd/skillcheck/internal/skill"
)

// writePackage lays out a skill package under a fresh temp dir.
func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

const baseDocument = "---\nname: demo\ndescription: Use when you analyze things carefully and often.\n---\n" +
	"# Demo\n\n## Usage\n\nStep one.\nStep two.\n"

func TestCompare_IdenticalPackages(t *testing.T) {
	files := map[string]string{
		"SKILL.md":          baseDocument,
		"scripts/run.py":    "print('hi')",
		"references/api.md": "# API",
	}
	original := writePackage(t, files)
	enhanced := writePackage(t, files)

	result, err := diff.Compare(original, enhanced)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if result.Summary.HasChanges {
		t.Errorf("HasChanges = true for identical packages: %+v", result.Summary)
	}
	if len(result.FrontmatterChanges) != 0 {
		t.Errorf("FrontmatterChanges = %v, want empty", result.FrontmatterChanges)
	}
	if result.Body.Additions != 0 || result.Body.Deletions != 0 {
		t.Errorf("body counts = +%d/-%d, want zero", result.Body.Additions, result.Body.Deletions)
	}
	if result.Body.Diff != "" {
		t.Errorf("Diff = %q, want empty", result.Body.Diff)
	}
	if len(result.Files.Added)+len(result.Files.Removed)+len(result.Files.Modified) != 0 {
		t.Errorf("file changes = %+v, want none", result.Files)
	}
}

func TestCompare_FrontmatterStatuses(t *testing.T) {
	original := writePackage(t, map[string]string{
		"SKILL.md": "---\nname: demo\ndescription: Old words here\nlicense: MIT\n---\nbody\n",
	})
	enhanced := writePackage(t, map[string]string{
		"SKILL.md": "---\nname: demo\ndescription: New words here\nversion: 2\n---\nbody\n",
	})

	result, err := diff.Compare(original, enhanced)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	tests := []struct {
		key        string
		wantStatus string
	}{
		{key: "description", wantStatus: diff.StatusModified},
		{key: "license", wantStatus: diff.StatusRemoved},
		{key: "version", wantStatus: diff.StatusAdded},
	}
	for _, tt := range tests {
		change, ok := result.FrontmatterChanges[tt.key]
		if !ok {
			t.Errorf("missing change for %q", tt.key)
			continue
		}
		if change.Status != tt.wantStatus {
			t.Errorf("%s status = %q, want %q", tt.key, change.Status, tt.wantStatus)
		}
	}
	if _, ok := result.FrontmatterChanges["name"]; ok {
		t.Error("unchanged field reported as changed")
	}
	if result.Summary.FrontmatterFieldsChanged != 3 {
		t.Errorf("FrontmatterFieldsChanged = %d, want 3", result.Summary.FrontmatterFieldsChanged)
	}
}

func TestCompare_BodyCounts(t *testing.T) {
	original := writePackage(t, map[string]string{
		"SKILL.md": "---\nname: demo\n---\n# Demo\n\nline one\nline two\n",
	})
	enhanced := writePackage(t, map[string]string{
		"SKILL.md": "---\nname: demo\n---\n# Demo\n\nline one\nline two\nline three\n",
	})

	result, err := diff.Compare(original, enhanced)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if result.Body.Additions != 1 || result.Body.Deletions != 0 {
		t.Errorf("body counts = +%d/-%d, want +1/-0", result.Body.Additions, result.Body.Deletions)
	}
	if !strings.Contains(result.Body.Diff, "+line three") {
		t.Errorf("Diff = %q, want to contain added line", result.Body.Diff)
	}
	if result.Body.OriginalLines != 3 || result.Body.EnhancedLines != 4 {
		t.Errorf("line counts = %d/%d, want 3/4",
			result.Body.OriginalLines, result.Body.EnhancedLines)
	}
	if !result.Summary.HasChanges {
		t.Error("HasChanges = false, want true")
	}
}

func TestCompare_FileChanges(t *testing.T) {
	original := writePackage(t, map[string]string{
		"SKILL.md":          baseDocument,
		"scripts/run.py":    "print('v1')",
		"scripts/old.py":    "gone soon",
		"references/api.md": "# API",
	})
	enhanced := writePackage(t, map[string]string{
		"SKILL.md":          baseDocument,
		"scripts/run.py":    "print('v2')",
		"references/api.md": "# API",
		"assets/logo.png":   "png",
	})

	result, err := diff.Compare(original, enhanced)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if got := result.Files.Added[skill.CategoryAssets]; len(got) != 1 || got[0] != "logo.png" {
		t.Errorf("Added[assets] = %v, want [logo.png]", got)
	}
	if got := result.Files.Removed[skill.CategoryScripts]; len(got) != 1 || got[0] != "old.py" {
		t.Errorf("Removed[scripts] = %v, want [old.py]", got)
	}
	if got := result.Files.Modified[skill.CategoryScripts]; len(got) != 1 || got[0] != "run.py" {
		t.Errorf("Modified[scripts] = %v, want [run.py]", got)
	}
	if _, ok := result.Files.Modified[skill.CategoryReferences]; ok {
		t.Error("identical reference reported as modified")
	}

	summary := result.Summary
	if summary.FilesAdded != 1 || summary.FilesRemoved != 1 || summary.FilesModified != 1 {
		t.Errorf("summary = %+v, want 1/1/1 file changes", summary)
	}
}

func TestCompare_MissingDocuments(t *testing.T) {
	valid := writePackage(t, map[string]string{"SKILL.md": baseDocument})
	empty := t.TempDir()

	if _, err := diff.Compare(empty, valid); err == nil {
		t.Error("expected error for missing original document")
	}
	if _, err := diff.Compare(valid, empty); err == nil {
		t.Error("expected error for missing enhanced document")
	}
}

func TestCompare_HeaderOnlyChangeSetsHasChanges(t *testing.T) {
	original := writePackage(t, map[string]string{
		"SKILL.md": "---\nname: demo\n---\nbody\n",
	})
	enhanced := writePackage(t, map[string]string{
		"SKILL.md": "---\nname: renamed\n---\nbody\n",
	})

	result, err := diff.Compare(original, enhanced)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !result.Summary.HasChanges {
		t.Error("HasChanges = false, want true for header-only change")
	}
	if result.Body.TotalChanges != 0 {
		t.Errorf("TotalChanges = %d, want 0", result.Body.TotalChanges)
	}
}
