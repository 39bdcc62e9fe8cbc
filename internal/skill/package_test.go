package skill_test

import (
	"path/filepath"
	"testing"

	"github.com/eykd/skillcheck/internal/skill"
)

func TestLoadPackage(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"SKILL.md":       "---\nname: demo\ndescription: A demo skill\n---\n# Demo\n\ncontent",
		"scripts/run.py": "print('hi')",
	})

	pkg, err := skill.LoadPackage(dir)
	if err != nil {
		t.Fatalf("LoadPackage() error = %v", err)
	}
	if pkg.Path != dir {
		t.Errorf("Path = %q, want %q", pkg.Path, dir)
	}
	if got := pkg.Document.Name(); got != "demo" {
		t.Errorf("Document.Name() = %q, want %q", got, "demo")
	}
	if len(pkg.Resources.Scripts) != 1 {
		t.Errorf("Scripts = %v, want one entry", pkg.Resources.Scripts)
	}
}

func TestLoadPackage_MissingDocument(t *testing.T) {
	if _, err := skill.LoadPackage(t.TempDir()); err == nil {
		t.Error("expected error when SKILL.md is absent")
	}
}

func TestLoadPackage_MissingDirectory(t *testing.T) {
	if _, err := skill.LoadPackage(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing package directory")
	}
}

func TestDocumentPath(t *testing.T) {
	if got := skill.DocumentPath("pkg"); got != filepath.Join("pkg", "SKILL.md") {
		t.Errorf("DocumentPath(pkg) = %q", got)
	}
}
