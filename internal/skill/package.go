package skill

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentPath returns the path of the primary document inside dir.
func DocumentPath(dir string) string {
	return filepath.Join(dir, DocumentFilename)
}

// ReadDocument reads and parses the primary document of the package
// at dir. A missing or unreadable document is a fatal input error.
func ReadDocument(dir string) (Document, error) {
	content, err := os.ReadFile(DocumentPath(dir))
	if err != nil {
		return Document{}, fmt.Errorf("%s not found in %s: %w", DocumentFilename, dir, err)
	}
	return ParseDocument(string(content)), nil
}

// LoadPackage materializes a read-only view of the package at dir:
// its parsed primary document plus the categorized resource
// inventory. Nothing is cached across calls.
func LoadPackage(dir string) (*Package, error) {
	doc, err := ReadDocument(dir)
	if err != nil {
		return nil, err
	}
	inv, err := BuildInventory(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	return &Package{Path: dir, Document: doc, Resources: inv}, nil
}
