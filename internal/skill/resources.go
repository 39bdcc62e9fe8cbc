package skill

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuildInventory walks the top level of a package directory and
// classifies every visible entry. The three reserved subdirectories
// contribute their contents wholesale as flat filename lists; any
// other top-level file or directory lands in Other by name. The
// primary document and hidden entries are excluded. Listings are
// sorted so inventories compare stably across filesystems.
func BuildInventory(dir string) (ResourceInventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ResourceInventory{}, err
	}

	var inv ResourceInventory
	for _, entry := range entries {
		name := entry.Name()
		if name == DocumentFilename || strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() {
			inv.Other = append(inv.Other, name)
			continue
		}
		switch ClassifyDir(name) {
		case CategoryScripts:
			inv.Scripts = listFiles(filepath.Join(dir, name))
		case CategoryReferences:
			inv.References = listFiles(filepath.Join(dir, name))
		case CategoryAssets:
			inv.Assets = listFiles(filepath.Join(dir, name))
		default:
			inv.Other = append(inv.Other, name)
		}
	}

	sort.Strings(inv.Other)
	return inv, nil
}

// listFiles returns the sorted visible entry names of dir,
// non-recursive. An unreadable reserved subdirectory contributes an
// empty listing rather than failing the whole inventory.
func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
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
	sort.Strings(names)
	return names
}
