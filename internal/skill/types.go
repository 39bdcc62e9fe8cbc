// Package skill defines the document model for skill packages: a
// SKILL.md primary document (delimited key/value header plus markdown
// body) and the categorized resource files that live beside it.
package skill

// DocumentFilename is the fixed name of a package's primary document.
const DocumentFilename = "SKILL.md"

// Document is a parsed primary document. Header holds the key/value
// pairs from the delimited header block; Body is everything after it.
// A Document is constructed fresh on every read and never mutated.
type Document struct {
	// Header maps each header key to its trimmed value. Empty when the
	// raw text lacks the delimiter structure.
	Header map[string]string
	// Body is the document text after the header block, trimmed.
	Body string
}

// Name returns the header name field, or "" when absent.
func (d Document) Name() string { return d.Header["name"] }

// Description returns the header description field, or "" when absent.
func (d Document) Description() string { return d.Header["description"] }

// Category classifies a resource file by the reserved subdirectory
// that contains it.
type Category string

const (
	// CategoryScripts holds executable helpers under scripts/.
	CategoryScripts Category = "scripts"
	// CategoryReferences holds reference material under references/.
	CategoryReferences Category = "references"
	// CategoryAssets holds static assets under assets/.
	CategoryAssets Category = "assets"
	// CategoryOther holds anything outside the reserved subdirectories,
	// excluding the primary document itself.
	CategoryOther Category = "other"
)

// ReservedCategories lists the three reserved resource categories in
// their conventional order.
var ReservedCategories = []Category{CategoryScripts, CategoryReferences, CategoryAssets}

// ClassifyDir maps a top-level directory name to its resource
// category; directories with unreserved names classify as other.
func ClassifyDir(name string) Category {
	switch name {
	case "scripts":
		return CategoryScripts
	case "references":
		return CategoryReferences
	case "assets":
		return CategoryAssets
	default:
		return CategoryOther
	}
}

// ResourceInventory is the categorized listing of a package's
// auxiliary files. Each filename appears in exactly one category.
type ResourceInventory struct {
	Scripts    []string
	References []string
	Assets     []string
	Other      []string
}

// ByCategory returns the filenames classified under c.
func (inv ResourceInventory) ByCategory(c Category) []string {
	switch c {
	case CategoryScripts:
		return inv.Scripts
	case CategoryReferences:
		return inv.References
	case CategoryAssets:
		return inv.Assets
	default:
		return inv.Other
	}
}

// Total returns the number of classified files across all categories.
func (inv ResourceInventory) Total() int {
	return len(inv.Scripts) + len(inv.References) + len(inv.Assets) + len(inv.Other)
}

// Package is a read-only view of a skill package directory,
// materialized per invocation and never cached.
type Package struct {
	// Path is the package directory.
	Path string
	// Document is the parsed primary document.
	Document Document
	// Resources is the categorized file inventory.
	Resources ResourceInventory
}
