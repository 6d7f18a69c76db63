package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	// ErrDocumentNotFound is returned when no document has the
	// requested slug.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDuplicateSlug is returned when the catalog file lists the
	// same slug twice.
	ErrDuplicateSlug = errors.New("duplicate document slug")

	// ErrInvalidDocument is returned when a catalog entry is missing a
	// required field.
	ErrInvalidDocument = errors.New("invalid catalog document")
)

// Document describes one pattern document served by the API.
type Document struct {
	Slug      string `yaml:"slug"      json:"slug"`
	Title     string `yaml:"title"     json:"title"`
	Principle string `yaml:"principle" json:"principle"`
	Summary   string `yaml:"summary"   json:"summary"`
	Path      string `yaml:"path"      json:"path"`
}

// validate checks the fields every catalog entry must carry.
// Principle is optional: the factory-method document has none.
func (d Document) validate() error {
	if d.Slug == "" {
		return fmt.Errorf("%w: missing slug", ErrInvalidDocument)
	}
	if d.Title == "" {
		return fmt.Errorf("%w: %q missing title", ErrInvalidDocument, d.Slug)
	}
	if d.Summary == "" {
		return fmt.Errorf("%w: %q missing summary", ErrInvalidDocument, d.Slug)
	}
	if d.Path == "" {
		return fmt.Errorf("%w: %q missing path", ErrInvalidDocument, d.Slug)
	}
	return nil
}

// catalogFile is the on-disk YAML structure.
type catalogFile struct {
	Documents []Document `yaml:"documents"`
}

// Catalog is the loaded, validated document list. It is immutable
// after Load, so it is safe for concurrent reads.
type Catalog struct {
	documents []Document
	bySlug    map[string]Document
}

// Load reads and validates the catalog YAML at the given path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	c := &Catalog{
		documents: file.Documents,
		bySlug:    make(map[string]Document, len(file.Documents)),
	}
	for _, doc := range file.Documents {
		if err := doc.validate(); err != nil {
			return nil, err
		}
		if _, exists := c.bySlug[doc.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, doc.Slug)
		}
		c.bySlug[doc.Slug] = doc
	}

	return c, nil
}

// Documents returns every document in catalog order.
func (c *Catalog) Documents() []Document {
	out := make([]Document, len(c.documents))
	copy(out, c.documents)
	return out
}

// Get returns the document with the given slug.
// Returns ErrDocumentNotFound if no document has it.
func (c *Catalog) Get(slug string) (Document, error) {
	doc, ok := c.bySlug[slug]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrDocumentNotFound, slug)
	}
	return doc, nil
}

// Len returns the number of documents in the catalog.
func (c *Catalog) Len() int { return len(c.documents) }
