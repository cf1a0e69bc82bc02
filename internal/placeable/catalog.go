package placeable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogPath is the default template catalog location, relative to the
// process working directory.
const CatalogPath = "assets/templates/catalog.yaml"

// LoadCatalog reads a YAML template catalog from path. A missing file is not
// an error: the built-in default catalog is returned so the editor always has
// something to place.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(c.Templates) == 0 {
		return DefaultCatalog(), nil
	}
	return &c, nil
}

// DefaultCatalog returns the built-in templates: a single block, a composite
// watchtower with a designated anchor, and a marker with no declared sizes
// (exercises the fallback extent).
func DefaultCatalog() *Catalog {
	return &Catalog{
		Templates: []Template{
			{
				Name:  "block",
				Parts: []PartDef{{Name: "body", Size: [3]float32{4, 4, 4}, Color: "gray"}},
			},
			{
				Name:   "watchtower",
				Anchor: "base",
				Parts: []PartDef{
					{Name: "base", Size: [3]float32{4, 6, 4}, Color: "brown"},
					{Name: "roof", Size: [3]float32{5, 1, 5}, Offset: [3]float32{0, 3.5, 0}, Color: "red"},
				},
			},
			{
				Name:  "marker",
				Parts: []PartDef{{Name: "flag"}},
			},
		},
	}
}
