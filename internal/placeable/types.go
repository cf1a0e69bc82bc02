package placeable

// PartDef is the YAML definition of one rigid part of a template
// (e.g. assets/templates/catalog.yaml). Size is the part's full extent on each
// axis; Offset is its center relative to the template origin. Shape selects
// the mesh ("cube" when empty) and Color is a named tint for rendering.
type PartDef struct {
	Name   string     `yaml:"name,omitempty"`
	Size   [3]float32 `yaml:"size"`
	Offset [3]float32 `yaml:"offset,omitempty"`
	Shape  string     `yaml:"shape,omitempty"`
	Color  string     `yaml:"color,omitempty"`
}

// Template is a named placeable definition: one part for a single rigid body,
// several for a composite group. Anchor optionally names the part whose size
// stands in for the whole group. Templates are read-only once loaded; the
// placement core clones them and never mutates them.
type Template struct {
	Name   string    `yaml:"name"`
	Anchor string    `yaml:"anchor,omitempty"`
	Parts  []PartDef `yaml:"parts"`
}

// Catalog is the set of templates available to place.
type Catalog struct {
	Templates []Template `yaml:"templates"`
}

// Find returns the template with the given name, or nil.
func (c *Catalog) Find(name string) *Template {
	for i := range c.Templates {
		if c.Templates[i].Name == name {
			return &c.Templates[i]
		}
	}
	return nil
}
