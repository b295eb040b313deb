package exercise

// Info describes a single exercise. Name doubles as the bin target name and
// the file stem; Dir is the optional sub-directory under exercises/.
type Info struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	Dir  string `toml:"dir,omitempty" yaml:"dir,omitempty" json:"dir,omitempty"`
}

// HasDir reports whether the exercise lives in a sub-directory.
func (i Info) HasDir() bool {
	return i.Dir != ""
}

// Catalog is the ordered list of exercises. Keys other than exercises
// (welcome messages, hints, test flags) are ignored on load.
type Catalog struct {
	Exercises []Info `toml:"exercises" yaml:"exercises" json:"exercises"`
}

// Names returns the exercise names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Exercises))
	for i, e := range c.Exercises {
		names[i] = e.Name
	}
	return names
}
