package domain

import "sort"

// PartTypeConfig holds the per-type composition rules.
type PartTypeConfig struct {
	// MultiAssign allows a part of this type to belong to several systems at once.
	MultiAssign bool `json:"multi_assign"`
}

// PartTypes is the fixed table of known part types. It is built once at
// startup and injected into the services that need it.
type PartTypes map[string]PartTypeConfig

// DefaultPartTypes returns the stock hardware catalogue.
func DefaultPartTypes() PartTypes {
	return PartTypes{
		"RAM":       {MultiAssign: false},
		"CPU":       {MultiAssign: false},
		"HDD":       {MultiAssign: false},
		"SSD":       {MultiAssign: false},
		"Monitor":   {MultiAssign: false},
		"Printer":   {MultiAssign: true},
		"Headphone": {MultiAssign: true},
	}
}

// PartTypesFromFlags builds a table from a type -> multiAssign mapping.
// An empty mapping yields the default catalogue.
func PartTypesFromFlags(flags map[string]bool) PartTypes {
	if len(flags) == 0 {
		return DefaultPartTypes()
	}
	t := make(PartTypes, len(flags))
	for name, multi := range flags {
		t[name] = PartTypeConfig{MultiAssign: multi}
	}
	return t
}

// Lookup returns the configuration of a type and whether it exists.
func (t PartTypes) Lookup(partType string) (PartTypeConfig, bool) {
	cfg, ok := t[partType]
	return cfg, ok
}

// MultiAssign reports whether parts of the given type may be shared.
// Unknown types are treated as exclusive.
func (t PartTypes) MultiAssign(partType string) bool {
	return t[partType].MultiAssign
}

// MultiAssignTypes lists the shareable type names in sorted order.
func (t PartTypes) MultiAssignTypes() []string {
	var out []string
	for name, cfg := range t {
		if cfg.MultiAssign {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Names lists every configured type in sorted order.
func (t PartTypes) Names() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
