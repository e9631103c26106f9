// Package names loads and freezes the non-subscripting set used by the
// identifier normalization rule: the union of externally supplied
// auto-operator/auto-command names, a fixed list of fragile built-ins,
// and a handful of reserved identifiers. It is injected into the parser
// as a constructor argument rather than read from a global registry.
package names

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fragile is the small fixed set of built-ins exempted by name: operators
// whose names would be mangled by the implicit-subscript rule in a way
// that breaks the calculator's built-in rendering.
var fragile = []string{
	"polyGamma", "argmin", "argmax", "uniquePerm", "rtxsqpone", "rtxsqmone", "hypot",
}

// reserved is the fixed list of identifiers that are never implicitly
// subscripted regardless of what the external tables say.
var reserved = []string{"index", "dt", "else", "true", "false"}

// Set is a frozen, read-only collection of identifier names. The zero value
// is an empty set.
type Set struct {
	members map[string]struct{}
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	if s.members == nil {
		return false
	}
	_, ok := s.members[name]
	return ok
}

// newSet builds a Set as the union of the given string slices.
func newSet(lists ...[]string) Set {
	m := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			m[name] = struct{}{}
		}
	}
	return Set{members: m}
}

// document is the on-disk shape consumed by Load: a flat list of
// auto-operator names and a flat list of auto-command names, the two
// externally supplied tables a names configuration provides.
type document struct {
	Operators []string `yaml:"operators"`
	Commands  []string `yaml:"commands"`
}

// Default returns the non-subscripting set built from only the fixed
// fragile-names list and the reserved identifiers, with no externally
// supplied operator/command names. It is what callers get when no names
// table is configured.
func Default() Set {
	return newSet(fragile, reserved)
}

// Load reads a YAML document of auto-operator and auto-command names from
// path and unions them with the fixed fragile/reserved lists into a single
// frozen Set, computed once per parse.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("names: reading %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("names: parsing %s: %w", path, err)
	}
	return newSet(doc.Operators, doc.Commands, fragile, reserved), nil
}
