// Package catalog defines the immutable inputs to the placement search:
// rack archetypes, the racks generated from them, and floor layouts with
// their fixed obstacles and anchor points.
//
// A [Catalog] is static configuration data, not global state. The default
// catalog mirrors common dark-store archetypes; tests and scenario files
// can substitute their own.
package catalog

import (
	"fmt"

	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/geometry"
)

// Kind identifies a rack archetype. The set is closed: validity and
// scoring logic switch exhaustively over it.
type Kind int

const (
	KindStandard Kind = iota
	KindHighDensity
	KindFreezer
	KindBulk
)

// kindNames holds the wire names used in ids, scenario files, and exports.
var kindNames = [...]string{
	KindStandard:    "standard",
	KindHighDensity: "high_density",
	KindFreezer:     "freezer",
	KindBulk:        "bulk",
}

// String returns the wire name of the kind, e.g. "high_density".
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns all rack kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindStandard, KindHighDensity, KindFreezer, KindBulk}
}

// ParseKind resolves a wire name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidKind, "unknown rack kind: %q", s)
}

// Spec is the archetype definition for one rack kind.
type Spec struct {
	Dims     geometry.Dimensions
	Capacity int // storage units
}

// Catalog maps rack kinds to their archetype specs.
type Catalog struct {
	specs map[Kind]Spec
}

// New builds a catalog from the given spec table. The map is copied so
// later mutation of the argument does not leak into the catalog.
func New(specs map[Kind]Spec) Catalog {
	cp := make(map[Kind]Spec, len(specs))
	for k, s := range specs {
		cp[k] = s
	}
	return Catalog{specs: cp}
}

// Default returns the reference catalog: Standard 1.2x2.4m / 200 units,
// High-Density 0.8x3.0m / 300, Freezer 1.5x2.0m / 150, Bulk 2.0x1.5m / 100.
func Default() Catalog {
	return New(map[Kind]Spec{
		KindStandard:    {Dims: geometry.Dimensions{Width: 1.2, Height: 2.4}, Capacity: 200},
		KindHighDensity: {Dims: geometry.Dimensions{Width: 0.8, Height: 3.0}, Capacity: 300},
		KindFreezer:     {Dims: geometry.Dimensions{Width: 1.5, Height: 2.0}, Capacity: 150},
		KindBulk:        {Dims: geometry.Dimensions{Width: 2.0, Height: 1.5}, Capacity: 100},
	})
}

// Spec returns the archetype for the given kind.
func (c Catalog) Spec(k Kind) (Spec, bool) {
	s, ok := c.specs[k]
	return s, ok
}

// Rack is an unplaced storage unit descriptor. Placement is a separate
// record produced by the search engine; a Rack by itself carries no
// position, so "unplaced" is visible in the type rather than a nil check.
type Rack struct {
	ID       string
	Kind     Kind
	Dims     geometry.Dimensions
	Capacity int
}

// FootprintArea returns the floor area the rack occupies.
func (r Rack) FootprintArea() float64 { return r.Dims.Area() }

// NewRacks generates count racks of the given kind from the catalog's
// archetype table. Ids are formatted as "<kind>_<n>" with 1-based n.
func (c Catalog) NewRacks(count int, kind Kind) ([]Rack, error) {
	spec, ok := c.specs[kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidKind, "no spec for rack kind %s", kind)
	}
	racks := make([]Rack, 0, count)
	for i := 0; i < count; i++ {
		racks = append(racks, Rack{
			ID:       fmt.Sprintf("%s_%d", kind, i+1),
			Kind:     kind,
			Dims:     spec.Dims,
			Capacity: spec.Capacity,
		})
	}
	return racks, nil
}
