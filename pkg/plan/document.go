package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/geometry"
)

// Document is the serialization format for a scored solution together
// with the layout it was computed against. It is what the JSON sink
// writes, what the score/render commands read back, and what the Mongo
// store persists.
type Document struct {
	Layout   LayoutDoc   `json:"layout" bson:"layout"`
	Solution SolutionDoc `json:"solution" bson:"solution"`
}

// LayoutDoc mirrors catalog.Layout.
type LayoutDoc struct {
	Dimensions  DimensionsDoc   `json:"dimensions" bson:"dimensions"`
	Entrance    PositionDoc     `json:"entrance" bson:"entrance"`
	LoadingDock PositionDoc     `json:"loading_dock" bson:"loading_dock"`
	Constraints []ConstraintDoc `json:"constraints" bson:"constraints"`
}

// SolutionDoc mirrors Solution.
type SolutionDoc struct {
	Score            float64   `json:"score" bson:"score"`
	LayoutEfficiency float64   `json:"layout_efficiency" bson:"layout_efficiency"`
	Accessibility    float64   `json:"accessibility_score" bson:"accessibility_score"`
	Workflow         float64   `json:"workflow_score" bson:"workflow_score"`
	Metrics          Metrics   `json:"metrics" bson:"metrics"`
	Racks            []RackDoc `json:"racks" bson:"racks"`
}

// RackDoc is one rack in a document. Position is nil for racks that were
// listed but never placed (possible in hand-edited documents).
type RackDoc struct {
	ID         string        `json:"id" bson:"id"`
	Kind       string        `json:"type" bson:"type"`
	Capacity   int           `json:"capacity" bson:"capacity"`
	Dimensions DimensionsDoc `json:"dimensions" bson:"dimensions"`
	Position   *PositionDoc  `json:"position" bson:"position"`
}

// DimensionsDoc mirrors geometry.Dimensions.
type DimensionsDoc struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// PositionDoc mirrors geometry.Position. Rotation round-trips even though
// no geometry check consumes it.
type PositionDoc struct {
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Rotation float64 `json:"rotation,omitempty" bson:"rotation,omitempty"`
}

// NewDocument assembles a Document from a solution and its layout.
func NewDocument(sol Solution, layout catalog.Layout) Document {
	constraints := make([]ConstraintDoc, len(layout.Constraints))
	for i, c := range layout.Constraints {
		constraints[i] = ConstraintDoc{
			Name:       c.Name,
			Kind:       c.Kind.String(),
			Position:   PositionDoc{X: c.Pos.X, Y: c.Pos.Y, Rotation: c.Pos.Rotation},
			Dimensions: DimensionsDoc{Width: c.Dims.Width, Height: c.Dims.Height},
		}
	}

	racks := make([]RackDoc, len(sol.Placements))
	for i, p := range sol.Placements {
		pos := PositionDoc{X: p.Pos.X, Y: p.Pos.Y, Rotation: p.Pos.Rotation}
		racks[i] = RackDoc{
			ID:         p.Rack.ID,
			Kind:       p.Rack.Kind.String(),
			Capacity:   p.Rack.Capacity,
			Dimensions: DimensionsDoc{Width: p.Rack.Dims.Width, Height: p.Rack.Dims.Height},
			Position:   &pos,
		}
	}

	return Document{
		Layout: LayoutDoc{
			Dimensions:  DimensionsDoc{Width: layout.Floor.Width, Height: layout.Floor.Height},
			Entrance:    PositionDoc{X: layout.Entrance.X, Y: layout.Entrance.Y, Rotation: layout.Entrance.Rotation},
			LoadingDock: PositionDoc{X: layout.Dock.X, Y: layout.Dock.Y, Rotation: layout.Dock.Rotation},
			Constraints: constraints,
		},
		Solution: SolutionDoc{
			Score:            sol.Score,
			LayoutEfficiency: sol.LayoutEfficiency,
			Accessibility:    sol.Accessibility,
			Workflow:         sol.Workflow,
			Metrics:          sol.Metrics,
			Racks:            racks,
		},
	}
}

// ConstraintDoc mirrors catalog.Constraint.
type ConstraintDoc struct {
	Name       string        `json:"name" bson:"name"`
	Kind       string        `json:"type" bson:"type"`
	Position   PositionDoc   `json:"position" bson:"position"`
	Dimensions DimensionsDoc `json:"dimensions" bson:"dimensions"`
}

// ToLayout reconstructs the catalog.Layout described by the document.
func (d Document) ToLayout() (catalog.Layout, error) {
	constraints := make([]catalog.Constraint, len(d.Layout.Constraints))
	for i, c := range d.Layout.Constraints {
		kind, err := catalog.ParseConstraintKind(c.Kind)
		if err != nil {
			return catalog.Layout{}, err
		}
		constraints[i] = catalog.Constraint{
			Name: c.Name,
			Kind: kind,
			Pos:  geometry.Position{X: c.Position.X, Y: c.Position.Y, Rotation: c.Position.Rotation},
			Dims: geometry.Dimensions{Width: c.Dimensions.Width, Height: c.Dimensions.Height},
		}
	}
	layout := catalog.Layout{
		Floor:       geometry.Dimensions{Width: d.Layout.Dimensions.Width, Height: d.Layout.Dimensions.Height},
		Constraints: constraints,
		Entrance:    geometry.Position{X: d.Layout.Entrance.X, Y: d.Layout.Entrance.Y, Rotation: d.Layout.Entrance.Rotation},
		Dock:        geometry.Position{X: d.Layout.LoadingDock.X, Y: d.Layout.LoadingDock.Y, Rotation: d.Layout.LoadingDock.Rotation},
	}
	return layout, layout.Validate()
}

// Placements reconstructs the placed racks described by the document.
// Racks without a position are skipped; they were never placed.
func (d Document) Placements() ([]Placement, error) {
	placements := make([]Placement, 0, len(d.Solution.Racks))
	for _, r := range d.Solution.Racks {
		if r.Position == nil {
			continue
		}
		kind, err := catalog.ParseKind(r.Kind)
		if err != nil {
			return nil, err
		}
		placements = append(placements, Placement{
			Rack: catalog.Rack{
				ID:       r.ID,
				Kind:     kind,
				Dims:     geometry.Dimensions{Width: r.Dimensions.Width, Height: r.Dimensions.Height},
				Capacity: r.Capacity,
			},
			Pos: geometry.Position{X: r.Position.X, Y: r.Position.Y, Rotation: r.Position.Rotation},
		})
	}
	return placements, nil
}

// ToSolution reconstructs the scored solution described by the document.
func (d Document) ToSolution() (Solution, error) {
	placements, err := d.Placements()
	if err != nil {
		return Solution{}, err
	}
	return Solution{
		Placements:       placements,
		Score:            d.Solution.Score,
		LayoutEfficiency: d.Solution.LayoutEfficiency,
		Accessibility:    d.Solution.Accessibility,
		Workflow:         d.Solution.Workflow,
		Metrics:          d.Solution.Metrics,
	}, nil
}

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document and checks
// that the layout block is present.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidSolution, err, "unmarshal solution document")
	}
	if d.Layout.Dimensions.Width == 0 && d.Layout.Dimensions.Height == 0 {
		return Document{}, errors.New(errors.ErrCodeInvalidSolution, "solution document missing layout block")
	}
	return d, nil
}

// WriteDocumentFile writes a Document to a JSON file.
func WriteDocumentFile(d Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDocumentFile reads a Document from a JSON file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
