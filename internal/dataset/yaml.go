package dataset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lsqfit/polyfit"
)

// entry accepts either {x: .., y: ..} or [x, y].
type entry polyfit.Point

func (e *entry) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var pair []float64
		if err := n.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: pair of %d value(s)", n.Line, len(pair))
		}
		e.X, e.Y = pair[0], pair[1]

		return nil
	case yaml.MappingNode:
		var m struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		if m.X == nil || m.Y == nil {
			return fmt.Errorf("line %d: point needs both x and y", n.Line)
		}
		e.X, e.Y = *m.X, *m.Y

		return nil
	default:
		return fmt.Errorf("line %d: point must be a mapping or a pair", n.Line)
	}
}

func decodeYAML(r io.Reader) ([]polyfit.Point, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("dataset: yaml: %w: %v", ErrMalformed, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	var entries []entry
	switch root.Kind {
	case yaml.MappingNode:
		var wrapped struct {
			Points []entry `yaml:"points"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("dataset: yaml: %w: %v", ErrMalformed, err)
		}
		entries = wrapped.Points
	case yaml.SequenceNode:
		if err := root.Decode(&entries); err != nil {
			return nil, fmt.Errorf("dataset: yaml: %w: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("dataset: yaml: top level must be a mapping or a list: %w", ErrMalformed)
	}

	pts := make([]polyfit.Point, len(entries))
	for i, e := range entries {
		pts[i] = polyfit.Point(e)
	}

	return pts, nil
}
