// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// Document is the serialized form of a graph.
type Document struct {
	// Directed defaults to true when omitted.
	Directed      *bool     `yaml:"directed,omitempty" json:"directed,omitempty"`
	ImplicitNodes bool      `yaml:"implicit_nodes,omitempty" json:"implicit_nodes,omitempty"`
	Nodes         []string  `yaml:"nodes" json:"nodes"`
	Edges         []EdgeDoc `yaml:"edges" json:"edges"`
}

// EdgeDoc is one weighted edge of a Document.
type EdgeDoc struct {
	From   string   `yaml:"from" json:"from"`
	To     string   `yaml:"to" json:"to"`
	Weight *float64 `yaml:"weight" json:"weight"`
}

// IsDirected resolves the Directed default.
func (d *Document) IsDirected() bool {
	return d.Directed == nil || *d.Directed
}

// Validate reports every structural problem of d at once.
// The returned error is nil or a *multierror.Error.
func (d *Document) Validate() error {
	var merr *multierror.Error

	declared := make(map[string]struct{}, len(d.Nodes))
	for i, id := range d.Nodes {
		if id == "" {
			merr = multierror.Append(merr, fmt.Errorf("%w: nodes[%d]: empty id", core.ErrMalformedGraph, i))
			continue
		}
		if _, dup := declared[id]; dup {
			merr = multierror.Append(merr, fmt.Errorf("%w: nodes[%d]: duplicate id %q", core.ErrMalformedGraph, i, id))
			continue
		}
		declared[id] = struct{}{}
	}

	for i, e := range d.Edges {
		for _, end := range [2]struct{ field, id string }{{"from", e.From}, {"to", e.To}} {
			switch {
			case end.id == "":
				merr = multierror.Append(merr, fmt.Errorf("%w: edges[%d].%s: empty id", core.ErrMalformedGraph, i, end.field))
			case !d.ImplicitNodes:
				if _, ok := declared[end.id]; !ok {
					merr = multierror.Append(merr, fmt.Errorf("%w: edges[%d].%s: unknown node %q", core.ErrMalformedGraph, i, end.field, end.id))
				}
			}
		}
		switch {
		case e.Weight == nil:
			merr = multierror.Append(merr, fmt.Errorf("%w: edges[%d]: missing weight", core.ErrMalformedGraph, i))
		case !core.ValidWeight(*e.Weight):
			merr = multierror.Append(merr, fmt.Errorf("%w: edges[%d]: %s→%s weight=%g", core.ErrInvalidWeight, i, e.From, e.To, *e.Weight))
		}
	}

	return merr.ErrorOrNil()
}

// Graph validates d and builds the corresponding core.Graph. Nodes are
// added in document order, then edges in document order.
func (d *Document) Graph() (*core.Graph[string], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	opts := []core.GraphOption{core.WithCapacity(len(d.Nodes))}
	if !d.IsDirected() {
		opts = append(opts, core.WithUndirected())
	}
	g := core.NewGraph[string](opts...)
	for _, id := range d.Nodes {
		g.AddNode(id)
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, *e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromGraph converts g into a Document. Undirected graphs emit each edge
// once even though the core stores both directions.
func FromGraph(g *core.Graph[string]) *Document {
	directed := g.Directed()
	doc := &Document{
		Directed: &directed,
		Nodes:    g.Nodes(),
		Edges:    make([]EdgeDoc, 0, g.EdgeCount()),
	}

	type arc struct {
		from, to string
		w        float64
	}
	mirrors := make(map[arc]int)

	for _, u := range doc.Nodes {
		for _, e := range g.OutEdges(u) {
			if !directed && u != e.To {
				back := arc{u, e.To, e.Weight}
				if mirrors[back] > 0 {
					mirrors[back]--
					continue
				}
				mirrors[arc{e.To, u, e.Weight}]++
			}
			w := e.Weight
			doc.Edges = append(doc.Edges, EdgeDoc{From: u, To: e.To, Weight: &w})
		}
	}

	return doc
}

// Decode reads one graph document from r and builds the graph.
func Decode(r io.Reader, format Format) (*core.Graph[string], error) {
	var doc Document
	if err := decodeInto(r, format, &doc); err != nil {
		return nil, err
	}

	return doc.Graph()
}

// Load reads the graph document at path, choosing the format by extension.
func Load(path string) (*core.Graph[string], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open graph: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return g, nil
}

// Encode writes g to w as a graph document.
func Encode(w io.Writer, g *core.Graph[string], format Format) error {
	return encodeFrom(w, format, FromGraph(g))
}

// decodeInto decodes a single document, rejecting unknown fields.
// An empty YAML stream decodes to the zero document.
func decodeInto(r io.Reader, format Format, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("graphio: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("graphio: decode json: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

func encodeFrom(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
