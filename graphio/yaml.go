package graphio

import (
	"cmp"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/labeled"
)

// yamlGraph is the YAML document layout:
//
//	name: chain
//	inverse: false
//	vertices:
//	  - {id: 0, label: 10, children: [1]}
//	edges:
//	  - {from: 0, to: 1, label: -1}
type yamlGraph[L cmp.Ordered] struct {
	Name     string          `yaml:"name,omitempty"`
	Inverse  bool            `yaml:"inverse,omitempty"`
	Vertices []yamlVertex[L] `yaml:"vertices"`
	Edges    []yamlEdge[L]   `yaml:"edges,omitempty"`
}

type yamlVertex[L cmp.Ordered] struct {
	ID       int   `yaml:"id"`
	Label    L     `yaml:"label"`
	Children []int `yaml:"children,omitempty,flow"`
}

type yamlEdge[L cmp.Ordered] struct {
	From  int `yaml:"from"`
	To    int `yaml:"to"`
	Label L   `yaml:"label"`
}

// ReadYAML decodes one graph from r. Vertex ids must cover 0..n-1 exactly
// once. opts are passed to labeled.New.
func ReadYAML[L cmp.Ordered](r io.Reader, opts ...labeled.GraphOption) (*labeled.Graph[L], error) {
	var doc yamlGraph[L]
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	n := len(doc.Vertices)
	children := make([][]int, n)
	vlabels := make([]L, n)
	seen := make([]bool, n)
	for _, v := range doc.Vertices {
		if v.ID < 0 || v.ID >= n {
			return nil, fmt.Errorf("%w: vertex id %d not in [0,%d)", ErrMalformed, v.ID, n)
		}
		if seen[v.ID] {
			return nil, fmt.Errorf("%w: duplicate vertex id %d", ErrMalformed, v.ID)
		}
		seen[v.ID] = true
		vlabels[v.ID] = v.Label
		children[v.ID] = v.Children
	}
	elabels := make(map[labeled.Edge]L, len(doc.Edges))
	for _, e := range doc.Edges {
		elabels[labeled.Edge{From: e.From, To: e.To}] = e.Label
	}

	gopts := append([]labeled.GraphOption{labeled.WithName(doc.Name)}, opts...)
	if doc.Inverse {
		gopts = append(gopts, labeled.WithInverseAdjacency())
	}
	g, err := labeled.New(children, vlabels, elabels, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return g, nil
}

// WriteYAML encodes g with every edge label spelled out.
func WriteYAML[L cmp.Ordered](w io.Writer, g *labeled.Graph[L]) error {
	doc := yamlGraph[L]{
		Name:     g.Name(),
		Inverse:  g.HasInverseAdjacency(),
		Vertices: make([]yamlVertex[L], g.Size()),
	}
	for v := range doc.Vertices {
		doc.Vertices[v] = yamlVertex[L]{ID: v, Label: g.Label(v), Children: g.Children(v)}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, yamlEdge[L]{From: e.From, To: e.To, Label: g.EdgeLabel(e.From, e.To)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}
