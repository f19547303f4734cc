// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network builds weighted co-authorship graphs from author records.
package network

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// Edge is a weighted link between two authors, From sorting before To.
type Edge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Network is an undirected co-authorship graph. Edge weight is the number of
// records that list the link; a link listed by both authors weighs 2.
type Network struct {
	g     *simple.WeightedUndirectedGraph
	ids   map[string]int64
	names []string
}

func newNetwork() *Network {
	return &Network{
		g:   simple.NewWeightedUndirectedGraph(0, 0),
		ids: make(map[string]int64),
	}
}

// Build links every record to each of its co-authors.
func Build(records []types.AuthorRecord) *Network {
	n := newNetwork()
	for _, r := range records {
		n.addRecord(r)
	}
	return n
}

// Ego builds the graph of a single author's co-authorships. ok is false when
// name is not among records.
func Ego(records []types.AuthorRecord, name string) (n *Network, ok bool) {
	n = newNetwork()
	for _, r := range records {
		if r.Name == name {
			ok = true
			n.addRecord(r)
		}
	}
	if ok {
		n.node(name)
	}
	return n, ok
}

func (n *Network) addRecord(r types.AuthorRecord) {
	for _, co := range r.CoAuthors {
		n.link(r.Name, co)
	}
}

func (n *Network) node(name string) authorNode {
	if id, ok := n.ids[name]; ok {
		return n.g.Node(id).(authorNode)
	}
	nd := authorNode{id: int64(len(n.names)), name: name}
	n.ids[name] = nd.id
	n.names = append(n.names, name)
	n.g.AddNode(nd)
	return nd
}

func (n *Network) link(a, b string) {
	if a == b {
		return
	}
	u, v := n.node(a), n.node(b)
	w := 1.0
	if e := n.g.WeightedEdge(u.id, v.id); e != nil {
		w += e.Weight()
	}
	n.g.SetWeightedEdge(coauthorEdge{from: u, to: v, weight: w})
}

// Nodes returns the number of authors in the graph.
func (n *Network) Nodes() int { return len(n.names) }

// Names returns the authors in insertion order.
func (n *Network) Names() []string { return append([]string(nil), n.names...) }

// Weight returns the weight of the a-b link, or 0 when absent.
func (n *Network) Weight(a, b string) float64 {
	u, ok1 := n.ids[a]
	v, ok2 := n.ids[b]
	if !ok1 || !ok2 {
		return 0
	}
	if e := n.g.WeightedEdge(u, v); e != nil {
		return e.Weight()
	}
	return 0
}

// Degree returns the number of distinct neighbours of name.
func (n *Network) Degree(name string) int {
	id, ok := n.ids[name]
	if !ok {
		return 0
	}
	return n.g.From(id).Len()
}

// Edges returns every link, heaviest first, then by author names.
func (n *Network) Edges() []Edge {
	var out []Edge
	seen := make(map[[2]string]struct{})
	it := n.g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		a := e.From().(authorNode).name
		b := e.To().(authorNode).name
		if b < a {
			a, b = b, a
		}
		if _, dup := seen[[2]string{a, b}]; dup {
			continue
		}
		seen[[2]string{a, b}] = struct{}{}
		out = append(out, Edge{From: a, To: b, Weight: e.Weight()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// MarshalDOT renders the graph in Graphviz DOT format with edge widths
// proportional to weight.
func (n *Network) MarshalDOT(title string) ([]byte, error) {
	data, err := dot.Marshal(n.g, title, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding DOT: %w", err)
	}
	return data, nil
}

type authorNode struct {
	id   int64
	name string
}

func (a authorNode) ID() int64      { return a.id }
func (a authorNode) DOTID() string  { return a.name }
func (a authorNode) String() string { return a.name }

type coauthorEdge struct {
	from, to authorNode
	weight   float64
}

func (e coauthorEdge) From() graph.Node         { return e.from }
func (e coauthorEdge) To() graph.Node           { return e.to }
func (e coauthorEdge) Weight() float64          { return e.weight }
func (e coauthorEdge) ReversedEdge() graph.Edge { return coauthorEdge{from: e.to, to: e.from, weight: e.weight} }

func (e coauthorEdge) Attributes() []encoding.Attribute {
	w := strconv.FormatFloat(e.weight, 'f', -1, 64)
	return []encoding.Attribute{
		{Key: "weight", Value: w},
		{Key: "penwidth", Value: w},
	}
}
