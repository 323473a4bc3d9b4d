package datastructure

import (
	"fmt"
	"sort"

	"github.com/bofo90/RoadOptimization/pkg/util"
)

// Edge. undirected edge between two point ids, always stored with u < v
type Edge struct {
	u, v Index
}

func NewEdge(a, b Index) Edge {
	util.AssertPanic(a != b, fmt.Sprintf("self loop on point %d", a))
	if a > b {
		a, b = b, a
	}
	return Edge{u: a, v: b}
}

func (e Edge) GetU() Index {
	return e.u
}

func (e Edge) GetV() Index {
	return e.v
}

func (e Edge) Less(o Edge) bool {
	if e.u != o.u {
		return e.u < o.u
	}
	return e.v < o.v
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.u, e.v)
}

func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})
}

type WeightedEdge struct {
	Edge
	weight float64
}

func NewWeightedEdge(e Edge, weight float64) WeightedEdge {
	return WeightedEdge{Edge: e, weight: weight}
}

func (we WeightedEdge) GetEdge() Edge {
	return we.Edge
}

func (we WeightedEdge) GetWeight() float64 {
	return we.weight
}

// NewWeightedEdges. zips an edge set with its parallel weight array
func NewWeightedEdges(edges []Edge, weights []float64) []WeightedEdge {
	util.AssertPanic(len(edges) == len(weights), "edges and weights must have the same length")
	wes := make([]WeightedEdge, len(edges))
	for i, e := range edges {
		wes[i] = NewWeightedEdge(e, weights[i])
	}
	return wes
}

func TotalWeight(edges []WeightedEdge) float64 {
	return util.Sum(Weights(edges))
}

// Weights. weight of every edge, parallel to edges
func Weights(edges []WeightedEdge) []float64 {
	ws := make([]float64, len(edges))
	for i, e := range edges {
		ws[i] = e.weight
	}
	return ws
}

func SortWeightedEdges(edges []WeightedEdge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j].Edge)
	})
}

func EdgesOf(edges []WeightedEdge) []Edge {
	es := make([]Edge, len(edges))
	for i, e := range edges {
		es[i] = e.Edge
	}
	return es
}
