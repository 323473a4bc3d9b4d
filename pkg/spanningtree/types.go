// Package spanningtree extracts minimum spanning trees from weighted undirected edge sets.
// Both Prim's (d-ary heap, default) and Kruskal's (union-find) algorithms are available; they
// produce trees of equal total weight and differ only in which edge is picked among equal weights.
package spanningtree

import (
	"strings"

	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
)

type Method string

const (
	MethodPrim    Method = "prim"
	MethodKruskal Method = "kruskal"
)

func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(s)) {
	case MethodPrim:
		return MethodPrim, nil
	case MethodKruskal:
		return MethodKruskal, nil
	default:
		return "", util.WrapErrorf(nil, util.ErrInvalidParameter, "unknown spanning tree method %q", s)
	}
}

type Options struct {
	Method Method
	Root   da.Index // start vertex for Prim, ignored by Kruskal
}

type Option func(*Options)

func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

func WithRoot(root da.Index) Option {
	return func(o *Options) {
		o.Root = root
	}
}

func DefaultOptions() Options {
	return Options{
		Method: MethodPrim,
		Root:   0,
	}
}

// Compute. minimum spanning tree over vertices [0, n) using the configured method.
// returns the tree edges sorted by (u, v) and their total weight.
func Compute(n int, edges []da.WeightedEdge, opts ...Option) ([]da.WeightedEdge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateEdges(n, edges); err != nil {
		return nil, 0, err
	}

	switch o.Method {
	case MethodPrim:
		return Prim(n, edges, o.Root)
	case MethodKruskal:
		return Kruskal(n, edges)
	default:
		return nil, 0, util.WrapErrorf(nil, util.ErrInvalidParameter, "unknown spanning tree method %q", o.Method)
	}
}

func validateEdges(n int, edges []da.WeightedEdge) error {
	for _, e := range edges {
		if int(e.GetV()) >= n {
			return util.WrapErrorf(nil, util.ErrInvalidParameter, "edge %v references a vertex outside [0, %d)", e.GetEdge(), n)
		}
	}
	return nil
}

func disconnectedError(reached, n int) error {
	return util.WrapErrorf(nil, util.ErrDisconnectedGraph, "spanning tree reaches %d of %d points", reached, n)
}
