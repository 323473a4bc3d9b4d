package datastructure

import (
	"sort"
)

type Index uint32

// Graph. undirected simple graph over n vertices, adjacency kept as sets so edges can be removed in O(1).
type Graph struct {
	adj      []map[Index]struct{}
	numEdges int
}

func NewGraph(n int, edges []Edge) *Graph {
	g := &Graph{
		adj: make([]map[Index]struct{}, n),
	}
	for i := range g.adj {
		g.adj[i] = make(map[Index]struct{})
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

func NewGraphFromWeighted(n int, edges []WeightedEdge) *Graph {
	return NewGraph(n, EdgesOf(edges))
}

func (g *Graph) NumberOfVertices() int {
	return len(g.adj)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// AddEdge. no-op if the edge is already present
func (g *Graph) AddEdge(e Edge) {
	if _, ok := g.adj[e.u][e.v]; ok {
		return
	}
	g.adj[e.u][e.v] = struct{}{}
	g.adj[e.v][e.u] = struct{}{}
	g.numEdges++
}

func (g *Graph) RemoveEdge(e Edge) bool {
	if _, ok := g.adj[e.u][e.v]; !ok {
		return false
	}
	delete(g.adj[e.u], e.v)
	delete(g.adj[e.v], e.u)
	g.numEdges--
	return true
}

func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.adj[e.u][e.v]
	return ok
}

func (g *Graph) GetDegree(v Index) int {
	return len(g.adj[v])
}

// Degrees. degree of every vertex
func (g *Graph) Degrees() []int {
	deg := make([]int, len(g.adj))
	for v := range g.adj {
		deg[v] = len(g.adj[v])
	}
	return deg
}

// GetNeighbors. neighbors of v in ascending order
func (g *Graph) GetNeighbors(v Index) []Index {
	ns := make([]Index, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		ns = append(ns, u)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
	return ns
}

// Edges. every edge in ascending (u,v) order
func (g *Graph) Edges() []Edge {
	es := make([]Edge, 0, g.numEdges)
	for u := range g.adj {
		for v := range g.adj[u] {
			if Index(u) < v {
				es = append(es, Edge{u: Index(u), v: v})
			}
		}
	}
	SortEdges(es)
	return es
}

// IsConnected. true if every vertex is reachable from vertex 0
func (g *Graph) IsConnected() bool {
	n := len(g.adj)
	if n == 0 {
		return true
	}
	return g.countReachable(0) == n
}

// IsTree. connected and |E| = |V| - 1 over the vertices that have at least one edge
func (g *Graph) IsTree() bool {
	var (
		start   Index
		nonIso  int
		started bool
	)
	for v := range g.adj {
		if len(g.adj[v]) > 0 {
			nonIso++
			if !started {
				start = Index(v)
				started = true
			}
		}
	}
	if nonIso == 0 {
		return true
	}
	return g.numEdges == nonIso-1 && g.countReachable(start) == nonIso
}

func (g *Graph) countReachable(start Index) int {
	visited := make([]bool, len(g.adj))
	visited[start] = true
	queue := []Index{start}
	count := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for u := range g.adj[v] {
			if !visited[u] {
				visited[u] = true
				count++
				queue = append(queue, u)
			}
		}
	}
	return count
}

func sortIndices(ids []Index) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
