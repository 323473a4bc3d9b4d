package spanningtree

import (
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
)

type adjacentEdge struct {
	to     da.Index
	edgeId int
}

// Prim. grows the tree from root, always attaching the cheapest edge leaving the tree. O(E log V).
func Prim(n int, edges []da.WeightedEdge, root da.Index) ([]da.WeightedEdge, float64, error) {
	if n <= 1 {
		return []da.WeightedEdge{}, 0, nil
	}
	if int(root) >= n {
		return nil, 0, util.WrapErrorf(nil, util.ErrInvalidParameter, "root %d outside [0, %d)", root, n)
	}

	adj := make([][]adjacentEdge, n)
	for i, e := range edges {
		adj[e.GetU()] = append(adj[e.GetU()], adjacentEdge{to: e.GetV(), edgeId: i})
		adj[e.GetV()] = append(adj[e.GetV()], adjacentEdge{to: e.GetU(), edgeId: i})
	}

	var (
		nodes      = make([]*da.PriorityQueueNode[da.Index], n)
		parentEdge = make([]int, n)
		inTree     = make([]bool, n)
		mst        = make([]da.WeightedEdge, 0, n-1)
		total      float64
		reached    int
	)
	for i := range parentEdge {
		parentEdge[i] = -1
	}

	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(n)
	nodes[root] = da.NewPriorityQueueNode(0, root)
	pq.Insert(nodes[root])

	for !pq.IsEmpty() {
		min, _ := pq.ExtractMin()
		u := min.GetItem()
		inTree[u] = true
		reached++
		if pe := parentEdge[u]; pe >= 0 {
			mst = append(mst, edges[pe])
			total += edges[pe].GetWeight()
		}

		for _, ae := range adj[u] {
			v := ae.to
			if inTree[v] {
				continue
			}
			w := edges[ae.edgeId].GetWeight()
			if nodes[v] == nil {
				nodes[v] = da.NewPriorityQueueNode(w, v)
				parentEdge[v] = ae.edgeId
				pq.Insert(nodes[v])
			} else if w < nodes[v].GetRank() {
				if err := pq.DecreaseKey(nodes[v], w); err != nil {
					return nil, 0, err
				}
				parentEdge[v] = ae.edgeId
			}
		}
	}

	if reached < n {
		return nil, 0, disconnectedError(reached, n)
	}

	da.SortWeightedEdges(mst)
	return mst, total, nil
}
