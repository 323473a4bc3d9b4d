package datastructure

// UnionFind. disjoint-set forest with path halving and union by rank
type UnionFind struct {
	parent []Index
	rank   []uint8
	sets   int
}

func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]Index, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = Index(i)
	}
	return uf
}

func (uf *UnionFind) Find(x Index) Index {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union. merges the sets of x and y, false if they were already in the same set
func (uf *UnionFind) Union(x, y Index) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	if uf.rank[rootX] < uf.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	if uf.rank[rootX] == uf.rank[rootY] {
		uf.rank[rootX]++
	}
	uf.sets--
	return true
}

func (uf *UnionFind) NumberOfSets() int {
	return uf.sets
}
