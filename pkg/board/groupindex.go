package board

// groupIndex is a union-find over padded-grid points, maintaining for
// each root the roster of member stones and the set of liberty points
// (§4.1, §9). Non-root entries of group/liberties are not authoritative.
type groupIndex struct {
	parent    map[Point]Point
	group     map[Point]map[Point]struct{}
	liberties map[Point]map[Point]struct{}
}

func newGroupIndex() *groupIndex {
	return &groupIndex{
		parent:    make(map[Point]Point),
		group:     make(map[Point]map[Point]struct{}),
		liberties: make(map[Point]map[Point]struct{}),
	}
}

// find returns the root of p, compressing the path as it walks up.
func (g *groupIndex) find(p Point) Point {
	root := p
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for p != root {
		next := g.parent[p]
		g.parent[p] = root
		p = next
	}
	return root
}

// newSingleton initializes p as a fresh one-stone component with no
// liberties recorded yet; callers populate liberties by inspecting
// neighbours immediately after.
func (g *groupIndex) newSingleton(p Point) {
	g.parent[p] = p
	g.group[p] = map[Point]struct{}{p: {}}
	g.liberties[p] = make(map[Point]struct{})
}

// size returns the number of stones in p's component.
func (g *groupIndex) size(p Point) int {
	return len(g.group[g.find(p)])
}

// libertyCount returns the number of distinct liberty points of p's
// component.
func (g *groupIndex) libertyCount(p Point) int {
	return len(g.liberties[g.find(p)])
}

// addLiberty records q as a liberty of p's component.
func (g *groupIndex) addLiberty(p, q Point) {
	g.liberties[g.find(p)][q] = struct{}{}
}

// removeLiberty removes q as a liberty of p's component, if present.
func (g *groupIndex) removeLiberty(p, q Point) {
	delete(g.liberties[g.find(p)], q)
}

// unite merges the components of a and b, if distinct, by size: the
// smaller component's roster and liberties are absorbed into the
// larger. On a size tie, a's root survives, matching the reference
// implementation's tie-break.
func (g *groupIndex) unite(a, b Point) {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return
	}

	small, large := ra, rb
	if len(g.group[ra]) >= len(g.group[rb]) {
		small, large = rb, ra
	}

	for s := range g.group[small] {
		g.group[large][s] = struct{}{}
	}
	for l := range g.liberties[small] {
		g.liberties[large][l] = struct{}{}
	}

	g.parent[small] = large
	delete(g.group, small)
	delete(g.liberties, small)
}

// members returns the roster of p's component.
func (g *groupIndex) members(p Point) map[Point]struct{} {
	return g.group[g.find(p)]
}

// libertySet returns the liberty set of p's component.
func (g *groupIndex) libertySet(p Point) map[Point]struct{} {
	return g.liberties[g.find(p)]
}

// clear drops a lone stone's union-find bookkeeping after it is erased
// by setup; the cell color reset is the caller's responsibility. It
// must not be used to remove one stone out of a still-larger surviving
// group, since union-find cannot split a component back into new roots
// — use dissolve to remove an entire captured group at once.
func (g *groupIndex) clear(p Point) {
	root := g.find(p)
	delete(g.group[root], p)
	delete(g.parent, p)
	if root == p {
		delete(g.group, root)
		delete(g.liberties, root)
	}
}

// dissolve removes every stone of the component rooted at root in one
// step. Unlike repeated clear calls, it is safe regardless of which
// member is visited first, since it never calls find on a
// partially-cleared member.
func (g *groupIndex) dissolve(root Point) {
	for m := range g.group[root] {
		delete(g.parent, m)
	}
	delete(g.group, root)
	delete(g.liberties, root)
}

// clone returns a deep copy sharing no mutable state with g.
func (g *groupIndex) clone() *groupIndex {
	out := newGroupIndex()
	for k, v := range g.parent {
		out.parent[k] = v
	}
	for root, members := range g.group {
		m := make(map[Point]struct{}, len(members))
		for p := range members {
			m[p] = struct{}{}
		}
		out.group[root] = m
	}
	for root, libs := range g.liberties {
		l := make(map[Point]struct{}, len(libs))
		for p := range libs {
			l[p] = struct{}{}
		}
		out.liberties[root] = l
	}
	return out
}
