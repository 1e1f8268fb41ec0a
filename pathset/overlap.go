package pathset

// NodesOverlap reports whether any name in names appears in any node of
// any path in ps. Used by the LFA and rLFA engines' node-protection
// overlap tests (spec.md §4.5 step 8, §4.6.6).
func NodesOverlap(names []string, ps *NodePaths) bool {
	present := make(map[string]struct{})
	for _, p := range ps.Paths {
		for _, node := range p.Nodes {
			present[node] = struct{}{}
		}
	}
	for _, name := range names {
		if _, ok := present[name]; ok {
			return true
		}
	}
	return false
}
