package pathset

// Insert adds p to eps, preserving the non-decreasing-weight invariant. On
// a tie, p is appended after any existing equal-weight paths (a stable
// insertion), matching spec.md §4.2.
func (eps *EdgePaths) Insert(p *EdgePath) {
	w := p.Weight()
	i := len(eps.Paths)
	for i > 0 && eps.Paths[i-1].Weight() > w {
		i--
	}
	eps.Paths = append(eps.Paths, nil)
	copy(eps.Paths[i+1:], eps.Paths[i:])
	eps.Paths[i] = p
}

// MinWeight returns the minimum weight across eps, and false if eps is empty.
func (eps *EdgePaths) MinWeight() (int, bool) {
	if len(eps.Paths) == 0 {
		return 0, false
	}
	return eps.Paths[0].Weight(), true
}

// Append adds p to ps, preserving the non-decreasing-weight invariant. It
// fails with ErrEndpointMismatch if p's source/target differ from ps's,
// per spec.md §4.2 and §7 ("Endpoint Mismatch" is a fatal programmer
// error, surfaced immediately rather than logged and skipped).
func (ps *NodePaths) Append(p *NodePath) error {
	if p.Source() != ps.Source || p.Target() != ps.Target {
		return ErrEndpointMismatch
	}
	w := p.Weight()
	i := len(ps.Paths)
	for i > 0 && ps.Paths[i-1].Weight() > w {
		i--
	}
	ps.Paths = append(ps.Paths, nil)
	copy(ps.Paths[i+1:], ps.Paths[i:])
	ps.Paths[i] = p
	return nil
}

// MinWeight returns the minimum weight across ps, and false if ps is empty.
func (ps *NodePaths) MinWeight() (int, bool) {
	if len(ps.Paths) == 0 {
		return 0, false
	}
	return ps.Paths[0].Weight(), true
}

// FirstHopNodes returns the de-duplicated, order-preserving set of nodes
// at index 1 of each path in ps. Used by the LFA/rLFA engines to identify
// the primary next hops of an SPF result (spec.md §4.4).
func (ps *NodePaths) FirstHopNodes() []string {
	seen := make(map[string]struct{}, len(ps.Paths))
	out := make([]string, 0, len(ps.Paths))
	for _, p := range ps.Paths {
		if len(p.Nodes) < 2 {
			continue
		}
		fh := p.Nodes[1]
		if _, ok := seen[fh]; ok {
			continue
		}
		seen[fh] = struct{}{}
		out = append(out, fh)
	}
	return out
}
