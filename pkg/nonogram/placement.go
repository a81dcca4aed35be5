package nonogram

// Scratch is the reusable placement-graph table described in spec §3:
// a dense table N[i,j] indexed by constraint index i and offset j,
// sized to the worst-case line in the board and reset between calls
// instead of reallocated. It is the centerpiece of the line solver
// (spec §4.1): grounded on the teacher's incremental, caller-owned
// solver state (pkg/generator/incremental_solver.go), generalized from
// a single boolean test into the two-pass viability/reachability
// computation the spec requires.
type Scratch struct {
	viable []bool
	reach  []int8 // 0 = uncomputed, 1 = reachable, 2 = not reachable
	rows   int    // C
	cols   int    // S+1
}

const (
	reachUnknown int8 = 0
	reachYes     int8 = 1
	reachNo      int8 = 2
)

func (s *Scratch) reset(rows, cols int) {
	need := rows * cols
	if cap(s.viable) < need {
		s.viable = make([]bool, need)
		s.reach = make([]int8, need)
	} else {
		s.viable = s.viable[:need]
		s.reach = s.reach[:need]
		for i := range s.viable {
			s.viable[i] = false
			s.reach[i] = reachUnknown
		}
	}
	s.rows, s.cols = rows, cols
}

func (s *Scratch) idx(i, j int) int { return i*s.cols + j }

// LineResult is the outcome of a single SolveLine call (spec §4.1
// "Output").
type LineResult struct {
	// Contradiction is true when no placement of the constraints
	// satisfies the current partial line.
	Contradiction bool
	// Changed holds the in-line indices that were Unknown on entry and
	// are Empty or Filled on exit.
	Changed []int
}

// prefixCounts builds running counts of Filled and Empty cells so that
// any range's membership can be tested in O(1), rather than rescanning
// the line for every node and edge in the placement graph.
type prefixCounts struct {
	filled []int
	empty  []int
}

func buildPrefix(line Line) prefixCounts {
	l := line.Len()
	pc := prefixCounts{filled: make([]int, l+1), empty: make([]int, l+1)}
	for i := 0; i < l; i++ {
		pc.filled[i+1] = pc.filled[i]
		pc.empty[i+1] = pc.empty[i]
		switch line.Cell(i) {
		case Filled:
			pc.filled[i+1]++
		case Empty:
			pc.empty[i+1]++
		}
	}
	return pc
}

// hasFilled reports whether [a,b) contains a Filled cell. An empty or
// inverted range never does.
func (pc prefixCounts) hasFilled(a, b int) bool {
	if a >= b {
		return false
	}
	return pc.filled[b]-pc.filled[a] > 0
}

// hasEmpty reports whether [a,b) contains an Empty cell.
func (pc prefixCounts) hasEmpty(a, b int) bool {
	if a >= b {
		return false
	}
	return pc.empty[b]-pc.empty[a] > 0
}

// placementGraph holds the per-call derived data (earliest starts,
// slack, prefix counts) and the reachability memoization logic shared
// by SolveLine and Feasible, so the two passes are defined exactly
// once (spec §4.1 Pass 1 and Pass 2).
type placementGraph struct {
	line        Line
	constraints ConstraintList
	starts      []int
	slack       int
	c           int
	l           int
	pc          prefixCounts
	scratch     *Scratch
}

// newPlacementGraph prepares a graph for a line whose constraint list
// is non-empty. ok is false if the slack is negative (the constraints
// cannot fit in the line at all).
func newPlacementGraph(line Line, scratch *Scratch) (*placementGraph, bool) {
	constraints := line.Constraints()
	l := line.Len()
	c := len(constraints)
	sum := constraints.Sum()
	slack := l + 1 - sum - c
	if slack < 0 {
		return nil, false
	}

	starts := make([]int, c)
	pos := 0
	for i, cn := range constraints {
		starts[i] = pos
		pos += int(cn) + 1
	}

	g := &placementGraph{
		line:        line,
		constraints: constraints,
		starts:      starts,
		slack:       slack,
		c:           c,
		l:           l,
		pc:          buildPrefix(line),
		scratch:     scratch,
	}
	scratch.reset(c, slack+1)
	g.computeViability()
	return g, true
}

// computeViability runs Pass 1 (local viability) for every node.
func (g *placementGraph) computeViability() {
	for i := 0; i < g.c; i++ {
		length := int(g.constraints[i])
		for j := 0; j <= g.slack; j++ {
			start := g.starts[i] + j
			end := start + length
			ok := true
			if start > 0 && g.line.Cell(start-1) == Filled {
				ok = false
			}
			if ok && end < g.l && g.line.Cell(end) == Filled {
				ok = false
			}
			if ok && g.pc.hasEmpty(start, end) {
				ok = false
			}
			if ok && i == 0 && g.pc.hasFilled(0, start-1) {
				ok = false
			}
			if ok && i == g.c-1 && g.pc.hasFilled(end+1, g.l) {
				ok = false
			}
			g.scratch.viable[g.scratch.idx(i, j)] = ok
		}
	}
}

// edgeValid reports whether the gap strictly between constraint i's
// run (starting at offset j) and constraint i+1's run (starting at
// offset k) contains no Filled cell (spec §4.1 "Edge predicate").
func (g *placementGraph) edgeValid(i, j, k int) bool {
	if k <= j+1 {
		return true
	}
	end := g.starts[i] + j + int(g.constraints[i])
	nextStart := g.starts[i+1] + k
	return !g.pc.hasFilled(end+1, nextStart)
}

// reach computes (and memoizes) Pass 2 reachability for node (i,j).
func (g *placementGraph) reach(i, j int) bool {
	id := g.scratch.idx(i, j)
	switch g.scratch.reach[id] {
	case reachYes:
		return true
	case reachNo:
		return false
	}
	if !g.scratch.viable[id] {
		g.scratch.reach[id] = reachNo
		return false
	}
	if i == g.c-1 {
		g.scratch.reach[id] = reachYes
		return true
	}
	ok := false
	for k := j; k <= g.slack; k++ {
		if g.edgeValid(i, j, k) && g.reach(i+1, k) {
			ok = true
			break
		}
	}
	if ok {
		g.scratch.reach[id] = reachYes
	} else {
		g.scratch.reach[id] = reachNo
	}
	return ok
}

// anyReachable reports whether at least one node in the first layer
// reaches the last layer, i.e. at least one whole-line placement is
// consistent with the current partial line.
func (g *placementGraph) anyReachable() bool {
	for j := 0; j <= g.slack; j++ {
		if g.reach(0, j) {
			return true
		}
	}
	return false
}

// markForcing runs Pass 3: sweep every node that lies on at least one
// whole-line placement (it reaches the last layer and is itself reached
// from a live node of the previous layer by a valid edge) and union its
// contribution into canEmpty/canFilled. The inter-run gap marking
// iterates every valid, reachable edge out of a node rather than only
// the largest such edge, per spec §9's open question ("the stronger
// version is preferred").
func (g *placementGraph) markForcing() (canEmpty, canFilled []bool) {
	canEmpty = make([]bool, g.l)
	canFilled = make([]bool, g.l)
	cols := g.slack + 1
	live := make([]bool, g.c*cols)

	for i := 0; i < g.c; i++ {
		length := int(g.constraints[i])
		for j := 0; j <= g.slack; j++ {
			if !g.reach(i, j) {
				continue
			}
			if i > 0 {
				fromPrev := false
				for jp := 0; jp <= j && !fromPrev; jp++ {
					fromPrev = live[(i-1)*cols+jp] && g.edgeValid(i-1, jp, j)
				}
				if !fromPrev {
					continue
				}
			}
			live[i*cols+j] = true
			start := g.starts[i] + j
			end := start + length
			for p := start; p < end; p++ {
				canFilled[p] = true
			}
			if i == 0 {
				for p := 0; p < start; p++ {
					canEmpty[p] = true
				}
			}
			if i == g.c-1 {
				for p := end; p < g.l; p++ {
					canEmpty[p] = true
				}
			}
			if i < g.c-1 {
				for k := j; k <= g.slack; k++ {
					if !g.edgeValid(i, j, k) || !g.reach(i+1, k) {
						continue
					}
					nextStart := g.starts[i+1] + k
					for p := end; p < nextStart; p++ {
						canEmpty[p] = true
					}
				}
			}
		}
	}
	return canEmpty, canFilled
}

// SolveLine runs the placement-graph line solver against a single line
// (spec §4.1). It mutates the line in place for every cell it forces
// and reports the set of indices it changed, or a contradiction if no
// placement survives. scratch is caller-owned and reused across calls.
func SolveLine(line Line, scratch *Scratch) LineResult {
	if len(line.Constraints()) == 0 {
		return solveEmptyConstraints(line)
	}

	g, ok := newPlacementGraph(line, scratch)
	if !ok {
		return LineResult{Contradiction: true}
	}
	if !g.anyReachable() {
		return LineResult{Contradiction: true}
	}

	canEmpty, canFilled := g.markForcing()
	return applyForcing(line, canEmpty, canFilled)
}

// solveEmptyConstraints handles the C=0 special case (spec §4.1): any
// Filled cell is a contradiction, and every Unknown cell must be Empty.
func solveEmptyConstraints(line Line) LineResult {
	var changed []int
	for i := 0; i < line.Len(); i++ {
		switch line.Cell(i) {
		case Filled:
			return LineResult{Contradiction: true}
		case Unknown:
			line.SetCell(i, Empty)
			changed = append(changed, i)
		}
	}
	return LineResult{Changed: changed}
}

// applyForcing decides each cell from its (canEmpty, canFilled) pair
// and mutates the line accordingly (spec §4.1 Pass 3).
func applyForcing(line Line, canEmpty, canFilled []bool) LineResult {
	var changed []int
	for p := 0; p < line.Len(); p++ {
		ce, cf := canEmpty[p], canFilled[p]
		cur := line.Cell(p)
		switch {
		case ce && !cf:
			if cur == Filled {
				return LineResult{Contradiction: true}
			}
			if cur == Unknown {
				line.SetCell(p, Empty)
				changed = append(changed, p)
			}
		case !ce && cf:
			if cur == Empty {
				return LineResult{Contradiction: true}
			}
			if cur == Unknown {
				line.SetCell(p, Filled)
				changed = append(changed, p)
			}
		case !ce && !cf:
			return LineResult{Contradiction: true}
		}
	}
	return LineResult{Changed: changed}
}

// Feasible runs Pass 1 and Pass 2 only — no mutation — and reports
// whether at least one placement of the constraints is consistent with
// the current partial line. It is used by the propagation driver to
// catch cross-line contradictions early (spec §4.2 step 4).
func Feasible(line Line, scratch *Scratch) bool {
	if len(line.Constraints()) == 0 {
		for i := 0; i < line.Len(); i++ {
			if line.Cell(i) == Filled {
				return false
			}
		}
		return true
	}

	g, ok := newPlacementGraph(line, scratch)
	if !ok {
		return false
	}
	return g.anyReachable()
}
