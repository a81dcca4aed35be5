package nonogram

// SearchResult is the outcome of a branching search run (spec §4.3).
type SearchResult struct {
	Status Status // StatusSuccess or StatusContradiction; never Stalled
	// Branches is the cumulative number of branches opened across the
	// whole search. Informational only.
	Branches int
}

// Search drives the propagation driver to completion, branching on an
// Unknown cell whenever propagation stalls (spec §4.3). It is grounded
// on the teacher's snapshot-then-recurse shape
// (pkg/generator/backtracking.go's AttemptLocalBacktrack): clone the
// mutable state, commit to one value on the clone, recurse, and only
// fall through to the second branch if the first one failed.
//
// On success the board and meta passed in are mutated into the
// solution (via the winning branch's snapshot). On contradiction they
// are not restored: they keep the cells propagation set and, wherever
// branching took place, the Filled pivot tried directly on them along
// with whatever propagation set after it.
func Search(b *Board, meta *BoardMeta, queue *WorkQueue, scratch *Scratch) SearchResult {
	return search(b, meta, queue, scratch, 0)
}

func search(b *Board, meta *BoardMeta, queue *WorkQueue, scratch *Scratch, branches int) SearchResult {
	status := Propagate(b, meta, queue, scratch)
	switch status {
	case StatusSuccess, StatusContradiction:
		return SearchResult{Status: status, Branches: branches}
	}

	row, col, ok := b.FirstUnknown()
	if !ok {
		// Propagation reported Stalled but left no Unknown cell; this
		// cannot happen if BoardMeta is consistent with the board, but
		// treat it as solved defensively rather than panic.
		return SearchResult{Status: StatusSuccess, Branches: branches}
	}

	branches++

	// Branch A: pivot set to Empty, explored on a fresh snapshot so a
	// failed attempt leaves the parent's state untouched.
	snapA := b.Clone()
	metaA := meta.Clone()
	queueA := queue.Clone()
	snapA.SetCell(col, row, Empty)
	metaA.MarkSolved(col, row)
	queueA.Push(LineInfo{Axis: AxisRow, Index: row}, 1)
	queueA.Push(LineInfo{Axis: AxisColumn, Index: col}, 1)

	resultA := search(snapA, metaA, queueA, scratch, branches)
	if resultA.Status == StatusSuccess {
		copyBoardInto(b, snapA)
		*meta = *metaA
		return resultA
	}

	// Branch B: pivot set to Filled, explored by reusing the original
	// (still unmutated) state directly.
	b.SetCell(col, row, Filled)
	meta.MarkSolved(col, row)
	queue.Push(LineInfo{Axis: AxisRow, Index: row}, 1)
	queue.Push(LineInfo{Axis: AxisColumn, Index: col}, 1)

	resultB := search(b, meta, queue, scratch, resultA.Branches)
	return resultB
}

// copyBoardInto overwrites dst's cells with src's. Width, height, and
// constraints are identical between a board and its snapshot, so only
// the cell array needs copying back.
func copyBoardInto(dst, src *Board) {
	copy(dst.Cells, src.Cells)
}
