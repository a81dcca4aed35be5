package nonogram

// Status is the result of a propagation run (spec §4.2).
type Status int

const (
	// StatusSuccess means BoardMeta.NumUnsolved reached zero.
	StatusSuccess Status = iota
	// StatusContradiction means some line has zero valid placements.
	StatusContradiction
	// StatusStalled means the queue drained with Unknown cells
	// remaining; single-line reasoning alone cannot finish the board.
	StatusStalled
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusContradiction:
		return "contradiction"
	case StatusStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Propagate pops lines from queue, runs the line solver on each, and
// feeds every changed cell back as an enqueue of the crossing line,
// until the queue is empty, a contradiction is found, or the board is
// fully solved (spec §4.2). scratch is reused across every line-solver
// call made during this run.
func Propagate(b *Board, meta *BoardMeta, queue *WorkQueue, scratch *Scratch) Status {
	for {
		li, ok := queue.Pop()
		if !ok {
			break
		}
		if !meta.LineUnsolved(li) {
			continue
		}

		line := b.Line(li)
		result := SolveLine(line, scratch)
		if result.Contradiction {
			return StatusContradiction
		}

		for _, offset := range result.Changed {
			var crossCol, crossRow int
			if li.Axis == AxisRow {
				crossCol, crossRow = offset, li.Index
			} else {
				crossCol, crossRow = li.Index, offset
			}
			meta.MarkSolved(crossCol, crossRow)

			crossAxis := AxisColumn
			crossIndex := crossCol
			if li.Axis == AxisColumn {
				crossAxis, crossIndex = AxisRow, crossRow
			}
			crossLine := LineInfo{Axis: crossAxis, Index: crossIndex}

			if meta.LineUnsolved(crossLine) {
				// Priority heuristic (spec §9 "Priority heuristic"): a
				// constant priority is correct too; this nudges lines
				// that have just received new information ahead of
				// ones that have not.
				queue.Push(crossLine, 1)
			}

			// Checked unconditionally, not only while crossLine is still
			// unsolved: this very MarkSolved call can be the one that
			// zeroes its unsolved count, and a fully-solved line is never
			// popped again (see the LineUnsolved skip above), so this is
			// the only chance to catch a contradiction it was just forced
			// into.
			if !Feasible(b.Line(crossLine), scratch) {
				return StatusContradiction
			}
		}

		if meta.NumUnsolved == 0 {
			return StatusSuccess
		}
	}

	if meta.NumUnsolved == 0 {
		return StatusSuccess
	}
	return StatusStalled
}
