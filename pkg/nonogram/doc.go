// Package nonogram implements the nonogram (paint-by-numbers) solving
// engine described by the project: a placement-graph line solver, the
// work queue and propagation driver that apply it across a whole
// board, and a branching search that takes over when propagation alone
// stalls.
//
// The core data model is three-valued: every cell is Empty, Filled, or
// Unknown, and a line's constraint list is the ordered run lengths it
// must contain. SolveLine narrows a single line as far as the current
// partial information allows without guessing; Propagate drives that
// narrowing across an entire board via a work queue of lines pending
// re-solving; Search adds depth-first branching on an Unknown cell
// when Propagate can make no further progress on its own.
package nonogram
