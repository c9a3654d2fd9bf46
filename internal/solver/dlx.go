package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/ports"
)

// ExactCover encodes the grid as a 0/1 exact-cover problem and solves it
// with Knuth's Algorithm X over dancing links.
//
// For size S the matrix has S³ rows (one per (row,col,color) candidate) and
// 4S² columns:
//
//	0      .. S²-1   cell (r,c) is occupied
//	S²     .. 2S²-1  row r contains color v
//	2S²    .. 3S²-1  column c contains color v
//	3S²    .. 4S²-1  box b contains color v, b = (r/rank)*rank + c/rank
//
// Each candidate row carries exactly one node per constraint group. The
// search always branches on the first column after the header; this is a
// deliberate parity choice, not the min-size heuristic, and the solution
// found first depends on it.
type ExactCover struct{}

func NewExactCover() *ExactCover { return &ExactCover{} }

// dlxNode is one 1-entry of the sparse matrix. Row and column rings are
// doubly linked and circular; col points back at the owning header.
type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	row                   int // (r*S+c)*S + v
}

// dlxColumn is a constraint header. Its embedded node is the sentinel of
// the column's vertical ring and a link in the header ring.
type dlxColumn struct {
	dlxNode
	size int
	id   int
}

// dlxMatrix owns the toroidal structure for the lifetime of one solve.
type dlxMatrix struct {
	size  int        // S
	rank  int        // √S
	head  *dlxColumn // sentinel of the header ring
	cols  []*dlxColumn
	sol   []int // selected row indices, stack discipline
	nodes int
}

func newDLXMatrix(size, rank int) *dlxMatrix {
	m := &dlxMatrix{
		size: size,
		rank: rank,
		head: &dlxColumn{id: -1},
		cols: make([]*dlxColumn, 4*size*size),
		sol:  make([]int, 0, size*size),
	}
	m.head.col = m.head
	m.head.left = &m.head.dlxNode
	m.head.right = &m.head.dlxNode

	// header ring, in constraint-group order
	for i := range m.cols {
		col := &dlxColumn{id: i}
		col.col = col
		col.up = &col.dlxNode
		col.down = &col.dlxNode
		col.right = &m.head.dlxNode
		col.left = m.head.left
		m.head.left.right = &col.dlxNode
		m.head.left = &col.dlxNode
		m.cols[i] = col
	}

	// one candidate row per (r,c,v), lexicographic
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			for v := 0; v < size; v++ {
				row := (r*size+c)*size + v
				var first, prev *dlxNode
				for _, id := range m.rowColumns(r, c, v) {
					col := m.cols[id]
					n := &dlxNode{col: col, row: row}
					// append at the bottom of the column ring
					n.down = &col.dlxNode
					n.up = col.up
					col.up.down = n
					col.up = n
					col.size++
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = first
						prev.right = n
						first.left = n
					}
					prev = n
				}
			}
		}
	}
	return m
}

// rowColumns lists the four constraint columns satisfied by placing color v
// at (r,c).
func (m *dlxMatrix) rowColumns(r, c, v int) [4]int {
	s := m.size
	cell := r*s + c
	rowC := s*s + r*s + v
	colC := 2*s*s + c*s + v
	box := (r/m.rank)*m.rank + c/m.rank
	boxC := 3*s*s + box*s + v
	return [4]int{cell, rowC, colC, boxC}
}

// cover unlinks col from the header ring and removes every row that has a
// node in col from all other columns those rows touch.
func (m *dlxMatrix) cover(col *dlxColumn) {
	col.right.left = col.left
	col.left.right = col.right
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

// uncover is the exact inverse of cover: it replays the removed links in
// reverse insertion order, restores the live counts, then relinks the
// header.
func (m *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	col.right.left = &col.dlxNode
	col.left.right = &col.dlxNode
}

// search is Algorithm X. An empty header ring means the current selection
// is a complete exact cover.
func (m *dlxMatrix) search(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	h := &m.head.dlxNode
	if h.right == h {
		return true
	}
	col := h.right.col
	m.cover(col)
	for n := col.down; n != &col.dlxNode; n = n.down {
		m.nodes++
		m.sol = append(m.sol, n.row)
		for j := n.right; j != n; j = j.right {
			m.cover(j.col)
		}
		if m.search(ctx) {
			return true
		}
		m.sol = m.sol[:len(m.sol)-1]
		for j := n.left; j != n; j = j.left {
			m.uncover(j.col)
		}
	}
	m.uncover(col)
	return false
}

// decodeRow inverts the (r,c,v) → row mapping.
func decodeRow(row, size int) (r, c, v int) {
	r = row / (size * size)
	c = (row / size) % size
	v = row % size
	return
}

func (s *ExactCover) Generate(ctx context.Context, req ports.GenerateRequest) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	g := domain.NewGrid(req.Size)
	m := newDLXMatrix(req.Size, g.Rank())
	ok := m.search(ctx)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, fmt.Errorf("exact cover: %w", domain.ErrNoSolution)
	}
	for _, idx := range m.sol {
		r, c, v := decodeRow(idx, req.Size)
		g.Set(r, c, req.Colors[v])
	}
	return g, st, nil
}
