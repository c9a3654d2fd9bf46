package domain

import "errors"

// ErrInvalidConfig rejects malformed size or color-set input before any
// solving starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrNoSolution reports that a solver exhausted its search (or, for the
// greedy DSATUR strategy, dead-ended) without producing a grid.
var ErrNoSolution = errors.New("no solution found")
