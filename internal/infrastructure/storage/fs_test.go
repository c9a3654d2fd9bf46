package storage

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/colorsudoku/internal/domain"
)

func samplePuzzle(alg domain.Algorithm) *domain.Puzzle {
	g := domain.NewGrid(4)
	colors := domain.DefaultColors(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.Set(r, c, colors[(r+c)%4])
		}
	}
	return &domain.Puzzle{
		ID:        uuid.NewString(),
		Seed:      123,
		Algorithm: alg,
		Grid:      *g.Clone(),
		Solution:  *g,
		CreatedAt: 1700000000,
		Name:      "sample",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())
	p := samplePuzzle(domain.ExactCover)

	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Algorithm, got.Algorithm)
	assert.Equal(t, p.Grid.Cells, got.Grid.Cells)
	assert.Equal(t, p.Solution.Cells, got.Solution.Cells)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle(domain.MRV)
	p.ID = ""
	assert.Error(t, s.Save(context.Background(), p))
}

func TestSaveRejectsPathEscapingID(t *testing.T) {
	s := NewFS(t.TempDir())
	for _, id := range []string{"../../etc/x", `..\x`, "a/b", "..", "."} {
		p := samplePuzzle(domain.ExactCover)
		p.ID = id
		assert.Error(t, s.Save(context.Background(), p), "id=%q", id)
	}
}

func TestSaveRejectsUnknownAlgorithm(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle(domain.ExactCover)
	p.Algorithm = domain.Algorithm(9)
	assert.Error(t, s.Save(context.Background(), p))
}

func TestLoadRejectsPathEscapingID(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadUnknownID(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossAlgorithmBuckets(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	a := samplePuzzle(domain.Backtracking)
	b := samplePuzzle(domain.DSATUR)
	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	ids := map[string]domain.Algorithm{}
	for _, m := range metas {
		ids[m.ID] = m.Algorithm
	}
	assert.Equal(t, domain.Backtracking, ids[a.ID])
	assert.Equal(t, domain.DSATUR, ids[b.ID])
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
