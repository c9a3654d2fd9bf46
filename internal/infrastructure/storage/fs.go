package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/colorsudoku/internal/domain"
)

// FS persists puzzles as pretty-printed JSON under <dir>/<algorithm>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var algorithms = []domain.Algorithm{
	domain.Backtracking, domain.MRV, domain.DSATUR, domain.ExactCover,
}

func (s *FS) pathFor(id string, a domain.Algorithm) string {
	return filepath.Join(s.dir, a.String(), strings.TrimSpace(id)+".json")
}

// validID keeps ids usable as plain file names; anything with a path
// separator could escape the data directory.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || !validID(p.ID) {
		return errors.New("invalid puzzle: missing or malformed ID")
	}
	if !p.Algorithm.Valid() {
		return errors.New("invalid puzzle: unknown algorithm")
	}
	target := s.pathFor(p.ID, p.Algorithm)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if !validID(id) {
		return nil, os.ErrNotExist
	}
	for _, a := range algorithms {
		data, err := os.ReadFile(s.pathFor(id, a))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, a := range algorithms {
		ents, err := os.ReadDir(filepath.Join(s.dir, a.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, a.String(), e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Algorithm: p.Algorithm,
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}
