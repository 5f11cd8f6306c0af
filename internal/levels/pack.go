// Package levels provides the numbered level pack the game walks through.
// A pack is any fs.FS holding 0.json, 1.json, ... in the tilemap format.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/tilemap"
)

//go:embed data/*.json
var embedded embed.FS

// ErrNoLevels is returned for a pack without any level file.
var ErrNoLevels = errors.New("levels: no levels found")

var levelName = regexp.MustCompile(`^(\d+)\.json$`)

// Pack is an ordered set of levels.
type Pack struct {
	fsys  fs.FS
	name  string
	count int
}

// Default returns the built-in pack.
func Default() (*Pack, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("levels: embedded pack: %w", err)
	}
	return New(sub, "embedded")
}

// Dir opens a pack stored in a directory.
func Dir(path string) (*Pack, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", path)
	}
	return New(os.DirFS(path), path)
}

// New scans fsys for numbered level files. Numbers must run from 0 without
// gaps.
func New(fsys fs.FS, name string) (*Pack, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", name, err)
	}

	var ids []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := levelName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ids = append(ids, n)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, name)
	}

	sort.Ints(ids)
	for i, n := range ids {
		if n != i {
			return nil, fmt.Errorf("levels: %s: missing level %d", name, i)
		}
	}

	return &Pack{fsys: fsys, name: name, count: len(ids)}, nil
}

// Name describes where the pack came from.
func (p *Pack) Name() string {
	return p.name
}

// Count returns the number of levels.
func (p *Pack) Count() int {
	return p.count
}

// Clamp limits a level index to the pack.
func (p *Pack) Clamp(n int) int {
	return max(0, min(n, p.count-1))
}

// Open loads level n. Missing or malformed files are errors.
func (p *Pack) Open(n int, tileSize int, assets *asset.Table) (*tilemap.Tilemap, error) {
	if n < 0 || n >= p.count {
		return nil, fmt.Errorf("levels: level %d out of range [0, %d)", n, p.count)
	}

	name := strconv.Itoa(n) + ".json"
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", name, err)
	}

	m := tilemap.New(tileSize, assets)
	if err := m.Parse(data); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return m, nil
}

// Summary describes one level for listings.
type Summary struct {
	Index   int
	Tiles   int
	Enemies int
	Player  bool
	Err     error
}

// Summaries opens every level and reports its contents. A broken level is
// reported through Summary.Err rather than aborting the listing.
func (p *Pack) Summaries(tileSize int, assets *asset.Table) []Summary {
	out := make([]Summary, p.count)
	for i := range out {
		out[i].Index = i
		m, err := p.Open(i, tileSize, assets)
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].Tiles = m.Len() + len(m.Offgrid())
		for _, s := range m.Extract([]tilemap.TileID{{Type: tilemap.Spawners, Variant: 0}, {Type: tilemap.Spawners, Variant: 1}}, true) {
			if s.Variant == 0 {
				out[i].Player = true
			} else {
				out[i].Enemies++
			}
		}
	}
	return out
}
