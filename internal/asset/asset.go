// Package asset holds the preloaded image and animation table the engine
// draws from. Game code looks assets up by string key and never loads files
// itself.
package asset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

var (
	// ErrUnknownAsset is returned for keys missing from the table.
	ErrUnknownAsset = errors.New("asset: unknown key")

	// ErrInvalidAssetVariant is returned when a variant index is outside the
	// image sequence of a key.
	ErrInvalidAssetVariant = errors.New("asset: invalid asset variant")
)

// VariantError describes an out-of-range variant lookup.
type VariantError struct {
	Key     string
	Variant int
	Count   int
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("asset: invalid asset variant %d for %q (have %d)", e.Variant, e.Key, e.Count)
}

func (e *VariantError) Unwrap() error {
	return ErrInvalidAssetVariant
}

// Table maps keys to image sequences and animation templates.
type Table struct {
	images     map[string][]core.Image
	animations map[string]*anim.Animation
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		images:     make(map[string][]core.Image),
		animations: make(map[string]*anim.Animation),
	}
}

// AddImages registers an image sequence under key, replacing any previous one.
func (t *Table) AddImages(key string, imgs []core.Image) {
	t.images[key] = imgs
}

// AddAnimation registers an animation template under key.
func (t *Table) AddAnimation(key string, a *anim.Animation) {
	t.animations[key] = a
}

// Images returns the image sequence for key.
func (t *Table) Images(key string) ([]core.Image, error) {
	imgs, ok := t.images[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAsset, key)
	}
	return imgs, nil
}

// Image returns a single variant of key.
func (t *Table) Image(key string, variant int) (core.Image, error) {
	imgs, err := t.Images(key)
	if err != nil {
		return core.Image{}, err
	}
	if variant < 0 || variant >= len(imgs) {
		return core.Image{}, &VariantError{Key: key, Variant: variant, Count: len(imgs)}
	}
	return imgs[variant], nil
}

// Variants returns how many images key has, or 0 when unknown.
func (t *Table) Variants(key string) int {
	return len(t.images[key])
}

// CheckVariant validates a variant without fetching the image.
func (t *Table) CheckVariant(key string, variant int) error {
	_, err := t.Image(key, variant)
	return err
}

// Animation returns a fresh copy of the animation template for key.
func (t *Table) Animation(key string) (*anim.Animation, error) {
	a, ok := t.animations[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAsset, key)
	}
	return a.Copy(), nil
}

// HasAnimation reports whether key names an animation.
func (t *Table) HasAnimation(key string) bool {
	_, ok := t.animations[key]
	return ok
}

// Keys returns all image and animation keys, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.images)+len(t.animations))
	for k := range t.images {
		keys = append(keys, k)
	}
	for k := range t.animations {
		if _, dup := t.images[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
