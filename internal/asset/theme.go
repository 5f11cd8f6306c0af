package asset

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// YAMLImage is one frame of a sequence.
type YAMLImage struct {
	Art   []string `yaml:"art,omitempty"`
	Glyph string   `yaml:"glyph,omitempty"`
	Color string   `yaml:"color,omitempty"`
}

// YAMLSequence is a list of frames sharing a pixel size and color.
type YAMLSequence struct {
	Size   [2]int      `yaml:"size"`
	Color  string      `yaml:"color,omitempty"`
	Frames []YAMLImage `yaml:"frames"`
}

// YAMLAnimation is a sequence plus its timing.
type YAMLAnimation struct {
	YAMLSequence `yaml:",inline"`
	ImgDur       int   `yaml:"img_dur"`
	Loop         *bool `yaml:"loop,omitempty"`
}

// YAMLTheme is the file layout of a theme.
type YAMLTheme struct {
	Images     map[string]YAMLSequence  `yaml:"images"`
	Animations map[string]YAMLAnimation `yaml:"animations"`
}

// Default returns the table built from the embedded theme.
func Default() (*Table, error) {
	t, err := Load(defaultThemeYAML)
	if err != nil {
		return nil, fmt.Errorf("asset: embedded theme: %w", err)
	}
	return t, nil
}

// LoadFile reads a theme from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: reading theme %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a YAML theme.
func Load(data []byte) (*Table, error) {
	var yt YAMLTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("asset: yaml unmarshal: %w", err)
	}

	t := NewTable()
	for key, seq := range yt.Images {
		imgs, err := seq.images(key)
		if err != nil {
			return nil, err
		}
		t.AddImages(key, imgs)
	}

	for key, a := range yt.Animations {
		imgs, err := a.images(key)
		if err != nil {
			return nil, err
		}
		loop := true
		if a.Loop != nil {
			loop = *a.Loop
		}
		dur := a.ImgDur
		if dur <= 0 {
			dur = 5
		}
		t.AddAnimation(key, anim.New(imgs, dur, loop))
	}

	return t, nil
}

func (s YAMLSequence) images(key string) ([]core.Image, error) {
	if len(s.Frames) == 0 {
		return nil, fmt.Errorf("asset: %q has no frames", key)
	}

	base, ok := core.ParseColor(s.Color)
	if !ok {
		return nil, fmt.Errorf("asset: %q: unknown color %q", key, s.Color)
	}

	imgs := make([]core.Image, len(s.Frames))
	for i, f := range s.Frames {
		color := base
		if f.Color != "" {
			c, ok := core.ParseColor(f.Color)
			if !ok {
				return nil, fmt.Errorf("asset: %q frame %d: unknown color %q", key, i, f.Color)
			}
			color = c
		}

		var glyph rune
		for _, r := range f.Glyph {
			glyph = r
			break
		}

		imgs[i] = core.Image{
			W:     s.Size[0],
			H:     s.Size[1],
			Art:   f.Art,
			Glyph: glyph,
			Color: color,
		}
	}
	return imgs, nil
}
