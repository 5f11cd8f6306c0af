package ninja

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Cloud drifts right and parallax-scrolls by its depth.
type Cloud struct {
	Pos   core.Vec
	Img   core.Image
	Speed float64
	Depth float64 // 0.2 (far) to 0.8 (near)
}

// Clouds is the wrapping background layer.
type Clouds struct {
	list []Cloud
}

// NewClouds scatters count clouds, sorted far to near.
func NewClouds(ctx *Context, count int) *Clouds {
	variants := max(ctx.Assets.Variants("clouds"), 1)
	c := &Clouds{list: make([]Cloud, 0, count)}
	for i := 0; i < count; i++ {
		c.list = append(c.list, Cloud{
			Pos:   core.V(ctx.Rand.Float64()*99999, ctx.Rand.Float64()*99999),
			Img:   ctx.Image("clouds", ctx.Rand.Intn(variants)),
			Speed: ctx.Rand.Float64()*0.05 + 0.05,
			Depth: ctx.Rand.Float64()*0.6 + 0.2,
		})
	}
	sort.SliceStable(c.list, func(i, j int) bool {
		return c.list[i].Depth < c.list[j].Depth
	})
	return c
}

// Len returns the number of clouds.
func (c *Clouds) Len() int {
	return len(c.list)
}

// Update drifts every cloud.
func (c *Clouds) Update() {
	for i := range c.list {
		c.list[i].Pos.X += c.list[i].Speed
	}
}

// Render draws the clouds, wrapping them around the surface edges.
func (c *Clouds) Render(surf core.Surface, offset core.Point) {
	for _, cl := range c.list {
		x := cl.Pos.X - float64(offset.X)*cl.Depth
		y := cl.Pos.Y - float64(offset.Y)*cl.Depth
		surf.Blit(cl.Img,
			int(wrap(x, float64(surf.Width()+cl.Img.W)))-cl.Img.W,
			int(wrap(y, float64(surf.Height()+cl.Img.H)))-cl.Img.H,
			false)
	}
}

// wrap is a floored modulo: the result is always in [0, m).
func wrap(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
