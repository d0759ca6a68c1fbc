// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"sync"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/iox/imagex"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Raster is a software [Renderer] that draws into an [image.RGBA].
// Segments are drawn first, then spheres as shaded discs from far to
// near. The resources of a primitives set are its [Materials].
type Raster struct {

	// LineWidth is the width of edge segments in pixels.
	LineWidth float32

	// CircleSegments is the number of polygon segments of a sphere disc.
	CircleSegments int

	mu        sync.Mutex
	img       *image.RGBA
	rast      *vector.Rasterizer
	materials map[uint64]*Materials
	order     []int
}

// NewRaster returns a new software renderer.
func NewRaster() *Raster {
	return &Raster{LineWidth: 1.5, CircleSegments: 24, materials: map[uint64]*Materials{}}
}

func (rs *Raster) Acquire(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: size %v", ErrResourceAcquisition, size)
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.img != nil && rs.img.Bounds().Size() == size {
		return nil
	}
	rs.img = image.NewRGBA(image.Rectangle{Max: size})
	rs.rast = vector.NewRasterizer(size.X, size.Y)
	rs.rast.DrawOp = draw.Over
	return nil
}

func (rs *Raster) Upload(ps *Primitives) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.img == nil {
		return fmt.Errorf("%w: surface not acquired", ErrResourceAcquisition)
	}
	if rs.materials == nil {
		rs.materials = map[uint64]*Materials{}
	}
	rs.materials[ps.Gen] = NewMaterials(ps)
	return nil
}

func (rs *Raster) Free(ps *Primitives) {
	if ps == nil {
		return
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.materials, ps.Gen)
}

func (rs *Raster) Release() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	clear(rs.materials)
	rs.img = nil
	rs.rast = nil
}

func (rs *Raster) Live() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	n := len(rs.materials)
	if rs.img != nil {
		n++
	}
	return n
}

// Image returns the rendered image. It is reused by the next render.
func (rs *Raster) Image() *image.RGBA {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.img
}

func (rs *Raster) Render(cam *Camera, ps *Primitives, bg color.RGBA) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.img == nil {
		return fmt.Errorf("%w: surface not acquired", ErrResourceAcquisition)
	}
	draw.Draw(rs.img, rs.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if ps == nil {
		return nil
	}
	ms, ok := rs.materials[ps.Gen]
	if !ok {
		return fmt.Errorf("xyz.Raster: primitives %d were not uploaded", ps.Gen)
	}
	size := rs.img.Bounds().Size()
	for i := range ps.Segments {
		rs.drawSegment(cam, size, &ps.Segments[i], ms.Library[ms.Segments[i]])
	}

	depth := make([]float32, len(ps.Spheres))
	rs.order = rs.order[:0]
	for i := range ps.Spheres {
		depth[i] = cam.ViewDepth(ps.Spheres[i].Center)
		if depth[i] > cam.Near {
			rs.order = append(rs.order, i)
		}
	}
	slices.SortStableFunc(rs.order, func(a, b int) int {
		switch {
		case depth[a] > depth[b]:
			return -1
		case depth[a] < depth[b]:
			return 1
		}
		return 0
	})
	for _, i := range rs.order {
		sp := &ps.Spheres[i]
		c, ok := cam.Project(sp.Center, size)
		if !ok {
			continue
		}
		r := sp.Radius * cam.PixelScale(depth[i], size.Y)
		mi := ms.Spheres[i]
		rs.drawDisc(c, r, ms.Outlines[mi])
		rs.drawDisc(c, r*0.8, ms.Library[mi])
	}
	return nil
}

func (rs *Raster) drawSegment(cam *Camera, size image.Point, sg *Segment, mt *Material) {
	if cam.ViewDepth(sg.Start) <= cam.Near || cam.ViewDepth(sg.End) <= cam.Near {
		return
	}
	a, aok := cam.Project(sg.Start, size)
	b, bok := cam.Project(sg.End, size)
	if !aok || !bok {
		return
	}
	d := b.Sub(a)
	ln := d.Length()
	if ln == 0 {
		return
	}
	// normal offset of half the line width
	n := math32.Vec2(-d.Y, d.X).MulScalar(0.5 * rs.LineWidth / ln)
	z := rs.rast
	z.Reset(size.X, size.Y)
	z.MoveTo(a.X+n.X, a.Y+n.Y)
	z.LineTo(b.X+n.X, b.Y+n.Y)
	z.LineTo(b.X-n.X, b.Y-n.Y)
	z.LineTo(a.X-n.X, a.Y-n.Y)
	z.ClosePath()
	z.Draw(rs.img, rs.img.Bounds(), mt.Source(), image.Point{})
}

func (rs *Raster) drawDisc(c math32.Vector2, r float32, mt *Material) {
	if r < 0.5 {
		r = 0.5
	}
	size := rs.img.Bounds().Size()
	if c.X+r < 0 || c.Y+r < 0 || c.X-r > float32(size.X) || c.Y-r > float32(size.Y) {
		return
	}
	z := rs.rast
	z.Reset(size.X, size.Y)
	n := max(rs.CircleSegments, 8)
	for i := range n {
		a := 2 * math32.Pi * float32(i) / float32(n)
		x, y := c.X+r*math32.Cos(a), c.Y+r*math32.Sin(a)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(rs.img, rs.img.Bounds(), mt.Source(), image.Point{})
}

// SaveImage saves the given image to the given file, in the
// format given by the file extension.
func SaveImage(filename string, img image.Image) error {
	return imagex.Save(img, filename)
}
