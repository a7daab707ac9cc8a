package game

import (
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxQuadsPerBatch keeps vertex indices inside uint16
const maxQuadsPerBatch = (1 << 16) / 4

// Rasterizer turns a DrawList into ebiten draw calls. Its buffers are reused between frames.
type Rasterizer struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRasterizer(white *ebiten.Image) *Rasterizer {
	return &Rasterizer{white: white}
}

// DrawQuads fills every quad in order, so later quads paint over earlier ones.
func (r *Rasterizer) DrawQuads(dst *ebiten.Image, quads []render.Quad) {
	for start := 0; start < len(quads); start += maxQuadsPerBatch {
		end := min(start+maxQuadsPerBatch, len(quads))
		r.vertices, r.indices = appendQuads(r.vertices[:0], r.indices[:0], quads[start:end])
		dst.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{})
	}
}

// DrawSprites blits each sprite scaled to its projected size, in list order.
func (r *Rasterizer) DrawSprites(dst *ebiten.Image, list []render.Sprite, images map[traffic.Kind]*ebiten.Image) {
	for _, s := range list {
		img, ok := images[s.Kind]
		if !ok {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
		op.GeoM.Translate(s.X, s.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	}
}

// appendQuads splits each quad into two triangles sharing its first and third corners
func appendQuads(vertices []ebiten.Vertex, indices []uint16, quads []render.Quad) ([]ebiten.Vertex, []uint16) {
	for _, q := range quads {
		base := uint16(len(vertices))
		cr := float32(q.Color.R) / 0xff
		cg := float32(q.Color.G) / 0xff
		cb := float32(q.Color.B) / 0xff
		ca := float32(q.Color.A) / 0xff
		for _, p := range q.Points {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
