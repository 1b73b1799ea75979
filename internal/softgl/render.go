package softgl

import (
	"glxform"
	"glxform/internal/demo"
)

type Options struct {
	// Wireframe draws triangle edges instead of filling them.
	Wireframe bool
}

// Stats counts what Render did with the mesh.
type Stats struct {
	Drawn, Clipped int
}

// clip maps a clip-space point to window coordinates. ok is false when the
// point is behind the eye or outside the near/far range; x and y outside
// the viewport are left to the rasterizer's bounds.
func clip(p glxform.Vector4, width, height int) (v Vertex, ok bool) {
	if p.W <= 0 || p.Z < -p.W || p.Z > p.W {
		return Vertex{}, false
	}
	x := float64(p.X / p.W)
	y := float64(p.Y / p.W)
	v.X = (x + 1) * float64(width) / 2
	v.Y = (1 - y) * float64(height) / 2
	v.Z = float64(p.Z / p.W)
	return v, true
}

// Render draws mesh as a triangle list transformed by mvp. Triangles with a
// vertex outside the depth range of the clip volume are dropped whole.
func Render(c *Canvas, mesh demo.Mesh, mvp glxform.Matrix4, opts Options) Stats {
	var st Stats
	w, h := c.Width(), c.Height()

	for t := 0; t+2 < mesh.Count; t += 3 {
		var tri [3]Vertex
		visible := true
		for k := 0; k < 3; k++ {
			v, ok := clip(mvp.TransformPoint(mesh.Position(t+k)), w, h)
			if !ok {
				visible = false
				break
			}
			v.Color = mesh.VertexColor(t + k)
			tri[k] = v
		}
		if !visible {
			st.Clipped++
			continue
		}
		st.Drawn++

		if opts.Wireframe {
			for k := 0; k < 3; k++ {
				a, b := tri[k], tri[(k+1)%3]
				c.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), a.Color)
			}
			continue
		}
		c.FillTriangle(tri[0], tri[1], tri[2])
	}
	return st
}

// RenderScene draws s with its current P·V·M.
func RenderScene(c *Canvas, s demo.Scene, opts Options) Stats {
	return Render(c, s.Mesh(), s.Matrices().MVP(), opts)
}
