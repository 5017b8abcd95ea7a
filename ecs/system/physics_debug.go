package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/maskbound/ecs"
	"golang.org/x/image/colornames"
)

// debugOutline is one physics shape in screen space. Circles carry a
// radius; segments carry both endpoints and a stroke width.
type debugOutline struct {
	X1, Y1, X2, Y2 float32
	Radius         float32
	Segment        bool
}

// DrawPhysicsDebug outlines the sensor circles and wall segments of the
// physics space.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	for _, o := range debugOutlines(space, ViewportFor(w, screen)) {
		if o.Segment {
			vector.StrokeLine(screen, o.X1, o.Y1, o.X2, o.Y2, max(o.Radius*2, 1), debugWallColor, true)
			continue
		}
		vector.StrokeCircle(screen, o.X1, o.Y1, o.Radius, 1, debugSensorColor, true)
	}
}

var (
	debugWallColor   = color.NRGBA{R: colornames.Lime.R, G: colornames.Lime.G, B: colornames.Lime.B, A: 0x80}
	debugSensorColor = colornames.Yellowgreen
)

func debugOutlines(space *cp.Space, view Viewport) []debugOutline {
	var out []debugOutline
	space.EachShape(func(shape *cp.Shape) {
		switch s := shape.Class.(type) {
		case *cp.Circle:
			c := s.TransformC()
			x, y := view.ToScreen(c.X, c.Y)
			out = append(out, debugOutline{X1: x, Y1: y, X2: x, Y2: y, Radius: float32(s.Radius() * view.Scale)})
		case *cp.Segment:
			a, b := s.TransformA(), s.TransformB()
			x1, y1 := view.ToScreen(a.X, a.Y)
			x2, y2 := view.ToScreen(b.X, b.Y)
			out = append(out, debugOutline{X1: x1, Y1: y1, X2: x2, Y2: y2, Radius: float32(s.Radius() * view.Scale), Segment: true})
		}
	})
	return out
}
