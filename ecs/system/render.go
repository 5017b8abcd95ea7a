package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	// PixelsPerUnit converts world units to screen pixels at zoom 1.
	PixelsPerUnit = 24.0

	barWidth  = 200
	barHeight = 12
)

// Viewport maps world coordinates onto the screen. World Y points up.
type Viewport struct {
	CamX, CamY float64
	Scale      float64
	Width      int
	Height     int
}

func (v Viewport) ToScreen(x, y float64) (float32, float32) {
	sx := float64(v.Width)/2 + (x-v.CamX)*v.Scale
	sy := float64(v.Height)/2 - (y-v.CamY)*v.Scale
	return float32(sx), float32(sy)
}

// ViewportFor builds the viewport of the first camera in w.
func ViewportFor(w *ecs.World, screen *ebiten.Image) Viewport {
	b := screen.Bounds()
	v := Viewport{Scale: PixelsPerUnit, Width: b.Dx(), Height: b.Dy()}
	if e, ok := w.First(component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
		v.CamX, v.CamY = cam.X, cam.Y
		if cam.Zoom > 0 {
			v.Scale *= cam.Zoom
		}
	}
	return v
}

// RenderSystem draws the arena with debug primitives.
type RenderSystem struct {
	ShowStates bool
}

func NewRenderSystem(showStates bool) *RenderSystem {
	return &RenderSystem{ShowStates: showStates}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Darkslategray)
	view := ViewportFor(w, screen)

	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		x1, y1 := view.ToScreen(wall.X1, wall.Y1)
		x2, y2 := view.ToScreen(wall.X2, wall.Y2)
		width := float32(max(wall.Thickness*view.Scale, 1))
		vector.StrokeLine(screen, x1, y1, x2, y2, width, colornames.Lightgray, true)
	})

	for _, e := range w.Query(component.AppearanceComponent.Kind(), component.TransformComponent.Kind()) {
		if mask, ok := ecs.Get(w, e, component.MaskComponent.Kind()); ok && !mask.Active {
			continue
		}
		look, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		r.drawBody(screen, view, w, e, look, t)
	}

	r.drawStabilityBar(screen, w)
}

func (r *RenderSystem) drawBody(screen *ebiten.Image, view Viewport, w *ecs.World, e ecs.Entity, look *component.Appearance, t *component.Transform) {
	// Height lifts the body on screen so the eject hop is visible.
	sx, sy := view.ToScreen(t.X, t.Y+t.Z)
	radius := float32(look.Radius * view.Scale)
	clr := look.Color
	if clr == nil {
		clr = colornames.White
	}

	if ecs.Has(w, e, component.ProjectileComponent.Kind()) {
		vector.FillCircle(screen, sx, sy, radius, clr, true)
		return
	}

	enemy, isEnemy := ecs.Get(w, e, component.EnemyComponent.Kind())
	if isEnemy && enemy.State == component.EnemyPossessed {
		vector.StrokeCircle(screen, sx, sy, radius+3, 2, colornames.Gold, true)
	}
	vector.FillCircle(screen, sx, sy, radius, clr, true)

	fx, fy := t.Forward()
	hx, hy := view.ToScreen(t.X+fx*look.Radius*1.4, t.Y+t.Z+fy*look.Radius*1.4)
	vector.StrokeLine(screen, sx, sy, hx, hy, 2, colornames.Black, true)

	if !isEnemy {
		return
	}
	if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok && anim.PlayingAttack() {
		vector.StrokeCircle(screen, sx, sy, radius+1, 1, colornames.Orangered, true)
	}
	if r.ShowStates {
		label := enemy.State.String()
		if p, ok := ecs.Get(w, e, component.PossessableComponent.Kind()); ok {
			label = fmt.Sprintf("%s %.0f/%.0f", label, p.Stability.Current, p.Stability.EffectiveMax)
		} else if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			label = fmt.Sprintf("%s hp %.0f", label, h.Current)
		}
		ebitenutil.DebugPrintAt(screen, label, int(sx-radius), int(sy+radius+2))
	}
}

func (r *RenderSystem) drawStabilityBar(screen *ebiten.Image, w *ecs.World) {
	e, ok := w.First(component.StabilityBarComponent.Kind())
	if !ok {
		return
	}
	bar, _ := ecs.Get(w, e, component.StabilityBarComponent.Kind())
	if !bar.Visible || bar.Max <= 0 {
		return
	}

	x := float32(screen.Bounds().Dx()-barWidth) / 2
	y := float32(16)
	fill := float32(min(bar.Value/bar.Max, 1)) * barWidth

	var clr color.Color = colornames.Mediumseagreen
	if bar.Value/bar.Max <= component.DefaultEnlightenmentThreshold {
		clr = colornames.Mediumpurple
	}
	vector.FillRect(screen, x, y, barWidth, barHeight, colornames.Dimgray, false)
	vector.FillRect(screen, x, y, fill, barHeight, clr, false)
	vector.StrokeRect(screen, x, y, barWidth, barHeight, 1, colornames.White, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("stability %.0f", bar.Value), int(x), int(y+barHeight+2))
}
