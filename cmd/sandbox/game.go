package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/rigid"
	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
	"github.com/milk9111/rigid/ecs/entity"
	"github.com/milk9111/rigid/ecs/system"
	"github.com/milk9111/rigid/scene"
)

const (
	baseWidth  = 960
	baseHeight = 540

	pixelsPerMeter = 32
	fixedDt        = 1.0 / 60
)

type Game struct {
	sceneName string
	world     *ecs.World
	scheduler *ecs.Scheduler
	watcher   *scene.Watcher

	frames  int
	paused  bool
	pending bool

	pauseUI *ebitenui.UI
}

func NewGame(sceneName string, watch bool, paused bool) *Game {
	g := &Game{sceneName: sceneName, paused: paused}
	g.pauseUI = NewPauseUI(g)

	if err := g.loadScene(); err != nil {
		log.Printf("sandbox: %v", err)
		g.world = ecs.NewWorld()
		g.scheduler = ecs.NewScheduler()
	}

	if watch {
		watcher, err := scene.NewWatcher("scene", "scene/scripts")
		if err != nil {
			log.Printf("sandbox: watch scene files: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g
}

// loadScene rebuilds the world and scheduler from the scene file. A broken
// script loses only the script system; the bodies still load.
func (g *Game) loadScene() error {
	spec, err := scene.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	entity.BuildScene(w, spec)

	var systems []ecs.System
	if spec.Script != "" {
		program, err := scene.CompileScript(spec.Script)
		if err != nil {
			log.Printf("sandbox: scene %q: %v", spec.Name, err)
		} else {
			systems = append(systems, system.NewScript(program))
		}
	}
	systems = append(systems,
		&system.Integrate2D{Gravity: spec.Gravity.Vector(), Dt: fixedDt},
		system.ApplyTranslation2D{},
		bodyEventLog{},
	)

	g.world = w
	g.scheduler = ecs.NewScheduler(systems...)
	return nil
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.pending = true
	}

	if g.paused {
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.scheduler.Update(g.world)
		}
		return nil
	}

	if g.pending {
		g.pending = false
		if err := g.loadScene(); err != nil {
			log.Printf("sandbox: reload: %v", err)
		}
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("sandbox: %s changed, reloading", name)
			g.pending = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("sandbox: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.Body2D, component.Colliders2D, func(_ ecs.Entity, body *d2.Body, set *d2.ColliderSet) {
		clr := bodyColor(body.Kind)
		for _, c := range *set {
			drawCollider(screen, body, c, clr)
		}
		drawCenterOfMass(screen, body)
	})

	status := fmt.Sprintf("Frames: %d    FPS: %.2f    Bodies: %d", g.frames, ebiten.ActualFPS(), len(ecs.Entities(g.world)))
	if g.paused {
		status += "    paused (space steps once)"
	}
	ebitenutil.DebugPrint(screen, status)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// bodyEventLog drains structural body events each step so spawns and
// despawns show up in the console while a scene runs.
type bodyEventLog struct{}

func (bodyEventLog) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		body, ok := ev.Data.(ecs.BodyEvent)
		if !ok {
			continue
		}
		log.Printf("sandbox: %s %v", body.Kind, body.Entity)
	}
}

func bodyColor(kind rigid.BodyKind) color.Color {
	switch {
	case kind.IsStatic():
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	case kind.IsKinematic():
		return color.NRGBA{R: 0x56, G: 0x9c, B: 0xd6, A: 0xff}
	default:
		return color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	}
}

func toScreen(v cp.Vector) (float32, float32) {
	return float32(baseWidth/2 + v.X*pixelsPerMeter), float32(baseHeight/2 - v.Y*pixelsPerMeter)
}

func drawCollider(screen *ebiten.Image, body *d2.Body, c d2.Collider, clr color.Color) {
	rot := cp.ForAngle(body.Rotation)
	pos := body.CurrentPosition()

	switch shape := c.Shape.(type) {
	case d2.Circle:
		x, y := toScreen(pos.Add(shape.Offset.Rotate(rot)))
		vector.StrokeCircle(screen, x, y, float32(shape.Radius*pixelsPerMeter), 1, clr, true)
	case d2.Box:
		hw, hh := shape.Width/2, shape.Height/2
		corners := []cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
		drawLoop(screen, pos, rot, shape.Offset, corners, clr)
	case d2.Segment:
		ax, ay := toScreen(pos.Add(shape.A.Rotate(rot)))
		bx, by := toScreen(pos.Add(shape.B.Rotate(rot)))
		vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, true)
		radius := float32(shape.Radius * pixelsPerMeter)
		vector.StrokeCircle(screen, ax, ay, radius, 1, clr, true)
		vector.StrokeCircle(screen, bx, by, radius, 1, clr, true)
	case d2.Capsule:
		a := shape.Offset.Add(cp.Vector{Y: -shape.Height / 2})
		b := shape.Offset.Add(cp.Vector{Y: shape.Height / 2})
		ax, ay := toScreen(pos.Add(a.Rotate(rot)))
		bx, by := toScreen(pos.Add(b.Rotate(rot)))
		vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, true)
		radius := float32(shape.Radius * pixelsPerMeter)
		vector.StrokeCircle(screen, ax, ay, radius, 1, clr, true)
		vector.StrokeCircle(screen, bx, by, radius, 1, clr, true)
	case d2.Polygon:
		drawLoop(screen, pos, rot, cp.Vector{}, shape.Verts, clr)
	}
}

func drawLoop(screen *ebiten.Image, pos, rot, offset cp.Vector, verts []cp.Vector, clr color.Color) {
	if len(verts) < 2 {
		return
	}
	for i := range verts {
		a := pos.Add(offset.Add(verts[i]).Rotate(rot))
		b := pos.Add(offset.Add(verts[(i+1)%len(verts)]).Rotate(rot))
		ax, ay := toScreen(a)
		bx, by := toScreen(b)
		vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, true)
	}
}

func drawCenterOfMass(screen *ebiten.Image, body *d2.Body) {
	rot := cp.ForAngle(body.Rotation)
	com := body.CurrentPosition().Add(body.CenterOfMass.Rotate(rot))
	x, y := toScreen(com)
	vector.FillCircle(screen, x, y, 2, color.NRGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}, true)

	if body.LinearVelocity.LengthSq() > 0 {
		tip := com.Add(body.LinearVelocity.Mult(0.25))
		tx, ty := toScreen(tip)
		vector.StrokeLine(screen, x, y, tx, ty, 1, color.NRGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}, true)
	}
}
