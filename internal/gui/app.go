// Package gui is the windowed front end. It maps real pointer coordinates
// onto the session's world square and renders vectors, traces, and markers
// with raylib.
package gui

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/eigshow/internal/engine"
	"github.com/san-kum/eigshow/internal/export"
	"github.com/san-kum/eigshow/internal/matrices"
	"github.com/san-kum/eigshow/internal/vec"
)

var (
	colBg     = rl.NewColor(10, 10, 10, 255)
	colGrid   = rl.NewColor(30, 30, 30, 255)
	colCircle = rl.NewColor(60, 60, 60, 255)
	colText   = rl.NewColor(140, 140, 140, 255)
	colBright = rl.NewColor(255, 255, 255, 255)
	colX      = rl.NewColor(180, 180, 180, 255)
	colAx     = rl.NewColor(255, 255, 255, 255)
	colY      = rl.NewColor(90, 140, 160, 255)
	colAy     = rl.NewColor(134, 200, 224, 255)
	colMarker = rl.NewColor(255, 210, 60, 255)
	colTrace  = rl.NewColor(120, 120, 120, 255)
	colTraceY = rl.NewColor(70, 110, 130, 255)
)

const (
	winW = 800
	winH = 800
)

type App struct {
	Session *engine.Session
	Choices []string

	lastPointer vec.Vec2
	notices     int
}

func NewApp(catalog *matrices.Catalog, seed uint64) *App {
	a := &App{Choices: catalog.Names()}
	a.Session = engine.NewSession(catalog, seed, engine.ObserverFunc(func(*engine.Session) {
		a.notices++
	}))
	return a
}

// Run opens the window and blocks until it closes.
func Run(catalog *matrices.Catalog, seed uint64) {
	rl.InitWindow(winW, winH, "eigshow")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(catalog, seed)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

// world maps a screen position to world coordinates; screen maps back.
func world(p rl.Vector2) vec.Vec2 {
	scale := float64(winW) / (2 * engine.Threshold)
	return vec.Vec2{
		X: (float64(p.X) - winW/2) / scale,
		Y: (winH/2 - float64(p.Y)) / scale,
	}
}

func screen(v vec.Vec2) rl.Vector2 {
	scale := float64(winW) / (2 * engine.Threshold)
	return rl.NewVector2(
		float32(winW/2+v.X*scale),
		float32(winH/2-v.Y*scale),
	)
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		os.Exit(0)
	}

	p := world(rl.GetMousePosition())
	if p != a.lastPointer {
		a.lastPointer = p
		a.Session.Handle(engine.PointerMoved{P: p})
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.Session.Handle(engine.ButtonPressed{})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.Session.Handle(engine.ButtonReleased{P: p})
	}

	if rl.IsKeyPressed(rl.KeyM) {
		a.Session.Handle(engine.ModeToggled{Paired: !a.Session.YVisible()})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Session.Handle(engine.MatrixSelected{Choice: matrices.Random})
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.cycleChoice(-1)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.cycleChoice(1)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.snapshot()
	}
}

func (a *App) cycleChoice(delta int) {
	cur := a.Session.ChoiceName()
	idx := 0
	for i, name := range a.Choices {
		if name == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(a.Choices)) % len(a.Choices)
	a.Session.Handle(engine.MatrixSelected{Choice: a.Choices[idx]})
}

func (a *App) snapshot() {
	svg := export.SessionSVG(a.Session, winW, winH)
	_ = os.WriteFile("eigshow.svg", []byte(svg), 0644)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	a.drawGrid()

	center := screen(vec.Vec2{})
	radius := float32(winW) / (2 * engine.Threshold)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, colCircle)

	s := a.Session
	a.drawTrace(s.Trace(engine.TrackX), colTrace)
	if s.YVisible() {
		a.drawTrace(s.Trace(engine.TrackY), colTraceY)
	}

	for _, m := range s.Markers(engine.TrackX) {
		rl.DrawCircleV(screen(m.V), 4, colMarker)
		rl.DrawCircleV(screen(m.Image), 4, colMarker)
	}

	a.drawVector(s.X(), colX, "x")
	a.drawVector(s.ImageX(), colAx, "Ax")
	if s.YVisible() {
		a.drawVector(s.Y(), colY, "y")
		a.drawVector(s.ImageY(), colAy, "Ay")
	}

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawGrid() {
	step := float32(winW) / (2 * engine.Threshold)
	for i := int32(-1); i <= 1; i++ {
		off := float32(winW/2) + float32(i)*step
		rl.DrawLine(int32(off), 0, int32(off), winH, colGrid)
		rl.DrawLine(0, int32(off), winW, int32(off), colGrid)
	}
	rl.DrawLine(winW/2, 0, winW/2, winH, colCircle)
	rl.DrawLine(0, winH/2, winW, winH/2, colCircle)
}

func (a *App) drawTrace(trace []engine.Sample, col rl.Color) {
	for i := 1; i < len(trace); i++ {
		rl.DrawLineV(screen(trace[i-1].Image), screen(trace[i].Image), col)
	}
}

func (a *App) drawVector(v vec.Vec2, col rl.Color, label string) {
	origin := screen(vec.Vec2{})
	tip := screen(v)
	rl.DrawLineEx(origin, tip, 2, col)

	// Arrowhead barbs.
	n := v.Norm()
	if n > 0 {
		u := v.Scale(1 / n)
		head := 0.07 * engine.Threshold
		sin, cos := 0.5, -math.Sqrt(3)/2
		l := vec.Vec2{X: u.X*cos - u.Y*sin, Y: u.X*sin + u.Y*cos}.Scale(head)
		r := vec.Vec2{X: u.X*cos + u.Y*sin, Y: -u.X*sin + u.Y*cos}.Scale(head)
		rl.DrawLineEx(tip, screen(v.Add(l)), 2, col)
		rl.DrawLineEx(tip, screen(v.Add(r)), 2, col)
	}

	rl.DrawText(label, int32(tip.X)+6, int32(tip.Y)-6, 16, col)
}

func (a *App) drawHUD() {
	s := a.Session
	rl.DrawText("eigshow", 20, 16, 24, colBright)
	rl.DrawText(s.Mode().Label(), 20, 46, 18, colText)
	rl.DrawText(fmt.Sprintf("A = %s  (%s)", s.Matrix(), s.ChoiceName()), 20, 70, 16, colText)
	rl.DrawText(fmt.Sprintf("trace %d  markers %d",
		len(s.Trace(engine.TrackX)), len(s.Markers(engine.TrackX))), 20, winH-52, 14, colText)
	rl.DrawText("drag x  click to mark  [M] mode  [<-][->] matrix  [R] random  [S] svg  [Q] quit",
		20, winH-28, 14, colText)
}
