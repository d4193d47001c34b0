package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/hud"
)

// World units per terminal cell; cells are roughly twice as tall as wide
const (
	unitsPerColumn = 1.0
	unitsPerRow    = 2.0
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleShop    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightYellow)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDebug   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleHook    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// sideView draws an orthographic X/Y projection centered on the player plus the HUD
type sideView struct {
	screen tcell.Screen
}

// project maps a world position to a cell relative to camera; ok is false off screen
func project(p, camera mgl64.Vec3, width, height int) (x, y int, ok bool) {
	fx := (p.X()-camera.X())/unitsPerColumn + float64(width)/2
	fy := float64(height)/2 - (p.Y()-camera.Y())/unitsPerRow
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && x < width && y >= 0 && y < height
}

// materialStyle converts linear HDR color to a terminal color dimmed by alpha
func materialStyle(m component.MaterialComponent) tcell.Style {
	channel := func(c float64) int32 {
		v := math.Min(1, math.Max(0, c)) * math.Min(1, math.Max(0, m.Alpha))
		return int32(math.Round(v * 255))
	}
	style := styleDefault.Foreground(tcell.NewRGBColor(channel(m.Color.X()), channel(m.Color.Y()), channel(m.Color.Z())))
	if m.Outline {
		style = style.Reverse(true)
	}
	return style
}

// glyphFor picks the character for an entity by its tags
func glyphFor(w *engine.World, e core.Entity) rune {
	c := w.Components
	switch {
	case c.Player.Has(e):
		return '@'
	case c.Ground.Has(e):
		return '='
	case c.StaticSphere.Has(e):
		return 'O'
	case c.Member.Has(e):
		return '#'
	case c.FallingObject.Has(e):
		return 'o'
	default:
		return '.'
	}
}

func (v *sideView) drawMenu() {
	v.screen.Clear()
	width, height := v.screen.Size()
	title := "S K Y H O O K"
	prompt := "press Enter or click to start, Ctrl-Q to quit"
	v.text((width-len(title))/2, height/2-1, title, styleHUD)
	v.text((width-len(prompt))/2, height/2+1, prompt, styleDim)
	v.screen.Show()
}

func (v *sideView) drawPlaying(w *engine.World) {
	v.screen.Clear()
	width, height := v.screen.Size()

	var camera mgl64.Vec3
	player, err := w.PlayerEntity()
	if err == nil {
		if t, ok := w.Components.Transform.Get(player); ok {
			camera = t.Position
		}
	}

	c := w.Components
	for _, e := range c.Material.All() {
		t, ok := c.Transform.Get(e)
		if !ok || e == player {
			continue
		}
		m, _ := c.Material.Get(e)
		if c.Ground.Has(e) {
			v.drawGround(t, camera, width, height, m)
			continue
		}
		if x, y, ok := project(t.Position, camera, width, height); ok {
			v.screen.SetContent(x, y, glyphFor(w, e), nil, materialStyle(m))
		}
	}

	if err == nil {
		v.drawHook(w, player, camera, width, height)
		if m, ok := c.Material.Get(player); ok {
			v.screen.SetContent(width/2, height/2, '@', nil, materialStyle(m).Bold(true))
		}
	}

	v.drawHUD(hud.Build(w), width, height)
	v.screen.Show()
}

func (v *sideView) drawGround(t component.TransformComponent, camera mgl64.Vec3, width, height int, m component.MaterialComponent) {
	_, y, ok := project(t.Position, camera, width, height)
	if !ok {
		return
	}
	style := materialStyle(m)
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, '=', nil, style)
	}
}

// drawHook plots the rope from the player to the hooked entity
func (v *sideView) drawHook(w *engine.World, player core.Entity, camera mgl64.Vec3, width, height int) {
	pc, ok := w.Components.Player.Get(player)
	if !ok || !pc.IsHooked() {
		return
	}
	target, ok := w.Components.Transform.Get(pc.HookedOnto)
	if !ok {
		return
	}
	tx, ty, _ := project(target.Position, camera, width, height)
	x0, y0 := width/2, height/2
	steps := max(abs(tx-x0), abs(ty-y0))
	for i := 1; i < steps; i++ {
		x := x0 + (tx-x0)*i/steps
		y := y0 + (ty-y0)*i/steps
		if x >= 0 && x < width && y >= 0 && y < height {
			v.screen.SetContent(x, y, '.', nil, styleHook)
		}
	}
}

func (v *sideView) drawHUD(view hud.View, width, height int) {
	for i, line := range view.ScoreLines() {
		v.text(1, i, line, styleHUD)
	}

	for i, line := range view.Debug {
		v.text(width-len(line)-1, i, line, styleDebug)
	}

	if lines := view.ShopLines(); lines != nil {
		top := height/2 - len(lines)/2
		for i, line := range lines {
			v.text((width-len(line))/2, top+i, " "+line+" ", styleShop)
		}
	}

	if view.Hint != "" {
		v.text((width-len(view.Hint))/2, height-2, view.Hint, styleHUD)
	}
	if view.CursorReleased && view.Shop == nil {
		msg := "paused - click to resume"
		v.text((width-len(msg))/2, height/2+2, msg, styleDim)
	}
}

func (v *sideView) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
