package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyhook/input"
)

// pointerScale converts terminal cell motion to mouse delta units
const pointerScale = 20.0

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// eventPump feeds terminal events into the input collector
type eventPump struct {
	screen    tcell.Screen
	keys      *input.KeyTable
	collector *input.Collector

	quit     chan struct{}
	quitOnce sync.Once
}

func newEventPump(screen tcell.Screen, keys *input.KeyTable, collector *input.Collector) *eventPump {
	return &eventPump{
		screen:    screen,
		keys:      keys,
		collector: collector,
		quit:      make(chan struct{}),
	}
}

// run blocks on PollEvent until the screen is finalized or quit is requested
func (p *eventPump) run() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			p.stop()
			return
		}
		if !p.handle(ev) {
			p.stop()
			return
		}
	}
}

// handle returns false on a quit request
func (p *eventPump) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := p.keys.Lookup(ev)
		if action == input.ActionQuit {
			return false
		}
		p.collector.KeyEvent(action, ev.When())

	case *tcell.EventMouse:
		x, y := ev.Position()
		p.collector.PointerEvent(float64(x)*pointerScale, float64(y)*pointerScale*2)
		buttons := ev.Buttons()
		p.collector.ButtonEvent(input.ButtonPrimary, buttons&tcell.Button1 != 0)
		p.collector.ButtonEvent(input.ButtonSecondary, buttons&tcell.Button2 != 0)

	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *eventPump) stop() {
	p.quitOnce.Do(func() { close(p.quit) })
}

// Done is closed once the pump exits
func (p *eventPump) Done() <-chan struct{} {
	return p.quit
}
