package term

import (
	"fmt"
	"time"

	"wirespin/internal/core"
	"wirespin/pkg/spinner"

	"github.com/gdamore/tcell/v2"
)

// Loop drives the spinner on a tcell screen: it owns the shape clock, a cell
// canvas sized to the terminal, and the input loop.
type Loop struct {
	screen tcell.Screen
	clock  *core.ShapeClock
	canvas *Canvas
	seed   int64
	dt     float64
	side   int
}

// Run animates the wireframe in the terminal until the user quits. It owns
// the screen lifecycle; the terminal is restored on return.
func Run(cfg *core.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	queue := core.NewQueue(cfg.Seed)
	l := &Loop{
		screen: screen,
		clock:  core.NewShapeClock(queue, cfg.Speed),
		seed:   cfg.Seed,
		dt:     1.0 / float64(tps),
	}
	l.run(time.Second / time.Duration(tps))
	return nil
}

func (l *Loop) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- l.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !l.handleInput(ev) {
				return
			}
		case <-ticker.C:
			l.clock.Tick(l.dt)
			l.draw()
		}
	}
}

func (l *Loop) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			l.clock.SetPaused(!l.clock.Paused())
		case 'n', 'N':
			if l.clock.Paused() {
				l.clock.Step(l.dt)
			}
		case '+', '=':
			l.clock.SetSpeed(l.clock.Speed() * speedStep)
		case '-', '_':
			l.clock.SetSpeed(l.clock.Speed() / speedStep)
		case 'r', 'R':
			l.clock.Reset(core.NewQueue(l.seed))
		case 's', 'S':
			l.clock.Reset(spinner.NewShapeQueue())
		}
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *Loop) draw() {
	w, h := l.screen.Size()

	// Terminal cells are roughly twice as tall as wide, so a square spinner
	// needs a canvas twice as wide as it is high.
	side := w
	if 2*h < side {
		side = 2 * h
	}
	if l.canvas == nil || l.side != side {
		l.canvas = NewCanvas(side, side/2)
		l.side = side
	}
	l.canvas.Clear()

	fr := spinner.ComputeFrame(
		l.clock.Queue(), l.clock.ShapeTime(), l.clock.TotalTime(),
		l.clock.Speed(), float64(side),
	)
	l.canvas.DrawFrame(&fr, float64(side))

	l.screen.Clear()
	cw, ch := l.canvas.Size()
	offX := (w - cw) / 2
	offY := (h - ch) / 2
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			cell := l.canvas.At(x, y)
			if cell.Intensity <= 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(cellColor(cell))
			l.screen.SetContent(offX+x, offY+y, cell.Rune(), nil, style)
		}
	}
	l.drawStatus(h)
	l.screen.Show()
}

func (l *Loop) drawStatus(h int) {
	q := l.clock.Queue()
	blend := spinner.Blend(l.clock.ShapeTime())
	status := fmt.Sprintf("wirespin  shape %d %s", l.clock.Advances(), q.ShapeName(0))
	if blend > 0 {
		status += fmt.Sprintf(" > %s %3.0f%%", q.ShapeName(1), blend*100)
	}
	status += fmt.Sprintf("  speed %.2fx", l.clock.Speed())
	if l.clock.Paused() {
		status += "  paused"
	}
	drawText(l.screen, 1, 0, statusStyle, status)
	drawText(l.screen, 1, h-1, helpStyle, "q quit  space pause  n step  +/- speed  r restart  s shuffle")
}

// cellColor scales the stroke color by its coverage intensity.
func cellColor(c Cell) tcell.Color {
	return tcell.NewRGBColor(
		int32(float64(c.Color.R)*c.Intensity+0.5),
		int32(float64(c.Color.G)*c.Intensity+0.5),
		int32(float64(c.Color.B)*c.Intensity+0.5),
	)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, msg string) {
	for i, r := range msg {
		s.SetContent(x+i, y, r, nil, style)
	}
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(216, 221, 232))
	helpStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(119, 110, 162))
)

const speedStep = 1.25
