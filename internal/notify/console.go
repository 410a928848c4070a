package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/udisondev/skillgrowth/internal/game/skill"
)

// Console prints localized, colored notification lines.
// Safe for concurrent use.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	loc    *Localizer
	colors map[skill.Color]*color.Color
	halts  int
}

// NewConsole creates a console presenter writing to w.
func NewConsole(w io.Writer, loc *Localizer) *Console {
	return &Console{
		w:   w,
		loc: loc,
		colors: map[skill.Color]*color.Color{
			skill.ColorDefault: color.New(color.Reset),
			skill.ColorGreen:   color.New(color.FgHiGreen),
			skill.ColorRed:     color.New(color.FgRed),
			// 256-color orange
			skill.ColorOrange: color.New(color.Attribute(38), color.Attribute(5), color.Attribute(208)),
		},
	}
}

func (c *Console) PlaySound(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, color.New(color.Faint).Sprintf("♪ %s", id))
}

// HaltInput is recorded only; the simulator never waits for a key press.
func (c *Console) HaltInput() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.halts++
}

func (c *Console) Notify(n skill.Notification) {
	line := c.loc.Line(n)
	col, ok := c.colors[n.Color]
	if !ok {
		col = c.colors[skill.ColorDefault]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, col.Sprint(line))
}

// Halts returns how many input halts were requested.
func (c *Console) Halts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.halts
}
