package render

import (
	"strings"

	"github.com/Faultbox/sunspiral/internal/sim/palette"
)

// Help panel geometry.
const (
	helpWidth      = 300
	helpLineHeight = 22
	helpMargin     = 20
)

var helpLines = []string{
	"Mouse Controls:",
	"- Move: influence nearby points",
	"- Left click: ripple + drag",
	"- Right click: ripple",
	"- Drag: rotate and pan",
	"- Scroll: zoom",
	"Keyboard Controls:",
	"- H/F1: toggle help",
	"- R: reset view",
	"- SPACE: pause",
	"- ESC: exit",
}

// renderHelp draws the control reference panel in the bottom-right corner.
func (s *Scene) renderHelp(c Canvas) {
	height := len(helpLines)*helpLineHeight + 20
	x := s.cfg.Width - helpWidth - helpMargin
	y := s.cfg.Height - height - helpMargin

	c.FillRect(x, y, helpWidth, height, palette.RGB{R: 20, G: 20, B: 20}, 180)

	heading := palette.RGB{R: 255, G: 255, B: 100}
	body := palette.RGB{R: 200, G: 200, B: 200}
	for i, line := range helpLines {
		color := body
		if strings.HasSuffix(line, "Controls:") {
			color = heading
		}
		c.Text(x+10, y+10+i*helpLineHeight, line, color)
	}
}
