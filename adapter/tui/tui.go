// Package tui is a terminal monitor for a running engine: it renders the
// interrupt controller's request/enable bits, the timer registers, and the
// APU channel status live as the engine ticks.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/oisin-vance/gbcore/addr"
	"github.com/oisin-vance/gbcore/audio"
	"github.com/oisin-vance/gbcore/interrupt"
	"github.com/oisin-vance/gbcore/timer"
)

// interruptNames lists the six interrupt types in priority order, mirroring
// addr.Interrupt's String method but kept local so the monitor doesn't need
// to format them per frame.
var interruptNames = [addr.NumInterrupts]string{"VBlank", "LCD", "Timer", "Serial", "Joypad", "RTC"}

// Monitor renders the interrupt controller and timer state to a tcell
// screen, one frame per Draw call. It owns no engine state; the host is
// expected to call Draw after each batch of Engine.Cycle calls.
type Monitor struct {
	screen tcell.Screen

	interrupts *interrupt.Controller
	timer      *timer.Timer
	apu        *audio.APU
}

// New allocates and initializes a tcell screen bound to the given
// collaborators. Close must be called when the host is done with it.
func New(ic *interrupt.Controller, t *timer.Timer, a *audio.APU) (*Monitor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: failed to init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	return &Monitor{screen: screen, interrupts: ic, timer: t, apu: a}, nil
}

// Close tears down the terminal, restoring the prior terminal state.
func (m *Monitor) Close() {
	m.screen.Fini()
}

// priorityColor returns a color for priority index i (0 = highest) across
// the NumInterrupts priority levels, ranging green (highest priority) to
// red (lowest).
func priorityColor(i, total int) tcell.Color {
	hue := 120.0 * (1.0 - float64(i)/float64(total-1))
	c := colorful.Hsv(hue, 0.8, 0.9)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// channelColor returns a color for one of the APU's four channels,
// distributed evenly around the hue wheel so each channel's light is
// visually distinct.
func channelColor(i int) tcell.Color {
	c := colorful.Hsv(float64(i)*90.0, 0.7, 0.9)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders one frame of interrupt/timer/APU status. It does not poll
// for input; callers that want to react to keypresses should drain
// m.screen.PollEvent() themselves between Draw calls.
func (m *Monitor) Draw() {
	m.screen.Clear()

	row := 0
	m.puts(0, row, tcell.StyleDefault.Bold(true), "interrupts  IF/IE  priority")
	row++

	ifReg := m.interrupts.IF()
	ieReg := m.interrupts.IE()
	for i := 0; i < addr.NumInterrupts; i++ {
		bit := uint8(1) << uint(i)
		style := tcell.StyleDefault.Foreground(priorityColor(i, addr.NumInterrupts))
		mark := ' '
		if ifReg&bit != 0 {
			mark = '*'
		}
		enabled := ' '
		if ieReg&bit != 0 {
			enabled = 'E'
		}
		m.puts(0, row, style, fmt.Sprintf("%-10s   %c%c     %d", interruptNames[i], mark, enabled, i))
		row++
	}

	row++
	m.puts(0, row, tcell.StyleDefault.Bold(true), fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x",
		m.timer.DIV(), m.timer.TIMA(), m.timer.TMA(), m.timer.TAC()))
	row += 2

	m.puts(0, row, tcell.StyleDefault.Bold(true), "apu channels")
	row++
	for i := 0; i < 4; i++ {
		style := tcell.StyleDefault.Foreground(channelColor(i))
		lit := "off"
		if m.apu.ReadPort(addr.PortNR52)&(1<<uint(i)) != 0 {
			lit = "on"
		}
		m.puts(0, row, style, fmt.Sprintf("ch%d: %s", i+1, lit))
		row++
	}

	m.screen.Show()
}

func (m *Monitor) puts(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		m.screen.SetContent(x+i, y, r, nil, style)
	}
}
