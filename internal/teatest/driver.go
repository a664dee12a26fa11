// Package teatest drives a bubbletea model synchronously in tests.
//
// Update is called directly and every returned Cmd is executed and fed
// back until nothing is left. Cmds that block (cursor blinks, ticks) are
// abandoned after a short timeout, so timers never fire inside a test;
// deliver their messages with Send when a test needs them.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// MaxDrainDepth bounds how long a chain of Cmds may run.
const MaxDrainDepth = 100

// cmdTimeout separates immediate Cmds (store reads, message factories)
// from ones waiting on a timer.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been executed.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New creates a Driver. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// Run executes cmd and drains whatever follows from it.
func (d *Driver) Run(cmd tea.Cmd) {
	d.T.Helper()
	d.drain(cmd, 0)
}

// namedKeys maps key names to their key types.
var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"pgdown":    tea.KeyPgDown,
	"pgup":      tea.KeyPgUp,
}

// Press sends each key in turn. Names from the table above map to special
// keys; anything else is sent as literal runes.
func (d *Driver) Press(keys ...string) {
	d.T.Helper()
	for _, k := range keys {
		if t, ok := namedKeys[k]; ok {
			d.Send(tea.KeyMsg{Type: t})
			continue
		}
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Press("enter")
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Press("esc")
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.Press("up")
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Press("down")
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Press("ctrl+c")
}

// Type sends s one rune at a time, as a user typing would.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the rendered model.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns the rendered model with styling removed.
func (d *Driver) PlainView() string {
	return ansi.Strip(d.Model.View())
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}
	if isBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

// runWithTimeout returns nil when cmd has not produced a message in time.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages from bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
