package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// recorder keeps every message it sees and answers "ping" with an echo.
type recorder struct {
	seen []string
	w, h int
}

func (r *recorder) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.w, r.h = msg.Width, msg.Height
	case echoMsg:
		r.seen = append(r.seen, string(msg))
	case tea.KeyMsg:
		r.seen = append(r.seen, msg.String())
		switch msg.String() {
		case "ping":
			return r, func() tea.Msg { return echoMsg("pong") }
		case "batch":
			return r, tea.Batch(
				func() tea.Msg { return echoMsg("a") },
				func() tea.Msg { return echoMsg("b") },
			)
		case "tick":
			return r, tea.Tick(time.Hour, func(time.Time) tea.Msg { return echoMsg("late") })
		case "q":
			return r, tea.Quit
		}
	}
	return r, nil
}

func (r *recorder) View() string {
	return "\x1b[1m" + strings.Join(r.seen, ",") + "\x1b[0m"
}

func TestDriver_DrainsInitAndFollowUps(t *testing.T) {
	r := &recorder{}
	d := New(t, r, WithSize(80, 24))
	d.DrainInit()
	d.Press("ping", "batch")

	assert.Equal(t, 80, r.w)
	assert.Equal(t, 24, r.h)
	assert.Equal(t, []string{"init", "ping", "pong", "batch", "a", "b"}, r.seen)
	assert.Equal(t, "init,ping,pong,batch,a,b", d.PlainView())
}

func TestDriver_AbandonsBlockingCmds(t *testing.T) {
	r := &recorder{}
	d := New(t, r)
	d.Press("tick")

	assert.Equal(t, []string{"tick"}, r.seen)
}

func TestDriver_NamedKeysAndQuit(t *testing.T) {
	r := &recorder{}
	d := New(t, r)
	d.PressEnter()
	d.PressEsc()
	d.Type("hi")
	d.PressKey('q')
	d.Press("ignored after quit")

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"enter", "esc", "h", "i", "q"}, r.seen)
}
