package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// keyLog records typed runes and resize events.
type keyLog struct {
	typed  string
	width  int
	echoed []string
}

func (m keyLog) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (m keyLog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case echoMsg:
		m.echoed = append(m.echoed, string(msg))
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			return m, func() tea.Msg { return echoMsg("enter") }
		}
		m.typed += msg.String()
	}
	return m, nil
}

func (m keyLog) View() string { return "typed:" + m.typed }

func TestDriver_InitAndKeys(t *testing.T) {
	d := New(t, keyLog{}, WithSize(80, 24))
	d.DrainInit()
	d.Keys("ab", "enter")

	m := d.Model.(keyLog)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, []string{"init", "enter"}, m.echoed)
	d.RequireViewContains("typed:ab")
}

func TestDriver_QuitStopsInput(t *testing.T) {
	d := New(t, keyLog{})
	d.Keys("x", "esc", "y")

	assert.True(t, d.Quitting)
	assert.Equal(t, "x", d.Model.(keyLog).typed)
}
