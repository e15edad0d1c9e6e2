// SPDX-License-Identifier: MIT

// Package ui is the terminal renderer for stepviz play: a bubbletea program
// that drives a player.Controller from the keyboard and renders its frames.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/player"
)

// Model is the bubbletea model for the play screen.
type Model struct {
	ctrl  *player.Controller
	trace catalog.Trace
	feed  feed
	stop  func()

	frame player.Frame

	bar    progress.Model
	spring harmonica.Spring
	shown  float64
	vel    float64

	width    int
	quitting bool
}

// New subscribes to ctrl and returns the model. Load the trace into ctrl
// after New so the first frame reaches the screen.
func New(ctrl *player.Controller, trace catalog.Trace) Model {
	f := newFeed()
	return Model{
		ctrl:   ctrl,
		trace:  trace,
		feed:   f,
		stop:   ctrl.Subscribe(f.push),
		frame:  ctrl.Frame(),
		bar:    progress.New(progress.WithScaledGradient("#FF8C00", "#FF5F1F"), progress.WithoutPercentage()),
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Frame returns the last frame the model rendered.
func (m Model) Frame() player.Frame { return m.frame }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.feed.wait(), animCmd(), tea.SetWindowTitle("stepviz"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			m.stop()
			m.ctrl.Close()
			return m, tea.Quit
		}
		m.handleKey(msg.String())
		m.frame = m.ctrl.Frame()
		return m, nil

	case frameMsg:
		m.frame = player.Frame(msg)
		return m, m.feed.wait()

	case animMsg:
		m.shown, m.vel = m.spring.Update(m.shown, m.vel, m.target())
		return m, animCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width-8, 20), 60)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(key string) {
	switch key {
	case " ":
		m.ctrl.Toggle()
	case "right", "l":
		m.ctrl.StepForward()
	case "left", "h":
		m.ctrl.StepBackward()
	case "home", "g":
		m.ctrl.Reset()
	case "+", "=":
		m.ctrl.SetSpeed(m.ctrl.Speed() + speedStep)
	case "-", "_":
		m.ctrl.SetSpeed(m.ctrl.Speed() - speedStep)
	default:
		if k, ok := decile(key, m.frame.Total); ok {
			m.ctrl.Seek(k)
		}
	}
}

// target is the bar fill for the current frame.
func (m Model) target() float64 {
	if m.frame.Total <= 1 {
		if m.frame.AtEnd() {
			return 1
		}
		return 0
	}
	return float64(m.frame.Position) / float64(m.frame.Total-1)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	f := m.frame

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("stepviz · "+f.Name) + "\n\n")

	status := fmt.Sprintf("step %d/%d  ·  %.1fx", f.Position+1, f.Total, f.Speed)
	b.WriteString("  " + stateStyle(f.State.String()).Render(f.State.String()) + "  " + statusStyle.Render(status) + "\n")
	b.WriteString("  " + m.bar.ViewAs(clamp01(m.shown)) + "\n\n")

	if kinds := m.trace.Kinds(); f.Position < len(kinds) {
		b.WriteString("  " + kindStyle.Render(kinds[f.Position].String()) + "  " + noteStyle.Render(f.Note) + "\n\n")
	}
	b.WriteString("  " + helpStyle.Render(helpText()) + "\n")
	return b.String()
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
