// SPDX-License-Identifier: MIT

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/stepviz/player"
)

const fps = 30

type frameMsg player.Frame
type animMsg time.Time

func animCmd() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return animMsg(t)
	})
}

// feed hands frames from the controller to the program. It holds at most
// one frame and a newer frame replaces an unread one, so the controller
// never blocks on the UI.
type feed chan player.Frame

func newFeed() feed { return make(feed, 1) }

func (f feed) push(fr player.Frame) {
	for {
		select {
		case f <- fr:
			return
		default:
		}
		select {
		case <-f:
		default:
		}
	}
}

func (f feed) wait() tea.Cmd {
	return func() tea.Msg {
		return frameMsg(<-f)
	}
}
