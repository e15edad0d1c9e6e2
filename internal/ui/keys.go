// SPDX-License-Identifier: MIT

package ui

import tea "github.com/charmbracelet/bubbletea"

// speedStep is the increment applied by + and -.
const speedStep = 0.5

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// decile maps a digit key to a seek target over n steps: 0 is the first
// step, 9 the terminal one.
func decile(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' || n <= 0 {
		return 0, false
	}
	d := int(key[0] - '0')
	return d * (n - 1) / 9, true
}

func helpText() string {
	return "space play/pause  ←/→ step  home reset  0-9 seek  +/- speed  q quit"
}
