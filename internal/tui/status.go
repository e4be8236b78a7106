package tui

import "fmt"

// StatusBar renders the bottom status bar.
func StatusBar(selected, total, width int) string {
	text := fmt.Sprintf("  chippick - %d selected · %d people  ", selected, total)
	return statusBarStyle.Width(width).Render(text)
}
