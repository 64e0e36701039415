package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PadToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, so wide runes count twice.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
func PadToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	switch {
	case currentWidth > width:
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

		// a wide rune at the cut leaves one column short
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	case currentWidth < width:
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}
