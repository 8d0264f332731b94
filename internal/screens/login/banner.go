package login

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/ui/theme"
)

const bannerArt = ` _                _
| | _____   _____| |_   _ _ __
| |/ _ \ \ / / _ \ | | | | '_ \
| |  __/\ V /  __/ | |_| | |_) |
|_|\___| \_/ \___|_|\__,_| .__/
                         |_|`

const bannerCompact = "L E V E L U P"

// RenderBanner returns the banner in the primary colour, falling back to a
// single line below 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
