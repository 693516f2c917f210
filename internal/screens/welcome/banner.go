package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

const bannerArt = `
     ██╗███████╗███████╗    ██████╗ ██████╗ ███████╗██████╗
     ██║██╔════╝██╔════╝    ██╔══██╗██╔══██╗██╔════╝██╔══██╗
     ██║█████╗  █████╗      ██████╔╝██████╔╝█████╗  ██████╔╝
██   ██║██╔══╝  ██╔══╝      ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝
╚█████╔╝███████╗███████╗    ██║     ██║  ██║███████╗██║
 ╚════╝ ╚══════╝╚══════╝    ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝`

const bannerCompact = "J E E   P R E P"

// RenderBanner returns the JEE PREP banner styled in the primary
// color, with a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
