package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/msgitem/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	if state.ViewerActive() {
		segments := []string{}
		if state.Viewer.PageCount() > 1 {
			segments = append(segments, "←/→: page")
		}
		segments = append(segments, "↑/↓: scroll", "Esc: close")
		return segments
	}

	battle := "b: enter battle"
	if state.Party != nil && state.Party.InBattle() {
		battle = "b: leave battle"
	}
	return []string{
		"↑/↓: select",
		"↵: use",
		battle,
		"?: help",
		"q: quit",
	}
}
