package render

import (
	"strings"
	"testing"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	lines := buildHelpOverlayLines()

	assertContains := func(substr string) {
		for _, line := range lines {
			if strings.Contains(line, substr) {
				return
			}
		}
		t.Fatalf("expected lines to contain %q, got %v", substr, lines)
	}

	assertContains("Item menu")
	assertContains("Message window")
	assertContains("Exit")
	assertContains("Previous / next page")
	assertContains("Toggle battle")
}
