package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
)

// bellSound rings the terminal bell for the cues a player needs to notice.
type bellSound struct {
	screen  tcell.Screen
	enabled bool
}

func newBellSound(screen tcell.Screen, enabled bool) list.Sound {
	if !enabled || screen == nil {
		return list.Silent{}
	}
	return &bellSound{screen: screen, enabled: enabled}
}

func (s *bellSound) Play(cue list.Cue) {
	switch cue {
	case list.CueCursor, list.CueUse, list.CueBuzzer:
		_ = s.screen.Beep()
	}
}
