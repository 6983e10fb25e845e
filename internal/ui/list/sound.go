package list

// Cue is a sound effect a window asks the host to play.
type Cue int

const (
	CueCursor Cue = iota
	CueOK
	CueCancel
	CueBuzzer
	CueUse
)

// Sound plays cues.
type Sound interface {
	Play(cue Cue)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}
