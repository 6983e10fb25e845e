package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	BorderFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DisabledFg  tcell.Color
	QuantityFg  tcell.Color
	SystemFg    tcell.Color
	BattleFg    tcell.Color
	ErrorFg     tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		BorderFg:    tcell.Color244,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DisabledFg:  tcell.ColorLightSlateGray,
		QuantityFg:  tcell.Color252,
		SystemFg:    tcell.Color117, // light blue, used for the page indicator
		BattleFg:    tcell.Color203,
		ErrorFg:     tcell.ColorRed,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
	}
}
