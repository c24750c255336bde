package component

import "image/color"

// Appearance is read by the debug viewer only.
type Appearance struct {
	Label string
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
