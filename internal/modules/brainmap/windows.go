package brainmap

import "strings"

// DevelopmentalWindow is one of the fixed age bands, ordered youngest first.
type DevelopmentalWindow string

const (
	WindowInfancy          DevelopmentalWindow = "0-3"
	WindowEarlyChildhood   DevelopmentalWindow = "3-5"
	WindowMiddleChildhood  DevelopmentalWindow = "6-11"
	WindowEarlyAdolescence DevelopmentalWindow = "11-13"
	WindowAdolescence      DevelopmentalWindow = "14-18"
)

var windowOrder = []DevelopmentalWindow{
	WindowInfancy, WindowEarlyChildhood, WindowMiddleChildhood, WindowEarlyAdolescence, WindowAdolescence,
}

// ParseWindow returns the window for raw and whether it is one of the known bands.
func ParseWindow(raw string) (DevelopmentalWindow, bool) {
	k := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	for _, w := range windowOrder {
		if string(w) == k {
			return w, true
		}
	}
	return "", false
}

// AllWindows returns every developmental window in age order.
func AllWindows() []DevelopmentalWindow {
	return append([]DevelopmentalWindow(nil), windowOrder...)
}

func (w DevelopmentalWindow) rank() int {
	for i, o := range windowOrder {
		if o == w {
			return i
		}
	}
	return len(windowOrder)
}

func sortWindows(ws []DevelopmentalWindow) {
	// insertion sort; never more than five entries
	for i := 1; i < len(ws); i++ {
		for j := i; j > 0 && ws[j].rank() < ws[j-1].rank(); j-- {
			ws[j], ws[j-1] = ws[j-1], ws[j]
		}
	}
}
