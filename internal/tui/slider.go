package tui

import (
	"fmt"
	"math"
	"strings"
)

// slider is an adjustable what-if parameter with a visual track.
type slider struct {
	Label string
	Value float64
	Min   float64
	Max   float64
	Step  float64
	Unit  string // e.g. "yrs", "man-won/mo"
	Width int    // track width in cells
}

func newSlider(label string, value, min, max, step float64, unit string) *slider {
	return &slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		Step:  step,
		Unit:  unit,
		Width: 30,
	}
}

// Increment raises the value by one step, clamped to Max.
func (s *slider) Increment() {
	if v := s.Value + s.Step; v <= s.Max {
		s.Value = v
	} else {
		s.Value = s.Max
	}
}

// Decrement lowers the value by one step, clamped to Min.
func (s *slider) Decrement() {
	if v := s.Value - s.Step; v >= s.Min {
		s.Value = v
	} else {
		s.Value = s.Min
	}
}

// Render draws the slider as "Label [====o-----] value unit".
func (s *slider) Render(focused bool) string {
	frac := 0.0
	if s.Max > s.Min {
		frac = (s.Value - s.Min) / (s.Max - s.Min)
	}
	frac = math.Max(0, math.Min(1, frac))

	thumb := int(math.Round(frac * float64(s.Width-1)))
	var track strings.Builder
	track.WriteString("[")
	for i := 0; i < s.Width; i++ {
		switch {
		case i == thumb:
			track.WriteString("o")
		case i < thumb:
			track.WriteString("=")
		default:
			track.WriteString("-")
		}
	}
	track.WriteString("]")

	label := labelStyle.Render(s.Label)
	value := fmt.Sprintf("%.0f %s", s.Value, s.Unit)
	if focused {
		return fmt.Sprintf("%s %s %s", label, focusedStyle.Render(track.String()), focusedStyle.Render(value))
	}
	return fmt.Sprintf("%s %s %s", label, track.String(), valueStyle.Render(value))
}
