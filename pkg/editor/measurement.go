package editor

import "github.com/unidoc/unioffice/v2/measurement"

// Points converts a point value into an office distance.
func Points(v float64) Distance {
	return Distance(v) * measurement.Point
}

// Twips converts a DXA value (twentieths of a point, the unit OOXML stores
// table widths in) into an office distance.
func Twips(v int) Distance {
	return Distance(v) * measurement.Twips
}

// Centimeters converts a centimeter value into an office distance.
func Centimeters(v float64) Distance {
	return Distance(v) * measurement.Centimeter
}
