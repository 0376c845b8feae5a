package layout

import (
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for length values.
// Layout geometry is carried in inches; renderer backends convert to
// their native unit at the boundary (mm for the canvas backend, EMU
// for the pptx backend, pt for font metrics).

// Unit represents the original unit of a length value as written by the author.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers
	UnitMM                // millimeters
	UnitCM                // centimeters
	UnitIN                // inches
	UnitPT                // points
)

// Conversion constants.
const (
	MmPerInch  = 25.4
	PtPerInch  = 72.0
	EmuPerInch = 914400 // OOXML English Metric Units
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToInches converts this length to inches. Unit-less values are taken as inches.
func (l Length) ToInches() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value / MmPerInch
	case UnitCM:
		return l.Value * 10 / MmPerInch
	case UnitPT:
		return l.Value / PtPerInch
	default:
		return l.Value
	}
}

// InchesToMM converts inches to millimeters.
func InchesToMM(in float64) float64 { return in * MmPerInch }

// InchesToEMU converts inches to EMU, rounding toward zero like the
// int64 truncation used throughout OOXML authoring code.
func InchesToEMU(in float64) int64 { return int64(in * EmuPerInch) }

// PtToInches converts points to inches.
func PtToInches(pt float64) float64 { return pt / PtPerInch }

// PtToMM converts points to millimeters.
func PtToMM(pt float64) float64 { return pt / PtPerInch * MmPerInch }

// ParseLength parses a length string preserving its unit, eg "13.333in", "6mm", "54pt".
// Malformed input yields a zero unit-less length.
func ParseLength(value string) Length {
	v := strings.TrimSpace(value)
	if v == "" {
		return Length{}
	}
	lower := strings.ToLower(v)
	unit := UnitNone
	num := lower
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(lower, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(lower, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}
