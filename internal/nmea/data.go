// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea

import "strings"

// NSHemisphere is the hemisphere of a latitude.
type NSHemisphere int

const (
	North NSHemisphere = iota
	South
)

func (h NSHemisphere) String() string {
	switch h {
	case North:
		return "N"
	case South:
		return "S"
	default:
		return "?"
	}
}

// EWHemisphere is the hemisphere of a longitude.
type EWHemisphere int

const (
	East EWHemisphere = iota
	West
)

func (h EWHemisphere) String() string {
	switch h {
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Latitude in non-negative decimal degrees; the hemisphere carries the sign.
type Latitude struct {
	Degrees    float64
	Hemisphere NSHemisphere
}

// Signed returns the latitude in decimal degrees, negative in the southern hemisphere.
func (l Latitude) Signed() float64 {
	if l.Hemisphere == South {
		return -l.Degrees
	}
	return l.Degrees
}

// Longitude in non-negative decimal degrees; the hemisphere carries the sign.
type Longitude struct {
	Degrees    float64
	Hemisphere EWHemisphere
}

// Signed returns the longitude in decimal degrees, negative in the western hemisphere.
func (l Longitude) Signed() float64 {
	if l.Hemisphere == West {
		return -l.Degrees
	}
	return l.Degrees
}

// DOP holds the dilution of precision. All units are in meters.
type DOP struct {
	Horizontal float64
	Vertical   float64
}

// FixStatus classifies the position solution.
type FixStatus int

const (
	// FixNone means no fix is available. It is also the initial value.
	FixNone FixStatus = iota
	// FixAutonomous is a non-differential 2D/3D fix.
	FixAutonomous
	// FixDifferential is a differential 2D/3D fix.
	FixDifferential
)

func (f FixStatus) String() string {
	switch f {
	case FixNone:
		return "none"
	case FixAutonomous:
		return "autonomous"
	case FixDifferential:
		return "differential"
	default:
		return "unknown"
	}
}

// Field is a bitmask of the snapshot attributes written by a decode call.
type Field int

const (
	FieldLat  Field = 0x01
	FieldLon  Field = 0x02
	FieldAlt  Field = 0x04
	FieldHDOP Field = 0x08
	FieldVDOP Field = 0x10
	FieldSat  Field = 0x20
	FieldFix  Field = 0x40
)

// fieldOrder is the fixed rendering order.
var fieldOrder = []Field{FieldLat, FieldLon, FieldAlt, FieldHDOP, FieldVDOP, FieldSat, FieldFix}

var fieldNames = map[Field]string{
	FieldLat:  "lat",
	FieldLon:  "lon",
	FieldAlt:  "alt",
	FieldHDOP: "hdop",
	FieldVDOP: "vdop",
	FieldSat:  "sat",
	FieldFix:  "fix",
}

// Has reports whether every bit of other is set in f.
func (f Field) Has(other Field) bool {
	return f&other == other
}

// Names lists the set fields in rendering order.
func (f Field) Names() []string {
	var names []string
	for _, bit := range fieldOrder {
		if f.Has(bit) {
			names = append(names, fieldNames[bit])
		}
	}
	return names
}

func (f Field) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// FieldFromName is the inverse of Names for a single field.
func FieldFromName(name string) (Field, bool) {
	for bit, n := range fieldNames {
		if n == name {
			return bit, true
		}
	}
	return 0, false
}

// Data is the navigation snapshot. It is allocated by the caller and
// mutated in place by Decode.
//
//	Lat, Lon   GGA, RMC, GNS
//	Alt        GGA, GNS
//	DOP        GGA, GNS, GSA
//	Sat        GGA, GNS, GSV
//	Fix        GGA, GSA
type Data struct {
	Lat Latitude
	Lon Longitude
	Alt float64 // meters
	DOP DOP
	Sat uint
	Fix FixStatus

	// Updated holds the fields written by the most recent decode call.
	Updated Field
}
