package nmea

import (
	"fmt"
	"strings"
)

const separatorLine = "----------------\n"

// lines renders the separator and one line per updated field.
func lines(d *Data) []string {
	out := []string{separatorLine}
	for _, bit := range fieldOrder {
		if !d.Updated.Has(bit) {
			continue
		}
		var s string
		switch bit {
		case FieldLat:
			s = fmt.Sprintf("Latitude: %.3f %s\n", d.Lat.Degrees, d.Lat.Hemisphere)
		case FieldLon:
			s = fmt.Sprintf("Longitude: %.3f %s\n", d.Lon.Degrees, d.Lon.Hemisphere)
		case FieldAlt:
			s = fmt.Sprintf("Altitude: %.1f M\n", d.Alt)
		case FieldHDOP:
			s = fmt.Sprintf("HDOP: %.1f M\n", d.DOP.Horizontal)
		case FieldVDOP:
			s = fmt.Sprintf("VDOP: %.1f M\n", d.DOP.Vertical)
		case FieldSat:
			s = fmt.Sprintf("Satellites: %d\n", d.Sat)
		case FieldFix:
			s = fmt.Sprintf("Fix Status: %d\n", int(d.Fix))
		}
		out = append(out, s)
	}
	return out
}

// Format writes the updated fields of d into buf and returns the number of
// bytes written. Only whole lines are written: the first line that does not
// fit stops rendering and truncated is true.
func Format(buf []byte, d *Data) (n int, truncated bool) {
	for _, l := range lines(d) {
		if n+len(l) > len(buf) {
			return n, true
		}
		n += copy(buf[n:], l)
	}
	return n, false
}

// FormatString renders the updated fields of d without a size limit.
func FormatString(d *Data) string {
	return strings.Join(lines(d), "")
}

// Lines returns the rendered lines of d without their trailing newlines.
func Lines(d *Data) []string {
	ls := lines(d)
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\n")
	}
	return ls
}
