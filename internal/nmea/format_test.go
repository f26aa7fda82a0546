package nmea

import (
	"testing"

	"go.viam.com/test"
)

const fullRendering = "----------------\n" +
	"Latitude: 48.117 N\n" +
	"Longitude: 11.517 E\n" +
	"Altitude: 545.4 M\n" +
	"HDOP: 0.9 M\n" +
	"Satellites: 8\n" +
	"Fix Status: 1\n"

func TestFormatString(t *testing.T) {
	var d Data
	test.That(t, Decode(sampleGGA, &d), test.ShouldBeNil)
	test.That(t, FormatString(&d), test.ShouldEqual, fullRendering)

	test.That(t, Decode(sampleGSA, &d), test.ShouldBeNil)
	test.That(t, FormatString(&d), test.ShouldEqual,
		"----------------\nHDOP: 1.3 M\nVDOP: 2.1 M\nFix Status: 1\n")
}

func TestFormatOnlySeparatorWhenNothingUpdated(t *testing.T) {
	d := Data{Alt: 100}
	test.That(t, FormatString(&d), test.ShouldEqual, "----------------\n")
}

func TestFormatHemispheres(t *testing.T) {
	d := Data{
		Lat:     Latitude{Degrees: 33.8688, Hemisphere: South},
		Lon:     Longitude{Degrees: 70.6693, Hemisphere: West},
		Fix:     FixDifferential,
		Updated: FieldLat | FieldLon | FieldFix,
	}
	test.That(t, Lines(&d), test.ShouldResemble, []string{
		"----------------",
		"Latitude: 33.869 S",
		"Longitude: 70.669 W",
		"Fix Status: 2",
	})
}

func TestFormatBuffer(t *testing.T) {
	var d Data
	test.That(t, Decode(sampleGGA, &d), test.ShouldBeNil)

	buf := make([]byte, 256)
	n, truncated := Format(buf, &d)
	test.That(t, truncated, test.ShouldBeFalse)
	test.That(t, string(buf[:n]), test.ShouldEqual, fullRendering)

	exact := make([]byte, len(fullRendering))
	n, truncated = Format(exact, &d)
	test.That(t, truncated, test.ShouldBeFalse)
	test.That(t, n, test.ShouldEqual, len(fullRendering))
}

func TestFormatTruncatesWholeLines(t *testing.T) {
	var d Data
	test.That(t, Decode(sampleGGA, &d), test.ShouldBeNil)

	for _, size := range []int{0, 5, 17, 30, 36, len(fullRendering) - 1} {
		buf := make([]byte, size)
		n, truncated := Format(buf, &d)
		test.That(t, truncated, test.ShouldBeTrue)
		test.That(t, n, test.ShouldBeLessThanOrEqualTo, size)
		// output is always a prefix made of complete lines
		test.That(t, fullRendering[:n], test.ShouldEqual, string(buf[:n]))
		if n > 0 {
			test.That(t, buf[n-1], test.ShouldEqual, byte('\n'))
		}
	}

	buf := make([]byte, 20)
	n, _ := Format(buf, &d)
	test.That(t, string(buf[:n]), test.ShouldEqual, "----------------\n")
}

func TestFieldNames(t *testing.T) {
	f := FieldLat | FieldSat | FieldFix
	test.That(t, f.Names(), test.ShouldResemble, []string{"lat", "sat", "fix"})
	test.That(t, f.String(), test.ShouldEqual, "lat|sat|fix")
	test.That(t, Field(0).String(), test.ShouldEqual, "none")

	bit, ok := FieldFromName("vdop")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, bit, test.ShouldEqual, FieldVDOP)
	_, ok = FieldFromName("speed")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestEnumStrings(t *testing.T) {
	test.That(t, North.String(), test.ShouldEqual, "N")
	test.That(t, South.String(), test.ShouldEqual, "S")
	test.That(t, East.String(), test.ShouldEqual, "E")
	test.That(t, West.String(), test.ShouldEqual, "W")
	test.That(t, NSHemisphere(7).String(), test.ShouldEqual, "?")
	test.That(t, FixDifferential.String(), test.ShouldEqual, "differential")
	test.That(t, GSV.String(), test.ShouldEqual, "GSV")
	test.That(t, Unrecognized.String(), test.ShouldEqual, "unrecognized")
}
