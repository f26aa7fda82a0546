package app

import (
	"testing"

	"go.viam.com/test"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/relabs-tech/nmea_computer/internal/gps"
)

func TestDisplayPage(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f"}
	test.That(t, displayPage(lines[:3], 5), test.ShouldResemble, []string{"a", "b", "c"})
	test.That(t, displayPage(lines, 0), test.ShouldResemble, []string{"a", "b", "c", "d"})
	test.That(t, displayPage(lines, 1), test.ShouldResemble, []string{"e", "f"})
	test.That(t, displayPage(lines, 2), test.ShouldResemble, []string{"a", "b", "c", "d"})
}

func TestDisplayStateAccumulates(t *testing.T) {
	s := &displayState{}
	test.That(t, s.nextScreen(), test.ShouldResemble, []string{"GPS Position", "Waiting..."})

	s.update(gps.Fix{Latitude: 48.1173, LatHemi: "N", Longitude: 11.5167, LonHemi: "E", Updated: []string{"lat", "lon"}})
	s.update(gps.Fix{Latitude: 48.1173, LatHemi: "N", Longitude: 11.5167, LonHemi: "E", Sats: 11, Updated: []string{"sat"}})

	test.That(t, s.nextScreen(), test.ShouldResemble, []string{
		"Latitude: 48.117 N",
		"Longitude: 11.517 E",
		"Satellites: 11",
	})
}

func TestRenderLines(t *testing.T) {
	blank := renderLines(nil)
	img := renderLines([]string{"HDOP: 0.9 M"})

	lit := 0
	for y := 0; y < lineHeight; y++ {
		for x := 0; x < displayWidth; x++ {
			test.That(t, blank.At(x, y), test.ShouldEqual, image1bit.Off)
			if img.At(x, y) == image1bit.On {
				lit++
			}
		}
	}
	test.That(t, lit, test.ShouldBeGreaterThan, 0)

	// nothing below the first line
	for y := lineHeight + 3; y < displayHeight; y++ {
		for x := 0; x < displayWidth; x++ {
			test.That(t, img.At(x, y), test.ShouldEqual, image1bit.Off)
		}
	}
}
