package nmea

import (
	"strconv"
	"testing"

	gonmea "github.com/adrianmo/go-nmea"
	"go.viam.com/test"
)

// reference parses a payload with go-nmea, which expects a framed sentence.
func reference(t *testing.T, payload string) gonmea.Sentence {
	t.Helper()
	s, err := gonmea.Parse(gonmea.SentenceStart + payload + gonmea.ChecksumSep + gonmea.Checksum(payload))
	test.That(t, err, test.ShouldBeNil)
	return s
}

func TestDecodeAgreesWithGoNMEA(t *testing.T) {
	t.Run("GGA", func(t *testing.T) {
		ref := reference(t, sampleGGA).(gonmea.GGA)
		var d Data
		test.That(t, Decode(sampleGGA, &d), test.ShouldBeNil)
		test.That(t, d.Lat.Signed(), test.ShouldAlmostEqual, ref.Latitude, 1e-9)
		test.That(t, d.Lon.Signed(), test.ShouldAlmostEqual, ref.Longitude, 1e-9)
		test.That(t, int64(d.Sat), test.ShouldEqual, ref.NumSatellites)
		test.That(t, d.DOP.Horizontal, test.ShouldAlmostEqual, ref.HDOP)
		test.That(t, d.Alt, test.ShouldAlmostEqual, ref.Altitude)
		test.That(t, strconv.Itoa(int(d.Fix)), test.ShouldEqual, ref.FixQuality)
	})

	t.Run("RMC", func(t *testing.T) {
		ref := reference(t, sampleRMC).(gonmea.RMC)
		var d Data
		test.That(t, Decode(sampleRMC, &d), test.ShouldBeNil)
		test.That(t, d.Lat.Signed(), test.ShouldAlmostEqual, ref.Latitude, 1e-9)
		test.That(t, d.Lon.Signed(), test.ShouldAlmostEqual, ref.Longitude, 1e-9)
	})

	t.Run("GNS", func(t *testing.T) {
		ref := reference(t, sampleGNS).(gonmea.GNS)
		var d Data
		test.That(t, Decode(sampleGNS, &d), test.ShouldBeNil)
		test.That(t, d.Lat.Signed(), test.ShouldAlmostEqual, ref.Latitude, 1e-9)
		test.That(t, d.Lon.Signed(), test.ShouldAlmostEqual, ref.Longitude, 1e-9)
		test.That(t, int64(d.Sat), test.ShouldEqual, ref.SVs)
		test.That(t, d.DOP.Horizontal, test.ShouldAlmostEqual, ref.HDOP)
		test.That(t, d.Alt, test.ShouldAlmostEqual, ref.Altitude)
	})

	t.Run("GSA", func(t *testing.T) {
		ref := reference(t, sampleGSA).(gonmea.GSA)
		var d Data
		test.That(t, Decode(sampleGSA, &d), test.ShouldBeNil)
		test.That(t, d.DOP.Horizontal, test.ShouldAlmostEqual, ref.HDOP)
		test.That(t, d.DOP.Vertical, test.ShouldAlmostEqual, ref.VDOP)
	})

	t.Run("GSV", func(t *testing.T) {
		ref := reference(t, sampleGSV).(gonmea.GSV)
		var d Data
		test.That(t, Decode(sampleGSV, &d), test.ShouldBeNil)
		test.That(t, int64(d.Sat), test.ShouldEqual, ref.NumberSVsInView)
	})
}
