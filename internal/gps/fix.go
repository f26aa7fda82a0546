package gps

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/relabs-tech/nmea_computer/internal/nmea"
)

// Fix is the snapshot after one decoded sentence, suitable for JSON and MQTT.
type Fix struct {
	Time      string   `json:"time"`     // RFC3339 receipt time
	Sentence  string   `json:"sentence"` // e.g. "GGA"
	Latitude  float64  `json:"lat"`      // signed decimal degrees
	Longitude float64  `json:"lon"`      // signed decimal degrees
	LatHemi   string   `json:"lat_hemi"` // "N" / "S"
	LonHemi   string   `json:"lon_hemi"` // "E" / "W"
	Altitude  float64  `json:"alt_m"`
	HDOP      float64  `json:"hdop"`
	VDOP      float64  `json:"vdop"`
	Sats      uint     `json:"satellites"`
	FixStatus int      `json:"fix_status"` // 0 none, 1 autonomous, 2 differential
	FixName   string   `json:"fix_name"`
	Updated   []string `json:"updated"` // fields refreshed by this sentence
}

// FromData builds a Fix from a decoded snapshot.
func FromData(d nmea.Data, st nmea.SentenceType, ts time.Time) Fix {
	return Fix{
		Time:      ts.UTC().Format(time.RFC3339),
		Sentence:  st.String(),
		Latitude:  d.Lat.Signed(),
		Longitude: d.Lon.Signed(),
		LatHemi:   d.Lat.Hemisphere.String(),
		LonHemi:   d.Lon.Hemisphere.String(),
		Altitude:  d.Alt,
		HDOP:      d.DOP.Horizontal,
		VDOP:      d.DOP.Vertical,
		Sats:      d.Sat,
		FixStatus: int(d.Fix),
		FixName:   d.Fix.String(),
		Updated:   d.Updated.Names(),
	}
}

// Data rebuilds the snapshot so subscribers can render it with nmea.Format.
func (f Fix) Data() nmea.Data {
	d := nmea.Data{
		Lat: nmea.Latitude{Degrees: f.Latitude},
		Lon: nmea.Longitude{Degrees: f.Longitude},
		Alt: f.Altitude,
		DOP: nmea.DOP{Horizontal: f.HDOP, Vertical: f.VDOP},
		Sat: f.Sats,
		Fix: nmea.FixStatus(f.FixStatus),
	}
	if f.Latitude < 0 || f.LatHemi == "S" {
		d.Lat = nmea.Latitude{Degrees: abs(f.Latitude), Hemisphere: nmea.South}
	}
	if f.Longitude < 0 || f.LonHemi == "W" {
		d.Lon = nmea.Longitude{Degrees: abs(f.Longitude), Hemisphere: nmea.West}
	}
	for _, name := range f.Updated {
		if bit, ok := nmea.FieldFromName(name); ok {
			d.Updated |= bit
		}
	}
	return d
}

// Feature returns the fix as a GeoJSON point feature.
func (f Fix) Feature() *geojson.Feature {
	feat := geojson.NewFeature(orb.Point{f.Longitude, f.Latitude})
	feat.Properties["time"] = f.Time
	feat.Properties["sentence"] = f.Sentence
	feat.Properties["alt_m"] = f.Altitude
	feat.Properties["hdop"] = f.HDOP
	feat.Properties["vdop"] = f.VDOP
	feat.Properties["satellites"] = f.Sats
	feat.Properties["fix"] = f.FixName
	return feat
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
