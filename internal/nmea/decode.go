// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package nmea

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// gsaSatSlots is the number of satellite-ID fields in a GSA sentence.
const gsaSatSlots = 12

const (
	latDegreeDigits = 2 // ddmm.mmmm
	lonDegreeDigits = 3 // dddmm.mmmm
)

var decoders = map[SentenceType]func(*reader) error{
	RMC: decodeRMC,
	GGA: decodeGGA,
	GNS: decodeGNS,
	GSA: decodeGSA,
	GSV: decodeGSV,
}

// Decode parses one sentence (no leading '$', no checksum) and merges the
// fields it carries into d. d.Updated is replaced by the set of fields
// written by this call.
//
// On error d is left untouched, Updated included.
func Decode(sentence string, d *Data) error {
	_, err := decode(sentence, d)
	return err
}

func decode(sentence string, d *Data) (SentenceType, error) {
	c := NewCursor(Preprocess(sentence))
	head, _ := c.Next()

	t := MatchSentence(head)
	if t == Unrecognized {
		return t, &DecodeError{Type: t, Token: head, Err: ErrUnknownSentenceType}
	}
	if have, need := c.Remaining(), t.fieldCount(); have < need {
		return t, &DecodeError{
			Type: t,
			Err:  fmt.Errorf("%w: have %d fields, need %d", ErrTruncatedSentence, have, need),
		}
	}

	next := *d
	next.Updated = 0
	r := &reader{t: t, c: c, d: &next}
	if err := decoders[t](r); err != nil {
		return t, err
	}
	*d = next
	return t, nil
}

// reader pulls fields for one decoder and applies the merge policy.
type reader struct {
	t SentenceType
	c *Cursor
	d *Data
}

// next returns the next field. Field counts are checked before any
// decoder runs, so running out here yields an empty field.
func (r *reader) next() string {
	tok, _ := r.c.Next()
	return tok
}

func (r *reader) skip(n int) {
	for i := 0; i < n; i++ {
		r.next()
	}
}

func (r *reader) malformed(field, tok string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &DecodeError{
		Type:  r.t,
		Field: field,
		Index: r.c.Pos() - 1,
		Token: tok,
		Err:   fmt.Errorf("%w: %v", ErrMalformedNumericField, err),
	}
}

func (r *reader) latitude() error {
	if tok := r.next(); !isEmpty(tok) {
		deg, err := parseCoordinate(tok, latDegreeDigits)
		if err != nil {
			return r.malformed("latitude", tok, err)
		}
		r.d.Lat.Degrees = deg
		r.d.Updated |= FieldLat
	}
	if tok := r.next(); !isEmpty(tok) {
		if tok[0] == 'N' {
			r.d.Lat.Hemisphere = North
		} else {
			r.d.Lat.Hemisphere = South
		}
	}
	return nil
}

func (r *reader) longitude() error {
	if tok := r.next(); !isEmpty(tok) {
		deg, err := parseCoordinate(tok, lonDegreeDigits)
		if err != nil {
			return r.malformed("longitude", tok, err)
		}
		r.d.Lon.Degrees = deg
		r.d.Updated |= FieldLon
	}
	if tok := r.next(); !isEmpty(tok) {
		if tok[0] == 'E' {
			r.d.Lon.Hemisphere = East
		} else {
			r.d.Lon.Hemisphere = West
		}
	}
	return nil
}

func (r *reader) float(name string, dst *float64, bit Field) error {
	tok := r.next()
	if isEmpty(tok) {
		return nil
	}
	v, err := parseFloat(tok)
	if err != nil {
		return r.malformed(name, tok, err)
	}
	*dst = v
	r.d.Updated |= bit
	return nil
}

func (r *reader) satellites() error {
	tok := r.next()
	if isEmpty(tok) {
		return nil
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return r.malformed("satellites", tok, err)
	}
	r.d.Sat = uint(v)
	r.d.Updated |= FieldSat
	return nil
}

// RMC: time, status, lat, N/S, lon, E/W, ...
func decodeRMC(r *reader) error {
	r.skip(2) // time, status
	if err := r.latitude(); err != nil {
		return err
	}
	return r.longitude()
}

// GGA: time, lat, N/S, lon, E/W, quality, sats, hdop, alt, ...
func decodeGGA(r *reader) error {
	r.skip(1) // time
	if err := r.latitude(); err != nil {
		return err
	}
	if err := r.longitude(); err != nil {
		return err
	}

	// An empty quality digit is the explicit "no fix" outcome.
	switch q := r.next(); {
	case q == "1":
		r.d.Fix = FixAutonomous
	case q == "2":
		r.d.Fix = FixDifferential
	default:
		r.d.Fix = FixNone
	}
	r.d.Updated |= FieldFix

	if err := r.satellites(); err != nil {
		return err
	}
	if err := r.float("hdop", &r.d.DOP.Horizontal, FieldHDOP); err != nil {
		return err
	}
	return r.float("altitude", &r.d.Alt, FieldAlt)
}

// GNS: time, lat, N/S, lon, E/W, mode, sats, hdop, alt, ...
func decodeGNS(r *reader) error {
	r.skip(1) // time
	if err := r.latitude(); err != nil {
		return err
	}
	if err := r.longitude(); err != nil {
		return err
	}
	r.skip(1) // mode indicator
	if err := r.satellites(); err != nil {
		return err
	}
	if err := r.float("hdop", &r.d.DOP.Horizontal, FieldHDOP); err != nil {
		return err
	}
	return r.float("altitude", &r.d.Alt, FieldAlt)
}

// GSA: selection, mode, 12 satellite IDs, pdop, hdop, vdop
func decodeGSA(r *reader) error {
	r.skip(1) // selection mode

	switch m := r.next(); m {
	case "2", "3":
		r.d.Fix = FixAutonomous
	default:
		r.d.Fix = FixNone
	}
	r.d.Updated |= FieldFix

	r.skip(gsaSatSlots + 1) // satellite IDs, pdop
	if err := r.float("hdop", &r.d.DOP.Horizontal, FieldHDOP); err != nil {
		return err
	}
	return r.float("vdop", &r.d.DOP.Vertical, FieldVDOP)
}

// GSV: total messages, message index, satellites in view, ...
func decodeGSV(r *reader) error {
	r.skip(2)
	return r.satellites()
}

// parseCoordinate converts a (d)ddmm.mmmm field to decimal degrees.
// width is the number of leading degree digits.
func parseCoordinate(tok string, width int) (float64, error) {
	if len(tok) <= width {
		return 0, fmt.Errorf("want %d degree digits followed by minutes", width)
	}
	deg, err := strconv.ParseUint(tok[:width], 10, 16)
	if err != nil {
		return 0, err
	}
	minutes, err := parseFloat(tok[width:])
	if err != nil {
		return 0, err
	}
	if minutes < 0 || minutes >= 60 {
		return 0, fmt.Errorf("minutes %v out of range", minutes)
	}
	return float64(deg) + minutes/60.0, nil
}

func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value")
	}
	return v, nil
}
