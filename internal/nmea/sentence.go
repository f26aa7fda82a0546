package nmea

import "strings"

// SentenceType identifies which decoder owns a sentence.
type SentenceType int

const (
	Unrecognized SentenceType = iota
	RMC
	GGA
	GNS
	GSA
	GSV
)

func (t SentenceType) String() string {
	switch t {
	case RMC:
		return "RMC"
	case GGA:
		return "GGA"
	case GNS:
		return "GNS"
	case GSA:
		return "GSA"
	case GSV:
		return "GSV"
	default:
		return "unrecognized"
	}
}

// matchOrder resolves ambiguous embeddings; earlier entries win.
var matchOrder = []SentenceType{RMC, GGA, GNS, GSA, GSV}

// MatchSentence finds the sentence type by substring match on the
// talker+type field, e.g. "GPGGA" or "GNRMC".
func MatchSentence(token string) SentenceType {
	for _, t := range matchOrder {
		if strings.Contains(token, t.String()) {
			return t
		}
	}
	return Unrecognized
}

// fieldCount is the number of fields each type needs after the type field.
func (t SentenceType) fieldCount() int {
	switch t {
	case RMC:
		return 6 // time, status, lat, N/S, lon, E/W
	case GGA, GNS:
		return 9 // time, lat, N/S, lon, E/W, quality|mode, sats, hdop, alt
	case GSA:
		return 2 + gsaSatSlots + 3 // sel, mode, 12 ids, pdop, hdop, vdop
	case GSV:
		return 3 // total, index, in view
	default:
		return 0
	}
}
