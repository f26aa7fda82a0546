package nmea

import "errors"

// Stats counts decode outcomes.
type Stats struct {
	Decoded   map[SentenceType]int
	Unknown   int
	Truncated int
	Malformed int
}

// Decoder owns a snapshot and folds successive sentences into it.
// It is not safe for concurrent use.
type Decoder struct {
	data  Data
	stats Stats
	last  SentenceType
}

func NewDecoder() *Decoder {
	return &Decoder{stats: Stats{Decoded: make(map[SentenceType]int)}}
}

// Decode merges one sentence into the snapshot and returns the fields it updated.
func (dec *Decoder) Decode(sentence string) (Field, error) {
	t, err := decode(sentence, &dec.data)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSentenceType):
			dec.stats.Unknown++
		case errors.Is(err, ErrTruncatedSentence):
			dec.stats.Truncated++
		case errors.Is(err, ErrMalformedNumericField):
			dec.stats.Malformed++
		}
		return 0, err
	}
	dec.stats.Decoded[t]++
	dec.last = t
	return dec.data.Updated, nil
}

// Snapshot returns a copy of the current snapshot.
func (dec *Decoder) Snapshot() Data {
	return dec.data
}

// LastType is the type of the last sentence decoded successfully.
func (dec *Decoder) LastType() SentenceType {
	return dec.last
}

// Stats returns a copy of the counters.
func (dec *Decoder) Stats() Stats {
	out := dec.stats
	out.Decoded = make(map[SentenceType]int, len(dec.stats.Decoded))
	for t, n := range dec.stats.Decoded {
		out.Decoded[t] = n
	}
	return out
}
