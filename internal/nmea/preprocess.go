package nmea

import "strings"

const (
	// Separator delimits fields.
	Separator = ','
	// Placeholder marks an empty field after Preprocess.
	Placeholder = '?'
)

// Preprocess inserts a Placeholder between every pair of adjacent
// separators so that no field position collapses during tokenization.
// The final character is copied without being scanned.
func Preprocess(sentence string) string {
	if len(sentence) == 0 {
		return sentence
	}

	var b strings.Builder
	b.Grow(len(sentence) + strings.Count(sentence, ",,"))

	last := len(sentence) - 1
	for i := 0; i < last; i++ {
		b.WriteByte(sentence[i])
		if sentence[i] == Separator && sentence[i+1] == Separator {
			b.WriteByte(Placeholder)
		}
	}
	b.WriteByte(sentence[last])
	return b.String()
}
