package app

import (
	"errors"
	"fmt"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

var (
	ErrNoSentenceStart = errors.New("missing '$'")
	ErrNoChecksum      = errors.New("missing checksum")
	ErrChecksum        = errors.New("checksum mismatch")
)

// FrameSentence strips the leading '$' and the trailing "*hh" from a raw
// receiver line, returning what the decoder expects. When validate is set
// the checksum must be present and correct.
func FrameSentence(line string, validate bool) (string, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, nmea.SentenceStart) {
		return "", fmt.Errorf("frame: %w", ErrNoSentenceStart)
	}
	payload := line[len(nmea.SentenceStart):]

	star := strings.LastIndex(payload, nmea.ChecksumSep)
	if star < 0 {
		if validate {
			return "", fmt.Errorf("frame: %w", ErrNoChecksum)
		}
		return payload, nil
	}

	got := strings.ToUpper(strings.TrimSpace(payload[star+1:]))
	payload = payload[:star]
	if validate {
		if want := nmea.Checksum(payload); got != want {
			return "", fmt.Errorf("frame: %w: got %q, want %q", ErrChecksum, got, want)
		}
	}
	return payload, nil
}
