package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/nmea_computer/internal/config"
	"github.com/relabs-tech/nmea_computer/internal/gps"
	"github.com/relabs-tech/nmea_computer/internal/nmea"
)

// pipeline frames, decodes and publishes receiver lines. It owns its
// decoder and must only be driven from one goroutine.
type pipeline struct {
	dec       *nmea.Decoder
	pub       Publisher
	topic     string
	textTopic string // empty disables text publishing
	validate  bool
	buf       []byte
	now       func() time.Time
}

func newPipeline(cfg *config.Config, pub Publisher) *pipeline {
	p := &pipeline{
		dec:      nmea.NewDecoder(),
		pub:      pub,
		topic:    cfg.TopicGPS,
		validate: cfg.GPSValidateChecksum,
		buf:      make([]byte, cfg.FormatBufferSize),
		now:      time.Now,
	}
	if cfg.GPSPublishText {
		p.textTopic = cfg.TopicGPSText
	}
	return p
}

// handle processes one line. It returns the published fix, or nil when the
// sentence carried no new field.
func (p *pipeline) handle(line string) (*gps.Fix, error) {
	payload, err := FrameSentence(line, p.validate)
	if err != nil {
		return nil, err
	}
	updated, err := p.dec.Decode(payload)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, nil
	}

	snap := p.dec.Snapshot()
	fix := gps.FromData(snap, p.dec.LastType(), p.now())

	body, err := json.Marshal(fix)
	if err != nil {
		return nil, fmt.Errorf("marshal fix: %w", err)
	}
	if err := p.pub.Publish(p.topic, body); err != nil {
		return nil, fmt.Errorf("publish %s: %w", p.topic, err)
	}

	if p.textTopic != "" {
		n, truncated := nmea.Format(p.buf, &snap)
		if truncated {
			log.Printf("gps: snapshot text truncated to %d bytes", n)
		}
		if err := p.pub.Publish(p.textTopic, p.buf[:n]); err != nil {
			return nil, fmt.Errorf("publish %s: %w", p.textTopic, err)
		}
	}
	return &fix, nil
}

// run drains src until it fails. pace, when non-nil, gates every read.
func (p *pipeline) run(src gps.LineSource, pace <-chan time.Time) error {
	defer p.logStats()
	for {
		if pace != nil {
			<-pace
		}
		line, err := src.Next()
		if err != nil {
			return err
		}

		fix, err := p.handle(line)
		if err != nil {
			// receivers emit plenty of sentence types we do not decode
			if !errors.Is(err, nmea.ErrUnknownSentenceType) {
				log.Printf("gps: %v (line: %q)", err, line)
			}
			continue
		}
		if fix != nil {
			log.Printf("gps: published %s fix: updated=%v", fix.Sentence, fix.Updated)
		}
	}
}

func (p *pipeline) logStats() {
	s := p.dec.Stats()
	log.Printf("gps: decoded=%v unknown=%d truncated=%d malformed=%d",
		s.Decoded, s.Unknown, s.Truncated, s.Malformed)
}
