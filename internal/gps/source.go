// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	serial "github.com/jacobsa/go-serial/serial"
)

// LineSource is anything that can provide raw NMEA lines over time:
// a serial receiver, a recorded log, or the mock below.
type LineSource interface {
	Next() (string, error)
	Close() error
}

// SerialSource reads lines from a GNSS receiver on a serial port.
type SerialSource struct {
	port   io.ReadWriteCloser
	reader *bufio.Reader
}

// OpenSerial opens the receiver port, 8N1.
func OpenSerial(portName string, baud int) (*SerialSource, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              uint(baud),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}
	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}
	return &SerialSource{port: port, reader: bufio.NewReader(port)}, nil
}

func (s *SerialSource) Next() (string, error) {
	return nextLine(s.reader)
}

func (s *SerialSource) Close() error {
	return s.port.Close()
}

// ReplaySource replays recorded lines, one per Next call.
type ReplaySource struct {
	lines []string
	pos   int
	loop  bool
}

// NewReplaySource reads every non-blank line from r. With loop set the
// lines are replayed forever, otherwise Next returns io.EOF at the end.
func NewReplaySource(r io.Reader, loop bool) (*ReplaySource, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading replay: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New("replay has no sentences")
	}
	return &ReplaySource{lines: lines, loop: loop}, nil
}

func (s *ReplaySource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		if !s.loop {
			return "", io.EOF
		}
		s.pos = 0
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *ReplaySource) Close() error {
	return nil
}

// mockLines is a short drive around Munich with one dropout.
var mockLines = []string{
	"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47",
	"$GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1*39",
	"$GPRMC,123520,A,4807.041,N,01131.004,E,022.4,084.4,230394,003.1,W*6A",
	"$GPGSV,3,1,11,03,03,111,00,04,15,270,00,06,01,010,00,13,06,292,00*74",
	"$GPGGA,123521,4807.045,N,01131.009,E,2,09,0.8,546.1,M,46.9,M,,*4A",
	"$GPGGA,123522,,,,,0,04,,,M,,M,,*67",
	"$GNGNS,123523,4807.049,N,01131.013,E,AA,10,0.8,546.0,46.9,,*71",
}

// NewMockSource creates a source that cycles through a built-in set of
// sentences, for running the pipeline without a receiver.
func NewMockSource() LineSource {
	return &ReplaySource{lines: mockLines, loop: true}
}

func nextLine(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil {
			if line != "" && errors.Is(err, io.EOF) {
				return line, nil
			}
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}
