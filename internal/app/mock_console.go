// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/relabs-tech/nmea_computer/internal/gps"
	"github.com/relabs-tech/nmea_computer/internal/nmea"
)

// RunMockConsole decodes the built-in mock sentences and prints the
// snapshot after each one. No broker or receiver is needed.
func RunMockConsole() error {
	src := gps.NewMockSource()
	dec := nmea.NewDecoder()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		if err := printNext(os.Stdout, src, dec); err != nil {
			return err
		}
	}
	return nil
}

// printNext decodes one line from src and prints what it changed.
// Decode errors are printed and do not stop the console.
func printNext(w io.Writer, src gps.LineSource, dec *nmea.Decoder) error {
	line, err := src.Next()
	if err != nil {
		return err
	}
	payload, err := FrameSentence(line, true)
	if err != nil {
		fmt.Fprintf(w, "skip %q: %v\n", line, err)
		return nil
	}
	if _, err := dec.Decode(payload); err != nil {
		if errors.Is(err, nmea.ErrUnknownSentenceType) {
			return nil
		}
		fmt.Fprintf(w, "skip %q: %v\n", line, err)
		return nil
	}
	snap := dec.Snapshot()
	fmt.Fprintf(w, "[%s] %s", dec.LastType(), nmea.FormatString(&snap))
	return nil
}
