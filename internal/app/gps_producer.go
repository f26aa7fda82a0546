// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"log"

	"github.com/relabs-tech/nmea_computer/internal/config"
	"github.com/relabs-tech/nmea_computer/internal/gps"
)

// RunGPSProducer opens the GPS serial port, decodes NMEA sentences, and
// publishes the merged snapshot as JSON to the configured GPS topic.
func RunGPSProducer() error {
	cfg := config.Get()

	// ---- 1) Connect to MQTT broker ----
	client, err := connectMQTT("gps", cfg.MQTTBroker, cfg.MQTTClientIDGPS)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	// ---- 2) Open GPS serial port ----
	src, err := gps.OpenSerial(cfg.GPSSerialPort, cfg.GPSBaudRate)
	if err != nil {
		return err
	}
	defer src.Close()
	log.Printf("gps: serial port opened on %s at %d baud", cfg.GPSSerialPort, cfg.GPSBaudRate)

	// ---- 3) Decode and publish until the port fails ----
	return newPipeline(cfg, mqttPublisher{client: client}).run(src, nil)
}
