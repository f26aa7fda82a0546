package app

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/relabs-tech/nmea_computer/internal/config"
	"github.com/relabs-tech/nmea_computer/internal/gps"
)

// RunReplayProducer publishes a recorded NMEA log through the same
// pipeline as the live producer, one line per REPLAY_INTERVAL.
func RunReplayProducer() error {
	cfg := config.Get()

	f, err := os.Open(cfg.ReplayFile)
	if err != nil {
		return err
	}
	src, err := gps.NewReplaySource(f, cfg.ReplayLoop)
	f.Close()
	if err != nil {
		return err
	}
	log.Printf("replay: loaded %s (loop=%v)", cfg.ReplayFile, cfg.ReplayLoop)

	client, err := connectMQTT("replay", cfg.MQTTBroker, cfg.MQTTClientIDReplay)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	ticker := time.NewTicker(cfg.ReplayEvery())
	defer ticker.Stop()

	err = newPipeline(cfg, mqttPublisher{client: client}).run(src, ticker.C)
	if errors.Is(err, io.EOF) {
		log.Println("replay: end of log")
		return nil
	}
	return err
}
